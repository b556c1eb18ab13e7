package order

import (
	"time"

	"foodorder/internal/pkg/ddd"
)

const (
	PlacedEventName        = "order.placed"
	StatusChangedEventName = "order.status_changed"
)

// PlacedEvent is raised once, when the placement transaction creates the order.
type PlacedEvent struct {
	ddd.BaseEvent
	CustomerID   int64  `json:"customer_id"`
	RestaurantID int64  `json:"restaurant_id"`
	ItemID       int64  `json:"item_id"`
	PartnerID    int64  `json:"partner_id"`
	Quantity     int    `json:"quantity"`
	TotalPrice   string `json:"total_price"`
	Status       string `json:"status"`
}

// StatusChangedEvent is raised on every effective status transition.
type StatusChangedEvent struct {
	ddd.BaseEvent
	PartnerID int64  `json:"partner_id"`
	From      string `json:"from"`
	To        string `json:"to"`
}

func newPlacedEvent(o *Order, at time.Time) PlacedEvent {
	return PlacedEvent{
		BaseEvent:    ddd.NewBaseEvent(PlacedEventName, o.id.String(), at),
		CustomerID:   o.customerID.Int64(),
		RestaurantID: o.restaurantID.Int64(),
		ItemID:       o.itemID.Int64(),
		PartnerID:    o.partnerID.Int64(),
		Quantity:     o.quantity,
		TotalPrice:   o.totalPrice.String(),
		Status:       o.status.String(),
	}
}

func newStatusChangedEvent(o *Order, from Status, at time.Time) StatusChangedEvent {
	return StatusChangedEvent{
		BaseEvent: ddd.NewBaseEvent(StatusChangedEventName, o.id.String(), at),
		PartnerID: o.partnerID.Int64(),
		From:      from.String(),
		To:        o.status.String(),
	}
}
