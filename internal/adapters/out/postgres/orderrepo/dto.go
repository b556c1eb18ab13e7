package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

type OrderDTO struct {
	ID           int64           `gorm:"primaryKey;autoIncrement:false"`
	CustomerID   int64           `gorm:"not null;index"`
	RestaurantID int64           `gorm:"not null;index"`
	ItemID       int64           `gorm:"not null"`
	PartnerID    int64           `gorm:"not null;index"`
	Quantity     int             `gorm:"not null;check:quantity > 0"`
	TotalPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status       string          `gorm:"size:16;not null;index"`
	CreatedAt    time.Time       `gorm:"not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:           o.ID().Int64(),
		CustomerID:   o.CustomerID().Int64(),
		RestaurantID: o.RestaurantID().Int64(),
		ItemID:       o.ItemID().Int64(),
		PartnerID:    o.PartnerID().Int64(),
		Quantity:     o.Quantity(),
		TotalPrice:   o.TotalPrice().Decimal(),
		Status:       o.Status().String(),
		CreatedAt:    o.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	ids := make([]kernel.ID, 0, 5)
	for _, raw := range []int64{dto.ID, dto.CustomerID, dto.RestaurantID, dto.ItemID, dto.PartnerID} {
		id, err := kernel.NewID(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	total, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(ids[0], ids[1], ids[2], ids[3], ids[4], dto.Quantity, total, status, dto.CreatedAt)
}
