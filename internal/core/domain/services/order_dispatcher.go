package services

import (
	"errors"

	"foodorder/internal/core/domain/model/partner"
)

// ErrPartnerNotFound is returned when no partner with zero active orders was offered.
var ErrPartnerNotFound = errors.New("partner not found")

// OrderDispatcher is a domain service that picks the delivery partner for a new order.
//
// Business rules:
//   - Only partners with zero active orders are eligible
//   - Ties are broken by the lowest partner ID, so the choice is reproducible
//   - The chosen partner is marked busy before it is returned
//
// Example usage:
//
//	dispatcher := services.NewOrderDispatcher()
//	chosen, err := dispatcher.Dispatch(freePartners)
//	if errors.Is(err, services.ErrPartnerNotFound) {
//	    // every partner is busy
//	}
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch selects a partner under the fairness rule and assigns the order slot to it.
// The candidates slice may come in any order and may contain busy partners.
func (d OrderDispatcher) Dispatch(partners []*partner.Partner) (*partner.Partner, error) {
	best, err := d.findBestPartner(partners)
	if err != nil {
		return nil, err
	}

	if err := best.Assign(); err != nil {
		return nil, err
	}

	return best, nil
}

func (d OrderDispatcher) findBestPartner(partners []*partner.Partner) (*partner.Partner, error) {
	var best *partner.Partner

	for _, p := range partners {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if !p.IsAvailable() {
			continue
		}
		if best == nil || p.ID().Less(best.ID()) {
			best = p
		}
	}

	if best == nil {
		return nil, ErrPartnerNotFound
	}

	return best, nil
}
