package partner

import (
	"errors"
	"fmt"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a partner without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPartnerIsBusy is returned when assigning an order to a partner that still has an active one.
	ErrPartnerIsBusy = errors.New("partner already has an active order")
	// ErrPartnerHasNoActiveOrders is returned when releasing a partner that is already free.
	ErrPartnerHasNoActiveOrders = errors.New("partner has no active orders")
	// ErrPartnerIsNotConstructed is returned when using an improperly initialized Partner.
	ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")
)

// Partner represents a delivery partner.
// It is an aggregate root that carries an explicit count of the partner's
// non-terminal orders; that count drives the fairness rule used at placement.
//
// Business rules:
//   - Partner must have a valid ID and a non-empty name
//   - A partner is available only while ActiveOrders is 0
//   - Assign and Release move the counter by exactly one and never below zero
//
// Example usage:
//
//	p, err := partner.NewPartner(id, "Ravi", "+91-9000000001")
//	if err != nil {
//	    return err
//	}
//	if err := p.Assign(); err != nil {
//	    // errors.Is(err, partner.ErrPartnerIsBusy)
//	}
type Partner struct {
	id           kernel.ID
	name         string
	phone        string
	activeOrders int
	guard        guard.ConstructorGuard
}

// NewPartner registers a partner with no active orders.
func NewPartner(id kernel.ID, name, phone string) (*Partner, error) {
	return RestorePartner(id, name, phone, 0)
}

// RestorePartner reconstructs a Partner from persistent storage.
func RestorePartner(id kernel.ID, name, phone string, activeOrders int) (*Partner, error) {
	p := &Partner{
		phone: strings.TrimSpace(phone),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setActiveOrders(activeOrders),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Partner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

func (p *Partner) IsEqual(other *Partner) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Partner) ID() kernel.ID     { return p.id }
func (p *Partner) Name() string      { return p.name }
func (p *Partner) Phone() string     { return p.phone }
func (p *Partner) ActiveOrders() int { return p.activeOrders }

// IsAvailable reports whether the partner has zero non-terminal orders.
func (p *Partner) IsAvailable() bool {
	return p.activeOrders == 0
}

// Assign records a newly placed order against the partner.
func (p *Partner) Assign() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if !p.IsAvailable() {
		return fmt.Errorf("%w: partner %s", ErrPartnerIsBusy, p.id)
	}
	p.activeOrders++
	return nil
}

// Release records that one of the partner's orders reached a terminal status.
func (p *Partner) Release() error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.activeOrders == 0 {
		return fmt.Errorf("%w: partner %s", ErrPartnerHasNoActiveOrders, p.id)
	}
	p.activeOrders--
	return nil
}

func (p *Partner) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Partner) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Partner) setActiveOrders(n int) error {
	if n < 0 {
		return errs.NewValueIsOutOfRangeError("active_orders", n, 0, "unbounded")
	}
	p.activeOrders = n
	return nil
}
