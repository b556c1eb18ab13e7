package customer

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when a customer has no name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via RestoreCustomer constructor")
)

// ProfileCorrection carries the optional contact details a customer may send
// together with an order. Blank fields mean "keep what is stored".
type ProfileCorrection struct {
	Name    string
	Phone   string
	Address string
}

// IsEmpty reports whether the correction would change nothing.
func (c ProfileCorrection) IsEmpty() bool {
	return strings.TrimSpace(c.Name) == "" &&
		strings.TrimSpace(c.Phone) == "" &&
		strings.TrimSpace(c.Address) == ""
}

// Customer is the stored profile of a user who places orders.
// Accounts are created by the identity service; this service only reads and corrects them.
type Customer struct {
	id      kernel.ID
	name    string
	email   string
	phone   string
	address string
	guard   guard.ConstructorGuard
}

// RestoreCustomer reconstructs a Customer from persistent storage.
func RestoreCustomer(id kernel.ID, name, email, phone, address string) (*Customer, error) {
	c := &Customer{
		email:   strings.TrimSpace(email),
		phone:   strings.TrimSpace(phone),
		address: strings.TrimSpace(address),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.ID   { return c.id }
func (c *Customer) Name() string    { return c.name }
func (c *Customer) Email() string   { return c.email }
func (c *Customer) Phone() string   { return c.phone }
func (c *Customer) Address() string { return c.address }

// ApplyProfile merges the non-blank fields of correction into the profile.
// It reports whether anything actually changed so callers can skip the write.
func (c *Customer) ApplyProfile(correction ProfileCorrection) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}

	changed := false
	apply := func(field *string, value string) {
		value = strings.TrimSpace(value)
		if value != "" && value != *field {
			*field = value
			changed = true
		}
	}

	apply(&c.name, correction.Name)
	apply(&c.phone, correction.Phone)
	apply(&c.address, correction.Address)

	return changed, nil
}

func (c *Customer) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
