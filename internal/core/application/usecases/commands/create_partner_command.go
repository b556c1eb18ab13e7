package commands

import (
	"errors"
	"strings"

	"foodorder/internal/core/domain/model/partner"
	"foodorder/internal/pkg/guard"
)

var ErrCreatePartnerCommandIsNotConstructed = errors.New(
	"CreatePartnerCommand must be created via NewCreatePartnerCommand constructor",
)

// CreatePartnerCommand registers a delivery partner. New partners start free.
type CreatePartnerCommand struct { //nolint:recvcheck //using for validation
	name  string
	phone string

	guard guard.ConstructorGuard
}

func NewCreatePartnerCommand(name, phone string) (CreatePartnerCommand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CreatePartnerCommand{}, partner.ErrNameIsRequired
	}

	return CreatePartnerCommand{
		name:  name,
		phone: strings.TrimSpace(phone),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartnerCommandIsNotConstructed)
}

func (c CreatePartnerCommand) Name() string  { return c.name }
func (c CreatePartnerCommand) Phone() string { return c.phone }
