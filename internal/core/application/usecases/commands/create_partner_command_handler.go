package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/partner"
)

// CreatePartnerCommandHandler persists a new partner and returns its identifier.
type CreatePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

func NewCreatePartnerCommandHandler(uowFactory PartnerUoWFactory) CreatePartnerCommandHandler {
	return CreatePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreatePartnerCommandHandler) Handle(ctx context.Context, cmd CreatePartnerCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.ID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.ID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partnerRepo := uow.PartnerRepository()

	id, err := partnerRepo.NextID(ctx)
	if err != nil {
		return kernel.ID{}, err
	}

	p, err := partner.NewPartner(id, cmd.Name(), cmd.Phone())
	if err != nil {
		return kernel.ID{}, err
	}

	if err = partnerRepo.Add(ctx, p); err != nil {
		return kernel.ID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.ID{}, err
	}

	return id, nil
}
