package commands

import (
	"context"
	"time"

	"foodorder/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies a status change and, when the order
// reaches Delivered or Cancelled, frees its partner in the same transaction.
//
// Lock order is order row, then partner row. Placement never locks an order row,
// so the two transactions cannot wait on each other in a cycle.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderStatusUoWFactory
}

func NewUpdateOrderStatusCommandHandler(uowFactory OrderStatusUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns errs.ObjectNotFoundError for unknown orders and
// order.ErrStatusTransitionNotAllowed for changes outside the lifecycle graph.
// Re-applying the current status succeeds without writing anything.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	partnerRepo := uow.PartnerRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !cmd.Allows(o) {
		return errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}

	previous := o.Status()
	released, err := o.ChangeStatus(cmd.Status(), time.Now())
	if err != nil {
		return err
	}
	if o.Status() == previous {
		return nil
	}

	if released {
		p, partnerErr := partnerRepo.GetForUpdate(ctx, o.PartnerID())
		if partnerErr != nil {
			return partnerErr
		}
		if err = p.Release(); err != nil {
			return err
		}
		if err = partnerRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
