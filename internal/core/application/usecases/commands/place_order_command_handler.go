package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/singleflight"
)

const (
	defaultPlacementRetries = 3
	placementRetryInterval  = 25 * time.Millisecond
	placementRetryMaxDelay  = 250 * time.Millisecond
)

// ErrNoPartnerAvailable is returned when every delivery partner has an active order,
// or when contention kept the placement from committing after all retries.
// The caller may retry later.
var ErrNoPartnerAvailable = errors.New("no delivery partner available")

// PlaceOrderResult identifies the committed order and the partner it was given to.
type PlaceOrderResult struct {
	OrderID    kernel.ID
	PartnerID  kernel.ID
	TotalPrice kernel.Money
}

type placeOrderRecord struct {
	OrderID    int64  `json:"order_id"`
	PartnerID  int64  `json:"partner_id"`
	TotalPrice string `json:"total_price"`
}

// PlaceOrderCommandHandler runs the order placement transaction.
//
// One attempt locks placements, corrects the customer profile, locks the menu item,
// locks the free partners, picks one under the fairness rule, draws the next order id,
// debits stock and inserts the order, all in a single unit of work. Anything that fails
// rolls the whole attempt back. Attempts that lose a race to a concurrent transaction
// (ports.ErrTransactionConflict) are retried with exponential backoff; every other
// failure is returned as is.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, idempotencyStore, 3, logger)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoPartnerAvailable):
//	    // 503, try again later
//	case errors.Is(err, menu.ErrInsufficientInventory):
//	    // 409
//	case err != nil:
//	    return err
//	}
//	fmt.Println(result.OrderID, result.PartnerID)
type PlaceOrderCommandHandler struct {
	uowFactory  PlacementUoWFactory
	idempotency ports.IdempotencyStore
	maxRetries  uint64
	logger      *slog.Logger
	inflight    *singleflight.Group
}

// NewPlaceOrderCommandHandler creates the placement handler.
// idempotency may be nil, in which case Idempotency-Key values are ignored.
// maxRetries below zero falls back to the default of 3.
func NewPlaceOrderCommandHandler(
	uowFactory PlacementUoWFactory,
	idempotency ports.IdempotencyStore,
	maxRetries int,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	if maxRetries < 0 {
		maxRetries = defaultPlacementRetries
	}
	if logger == nil {
		logger = slog.Default()
	}

	return PlaceOrderCommandHandler{
		uowFactory:  uowFactory,
		idempotency: idempotency,
		maxRetries:  uint64(maxRetries),
		logger:      logger.With("component", "place-order"),
		inflight:    new(singleflight.Group),
	}
}

// Handle places the order and returns its identifiers.
// Requests carrying the same idempotency key for the same customer are collapsed:
// concurrent duplicates share one placement and later ones replay the stored result.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}

	if cmd.IdempotencyKey() == "" || h.idempotency == nil {
		return h.placeWithRetry(ctx, cmd)
	}

	key := cmd.CustomerID().String() + ":" + cmd.IdempotencyKey()

	// The shared placement is detached from the caller that started it:
	// duplicates waiting on the key still get its result after that caller hangs up.
	shared := context.WithoutCancel(ctx)
	done := h.inflight.DoChan(key, func() (any, error) {
		if result, ok := h.recall(shared, key); ok {
			return result, nil
		}

		result, placeErr := h.placeWithRetry(shared, cmd)
		if placeErr != nil {
			return PlaceOrderResult{}, placeErr
		}

		h.remember(shared, key, result)
		return result, nil
	})

	select {
	case <-ctx.Done():
		return PlaceOrderResult{}, ctx.Err()
	case res := <-done:
		if res.Err != nil {
			return PlaceOrderResult{}, res.Err
		}
		result, _ := res.Val.(PlaceOrderResult)
		return result, nil
	}
}

func (h PlaceOrderCommandHandler) placeWithRetry(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	var result PlaceOrderResult
	operation := func() error {
		placed, err := h.place(ctx, cmd)
		if errors.Is(err, ports.ErrTransactionConflict) {
			return err
		}
		if err != nil {
			return backoff.Permanent(err)
		}
		result = placed
		return nil
	}

	notify := func(err error, wait time.Duration) {
		h.logger.WarnContext(ctx, "placement conflict, retrying",
			"customer_id", cmd.CustomerID().Int64(),
			"item_id", cmd.ItemID().Int64(),
			"wait", wait,
			"error", err)
	}

	if err := backoff.RetryNotify(operation, h.newBackOff(ctx), notify); err != nil {
		if errors.Is(err, ports.ErrTransactionConflict) {
			return PlaceOrderResult{}, fmt.Errorf("%w: %w", ErrNoPartnerAvailable, err)
		}
		return PlaceOrderResult{}, err
	}

	return result, nil
}

func (h PlaceOrderCommandHandler) place(ctx context.Context, cmd PlaceOrderCommand) (PlaceOrderResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.LockPlacements(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	customerRepo := uow.CustomerRepository()
	menuRepo := uow.MenuItemRepository()
	partnerRepo := uow.PartnerRepository()
	orderRepo := uow.OrderRepository()

	buyer, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return PlaceOrderResult{}, err
	}
	changed, err := buyer.ApplyProfile(cmd.Profile())
	if err != nil {
		return PlaceOrderResult{}, err
	}
	if changed {
		if err = customerRepo.Update(ctx, buyer); err != nil {
			return PlaceOrderResult{}, err
		}
	}

	item, err := menuRepo.GetForUpdate(ctx, cmd.RestaurantID(), cmd.ItemID())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	free, err := partnerRepo.GetAllFree(ctx)
	if err != nil {
		return PlaceOrderResult{}, err
	}
	chosen, err := services.NewOrderDispatcher().Dispatch(free)
	if errors.Is(err, services.ErrPartnerNotFound) {
		return PlaceOrderResult{}, ErrNoPartnerAvailable
	}
	if err != nil {
		return PlaceOrderResult{}, err
	}

	orderID, err := uow.NextOrderID(ctx)
	if err != nil {
		return PlaceOrderResult{}, err
	}

	if err = item.Reserve(cmd.Quantity()); err != nil {
		return PlaceOrderResult{}, err
	}

	placed, err := order.NewOrder(orderID, buyer.ID(), item, cmd.Quantity(), chosen.ID(), time.Now())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	if err = menuRepo.Update(ctx, item); err != nil {
		return PlaceOrderResult{}, err
	}
	if err = partnerRepo.Update(ctx, chosen); err != nil {
		return PlaceOrderResult{}, err
	}
	if err = orderRepo.Add(ctx, placed); err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	return PlaceOrderResult{
		OrderID:    placed.ID(),
		PartnerID:  placed.PartnerID(),
		TotalPrice: placed.TotalPrice(),
	}, nil
}

func (h PlaceOrderCommandHandler) newBackOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = placementRetryInterval
	b.MaxInterval = placementRetryMaxDelay
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, h.maxRetries), ctx)
}

// recall returns the stored result of an earlier request with the same key.
// Store failures are logged and treated as a miss.
func (h PlaceOrderCommandHandler) recall(ctx context.Context, key string) (PlaceOrderResult, bool) {
	raw, err := h.idempotency.Get(ctx, key)
	if errors.Is(err, ports.ErrIdempotencyKeyNotFound) {
		return PlaceOrderResult{}, false
	}
	if err != nil {
		h.logger.WarnContext(ctx, "idempotency lookup failed", "key", key, "error", err)
		return PlaceOrderResult{}, false
	}

	var record placeOrderRecord
	if err = json.Unmarshal(raw, &record); err != nil {
		h.logger.WarnContext(ctx, "idempotency record is corrupt", "key", key, "error", err)
		return PlaceOrderResult{}, false
	}

	result, err := record.toResult()
	if err != nil {
		h.logger.WarnContext(ctx, "idempotency record is corrupt", "key", key, "error", err)
		return PlaceOrderResult{}, false
	}

	return result, true
}

func (h PlaceOrderCommandHandler) remember(ctx context.Context, key string, result PlaceOrderResult) {
	raw, err := json.Marshal(placeOrderRecord{
		OrderID:    result.OrderID.Int64(),
		PartnerID:  result.PartnerID.Int64(),
		TotalPrice: result.TotalPrice.String(),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "idempotency record encoding failed", "key", key, "error", err)
		return
	}

	if _, err = h.idempotency.Save(ctx, key, raw); err != nil {
		h.logger.WarnContext(ctx, "idempotency save failed", "key", key, "error", err)
	}
}

func (r placeOrderRecord) toResult() (PlaceOrderResult, error) {
	orderID, err := kernel.NewID(r.OrderID)
	if err != nil {
		return PlaceOrderResult{}, err
	}
	partnerID, err := kernel.NewID(r.PartnerID)
	if err != nil {
		return PlaceOrderResult{}, err
	}
	total, err := kernel.MoneyFromString(r.TotalPrice)
	if err != nil {
		return PlaceOrderResult{}, err
	}
	return PlaceOrderResult{OrderID: orderID, PartnerID: partnerID, TotalPrice: total}, nil
}
