// Package ports defines the contracts between the application core and its adapters:
// repositories and the unit of work over the ledger store, the outbox and its
// event publisher, and the idempotency store used by order placement.
package ports
