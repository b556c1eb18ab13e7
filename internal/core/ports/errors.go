package ports

import "errors"

var (
	// ErrTransactionConflict is returned when the ledger store aborted a transaction
	// because of contention: serialization failure, deadlock, or a violated uniqueness
	// constraint raced by a concurrent transaction. The whole transaction may be retried.
	ErrTransactionConflict = errors.New("transaction conflict")

	// ErrStorageUnavailable is returned when the ledger store cannot be reached
	// or a transaction cannot be started. It is not retried.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
