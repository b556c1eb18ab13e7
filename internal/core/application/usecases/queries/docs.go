// Package queries contains read-only views over the ledger store.
// Query handlers bypass the domain model and project rows straight into response structs,
// so they never take locks and never see uncommitted placement attempts.
package queries
