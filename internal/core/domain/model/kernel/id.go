package kernel

import (
	"fmt"
	"strconv"

	"foodorder/internal/pkg/errs"
)

// ErrIDIsNotConstructed is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or IDFromString")

// ID identifies a persisted entity. Identifiers are allocated by the ledger store,
// so the domain only ever wraps values it has been handed.
//
// Example:
//
//	id, err := kernel.NewID(42)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(id) // 42
type ID struct {
	value int64
}

// NewID wraps a positive integer identifier.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", value))
	}
	return ID{value: value}, nil
}

// MustNewID is NewID for values already known to be valid, such as rows read back from storage.
func MustNewID(value int64) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// IDFromString parses a decimal identifier, typically from a URL path segment.
func IDFromString(s string) (ID, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(value)
}

// Int64 returns the raw identifier.
func (id ID) Int64() int64 {
	return id.value
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return strconv.FormatInt(id.value, 10)
}

// IsEqual reports whether both identifiers hold the same value.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// Less orders identifiers numerically; the dispatcher uses it for tie-breaking.
func (id ID) Less(other ID) bool {
	return id.value < other.value
}

// Validate rejects the zero value.
func (id ID) Validate() error {
	if id.value <= 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}
