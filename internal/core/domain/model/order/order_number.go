package order

import (
	"fmt"
	"math/rand/v2"
	"regexp"

	"gofer/internal/pkg/errs"
)

const (
	// orderNumberPrefix is the fixed human-readable prefix of every order number.
	orderNumberPrefix = "GO-"
	// orderNumberCodeLength is the number of random characters after the prefix.
	orderNumberCodeLength = 6
)

// orderNumberAlphabet is the character set for the random code portion.
const orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var orderNumberPattern = regexp.MustCompile(`^GO-[A-Z0-9]{6}$`)

// ErrOrderNumberIsInvalid is returned when a string does not match the
// order number format.
var ErrOrderNumberIsInvalid = errs.NewValueIsInvalidError("order number")

// Number is a value object holding the human-readable order identifier,
// e.g. "GO-A1B2C3". The random code space is small enough that collisions
// must be treated as possible: callers generating new numbers re-check
// uniqueness against the store and retry (see the create-order handler).
type Number struct {
	value string
}

// GenerateNumber produces a random candidate order number.
// The result is NOT guaranteed unique; the caller must verify it against
// existing orders before use.
func GenerateNumber() Number {
	code := make([]byte, orderNumberCodeLength)
	for i := range code {
		code[i] = orderNumberAlphabet[rand.IntN(len(orderNumberAlphabet))]
	}
	return Number{value: orderNumberPrefix + string(code)}
}

// NumberFromString parses and validates an order number from its string form.
// Used when reconstructing orders from persistence or parsing lookups.
func NumberFromString(s string) (Number, error) {
	if !orderNumberPattern.MatchString(s) {
		return Number{}, fmt.Errorf("%q: %w", s, ErrOrderNumberIsInvalid)
	}
	return Number{value: s}, nil
}

// String returns the order number, e.g. "GO-A1B2C3".
func (n Number) String() string {
	return n.value
}

// IsEqual compares two order numbers.
func (n Number) IsEqual(other Number) bool {
	return n.value == other.value
}

// Validate checks the number was constructed through GenerateNumber or
// NumberFromString.
func (n Number) Validate() error {
	if !orderNumberPattern.MatchString(n.value) {
		return ErrOrderNumberIsInvalid
	}
	return nil
}
