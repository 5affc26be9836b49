package booking

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"

	"moving/internal/pkg/errs"
)

// referencePattern is the wire format of a booking reference.
var referencePattern = regexp.MustCompile(`^BK-\d{4}-\d{3}$`)

// referenceSuffixSpace is the number of distinct random suffixes per year.
// Collisions are expected at scale, so creation retries with a fresh draw on
// a uniqueness violation.
const referenceSuffixSpace = 1000

// Reference is the human-readable booking identifier in the form
// BK-<year>-<3-digit-suffix>. It is distinct from the surrogate UUID and is
// unique across all bookings.
type Reference struct {
	value string
}

// NewReference draws a random reference for the given creation time.
// Uniqueness is enforced at persistence; callers retry on collision.
func NewReference(now time.Time) Reference {
	return Reference{
		value: fmt.Sprintf("BK-%04d-%03d", now.Year(), rand.IntN(referenceSuffixSpace)),
	}
}

// ReferenceFromString parses and validates a stored reference.
func ReferenceFromString(s string) (Reference, error) {
	if !referencePattern.MatchString(s) {
		return Reference{}, errs.NewValueIsInvalidErrorWithCause(
			"booking reference", fmt.Errorf("%q does not match BK-<year>-<seq>", s))
	}
	return Reference{value: s}, nil
}

// String returns the wire form of the reference.
func (r Reference) String() string {
	return r.value
}

// IsEqual reports whether two references are identical.
func (r Reference) IsEqual(other Reference) bool {
	return r.value == other.value
}

// Validate returns an error for a zero-value reference.
func (r Reference) Validate() error {
	if r.value == "" {
		return errs.NewValueIsRequiredError("booking reference")
	}
	return nil
}
