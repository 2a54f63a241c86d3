package directive

import (
	"fmt"
	"strconv"
	"strings"
)

// Matches reports whether the given manufacturer serial number satisfies the
// constraint. Range bounds are inclusive. A malformed variant (unknown
// discriminator, range without bounds, list without values) returns an error
// rather than silently passing or failing everything; the caller turns it
// into an evaluation error distinct from any verdict.
func (c MSNConstraint) Matches(msn int) (bool, error) {
	switch c.kind() {
	case ConstraintAll:
		return true, nil
	case ConstraintRange:
		if c.Range == nil {
			return false, fmt.Errorf("range constraint missing bounds")
		}
		return msn >= c.Range.Min && msn <= c.Range.Max, nil
	case ConstraintList:
		if len(c.Values) == 0 {
			return false, fmt.Errorf("list constraint has no values")
		}
		for _, v := range c.Values {
			if v == msn {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, fmt.Errorf("unknown constraint type %q", c.Type)
	}
}

// Describe returns a short human-readable form of the constraint for
// listings and reports.
func (c MSNConstraint) Describe() string {
	switch c.kind() {
	case ConstraintRange:
		if c.Range == nil {
			return "range (missing bounds)"
		}
		return fmt.Sprintf("MSN %d-%d", c.Range.Min, c.Range.Max)
	case ConstraintList:
		values := make([]string, 0, len(c.Values))
		for _, v := range c.Values {
			values = append(values, strconv.Itoa(v))
		}
		return "MSN in {" + strings.Join(values, ", ") + "}"
	case ConstraintAll:
		return "all MSN"
	default:
		return fmt.Sprintf("unknown (%s)", c.Type)
	}
}
