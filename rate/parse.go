package rate

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Parse reads an APR percentage such as "5" or "12.5".
func Parse(s string) (*apd.Decimal, error) {

	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("missing apr: %w", ErrInvalidArgument)
	}

	apr, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("could not parse apr %q (%s): %w", s, err, ErrInvalidArgument)
	}
	if apr.Form != apd.Finite {
		return nil, fmt.Errorf("apr %q is not a finite number: %w", s, ErrInvalidArgument)
	}

	return apr, nil
}
