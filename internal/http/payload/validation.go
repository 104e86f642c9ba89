package payload

import (
	"fmt"

	"github.com/jellydator/validation"
)

// Validate runs the payload's own rules if it has any.
func Validate(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
