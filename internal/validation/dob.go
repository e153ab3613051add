package validation

import (
	"errors"
	"time"
)

// ValidateDOB validates a date of birth in YYYY-MM-DD form. The date must
// parse as a real calendar day and lie in the past.
func ValidateDOB(dob string) error {
	if dob == "" {
		return errors.New("date of birth is required")
	}

	t, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return errors.New("date of birth must be in YYYY-MM-DD format")
	}

	if !t.Before(time.Now()) {
		return errors.New("date of birth must be in the past")
	}

	return nil
}
