package validation

import (
	"errors"

	"github.com/stockpulse/stockpulse/internal/model"
)

// ValidateGender validates the enumerated gender value from the signup form.
func ValidateGender(gender string) error {
	switch gender {
	case model.GenderMale, model.GenderFemale, model.GenderOther:
		return nil
	case "":
		return errors.New("gender is required")
	default:
		return errors.New("gender must be one of Male, Female or Other")
	}
}
