package store_test

import (
	"errors"
	"testing"

	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/store"
)

func TestValidateHexColor(t *testing.T) {
	valid := []string{"", "#16a34a", "#166534", "#FFFFFF", "#000000", "#AbCdEf"}
	for _, v := range valid {
		if err := store.ValidateHexColor(v); err != nil {
			t.Errorf("ValidateHexColor(%q) = %v, want nil", v, err)
		}
	}

	invalid := []string{"green", "16a34a", "#16a34", "#16a34aa", "#16a34g", "#16 34a", "rgb(0,0,0)"}
	for _, v := range invalid {
		err := store.ValidateHexColor(v)
		if err == nil {
			t.Errorf("ValidateHexColor(%q) = nil, want error", v)
			continue
		}
		if !errors.Is(err, store.ErrInvalidColor) {
			t.Errorf("ValidateHexColor(%q) = %v, want ErrInvalidColor", v, err)
		}
	}
}
