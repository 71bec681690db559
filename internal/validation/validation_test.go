package validation

import (
	"errors"
	"testing"

	"github.com/stefvanboven/mino-companion/internal/errs"
	"github.com/stefvanboven/mino-companion/internal/models"
)

func TestCleanPhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0471 23 45 67", "0471234567"},
		{"+32 471 23 45 67", "3247123456"},
		{"abc", ""},
		{"04-71/23.45.67", "0471234567"},
		{"12345678901234", "1234567890"},
	}

	for _, tc := range cases {
		if got := CleanPhone(tc.in); got != tc.want {
			t.Errorf("CleanPhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidateContact(t *testing.T) {
	valid := models.CaregiverContact{Name: "Anna", Relation: "daughter", Phone: "0471 23 45 67"}
	if err := ValidateContact(valid); err != nil {
		t.Errorf("ValidateContact(valid) = %v", err)
	}

	cases := []struct {
		name    string
		contact models.CaregiverContact
	}{
		{"empty name", models.CaregiverContact{Name: "  ", Phone: "0471234567"}},
		{"short phone", models.CaregiverContact{Name: "Anna", Phone: "12345678"}},
		{"letters only phone", models.CaregiverContact{Name: "Anna", Phone: "no number"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateContact(tc.contact); !errors.Is(err, errs.ErrValidation) {
				t.Errorf("ValidateContact = %v, want ErrValidation", err)
			}
		})
	}
}

func TestValidateMedication(t *testing.T) {
	if err := ValidateMedication(models.Medication{Name: "Paracetamol", Stock: 0}); err != nil {
		t.Errorf("ValidateMedication(valid) = %v", err)
	}
	if err := ValidateMedication(models.Medication{Name: "", Stock: 5}); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("empty name = %v, want ErrValidation", err)
	}
	if err := ValidateMedication(models.Medication{Name: "X", Stock: -1}); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("negative stock = %v, want ErrValidation", err)
	}
}

func TestValidateBaseURL(t *testing.T) {
	for _, ok := range []string{"http://10.0.0.5:5001", "https://robot.local", " http://robot "} {
		if err := ValidateBaseURL(ok); err != nil {
			t.Errorf("ValidateBaseURL(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"robot.local:5001", "ftp://robot", ""} {
		if err := ValidateBaseURL(bad); !errors.Is(err, errs.ErrValidation) {
			t.Errorf("ValidateBaseURL(%q) = %v, want ErrValidation", bad, err)
		}
	}
}
