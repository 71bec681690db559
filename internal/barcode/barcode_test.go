package barcode

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stefvanboven/mino-companion/internal/errs"
	"github.com/stefvanboven/mino-companion/internal/models"
	"github.com/stefvanboven/mino-companion/internal/storage"
)

func newStore(t *testing.T) storage.Provider {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "mino.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return store
}

func findByID(meds []models.Medication, id string) (models.Medication, bool) {
	for _, m := range meds {
		if m.ID == id {
			return m, true
		}
	}
	return models.Medication{}, false
}

func TestLookup(t *testing.T) {
	product, err := Lookup("5410123456786")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if product.Name != "Dafalgan Forte" || product.Stock != 30 {
		t.Errorf("Lookup = %+v", product)
	}

	if _, err := Lookup("0000000000000"); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("Lookup unknown code error = %v, want ErrValidation", err)
	}
}

func TestRegister_AddsNewMedication(t *testing.T) {
	store := newStore(t)

	med, err := Register(store, "8714567890128")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if med.Name != "Ibuprofen" || med.Dosage != "400mg" || med.Stock != 30 {
		t.Errorf("registered medication = %+v", med)
	}
	if med.ID == "" {
		t.Error("registered medication has no id")
	}

	meds, err := storage.Medications(store)
	if err != nil {
		t.Fatalf("Medications failed: %v", err)
	}
	if _, ok := findByID(meds, med.ID); !ok {
		t.Error("registered medication not persisted")
	}
}

func TestRegister_UnknownCode(t *testing.T) {
	store := newStore(t)

	if _, err := Register(store, "bogus"); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("Register error = %v, want ErrValidation", err)
	}

	meds, _ := storage.Medications(store)
	if len(meds) != 5 {
		t.Errorf("medication list mutated on failed register: %d entries", len(meds))
	}
}

func TestRefill_AddsStockAndClearsOrderedFlag(t *testing.T) {
	store := newStore(t)

	meds, err := storage.Medications(store)
	if err != nil {
		t.Fatalf("Medications failed: %v", err)
	}
	// Med "2" is Ibuprofen with stock 5; mark it as reported.
	for i := range meds {
		if meds[i].ID == "2" {
			meds[i].IsOrdered = true
		}
	}
	if err := storage.SaveMedications(store, meds); err != nil {
		t.Fatalf("SaveMedications failed: %v", err)
	}

	med, err := Refill(store, "2", "8714567890128")
	if err != nil {
		t.Fatalf("Refill failed: %v", err)
	}
	if med.Stock != 35 {
		t.Errorf("stock after refill = %d, want 35", med.Stock)
	}
	if med.IsOrdered {
		t.Error("ordered flag not cleared by refill")
	}

	meds, _ = storage.Medications(store)
	got, _ := findByID(meds, "2")
	if got.Stock != 35 || got.IsOrdered {
		t.Errorf("persisted medication = %+v", got)
	}
}

func TestRefill_RejectsWrongProduct(t *testing.T) {
	store := newStore(t)

	// Scanning a Metoprolol box while refilling Ibuprofen.
	_, err := Refill(store, "2", "3056789012342")
	if !errors.Is(err, errs.ErrInvalidState) {
		t.Fatalf("Refill mismatch error = %v, want ErrInvalidState", err)
	}

	meds, _ := storage.Medications(store)
	got, _ := findByID(meds, "2")
	if got.Stock != 5 {
		t.Errorf("stock mutated on rejected refill: %d", got.Stock)
	}
}

func TestRefill_UnknownMedication(t *testing.T) {
	store := newStore(t)

	if _, err := Refill(store, "does-not-exist", "8714567890128"); err == nil {
		t.Error("Refill on unknown medication succeeded, want error")
	}
}
