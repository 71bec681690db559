// Package barcode implements the scan flows: registering a new medication
// from a scanned box, and refilling an existing one with an identity check so
// the wrong product can never top up a medication.
package barcode

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/stefvanboven/mino-companion/internal/data"
	"github.com/stefvanboven/mino-companion/internal/errs"
	"github.com/stefvanboven/mino-companion/internal/models"
	"github.com/stefvanboven/mino-companion/internal/storage"
)

// Lookup resolves a scanned EAN code against the registry.
func Lookup(code string) (data.Product, error) {
	product, ok := data.BarcodeRegistry[code]
	if !ok {
		return data.Product{}, fmt.Errorf("%w: code %s is not in the product registry", errs.ErrValidation, code)
	}
	return product, nil
}

// Register creates a new medication from a scanned code and persists it. The
// scanned product is treated as verified, so name and dosage come straight
// from the registry.
func Register(store storage.Provider, code string) (models.Medication, error) {
	product, err := Lookup(code)
	if err != nil {
		return models.Medication{}, err
	}

	meds, err := storage.Medications(store)
	if err != nil {
		return models.Medication{}, err
	}

	med := models.Medication{
		ID:     uuid.New().String(),
		Name:   product.Name,
		Dosage: product.Dosage,
		Stock:  product.Stock,
	}

	if err := storage.SaveMedications(store, append(meds, med)); err != nil {
		return models.Medication{}, err
	}
	return med, nil
}

// Refill adds a scanned box to an existing medication's stock. The scanned
// product must be the same medication; a mismatch mutates nothing. A
// successful refill also clears the caregiver-notified flag.
func Refill(store storage.Provider, medID, code string) (models.Medication, error) {
	product, err := Lookup(code)
	if err != nil {
		return models.Medication{}, err
	}

	meds, err := storage.Medications(store)
	if err != nil {
		return models.Medication{}, err
	}

	for i := range meds {
		if meds[i].ID != medID {
			continue
		}
		if meds[i].Name != product.Name {
			return models.Medication{}, fmt.Errorf("%w: scanned %s while refilling %s",
				errs.ErrInvalidState, product.Name, meds[i].Name)
		}

		meds[i].Stock += product.Stock
		meds[i].IsOrdered = false
		if err := storage.SaveMedications(store, meds); err != nil {
			return models.Medication{}, err
		}
		return meds[i], nil
	}

	return models.Medication{}, fmt.Errorf("medication not found: %s", medID)
}
