// Package data holds the built-in demo data set: the default medication list,
// the fixed daily dosing schedule, and the barcode registry.
package data

import "github.com/stefvanboven/mino-companion/internal/models"

// DefaultMedications is the factory medication set. The store reconciles its
// contents against this list on every read, so entries added here in a later
// release show up without wiping user data.
func DefaultMedications() []models.Medication {
	return []models.Medication{
		{ID: "1", Name: "Paracetamol", Dosage: "500mg", Stock: 24},
		{ID: "2", Name: "Ibuprofen", Dosage: "400mg", Stock: 5},
		{ID: "3", Name: "Metoprolol", Dosage: "50mg", Stock: 8},
		{ID: "4", Name: "Vitamin D", Dosage: "10mcg", Stock: 60},
		{ID: "5", Name: "Dafalgan Forte", Dosage: "1g", Stock: 30},
	}
}

// DailySchedule is the fixed dosing template, identical for every date.
func DailySchedule() []models.ScheduleEntry {
	return []models.ScheduleEntry{
		{ID: 101, MedicationID: "1", Time: "08:00", Amount: "3x"},
		{ID: 102, MedicationID: "3", Time: "12:00", Amount: "1x"},
		{ID: 104, MedicationID: "2", Time: "18:00", Amount: "1x"},
		{ID: 103, MedicationID: "4", Time: "20:00", Amount: "2x"},
		{ID: 105, MedicationID: "5", Time: "22:00", Amount: "1x"},
	}
}

// Product is a barcode registry entry. Stock is the box size added on refill.
type Product struct {
	Name   string
	Dosage string
	Stock  int
}

// BarcodeRegistry maps EAN codes to known products (demo database).
var BarcodeRegistry = map[string]Product{
	"5410123456786": {Name: "Dafalgan Forte", Dosage: "1g", Stock: 30},
	"8714567890128": {Name: "Ibuprofen", Dosage: "400mg", Stock: 30},
	"3056789012342": {Name: "Metoprolol", Dosage: "50mg", Stock: 100},
}
