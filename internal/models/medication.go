package models

// Medication represents one medication type and its remaining physical stock.
type Medication struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Stock     int    `json:"stock"`
	IsOrdered bool   `json:"is_ordered,omitempty"`
}

// LowStock reports whether the remaining stock is below the refill threshold.
func (m Medication) LowStock() bool {
	return m.Stock < LowStockThreshold
}

// LowStockThreshold is the stock level below which a refill is suggested.
const LowStockThreshold = 10
