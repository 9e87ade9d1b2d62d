package enum

// StockEntryType represents the direction of a stock adjustment.
type StockEntryType string

const (
	StockEntryIn  StockEntryType = "in"
	StockEntryOut StockEntryType = "out"
)

// Valid reports whether the entry type is one of the known values.
func (t StockEntryType) Valid() bool {
	return t == StockEntryIn || t == StockEntryOut
}

func (t StockEntryType) String() string {
	return string(t)
}
