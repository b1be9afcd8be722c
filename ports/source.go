package ports

import (
	"context"
)

// TableSource reads a numeric table from an external representation.
// Parsing and validation of raw tabular input live behind this boundary,
// outside the numeric core.
type TableSource interface {
	ReadTable(ctx context.Context) ([][]float64, error)
}
