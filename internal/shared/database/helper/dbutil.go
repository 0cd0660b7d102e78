package helper

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

func NullStringValue(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

// NUMERIC columns round-trip through strings to keep precision.
func DecimalFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
