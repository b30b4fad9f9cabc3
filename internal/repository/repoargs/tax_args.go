package repoargs

import (
	"github.com/danilsonvss/payledger/internal/domain"
	"github.com/shopspring/decimal"
)

type TaxCreate struct {
	Country    string
	Kind       domain.TaxKind
	Percentage decimal.Decimal
}
