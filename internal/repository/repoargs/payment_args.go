package repoargs

import (
	"github.com/danilsonvss/payledger/internal/domain"
	"github.com/shopspring/decimal"
)

type PaymentCreate struct {
	Amount               decimal.Decimal
	Country              string
	Status               domain.PaymentStatus
	BuyerID              int64
	ProducerID           int64
	AffiliateID          *int64
	CoproducerID         *int64
	TransactionTax       decimal.Decimal
	PlatformTax          decimal.Decimal
	ProducerCommission   decimal.Decimal
	AffiliateCommission  *decimal.Decimal
	CoproducerCommission *decimal.Decimal
	PlatformCommission   decimal.Decimal
}
