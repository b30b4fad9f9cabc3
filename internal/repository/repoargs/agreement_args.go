package repoargs

import "github.com/shopspring/decimal"

type AffiliationCreate struct {
	ProducerID  int64
	AffiliateID int64
	Percentage  decimal.Decimal
}

type CoproductionCreate struct {
	ProducerID   int64
	CoproducerID int64
	Percentage   decimal.Decimal
}
