package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/danilsonvss/payledger/internal/domain"
)

// moneyScale количество знаков после запятой у денежных значений. Совпадает со scale колонок NUMERIC в БД,
// иначе сверка сумм после round-trip через хранилище разъедется.
const moneyScale = 2

var oneHundred = decimal.NewFromInt(100)

// SettleArgs аргументы расчета распределения платежа. Nil-процент означает что участник в платеже
// не участвует - это не то же самое что 0% (участник есть, но комиссия нулевая).
type SettleArgs struct {
	GrossAmount       decimal.Decimal
	TransactionTaxPct decimal.Decimal
	PlatformTaxPct    decimal.Decimal
	AffiliatePct      *decimal.Decimal
	CoproducerPct     *decimal.Decimal
}

type Settlement struct {
	TransactionTax       decimal.Decimal
	PlatformTax          decimal.Decimal
	NetAmount            decimal.Decimal
	ProducerCommission   decimal.Decimal
	AffiliateCommission  *decimal.Decimal
	CoproducerCommission *decimal.Decimal
	PlatformCommission   decimal.Decimal
}

// Settle выполняет чистый расчет распределения платежа: налоги, комиссии партнеров и остаток продюсера.
// Никакого I/O, порядок шагов фиксирован - от него зависят округления и ожидания аудита:
//
//  1. транзакционный налог от брутто-суммы;
//  2. платформенный налог от брутто-суммы;
//  3. чистая сумма = брутто минус транзакционный налог;
//  4. комиссии аффилиата и со-продюсера как проценты от чистой суммы;
//  5. комиссия платформы равна платформенному налогу;
//  6. комиссия продюсера - остаток чистой суммы, а не независимый процент.
//
// За счет расчета остатком сумма всех комиссий сходится с чистой суммой точно, без утечек на округлении.
// Если партнерские комиссии с платформенным налогом превышают чистую сумму, возвращается
// domain.ErrCommissionsExceedNet - такой платеж лечится правкой соглашений.
func Settle(args SettleArgs) (*Settlement, error) {
	if !args.GrossAmount.IsPositive() {
		return nil, fmt.Errorf("settling: %w", domain.ErrInvalidAmount)
	}
	for _, pct := range []*decimal.Decimal{
		&args.TransactionTaxPct, &args.PlatformTaxPct, args.AffiliatePct, args.CoproducerPct,
	} {
		if pct != nil && !isValidPercentage(*pct) {
			return nil, fmt.Errorf("settling: %w", domain.ErrInvalidPercentage)
		}
	}

	transactionTax := percentOf(args.GrossAmount, args.TransactionTaxPct)
	platformTax := percentOf(args.GrossAmount, args.PlatformTaxPct)
	netAmount := args.GrossAmount.Sub(transactionTax)

	var affiliateCommission, coproducerCommission *decimal.Decimal
	if args.AffiliatePct != nil {
		c := percentOf(netAmount, *args.AffiliatePct)
		affiliateCommission = &c
	}
	if args.CoproducerPct != nil {
		c := percentOf(netAmount, *args.CoproducerPct)
		coproducerCommission = &c
	}

	platformCommission := platformTax

	producerCommission := netAmount.
		Sub(valueOrZero(affiliateCommission)).
		Sub(valueOrZero(coproducerCommission)).
		Sub(platformCommission)

	if producerCommission.IsNegative() {
		return nil, fmt.Errorf("settling: %w", domain.ErrCommissionsExceedNet)
	}

	return &Settlement{
		TransactionTax:       transactionTax,
		PlatformTax:          platformTax,
		NetAmount:            netAmount,
		ProducerCommission:   producerCommission,
		AffiliateCommission:  affiliateCommission,
		CoproducerCommission: coproducerCommission,
		PlatformCommission:   platformCommission,
	}, nil
}

func percentOf(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(oneHundred).Round(moneyScale)
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func isValidPercentage(pct decimal.Decimal) bool {
	return !pct.IsNegative() && pct.LessThanOrEqual(oneHundred)
}
