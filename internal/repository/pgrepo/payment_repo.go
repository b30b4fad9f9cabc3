package pgrepo

import (
	"context"

	"github.com/danilsonvss/payledger/internal/domain"
	"github.com/danilsonvss/payledger/internal/repository/repoargs"
	"github.com/danilsonvss/payledger/pkg/uow"
)

type PaymentRepository struct {
	conn uow.DBTX
}

func NewPaymentRepository(conn uow.DBTX) *PaymentRepository {
	return &PaymentRepository{conn: conn}
}

const paymentColumns = `id, created_at, updated_at, amount, country, status, buyer_id, producer_id,
affiliate_id, coproducer_id, transaction_tax, platform_tax, producer_commission, affiliate_commission,
coproducer_commission, platform_commission`

const createPaymentQuery = `
INSERT INTO payments (amount, country, status, buyer_id, producer_id, affiliate_id, coproducer_id,
	transaction_tax, platform_tax, producer_commission, affiliate_commission, coproducer_commission,
	platform_commission)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING ` + paymentColumns

func (r *PaymentRepository) Create(ctx context.Context, args repoargs.PaymentCreate) (*domain.Payment, error) {
	row := r.conn.QueryRow(ctx, createPaymentQuery,
		args.Amount,
		args.Country,
		args.Status,
		args.BuyerID,
		args.ProducerID,
		args.AffiliateID,
		args.CoproducerID,
		args.TransactionTax,
		args.PlatformTax,
		args.ProducerCommission,
		args.AffiliateCommission,
		args.CoproducerCommission,
		args.PlatformCommission,
	)
	payment, err := scanPayment(row)
	if err != nil {
		return nil, convertErr(err, "creating payment for producer %d", args.ProducerID)
	}
	return payment, nil
}

const findPaymentByIDQuery = `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

func (r *PaymentRepository) FindByID(ctx context.Context, id int64) (*domain.Payment, error) {
	row := r.conn.QueryRow(ctx, findPaymentByIDQuery, id)
	payment, err := scanPayment(row)
	if err != nil {
		return nil, convertErr(err, "finding payment %d", id)
	}
	return payment, nil
}

const listPaymentsByProducerQuery = `SELECT ` + paymentColumns + `
FROM payments WHERE producer_id = $1 ORDER BY created_at DESC`

func (r *PaymentRepository) ListByProducer(ctx context.Context, producerID int64) ([]domain.Payment, error) {
	rows, err := r.conn.Query(ctx, listPaymentsByProducerQuery, producerID)
	if err != nil {
		return nil, convertErr(err, "listing payments of producer %d", producerID)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		payment, scanErr := scanPayment(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "listing payments of producer %d", producerID)
		}
		payments = append(payments, *payment)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing payments of producer %d", producerID)
	}
	return payments, nil
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(
		&p.ID,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.Amount,
		&p.Country,
		&p.Status,
		&p.BuyerID,
		&p.ProducerID,
		&p.AffiliateID,
		&p.CoproducerID,
		&p.TransactionTax,
		&p.PlatformTax,
		&p.ProducerCommission,
		&p.AffiliateCommission,
		&p.CoproducerCommission,
		&p.PlatformCommission,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &p, nil
}
