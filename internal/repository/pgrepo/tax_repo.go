package pgrepo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/danilsonvss/payledger/internal/domain"
	"github.com/danilsonvss/payledger/internal/repository/repoargs"
	"github.com/danilsonvss/payledger/pkg/uow"
)

type TaxRepository struct {
	conn uow.DBTX
}

func NewTaxRepository(conn uow.DBTX) *TaxRepository {
	return &TaxRepository{conn: conn}
}

const createTaxQuery = `
INSERT INTO taxes (country, kind, percentage)
VALUES ($1, $2, $3)
RETURNING id, created_at, updated_at, country, kind, percentage`

func (r *TaxRepository) Create(ctx context.Context, args repoargs.TaxCreate) (*domain.Tax, error) {
	row := r.conn.QueryRow(ctx, createTaxQuery, args.Country, args.Kind, args.Percentage)
	tax, err := scanTax(row)
	if err != nil {
		return nil, convertErr(err, "creating tax %s/%s", args.Country, args.Kind)
	}
	return tax, nil
}

const updateTaxPercentageQuery = `
UPDATE taxes SET percentage = $2, updated_at = now() WHERE id = $1
RETURNING id, created_at, updated_at, country, kind, percentage`

func (r *TaxRepository) UpdatePercentage(ctx context.Context, id int64, percentage decimal.Decimal) (*domain.Tax, error) {
	row := r.conn.QueryRow(ctx, updateTaxPercentageQuery, id, percentage)
	tax, err := scanTax(row)
	if err != nil {
		return nil, convertErr(err, "updating tax %d", id)
	}
	return tax, nil
}

const findTaxByCountryAndKindQuery = `
SELECT id, created_at, updated_at, country, kind, percentage FROM taxes WHERE country = $1 AND kind = $2`

// FindByCountryAndKind возвращает ставку налога для пары (страна, вид). Отсутствие записи - валидное
// состояние (налог 0%), ErrRecordNotFound обрабатывается вызывающей стороной.
func (r *TaxRepository) FindByCountryAndKind(
	ctx context.Context,
	country string,
	kind domain.TaxKind,
) (*domain.Tax, error) {
	row := r.conn.QueryRow(ctx, findTaxByCountryAndKindQuery, country, kind)
	tax, err := scanTax(row)
	if err != nil {
		return nil, convertErr(err, "finding tax %s/%s", country, kind)
	}
	return tax, nil
}

const listTaxesQuery = `
SELECT id, created_at, updated_at, country, kind, percentage FROM taxes ORDER BY country, kind`

func (r *TaxRepository) List(ctx context.Context) ([]domain.Tax, error) {
	rows, err := r.conn.Query(ctx, listTaxesQuery)
	if err != nil {
		return nil, convertErr(err, "listing taxes")
	}
	defer rows.Close()

	var taxes []domain.Tax
	for rows.Next() {
		tax, scanErr := scanTax(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "listing taxes")
		}
		taxes = append(taxes, *tax)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing taxes")
	}
	return taxes, nil
}

func scanTax(row rowScanner) (*domain.Tax, error) {
	var t domain.Tax
	if err := row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt, &t.Country, &t.Kind, &t.Percentage); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &t, nil
}
