package pgrepo

import (
	"context"

	"github.com/danilsonvss/payledger/internal/domain"
	"github.com/danilsonvss/payledger/internal/repository/repoargs"
	"github.com/danilsonvss/payledger/pkg/uow"
)

type CoproductionRepository struct {
	conn uow.DBTX
}

func NewCoproductionRepository(conn uow.DBTX) *CoproductionRepository {
	return &CoproductionRepository{conn: conn}
}

const createCoproductionQuery = `
INSERT INTO coproductions (producer_id, coproducer_id, percentage)
VALUES ($1, $2, $3)
RETURNING id, created_at, updated_at, producer_id, coproducer_id, percentage`

func (r *CoproductionRepository) Create(
	ctx context.Context,
	args repoargs.CoproductionCreate,
) (*domain.Coproduction, error) {
	row := r.conn.QueryRow(ctx, createCoproductionQuery, args.ProducerID, args.CoproducerID, args.Percentage)
	cp, err := scanCoproduction(row)
	if err != nil {
		return nil, convertErr(err, "creating coproduction %d/%d", args.ProducerID, args.CoproducerID)
	}
	return cp, nil
}

const findCoproductionQuery = `
SELECT id, created_at, updated_at, producer_id, coproducer_id, percentage
FROM coproductions WHERE producer_id = $1 AND coproducer_id = $2`

func (r *CoproductionRepository) FindByProducerAndCoproducer(
	ctx context.Context,
	producerID, coproducerID int64,
) (*domain.Coproduction, error) {
	row := r.conn.QueryRow(ctx, findCoproductionQuery, producerID, coproducerID)
	cp, err := scanCoproduction(row)
	if err != nil {
		return nil, convertErr(err, "finding coproduction %d/%d", producerID, coproducerID)
	}
	return cp, nil
}

const listCoproductionsByProducerQuery = `
SELECT id, created_at, updated_at, producer_id, coproducer_id, percentage
FROM coproductions WHERE producer_id = $1 ORDER BY created_at DESC`

func (r *CoproductionRepository) ListByProducer(ctx context.Context, producerID int64) ([]domain.Coproduction, error) {
	rows, err := r.conn.Query(ctx, listCoproductionsByProducerQuery, producerID)
	if err != nil {
		return nil, convertErr(err, "listing coproductions of producer %d", producerID)
	}
	defer rows.Close()

	var cps []domain.Coproduction
	for rows.Next() {
		cp, scanErr := scanCoproduction(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "listing coproductions of producer %d", producerID)
		}
		cps = append(cps, *cp)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing coproductions of producer %d", producerID)
	}
	return cps, nil
}

func scanCoproduction(row rowScanner) (*domain.Coproduction, error) {
	var c domain.Coproduction
	if err := row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt, &c.ProducerID, &c.CoproducerID, &c.Percentage); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &c, nil
}
