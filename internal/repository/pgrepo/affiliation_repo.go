package pgrepo

import (
	"context"

	"github.com/danilsonvss/payledger/internal/domain"
	"github.com/danilsonvss/payledger/internal/repository/repoargs"
	"github.com/danilsonvss/payledger/pkg/uow"
)

type AffiliationRepository struct {
	conn uow.DBTX
}

func NewAffiliationRepository(conn uow.DBTX) *AffiliationRepository {
	return &AffiliationRepository{conn: conn}
}

const createAffiliationQuery = `
INSERT INTO affiliations (producer_id, affiliate_id, percentage)
VALUES ($1, $2, $3)
RETURNING id, created_at, updated_at, producer_id, affiliate_id, percentage`

func (r *AffiliationRepository) Create(ctx context.Context, args repoargs.AffiliationCreate) (*domain.Affiliation, error) {
	row := r.conn.QueryRow(ctx, createAffiliationQuery, args.ProducerID, args.AffiliateID, args.Percentage)
	aff, err := scanAffiliation(row)
	if err != nil {
		return nil, convertErr(err, "creating affiliation %d/%d", args.ProducerID, args.AffiliateID)
	}
	return aff, nil
}

const findAffiliationQuery = `
SELECT id, created_at, updated_at, producer_id, affiliate_id, percentage
FROM affiliations WHERE producer_id = $1 AND affiliate_id = $2`

func (r *AffiliationRepository) FindByProducerAndAffiliate(
	ctx context.Context,
	producerID, affiliateID int64,
) (*domain.Affiliation, error) {
	row := r.conn.QueryRow(ctx, findAffiliationQuery, producerID, affiliateID)
	aff, err := scanAffiliation(row)
	if err != nil {
		return nil, convertErr(err, "finding affiliation %d/%d", producerID, affiliateID)
	}
	return aff, nil
}

const listAffiliationsByProducerQuery = `
SELECT id, created_at, updated_at, producer_id, affiliate_id, percentage
FROM affiliations WHERE producer_id = $1 ORDER BY created_at DESC`

func (r *AffiliationRepository) ListByProducer(ctx context.Context, producerID int64) ([]domain.Affiliation, error) {
	rows, err := r.conn.Query(ctx, listAffiliationsByProducerQuery, producerID)
	if err != nil {
		return nil, convertErr(err, "listing affiliations of producer %d", producerID)
	}
	defer rows.Close()

	var affs []domain.Affiliation
	for rows.Next() {
		aff, scanErr := scanAffiliation(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "listing affiliations of producer %d", producerID)
		}
		affs = append(affs, *aff)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing affiliations of producer %d", producerID)
	}
	return affs, nil
}

func scanAffiliation(row rowScanner) (*domain.Affiliation, error) {
	var a domain.Affiliation
	if err := row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt, &a.ProducerID, &a.AffiliateID, &a.Percentage); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &a, nil
}
