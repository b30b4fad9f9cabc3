package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/danilsonvss/payledger/internal/domain"
	"github.com/danilsonvss/payledger/internal/repository/repoargs"
	"github.com/danilsonvss/payledger/pkg/uow"
)

type TaxService struct {
	uow     uow.UOW
	taxRepo TaxRepository
}

func NewTaxService(u uow.UOW) (*TaxService, error) {
	taxRepo, err := uow.GetRepositoryAs[TaxRepository](u, uow.RepositoryName(repoargs.TaxRepoName))
	if err != nil {
		return nil, err
	}
	return &TaxService{
		uow:     u,
		taxRepo: taxRepo,
	}, nil
}

type CreateTaxArgs struct {
	Country    string
	Kind       domain.TaxKind
	Percentage decimal.Decimal
}

// Create создает ставку налога для пары (страна, вид). Страна нормализуется в верхний регистр.
// Дубликат пары возвращает domain.ErrDuplicateKey.
func (t *TaxService) Create(ctx context.Context, args CreateTaxArgs) (*domain.Tax, error) {
	if !isValidPercentage(args.Percentage) {
		return nil, fmt.Errorf("creating tax: %w", domain.ErrInvalidPercentage)
	}
	tax, err := t.taxRepo.Create(ctx, repoargs.TaxCreate{
		Country:    strings.ToUpper(strings.TrimSpace(args.Country)),
		Kind:       args.Kind,
		Percentage: args.Percentage,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return tax, nil
}

// UpdatePercentage изменяет процент существующей ставки. Идентичность ставки (страна+вид) неизменна.
func (t *TaxService) UpdatePercentage(ctx context.Context, id int64, percentage decimal.Decimal) (*domain.Tax, error) {
	if !isValidPercentage(percentage) {
		return nil, fmt.Errorf("updating tax: %w", domain.ErrInvalidPercentage)
	}
	tax, err := t.taxRepo.UpdatePercentage(ctx, id, percentage)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return tax, nil
}

func (t *TaxService) FindByCountryAndKind(
	ctx context.Context,
	country string,
	kind domain.TaxKind,
) (*domain.Tax, error) {
	tax, err := t.taxRepo.FindByCountryAndKind(ctx, strings.ToUpper(strings.TrimSpace(country)), kind)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return tax, nil
}

func (t *TaxService) List(ctx context.Context) ([]domain.Tax, error) {
	taxes, err := t.taxRepo.List(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return taxes, nil
}
