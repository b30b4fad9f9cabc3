package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/danilsonvss/payledger/internal/domain"
	"github.com/danilsonvss/payledger/internal/repository/repoargs"
	"github.com/danilsonvss/payledger/pkg/uow"
)

// AgreementService управляет соглашениями о разделе выручки: аффилиациями и копродукциями.
type AgreementService struct {
	uow              uow.UOW
	userRepo         UserRepository
	affiliationRepo  AffiliationRepository
	coproductionRepo CoproductionRepository
}

func NewAgreementService(u uow.UOW) (*AgreementService, error) {
	userRepo, err := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err
	}
	affiliationRepo, err := uow.GetRepositoryAs[AffiliationRepository](u, uow.RepositoryName(repoargs.AffiliationRepoName))
	if err != nil {
		return nil, err
	}
	coproductionRepo, err := uow.GetRepositoryAs[CoproductionRepository](
		u, uow.RepositoryName(repoargs.CoproductionRepoName))
	if err != nil {
		return nil, err
	}
	return &AgreementService{
		uow:              u,
		userRepo:         userRepo,
		affiliationRepo:  affiliationRepo,
		coproductionRepo: coproductionRepo,
	}, nil
}

type CreateAgreementArgs struct {
	ProducerID int64
	PartnerID  int64
	Percentage decimal.Decimal
}

// CreateAffiliation создает соглашение продюсер-аффилиат. Продюсер и аффилиат не могут совпадать
// (domain.ErrOwnerConflict), по паре допустима максимум одна запись (domain.ErrDuplicateKey).
func (a *AgreementService) CreateAffiliation(ctx context.Context, args CreateAgreementArgs) (*domain.Affiliation, error) {
	if err := a.validateAgreement(ctx, args); err != nil {
		return nil, err
	}
	affiliation, err := a.affiliationRepo.Create(ctx, repoargs.AffiliationCreate{
		ProducerID:  args.ProducerID,
		AffiliateID: args.PartnerID,
		Percentage:  args.Percentage,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return affiliation, nil
}

// CreateCoproduction создает соглашение продюсер-со-продюсер с теми же правилами что и CreateAffiliation.
func (a *AgreementService) CreateCoproduction(
	ctx context.Context,
	args CreateAgreementArgs,
) (*domain.Coproduction, error) {
	if err := a.validateAgreement(ctx, args); err != nil {
		return nil, err
	}
	coproduction, err := a.coproductionRepo.Create(ctx, repoargs.CoproductionCreate{
		ProducerID:   args.ProducerID,
		CoproducerID: args.PartnerID,
		Percentage:   args.Percentage,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return coproduction, nil
}

func (a *AgreementService) ListAffiliationsByProducer(
	ctx context.Context,
	producerID int64,
) ([]domain.Affiliation, error) {
	affiliations, err := a.affiliationRepo.ListByProducer(ctx, producerID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return affiliations, nil
}

func (a *AgreementService) ListCoproductionsByProducer(
	ctx context.Context,
	producerID int64,
) ([]domain.Coproduction, error) {
	coproductions, err := a.coproductionRepo.ListByProducer(ctx, producerID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return coproductions, nil
}

func (a *AgreementService) validateAgreement(ctx context.Context, args CreateAgreementArgs) error {
	if args.ProducerID == args.PartnerID {
		return fmt.Errorf("creating agreement: %w", domain.ErrOwnerConflict)
	}
	if !isValidPercentage(args.Percentage) {
		return fmt.Errorf("creating agreement: %w", domain.ErrInvalidPercentage)
	}
	for _, id := range []int64{args.ProducerID, args.PartnerID} {
		if _, err := a.userRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				return fmt.Errorf("creating agreement: user %d: %w", id, domain.ErrRecordNotFound)
			}
			return fmt.Errorf("creating agreement: %w", err)
		}
	}
	return nil
}
