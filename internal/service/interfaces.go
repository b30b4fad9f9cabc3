package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/danilsonvss/payledger/internal/domain"
	"github.com/danilsonvss/payledger/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UserRepository interface {
	CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByRole(ctx context.Context, role domain.UserRole) (*domain.User, error)
}

type BalanceRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Balance, error)
	Adjust(ctx context.Context, userID int64, delta decimal.Decimal) (*domain.Balance, error)
}

type TaxRepository interface {
	Create(ctx context.Context, args repoargs.TaxCreate) (*domain.Tax, error)
	UpdatePercentage(ctx context.Context, id int64, percentage decimal.Decimal) (*domain.Tax, error)
	FindByCountryAndKind(ctx context.Context, country string, kind domain.TaxKind) (*domain.Tax, error)
	List(ctx context.Context) ([]domain.Tax, error)
}

type AffiliationRepository interface {
	Create(ctx context.Context, args repoargs.AffiliationCreate) (*domain.Affiliation, error)
	FindByProducerAndAffiliate(ctx context.Context, producerID, affiliateID int64) (*domain.Affiliation, error)
	ListByProducer(ctx context.Context, producerID int64) ([]domain.Affiliation, error)
}

type CoproductionRepository interface {
	Create(ctx context.Context, args repoargs.CoproductionCreate) (*domain.Coproduction, error)
	FindByProducerAndCoproducer(ctx context.Context, producerID, coproducerID int64) (*domain.Coproduction, error)
	ListByProducer(ctx context.Context, producerID int64) ([]domain.Coproduction, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, args repoargs.PaymentCreate) (*domain.Payment, error)
	FindByID(ctx context.Context, id int64) (*domain.Payment, error)
	ListByProducer(ctx context.Context, producerID int64) ([]domain.Payment, error)
}
