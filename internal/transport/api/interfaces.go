package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/danilsonvss/payledger/internal/domain"
	"github.com/danilsonvss/payledger/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
}

type BalanceServicer interface {
	GetUserBalance(ctx context.Context, userID int64) (*domain.Balance, error)
	UpdateBalance(ctx context.Context, args service.UpdateBalanceArgs) (*domain.Balance, error)
}

type TaxServicer interface {
	Create(ctx context.Context, args service.CreateTaxArgs) (*domain.Tax, error)
	UpdatePercentage(ctx context.Context, id int64, percentage decimal.Decimal) (*domain.Tax, error)
	FindByCountryAndKind(ctx context.Context, country string, kind domain.TaxKind) (*domain.Tax, error)
	List(ctx context.Context) ([]domain.Tax, error)
}

type AgreementServicer interface {
	CreateAffiliation(ctx context.Context, args service.CreateAgreementArgs) (*domain.Affiliation, error)
	CreateCoproduction(ctx context.Context, args service.CreateAgreementArgs) (*domain.Coproduction, error)
	ListAffiliationsByProducer(ctx context.Context, producerID int64) ([]domain.Affiliation, error)
	ListCoproductionsByProducer(ctx context.Context, producerID int64) ([]domain.Coproduction, error)
}

type PaymentServicer interface {
	Process(ctx context.Context, args service.ProcessPaymentArgs) (*domain.Payment, error)
	ListByProducer(ctx context.Context, producerID int64) ([]domain.Payment, error)
}
