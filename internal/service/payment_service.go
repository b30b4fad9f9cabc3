package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/danilsonvss/payledger/internal/domain"
	"github.com/danilsonvss/payledger/internal/repository/repoargs"
	"github.com/danilsonvss/payledger/pkg/uow"
)

type PaymentService struct {
	uow              uow.UOW
	userRepo         UserRepository
	balanceRepo      BalanceRepository
	taxRepo          TaxRepository
	affiliationRepo  AffiliationRepository
	coproductionRepo CoproductionRepository
	paymentRepo      PaymentRepository
	txTimeout        time.Duration
}

func NewPaymentService(u uow.UOW, txTimeout time.Duration) (*PaymentService, error) {
	userRepo, err := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err
	}
	balanceRepo, err := uow.GetRepositoryAs[BalanceRepository](u, uow.RepositoryName(repoargs.BalanceRepoName))
	if err != nil {
		return nil, err
	}
	taxRepo, err := uow.GetRepositoryAs[TaxRepository](u, uow.RepositoryName(repoargs.TaxRepoName))
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
	paymentRepo, err := uow.GetRepositoryAs[PaymentRepository](u, uow.RepositoryName(repoargs.PaymentRepoName))
	if err != nil {
		return nil, err
	}
	return &PaymentService{
		uow:              u,
		userRepo:         userRepo,
		balanceRepo:      balanceRepo,
		taxRepo:          taxRepo,
		affiliationRepo:  affiliationRepo,
		coproductionRepo: coproductionRepo,
		paymentRepo:      paymentRepo,
		txTimeout:        txTimeout,
	}, nil
}

type ProcessPaymentArgs struct {
	Amount       decimal.Decimal
	Country      string
	BuyerID      int64
	ProducerID   int64
	AffiliateID  *int64
	CoproducerID *int64
}

// Process проводит платеж: валидирует участников и баланс покупателя, собирает налоговые ставки и проценты
// соглашений, рассчитывает распределение (Settle) и атомарно применяет его.
//
// Вся запись происходит внутри одной serializable транзакции с дедлайном: списание с покупателя
// (условный атомарный декремент, закрывающий гонку с конкурентным платежом, опустошившим баланс после
// предварительной проверки), вставка записи платежа и зачисления продюсеру, аффилиату, со-продюсеру
// и платформе. Либо применяется все, либо ничего.
//
// Ошибки валидации и расчета возвращаются до открытия транзакции без каких-либо побочных эффектов.
// Истекший дедлайн транзакции возвращается как domain.ErrPaymentTxTimeout, обрыв транзакции
// конкурентом - как domain.ErrPaymentTxAborted; в отличие от бизнес-ошибок такие запросы
// безопасно повторять.
func (p *PaymentService) Process(ctx context.Context, args ProcessPaymentArgs) (*domain.Payment, error) {
	if !args.Amount.IsPositive() {
		return nil, fmt.Errorf("processing payment: %w", domain.ErrInvalidAmount)
	}

	// Fail-fast проверка баланса покупателя до любых дальнейших запросов. Перепроверяется
	// внутри транзакции самим условным декрементом.
	if err := p.checkBuyerBalance(ctx, args.BuyerID, args.Amount); err != nil {
		return nil, err
	}

	if err := p.resolveParticipants(ctx, args); err != nil {
		return nil, err
	}

	country := strings.ToUpper(strings.TrimSpace(args.Country))

	settleArgs, rateErr := p.gatherRates(ctx, country, args)
	if rateErr != nil {
		return nil, rateErr
	}

	settlement, settleErr := Settle(*settleArgs)
	if settleErr != nil {
		return nil, settleErr
	}

	var payment *domain.Payment
	txErr := p.uow.DoSerializable(ctx, p.txTimeout, func(c context.Context, tx uow.TX) error {
		return p.persistSettlement(c, tx, args, country, settlement, &payment)
	})
	if txErr != nil {
		switch {
		case errors.Is(txErr, context.DeadlineExceeded):
			return nil, fmt.Errorf("processing payment: %w", domain.ErrPaymentTxTimeout)
		case isSerializationAbort(txErr):
			return nil, fmt.Errorf("processing payment: %w", domain.ErrPaymentTxAborted)
		}
		return nil, fmt.Errorf("processing payment: %w", txErr)
	}
	return payment, nil
}

// Коды SQLSTATE обрыва транзакции: под уровнем изоляции Serializable постгрес откатывает одну из
// конкурирующих транзакций, это штатный исход, а не поломка.
const (
	pgSerializationFailureCode = "40001"
	pgDeadlockDetectedCode     = "40P01"
)

// isSerializationAbort распознает обрыв serializable-транзакции. Ошибки запросов внутри транзакции
// приходят уже сконвертированными слоем репозитория, но обрыв на коммите выныривает из uow сырой
// ошибкой pgconn - проверяем обе формы.
func isSerializationAbort(err error) bool {
	if errors.Is(err, domain.ErrPaymentTxAborted) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgSerializationFailureCode || pgErr.Code == pgDeadlockDetectedCode
	}
	return false
}

// ListByProducer возвращает платежи продюсера отсортированные по дате создания по убыванию.
func (p *PaymentService) ListByProducer(ctx context.Context, producerID int64) ([]domain.Payment, error) {
	payments, err := p.paymentRepo.ListByProducer(ctx, producerID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return payments, nil
}

func (p *PaymentService) checkBuyerBalance(ctx context.Context, buyerID int64, amount decimal.Decimal) error {
	balance, err := p.balanceRepo.GetByUserID(ctx, buyerID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return fmt.Errorf("processing payment: %w", domain.ErrNotEnoughBalance)
		}
		return fmt.Errorf("processing payment: %w", err)
	}
	if amount.GreaterThan(balance.Amount) {
		return fmt.Errorf("processing payment: %w", domain.ErrNotEnoughBalance)
	}
	return nil
}

func (p *PaymentService) resolveParticipants(ctx context.Context, args ProcessPaymentArgs) error {
	if err := p.resolveUser(ctx, args.ProducerID, domain.ParticipantProducer); err != nil {
		return err
	}
	if args.AffiliateID != nil {
		if err := p.resolveUser(ctx, *args.AffiliateID, domain.ParticipantAffiliate); err != nil {
			return err
		}
	}
	if args.CoproducerID != nil {
		if err := p.resolveUser(ctx, *args.CoproducerID, domain.ParticipantCoproducer); err != nil {
			return err
		}
	}
	return nil
}

func (p *PaymentService) resolveUser(ctx context.Context, id int64, role domain.ParticipantRole) error {
	if _, err := p.userRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.NewParticipantNotFoundError(role, id)
		}
		return fmt.Errorf("processing payment: %w", err)
	}
	return nil
}

// gatherRates собирает налоговые ставки и проценты соглашений. Отсутствие ставки налога означает 0%.
// Отсутствие соглашения означает отсутствие комиссии вообще (nil), а не 0% - строка комиссии
// в платеже в этом случае не появляется.
func (p *PaymentService) gatherRates(
	ctx context.Context,
	country string,
	args ProcessPaymentArgs,
) (*SettleArgs, error) {
	transactionPct, trErr := p.taxPercentage(ctx, country, domain.TaxKindTransaction)
	if trErr != nil {
		return nil, trErr
	}
	platformPct, plErr := p.taxPercentage(ctx, country, domain.TaxKindPlatform)
	if plErr != nil {
		return nil, plErr
	}

	settleArgs := SettleArgs{
		GrossAmount:       args.Amount,
		TransactionTaxPct: transactionPct,
		PlatformTaxPct:    platformPct,
	}

	if args.AffiliateID != nil {
		affiliation, err := p.affiliationRepo.FindByProducerAndAffiliate(ctx, args.ProducerID, *args.AffiliateID)
		switch {
		case err == nil:
			settleArgs.AffiliatePct = &affiliation.Percentage
		case !errors.Is(err, domain.ErrRecordNotFound):
			return nil, fmt.Errorf("processing payment: %w", err)
		}
	}
	if args.CoproducerID != nil {
		coproduction, err := p.coproductionRepo.FindByProducerAndCoproducer(ctx, args.ProducerID, *args.CoproducerID)
		switch {
		case err == nil:
			settleArgs.CoproducerPct = &coproduction.Percentage
		case !errors.Is(err, domain.ErrRecordNotFound):
			return nil, fmt.Errorf("processing payment: %w", err)
		}
	}
	return &settleArgs, nil
}

func (p *PaymentService) taxPercentage(
	ctx context.Context,
	country string,
	kind domain.TaxKind,
) (decimal.Decimal, error) {
	tax, err := p.taxRepo.FindByCountryAndKind(ctx, country, kind)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("processing payment: %w", err)
	}
	return tax.Percentage, nil
}

func (p *PaymentService) persistSettlement(
	ctx context.Context,
	tx uow.TX,
	args ProcessPaymentArgs,
	country string,
	settlement *Settlement,
	payment **domain.Payment,
) error {
	balanceRepo, balErr := uow.GetAs[BalanceRepository](tx, uow.RepositoryName(repoargs.BalanceRepoName))
	if balErr != nil {
		return balErr //nolint:wrapcheck
	}
	paymentRepo, payErr := uow.GetAs[PaymentRepository](tx, uow.RepositoryName(repoargs.PaymentRepoName))
	if payErr != nil {
		return payErr //nolint:wrapcheck
	}
	userRepo, userErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
	if userErr != nil {
		return userErr //nolint:wrapcheck
	}

	if _, err := balanceRepo.Adjust(ctx, args.BuyerID, args.Amount.Neg()); err != nil {
		return err //nolint:wrapcheck
	}

	created, createErr := paymentRepo.Create(ctx, repoargs.PaymentCreate{
		Amount:               args.Amount,
		Country:              country,
		Status:               domain.PaymentStatusApproved,
		BuyerID:              args.BuyerID,
		ProducerID:           args.ProducerID,
		AffiliateID:          args.AffiliateID,
		CoproducerID:         args.CoproducerID,
		TransactionTax:       settlement.TransactionTax,
		PlatformTax:          settlement.PlatformTax,
		ProducerCommission:   settlement.ProducerCommission,
		AffiliateCommission:  settlement.AffiliateCommission,
		CoproducerCommission: settlement.CoproducerCommission,
		PlatformCommission:   settlement.PlatformCommission,
	})
	if createErr != nil {
		return createErr //nolint:wrapcheck
	}

	if _, err := balanceRepo.Adjust(ctx, args.ProducerID, settlement.ProducerCommission); err != nil {
		return err //nolint:wrapcheck
	}
	if args.AffiliateID != nil && settlement.AffiliateCommission != nil && settlement.AffiliateCommission.IsPositive() {
		if _, err := balanceRepo.Adjust(ctx, *args.AffiliateID, *settlement.AffiliateCommission); err != nil {
			return err //nolint:wrapcheck
		}
	}
	if args.CoproducerID != nil && settlement.CoproducerCommission != nil &&
		settlement.CoproducerCommission.IsPositive() {
		if _, err := balanceRepo.Adjust(ctx, *args.CoproducerID, *settlement.CoproducerCommission); err != nil {
			return err //nolint:wrapcheck
		}
	}

	if settlement.PlatformCommission.IsPositive() {
		platformUser, platformErr := userRepo.FindByRole(ctx, domain.RolePlatform)
		switch {
		case platformErr == nil:
			if _, err := balanceRepo.Adjust(ctx, platformUser.ID, settlement.PlatformCommission); err != nil {
				return err //nolint:wrapcheck
			}
		case !errors.Is(platformErr, domain.ErrRecordNotFound):
			return platformErr //nolint:wrapcheck
		}
		// Платформенный аккаунт может отсутствовать - платеж все равно проводится,
		// платформенная доля в этом случае никому не зачисляется.
	}

	*payment = created
	return nil
}
