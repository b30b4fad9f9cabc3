package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/danilsonvss/payledger/internal/domain"
	"github.com/danilsonvss/payledger/internal/repository/repoargs"
	"github.com/danilsonvss/payledger/internal/service/mocks"
	"github.com/danilsonvss/payledger/pkg/uow"
	uowmocks "github.com/danilsonvss/payledger/pkg/uow/mocks"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockCtrl             *gomock.Controller
	mockUOW              *uowmocks.MockUOW
	mockTX               *uowmocks.MockTX
	mockUserRepo         *mocks.MockUserRepository
	mockBalanceRepo      *mocks.MockBalanceRepository
	mockTaxRepo          *mocks.MockTaxRepository
	mockAffiliationRepo  *mocks.MockAffiliationRepository
	mockCoproductionRepo *mocks.MockCoproductionRepository
	mockPaymentRepo      *mocks.MockPaymentRepository
	service              *PaymentService
}

func TestPaymentServiceSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func (s *PaymentServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockBalanceRepo = mocks.NewMockBalanceRepository(s.mockCtrl)
	s.mockTaxRepo = mocks.NewMockTaxRepository(s.mockCtrl)
	s.mockAffiliationRepo = mocks.NewMockAffiliationRepository(s.mockCtrl)
	s.mockCoproductionRepo = mocks.NewMockCoproductionRepository(s.mockCtrl)
	s.mockPaymentRepo = mocks.NewMockPaymentRepository(s.mockCtrl)

	repos := map[repoargs.RepositoryName]any{
		repoargs.UserRepoName:         s.mockUserRepo,
		repoargs.BalanceRepoName:      s.mockBalanceRepo,
		repoargs.TaxRepoName:          s.mockTaxRepo,
		repoargs.AffiliationRepoName:  s.mockAffiliationRepo,
		repoargs.CoproductionRepoName: s.mockCoproductionRepo,
		repoargs.PaymentRepoName:      s.mockPaymentRepo,
	}
	for name, repo := range repos {
		s.mockUOW.EXPECT().
			GetRepository(uow.RepositoryName(name)).
			Return(repo, nil).AnyTimes()
		s.mockTX.EXPECT().
			Get(uow.RepositoryName(name)).
			Return(repo, nil).AnyTimes()
	}

	var err error
	s.service, err = NewPaymentService(s.mockUOW, time.Second)
	s.Require().NoError(err)
}

func (s *PaymentServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectSerializableTx настраивает мок UOW так, чтобы переданная функция выполнялась сразу на mockTX.
func (s *PaymentServiceTestSuite) expectSerializableTx() {
	s.mockUOW.EXPECT().
		DoSerializable(gomock.Any(), time.Second, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ time.Duration, fn func(context.Context, uow.TX) error) error {
			return fn(s.T().Context(), s.mockTX)
		})
}

func (s *PaymentServiceTestSuite) expectBuyerBalance(buyerID int64, amount decimal.Decimal) {
	s.mockBalanceRepo.EXPECT().
		GetByUserID(gomock.Any(), buyerID).
		Return(&domain.Balance{UserID: buyerID, Amount: amount}, nil)
}

func (s *PaymentServiceTestSuite) expectUserExists(ids ...int64) {
	for _, id := range ids {
		s.mockUserRepo.EXPECT().
			FindByID(gomock.Any(), id).
			Return(&domain.User{ID: id}, nil)
	}
}

func (s *PaymentServiceTestSuite) expectTaxes(country string, transactionPct, platformPct decimal.Decimal) {
	s.mockTaxRepo.EXPECT().
		FindByCountryAndKind(gomock.Any(), country, domain.TaxKindTransaction).
		Return(&domain.Tax{Country: country, Kind: domain.TaxKindTransaction, Percentage: transactionPct}, nil)
	s.mockTaxRepo.EXPECT().
		FindByCountryAndKind(gomock.Any(), country, domain.TaxKindPlatform).
		Return(&domain.Tax{Country: country, Kind: domain.TaxKindPlatform, Percentage: platformPct}, nil)
}

func (s *PaymentServiceTestSuite) TestProcess_FullSplit() {
	var (
		buyerID      int64 = 1
		producerID   int64 = 2
		affiliateID  int64 = 3
		coproducerID int64 = 4
		platformID   int64 = 99
	)
	amount := decimal.NewFromInt(1000)

	s.expectBuyerBalance(buyerID, decimal.NewFromInt(5000))
	s.expectUserExists(producerID, affiliateID, coproducerID)
	s.expectTaxes("BR", decimal.NewFromInt(5), decimal.NewFromInt(2))

	s.mockAffiliationRepo.EXPECT().
		FindByProducerAndAffiliate(gomock.Any(), producerID, affiliateID).
		Return(&domain.Affiliation{
			ProducerID:  producerID,
			AffiliateID: affiliateID,
			Percentage:  decimal.NewFromInt(10),
		}, nil)
	s.mockCoproductionRepo.EXPECT().
		FindByProducerAndCoproducer(gomock.Any(), producerID, coproducerID).
		Return(&domain.Coproduction{
			ProducerID:   producerID,
			CoproducerID: coproducerID,
			Percentage:   decimal.NewFromInt(15),
		}, nil)

	s.expectSerializableTx()

	// фиксируем все движения по балансам: userID -> delta.
	adjustments := make(map[int64]decimal.Decimal)
	s.mockBalanceRepo.EXPECT().
		Adjust(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, userID int64, delta decimal.Decimal) (*domain.Balance, error) {
			adjustments[userID] = delta
			return &domain.Balance{UserID: userID, Amount: delta}, nil
		}).Times(5)

	s.mockPaymentRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.PaymentCreate) (*domain.Payment, error) {
			s.Equal(domain.PaymentStatusApproved, args.Status)
			s.Equal(buyerID, args.BuyerID)
			s.Equal(producerID, args.ProducerID)
			s.True(args.TransactionTax.Equal(decimal.NewFromInt(50)))
			s.True(args.PlatformTax.Equal(decimal.NewFromInt(20)))
			s.True(args.ProducerCommission.Equal(decimal.NewFromFloat(692.5)))
			s.Require().NotNil(args.AffiliateCommission)
			s.True(args.AffiliateCommission.Equal(decimal.NewFromInt(95)))
			s.Require().NotNil(args.CoproducerCommission)
			s.True(args.CoproducerCommission.Equal(decimal.NewFromFloat(142.5)))
			s.True(args.PlatformCommission.Equal(decimal.NewFromInt(20)))
			return &domain.Payment{ID: 10, Status: args.Status, BuyerID: args.BuyerID, ProducerID: args.ProducerID}, nil
		})

	s.mockUserRepo.EXPECT().
		FindByRole(gomock.Any(), domain.RolePlatform).
		Return(&domain.User{ID: platformID, Role: domain.RolePlatform}, nil)

	payment, err := s.service.Process(s.T().Context(), ProcessPaymentArgs{
		Amount:       amount,
		Country:      "br",
		BuyerID:      buyerID,
		ProducerID:   producerID,
		AffiliateID:  &affiliateID,
		CoproducerID: &coproducerID,
	})
	s.Require().NoError(err)
	s.Require().NotNil(payment)
	s.EqualValues(10, payment.ID)

	s.True(adjustments[buyerID].Equal(amount.Neg()), "buyer debit: %s", adjustments[buyerID])
	s.True(adjustments[producerID].Equal(decimal.NewFromFloat(692.5)), "producer credit: %s", adjustments[producerID])
	s.True(adjustments[affiliateID].Equal(decimal.NewFromInt(95)), "affiliate credit: %s", adjustments[affiliateID])
	s.True(adjustments[coproducerID].Equal(decimal.NewFromFloat(142.5)), "coproducer credit: %s", adjustments[coproducerID])
	s.True(adjustments[platformID].Equal(decimal.NewFromInt(20)), "platform credit: %s", adjustments[platformID])
}

func (s *PaymentServiceTestSuite) TestProcess_MissingPlatformAccount() {
	var (
		buyerID    int64 = 1
		producerID int64 = 2
	)

	s.expectBuyerBalance(buyerID, decimal.NewFromInt(1000))
	s.expectUserExists(producerID)
	s.expectTaxes("BR", decimal.NewFromInt(5), decimal.NewFromInt(2))
	s.expectSerializableTx()

	s.mockBalanceRepo.EXPECT().
		Adjust(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.Balance{}, nil).Times(2)
	s.mockPaymentRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(&domain.Payment{ID: 11}, nil)

	// платформенный аккаунт не заведен - платеж все равно проводится.
	s.mockUserRepo.EXPECT().
		FindByRole(gomock.Any(), domain.RolePlatform).
		Return(nil, domain.ErrRecordNotFound)

	payment, err := s.service.Process(s.T().Context(), ProcessPaymentArgs{
		Amount:     decimal.NewFromInt(100),
		Country:    "BR",
		BuyerID:    buyerID,
		ProducerID: producerID,
	})
	s.Require().NoError(err)
	s.EqualValues(11, payment.ID)
}

func (s *PaymentServiceTestSuite) TestProcess_MissingAgreementMeansNoCommission() {
	var (
		buyerID     int64 = 1
		producerID  int64 = 2
		affiliateID int64 = 3
	)

	s.expectBuyerBalance(buyerID, decimal.NewFromInt(1000))
	s.expectUserExists(producerID, affiliateID)
	s.expectTaxes("US", decimal.Zero, decimal.Zero)

	// аффилиат существует, но соглашения с этим продюсером нет.
	s.mockAffiliationRepo.EXPECT().
		FindByProducerAndAffiliate(gomock.Any(), producerID, affiliateID).
		Return(nil, domain.ErrRecordNotFound)

	s.expectSerializableTx()

	s.mockBalanceRepo.EXPECT().
		Adjust(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.Balance{}, nil).Times(2)
	s.mockPaymentRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.PaymentCreate) (*domain.Payment, error) {
			s.Nil(args.AffiliateCommission)
			s.True(args.ProducerCommission.Equal(decimal.NewFromInt(100)))
			return &domain.Payment{ID: 12}, nil
		})

	payment, err := s.service.Process(s.T().Context(), ProcessPaymentArgs{
		Amount:      decimal.NewFromInt(100),
		Country:     "US",
		BuyerID:     buyerID,
		ProducerID:  producerID,
		AffiliateID: &affiliateID,
	})
	s.Require().NoError(err)
	s.EqualValues(12, payment.ID)
}

func (s *PaymentServiceTestSuite) TestProcess_InvalidAmount() {
	_, err := s.service.Process(s.T().Context(), ProcessPaymentArgs{
		Amount:     decimal.Zero,
		Country:    "BR",
		BuyerID:    1,
		ProducerID: 2,
	})
	s.Require().ErrorIs(err, domain.ErrInvalidAmount)
}

func (s *PaymentServiceTestSuite) TestProcess_NotEnoughBalanceFailsFast() {
	var buyerID int64 = 1

	// баланс меньше суммы платежа - до поиска участников дело не доходит,
	// моки userRepo/taxRepo не настроены.
	s.expectBuyerBalance(buyerID, decimal.NewFromInt(10))

	_, err := s.service.Process(s.T().Context(), ProcessPaymentArgs{
		Amount:     decimal.NewFromInt(100),
		Country:    "BR",
		BuyerID:    buyerID,
		ProducerID: 2,
	})
	s.Require().ErrorIs(err, domain.ErrNotEnoughBalance)
}

func (s *PaymentServiceTestSuite) TestProcess_NoBalanceRecordMeansNotEnough() {
	var buyerID int64 = 1

	s.mockBalanceRepo.EXPECT().
		GetByUserID(gomock.Any(), buyerID).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.Process(s.T().Context(), ProcessPaymentArgs{
		Amount:     decimal.NewFromInt(100),
		Country:    "BR",
		BuyerID:    buyerID,
		ProducerID: 2,
	})
	s.Require().ErrorIs(err, domain.ErrNotEnoughBalance)
}

func (s *PaymentServiceTestSuite) TestProcess_ProducerNotFound() {
	var (
		buyerID    int64 = 1
		producerID int64 = 2
	)

	s.expectBuyerBalance(buyerID, decimal.NewFromInt(1000))
	s.mockUserRepo.EXPECT().
		FindByID(gomock.Any(), producerID).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.Process(s.T().Context(), ProcessPaymentArgs{
		Amount:     decimal.NewFromInt(100),
		Country:    "BR",
		BuyerID:    buyerID,
		ProducerID: producerID,
	})

	var participantErr *domain.ParticipantNotFoundError
	s.Require().ErrorAs(err, &participantErr)
	s.Equal(domain.ParticipantProducer, participantErr.Role)
	s.Equal(producerID, participantErr.UserID)
}

func (s *PaymentServiceTestSuite) TestProcess_TxDeadline() {
	var (
		buyerID    int64 = 1
		producerID int64 = 2
	)

	s.expectBuyerBalance(buyerID, decimal.NewFromInt(1000))
	s.expectUserExists(producerID)
	s.expectTaxes("BR", decimal.Zero, decimal.Zero)

	s.mockUOW.EXPECT().
		DoSerializable(gomock.Any(), time.Second, gomock.Any()).
		Return(context.DeadlineExceeded)

	_, err := s.service.Process(s.T().Context(), ProcessPaymentArgs{
		Amount:     decimal.NewFromInt(100),
		Country:    "BR",
		BuyerID:    buyerID,
		ProducerID: producerID,
	})
	s.Require().ErrorIs(err, domain.ErrPaymentTxTimeout)
}

func (s *PaymentServiceTestSuite) TestProcess_SerializationAbort() {
	var (
		buyerID    int64 = 1
		producerID int64 = 2
	)

	s.expectBuyerBalance(buyerID, decimal.NewFromInt(1000))
	s.expectUserExists(producerID)
	s.expectTaxes("BR", decimal.Zero, decimal.Zero)

	// постгрес оборвал serializable-транзакцию на коммите, ошибка приходит сырой из uow.
	s.mockUOW.EXPECT().
		DoSerializable(gomock.Any(), time.Second, gomock.Any()).
		Return(&pgconn.PgError{Code: "40001", Message: "could not serialize access"})

	_, err := s.service.Process(s.T().Context(), ProcessPaymentArgs{
		Amount:     decimal.NewFromInt(100),
		Country:    "BR",
		BuyerID:    buyerID,
		ProducerID: producerID,
	})
	s.Require().ErrorIs(err, domain.ErrPaymentTxAborted)
}

func (s *PaymentServiceTestSuite) TestProcess_CommissionsExceedNet() {
	var (
		buyerID      int64 = 1
		producerID   int64 = 2
		affiliateID  int64 = 3
		coproducerID int64 = 4
	)

	s.expectBuyerBalance(buyerID, decimal.NewFromInt(5000))
	s.expectUserExists(producerID, affiliateID, coproducerID)
	s.expectTaxes("BR", decimal.NewFromInt(5), decimal.NewFromInt(2))

	s.mockAffiliationRepo.EXPECT().
		FindByProducerAndAffiliate(gomock.Any(), producerID, affiliateID).
		Return(&domain.Affiliation{
			ProducerID:  producerID,
			AffiliateID: affiliateID,
			Percentage:  decimal.NewFromInt(50),
		}, nil)
	s.mockCoproductionRepo.EXPECT().
		FindByProducerAndCoproducer(gomock.Any(), producerID, coproducerID).
		Return(&domain.Coproduction{
			ProducerID:   producerID,
			CoproducerID: coproducerID,
			Percentage:   decimal.NewFromInt(50),
		}, nil)

	// расчет отвергается до стадии персиста: DoSerializable и Create не вызываются.
	_, err := s.service.Process(s.T().Context(), ProcessPaymentArgs{
		Amount:       decimal.NewFromInt(1000),
		Country:      "BR",
		BuyerID:      buyerID,
		ProducerID:   producerID,
		AffiliateID:  &affiliateID,
		CoproducerID: &coproducerID,
	})
	s.Require().ErrorIs(err, domain.ErrCommissionsExceedNet)
}

func (s *PaymentServiceTestSuite) TestProcess_DebitRaceInsideTx() {
	var (
		buyerID    int64 = 1
		producerID int64 = 2
	)

	s.expectBuyerBalance(buyerID, decimal.NewFromInt(1000))
	s.expectUserExists(producerID)
	s.expectTaxes("BR", decimal.Zero, decimal.Zero)
	s.expectSerializableTx()

	// конкурентный платеж опустошил баланс между предварительной проверкой и транзакцией:
	// условный декремент не проходит.
	s.mockBalanceRepo.EXPECT().
		Adjust(gomock.Any(), buyerID, gomock.Any()).
		Return(nil, domain.ErrNotEnoughBalance)

	_, err := s.service.Process(s.T().Context(), ProcessPaymentArgs{
		Amount:     decimal.NewFromInt(100),
		Country:    "BR",
		BuyerID:    buyerID,
		ProducerID: producerID,
	})
	s.Require().ErrorIs(err, domain.ErrNotEnoughBalance)
}
