package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/danilsonvss/payledger/internal/domain"
	"github.com/danilsonvss/payledger/internal/repository/repoargs"
	"github.com/danilsonvss/payledger/internal/service/mocks"
	"github.com/danilsonvss/payledger/pkg/uow"
	uowmocks "github.com/danilsonvss/payledger/pkg/uow/mocks"
)

type BalanceServiceTestSuite struct {
	suite.Suite
	mockUOW         *uowmocks.MockUOW
	mockBalanceRepo *mocks.MockBalanceRepository
	service         *BalanceService
}

func TestBalanceServiceSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}

func (s *BalanceServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockBalanceRepo = mocks.NewMockBalanceRepository(mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.BalanceRepoName)).
		Return(s.mockBalanceRepo, nil).AnyTimes()

	var err error
	s.service, err = NewBalanceService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *BalanceServiceTestSuite) TestGetUserBalance() {
	var userID int64 = 1
	amount := decimal.NewFromFloat(123.45)

	s.mockBalanceRepo.EXPECT().
		GetByUserID(gomock.Any(), userID).
		Return(&domain.Balance{UserID: userID, Amount: amount}, nil)

	balance, err := s.service.GetUserBalance(s.T().Context(), userID)
	s.Require().NoError(err)
	s.Equal(userID, balance.UserID)
	s.True(amount.Equal(balance.Amount))
}

func (s *BalanceServiceTestSuite) TestGetUserBalance_NoRecordReadsAsZero() {
	var userID int64 = 2

	s.mockBalanceRepo.EXPECT().
		GetByUserID(gomock.Any(), userID).
		Return(nil, domain.ErrRecordNotFound)

	balance, err := s.service.GetUserBalance(s.T().Context(), userID)
	s.Require().NoError(err)
	s.Equal(userID, balance.UserID)
	s.True(balance.Amount.IsZero())
}

func (s *BalanceServiceTestSuite) TestUpdateBalance() {
	var userID int64 = 1
	amount := decimal.NewFromInt(100)

	s.mockBalanceRepo.EXPECT().
		Adjust(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64, delta decimal.Decimal) (*domain.Balance, error) {
			return &domain.Balance{UserID: id, Amount: delta}, nil
		}).Times(2)

	cases := []struct {
		name      string
		operation domain.BalanceOperationType
		wantDelta decimal.Decimal
	}{
		{name: "credit", operation: domain.BalanceOperationCredit, wantDelta: amount},
		{name: "debit", operation: domain.BalanceOperationDebit, wantDelta: amount.Neg()},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			balance, err := s.service.UpdateBalance(s.T().Context(), UpdateBalanceArgs{
				UserID:    userID,
				Amount:    amount,
				Operation: t.operation,
			})
			s.Require().NoError(err)
			s.True(t.wantDelta.Equal(balance.Amount))
		})
	}
}

func (s *BalanceServiceTestSuite) TestUpdateBalance_NonPositiveAmount() {
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := s.service.UpdateBalance(s.T().Context(), UpdateBalanceArgs{
			UserID:    1,
			Amount:    amount,
			Operation: domain.BalanceOperationCredit,
		})
		s.Require().ErrorIs(err, domain.ErrInvalidAmount)
	}
}

func (s *BalanceServiceTestSuite) TestUpdateBalance_Overdraft() {
	s.mockBalanceRepo.EXPECT().
		Adjust(gomock.Any(), int64(1), gomock.Any()).
		Return(nil, domain.ErrNotEnoughBalance)

	_, err := s.service.UpdateBalance(s.T().Context(), UpdateBalanceArgs{
		UserID:    1,
		Amount:    decimal.NewFromInt(1000),
		Operation: domain.BalanceOperationDebit,
	})
	s.Require().ErrorIs(err, domain.ErrNotEnoughBalance)
}
