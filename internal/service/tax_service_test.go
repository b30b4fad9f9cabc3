package service

import (
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

type TaxServiceTestSuite struct {
	suite.Suite
	mockUOW     *uowmocks.MockUOW
	mockTaxRepo *mocks.MockTaxRepository
	service     *TaxService
}

func TestTaxServiceSuite(t *testing.T) {
	suite.Run(t, new(TaxServiceTestSuite))
}

func (s *TaxServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTaxRepo = mocks.NewMockTaxRepository(mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.TaxRepoName)).
		Return(s.mockTaxRepo, nil).AnyTimes()

	var err error
	s.service, err = NewTaxService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *TaxServiceTestSuite) TestCreate_NormalizesCountry() {
	pct := decimal.NewFromInt(5)

	s.mockTaxRepo.EXPECT().
		Create(gomock.Any(), repoargs.TaxCreate{
			Country:    "BR",
			Kind:       domain.TaxKindTransaction,
			Percentage: pct,
		}).
		Return(&domain.Tax{ID: 1, Country: "BR", Kind: domain.TaxKindTransaction, Percentage: pct}, nil)

	tax, err := s.service.Create(s.T().Context(), CreateTaxArgs{
		Country:    " br ",
		Kind:       domain.TaxKindTransaction,
		Percentage: pct,
	})
	s.Require().NoError(err)
	s.Equal("BR", tax.Country)
}

func (s *TaxServiceTestSuite) TestCreate_InvalidPercentage() {
	for _, pct := range []decimal.Decimal{decimal.NewFromInt(-1), decimal.NewFromInt(101)} {
		_, err := s.service.Create(s.T().Context(), CreateTaxArgs{
			Country:    "BR",
			Kind:       domain.TaxKindPlatform,
			Percentage: pct,
		})
		s.Require().ErrorIs(err, domain.ErrInvalidPercentage)
	}
}

func (s *TaxServiceTestSuite) TestUpdatePercentage() {
	newPct := decimal.NewFromFloat(7.5)

	s.mockTaxRepo.EXPECT().
		UpdatePercentage(gomock.Any(), int64(1), newPct).
		Return(&domain.Tax{ID: 1, Country: "BR", Kind: domain.TaxKindTransaction, Percentage: newPct}, nil)

	tax, err := s.service.UpdatePercentage(s.T().Context(), 1, newPct)
	s.Require().NoError(err)
	s.True(newPct.Equal(tax.Percentage))
}

func (s *TaxServiceTestSuite) TestFindByCountryAndKind_NotFound() {
	s.mockTaxRepo.EXPECT().
		FindByCountryAndKind(gomock.Any(), "US", domain.TaxKindPlatform).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.FindByCountryAndKind(s.T().Context(), "us", domain.TaxKindPlatform)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}
