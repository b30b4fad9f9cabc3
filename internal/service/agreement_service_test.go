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

type AgreementServiceTestSuite struct {
	suite.Suite
	mockUOW              *uowmocks.MockUOW
	mockUserRepo         *mocks.MockUserRepository
	mockAffiliationRepo  *mocks.MockAffiliationRepository
	mockCoproductionRepo *mocks.MockCoproductionRepository
	service              *AgreementService
}

func TestAgreementServiceSuite(t *testing.T) {
	suite.Run(t, new(AgreementServiceTestSuite))
}

func (s *AgreementServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(mockCtrl)
	s.mockAffiliationRepo = mocks.NewMockAffiliationRepository(mockCtrl)
	s.mockCoproductionRepo = mocks.NewMockCoproductionRepository(mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.AffiliationRepoName)).
		Return(s.mockAffiliationRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.CoproductionRepoName)).
		Return(s.mockCoproductionRepo, nil).AnyTimes()

	var err error
	s.service, err = NewAgreementService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *AgreementServiceTestSuite) TestCreateAffiliation() {
	args := CreateAgreementArgs{
		ProducerID: 1,
		PartnerID:  2,
		Percentage: decimal.NewFromInt(10),
	}

	s.mockUserRepo.EXPECT().
		FindByID(gomock.Any(), args.ProducerID).
		Return(&domain.User{ID: args.ProducerID}, nil)
	s.mockUserRepo.EXPECT().
		FindByID(gomock.Any(), args.PartnerID).
		Return(&domain.User{ID: args.PartnerID}, nil)

	s.mockAffiliationRepo.EXPECT().
		Create(gomock.Any(), repoargs.AffiliationCreate{
			ProducerID:  args.ProducerID,
			AffiliateID: args.PartnerID,
			Percentage:  args.Percentage,
		}).
		Return(&domain.Affiliation{
			ID:          1,
			ProducerID:  args.ProducerID,
			AffiliateID: args.PartnerID,
			Percentage:  args.Percentage,
		}, nil)

	affiliation, err := s.service.CreateAffiliation(s.T().Context(), args)
	s.Require().NoError(err)
	s.Equal(args.ProducerID, affiliation.ProducerID)
	s.Equal(args.PartnerID, affiliation.AffiliateID)
}

func (s *AgreementServiceTestSuite) TestCreateCoproduction_SelfAgreement() {
	_, err := s.service.CreateCoproduction(s.T().Context(), CreateAgreementArgs{
		ProducerID: 1,
		PartnerID:  1,
		Percentage: decimal.NewFromInt(10),
	})
	s.Require().ErrorIs(err, domain.ErrOwnerConflict)
}

func (s *AgreementServiceTestSuite) TestCreateAffiliation_InvalidPercentage() {
	cases := []decimal.Decimal{decimal.NewFromInt(-1), decimal.NewFromInt(101)}
	for _, pct := range cases {
		_, err := s.service.CreateAffiliation(s.T().Context(), CreateAgreementArgs{
			ProducerID: 1,
			PartnerID:  2,
			Percentage: pct,
		})
		s.Require().ErrorIs(err, domain.ErrInvalidPercentage)
	}
}

func (s *AgreementServiceTestSuite) TestCreateAffiliation_UnknownPartner() {
	args := CreateAgreementArgs{
		ProducerID: 1,
		PartnerID:  2,
		Percentage: decimal.NewFromInt(10),
	}

	s.mockUserRepo.EXPECT().
		FindByID(gomock.Any(), args.ProducerID).
		Return(&domain.User{ID: args.ProducerID}, nil)
	s.mockUserRepo.EXPECT().
		FindByID(gomock.Any(), args.PartnerID).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.CreateAffiliation(s.T().Context(), args)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *AgreementServiceTestSuite) TestListByProducer() {
	var producerID int64 = 1

	s.mockAffiliationRepo.EXPECT().
		ListByProducer(gomock.Any(), producerID).
		Return([]domain.Affiliation{{ID: 1, ProducerID: producerID}}, nil)
	s.mockCoproductionRepo.EXPECT().
		ListByProducer(gomock.Any(), producerID).
		Return([]domain.Coproduction{{ID: 2, ProducerID: producerID}}, nil)

	affiliations, affErr := s.service.ListAffiliationsByProducer(s.T().Context(), producerID)
	s.Require().NoError(affErr)
	s.Len(affiliations, 1)

	coproductions, cpErr := s.service.ListCoproductionsByProducer(s.T().Context(), producerID)
	s.Require().NoError(cpErr)
	s.Len(coproductions, 1)
}
