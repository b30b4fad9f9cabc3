package service

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/danilsonvss/payledger/internal/domain"
	"github.com/danilsonvss/payledger/internal/repository/repoargs"
	"github.com/danilsonvss/payledger/internal/service/mocks"
	"github.com/danilsonvss/payledger/internal/transport/api/tokens"
	"github.com/danilsonvss/payledger/pkg/uow"
	uowmocks "github.com/danilsonvss/payledger/pkg/uow/mocks"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUOW      *uowmocks.MockUOW
	mockTX       *uowmocks.MockTX
	mockUserRepo *mocks.MockUserRepository
	jwtSecret    []byte
	userService  *UserService
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(mockCtrl)

	s.jwtSecret = []byte("secret")

	// Мок получения репозитория из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()

	userService, servErr := NewUserService(s.mockUOW, s.jwtSecret)
	s.Require().NoError(servErr)
	s.userService = userService
}

func (s *UserServiceTestSuite) TestRegister() {
	args := RegisterUserArgs{
		Email:    gofakeit.Email(),
		Password: gofakeit.Password(true, true, true, false, false, 12),
		Name:     gofakeit.Name(),
		Role:     domain.RoleProducer,
	}

	savedUser := domain.User{
		ID:        1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Email:     args.Email,
		Name:      args.Name,
		Role:      args.Role,
	}

	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(s.T().Context(), s.mockTX)
		},
	)

	s.mockUserRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, createArgs repoargs.CreateUser) (*domain.User, error) {
			s.Equal(args.Email, createArgs.Email)
			s.Equal(args.Name, createArgs.Name)
			s.Equal(args.Role, createArgs.Role)
			// в базу уходит bcrypt-хеш, а не исходный пароль.
			s.NotEqual(args.Password, createArgs.Password)
			s.NoError(bcrypt.CompareHashAndPassword([]byte(createArgs.Password), []byte(args.Password)))
			savedUser.Password = createArgs.Password
			return &savedUser, nil
		})

	user, tokenStr, err := s.userService.Register(s.T().Context(), args)
	s.Require().NoError(err)
	s.Require().NotNil(user)
	s.NotEmpty(tokenStr)

	token, tokenErr := tokens.ValidateUserJWT(tokenStr, s.jwtSecret)
	s.Require().NoError(tokenErr)
	claims := token.Claims.(*tokens.UserClaims) //nolint:errcheck
	s.Equal(savedUser.ID, claims.ID)
	s.Equal(savedUser.Role, claims.Role)
}

func (s *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(s.T().Context(), s.mockTX)
		},
	)
	s.mockUserRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDuplicateKey)

	_, _, err := s.userService.Register(s.T().Context(), RegisterUserArgs{
		Email:    gofakeit.Email(),
		Password: "password",
		Name:     gofakeit.Name(),
		Role:     domain.RoleAffiliate,
	})
	s.Require().ErrorIs(err, domain.ErrDuplicateKey)
}

func (s *UserServiceTestSuite) TestLogin() {
	password := gofakeit.Password(true, true, true, false, false, 12)
	hash, hashErr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	s.Require().NoError(hashErr)

	savedUser := domain.User{
		ID:       1,
		Email:    gofakeit.Email(),
		Password: string(hash),
		Name:     gofakeit.Name(),
		Role:     domain.RoleProducer,
	}

	s.mockUserRepo.EXPECT().
		FindByEmail(gomock.Any(), savedUser.Email).
		Return(&savedUser, nil).Times(2)
	s.mockUserRepo.EXPECT().
		FindByEmail(gomock.Any(), "missing@example.com").
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name    string
		args    LoginUserArgs
		wantErr error
	}{
		{name: "ok", args: LoginUserArgs{Email: savedUser.Email, Password: password}},
		{
			name:    "unknown email",
			args:    LoginUserArgs{Email: "missing@example.com", Password: password},
			wantErr: domain.ErrRecordNotFound,
		},
		{
			name:    "wrong password",
			args:    LoginUserArgs{Email: savedUser.Email, Password: "wrong pass"},
			wantErr: domain.ErrPasswordMissMatch,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			user, tokenStr, err := s.userService.Login(s.T().Context(), t.args)
			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				return
			}
			s.Require().NoError(err)
			s.Require().NotNil(user)
			s.NotEmpty(tokenStr)

			token, tokenErr := tokens.ValidateUserJWT(tokenStr, s.jwtSecret)
			s.Require().NoError(tokenErr)
			s.Equal(savedUser.ID, token.Claims.(*tokens.UserClaims).ID) //nolint:errcheck
		})
	}
}
