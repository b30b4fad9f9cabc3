package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/danilsonvss/payledger/internal/domain"
	"github.com/danilsonvss/payledger/internal/repository/repoargs"
	"github.com/danilsonvss/payledger/internal/transport/api/tokens"
	"github.com/danilsonvss/payledger/pkg/uow"
)

const JWTTokenExpire = 1 * time.Hour

type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	jwtTokenSecret []byte
}

func NewUserService(u uow.UOW, jwtTokenSecret []byte) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type RegisterUserArgs struct {
	Email    string
	Password string
	Name     string
	Role     domain.UserRole
}

type LoginUserArgs struct {
	Email    string
	Password string
}

// Register создает юзера в базе данных. После успешного создания генерирует jwt token с id и ролью.
// Возвращает 3 значения: созданный юзер, токен и ошибку.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, string, error) {
	password, hashErr := s.hashPassword(args.Password)
	if hashErr != nil {
		return nil, "", fmt.Errorf("registering user: %s", hashErr.Error())
	}
	var user *domain.User
	var token string
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		var userErr, tokenErr error
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		user, userErr = userRepo.CreateUser(c, repoargs.CreateUser{
			Email:    args.Email,
			Password: password,
			Name:     args.Name,
			Role:     args.Role,
		})
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}

		token, tokenErr = tokens.GenerateUserJWT(user.ID, user.Role, JWTTokenExpire, s.jwtTokenSecret)
		if tokenErr != nil {
			return tokenErr //nolint:wrapcheck
		}
		return nil
	})

	if txErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", txErr)
	}
	return user, token, nil
}

// Login аутентифицирует юзера по паре email/пароль. Возвращает юзера, jwt token и ошибку.
// Для несуществующего email возвращается domain.ErrRecordNotFound, для неверного пароля -
// domain.ErrPasswordMissMatch.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, findErr := s.userRepo.FindByEmail(ctx, args.Email)
	if findErr != nil {
		if errors.Is(findErr, domain.ErrRecordNotFound) {
			return nil, "", domain.ErrRecordNotFound
		}
		return nil, "", fmt.Errorf("logging in user: %w", findErr)
	}

	if !s.comparePasswords(user.Password, args.Password) {
		return nil, "", domain.ErrPasswordMissMatch
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, user.Role, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("logging in user: %w", tokenErr)
	}
	return user, token, nil
}

// FindByID возвращает юзера по id или domain.ErrRecordNotFound.
func (s *UserService) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return user, nil
}

func (s *UserService) hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %s", err.Error())
	}
	return string(bytes), nil
}

func (s *UserService) comparePasswords(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
