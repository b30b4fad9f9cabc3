package pgrepo

import (
	"context"

	"github.com/danilsonvss/payledger/internal/domain"
	"github.com/danilsonvss/payledger/internal/repository/repoargs"
	"github.com/danilsonvss/payledger/pkg/uow"
)

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

const createUserQuery = `
INSERT INTO users (email, password, name, role)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at, updated_at, email, password, name, role`

func (r *UserRepository) CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	row := r.conn.QueryRow(ctx, createUserQuery, args.Email, args.Password, args.Name, args.Role)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user %s", args.Email)
	}
	return user, nil
}

const findUserByIDQuery = `
SELECT id, created_at, updated_at, email, password, name, role FROM users WHERE id = $1`

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.conn.QueryRow(ctx, findUserByIDQuery, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return user, nil
}

const findUserByEmailQuery = `
SELECT id, created_at, updated_at, email, password, name, role FROM users WHERE email = $1`

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.conn.QueryRow(ctx, findUserByEmailQuery, email)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by email %s", email)
	}
	return user, nil
}

const findUserByRoleQuery = `
SELECT id, created_at, updated_at, email, password, name, role FROM users WHERE role = $1 ORDER BY id LIMIT 1`

// FindByRole возвращает первого (по id) пользователя с указанной ролью. Используется для поиска
// платформенного аккаунта, который в системе один.
func (r *UserRepository) FindByRole(ctx context.Context, role domain.UserRole) (*domain.User, error) {
	row := r.conn.QueryRow(ctx, findUserByRoleQuery, role)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by role %s", role)
	}
	return user, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt, &u.Email, &u.Password, &u.Name, &u.Role); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &u, nil
}
