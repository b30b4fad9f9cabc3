package repoargs

import "github.com/danilsonvss/payledger/internal/domain"

type CreateUser struct {
	Email    string
	Password string
	Name     string
	Role     domain.UserRole
}
