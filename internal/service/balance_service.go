package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/danilsonvss/payledger/internal/domain"
	"github.com/danilsonvss/payledger/internal/repository/repoargs"
	"github.com/danilsonvss/payledger/pkg/uow"
)

type BalanceService struct {
	uow         uow.UOW
	balanceRepo BalanceRepository
}

func NewBalanceService(u uow.UOW) (*BalanceService, error) {
	balanceRepo, err := uow.GetRepositoryAs[BalanceRepository](u, uow.RepositoryName(repoargs.BalanceRepoName))
	if err != nil {
		return nil, err
	}
	return &BalanceService{
		uow:         u,
		balanceRepo: balanceRepo,
	}, nil
}

// GetUserBalance возвращает баланс юзера. Запись баланса создается лениво, поэтому ее отсутствие
// читается как нулевой баланс, а не как ошибка.
func (b *BalanceService) GetUserBalance(ctx context.Context, userID int64) (*domain.Balance, error) {
	balance, err := b.balanceRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return &domain.Balance{UserID: userID, Amount: decimal.Zero}, nil
		}
		return nil, err //nolint:wrapcheck
	}
	return balance, nil
}

type UpdateBalanceArgs struct {
	UserID    int64
	Amount    decimal.Decimal
	Operation domain.BalanceOperationType
}

// UpdateBalance вручную зачисляет или списывает средства со счета юзера. Мутация идет через тот же
// атомарный инкремент что и проведение платежей - баланс никогда не изменяется через read-modify-write.
// Списание сверх доступного возвращает domain.ErrNotEnoughBalance.
func (b *BalanceService) UpdateBalance(ctx context.Context, args UpdateBalanceArgs) (*domain.Balance, error) {
	if !args.Amount.IsPositive() {
		return nil, fmt.Errorf("updating balance: %w", domain.ErrInvalidAmount)
	}

	delta := args.Amount
	if args.Operation == domain.BalanceOperationDebit {
		delta = delta.Neg()
	}

	balance, err := b.balanceRepo.Adjust(ctx, args.UserID, delta)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return balance, nil
}
