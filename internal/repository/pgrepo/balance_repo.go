package pgrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/danilsonvss/payledger/internal/domain"
	"github.com/danilsonvss/payledger/pkg/uow"
)

type BalanceRepository struct {
	conn uow.DBTX
}

func NewBalanceRepository(conn uow.DBTX) *BalanceRepository {
	return &BalanceRepository{conn: conn}
}

const getBalanceByUserIDQuery = `
SELECT id, created_at, updated_at, user_id, amount FROM balances WHERE user_id = $1`

func (r *BalanceRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Balance, error) {
	row := r.conn.QueryRow(ctx, getBalanceByUserIDQuery, userID)
	balance, err := scanBalance(row)
	if err != nil {
		return nil, convertErr(err, "getting balance of user %d", userID)
	}
	return balance, nil
}

// Запись баланса создается лениво первым же изменением. Условие в DO UPDATE не дает
// списанию увести баланс в минус: при нехватке средств апдейт не срабатывает и запрос
// не возвращает строку. Инкремент выполняется на стороне БД одним стейтментом, поэтому
// конкурентные дельты по одному счету сериализуются построчно без потерянных обновлений.
const adjustBalanceQuery = `
INSERT INTO balances (user_id, amount)
VALUES ($1, $2)
ON CONFLICT (user_id) DO UPDATE
SET amount = balances.amount + EXCLUDED.amount, updated_at = now()
WHERE balances.amount + EXCLUDED.amount >= 0
RETURNING id, created_at, updated_at, user_id, amount`

// Adjust атомарно изменяет баланс юзера на delta (положительную или отрицательную) и возвращает
// обновленную запись. Если списание увело бы баланс ниже нуля, возвращается domain.ErrNotEnoughBalance.
func (r *BalanceRepository) Adjust(ctx context.Context, userID int64, delta decimal.Decimal) (*domain.Balance, error) {
	row := r.conn.QueryRow(ctx, adjustBalanceQuery, userID, delta)
	balance, err := scanBalance(row)
	if err != nil {
		// Несработавший conditional update отдает pgx.ErrNoRows, а вставка отрицательной дельты
		// в отсутствующую запись упирается в check-констрейнт. И то и другое - нехватка средств.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("[repository/adjusting balance of user %d] %w", userID, domain.ErrNotEnoughBalance)
		}
		return nil, convertErr(err, "adjusting balance of user %d", userID)
	}
	return balance, nil
}

func scanBalance(row rowScanner) (*domain.Balance, error) {
	var b domain.Balance
	if err := row.Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt, &b.UserID, &b.Amount); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &b, nil
}
