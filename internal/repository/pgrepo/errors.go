package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/danilsonvss/payledger/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode      = "23505"
	checkViolationCode       = "23514"
	serializationFailureCode = "40001"
	deadlockDetectedCode     = "40P01"
)

// convertErr преобразует ошибку к стандартному виду для слоя репозитория.
// Добавляет форматированное сообщение контекста, тип бизнес-ошибки и оригинальное сообщение.
// Особенности:
//   - Для ошибок отсутствия данных (pgx.ErrNoRows) возвращает ErrRecordNotFound из domain.
//   - Для ошибок базы Postgres определяет дубликаты ключей (uniqueViolationCode) как ErrDuplicateKey из domain.
//   - Нарушение check-констрейнта неотрицательности баланса возвращается как ErrNotEnoughBalance.
//   - Обрыв serializable-транзакции (serializationFailureCode, deadlockDetectedCode) возвращается
//     как ErrPaymentTxAborted - транзакция откачена целиком и ее безопасно повторить.
//   - Все остальные ошибки возвращаются как ErrUnknown с оригинальным сообщением.
//
// Используется для единообразной обработки и возврата ошибок из репозитория.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	errType := domain.ErrUnknown

	if errors.As(err, &pgErr) {
		switch {
		case isUniqueViolationErr(pgErr):
			errType = domain.ErrDuplicateKey
		case isBalanceCheckViolationErr(pgErr):
			errType = domain.ErrNotEnoughBalance
		case isTxAbortedErr(pgErr):
			errType = domain.ErrPaymentTxAborted
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}

func isUniqueViolationErr(err *pgconn.PgError) bool {
	return err.Code == uniqueViolationCode
}

func isBalanceCheckViolationErr(err *pgconn.PgError) bool {
	return err.Code == checkViolationCode && err.ConstraintName == "balances_amount_nonnegative"
}

func isTxAbortedErr(err *pgconn.PgError) bool {
	return err.Code == serializationFailureCode || err.Code == deadlockDetectedCode
}
