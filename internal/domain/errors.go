package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	ErrNotEnoughBalance  = errors.New("not enough balance")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInvalidPercentage = errors.New("percentage must be between 0 and 100")
	ErrOwnerConflict     = errors.New("owner conflict")

	// ErrCommissionsExceedNet ошибка конфигурации соглашений: сумма партнерских комиссий и платформенного
	// налога превышает чистую сумму платежа. Лечится правкой процентов, а не повторной отправкой.
	ErrCommissionsExceedNet = errors.New("total commissions exceed net amount")

	// ErrPaymentTxTimeout транзакция проведения платежа не уложилась в дедлайн и была откачена.
	// В отличие от бизнес-ошибок повтор запроса может быть безопасен.
	ErrPaymentTxTimeout = errors.New("payment transaction timed out")

	// ErrPaymentTxAborted serializable-транзакция откачена постгресом из-за конкурентной транзакции
	// (serialization failure или deadlock). Состояние не изменилось, повтор запроса безопасен.
	ErrPaymentTxAborted = errors.New("payment transaction aborted")
)

// ParticipantRole роль участника платежа, используется в ParticipantNotFoundError.
type ParticipantRole string

const (
	ParticipantProducer   ParticipantRole = "producer"
	ParticipantAffiliate  ParticipantRole = "affiliate"
	ParticipantCoproducer ParticipantRole = "coproducer"
)

type ParticipantNotFoundError struct {
	Role   ParticipantRole
	UserID int64
}

func NewParticipantNotFoundError(role ParticipantRole, userID int64) error {
	return &ParticipantNotFoundError{Role: role, UserID: userID}
}

func (e *ParticipantNotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Role, e.UserID)
}
