package domain

type UserRole string

const (
	RoleProducer   UserRole = "PRODUCER"
	RoleAffiliate  UserRole = "AFFILIATE"
	RoleCoproducer UserRole = "COPRODUCER"
	RolePlatform   UserRole = "PLATFORM"
)

type TaxKind string

const (
	TaxKindTransaction TaxKind = "TRANSACTION"
	TaxKindPlatform    TaxKind = "PLATFORM"
)

type PaymentStatus string

const (
	// PaymentStatusApproved единственный статус на данный момент: валидация происходит до коммита,
	// незавершенные платежи в БД не сохраняются.
	PaymentStatusApproved PaymentStatus = "APPROVED"
)

type BalanceOperationType string

const (
	BalanceOperationCredit BalanceOperationType = "CREDIT"
	BalanceOperationDebit  BalanceOperationType = "DEBIT"
)
