package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

type User struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Email     string
	Password  string
	Name      string
	Role      UserRole
}

type Balance struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    int64
	Amount    decimal.Decimal
}

type Tax struct {
	ID         int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Country    string
	Kind       TaxKind
	Percentage decimal.Decimal
}

// Affiliation - соглашение между продюсером и аффилиатом: аффилиат получает Percentage от чистой суммы платежа.
type Affiliation struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ProducerID  int64
	AffiliateID int64
	Percentage  decimal.Decimal
}

// Coproduction - соглашение между продюсером и со-продюсером, аналогично Affiliation.
type Coproduction struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ProducerID   int64
	CoproducerID int64
	Percentage   decimal.Decimal
}

// Payment неизменяемая запись проведенного платежа со всеми рассчитанными налогами и комиссиями.
// AffiliateCommission и CoproducerCommission равны nil когда соответствующий участник в платеже не участвует.
type Payment struct {
	ID                   int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
	Amount               decimal.Decimal
	Country              string
	Status               PaymentStatus
	BuyerID              int64
	ProducerID           int64
	AffiliateID          *int64
	CoproducerID         *int64
	TransactionTax       decimal.Decimal
	PlatformTax          decimal.Decimal
	ProducerCommission   decimal.Decimal
	AffiliateCommission  *decimal.Decimal
	CoproducerCommission *decimal.Decimal
	PlatformCommission   decimal.Decimal
}
