package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/danilsonvss/payledger/internal/domain"
	"github.com/danilsonvss/payledger/internal/service"
)

type PaymentHandler struct {
	svs PaymentServicer
	// timeout бюджет запроса на проведение платежа. Обязан превышать дедлайн самой транзакции,
	// иначе настроенный таймаут транзакции молча обрезается контекстом запроса.
	timeout time.Duration
}

func NewPaymentHandler(svs PaymentServicer, timeout time.Duration) *PaymentHandler {
	return &PaymentHandler{
		svs:     svs,
		timeout: timeout,
	}
}

type CreatePaymentParams struct {
	Amount       decimal.Decimal `binding:"required" json:"amount"`
	Country      string          `binding:"required,len=2" json:"country"`
	ProducerID   int64           `binding:"required" json:"producerId"`
	AffiliateID  *int64          `json:"affiliateId"`
	CoproducerID *int64          `json:"coproducerId"`
}

type PaymentResponse struct {
	ID                   int64     `json:"id"`
	Amount               float64   `json:"amount"`
	Country              string    `json:"country"`
	Status               string    `json:"status"`
	BuyerID              int64     `json:"buyerId"`
	ProducerID           int64     `json:"producerId"`
	AffiliateID          *int64    `json:"affiliateId,omitempty"`
	CoproducerID         *int64    `json:"coproducerId,omitempty"`
	TransactionTax       float64   `json:"transactionTax"`
	PlatformTax          float64   `json:"platformTax"`
	ProducerCommission   float64   `json:"producerCommission"`
	AffiliateCommission  *float64  `json:"affiliateCommission,omitempty"`
	CoproducerCommission *float64  `json:"coproducerCommission,omitempty"`
	PlatformCommission   float64   `json:"platformCommission"`
	CreatedAt            time.Time `json:"createdAt"`
}

func newPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                   p.ID,
		Amount:               p.Amount.InexactFloat64(),
		Country:              p.Country,
		Status:               string(p.Status),
		BuyerID:              p.BuyerID,
		ProducerID:           p.ProducerID,
		AffiliateID:          p.AffiliateID,
		CoproducerID:         p.CoproducerID,
		TransactionTax:       p.TransactionTax.InexactFloat64(),
		PlatformTax:          p.PlatformTax.InexactFloat64(),
		ProducerCommission:   p.ProducerCommission.InexactFloat64(),
		AffiliateCommission:  decimalPtrToFloat(p.AffiliateCommission),
		CoproducerCommission: decimalPtrToFloat(p.CoproducerCommission),
		PlatformCommission:   p.PlatformCommission.InexactFloat64(),
		CreatedAt:            p.CreatedAt,
	}
}

func decimalPtrToFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}

// Create POST RouteGroup + PaymentRoute. Покупателем всегда выступает текущий юзер.
// Назвать продюсера в платеже может только сам продюсер либо платформенная роль.
func (h *PaymentHandler) Create(c *gin.Context) {
	var params CreatePaymentParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	currentUserID := getUserIDFromContext(c)
	if currentUserID != params.ProducerID && !isPlatform(c) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "operation allowed only for the producer or platform"})
		return
	}

	reqCtx, cancel := context.WithTimeout(c, h.timeout)
	defer cancel()

	payment, err := h.svs.Process(reqCtx, service.ProcessPaymentArgs{
		Amount:       params.Amount,
		Country:      params.Country,
		BuyerID:      currentUserID,
		ProducerID:   params.ProducerID,
		AffiliateID:  params.AffiliateID,
		CoproducerID: params.CoproducerID,
	})
	if err != nil {
		abortPaymentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newPaymentResponse(payment))
}

// Index GET RouteGroup + PaymentsRoute. Платежи, где текущий юзер выступает продюсером.
func (h *PaymentHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payments, err := h.svs.ListByProducer(reqCtx, getUserIDFromContext(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	response := make([]PaymentResponse, len(payments))
	for i := range payments {
		response[i] = newPaymentResponse(&payments[i])
	}
	c.JSON(http.StatusOK, response)
}

func abortPaymentError(c *gin.Context, err error) {
	var participantErr *domain.ParticipantNotFoundError

	switch {
	case errors.As(err, &participantErr):
		_ = c.AbortWithError(http.StatusNotFound, errors.New(participantErr.Error())).
			SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrNotEnoughBalance):
		c.AbortWithStatus(http.StatusPaymentRequired)
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInvalidPercentage):
		c.AbortWithStatus(http.StatusUnprocessableEntity)
	case errors.Is(err, domain.ErrCommissionsExceedNet):
		_ = c.AbortWithError(http.StatusUnprocessableEntity, errors.New("commissions exceed payment net amount")).
			SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrPaymentTxAborted):
		_ = c.AbortWithError(http.StatusConflict, errors.New("payment conflicted with a concurrent transaction, safe to retry")).
			SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrPaymentTxTimeout):
		c.AbortWithStatus(http.StatusGatewayTimeout)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
