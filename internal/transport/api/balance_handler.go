package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/danilsonvss/payledger/internal/domain"
	"github.com/danilsonvss/payledger/internal/service"
)

type BalanceHandler struct {
	svs BalanceServicer
}

func NewBalanceHandler(svs BalanceServicer) *BalanceHandler {
	return &BalanceHandler{
		svs: svs,
	}
}

type BalanceResponse struct {
	UserID int64   `json:"userId"`
	Amount float64 `json:"amount"`
}

// Index GET RouteGroup + UserBalanceRoute. Возвращает баланс текущего юзера.
// Еще не созданный баланс читается как нулевой.
func (b *BalanceHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := b.svs.GetUserBalance(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &BalanceResponse{
		UserID: balance.UserID,
		Amount: balance.Amount.InexactFloat64(),
	})
}

type UpdateBalanceParams struct {
	UserID    int64           `binding:"required"                    json:"userId"`
	Amount    decimal.Decimal `binding:"required"                    json:"amount"`
	Operation string          `binding:"required,oneof=CREDIT DEBIT" json:"operation"`
}

// Update POST RouteGroup + BalanceRoute. Ручное зачисление/списание, доступно только платформенной роли.
func (b *BalanceHandler) Update(c *gin.Context) {
	if !isPlatform(c) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "only platform users can update balances"})
		return
	}

	var params UpdateBalanceParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := b.svs.UpdateBalance(reqCtx, service.UpdateBalanceArgs{
		UserID:    params.UserID,
		Amount:    params.Amount,
		Operation: domain.BalanceOperationType(params.Operation),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotEnoughBalance):
			c.AbortWithStatus(http.StatusPaymentRequired)
		case errors.Is(err, domain.ErrInvalidAmount):
			c.AbortWithStatus(http.StatusUnprocessableEntity)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, &BalanceResponse{
		UserID: balance.UserID,
		Amount: balance.Amount.InexactFloat64(),
	})
}
