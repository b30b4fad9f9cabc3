package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/danilsonvss/payledger/internal/domain"
	"github.com/danilsonvss/payledger/internal/service"
)

type TaxHandler struct {
	svs TaxServicer
}

func NewTaxHandler(svs TaxServicer) *TaxHandler {
	return &TaxHandler{
		svs: svs,
	}
}

type TaxResponse struct {
	ID         int64     `json:"id"`
	Country    string    `json:"country"`
	Kind       string    `json:"kind"`
	Percentage float64   `json:"percentage"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func newTaxResponse(tax *domain.Tax) TaxResponse {
	return TaxResponse{
		ID:         tax.ID,
		Country:    tax.Country,
		Kind:       string(tax.Kind),
		Percentage: tax.Percentage.InexactFloat64(),
		CreatedAt:  tax.CreatedAt,
		UpdatedAt:  tax.UpdatedAt,
	}
}

// Index GET RouteGroup + TaxesRoute. Без параметров возвращает все ставки; с параметрами country и kind -
// одну ставку, отсутствие которой отдается как 404 (для расчета платежей это валидное состояние 0%).
func (h *TaxHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	country := c.Query("country")
	kind := c.Query("kind")

	if country != "" && kind != "" {
		tax, err := h.svs.FindByCountryAndKind(reqCtx, country, domain.TaxKind(kind))
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				c.AbortWithStatus(http.StatusNotFound)
				return
			}
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
			return
		}
		c.JSON(http.StatusOK, newTaxResponse(tax))
		return
	}

	taxes, err := h.svs.List(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	response := make([]TaxResponse, len(taxes))
	for i := range taxes {
		response[i] = newTaxResponse(&taxes[i])
	}
	c.JSON(http.StatusOK, response)
}

type CreateTaxParams struct {
	Country    string          `binding:"required,len=2"                json:"country"`
	Kind       string          `binding:"required,oneof=TRANSACTION PLATFORM" json:"kind"`
	Percentage decimal.Decimal `json:"percentage"`
}

// Create POST RouteGroup + TaxesRoute. Создание ставки, доступно только платформенной роли.
func (h *TaxHandler) Create(c *gin.Context) {
	if !isPlatform(c) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "only platform users can manage taxes"})
		return
	}

	var params CreateTaxParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	tax, err := h.svs.Create(reqCtx, service.CreateTaxArgs{
		Country:    params.Country,
		Kind:       domain.TaxKind(params.Kind),
		Percentage: params.Percentage,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateKey):
			_ = c.AbortWithError(http.StatusConflict, errors.New("tax for this country and kind already exists")).
				SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrInvalidPercentage):
			c.AbortWithStatus(http.StatusUnprocessableEntity)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}
	c.JSON(http.StatusCreated, newTaxResponse(tax))
}

type UpdateTaxParams struct {
	Percentage decimal.Decimal `json:"percentage"`
}

// Update PATCH RouteGroup + TaxRoute. Меняет процент существующей ставки, доступно только платформенной роли.
func (h *TaxHandler) Update(c *gin.Context) {
	if !isPlatform(c) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "only platform users can manage taxes"})
		return
	}

	id, idErr := strconv.ParseInt(c.Param("id"), 10, 64)
	if idErr != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	var params UpdateTaxParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	tax, err := h.svs.UpdatePercentage(reqCtx, id, params.Percentage)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		case errors.Is(err, domain.ErrInvalidPercentage):
			c.AbortWithStatus(http.StatusUnprocessableEntity)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}
	c.JSON(http.StatusOK, newTaxResponse(tax))
}
