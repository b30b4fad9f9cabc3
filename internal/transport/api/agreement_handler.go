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

type AgreementHandler struct {
	svs AgreementServicer
}

func NewAgreementHandler(svs AgreementServicer) *AgreementHandler {
	return &AgreementHandler{
		svs: svs,
	}
}

type AffiliationResponse struct {
	ID          int64     `json:"id"`
	ProducerID  int64     `json:"producerId"`
	AffiliateID int64     `json:"affiliateId"`
	Percentage  float64   `json:"percentage"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newAffiliationResponse(a *domain.Affiliation) AffiliationResponse {
	return AffiliationResponse{
		ID:          a.ID,
		ProducerID:  a.ProducerID,
		AffiliateID: a.AffiliateID,
		Percentage:  a.Percentage.InexactFloat64(),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

type CoproductionResponse struct {
	ID           int64     `json:"id"`
	ProducerID   int64     `json:"producerId"`
	CoproducerID int64     `json:"coproducerId"`
	Percentage   float64   `json:"percentage"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func newCoproductionResponse(cp *domain.Coproduction) CoproductionResponse {
	return CoproductionResponse{
		ID:           cp.ID,
		ProducerID:   cp.ProducerID,
		CoproducerID: cp.CoproducerID,
		Percentage:   cp.Percentage.InexactFloat64(),
		CreatedAt:    cp.CreatedAt,
		UpdatedAt:    cp.UpdatedAt,
	}
}

type CreateAgreementParams struct {
	ProducerID int64           `binding:"required" json:"producerId"`
	PartnerID  int64           `binding:"required" json:"partnerId"`
	Percentage decimal.Decimal `binding:"required" json:"percentage"`
}

// canManageAgreements: соглашение от имени продюсера создает либо сам продюсер, либо платформа.
func canManageAgreements(c *gin.Context, producerID int64) bool {
	return getUserIDFromContext(c) == producerID || isPlatform(c)
}

// CreateAffiliation POST RouteGroup + AffiliationsRoute.
func (h *AgreementHandler) CreateAffiliation(c *gin.Context) {
	var params CreateAgreementParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	if !canManageAgreements(c, params.ProducerID) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "operation allowed only for the producer or platform"})
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	affiliation, err := h.svs.CreateAffiliation(reqCtx, service.CreateAgreementArgs{
		ProducerID: params.ProducerID,
		PartnerID:  params.PartnerID,
		Percentage: params.Percentage,
	})
	if err != nil {
		abortAgreementError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newAffiliationResponse(affiliation))
}

// IndexAffiliations GET RouteGroup + AffiliationsRoute. Список соглашений текущего продюсера.
func (h *AgreementHandler) IndexAffiliations(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	affiliations, err := h.svs.ListAffiliationsByProducer(reqCtx, getUserIDFromContext(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	response := make([]AffiliationResponse, len(affiliations))
	for i := range affiliations {
		response[i] = newAffiliationResponse(&affiliations[i])
	}
	c.JSON(http.StatusOK, response)
}

// CreateCoproduction POST RouteGroup + CoproductionsRoute.
func (h *AgreementHandler) CreateCoproduction(c *gin.Context) {
	var params CreateAgreementParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	if !canManageAgreements(c, params.ProducerID) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "operation allowed only for the producer or platform"})
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	coproduction, err := h.svs.CreateCoproduction(reqCtx, service.CreateAgreementArgs{
		ProducerID: params.ProducerID,
		PartnerID:  params.PartnerID,
		Percentage: params.Percentage,
	})
	if err != nil {
		abortAgreementError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newCoproductionResponse(coproduction))
}

// IndexCoproductions GET RouteGroup + CoproductionsRoute. Список соглашений текущего продюсера.
func (h *AgreementHandler) IndexCoproductions(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	coproductions, err := h.svs.ListCoproductionsByProducer(reqCtx, getUserIDFromContext(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	response := make([]CoproductionResponse, len(coproductions))
	for i := range coproductions {
		response[i] = newCoproductionResponse(&coproductions[i])
	}
	c.JSON(http.StatusOK, response)
}

func abortAgreementError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrOwnerConflict):
		_ = c.AbortWithError(http.StatusUnprocessableEntity, errors.New("producer and partner must be different users")).
			SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrInvalidPercentage):
		c.AbortWithStatus(http.StatusUnprocessableEntity)
	case errors.Is(err, domain.ErrRecordNotFound):
		c.AbortWithStatus(http.StatusNotFound)
	case errors.Is(err, domain.ErrDuplicateKey):
		_ = c.AbortWithError(http.StatusConflict, errors.New("agreement between these users already exists")).
			SetType(gin.ErrorTypePublic)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
