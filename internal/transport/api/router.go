package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/danilsonvss/payledger/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup         = "/api"
	RegisterRoute      = "/user/register"
	LoginRoute         = "/user/login"
	UserBalanceRoute   = "/user/balance"
	BalanceRoute       = "/balance"
	TaxesRoute         = "/taxes"
	TaxRoute           = "/taxes/:id"
	AffiliationsRoute  = "/affiliations"
	CoproductionsRoute = "/coproductions"
	PaymentRoute       = "/payment"
	PaymentsRoute      = "/payments"
	HealthRoute        = "/health"
)

type RouterArgs struct {
	Logger           *logrus.Logger
	UserService      UserServicer
	BalanceService   BalanceServicer
	TaxService       TaxServicer
	AgreementService AgreementServicer
	PaymentService   PaymentServicer
	JWTSecretKey     []byte
	// PaymentTimeout бюджет запроса на проведение платежа. Должен превышать таймаут самой
	// транзакции платежа. При нуле берется DefaultServiceTimeout.
	PaymentTimeout time.Duration
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	balanceHandler := NewBalanceHandler(args.BalanceService)
	taxHandler := NewTaxHandler(args.TaxService)
	agreementHandler := NewAgreementHandler(args.AgreementService)
	paymentTimeout := args.PaymentTimeout
	if paymentTimeout <= 0 {
		paymentTimeout = DefaultServiceTimeout
	}
	paymentHandler := NewPaymentHandler(args.PaymentService, paymentTimeout)

	api := r.Group(RouteGroup)

	api.GET(HealthRoute, HealthCheck)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.GET(UserBalanceRoute, balanceHandler.Index)
	api.POST(BalanceRoute, balanceHandler.Update)

	api.GET(TaxesRoute, taxHandler.Index)
	api.POST(TaxesRoute, taxHandler.Create)
	api.PATCH(TaxRoute, taxHandler.Update)

	api.GET(AffiliationsRoute, agreementHandler.IndexAffiliations)
	api.POST(AffiliationsRoute, agreementHandler.CreateAffiliation)
	api.GET(CoproductionsRoute, agreementHandler.IndexCoproductions)
	api.POST(CoproductionsRoute, agreementHandler.CreateCoproduction)

	api.POST(PaymentRoute, paymentHandler.Create)
	api.GET(PaymentsRoute, paymentHandler.Index)
	return r
}
