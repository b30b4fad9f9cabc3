package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/danilsonvss/payledger/internal/config"
	"github.com/danilsonvss/payledger/internal/repository/pgrepo"
	"github.com/danilsonvss/payledger/internal/repository/repoargs"
	"github.com/danilsonvss/payledger/internal/service"
	"github.com/danilsonvss/payledger/internal/transport/api"
	"github.com/danilsonvss/payledger/pkg/uow"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app on %s", a.Config.RunAddress)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	services, sErr := service.Factory(unitOfWork, []byte(a.Config.JWTUserSecret), a.Config.PaymentTxTimeout)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:           a.Logger,
		UserService:      services.UserService,
		BalanceService:   services.BalanceService,
		TaxService:       services.TaxService,
		AgreementService: services.AgreementService,
		PaymentService:   services.PaymentService,
		JWTSecretKey:     []byte(a.Config.JWTUserSecret),
		PaymentTimeout:   a.Config.PaymentTxTimeout + api.DefaultServiceTimeout,
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.BalanceRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewBalanceRepository(dbtx)
		},
		repoargs.TaxRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewTaxRepository(dbtx)
		},
		repoargs.AffiliationRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewAffiliationRepository(dbtx)
		},
		repoargs.CoproductionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCoproductionRepository(dbtx)
		},
		repoargs.PaymentRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewPaymentRepository(dbtx)
		},
	}

	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
