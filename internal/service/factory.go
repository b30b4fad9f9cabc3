package service

import (
	"fmt"
	"time"

	"github.com/danilsonvss/payledger/pkg/uow"
)

type AppServices struct {
	UserService      *UserService
	BalanceService   *BalanceService
	TaxService       *TaxService
	AgreementService *AgreementService
	PaymentService   *PaymentService
}

func Factory(unitOfWork uow.UOW, jwtSecret []byte, paymentTxTimeout time.Duration) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, jwtSecret)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	balanceService, balanceServiceErr := NewBalanceService(unitOfWork)
	if balanceServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", balanceServiceErr.Error())
	}

	taxService, taxServiceErr := NewTaxService(unitOfWork)
	if taxServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", taxServiceErr.Error())
	}

	agreementService, agreementServiceErr := NewAgreementService(unitOfWork)
	if agreementServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", agreementServiceErr.Error())
	}

	paymentService, paymentServiceErr := NewPaymentService(unitOfWork, paymentTxTimeout)
	if paymentServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", paymentServiceErr.Error())
	}

	return &AppServices{
		UserService:      userService,
		BalanceService:   balanceService,
		TaxService:       taxService,
		AgreementService: agreementService,
		PaymentService:   paymentService,
	}, nil
}
