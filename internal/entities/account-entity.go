package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
)

type BankAccount struct {
	AccID            int       `validate:"required,gt=0"`
	Type             string    `validate:"required,max=50"`
	SetupDate        time.Time `validate:"required"`
	Balance          decimal.Decimal
	Status           string    `validate:"required,max=50"`
	BranchID         null.Int  `validate:"omitempty,gt=0"`
	LastActivityDate time.Time `validate:"required,gtefield=SetupDate"`
	CustomerID       null.Int  `validate:"omitempty,gt=0"`
}

type FixedRateInvestment struct {
	InvestID     int             `validate:"required,gt=0"`
	AccID        int             `validate:"required,gt=0"`
	Amount       decimal.Decimal `validate:"gt=0"`
	InterestRate decimal.Decimal `validate:"gt=0,lte=100"`
	StartDate    time.Time       `validate:"required"`
	RiskLevel    null.String     `validate:"omitempty,oneof=low medium high"`
	Status       string          `validate:"required,oneof=active matured closed"`
	MaturityDate time.Time       `validate:"required,gtfield=StartDate"`
	Type         null.String     `validate:"omitempty,oneof='government bond' 'certificate of deposit' other"`
}

type VariableRateInvestment struct {
	InvestID     int             `validate:"required,gt=0"`
	AccID        int             `validate:"required,gt=0"`
	Amount       decimal.Decimal `validate:"gt=0"`
	ReturnRate   decimal.Decimal `validate:"gt=0,lte=100"`
	StartDate    time.Time       `validate:"required"`
	RiskLevel    null.String     `validate:"omitempty,oneof=low medium high"`
	Status       string          `validate:"required,oneof=active matured closed"`
	MaturityDate time.Time       `validate:"required,gtfield=StartDate"`
	Type         null.String     `validate:"omitempty,oneof=bond equity other"`
	InterestRate decimal.Decimal `validate:"gt=0,lte=100"`
}

type Transaction struct {
	TranID               int             `validate:"required,gt=0"`
	AccID                int             `validate:"required,gt=0"`
	DestinationAccountID null.Int        `validate:"omitempty,gt=0"`
	Type                 string          `validate:"required,max=50"`
	Amount               decimal.Decimal `validate:"gt=0"`
	Date                 time.Time       `validate:"required"`
	Status               string          `validate:"required,max=50"`
	CurrencyType         string          `validate:"required,max=10"`
	Method               string          `validate:"required,max=50"`
}

type LoanType struct {
	Type             string          `validate:"required,max=50"`
	InterestRate     decimal.Decimal `validate:"gt=0,lte=100"`
	PaymentFrequency string          `validate:"required,max=20"`
}

type Loan struct {
	LoanID     int             `validate:"required,gt=0"`
	Type       string          `validate:"required,max=50"`
	Amount     decimal.Decimal `validate:"gt=0"`
	StartDate  time.Time       `validate:"required"`
	EndDate    time.Time       `validate:"required,gtfield=StartDate"`
	Status     string          `validate:"required,max=20"`
	EmpID      null.Int        `validate:"omitempty,gt=0"`
	CustomerID null.Int        `validate:"omitempty,gt=0"`
}
