package seeders

import (
	"github.com/shopspring/decimal"

	"bank-dashboard/internal/entities"
)

var (
	branchStatuses      = []string{"Active", "Inactive", "Closed"}
	genders             = []string{"M", "F"}
	roleStatuses        = []string{"Active", "Inactive", "Pending"}
	accountTypes        = []string{"savings", "checking", "business"}
	accountStatuses     = []string{"active", "inactive", "closed"}
	transactionTypes    = []string{"deposit", "withdrawal", "transfer"}
	transactionStatuses = []string{"completed", "pending", "failed"}
	currencies          = []string{"USD", "EUR", "AED", "other"}
	paymentMethods      = []string{"bank transfer", "cash", "check", "card", "online"}
	loanStatuses        = []string{"Active", "Completed", "Pending", "Closed"}
	riskLevels          = []string{"low", "medium", "high"}
	investmentStatuses  = []string{"active", "matured", "closed"}
	fixedTypes          = []string{"government bond", "certificate of deposit", "other"}
	variableTypes       = []string{"bond", "equity", "other"}
	securityTypes       = []string{"electronic", "key-based"}
	lockerSizes         = []string{"small", "medium", "large"}
	lockerStatuses      = []string{"available", "occupied", "out of service"}
	interactions        = []string{"In-person", "Phone Call", "Email", "Online Chat"}
)

// branchCountry - адреса отделений генерируются в одной стране, чтобы их находил геокодер.
const branchCountry = "United States"

const lockerOccupied = "occupied"

var loanTypesData = []entities.LoanType{
	{Type: "Personal Loan", InterestRate: decimal.RequireFromString("5.50"), PaymentFrequency: "Monthly"},
	{Type: "Mortgage", InterestRate: decimal.RequireFromString("3.50"), PaymentFrequency: "Monthly"},
	{Type: "Auto Loan", InterestRate: decimal.RequireFromString("4.00"), PaymentFrequency: "Monthly"},
}

var accessData = []entities.Access{
	{Permission: 1, Access: "Read"},
	{Permission: 2, Access: "Write"},
	{Permission: 3, Access: "Update"},
	{Permission: 4, Access: "Delete"},
}
