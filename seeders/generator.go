// Package seeders генерирует правдоподобные данные для банковской схемы
// и записывает их в БД в порядке зависимостей.
package seeders

import (
	"fmt"
	"strings"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"

	"bank-dashboard/internal/entities"
)

type Sizes struct {
	Branches            int
	Roles               int
	Employees           int
	Customers           int
	Accounts            int
	FixedInvestments    int
	VariableInvestments int
	Transactions        int
	Loans               int
	Lockers             int
	Assists             int
}

func DefaultSizes() Sizes {
	return Sizes{
		Branches:            5,
		Roles:               5,
		Employees:           10,
		Customers:           50,
		Accounts:            100,
		FixedInvestments:    50,
		VariableInvestments: 50,
		Transactions:        200,
		Loans:               20,
		Lockers:             10,
		Assists:             30,
	}
}

// Dataset - полный набор строк для всех 26 таблиц.
type Dataset struct {
	Branches          []entities.Branch
	BranchAddresses   []entities.BranchAddress
	BranchEmails      []entities.BranchEmail
	BranchPhones      []entities.BranchPhone
	Roles             []entities.RoleName
	RoleStatuses      []entities.RoleStatus
	Employees         []entities.Employee
	EmployeeEmails    []entities.EmployeeEmail
	EmployeePhones    []entities.EmployeePhone
	EmployeeNationals []entities.EmployeeNationalID
	Customers         []entities.Customer
	CustomerEmails    []entities.CustomerEmail
	CustomerPhones    []entities.CustomerPhone
	CustomerNationals []entities.CustomerNationalID
	Accounts          []entities.BankAccount
	FixedInvestments  []entities.FixedRateInvestment
	VarInvestments    []entities.VariableRateInvestment
	Transactions      []entities.Transaction
	LoanTypes         []entities.LoanType
	Loans             []entities.Loan
	Access            []entities.Access
	RolePermissions   []entities.RolePermission
	Lockers           []entities.Locker
	LockerCustomers   []entities.LockerCustomer
	LockerBranches    []entities.LockerBranch
	Assists           []entities.Assist
}

type Generator struct {
	f     *gofakeit.Faker
	asOf  time.Time
	sizes Sizes
	// уникальные значения по всей генерации: email, телефоны, national id, локации ячеек
	used map[string]struct{}
}

// NewGenerator: одинаковые seed и asOf дают одинаковый Dataset. seed 0 заменяется на 1.
func NewGenerator(seed int64, asOf time.Time, sizes Sizes) *Generator {
	if seed == 0 {
		seed = 1
	}
	y, m, d := asOf.Date()
	return &Generator{
		f:     gofakeit.New(seed),
		asOf:  time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		sizes: sizes,
		used:  make(map[string]struct{}),
	}
}

// Generate строит данные в порядке зависимостей; идентификаторы идут с 1.
func (g *Generator) Generate() *Dataset {
	ds := &Dataset{}
	g.branches(ds)
	g.roles(ds)
	g.employees(ds)
	g.customers(ds)
	g.accounts(ds)
	g.investments(ds)
	g.transactions(ds)
	g.loans(ds)
	g.access(ds)
	g.lockers(ds)
	g.assists(ds)
	return ds
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return strings.TrimSpace(string(r[:n]))
	}
	return s
}

func (g *Generator) pick(values []string) string {
	return values[g.f.Number(0, len(values)-1)]
}

// dateBetween - случайная дата в [from, to] с точностью до дня.
func (g *Generator) dateBetween(from, to time.Time) time.Time {
	days := int(to.Sub(from).Hours() / 24)
	if days <= 0 {
		return from
	}
	return from.AddDate(0, 0, g.f.Number(0, days))
}

func (g *Generator) yearsAgo(n int) time.Time {
	return g.asOf.AddDate(-n, 0, 0)
}

// money - сумма с двумя знаками в [lo, hi].
func (g *Generator) money(lo, hi float64) decimal.Decimal {
	v := decimal.NewFromFloat(g.f.Float64Range(lo, hi)).Round(2)
	if floor := decimal.NewFromFloat(lo).Round(2); v.LessThan(floor) {
		return floor
	}
	return v
}

// rate - процент в (0, 100].
func (g *Generator) rate() decimal.Decimal {
	return g.money(0.01, 100)
}

// unique повторяет gen, пока значение не станет новым; после 20 попыток добавляет суффикс.
func (g *Generator) unique(gen func() string) string {
	for i := 0; i < 20; i++ {
		v := gen()
		if _, ok := g.used[v]; !ok {
			g.used[v] = struct{}{}
			return v
		}
	}
	for i := 2; ; i++ {
		v := fmt.Sprintf("%s%d", gen(), i)
		if _, ok := g.used[v]; !ok {
			g.used[v] = struct{}{}
			return v
		}
	}
}

// phone - от 7 до maxLen символов, иногда с ведущим '+'.
func (g *Generator) phone(maxLen int) string {
	plus := g.f.Bool()
	digits := g.f.Number(7, maxLen)
	if plus && digits == maxLen {
		digits--
	}
	var b strings.Builder
	if plus {
		b.WriteByte('+')
	}
	for i := 0; i < digits; i++ {
		b.WriteByte(byte('0' + g.f.Number(0, 9)))
	}
	return b.String()
}

func (g *Generator) email() string {
	return strings.ToLower(g.f.Email())
}

// nationalID - три заглавные буквы и шесть цифр, например ABC123456.
func (g *Generator) nationalID() string {
	letters := make([]byte, 3)
	for i := range letters {
		letters[i] = byte('A' + g.f.Number(0, 25))
	}
	return string(letters) + g.f.Numerify("######")
}

func (g *Generator) branches(ds *Dataset) {
	for i := 1; i <= g.sizes.Branches; i++ {
		id := null.IntFrom(i)
		ds.Branches = append(ds.Branches, entities.Branch{
			BranchID: i,
			Name:     clip(g.f.Company(), 100),
			Status:   g.pick(branchStatuses),
		})
		ds.BranchAddresses = append(ds.BranchAddresses, entities.BranchAddress{
			Street:   clip(g.unique(g.f.Street), 100),
			City:     clip(g.f.City(), 50),
			State:    clip(g.f.State(), 50),
			ZipCode:  clip(g.f.Zip(), 10),
			Country:  branchCountry,
			BranchID: id,
		})
		ds.BranchEmails = append(ds.BranchEmails, entities.BranchEmail{
			Email:    g.unique(g.email),
			BranchID: id,
		})
		ds.BranchPhones = append(ds.BranchPhones, entities.BranchPhone{
			PhoneNumber: g.unique(func() string { return g.phone(15) }),
			BranchID:    id,
		})
	}
}

func (g *Generator) roles(ds *Dataset) {
	for i := 1; i <= g.sizes.Roles; i++ {
		// имя роли - ключ rolestatus, поэтому уникально
		name := clip(g.unique(g.f.JobTitle), 100)
		ds.Roles = append(ds.Roles, entities.RoleName{RoleID: i, Name: name})
		ds.RoleStatuses = append(ds.RoleStatuses, entities.RoleStatus{
			Name:            name,
			Status:          g.pick(roleStatuses),
			RoleDescription: null.StringFrom(clip(g.f.Sentence(20), 200)),
		})
	}
}

func (g *Generator) employees(ds *Dataset) {
	for i := 1; i <= g.sizes.Employees; i++ {
		role := ds.Roles[g.f.Number(0, len(ds.Roles)-1)]
		ds.Employees = append(ds.Employees, entities.Employee{
			EmpID:       i,
			Name:        clip(g.f.Name(), 100),
			Street:      clip(g.f.Street(), 100),
			City:        clip(g.f.City(), 50),
			State:       clip(g.f.State(), 50),
			ZipCode:     clip(g.f.Zip(), 10),
			DateOfBirth: g.dateBetween(g.yearsAgo(65), g.yearsAgo(22)),
			RoleID:      role.RoleID,
			Gender:      null.StringFrom(g.pick(genders)),
		})
		ds.EmployeeEmails = append(ds.EmployeeEmails, entities.EmployeeEmail{EmpID: i, Email: g.unique(g.email)})
		ds.EmployeePhones = append(ds.EmployeePhones, entities.EmployeePhone{EmpID: i, PhoneNumber: g.phone(15)})
		ds.EmployeeNationals = append(ds.EmployeeNationals, entities.EmployeeNationalID{
			NationalID: g.unique(g.nationalID),
			EmpID:      null.IntFrom(i),
		})
	}
}

func (g *Generator) customers(ds *Dataset) {
	for i := 1; i <= g.sizes.Customers; i++ {
		ds.Customers = append(ds.Customers, entities.Customer{
			CustomerID:  i,
			Name:        clip(g.f.Name(), 100),
			Street:      clip(g.f.Street(), 100),
			City:        clip(g.f.City(), 50),
			State:       clip(g.f.State(), 50),
			ZipCode:     clip(g.f.Zip(), 10),
			DateOfBirth: g.dateBetween(g.yearsAgo(90), g.yearsAgo(18)),
			Gender:      null.StringFrom(g.pick(genders)),
		})
		ds.CustomerEmails = append(ds.CustomerEmails, entities.CustomerEmail{CustomerID: i, Email: g.unique(g.email)})
		ds.CustomerPhones = append(ds.CustomerPhones, entities.CustomerPhone{CustomerID: i, PhoneNumber: g.phone(15)})
		ds.CustomerNationals = append(ds.CustomerNationals, entities.CustomerNationalID{
			NationalID: g.unique(g.nationalID),
			CustomerID: i,
		})
	}
}

func (g *Generator) accounts(ds *Dataset) {
	if len(ds.Customers) == 0 || len(ds.Branches) == 0 {
		return
	}
	for i := 1; i <= g.sizes.Accounts; i++ {
		customer := ds.Customers[g.f.Number(0, len(ds.Customers)-1)]
		branch := ds.Branches[g.f.Number(0, len(ds.Branches)-1)]
		setup := g.dateBetween(g.yearsAgo(5), g.yearsAgo(1))
		ds.Accounts = append(ds.Accounts, entities.BankAccount{
			AccID:            i,
			Type:             g.pick(accountTypes),
			SetupDate:        setup,
			Balance:          g.money(0, 100000),
			Status:           g.pick(accountStatuses),
			BranchID:         null.IntFrom(branch.BranchID),
			LastActivityDate: g.dateBetween(setup, g.asOf),
			CustomerID:       null.IntFrom(customer.CustomerID),
		})
	}
}

// maturity - дата погашения строго после start, не позже чем через 10 лет.
func (g *Generator) maturity(start time.Time) time.Time {
	return g.dateBetween(start.AddDate(0, 0, 1), start.AddDate(0, 0, 3650))
}

func (g *Generator) investments(ds *Dataset) {
	if len(ds.Accounts) == 0 {
		return
	}
	for i := 1; i <= g.sizes.FixedInvestments; i++ {
		account := ds.Accounts[g.f.Number(0, len(ds.Accounts)-1)]
		start := g.dateBetween(g.yearsAgo(5), g.yearsAgo(1))
		ds.FixedInvestments = append(ds.FixedInvestments, entities.FixedRateInvestment{
			InvestID:     i,
			AccID:        account.AccID,
			Amount:       g.money(0.01, 100000),
			InterestRate: g.rate(),
			StartDate:    start,
			RiskLevel:    null.StringFrom(g.pick(riskLevels)),
			Status:       g.pick(investmentStatuses),
			MaturityDate: g.maturity(start),
			Type:         null.StringFrom(g.pick(fixedTypes)),
		})
	}
	for i := 1; i <= g.sizes.VariableInvestments; i++ {
		account := ds.Accounts[g.f.Number(0, len(ds.Accounts)-1)]
		start := g.dateBetween(g.yearsAgo(5), g.yearsAgo(1))
		ds.VarInvestments = append(ds.VarInvestments, entities.VariableRateInvestment{
			InvestID:     i,
			AccID:        account.AccID,
			Amount:       g.money(0.01, 100000),
			ReturnRate:   g.rate(),
			StartDate:    start,
			RiskLevel:    null.StringFrom(g.pick(riskLevels)),
			Status:       g.pick(investmentStatuses),
			MaturityDate: g.maturity(start),
			Type:         null.StringFrom(g.pick(variableTypes)),
			InterestRate: g.rate(),
		})
	}
}

func (g *Generator) transactions(ds *Dataset) {
	if len(ds.Accounts) == 0 {
		return
	}
	for i := 1; i <= g.sizes.Transactions; i++ {
		account := ds.Accounts[g.f.Number(0, len(ds.Accounts)-1)]
		kind := g.pick(transactionTypes)
		var dest null.Int
		if kind == "transfer" {
			dest = null.IntFrom(ds.Accounts[g.f.Number(0, len(ds.Accounts)-1)].AccID)
		}
		ds.Transactions = append(ds.Transactions, entities.Transaction{
			TranID:               i,
			AccID:                account.AccID,
			DestinationAccountID: dest,
			Type:                 kind,
			Amount:               g.money(1, 10000),
			Date:                 g.dateBetween(account.SetupDate, g.asOf),
			Status:               g.pick(transactionStatuses),
			CurrencyType:         g.pick(currencies),
			Method:               g.pick(paymentMethods),
		})
	}
}

func (g *Generator) loans(ds *Dataset) {
	ds.LoanTypes = append(ds.LoanTypes, loanTypesData...)
	if len(ds.Customers) == 0 || len(ds.Employees) == 0 {
		return
	}
	for i := 1; i <= g.sizes.Loans; i++ {
		customer := ds.Customers[g.f.Number(0, len(ds.Customers)-1)]
		employee := ds.Employees[g.f.Number(0, len(ds.Employees)-1)]
		start := g.dateBetween(g.yearsAgo(5), g.yearsAgo(1))
		ds.Loans = append(ds.Loans, entities.Loan{
			LoanID:     i,
			Type:       ds.LoanTypes[g.f.Number(0, len(ds.LoanTypes)-1)].Type,
			Amount:     g.money(1000, 50000),
			StartDate:  start,
			EndDate:    g.dateBetween(start.AddDate(0, 0, 1), g.asOf.AddDate(5, 0, 0)),
			Status:     g.pick(loanStatuses),
			EmpID:      null.IntFrom(employee.EmpID),
			CustomerID: null.IntFrom(customer.CustomerID),
		})
	}
}

func (g *Generator) access(ds *Dataset) {
	ds.Access = append(ds.Access, accessData...)
	for _, role := range ds.Roles {
		for _, perm := range ds.Access {
			if g.f.Bool() {
				ds.RolePermissions = append(ds.RolePermissions, entities.RolePermission{
					RoleID:     role.RoleID,
					Permission: perm.Permission,
				})
			}
		}
	}
}

func (g *Generator) lockers(ds *Dataset) {
	for i := 1; i <= g.sizes.Lockers; i++ {
		installed := g.dateBetween(g.yearsAgo(5), g.yearsAgo(1))
		var accessed null.Time
		if g.f.Bool() {
			accessed = null.TimeFrom(g.dateBetween(installed, g.asOf))
		}
		locker := entities.Locker{
			LockerID:         i,
			Location:         clip(g.unique(func() string { return g.f.Address().Address }), 255),
			SecurityType:     g.pick(securityTypes),
			Size:             null.StringFrom(g.pick(lockerSizes)),
			InstallationDate: installed,
			LastAccessedDate: accessed,
			Status:           g.pick(lockerStatuses),
		}
		ds.Lockers = append(ds.Lockers, locker)

		if locker.Status == lockerOccupied && len(ds.Customers) > 0 {
			ds.LockerCustomers = append(ds.LockerCustomers, entities.LockerCustomer{
				LockerID:   i,
				CustomerID: ds.Customers[g.f.Number(0, len(ds.Customers)-1)].CustomerID,
			})
		}
		if len(ds.Branches) > 0 {
			ds.LockerBranches = append(ds.LockerBranches, entities.LockerBranch{
				LockerID: i,
				BranchID: ds.Branches[g.f.Number(0, len(ds.Branches)-1)].BranchID,
			})
		}
	}
}

func (g *Generator) assists(ds *Dataset) {
	if len(ds.Customers) == 0 || len(ds.Employees) == 0 {
		return
	}
	seen := make(map[string]struct{}, g.sizes.Assists)
	for len(ds.Assists) < g.sizes.Assists {
		a := entities.Assist{
			CustomerID:        ds.Customers[g.f.Number(0, len(ds.Customers)-1)].CustomerID,
			EmpID:             ds.Employees[g.f.Number(0, len(ds.Employees)-1)].EmpID,
			Date:              g.dateBetween(g.yearsAgo(1), g.asOf),
			Time:              fmt.Sprintf("%02d:%02d:%02d", g.f.Number(0, 23), g.f.Number(0, 59), g.f.Number(0, 59)),
			TypeOfInteraction: g.pick(interactions),
		}
		key := fmt.Sprintf("%d|%d|%s|%s", a.CustomerID, a.EmpID, a.Date.Format("2006-01-02"), a.Time)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		ds.Assists = append(ds.Assists, a)
	}
}
