package seeders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"bank-dashboard/internal/entities"
	"bank-dashboard/internal/repositories"
	"bank-dashboard/internal/schema"
)

// StructValidator - validation.CustomValidator без зависимости от echo.
type StructValidator interface {
	Validate(i interface{}) error
}

// step - одна таблица: её строки пишутся одним COPY в отдельной транзакции.
type step struct {
	group    string
	table    string
	validate func(StructValidator) error
	rows     func() [][]any
}

// Groups - имена для --only в порядке записи.
var Groups = []string{
	"branches", "roles", "employees", "customers", "accounts", "investments",
	"transactions", "loans", "access", "lockers", "assists",
}

func newStep[T any](group, table string, items []T, row func(T) []any) step {
	return step{
		group: group,
		table: table,
		validate: func(v StructValidator) error {
			for i := range items {
				if err := v.Validate(&items[i]); err != nil {
					return fmt.Errorf("%s, строка %d: %w", table, i+1, err)
				}
			}
			return nil
		},
		rows: func() [][]any {
			out := make([][]any, len(items))
			for i, item := range items {
				out[i] = row(item)
			}
			return out
		},
	}
}

func clockValue(hms string) pgtype.Time {
	t, err := time.Parse("15:04:05", hms)
	if err != nil {
		return pgtype.Time{}
	}
	us := int64(t.Hour())*3600e6 + int64(t.Minute())*60e6 + int64(t.Second())*1e6
	return pgtype.Time{Microseconds: us, Valid: true}
}

// plan перечисляет таблицы в порядке внешних ключей.
func plan(ds *Dataset) []step {
	return []step{
		newStep("branches", "branch", ds.Branches, func(b entities.Branch) []any {
			return []any{b.BranchID, b.Name, b.Status}
		}),
		newStep("branches", "branchaddress", ds.BranchAddresses, func(a entities.BranchAddress) []any {
			return []any{a.Street, a.City, a.State, a.ZipCode, a.Country, a.BranchID.Ptr()}
		}),
		newStep("branches", "branchemail", ds.BranchEmails, func(e entities.BranchEmail) []any {
			return []any{e.Email, e.BranchID.Ptr()}
		}),
		newStep("branches", "branchphone", ds.BranchPhones, func(p entities.BranchPhone) []any {
			return []any{p.PhoneNumber, p.BranchID.Ptr()}
		}),
		newStep("roles", "rolename", ds.Roles, func(r entities.RoleName) []any {
			return []any{r.RoleID, r.Name}
		}),
		newStep("roles", "rolestatus", ds.RoleStatuses, func(r entities.RoleStatus) []any {
			return []any{r.Name, r.Status, r.RoleDescription.Ptr()}
		}),
		newStep("employees", "employee", ds.Employees, func(e entities.Employee) []any {
			return []any{e.EmpID, e.Name, e.Street, e.City, e.State, e.ZipCode, e.DateOfBirth, e.RoleID, e.Gender.Ptr()}
		}),
		newStep("employees", "employeeemail", ds.EmployeeEmails, func(e entities.EmployeeEmail) []any {
			return []any{e.EmpID, e.Email}
		}),
		newStep("employees", "employeephone", ds.EmployeePhones, func(p entities.EmployeePhone) []any {
			return []any{p.EmpID, p.PhoneNumber}
		}),
		newStep("employees", "employeenationalid", ds.EmployeeNationals, func(n entities.EmployeeNationalID) []any {
			return []any{n.NationalID, n.EmpID.Ptr()}
		}),
		newStep("customers", "customer", ds.Customers, func(c entities.Customer) []any {
			return []any{c.CustomerID, c.Name, c.Street, c.City, c.State, c.ZipCode, c.DateOfBirth, c.Gender.Ptr()}
		}),
		newStep("customers", "customeremail", ds.CustomerEmails, func(e entities.CustomerEmail) []any {
			return []any{e.CustomerID, e.Email}
		}),
		newStep("customers", "customerphone", ds.CustomerPhones, func(p entities.CustomerPhone) []any {
			return []any{p.CustomerID, p.PhoneNumber}
		}),
		newStep("customers", "customernationalid", ds.CustomerNationals, func(n entities.CustomerNationalID) []any {
			return []any{n.NationalID, n.CustomerID}
		}),
		newStep("accounts", "bankaccount", ds.Accounts, func(a entities.BankAccount) []any {
			return []any{a.AccID, a.Type, a.SetupDate, a.Balance.InexactFloat64(), a.Status, a.BranchID.Ptr(), a.LastActivityDate, a.CustomerID.Ptr()}
		}),
		newStep("investments", "fixedrateinvestment", ds.FixedInvestments, func(i entities.FixedRateInvestment) []any {
			return []any{i.InvestID, i.AccID, i.Amount.InexactFloat64(), i.InterestRate.InexactFloat64(), i.StartDate,
				i.RiskLevel.Ptr(), i.Status, i.MaturityDate, i.Type.Ptr()}
		}),
		newStep("investments", "variablerateinvestment", ds.VarInvestments, func(i entities.VariableRateInvestment) []any {
			return []any{i.InvestID, i.AccID, i.Amount.InexactFloat64(), i.ReturnRate.InexactFloat64(), i.StartDate,
				i.RiskLevel.Ptr(), i.Status, i.MaturityDate, i.Type.Ptr(), i.InterestRate.InexactFloat64()}
		}),
		newStep("transactions", "transaction", ds.Transactions, func(t entities.Transaction) []any {
			return []any{t.TranID, t.AccID, t.DestinationAccountID.Ptr(), t.Type, t.Amount.InexactFloat64(), t.Date,
				t.Status, t.CurrencyType, t.Method}
		}),
		newStep("loans", "loantype", ds.LoanTypes, func(t entities.LoanType) []any {
			return []any{t.Type, t.InterestRate.InexactFloat64(), t.PaymentFrequency}
		}),
		newStep("loans", "loan", ds.Loans, func(l entities.Loan) []any {
			return []any{l.LoanID, l.Type, l.Amount.InexactFloat64(), l.StartDate, l.EndDate, l.Status, l.EmpID.Ptr(), l.CustomerID.Ptr()}
		}),
		newStep("access", "access", ds.Access, func(a entities.Access) []any {
			return []any{a.Permission, a.Access}
		}),
		newStep("access", "rolepermission", ds.RolePermissions, func(r entities.RolePermission) []any {
			return []any{r.RoleID, r.Permission}
		}),
		newStep("lockers", "locker", ds.Lockers, func(l entities.Locker) []any {
			return []any{l.LockerID, l.Location, l.SecurityType, l.Size.Ptr(), l.InstallationDate, l.LastAccessedDate.Ptr(), l.Status}
		}),
		newStep("lockers", "lockercustomer", ds.LockerCustomers, func(l entities.LockerCustomer) []any {
			return []any{l.LockerID, l.CustomerID}
		}),
		newStep("lockers", "lockerbranch", ds.LockerBranches, func(l entities.LockerBranch) []any {
			return []any{l.LockerID, l.BranchID}
		}),
		newStep("assists", "assist", ds.Assists, func(a entities.Assist) []any {
			return []any{a.CustomerID, a.EmpID, a.Date, clockValue(a.Time), a.TypeOfInteraction}
		}),
	}
}

type Seeder struct {
	tx        repositories.TxManagerInterface
	validator StructValidator
	logger    *zap.Logger
}

func NewSeeder(tx repositories.TxManagerInterface, validator StructValidator, logger *zap.Logger) *Seeder {
	return &Seeder{tx: tx, validator: validator, logger: logger}
}

func selectSteps(ds *Dataset, only []string) ([]step, error) {
	want := make(map[string]bool, len(only))
	for _, g := range only {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		known := false
		for _, name := range Groups {
			if name == g {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("неизвестная группа %q, допустимые: %s", g, strings.Join(Groups, ", "))
		}
		want[g] = true
	}

	var out []step
	for _, s := range plan(ds) {
		if len(want) == 0 || want[s.group] {
			out = append(out, s)
		}
	}
	return out, nil
}

// Run проверяет строки валидатором и пишет их через COPY, по транзакции на таблицу.
// Повторный запуск по непустым таблицам падает на первичных ключах.
func (s *Seeder) Run(ctx context.Context, ds *Dataset, only []string) error {
	steps, err := selectSteps(ds, only)
	if err != nil {
		return err
	}

	for _, st := range steps {
		if err := st.validate(s.validator); err != nil {
			return fmt.Errorf("сгенерированные данные не прошли проверку: %w", err)
		}
	}

	for _, st := range steps {
		rows := st.rows()
		if len(rows) == 0 {
			s.logger.Info("таблица пропущена: нет строк", zap.String("table", st.table))
			continue
		}
		columns := schema.MustLookup(st.table).ColumnNames()
		start := time.Now()

		var copied int64
		err := s.tx.RunInTransaction(ctx, func(tx pgx.Tx) error {
			n, err := tx.CopyFrom(ctx, pgx.Identifier{st.table}, columns, pgx.CopyFromRows(rows))
			copied = n
			return err
		})
		if err != nil {
			return fmt.Errorf("ошибка записи в %s: %w", st.table, err)
		}
		s.logger.Info("✅ таблица заполнена",
			zap.String("table", st.table),
			zap.Int64("rows", copied),
			zap.Duration("took", time.Since(start)),
		)
	}
	return nil
}
