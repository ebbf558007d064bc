package schema

var (
	branchStatuses     = []string{"Active", "Inactive", "Closed"}
	genders            = []string{"M", "F"}
	riskLevels         = []string{"low", "medium", "high"}
	investmentStatuses = []string{"active", "matured", "closed"}
	fixedTypes         = []string{"government bond", "certificate of deposit", "other"}
	variableTypes      = []string{"bond", "equity", "other"}
)

// catalog повторяет DDL из migrations/00001_banking_schema.sql.
var catalog = []Table{
	{
		Name: "access",
		Columns: []Column{
			integer("Permission"),
			varchar("Access", 100),
		},
		PrimaryKey: []string{"Permission"},
	},
	{
		Name: "assist",
		Columns: []Column{
			integer("CustomerID"),
			integer("EmpID"),
			date("Date"),
			clock("Time"),
			varchar("TypeOfInteraction", 300),
		},
		PrimaryKey: []string{"CustomerID", "EmpID", "Date", "Time"},
	},
	{
		Name: "bankaccount",
		Columns: []Column{
			integer("AccID"),
			varchar("Type", 50),
			date("SetupDate"),
			money("Balance"),
			varchar("Status", 50),
			integer("BranchID").null(),
			date("LastActivityDate"),
			integer("CustomerID").null(),
		},
		PrimaryKey: []string{"AccID"},
	},
	{
		Name: "branch",
		Columns: []Column{
			integer("BranchID"),
			varchar("Name", 100),
			varchar("Status", 50).oneOf(branchStatuses...),
		},
		PrimaryKey: []string{"BranchID"},
	},
	{
		Name: "branchaddress",
		Columns: []Column{
			varchar("Street", 100),
			varchar("City", 50),
			varchar("State", 50),
			varchar("ZipCode", 10),
			varchar("Country", 50),
			integer("BranchID").null(),
		},
		PrimaryKey: []string{"Street", "City", "State", "ZipCode", "Country"},
	},
	{
		Name: "branchemail",
		Columns: []Column{
			varchar("Email", 255).rule("email"),
			integer("BranchID").null(),
		},
		PrimaryKey: []string{"Email"},
	},
	{
		Name: "branchphone",
		Columns: []Column{
			varchar("PhoneNumber", 20).rule("bank_phone"),
			integer("BranchID").null(),
		},
		PrimaryKey: []string{"PhoneNumber"},
	},
	{
		Name: "customer",
		Columns: []Column{
			integer("CustomerID"),
			varchar("Name", 100),
			varchar("Street", 100),
			varchar("City", 50),
			varchar("State", 50),
			varchar("ZipCode", 10),
			date("DateOfBirth"),
			char("Gender", 1).null().oneOf(genders...),
		},
		PrimaryKey: []string{"CustomerID"},
	},
	{
		Name: "customeremail",
		Columns: []Column{
			integer("CustomerID"),
			varchar("Email", 100).rule("email"),
		},
		PrimaryKey: []string{"CustomerID", "Email"},
	},
	{
		Name: "customernationalid",
		Columns: []Column{
			varchar("NationalID", 20),
			integer("CustomerID"),
		},
		PrimaryKey: []string{"NationalID"},
	},
	{
		Name: "customerphone",
		Columns: []Column{
			integer("CustomerID"),
			varchar("PhoneNumber", 15).rule("bank_phone"),
		},
		PrimaryKey: []string{"CustomerID", "PhoneNumber"},
	},
	{
		Name: "employee",
		Columns: []Column{
			integer("EmpID"),
			varchar("Name", 100),
			varchar("Street", 100),
			varchar("City", 50),
			varchar("State", 50),
			varchar("ZipCode", 10),
			date("DateOfBirth"),
			integer("RoleID"),
			char("Gender", 1).null().oneOf(genders...),
		},
		PrimaryKey: []string{"EmpID"},
	},
	{
		Name: "employeeemail",
		Columns: []Column{
			integer("EmpID"),
			varchar("Email", 100).rule("email"),
		},
		PrimaryKey: []string{"EmpID", "Email"},
	},
	{
		Name: "employeenationalid",
		Columns: []Column{
			varchar("NationalID", 20),
			integer("EmpID").null(),
		},
		PrimaryKey: []string{"NationalID"},
	},
	{
		Name: "employeephone",
		Columns: []Column{
			integer("EmpID"),
			varchar("PhoneNumber", 15).rule("bank_phone"),
		},
		PrimaryKey: []string{"EmpID", "PhoneNumber"},
	},
	{
		Name: "fixedrateinvestment",
		Columns: []Column{
			integer("InvestID"),
			integer("AccID"),
			money("Amount"),
			money("InterestRate"),
			date("StartDate"),
			varchar("RiskLevel", 50).null().oneOf(riskLevels...),
			varchar("Status", 50).oneOf(investmentStatuses...),
			date("MaturityDate"),
			varchar("Type", 50).null().oneOf(fixedTypes...),
		},
		PrimaryKey: []string{"InvestID", "AccID"},
	},
	{
		Name: "loan",
		Columns: []Column{
			integer("LoanID"),
			varchar("Type", 50),
			money("Amount"),
			date("StartDate"),
			date("EndDate"),
			varchar("Status", 20),
			integer("EmpID").null(),
			integer("CustomerID").null(),
		},
		PrimaryKey: []string{"LoanID"},
	},
	{
		Name: "loantype",
		Columns: []Column{
			varchar("Type", 50),
			money("InterestRate"),
			varchar("PaymentFrequency", 20),
		},
		PrimaryKey: []string{"Type"},
	},
	{
		Name: "locker",
		Columns: []Column{
			integer("LockerID"),
			varchar("Location", 255),
			varchar("SecurityType", 255),
			varchar("Size", 50).null(),
			date("InstallationDate"),
			date("LastAccessedDate").null(),
			varchar("Status", 50),
		},
		PrimaryKey: []string{"LockerID"},
	},
	{
		Name: "lockerbranch",
		Columns: []Column{
			integer("LockerID"),
			integer("BranchID"),
		},
		PrimaryKey: []string{"LockerID", "BranchID"},
	},
	{
		Name: "lockercustomer",
		Columns: []Column{
			integer("LockerID"),
			integer("CustomerID"),
		},
		PrimaryKey: []string{"LockerID", "CustomerID"},
	},
	{
		Name: "rolename",
		Columns: []Column{
			integer("RoleID"),
			varchar("Name", 100),
		},
		PrimaryKey: []string{"RoleID"},
	},
	{
		Name: "rolepermission",
		Columns: []Column{
			integer("RoleID"),
			integer("Permission"),
		},
		PrimaryKey: []string{"RoleID", "Permission"},
	},
	{
		Name: "rolestatus",
		Columns: []Column{
			varchar("Name", 100),
			varchar("Status", 50),
			text("RoleDescription").null(),
		},
		PrimaryKey: []string{"Name"},
	},
	{
		Name: "transaction",
		Columns: []Column{
			integer("TranID"),
			integer("AccID"),
			integer("DestinationAccountID").null(),
			varchar("Type", 50),
			money("Amount"),
			date("Date"),
			varchar("Status", 50),
			varchar("CurrencyType", 10),
			varchar("Method", 50),
		},
		PrimaryKey: []string{"TranID"},
	},
	{
		Name: "variablerateinvestment",
		Columns: []Column{
			integer("InvestID"),
			integer("AccID"),
			money("Amount"),
			money("ReturnRate"),
			date("StartDate"),
			varchar("RiskLevel", 50).null().oneOf(riskLevels...),
			varchar("Status", 50).oneOf(investmentStatuses...),
			date("MaturityDate"),
			varchar("Type", 50).null().oneOf(variableTypes...),
			money("InterestRate"),
		},
		PrimaryKey: []string{"InvestID", "AccID"},
	},
}
