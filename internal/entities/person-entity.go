package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Customer struct {
	CustomerID  int         `validate:"required,gt=0"`
	Name        string      `validate:"required,max=100"`
	Street      string      `validate:"required,max=100"`
	City        string      `validate:"required,max=50"`
	State       string      `validate:"required,max=50"`
	ZipCode     string      `validate:"required,max=10"`
	DateOfBirth time.Time   `validate:"required"`
	Gender      null.String `validate:"omitempty,oneof=M F"`
}

type CustomerEmail struct {
	CustomerID int    `validate:"required,gt=0"`
	Email      string `validate:"required,email,max=100"`
}

type CustomerPhone struct {
	CustomerID  int    `validate:"required,gt=0"`
	PhoneNumber string `validate:"required,bank_phone,max=15"`
}

type CustomerNationalID struct {
	NationalID string `validate:"required,max=20"`
	CustomerID int    `validate:"required,gt=0"`
}

type Employee struct {
	EmpID       int         `validate:"required,gt=0"`
	Name        string      `validate:"required,max=100"`
	Street      string      `validate:"required,max=100"`
	City        string      `validate:"required,max=50"`
	State       string      `validate:"required,max=50"`
	ZipCode     string      `validate:"required,max=10"`
	DateOfBirth time.Time   `validate:"required"`
	RoleID      int         `validate:"required,gt=0"`
	Gender      null.String `validate:"omitempty,oneof=M F"`
}

type EmployeeEmail struct {
	EmpID int    `validate:"required,gt=0"`
	Email string `validate:"required,email,max=100"`
}

type EmployeePhone struct {
	EmpID       int    `validate:"required,gt=0"`
	PhoneNumber string `validate:"required,bank_phone,max=15"`
}

type EmployeeNationalID struct {
	NationalID string   `validate:"required,max=20"`
	EmpID      null.Int `validate:"omitempty,gt=0"`
}

type Assist struct {
	CustomerID int       `validate:"required,gt=0"`
	EmpID      int       `validate:"required,gt=0"`
	Date       time.Time `validate:"required"`
	// HH:MM:SS
	Time              string `validate:"required,clock_time"`
	TypeOfInteraction string `validate:"required,max=300"`
}
