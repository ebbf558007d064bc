package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type RoleName struct {
	RoleID int    `validate:"required,gt=0"`
	Name   string `validate:"required,max=100"`
}

type RoleStatus struct {
	Name            string      `validate:"required,max=100"`
	Status          string      `validate:"required,max=50"`
	RoleDescription null.String `validate:"omitempty"`
}

type Access struct {
	Permission int    `validate:"required,gt=0"`
	Access     string `validate:"required,max=100"`
}

type RolePermission struct {
	RoleID     int `validate:"required,gt=0"`
	Permission int `validate:"required,gt=0"`
}

type Locker struct {
	LockerID         int         `validate:"required,gt=0"`
	Location         string      `validate:"required,max=255"`
	SecurityType     string      `validate:"required,max=255"`
	Size             null.String `validate:"omitempty,max=50"`
	InstallationDate time.Time   `validate:"required"`
	LastAccessedDate null.Time   `validate:"omitempty"`
	Status           string      `validate:"required,max=50"`
}

type LockerCustomer struct {
	LockerID   int `validate:"required,gt=0"`
	CustomerID int `validate:"required,gt=0"`
}

type LockerBranch struct {
	LockerID int `validate:"required,gt=0"`
	BranchID int `validate:"required,gt=0"`
}
