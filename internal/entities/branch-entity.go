package entities

import "github.com/aarondl/null/v8"

type Branch struct {
	BranchID int    `validate:"required,gt=0"`
	Name     string `validate:"required,max=100"`
	Status   string `validate:"required,oneof=Active Inactive Closed"`
}

type BranchAddress struct {
	Street   string   `validate:"required,max=100"`
	City     string   `validate:"required,max=50"`
	State    string   `validate:"required,max=50"`
	ZipCode  string   `validate:"required,max=10"`
	Country  string   `validate:"required,max=50"`
	BranchID null.Int `validate:"omitempty,gt=0"`
}

type BranchEmail struct {
	Email    string   `validate:"required,email,max=255"`
	BranchID null.Int `validate:"omitempty,gt=0"`
}

type BranchPhone struct {
	PhoneNumber string   `validate:"required,bank_phone,max=20"`
	BranchID    null.Int `validate:"omitempty,gt=0"`
}

// BranchLocation - адрес отделения вместе с его названием, вход для геокодера.
type BranchLocation struct {
	BranchID   int64
	BranchName string
	Street     string
	City       string
	State      string
	ZipCode    string
	Country    string
}
