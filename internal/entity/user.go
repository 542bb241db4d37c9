package entity

import (
	"github.com/gofrs/uuid/v5"
)

type UserType string

const (
	UserTypeCustomer UserType = "customer"
	UserTypeVendor   UserType = "vendor"
	UserTypeAdmin    UserType = "admin"
)

func (u UserType) String() string {
	return string(u)
}

type User struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Phone    string
	Type     UserType
	VendorID uuid.UUID // zero unless Type is UserTypeVendor
}

type PushToken struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Token  string
	Active bool
}
