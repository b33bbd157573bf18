package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email is already registered")
	ErrAccountNotActive       = errors.New("account has not been activated by an admin")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
