package order

import "errors"

var (
	ErrInvalidAction = errors.New("invalid order action")
	ErrInvalidRole   = errors.New("invalid role")
	ErrOrderNotFound = errors.New("order not found")
	ErrRoleMismatch  = errors.New("identity does not act in this role on the order")
)
