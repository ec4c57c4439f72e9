package users

import "errors"

var (
	ErrNotFound    = errors.New("user not found")
	ErrEmailExists = errors.New("email already exists")
	ErrRoleInvalid = errors.New("invalid role")
	ErrSelfDelete  = errors.New("cannot delete your own account")
)
