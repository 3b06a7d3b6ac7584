package utils

import "errors"

var (
	ErrAccountNotFound       = errors.New("account not found")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrProductNotFound       = errors.New("product not found")
	ErrSubscriptionNotFound  = errors.New("subscription not found")
	ErrNoPendingSubscription = errors.New("no pending subscription found")
	ErrTransactionNotFound   = errors.New("transaction not found")
	ErrDatabaseError         = errors.New("database error")
)
