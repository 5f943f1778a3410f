package domain

import "errors"

var ErrInvalidAccount = errors.New("Invalid account")
var ErrInvalidAmount = errors.New("Invalid amount")
var ErrInsufficientBalance = errors.New("Insufficient balance")
var ErrMinimumBalance = errors.New("Insufficient balance (minimum balance requirement)")
var ErrOverdraftLimitExceeded = errors.New("Overdraft limit exceeded")
var ErrMergeNotSupported = errors.New("Merge not supported")
var ErrUnknownAccountKind = errors.New("Unknown account kind")
