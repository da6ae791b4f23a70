package vault

import "github.com/iov-one/weave/errors"

var (
	ErrAlreadyInitialized  = errors.Register(1200, "already initialized")
	ErrNoYield             = errors.Register(1201, "no yield")
	ErrNoPendingRequest    = errors.Register(1202, "no pending withdrawal request")
	ErrDelayNotElapsed     = errors.Register(1203, "withdrawal delay not elapsed")
	ErrDelayNotConfigured  = errors.Register(1204, "withdrawal delay not configured")
	ErrTransferFailed      = errors.Register(1205, "transfer failed")
	ErrPaused              = errors.Register(1206, "deposits paused")
	ErrRevision            = errors.Register(1207, "not available in current revision")
	ErrReentrant           = errors.Register(1208, "reentrant call")
	ErrInsufficientBalance = errors.Register(1209, "insufficient balance")
)
