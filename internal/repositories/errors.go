package repositories

import "errors"

// Sentinel errors returned by repositories when a keyed lookup misses.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrCurrencyNotFound    = errors.New("currency not found")
	ErrGatewayNotFound     = errors.New("payment gateway not found")
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrTransactionNotFound = errors.New("wallet transaction not found")
	ErrPreapprovalNotFound = errors.New("wallet preapproval not found")
	ErrSettingNotFound     = errors.New("platform setting not found")
)
