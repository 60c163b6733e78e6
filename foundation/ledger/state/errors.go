package state

import "errors"

// Set of error variables for transfer processing. The web layer maps
// these to status codes; everything else is treated as internal.
var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrRecipientNotFound   = errors.New("recipient wallet not found")
	ErrTranNotFound        = errors.New("transaction not found")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNotAuthorized       = errors.New("secret does not control the sending wallet")
)
