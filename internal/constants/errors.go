package constants

import "errors"

// Configuration errors.
var (
	ErrNoCredentials     = errors.New("no FastBill credentials configured, use 'fastbill login' or set FASTBILL_EMAIL and FASTBILL_API_KEY")
	ErrUnknownConfigKey  = errors.New("unknown configuration key")
	ErrSecretsNotVisible = errors.New("the API key cannot be shown, use 'fastbill config show' instead")
)

// Argument errors.
var (
	ErrInvalidID       = errors.New("id must be a positive integer")
	ErrBodyRequired    = errors.New("a JSON body is required, use --data or --file")
	ErrRecipientNeeded = errors.New("--to is required")
)
