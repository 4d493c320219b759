package api

import (
	"budgetbook/config"
)

// SafeErrorMessage keeps internal error details out of responses in release mode
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}
