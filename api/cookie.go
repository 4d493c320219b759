package api

import (
	"net/http"

	"budgetbook/config"
)

// getCookieOptions returns cookie security options for the current run mode.
// Release mode turns on Secure (HTTPS only); SameSite=Lax blocks cross-site
// POSTs from carrying the cookie while allowing same-site navigation.
func getCookieOptions() (secure bool, sameSite http.SameSite) {
	cfg := config.GetConfig()
	if cfg != nil && cfg.Server.Mode == "release" {
		secure = true
	}
	sameSite = http.SameSiteLaxMode
	return
}
