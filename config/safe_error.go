package config

// SafeErrorMessage returns err.Error() in development and the fallback in
// release mode, so internal details never reach clients in production.
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}
