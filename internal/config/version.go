package config

// Version is the konig binary version.
// Set at build time via: -ldflags "-X github.com/katalvlaran/konig/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
