package config

// Build metadata, overridden with -ldflags "-X" at release time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)
