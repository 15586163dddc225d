package messages

// Launch messages for the tough launcher.
const (
	// LaunchErrorFmt prefixes launcher diagnostics on stderr.
	LaunchErrorFmt              = "tough: %v\n"
	LaunchInterpreterEmpty      = "no interpreter configured"
	LaunchInterpreterMissingFmt = "interpreter %q not found on PATH (install it or set %s): %w"
	LaunchInstallDirRequired    = "install directory is required"
	LaunchSystemRequired        = "launch system is required"
	LaunchRunFmt                = "run %s: %w"
)
