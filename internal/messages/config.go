package messages

// Config messages for tough.toml loading and validation.
const (
	// ConfigReadFmt formats unreadable config file errors.
	ConfigReadFmt             = "read config %s: %w"
	ConfigInvalidFmt          = "invalid config %s: %w"
	ConfigFieldEmptyFmt       = "%s: %s must not be empty"
	ConfigFieldNotBareFmt     = "%s: %s must be a file name, not a path"
	ConfigFieldNotRelativeFmt = "%s: %s must be a path inside the install directory"
)
