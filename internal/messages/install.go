package messages

// Install messages for the association and Path installers.
const (
	// InstallOpAssociate names the association operation in errors.
	InstallOpAssociate = "associate"
	InstallOpResolve   = "resolve association"
	InstallOpAddPath   = "add to user path"

	InstallExtensionNoDotFmt        = "extension %q must start with '.'"
	InstallExtensionInvalidFmt      = "extension %q may only contain letters, digits, '-' and '_' after the dot"
	InstallIdentifierInvalidFmt     = "file type identifier %q must be non-empty and contain no whitespace, quotes or backslashes"
	InstallLauncherRelativeFmt      = "launcher path %q must be absolute"
	InstallLauncherMissingFmt       = "launcher %s: %w"
	InstallLauncherIsDirFmt         = "launcher path %s is a directory"
	InstallLauncherNotExecutableFmt = "launcher %s is not executable"
	InstallReadBindingFmt           = "read association for %s: %w"
	InstallNoBindingFmt             = "no file type is associated with %s: %w"
	InstallNoCommandFmt             = "file type %s has no open command: %w"

	InstallDirRelativeFmt  = "directory %q must be an absolute path"
	InstallDirDelimiterFmt = "directory %q must not contain ';'"
	InstallReadPathFmt     = "read user Path: %w"
	InstallPathTooLongFmt  = "new Path would be %d characters; the limit is %d"
)
