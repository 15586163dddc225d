package messages

// CLI messages for user-facing commands.
const (
	// RootUse is the CLI command name.
	RootUse = "tough-setup"
	// RootShort is the short description for the root command.
	RootShort = "Install the TOUGH file type handler"
	RootLong  = "Register the .tough file type with Windows and put the tough launcher on your Path.\n\nEach command is safe to run again; it overwrites with the same values."

	RootFlagDryRun = "Show what would change without writing anything"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// AssociateUse is the associate command name.
	AssociateUse   = "associate"
	AssociateShort = "Associate the file extension with the tough launcher"
	AssociateLong  = "Register the file type and bind the extension to it so that opening a file runs the tough launcher next to this program.\n\nAn existing association for the extension is overwritten. Writing machine-wide associations requires an elevated (Administrator) prompt."

	AssociateSuccessFmt  = "Associated %s with %s\n  command: %s\n"
	AssociateReplacedFmt = "Warning: %s was associated with %s; it now points at %s\n"

	// AddPathUse is the add-path command usage.
	AddPathUse   = "add-path [dir]"
	AddPathShort = "Add a directory (default: this program's directory) to the user Path"
	AddPathLong  = "Append a directory to the current user's persisted Path variable, unless it is already there.\n\nRunning terminals keep their old Path; open a new one to pick up the change."

	AddPathAddedFmt     = "Added %s to the user Path\n"
	AddPathPresentFmt   = "%s is already on the user Path\n"
	AddPathNewShellNote = "Open a new terminal for the change to take effect."

	// StatusUse is the status command name.
	StatusUse   = "status"
	StatusShort = "Show the current association and Path state"

	StatusAssociatedFmt    = "%s: %s\n"
	StatusNotAssociatedFmt = "%s: not associated (%v)\n"
	StatusPathFmt          = "user Path contains %s: %s\n"
	StatusPathUnknownFmt   = "user Path: unavailable (%v)\n"
	StatusUserOverrideFmt  = "%s: per-user association to %s in HKCU\\Software\\Classes takes precedence over the machine-wide one\n"
	StatusYes              = "yes"
	StatusNo               = "no"

	DryRunHeader    = "Dry run; nothing was written."
	DryRunNoChanges = "No changes."
	DryRunCurrent   = "(current)"
	DryRunProposed  = "(proposed)"

	ElevationHint = "Run tough-setup again from an elevated (Administrator) prompt."

	ResolveInstallDirFmt = "resolve install directory: %w"
	ExpandDirFmt         = "expand %s: %w"
)
