package flags

const (
	// DryRunFlagName exposes the shared dry-run flag name.
	DryRunFlagName = "dry-run"
	// DryRunFlagUsage describes the shared dry-run flag purpose.
	DryRunFlagUsage = "Preview changes without writing files"
	// OutputFlagName exposes the shared output destination flag name.
	OutputFlagName = "output"
	// OutputFlagShorthand provides the shorthand for the output flag.
	OutputFlagShorthand = "o"
	// OutputFlagUsage describes the shared output flag purpose.
	OutputFlagUsage = "Write the result to this file instead of standard output"
)
