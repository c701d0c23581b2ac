package messages

// Installer messages.
const (
	// InstallRootRequired indicates root path is required for install.
	InstallRootRequired = "root path is required"
	// InstallSystemRequired indicates system is required for install.
	InstallSystemRequired = "install system is required"
	// InstallConfigRequired indicates the runtime catalog must be supplied.
	InstallConfigRequired = "install config is required"
	// InstallPrompterRequired indicates an interactive selection needs a prompter.
	InstallPrompterRequired = "a PHP version prompt is required; pass --php-version or --no-interaction"

	InstallUnknownRuntimeFmt = "%w %q (known: %s)"
	InstallStubNotFoundFmt   = "%w: %s: %v"
	InstallWriteFailedFmt    = "%w: %s: %v"
	InstallPromptFailedFmt   = "%w: %w"
	InstallFailedStatFmt     = "failed to stat %s: %w"
	InstallPathEscapesRoot   = "path %q escapes the project root"

	InstallDiffHeaderFmt = "%s will change:\n"
	InstallDiffTruncated = "... (truncated to %d lines; rerun with --diff-lines <n> to see more)"
)
