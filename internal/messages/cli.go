package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "vercel"
	// RootShort is the short description for the root command.
	RootShort         = "Prepare a PHP project for deployment on Vercel"
	RootFlagVerbose   = "Log each installer step to stderr"
	VersionCommitFmt  = "commit %s"
	VersionBuildFmt   = "built %s"
	VersionFullFmt    = "%s (%s)"
	VersionTemplate   = "{{.Version}}\n"
	RootResolveCwdFmt = "resolve working directory: %w"

	// InstallUse is the install command name.
	InstallUse   = "install"
	InstallShort = "Write vercel.json, api/index.php and .vercelignore into the project"
	InstallLong  = `Install the Vercel deployment files into the project root.

The manifest (vercel.json) is rendered for the selected PHP runtime. The entry point
(api/index.php) and the ignore file (.vercelignore) are copied verbatim. Existing files
at those paths are overwritten.`

	InstallFlagPHPVersion    = "PHP version to install (skips the interactive prompt)"
	InstallFlagRoot          = "Project root to install into (defaults to the working directory)"
	InstallFlagConfig        = "Path to a vercel-installer config file (TOML or YAML)"
	InstallFlagStubs         = "Directory to load stubs from (overrides stubs_path from config)"
	InstallFlagNoInteraction = "Do not prompt; use the default PHP version unless --php-version is set"
	InstallFlagDiff          = "Show a diff for each existing file that is about to change"
	InstallFlagDiffLines     = "Maximum number of diff lines shown per file"

	InstallSuccessFmt     = "Installed Vercel files for PHP %s (%s)\n"
	InstallWrittenLineFmt = "  - %s\n"
	InstallCreatedDirFmt  = "Created directory %s/\n"

	// RuntimesUse is the runtimes command name.
	RuntimesUse     = "runtimes"
	RuntimesShort   = "List the PHP runtimes available for install"
	RuntimesLineFmt = "%-8s %s%s\n"
	RuntimesDefault = " (default)"

	PromptRuntimeTitle = "What PHP runtime would you like to use?"
)

// Prompt messages.
const (
	PromptRequiresTerminal = "selecting a PHP version requires an interactive terminal; pass --php-version or --no-interaction"
	PromptNoOptions        = "no options to choose from"
	PromptAborted          = "prompt aborted"
)
