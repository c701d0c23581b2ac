package messages

// Config loading and validation messages.
const (
	ConfigMissingFileFmt        = "missing config file %s: %w"
	ConfigInvalidConfigFmt      = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt   = "config %s contains unrecognized keys: %v."
	ConfigUnsupportedFormatFmt  = "config %s has unsupported extension %q (expected .toml, .yaml or .yml)"
	ConfigRuntimesRequiredFmt   = "%s: runtimes must list at least one PHP version"
	ConfigRuntimeLabelEmptyFmt  = "%s: runtimes contains an empty PHP version label"
	ConfigRuntimeIDEmptyFmt     = "%s: runtimes.%q must not be empty"
	ConfigDefaultRuntimeFmt     = "%s: default_runtime %q is not listed in runtimes (known: %s)"
	ConfigExpandStubsPathFmt    = "%s: expand stubs_path %q: %w"
	ConfigValidationGuidance    = "Fix the config file or remove it to use the built-in runtimes."
	ConfigFailedStatFmt         = "failed to stat config %s: %w"
	ConfigSourceDefault         = "built-in config"
	ConfigEmptyDocumentFmt      = "config %s is empty"
	ConfigStubsDirNotDirFmt     = "stubs path %s is not a directory"
	ConfigStubsDirFailedStatFmt = "failed to stat stubs path %s: %w"
)
