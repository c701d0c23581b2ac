package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check that the Vercel deployment files are installed and consistent"

	DoctorHealthCheckFmt = "🏥 Checking Vercel setup in %s...\n"

	DoctorCheckNameConfig   = "Config"
	DoctorCheckNameManifest = "Manifest"
	DoctorCheckNameRuntime  = "Runtime"
	DoctorCheckNameStub     = "Stub"

	DoctorConfigLoadFailedFmt = "Failed to load configuration: %v"
	DoctorConfigLoadRecommend = "Fix the config file or pass --config with a valid TOML or YAML file."
	DoctorConfigLoadedFmt     = "Configuration loaded from %s (%d runtimes)"

	DoctorMissingFileFmt       = "Missing %s"
	DoctorMissingFileRecommend = "Run `vercel install` to write the deployment files."
	DoctorNotRegularFileFmt    = "%s exists but is not a regular file"
	DoctorNotRegularRecommend  = "Remove or rename the path, then run `vercel install`."
	DoctorReadFailedFmt        = "Failed to read %s: %v"
	DoctorFileMatchesFmt       = "%s matches the stub"
	DoctorFileDiffersFmt       = "%s differs from the stub"
	DoctorFileDiffersRecommend = "Run `vercel install --diff` to review and restore the stub, or keep the local edits."
	DoctorStubUnavailableFmt   = "Stub for %s unavailable: %v"

	DoctorManifestInvalidFmt          = "Invalid %s: %v"
	DoctorManifestInvalidRecommend    = "Fix the JSON syntax or run `vercel install` to regenerate it."
	DoctorManifestPlaceholderFmt      = "%s still contains the %s placeholder"
	DoctorManifestNoRuntimeFmt        = "%s declares no runtime for %s"
	DoctorManifestRuntimeRecommend    = "Run `vercel install` to render the manifest for a PHP runtime."
	DoctorRuntimeKnownFmt             = "%s uses %s (PHP %s)"
	DoctorRuntimeUnknownFmt           = "%s uses %s, which is not in the runtime catalog"
	DoctorRuntimeUnknownRecommend     = "Run `vercel runtimes` to list known runtimes, or add it to the config."
	DoctorManifestRuntimeMismatchFmt  = "%s uses %s for %s but %s for %s"
	DoctorManifestRuntimeMismatchHint = "Use one runtime across all PHP functions."

	DoctorFailureSummary = "❌ Some checks failed. Please address the items above."
	DoctorFailureError   = "doctor checks failed"
	DoctorSuccessSummary = "✅ All checks passed. The project is ready for `vercel deploy`."

	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-10s %s\n"
	DoctorRecommendationPrefix = "       💡 "
	DoctorRecommendationIndent = "         "
)
