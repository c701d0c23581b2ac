package install

// Stub pairs a stub name with the project path it is written to.
type Stub struct {
	// Source is the slash-separated stub name.
	Source string
	// Dest is the slash-separated path relative to the project root.
	Dest string
	// Render substitutes RuntimePlaceholder before writing.
	Render bool
}

// Fixed stub destinations.
const (
	ManifestPath   = "vercel.json"
	EntryPointPath = "api/index.php"
	IgnorePath     = ".vercelignore"
)

// StubSet returns the stubs the installer writes, in write order.
func StubSet() []Stub {
	return []Stub{
		{Source: ManifestPath, Dest: ManifestPath, Render: true},
		{Source: EntryPointPath, Dest: EntryPointPath},
		{Source: IgnorePath, Dest: IgnorePath},
	}
}
