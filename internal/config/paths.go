package config

import "path/filepath"

// FileNames lists the config file names looked up in a project root, in
// priority order.
var FileNames = []string{
	"vercel-installer.toml",
	".vercel-installer.toml",
	"vercel-installer.yaml",
	"vercel-installer.yml",
}

// CandidatePaths returns the config paths checked for a project root.
func CandidatePaths(root string) []string {
	paths := make([]string, 0, len(FileNames))
	for _, name := range FileNames {
		paths = append(paths, filepath.Join(root, name))
	}
	return paths
}
