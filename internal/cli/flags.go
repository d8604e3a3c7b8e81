package cli

import "covproc/internal/config"

// Flags holds command-line flags
type Flags struct {
	DirectoryLocation string
	RepoDirectory     string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		OutputDir: f.DirectoryLocation,
		RepoDir:   f.RepoDirectory,
	}
}
