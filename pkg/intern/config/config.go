package config

import "fmt"

// Manifest describes a dictionary of values to intern into a registry at
// startup, typically fed to Registry.Preload.
type Manifest struct {
	// Name identifies the manifest in logs and tooling. Optional.
	Name string `yaml:"name" json:"name"`

	// Symbols are the values to intern, in order. Duplicates are allowed;
	// the registry deduplicates them.
	Symbols []string `yaml:"symbols" json:"symbols"`
}

// Validate checks the manifest for problems that would make a preload
// pointless. An empty symbol list is the only rejected state; empty string
// values are legal symbols.
func (m Manifest) Validate() error {
	if len(m.Symbols) == 0 {
		return fmt.Errorf("manifest %q: no symbols", m.Name)
	}
	return nil
}
