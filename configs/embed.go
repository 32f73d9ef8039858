// Package configs embeds the default YAML configuration shipped with the
// server binary.
package configs

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed *.yaml
var embeddedConfigs embed.FS

// DefaultName is the embedded config used when no file is supplied.
const DefaultName = "config.yaml"

// Load returns the embedded YAML config by filename.
func Load(name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("embedded config name is empty")
	}
	data, err := fs.ReadFile(embeddedConfigs, name)
	if err != nil {
		return nil, fmt.Errorf("read embedded config %q: %w", name, err)
	}
	return data, nil
}
