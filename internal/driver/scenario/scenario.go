// Package scenario lets a comparative run be described by one YAML file
// instead of four CLI flags. It is pure sugar: Load only fills in the same
// fields the CLI flags populate and never bypasses their validation.
package scenario

import (
	"os"

	"gopkg.in/yaml.v3"

	"tanksim/internal/utils"
)

// Comparative mirrors the comparative-mode CLI flags.
type Comparative struct {
	Map               string   `yaml:"map"`
	GameManagersFolder string  `yaml:"arbiters"`
	Algorithm1        string   `yaml:"algorithm1"`
	Algorithm2        string   `yaml:"algorithm2"`
	NumThreads        int      `yaml:"num_threads"`
}

// Load reads and decodes a comparative scenario file.
func Load(path string) (*Comparative, *utils.Error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, utils.NewErrFromError("scenario.Comparative", 1, err)
	}
	var c Comparative
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, utils.NewErrFromError("scenario.Comparative", 2, err)
	}
	return &c, nil
}
