// Package config loads the ambient settings.ini the driver's defaults come
// from (ini.LoadFile, file.Get(section, key)). CLI flags always override
// these defaults, never the reverse.
package config

import (
	"strconv"

	"github.com/vaughan0/go-ini"

	"tanksim/internal/utils"
)

// Settings are the driver-wide defaults settings.ini supplies. Per-arbiter
// knobs like the no-ammo grace window are not here: fixes the
// ArbiterFactory signature to (verbose bool) only, so an arbiter's match
// parameters are baked in at plugin-registration time, not reconfigurable
// from the CLI.
type Settings struct {
	NumThreads int
}

// Defaults returns the values used when settings.ini is absent or a key is
// missing.
func Defaults() Settings {
	return Settings{NumThreads: 4}
}

// Load reads settings.ini at path, falling back to Defaults() for any
// section/key it does not find. A missing file is tolerated (every default
// applies); a malformed value still surfaces as an error for the caller
// to Check.
func Load(path string) (Settings, *utils.Error) {
	s := Defaults()
	file, err := ini.LoadFile(path)
	if err != nil {
		return s, nil
	}

	if v, ok := file.Get("driver", "num_threads"); ok {
		n, perr := strconv.Atoi(v)
		if perr != nil {
			return s, utils.NewErrFromError("config", 1, perr)
		}
		s.NumThreads = n
	}
	return s, nil
}
