package plugin

import (
	"encoding/base64"
	"fmt"
	"os"

	"golang.org/x/crypto/scrypt"
)

// salt is fixed: the fingerprint only needs to be stable across a run
// grouping the same artefact file repeatedly, not to resist offline
// dictionary attacks the way a password hash would.
var fingerprintSalt = []byte("tanksim-artifact-fingerprint")

// fingerprint content-addresses an artefact file with the scrypt
// parameters (4096, 4, 1, 32). The result is stored on the loaded entry
// only: comparative grouping compares battle outcomes, not fingerprints,
// and the Loader's duplicate-activation guard is keyed by path.
func fingerprint(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading artefact %s: %w", path, err)
	}
	key, err := scrypt.Key(data, fingerprintSalt, 4096, 4, 1, 32)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

func errAlreadyActivated(path string) error {
	return fmt.Errorf("artefact %s already activated", path)
}

func errBadRegisterSignature(name string) error {
	return fmt.Errorf("artefact %s: %s has the wrong signature (want func(*plugin.Builder))", name, RegisterEntryPoint)
}
