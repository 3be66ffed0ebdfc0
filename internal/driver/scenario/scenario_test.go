package scenario

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDecodesComparativeScenario(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	content := "map: maps/arena.txt\narbiters: arbiters/\nalgorithm1: algos/aggressive.so\nalgorithm2: algos/simple.so\nnum_threads: 6\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	sc, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sc.Map != "maps/arena.txt" || sc.GameManagersFolder != "arbiters/" ||
		sc.Algorithm1 != "algos/aggressive.so" || sc.Algorithm2 != "algos/simple.so" || sc.NumThreads != 6 {
		t.Fatalf("decoded scenario mismatch: %+v", sc)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing scenario file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("map: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for malformed YAML")
	}
}
