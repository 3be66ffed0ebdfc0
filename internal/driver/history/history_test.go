package history

import "testing"

func TestOpenWithEmptyDSNDisablesHistory(t *testing.T) {
	r, err := Open("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != nil {
		t.Fatalf("an empty DSN should yield a nil Recorder")
	}
}

func TestNilRecorderMethodsAreNoOps(t *testing.T) {
	var r *Recorder
	r.Record("run", "map", "a.so", "b.so", "MaxSteps", 1, 10) // must not panic
	r.Close()                                                  // must not panic
}
