package engine

import (
	"testing"

	"tanksim/internal/grid"
)

// A shell overlaid on a tank's cell resolves to the shell marker, and the
// requesting tank is always rendered as '%' regardless of side.
func TestRenderMarkersShellOverTankAndSelfMarker(t *testing.T) {
	m := NewManager(false)
	m.g = grid.New(2, 2, false)
	self := &Tank{Side: 1, Row: 0, Col: 0, Alive: true}
	other := &Tank{Side: 2, Row: 0, Col: 1, Alive: true}
	m.tanks = []*Tank{self, other}
	m.shells = []*Shell{{Row: 0, Col: 1, Live: true}}

	markers := m.renderMarkers(self)
	if markers[0][0] != '%' {
		t.Fatalf("requesting tank should render as '%%', got %q", markers[0][0])
	}
	if markers[0][1] != '*' {
		t.Fatalf("a shell over a tank should render as '*', got %q", markers[0][1])
	}
}
