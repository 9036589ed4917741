package geo

import (
	"testing"

	"github.com/lintang-b-s/routetracker/pkg/datastructure"
)

func TestDouglasPecker(t *testing.T) {
	line := []datastructure.Point{
		FromLatLon(-7.565837, 110.831586),
		FromLatLon(-7.566063, 110.832379),
		FromLatLon(-7.566406, 110.833232),
	}

	simplified := RamesDouglasPeucker(line, 1e-4)
	if len(simplified) > 2 {
		t.Errorf("expected 2, got %d", len(simplified))
	}
}

func TestDouglasPeckerKeepsSpike(t *testing.T) {
	line := []datastructure.Point{
		datastructure.NewPoint(0, 0),
		datastructure.NewPoint(1, 0.5), // far off the baseline
		datastructure.NewPoint(2, 0),
	}

	simplified := RamesDouglasPeucker(line, 1e-4)
	if len(simplified) != 3 {
		t.Errorf("expected 3, got %d", len(simplified))
	}
}

func TestProjectPointToSegment(t *testing.T) {
	a := datastructure.NewPoint(0, 0)
	b := datastructure.NewPoint(10, 0)

	proj, tParam := ProjectPointToSegment(a, b, datastructure.NewPoint(4, 3))
	if proj.X != 4 || proj.Y != 0 {
		t.Errorf("expected (4,0), got %+v", proj)
	}
	if tParam != 0.4 {
		t.Errorf("expected t=0.4, got %f", tParam)
	}

	// beyond segment end clamps to b
	proj, tParam = ProjectPointToSegment(a, b, datastructure.NewPoint(15, 1))
	if proj.X != 10 || tParam != 1 {
		t.Errorf("expected clamp to b, got %+v t=%f", proj, tParam)
	}

	// degenerate segment returns a
	proj, _ = ProjectPointToSegment(a, a, datastructure.NewPoint(3, 4))
	if proj != a {
		t.Errorf("expected a, got %+v", proj)
	}
}
