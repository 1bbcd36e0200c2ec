package points

import (
	"errors"
	"testing"

	"github.com/viftode4/partydrinks/internal/apperr"
)

func TestIsCategory(t *testing.T) {
	for _, c := range []string{"Beer", "Wine", "Cocktail", "Shot"} {
		if !IsCategory(c) {
			t.Fatalf("expected %q to be a known category", c)
		}
	}
	for _, c := range []string{"beer", "Water", "", CigaretteKind} {
		if IsCategory(c) {
			t.Fatalf("expected %q to be rejected", c)
		}
	}
}

func TestPointsFor(t *testing.T) {
	l := Lookup{"Beer": 2, "Wine": 3}

	pts, err := l.PointsFor("Beer")
	if err != nil || pts != 2 {
		t.Fatalf("PointsFor(Beer) = %d, %v", pts, err)
	}

	_, err = l.PointsFor("Shot")
	if !errors.Is(err, apperr.ErrConfiguration) {
		t.Fatalf("missing category must be a configuration error, got %v", err)
	}
}

func TestReplaceRejectsNonPositive(t *testing.T) {
	err := Replace(Lookup{"Beer": 0})
	if !errors.Is(err, apperr.ErrConfiguration) {
		t.Fatalf("expected configuration error for zero point value, got %v", err)
	}
	err = Replace(Lookup{"Shot": -4})
	if !errors.Is(err, apperr.ErrConfiguration) {
		t.Fatalf("expected configuration error for negative point value, got %v", err)
	}
}

func TestSnapshotSwap(t *testing.T) {
	if err := Replace(Lookup{"Beer": 2}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if pts, _ := PointsFor("Beer"); pts != 2 {
		t.Fatalf("expected 2 points before swap, got %d", pts)
	}

	if err := Replace(Lookup{"Beer": 5, "Shot": 4}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if pts, _ := PointsFor("Beer"); pts != 5 {
		t.Fatalf("expected new snapshot to be visible, got %d", pts)
	}
	if pts, _ := PointsFor("Shot"); pts != 4 {
		t.Fatalf("expected Shot in new snapshot, got %d", pts)
	}
}
