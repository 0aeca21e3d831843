package telemetry

import (
	"testing"

	"github.com/pthm-cable/pasture/components"
)

func hasBookmark(bookmarks []Bookmark, typ BookmarkType) bool {
	for _, bm := range bookmarks {
		if bm.Type == typ {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_SheepCrash(t *testing.T) {
	bd := NewBookmarkDetector(10)

	// Build up the sheep peak
	for i := 0; i < 3; i++ {
		bd.Check(WindowStats{WindowEndTick: int32(i * 50), Grass: 500, Sheep: 100, Wolves: 10})
	}

	bookmarks := bd.Check(WindowStats{WindowEndTick: 150, Grass: 500, Sheep: 40, Wolves: 10})
	if !hasBookmark(bookmarks, BookmarkSheepCrash) {
		t.Fatal("expected sheep_crash bookmark")
	}

	// The peak resets to the crashed value, so a further small dip is quiet.
	bookmarks = bd.Check(WindowStats{WindowEndTick: 200, Grass: 500, Sheep: 35, Wolves: 10})
	if hasBookmark(bookmarks, BookmarkSheepCrash) {
		t.Error("unexpected second sheep_crash")
	}
}

func TestBookmarkDetector_SmallPopulationNoCrash(t *testing.T) {
	bd := NewBookmarkDetector(10)
	bd.Check(WindowStats{Grass: 50, Sheep: 12, Wolves: 2})

	// 75% drop but only 9 sheep lost
	bookmarks := bd.Check(WindowStats{Grass: 50, Sheep: 3, Wolves: 2})
	if hasBookmark(bookmarks, BookmarkSheepCrash) {
		t.Error("drop below the minimum size should not bookmark")
	}
}

func TestBookmarkDetector_WolfRecovery(t *testing.T) {
	bd := NewBookmarkDetector(10)
	bd.Check(WindowStats{WindowEndTick: 50, Grass: 500, Sheep: 80, Wolves: 2})

	bookmarks := bd.Check(WindowStats{WindowEndTick: 100, Grass: 500, Sheep: 80, Wolves: 5})
	if hasBookmark(bookmarks, BookmarkWolfRecovery) {
		t.Fatal("5 wolves is below the recovery floor")
	}

	bookmarks = bd.Check(WindowStats{WindowEndTick: 150, Grass: 500, Sheep: 80, Wolves: 7})
	if !hasBookmark(bookmarks, BookmarkWolfRecovery) {
		t.Error("expected wolf_recovery bookmark")
	}
}

func TestBookmarkDetector_StableEcosystemOnce(t *testing.T) {
	bd := NewBookmarkDetector(10)

	fired := 0
	firedAt := -1
	for i := 0; i < 12; i++ {
		bookmarks := bd.Check(WindowStats{WindowEndTick: int32(i * 50), Grass: 400, Sheep: 60 + i%2, Wolves: 8})
		if hasBookmark(bookmarks, BookmarkStableEcosystem) {
			fired++
			firedAt = i
		}
	}
	if fired != 1 {
		t.Fatalf("stable_ecosystem fired %d times, want once", fired)
	}
	// Four windows fill the lookback, then five consecutive stable checks.
	if firedAt != 7 {
		t.Errorf("fired at window %d, want 7", firedAt)
	}
}

func TestBookmarkDetector_StableResetsOnExtinctKind(t *testing.T) {
	bd := NewBookmarkDetector(10)
	for i := 0; i < 6; i++ {
		bd.Check(WindowStats{Grass: 400, Sheep: 60, Wolves: 8})
	}
	bd.Check(WindowStats{Grass: 400, Sheep: 60, Wolves: 0})
	if bd.stableWindowsCount != 0 {
		t.Errorf("stable count = %d after a missing kind", bd.stableWindowsCount)
	}
}

func TestNewExtinctionBookmark(t *testing.T) {
	bm := NewExtinctionBookmark(42, components.KindWolf)
	if bm.Type != BookmarkExtinction || bm.Tick != 42 {
		t.Errorf("bookmark = %+v", bm)
	}
	if bm.Description != "wolves went extinct" {
		t.Errorf("description = %q", bm.Description)
	}
}
