package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/config"
)

func TestOutputManager_Disabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v; want nil, nil", om, err)
	}
	// Every method is safe on a nil manager.
	if err := om.WriteSample(components.Sample{}); err != nil {
		t.Error(err)
	}
	if err := om.WriteBookmark(Bookmark{}); err != nil {
		t.Error(err)
	}
	if err := om.WriteSummary(HistorySummary{}); err != nil {
		t.Error(err)
	}
	if om.Dir() != "" {
		t.Error("nil manager should report no directory")
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestOutputManager_WritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}
	if om.Dir() != dir {
		t.Errorf("Dir = %q", om.Dir())
	}

	if err := om.WriteConfig(config.Default()); err != nil {
		t.Fatal(err)
	}
	for tick := int32(1); tick <= 3; tick++ {
		if err := om.WriteSample(components.Sample{Tick: tick, Grass: 10, Sheep: 5, Wolves: 1}); err != nil {
			t.Fatal(err)
		}
	}
	if err := om.WriteTelemetry(WindowStats{WindowEndTick: 3, Grass: 10}); err != nil {
		t.Fatal(err)
	}
	if err := om.WritePerf(PerfStats{}, 3); err != nil {
		t.Fatal(err)
	}
	if err := om.WriteBookmark(NewExtinctionBookmark(3, components.KindSheep)); err != nil {
		t.Fatal(err)
	}
	if err := om.WriteSummary(HistorySummary{Samples: 3, LastTick: 3}); err != nil {
		t.Fatal(err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	history := readLines(t, filepath.Join(dir, HistoryFile))
	if len(history) != 4 {
		t.Fatalf("history.csv has %d lines, want 4", len(history))
	}
	if history[3] != "3,10,5,1" {
		t.Errorf("last history row = %q", history[3])
	}

	bookmarks := readLines(t, filepath.Join(dir, BookmarkFile))
	if len(bookmarks) != 2 || !strings.HasPrefix(bookmarks[1], "extinction,3,") {
		t.Errorf("bookmarks.csv = %q", bookmarks)
	}

	for _, name := range []string{TelemetryFile, PerfFile} {
		if lines := readLines(t, filepath.Join(dir, name)); len(lines) != 2 {
			t.Errorf("%s has %d lines, want header + 1", name, len(lines))
		}
	}

	summary, err := os.ReadFile(filepath.Join(dir, SummaryFile))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(summary), "samples: 3") {
		t.Errorf("summary.yaml = %s", summary)
	}
	if _, err := config.Load(filepath.Join(dir, ConfigFile)); err != nil {
		t.Errorf("config snapshot does not load: %v", err)
	}
}
