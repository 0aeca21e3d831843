package telemetry

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/pasture/components"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkSheepCrash      BookmarkType = "sheep_crash"
	BookmarkWolfRecovery    BookmarkType = "wolf_recovery"
	BookmarkStableEcosystem BookmarkType = "stable_ecosystem"
	BookmarkExtinction      BookmarkType = "extinction"
)

// Detection thresholds.
const (
	crashDropFraction  = 0.5 // sheep fell by more than half from the recent peak
	crashMinDrop       = 10
	recoveryMaxLow     = 3 // wolves dipped to at most this many
	recoveryMultiplier = 3
	recoveryMinFinal   = 6
	stableMaxCV        = 0.2
	stableWindows      = 5
	stableLookback     = 4
)

// Bookmark represents an automatically detected moment of interest.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int32        `csv:"tick"`
	Description string       `csv:"description"`
}

// NewExtinctionBookmark records the tick a population died out.
func NewExtinctionBookmark(tick int32, kind components.Kind) Bookmark {
	return Bookmark{
		Type:        BookmarkExtinction,
		Tick:        tick,
		Description: fmt.Sprintf("%s went extinct", kind),
	}
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects interesting moments in the population windows.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	recentWolfMin      int
	recentSheepPeak    int
	stableWindowsCount int
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < stableLookback {
		historySize = stableLookback
	}
	return &BookmarkDetector{
		history:       make([]WindowStats, historySize),
		historySize:   historySize,
		recentWolfMin: -1,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if b := bd.checkSheepCrash(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkWolfRecovery(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)

	if b := bd.checkStableEcosystem(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	if bd.recentWolfMin < 0 || stats.Wolves < bd.recentWolfMin {
		bd.recentWolfMin = stats.Wolves
	}
	if stats.Sheep > bd.recentSheepPeak {
		bd.recentSheepPeak = stats.Sheep
	}

	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

// recent returns up to n of the latest windows, oldest first.
func (bd *BookmarkDetector) recent(n int) []WindowStats {
	size := bd.historyIdx
	if bd.historyFull {
		size = bd.historySize
	}
	if n > size {
		n = size
	}
	out := make([]WindowStats, 0, n)
	for i := n; i > 0; i-- {
		idx := (bd.historyIdx - i + bd.historySize) % bd.historySize
		out = append(out, bd.history[idx])
	}
	return out
}

func (bd *BookmarkDetector) checkSheepCrash(stats WindowStats) *Bookmark {
	if bd.recentSheepPeak == 0 {
		return nil
	}

	drop := 1.0 - float64(stats.Sheep)/float64(bd.recentSheepPeak)
	if drop <= crashDropFraction || stats.Sheep > bd.recentSheepPeak-crashMinDrop {
		return nil
	}

	oldPeak := bd.recentSheepPeak
	bd.recentSheepPeak = stats.Sheep
	return &Bookmark{
		Type:        BookmarkSheepCrash,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Sheep crashed %.0f%% from peak %d to %d", drop*100, oldPeak, stats.Sheep),
	}
}

func (bd *BookmarkDetector) checkWolfRecovery(stats WindowStats) *Bookmark {
	if bd.recentWolfMin <= 0 || bd.recentWolfMin > recoveryMaxLow {
		return nil
	}
	if stats.Wolves < bd.recentWolfMin*recoveryMultiplier || stats.Wolves < recoveryMinFinal {
		return nil
	}

	oldMin := bd.recentWolfMin
	bd.recentWolfMin = stats.Wolves
	return &Bookmark{
		Type:        BookmarkWolfRecovery,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Wolves recovered from %d to %d", oldMin, stats.Wolves),
	}
}

func (bd *BookmarkDetector) checkStableEcosystem(stats WindowStats) *Bookmark {
	if stats.Grass == 0 || stats.Sheep == 0 || stats.Wolves == 0 {
		bd.stableWindowsCount = 0
		return nil
	}

	window := bd.recent(stableLookback)
	if len(window) < stableLookback {
		return nil
	}

	sheep := make([]float64, len(window))
	wolves := make([]float64, len(window))
	for i, w := range window {
		sheep[i] = float64(w.Sheep)
		wolves[i] = float64(w.Wolves)
	}

	if Summarize(sheep).CV < stableMaxCV && Summarize(wolves).CV < stableMaxCV {
		bd.stableWindowsCount++
	} else {
		bd.stableWindowsCount = 0
	}

	// trigger exactly once per stable stretch
	if bd.stableWindowsCount != stableWindows {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkStableEcosystem,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Stable ecosystem with %d sheep, %d wolves over %d windows", stats.Sheep, stats.Wolves, stableWindows),
	}
}
