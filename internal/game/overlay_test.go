package game

import (
	"strings"
	"testing"
)

func TestFrameStatsPlaceholderBeforeFirstFrame(t *testing.T) {
	var stats FrameStats
	if got := stats.Text(); !strings.Contains(got, "--") {
		t.Errorf("empty stats text = %q, want placeholder", got)
	}
}

func TestFrameStatsSmoothsTowardsSteadyRate(t *testing.T) {
	var stats FrameStats
	for i := 0; i < 120; i++ {
		stats.Update(1.0 / 60.0)
	}

	if fps := stats.FPS(); fps < 59.0 || fps > 61.0 {
		t.Errorf("steady 60Hz input gave fps %v", fps)
	}
	if got := stats.Text(); !strings.Contains(got, "FPS:") || !strings.Contains(got, "ms") {
		t.Errorf("stats text = %q", got)
	}
}

func TestFrameStatsIgnoresZeroDelta(t *testing.T) {
	var stats FrameStats
	stats.Update(0)
	if got := stats.Text(); !strings.Contains(got, "--") {
		t.Errorf("zero delta should not initialize stats, got %q", got)
	}
}
