package game

import "fmt"

// FrameStats tracks smoothed frame timing for the performance overlay.
type FrameStats struct {
	smoothedFPS     float64
	smoothedFrameMS float64
	initialized     bool
}

// Update folds one frame's delta time into the smoothed figures.
func (s *FrameStats) Update(dt float32) {
	if dt <= 0 {
		return
	}
	fps := 1.0 / float64(dt)
	frameMS := float64(dt) * 1000.0

	if !s.initialized {
		s.smoothedFPS = fps
		s.smoothedFrameMS = frameMS
		s.initialized = true
		return
	}

	const smoothing = 0.1
	s.smoothedFPS += (fps - s.smoothedFPS) * smoothing
	s.smoothedFrameMS += (frameMS - s.smoothedFrameMS) * smoothing
}

// FPS reports the smoothed frame rate.
func (s *FrameStats) FPS() float64 { return s.smoothedFPS }

// Text renders the overlay string.
func (s *FrameStats) Text() string {
	if !s.initialized {
		return "FPS: --\nFrame time: -- ms"
	}
	return fmt.Sprintf("FPS: %6.1f\nFrame time: %6.2f ms", s.smoothedFPS, s.smoothedFrameMS)
}
