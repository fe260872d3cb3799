package arena

import (
	"context"

	"github.com/talgya/robot-league/internal/scores"
)

// ctxCheckInterval is how often, in frames, the loop polls for cancellation.
const ctxCheckInterval = 64

// Loop drives a round forward one frame at a time.
type Loop struct {
	Frame          scores.Frames // last frame processed
	SampleInterval scores.Frames // 0 disables sampling

	OnFrame  func(frame scores.Frames) // every frame
	OnSample func(frame scores.Frames) // every SampleInterval frames, after OnFrame
	Done     func() bool               // checked after each frame; true ends the run
}

// Run advances frames until limit, until Done reports true or until ctx is
// cancelled, in which case it returns ctx's error.
func (l *Loop) Run(ctx context.Context, limit scores.Frames) error {
	for l.Frame < limit {
		if l.Frame%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		l.step()
		if l.Done != nil && l.Done() {
			return nil
		}
	}
	return nil
}

// Sampled reports whether the last processed frame was a sampling frame.
func (l *Loop) Sampled() bool {
	return l.SampleInterval > 0 && l.Frame%l.SampleInterval == 0
}

// step advances the round by one frame.
func (l *Loop) step() {
	l.Frame++

	if l.OnFrame != nil {
		l.OnFrame(l.Frame)
	}

	if l.Sampled() && l.OnSample != nil {
		l.OnSample(l.Frame)
	}
}
