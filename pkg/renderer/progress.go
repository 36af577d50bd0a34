package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// progressInterval is how often the progress line is refreshed
const progressInterval = 100 * time.Millisecond

// progressReporter periodically prints how many pixels are done and an
// estimate of the time left
type progressReporter struct {
	logger    core.Logger
	total     int
	completed func() int
	start     time.Time
	interval  time.Duration
}

// run polls until every pixel is complete, then closes done
func (p *progressReporter) run(done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for range ticker.C {
		completed := p.completed()
		p.logger.Printf("%s", formatProgress(completed, p.total, time.Since(p.start)))
		if completed == p.total {
			return
		}
	}
}

// formatProgress renders a single progress line. The time estimate is left
// out until one second has passed and at least one pixel is done.
func formatProgress(completed, total int, elapsed time.Duration) string {
	percent := 0
	if total > 0 {
		percent = completed * 100 / total
	}
	line := fmt.Sprintf("\rProgress:%d%% (%.1fk/%.1fk pixels done).",
		percent, float64(completed)/1000.0, float64(total)/1000.0)

	if elapsed < time.Second || completed == 0 {
		return line
	}

	elapsedMs := float64(elapsed.Milliseconds())
	remaining := float64(total - completed)
	secondsLeft := int(elapsedMs / float64(completed) * remaining / 1000.0)
	return line + fmt.Sprintf(" Time left: %ds.", secondsLeft)
}
