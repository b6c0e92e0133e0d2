package parallel

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

// Stats counts job outcomes across workers.
type Stats struct {
	processed atomic.Uint64
	failed    atomic.Uint64
}

func (s *Stats) Done()   { s.processed.Add(1) }
func (s *Stats) Failed() { s.failed.Add(1) }

// Report logs the totals and returns an error when any job failed.
func (s *Stats) Report(what string) error {
	processed, errors := s.processed.Load(), s.failed.Load()
	slog.Info("stats", "processed", processed, "errors", errors,
		"total", processed+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d %s", errors, what)
	}
	return nil
}
