// Package ledger records the run's finished days.
package ledger

import (
	"context"
	"sync"

	"github.com/elmarchena/pizzaloca/internal/domain"
	"github.com/elmarchena/pizzaloca/internal/logger"
)

// Compile-time interface check.
var _ domain.ShiftLedger = (*Memory)(nil)

// Memory is an in-memory day ledger. Safe for concurrent access.
// State does not survive a restart; a durable backend would implement
// the same port.
type Memory struct {
	mu   sync.RWMutex
	days []domain.DayRecord
	log  *logger.Logger
}

// NewMemory creates an empty in-memory ledger.
func NewMemory(log *logger.Logger) *Memory {
	return &Memory{log: log}
}

// Record appends a finished day.
func (m *Memory) Record(ctx context.Context, rec domain.DayRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.log.Debug("recording day %d (served=%d, earned=%d)", rec.Day, rec.Served, rec.Earned)
	m.days = append(m.days, rec)
	return nil
}

// List returns all recorded days in the order they finished.
func (m *Memory) List(ctx context.Context) ([]domain.DayRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.DayRecord, len(m.days))
	copy(out, m.days)
	return out, nil
}

// Earned returns the total money earned across all recorded days.
func (m *Memory) Earned(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0
	for _, rec := range m.days {
		total += rec.Earned
	}
	return total, nil
}
