package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/elmarchena/pizzaloca/internal/domain"
	"github.com/elmarchena/pizzaloca/internal/logger"
)

func TestRecordAndList(t *testing.T) {
	led := NewMemory(logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	days, err := led.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(days) != 0 {
		t.Fatalf("fresh ledger should be empty, got %d records", len(days))
	}

	recs := []domain.DayRecord{
		{Day: 1, Served: 5, Earned: 55, EndedAt: time.Now()},
		{Day: 2, Served: 6, Earned: 71, EndedAt: time.Now()},
	}
	for _, rec := range recs {
		if err := led.Record(ctx, rec); err != nil {
			t.Fatalf("record day %d: %v", rec.Day, err)
		}
	}

	days, err = led.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 records, got %d", len(days))
	}
	if days[0].Day != 1 || days[1].Day != 2 {
		t.Errorf("records out of order: %+v", days)
	}

	total, err := led.Earned(ctx)
	if err != nil {
		t.Fatalf("earned: %v", err)
	}
	if total != 126 {
		t.Errorf("total earned = %d, want 126", total)
	}
}

// List must hand back a copy, not the internal slice.
func TestListIsCopy(t *testing.T) {
	led := NewMemory(logger.New(logger.LevelOff, nil))
	ctx := context.Background()

	led.Record(ctx, domain.DayRecord{Day: 1, Served: 5, Earned: 40})

	days, _ := led.List(ctx)
	days[0].Earned = 9999

	again, _ := led.List(ctx)
	if again[0].Earned != 40 {
		t.Fatalf("ledger mutated through List result: %+v", again[0])
	}
}
