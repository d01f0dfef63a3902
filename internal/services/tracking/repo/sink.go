package repo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ttt/internal/platform/logger"
	"ttt/internal/platform/store"
	"ttt/internal/services/tracking/domain"
)

// FramesTable is the clickhouse table closed frames are copied to
const FramesTable = "ttt_frames"

const framesDDL = `CREATE TABLE IF NOT EXISTS ` + FramesTable + ` (
    uid     UUID,
    project String,
    start   DateTime,
    end     DateTime,
    seconds UInt64
) ENGINE = ReplacingMergeTree
ORDER BY (start, uid)`

// ClickhouseSink copies closed frames into clickhouse for analytics.
// The table is created on first use and retried until that succeeds.
type ClickhouseSink struct {
	ch   store.Clickhouse
	mu   sync.Mutex
	done bool
}

// NewClickhouseSink returns nil when ch is nil, so callers can pass it straight through
func NewClickhouseSink(ch store.Clickhouse) *ClickhouseSink {
	if ch == nil {
		return nil
	}
	return &ClickhouseSink{ch: ch}
}

func (s *ClickhouseSink) ensure(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return nil
	}
	// the DDL outlives the request that happens to trigger it
	if err := s.ch.Exec(context.WithoutCancel(ctx), framesDDL); err != nil {
		return err
	}
	s.done = true
	return nil
}

// FrameClosed implements domain.FrameSink
func (s *ClickhouseSink) FrameClosed(ctx context.Context, pf domain.ProjectFrame) error {
	if pf.Frame.End == nil {
		return fmt.Errorf("frame %s is still running", pf.Frame.UID)
	}
	if err := s.ensure(ctx); err != nil {
		return fmt.Errorf("clickhouse: ensure %s: %w", FramesTable, err)
	}
	end := *pf.Frame.End
	row := []any{
		pf.Frame.UID,
		pf.Project.Name,
		pf.Frame.Start.UTC(),
		end.UTC(),
		uint64(pf.Frame.Elapsed(end) / time.Second),
	}
	if err := s.ch.Insert(ctx, FramesTable, [][]any{row}); err != nil {
		return fmt.Errorf("clickhouse: insert frame %s: %w", pf.Frame.UID, err)
	}
	logger.C(ctx).Debug().Str("uid", pf.Frame.UID.String()).Str("project", pf.Project.Name).Msg("frame copied to clickhouse")
	return nil
}
