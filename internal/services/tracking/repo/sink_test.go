package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"ttt/internal/platform/store"
	"ttt/internal/services/tracking/domain"

	"github.com/google/uuid"
)

type fakeCH struct {
	execs   []string
	ctxErrs []error
	inserts [][]any
	failDDL error
}

func (f *fakeCH) Exec(ctx context.Context, sql string, _ ...any) error {
	f.execs = append(f.execs, sql)
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	return f.failDDL
}

func (f *fakeCH) Insert(_ context.Context, table string, rows [][]any) error {
	if table != FramesTable {
		return errors.New("wrong table " + table)
	}
	f.inserts = append(f.inserts, rows...)
	return nil
}

func (f *fakeCH) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }
func (f *fakeCH) Close() error                                            { return nil }

func TestNewClickhouseSink_Nil(t *testing.T) {
	if NewClickhouseSink(nil) != nil {
		t.Fatalf("nil clickhouse should give a nil sink")
	}
}

func TestClickhouseSink_FrameClosed(t *testing.T) {
	ch := &fakeCH{}
	s := NewClickhouseSink(ch)
	ctx := context.Background()
	start := time.Date(2024, 1, 2, 9, 0, 0, 0, time.FixedZone("x", 3600))
	end := start.Add(90 * time.Minute)
	pf := domain.ProjectFrame{
		Project: domain.Project{Name: "alpha"},
		Frame:   domain.Frame{UID: uuid.New(), Start: start, End: &end},
	}

	for range 2 {
		if err := s.FrameClosed(ctx, pf); err != nil {
			t.Fatalf("FrameClosed: %v", err)
		}
	}
	if len(ch.execs) != 1 {
		t.Fatalf("ddl ran %d times", len(ch.execs))
	}
	if len(ch.inserts) != 2 {
		t.Fatalf("inserts = %d", len(ch.inserts))
	}
	row := ch.inserts[0]
	if row[1] != "alpha" || row[4] != uint64(5400) || row[2].(time.Time).Location() != time.UTC {
		t.Fatalf("row = %v", row)
	}

	pf.Frame.End = nil
	if err := s.FrameClosed(ctx, pf); err == nil {
		t.Fatalf("running frame should be refused")
	}
}

func TestClickhouseSink_RetriesFailedDDL(t *testing.T) {
	ch := &fakeCH{failDDL: errors.New("down")}
	s := NewClickhouseSink(ch)
	end := time.Now()
	pf := domain.ProjectFrame{
		Frame: domain.Frame{UID: uuid.New(), Start: end.Add(-time.Minute), End: &end},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.FrameClosed(ctx, pf); err == nil || len(ch.inserts) != 0 {
		t.Fatalf("err = %v, inserts = %d", err, len(ch.inserts))
	}
	if ch.ctxErrs[0] != nil {
		t.Fatalf("ddl ran under a cancelled context: %v", ch.ctxErrs[0])
	}

	ch.failDDL = nil
	for range 2 {
		if err := s.FrameClosed(context.Background(), pf); err != nil {
			t.Fatalf("after recovery: %v", err)
		}
	}
	if len(ch.execs) != 2 || len(ch.inserts) != 2 {
		t.Fatalf("execs = %d, inserts = %d", len(ch.execs), len(ch.inserts))
	}
}
