package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"ttt/internal/core/timespan"
	ptime "ttt/internal/platform/time"
	"ttt/internal/services/tracking/domain"
)

const stamp = "2006-01-02 15:04"

func clock(t time.Time) string { return t.Format(stamp) }

func elapsed(f domain.Frame, now time.Time) string { return ptime.FormatDuration(f.Elapsed(now)) }

func table(w io.Writer) *tabwriter.Writer { return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0) }

func printSpan(w io.Writer, sp timespan.TimeSpan) {
	fmt.Fprintf(w, "%s -> %s (%s)\n", clock(sp.Start()), clock(sp.End()), ptime.FormatDuration(sp.Duration()))
}

func printFrames(w io.Writer, view domain.FramesView) error {
	printSpan(w, view.Span)
	tw := table(w)
	fmt.Fprintln(tw, "PROJECT\tSTART\tEND\tELAPSED")
	now := time.Now()
	for _, pf := range view.Frames {
		end := "running"
		if pf.Frame.End != nil {
			end = clock(*pf.Frame.End)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", pf.Project.Name, clock(pf.Frame.Start), end, elapsed(pf.Frame, now))
	}
	return tw.Flush()
}

func printReport(w io.Writer, rep domain.Report) error {
	printSpan(w, rep.Span)
	tw := table(w)
	fmt.Fprintln(tw, "PROJECT\tFRAMES\tTOTAL")
	for _, e := range rep.Entries {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", e.Project, e.Frames, e.Pretty)
	}
	fmt.Fprintf(tw, "\t\t%s\n", rep.Pretty)
	return tw.Flush()
}

func printNamed[T domain.Project | domain.Tag](w io.Writer, rows []T) error {
	tw := table(w)
	fmt.Fprintln(tw, "NAME\tARCHIVED\tLAST USED")
	for _, r := range rows {
		p := domain.Project(r)
		fmt.Fprintf(tw, "%s\t%t\t%s\n", p.Name, p.Archived, clock(p.LastAccess))
	}
	return tw.Flush()
}
