// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package ingest implements the import orchestration layer: resolving root
resources through the remote Data API, walking their collections, and
committing entities through the catalog graph while isolating per-item
failures.

Architecture:

  - Resolver: the HTTP-backed RecordSource feeding the graph.
  - CachedFetcher: a Redis decorator that shields the daily API quota.
  - Orchestrator: importChannel/importPlaylist run loops.
  - Report: per-run accounting delivered to a diagnostic sink.
*/
package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/tubecache/internal/youtube"
	"github.com/taibuivan/tubecache/pkg/slice"
	"github.com/taibuivan/tubecache/pkg/uuidv7"
)

// ItemResult is the outcome of one item inside an import run.
type ItemResult struct {
	ID      string       `json:"id"`
	Kind    youtube.Kind `json:"kind"`
	Success bool         `json:"success"`
	Error   string       `json:"error,omitempty"`
}

// Report is the full accounting of one import run.
//
// Found counts items committed or already present; Failed counts items
// recorded and passed over; Skipped counts playlist entries referencing
// resource kinds the graph does not materialize. A run that aborted carries
// the reason; everything counted before the abort remains valid.
type Report struct {
	RunID      string       `json:"run_id"`
	RootKind   youtube.Kind `json:"root_kind"`
	RootID     string       `json:"root_id"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`

	Found   int `json:"found"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`

	Aborted     bool   `json:"aborted"`
	AbortReason string `json:"abort_reason,omitempty"`

	Items []ItemResult `json:"items"`
}

func newReport(rootKind youtube.Kind, rootID string) *Report {
	return &Report{
		RunID:     uuidv7.New(),
		RootKind:  rootKind,
		RootID:    rootID,
		StartedAt: time.Now().UTC(),
	}
}

func (report *Report) success(kind youtube.Kind, id string) {
	report.Found++
	report.Items = append(report.Items, ItemResult{ID: id, Kind: kind, Success: true})
}

func (report *Report) failure(kind youtube.Kind, id string, err error) {
	report.Failed++
	report.Items = append(report.Items, ItemResult{ID: id, Kind: kind, Error: err.Error()})
}

func (report *Report) skip() {
	report.Skipped++
}

func (report *Report) abort(reason string) {
	report.Aborted = true
	report.AbortReason = reason
}

func (report *Report) finish() {
	report.FinishedAt = time.Now().UTC()
}

// FailedIDs returns the IDs of every item that ended in failure, in run order.
func (report *Report) FailedIDs() []string {
	failed := slice.Filter(report.Items, func(item ItemResult) bool {
		return !item.Success
	})
	return slice.Map(failed, func(item ItemResult) string {
		return item.ID
	})
}

// Sink receives completed run reports for diagnostics.
type Sink interface {
	Record(context context.Context, report *Report)
}

// LogSink writes a one-line run summary to the structured log.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (sink *LogSink) Record(context context.Context, report *Report) {
	level := slog.LevelInfo
	if report.Aborted {
		level = slog.LevelWarn
	}

	attrs := []slog.Attr{
		slog.String("run_id", report.RunID),
		slog.String("root_kind", report.RootKind.String()),
		slog.String("root_id", report.RootID),
		slog.Int("found", report.Found),
		slog.Int("failed", report.Failed),
		slog.Int("skipped", report.Skipped),
		slog.Bool("aborted", report.Aborted),
		slog.Duration("elapsed", report.FinishedAt.Sub(report.StartedAt)),
	}
	if report.Failed > 0 {
		attrs = append(attrs, slog.Any("failed_ids", report.FailedIDs()))
	}

	sink.logger.LogAttrs(context, level, "import_run_finished", attrs...)
}
