// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taibuivan/tubecache/internal/catalog"
	"github.com/taibuivan/tubecache/internal/platform/apperr"
	"github.com/taibuivan/tubecache/internal/youtube"
	"github.com/taibuivan/tubecache/pkg/pointer"
)

// Orchestrator drives full import runs.
//
// # Failure Policy
//
// One failing item never fails the run: invalid payloads, transient backend
// errors, and unresolvable references are recorded in the report and the run
// moves on. Two conditions abort the remainder of a run: quota exhaustion
// and malformed requests, both of which would fail every subsequent item the
// same way. Entities committed before an abort stay committed.
type Orchestrator struct {
	graph    *catalog.Graph
	repo     catalog.Repository
	resolver *Resolver
	fetcher  youtube.Fetcher
	sink     Sink
	logger   *slog.Logger
}

func NewOrchestrator(graph *catalog.Graph, repo catalog.Repository, fetcher youtube.Fetcher, sink Sink, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		graph:    graph,
		repo:     repo,
		resolver: NewResolver(fetcher),
		fetcher:  fetcher,
		sink:     sink,
		logger:   logger,
	}
}

// ImportChannel imports a channel and every video on its uploads playlist.
//
// The returned report is valid even when err is non-nil: a quota abort
// mid-run still reports everything committed before the abort.
func (orchestrator *Orchestrator) ImportChannel(context context.Context, channelID string) (*Report, error) {
	report := newReport(youtube.KindChannel, channelID)
	defer report.finish()

	run := orchestrator.graph.Begin()

	channel, err := run.EnsureChannel(context, channelID)
	if err != nil {
		return orchestrator.abortRun(context, report, fmt.Errorf("import channel %s: %w", channelID, err))
	}
	report.success(youtube.KindChannel, channelID)

	uploadsID, err := orchestrator.uploadsPlaylistID(context, channel)
	if err != nil {
		return orchestrator.abortRun(context, report, err)
	}
	if uploadsID == "" {
		// Channel has no uploads playlist; the channel alone was imported.
		orchestrator.sink.Record(context, report)
		return report, nil
	}

	records, invalid, err := collectionRecords(context, orchestrator.fetcher, youtube.KindPlaylistItem, uploadsID)
	if err != nil {
		if errors.Is(err, youtube.ErrNoData) {
			report.abort("uploads listing unavailable")
			orchestrator.sink.Record(context, report)
			return report, nil
		}
		return orchestrator.abortRun(context, report, fmt.Errorf("list uploads of channel %s: %w", channelID, err))
	}
	orchestrator.recordInvalid(report, invalid)

	for _, record := range records {
		item := record.(*youtube.PlaylistItemRecord)
		if item.ReferencedKind != youtube.KindVideo {
			report.skip()
			continue
		}

		if _, err := run.EnsureVideo(context, item.ReferencedID); err != nil {
			if youtube.IsFatal(err) {
				report.failure(youtube.KindVideo, item.ReferencedID, err)
				return orchestrator.abortRun(context, report, err)
			}
			report.failure(youtube.KindVideo, item.ReferencedID, err)
			continue
		}
		report.success(youtube.KindVideo, item.ReferencedID)
	}

	orchestrator.sink.Record(context, report)
	return report, nil
}

// ImportPlaylist imports a playlist with its full membership: the owning
// channel, every referenced video, and the position-carrying item edges.
func (orchestrator *Orchestrator) ImportPlaylist(context context.Context, playlistID string) (*Report, error) {
	report := newReport(youtube.KindPlaylist, playlistID)
	defer report.finish()

	run := orchestrator.graph.Begin()

	if _, err := run.EnsurePlaylist(context, playlistID); err != nil {
		return orchestrator.abortRun(context, report, fmt.Errorf("import playlist %s: %w", playlistID, err))
	}
	report.success(youtube.KindPlaylist, playlistID)

	records, invalid, err := collectionRecords(context, orchestrator.fetcher, youtube.KindPlaylistItem, playlistID)
	if err != nil {
		if errors.Is(err, youtube.ErrNoData) {
			report.abort("item listing unavailable")
			orchestrator.sink.Record(context, report)
			return report, nil
		}
		return orchestrator.abortRun(context, report, fmt.Errorf("list items of playlist %s: %w", playlistID, err))
	}
	orchestrator.recordInvalid(report, invalid)

	for _, record := range records {
		item := record.(*youtube.PlaylistItemRecord)

		if _, err := run.AddPlaylistItem(context, item); err != nil {
			if errors.Is(err, catalog.ErrSkippedItem) {
				report.skip()
				continue
			}
			if youtube.IsFatal(err) {
				report.failure(youtube.KindPlaylistItem, item.ResourceID, err)
				return orchestrator.abortRun(context, report, err)
			}
			report.failure(youtube.KindPlaylistItem, item.ResourceID, err)
			continue
		}
		report.success(youtube.KindPlaylistItem, item.ResourceID)
	}

	orchestrator.sink.Record(context, report)
	return report, nil
}

// uploadsPlaylistID returns the channel's uploads playlist, resolving and
// persisting it lazily when the stored row predates the reference.
func (orchestrator *Orchestrator) uploadsPlaylistID(context context.Context, channel *catalog.Channel) (string, error) {
	if id := pointer.Val(channel.UploadPlaylistID); id != "" {
		return id, nil
	}

	record, err := orchestrator.resolver.ChannelRecord(context, channel.ID)
	if err != nil {
		return "", fmt.Errorf("resolve uploads of channel %s: %w", channel.ID, err)
	}
	if record.UploadPlaylistID == "" {
		return "", nil
	}

	if err := orchestrator.repo.SetChannelUploads(context, channel.ID, record.UploadPlaylistID); err != nil {
		return "", err
	}

	orchestrator.logger.Info("channel_uploads_resolved",
		slog.String("channel_id", channel.ID),
		slog.String("upload_playlist_id", record.UploadPlaylistID),
	)

	return record.UploadPlaylistID, nil
}

// recordInvalid accounts the items that failed normalization.
func (orchestrator *Orchestrator) recordInvalid(report *Report, invalid []error) {
	for _, err := range invalid {
		var invalidErr *youtube.InvalidItemError
		if errors.As(err, &invalidErr) {
			report.failure(invalidErr.Kind, itemID(invalidErr.Raw), err)
			continue
		}
		report.failure(youtube.KindPlaylistItem, "", err)
	}
}

// abortRun finalizes a run that cannot continue and hands the error up for
// HTTP classification.
func (orchestrator *Orchestrator) abortRun(context context.Context, report *Report, err error) (*Report, error) {
	report.abort(err.Error())
	orchestrator.sink.Record(context, report)
	return report, classifyUpstream(err)
}

// classifyUpstream maps remote API failures onto the application error
// taxonomy; everything else passes through unchanged.
func classifyUpstream(err error) error {
	apiErr := youtube.AsAPIError(err)
	if apiErr == nil {
		return err
	}

	switch {
	case apiErr.IsQuota():
		return apperr.QuotaExceeded(err)
	case apiErr.IsBadRequest():
		return apperr.ValidationError(apiErr.Message)
	case apiErr.IsTransient():
		return apperr.UpstreamUnavailable(err)
	}
	return err
}
