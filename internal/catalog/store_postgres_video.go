// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/tubecache/internal/platform/database/schema"
	"github.com/taibuivan/tubecache/internal/platform/dberr"
	"github.com/taibuivan/tubecache/internal/youtube"
)

// videoColumns is the SELECT column list shared by every video query.
func videoColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.Video.ID, schema.Video.ChannelID, schema.Video.Title, schema.Video.Description,
		schema.Video.PublishedAt, schema.Video.DurationSeconds, schema.Video.Language,
		schema.Video.AudioLanguage, schema.Video.CategoryID, schema.Video.ViewCount,
		schema.Video.LikeCount, schema.Video.DislikeCount, schema.Video.CommentCount,
		schema.Video.FavoriteCount, schema.Video.Dimension, schema.Video.Definition,
		schema.Video.Caption, schema.Video.CreatedAt,
	)
}

func scanVideo(row interface{ Scan(dest ...any) error }) (*Video, error) {
	v := &Video{}
	err := row.Scan(
		&v.ID, &v.ChannelID, &v.Title, &v.Description, &v.PublishedAt,
		&v.DurationSeconds, &v.Language, &v.AudioLanguage, &v.CategoryID,
		&v.ViewCount, &v.LikeCount, &v.DislikeCount, &v.CommentCount,
		&v.FavoriteCount, &v.Dimension, &v.Definition, &v.Caption, &v.CreatedAt,
	)
	return v, err
}

func (repository *PostgresRepository) GetVideo(context context.Context, id string) (*Video, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		videoColumns(), schema.Video.Table, schema.Video.ID,
	)

	v, err := scanVideo(repository.db.QueryRow(context, query, id))
	return v, dberr.Wrap(err, "get_video")
}

func (repository *PostgresRepository) CreateVideo(context context.Context, v *Video) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, NOW())
		ON CONFLICT (%s) DO NOTHING
	`,
		schema.Video.Table, videoColumns(), schema.Video.ID,
	)

	inserted := false
	err := pgx.BeginFunc(context, repository.db, func(tx pgx.Tx) error {
		cmd, err := tx.Exec(context, query,
			v.ID, v.ChannelID, v.Title, v.Description, v.PublishedAt,
			v.DurationSeconds, v.Language, v.AudioLanguage, v.CategoryID,
			v.ViewCount, v.LikeCount, v.DislikeCount, v.CommentCount,
			v.FavoriteCount, v.Dimension, v.Definition, v.Caption,
		)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return nil
		}
		inserted = true

		return insertTags(context, tx, youtube.KindVideo, v.ID, v.Tags)
	})
	if err != nil {
		return dberr.Wrap(err, "create_video")
	}

	if !inserted {
		return dberr.ErrConflict
	}
	return nil
}

func (repository *PostgresRepository) ListVideos(context context.Context, f VideoFilter, limit, offset int) ([]*Video, int, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE TRUE`, videoColumns(), schema.Video.Table)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE TRUE`, schema.Video.Table)

	args := []any{}
	countArgs := []any{}

	addClause := func(clause string, value any) {
		query += clause
		countQuery += clause
		args = append(args, value)
		countArgs = append(countArgs, value)
	}

	if f.ChannelID != "" {
		addClause(fmt.Sprintf(` AND %s = $%d`, schema.Video.ChannelID, len(args)+1), f.ChannelID)
	}

	if f.PlaylistID != "" {
		addClause(fmt.Sprintf(` AND EXISTS (SELECT 1 FROM %s WHERE %s = %s.%s AND %s = $%d)`,
			schema.PlaylistItem.Table, schema.PlaylistItem.VideoID, schema.Video.Table, schema.Video.ID,
			schema.PlaylistItem.PlaylistID, len(args)+1), f.PlaylistID)
	}

	if f.Tag != "" {
		addClause(fmt.Sprintf(` AND EXISTS (SELECT 1 FROM %s WHERE %s = %s.%s AND %s = $%d)`,
			schema.VideoTag.Table, schema.VideoTag.VideoID, schema.Video.Table, schema.Video.ID,
			schema.VideoTag.Tag, len(args)+1), f.Tag)
	}

	if f.Query != "" {
		addClause(fmt.Sprintf(` AND %s ILIKE $%d`, schema.Video.Title, len(args)+1), "%"+f.Query+"%")
	}

	query += fmt.Sprintf(" ORDER BY %s DESC LIMIT $", schema.Video.PublishedAt) + itos(len(args)+1) + ` OFFSET $` + itos(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_videos")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_videos")
	}
	defer rows.Close()

	var videos []*Video
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_video")
		}
		videos = append(videos, v)
	}

	return videos, total, nil
}
