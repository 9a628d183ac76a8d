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

func (repository *PostgresRepository) GetChannel(context context.Context, id string) (*Channel, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Channel.ID, schema.Channel.Title, schema.Channel.Description, schema.Channel.CustomURL,
		schema.Channel.Language, schema.Channel.Country, schema.Channel.UploadPlaylistID,
		schema.Channel.PublishedAt, schema.Channel.VideoCount, schema.Channel.ViewCount,
		schema.Channel.CommentCount, schema.Channel.SubscriberCount, schema.Channel.CreatedAt,
		schema.Channel.Table, schema.Channel.ID,
	)
	c := &Channel{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&c.ID, &c.Title, &c.Description, &c.CustomURL, &c.Language, &c.Country,
		&c.UploadPlaylistID, &c.PublishedAt, &c.VideoCount, &c.ViewCount,
		&c.CommentCount, &c.SubscriberCount, &c.CreatedAt,
	)

	return c, dberr.Wrap(err, "get_channel")
}

func (repository *PostgresRepository) CreateChannel(context context.Context, c *Channel) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
		ON CONFLICT (%s) DO NOTHING
	`,
		schema.Channel.Table, schema.Channel.ID, schema.Channel.Title, schema.Channel.Description,
		schema.Channel.CustomURL, schema.Channel.Language, schema.Channel.Country,
		schema.Channel.UploadPlaylistID, schema.Channel.PublishedAt, schema.Channel.VideoCount,
		schema.Channel.ViewCount, schema.Channel.CommentCount, schema.Channel.SubscriberCount,
		schema.Channel.CreatedAt,
		schema.Channel.ID,
	)

	// Row and tag associations commit as one unit of work; stored rows are
	// never refreshed, so a row without its tags would stay tag-less forever.
	inserted := false
	err := pgx.BeginFunc(context, repository.db, func(tx pgx.Tx) error {
		cmd, err := tx.Exec(context, query,
			c.ID, c.Title, c.Description, c.CustomURL, c.Language, c.Country,
			c.UploadPlaylistID, c.PublishedAt, c.VideoCount, c.ViewCount,
			c.CommentCount, c.SubscriberCount,
		)
		if err != nil {
			return err
		}

		// Zero rows means a concurrent importer won the insert race.
		if cmd.RowsAffected() == 0 {
			return nil
		}
		inserted = true

		return insertTags(context, tx, youtube.KindChannel, c.ID, c.Tags)
	})
	if err != nil {
		return dberr.Wrap(err, "create_channel")
	}

	if !inserted {
		return dberr.ErrConflict
	}
	return nil
}

func (repository *PostgresRepository) SetChannelUploads(context context.Context, id string, uploadPlaylistID string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.Channel.Table, schema.Channel.UploadPlaylistID, schema.Channel.ID,
	)

	cmd, err := repository.db.Exec(context, query, id, uploadPlaylistID)
	if err != nil {
		return dberr.Wrap(err, "set_channel_uploads")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ListChannels(context context.Context, f ChannelFilter, limit, offset int) ([]*Channel, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE TRUE
	`,
		schema.Channel.ID, schema.Channel.Title, schema.Channel.Description, schema.Channel.CustomURL,
		schema.Channel.Language, schema.Channel.Country, schema.Channel.UploadPlaylistID,
		schema.Channel.PublishedAt, schema.Channel.VideoCount, schema.Channel.ViewCount,
		schema.Channel.CommentCount, schema.Channel.SubscriberCount, schema.Channel.CreatedAt,
		schema.Channel.Table,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE TRUE`, schema.Channel.Table)

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		clause := fmt.Sprintf(` AND (%s ILIKE $%d OR %s ILIKE $%d)`,
			schema.Channel.Title, len(args)+1, schema.Channel.CustomURL, len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	if f.Tag != "" {
		clause := fmt.Sprintf(` AND EXISTS (SELECT 1 FROM %s WHERE %s = %s.%s AND %s = $%d)`,
			schema.ChannelTag.Table, schema.ChannelTag.ChannelID, schema.Channel.Table, schema.Channel.ID,
			schema.ChannelTag.Tag, len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, f.Tag)
		countArgs = append(countArgs, f.Tag)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT $", schema.Channel.Title) + itos(len(args)+1) + ` OFFSET $` + itos(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_channels")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_channels")
	}
	defer rows.Close()

	var channels []*Channel
	for rows.Next() {
		c := &Channel{}
		if err := rows.Scan(
			&c.ID, &c.Title, &c.Description, &c.CustomURL, &c.Language, &c.Country,
			&c.UploadPlaylistID, &c.PublishedAt, &c.VideoCount, &c.ViewCount,
			&c.CommentCount, &c.SubscriberCount, &c.CreatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_channel")
		}
		channels = append(channels, c)
	}

	return channels, total, nil
}
