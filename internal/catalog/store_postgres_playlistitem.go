// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"

	"github.com/taibuivan/tubecache/internal/platform/database/schema"
	"github.com/taibuivan/tubecache/internal/platform/dberr"
)

func (repository *PostgresRepository) GetPlaylistItem(context context.Context, id string) (*PlaylistItem, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.PlaylistItem.ID, schema.PlaylistItem.PlaylistID, schema.PlaylistItem.VideoID,
		schema.PlaylistItem.Title, schema.PlaylistItem.Description, schema.PlaylistItem.Position,
		schema.PlaylistItem.PublishedAt, schema.PlaylistItem.CreatedAt,
		schema.PlaylistItem.Table, schema.PlaylistItem.ID,
	)
	item := &PlaylistItem{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&item.ID, &item.PlaylistID, &item.VideoID, &item.Title, &item.Description,
		&item.Position, &item.PublishedAt, &item.CreatedAt,
	)

	return item, dberr.Wrap(err, "get_playlist_item")
}

func (repository *PostgresRepository) CreatePlaylistItem(context context.Context, item *PlaylistItem) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (%s) DO NOTHING
	`,
		schema.PlaylistItem.Table, schema.PlaylistItem.ID, schema.PlaylistItem.PlaylistID,
		schema.PlaylistItem.VideoID, schema.PlaylistItem.Title, schema.PlaylistItem.Description,
		schema.PlaylistItem.Position, schema.PlaylistItem.PublishedAt, schema.PlaylistItem.CreatedAt,
		schema.PlaylistItem.ID,
	)

	cmd, err := repository.db.Exec(context, query,
		item.ID, item.PlaylistID, item.VideoID, item.Title, item.Description,
		item.Position, item.PublishedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "create_playlist_item")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrConflict
	}
	return nil
}

func (repository *PostgresRepository) ListPlaylistItems(context context.Context, playlistID string, limit, offset int) ([]*PlaylistItem, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
		LIMIT $2 OFFSET $3
	`,
		schema.PlaylistItem.ID, schema.PlaylistItem.PlaylistID, schema.PlaylistItem.VideoID,
		schema.PlaylistItem.Title, schema.PlaylistItem.Description, schema.PlaylistItem.Position,
		schema.PlaylistItem.PublishedAt, schema.PlaylistItem.CreatedAt,
		schema.PlaylistItem.Table, schema.PlaylistItem.PlaylistID, schema.PlaylistItem.Position,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`,
		schema.PlaylistItem.Table, schema.PlaylistItem.PlaylistID,
	)

	var total int
	if err := repository.db.QueryRow(context, countQuery, playlistID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_playlist_items")
	}

	rows, err := repository.db.Query(context, query, playlistID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_playlist_items")
	}
	defer rows.Close()

	var items []*PlaylistItem
	for rows.Next() {
		item := &PlaylistItem{}
		if err := rows.Scan(
			&item.ID, &item.PlaylistID, &item.VideoID, &item.Title, &item.Description,
			&item.Position, &item.PublishedAt, &item.CreatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_playlist_item")
		}
		items = append(items, item)
	}

	return items, total, nil
}
