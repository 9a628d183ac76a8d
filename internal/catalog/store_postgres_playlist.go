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

func (repository *PostgresRepository) GetPlaylist(context context.Context, id string) (*Playlist, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Playlist.ID, schema.Playlist.ChannelID, schema.Playlist.Title,
		schema.Playlist.Description, schema.Playlist.PublishedAt, schema.Playlist.Language,
		schema.Playlist.ItemCount, schema.Playlist.CreatedAt,
		schema.Playlist.Table, schema.Playlist.ID,
	)
	p := &Playlist{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&p.ID, &p.ChannelID, &p.Title, &p.Description, &p.PublishedAt,
		&p.Language, &p.ItemCount, &p.CreatedAt,
	)

	return p, dberr.Wrap(err, "get_playlist")
}

func (repository *PostgresRepository) CreatePlaylist(context context.Context, p *Playlist) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (%s) DO NOTHING
	`,
		schema.Playlist.Table, schema.Playlist.ID, schema.Playlist.ChannelID,
		schema.Playlist.Title, schema.Playlist.Description, schema.Playlist.PublishedAt,
		schema.Playlist.Language, schema.Playlist.ItemCount, schema.Playlist.CreatedAt,
		schema.Playlist.ID,
	)

	inserted := false
	err := pgx.BeginFunc(context, repository.db, func(tx pgx.Tx) error {
		cmd, err := tx.Exec(context, query,
			p.ID, p.ChannelID, p.Title, p.Description, p.PublishedAt, p.Language, p.ItemCount,
		)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return nil
		}
		inserted = true

		return insertTags(context, tx, youtube.KindPlaylist, p.ID, p.Tags)
	})
	if err != nil {
		return dberr.Wrap(err, "create_playlist")
	}

	if !inserted {
		return dberr.ErrConflict
	}
	return nil
}

func (repository *PostgresRepository) ListPlaylists(context context.Context, f PlaylistFilter, limit, offset int) ([]*Playlist, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE TRUE
	`,
		schema.Playlist.ID, schema.Playlist.ChannelID, schema.Playlist.Title,
		schema.Playlist.Description, schema.Playlist.PublishedAt, schema.Playlist.Language,
		schema.Playlist.ItemCount, schema.Playlist.CreatedAt,
		schema.Playlist.Table,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE TRUE`, schema.Playlist.Table)

	args := []any{}
	countArgs := []any{}

	if f.ChannelID != "" {
		clause := fmt.Sprintf(` AND %s = $%d`, schema.Playlist.ChannelID, len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, f.ChannelID)
		countArgs = append(countArgs, f.ChannelID)
	}

	if f.Query != "" {
		clause := fmt.Sprintf(` AND %s ILIKE $%d`, schema.Playlist.Title, len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, "%"+f.Query+"%")
		countArgs = append(countArgs, "%"+f.Query+"%")
	}

	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT $", schema.Playlist.Title) + itos(len(args)+1) + ` OFFSET $` + itos(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_playlists")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_playlists")
	}
	defer rows.Close()

	var playlists []*Playlist
	for rows.Next() {
		p := &Playlist{}
		if err := rows.Scan(
			&p.ID, &p.ChannelID, &p.Title, &p.Description, &p.PublishedAt,
			&p.Language, &p.ItemCount, &p.CreatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_playlist")
		}
		playlists = append(playlists, p)
	}

	return playlists, total, nil
}
