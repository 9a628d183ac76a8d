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

// tagJoin describes the association table for one taggable kind.
type tagJoin struct {
	table    string
	idColumn string
	tagCol   string
}

// tagJoins maps each taggable kind to its join table. Playlist items carry
// no tags of their own.
var tagJoins = map[youtube.Kind]tagJoin{
	youtube.KindChannel:  {table: schema.ChannelTag.Table, idColumn: schema.ChannelTag.ChannelID, tagCol: schema.ChannelTag.Tag},
	youtube.KindPlaylist: {table: schema.PlaylistTag.Table, idColumn: schema.PlaylistTag.PlaylistID, tagCol: schema.PlaylistTag.Tag},
	youtube.KindVideo:    {table: schema.VideoTag.Table, idColumn: schema.VideoTag.VideoID, tagCol: schema.VideoTag.Tag},
}

// insertTags commits the entity's tag rows and associations on the same
// transaction as the entity insert, so a failed tag write rolls the whole
// commit back.
func insertTags(context context.Context, tx pgx.Tx, kind youtube.Kind, resourceID string, names []string) error {
	if len(names) == 0 {
		return nil
	}

	join, ok := tagJoins[kind]
	if !ok {
		return fmt.Errorf("catalog: kind %q is not taggable", kind)
	}

	// One multi-row insert; existing canonical names are left untouched.
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		SELECT unnest($1::text[]), NOW()
		ON CONFLICT (%s) DO NOTHING
	`,
		schema.Tag.Table, schema.Tag.Name, schema.Tag.CreatedAt, schema.Tag.Name,
	)
	if _, err := tx.Exec(context, query, names); err != nil {
		return err
	}

	query = fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		SELECT $1, unnest($2::text[])
		ON CONFLICT (%s, %s) DO NOTHING
	`,
		join.table, join.idColumn, join.tagCol, join.idColumn, join.tagCol,
	)

	_, err := tx.Exec(context, query, resourceID, names)
	return err
}

func (repository *PostgresRepository) ResourceTags(context context.Context, kind youtube.Kind, resourceID string) ([]string, error) {
	join, ok := tagJoins[kind]
	if !ok {
		return nil, fmt.Errorf("catalog: kind %q is not taggable", kind)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		join.tagCol, join.table, join.idColumn, join.tagCol,
	)

	rows, err := repository.db.Query(context, query, resourceID)
	if err != nil {
		return nil, dberr.Wrap(err, "resource_tags")
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, tag)
	}

	return tags, nil
}

func (repository *PostgresRepository) ListTags(context context.Context, f TagFilter, limit, offset int) ([]*Tag, int, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE TRUE`,
		schema.Tag.Name, schema.Tag.CreatedAt, schema.Tag.Table,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE TRUE`, schema.Tag.Table)

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		clause := fmt.Sprintf(` AND %s ILIKE $%d`, schema.Tag.Name, len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, "%"+f.Query+"%")
		countArgs = append(countArgs, "%"+f.Query+"%")
	}

	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT $", schema.Tag.Name) + itos(len(args)+1) + ` OFFSET $` + itos(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_tags")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	var tags []*Tag
	for rows.Next() {
		tag := &Tag{}
		if err := rows.Scan(&tag.Name, &tag.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, tag)
	}

	return tags, total, nil
}
