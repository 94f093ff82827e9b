// Package repo provides postgres access for presets
package repo

import (
	"context"
	stdsql "database/sql"
	"errors"

	"themewatch/internal/modkit/repokit"
	perr "themewatch/internal/platform/errors"
)

// Repo defines the repository contract for presets
type Repo interface {
	Insert(ctx context.Context, row RowPreset) error
	List(ctx context.Context, themeID string) ([]RowPreset, error)
	Get(ctx context.Context, id string) (RowPreset, error)
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

// RowPreset represents a preset row from the database. Filters carries the
// stored filter state as raw jsonb, the service owns the codec
type RowPreset struct {
	ID        string
	ThemeID   string
	Name      string
	Filters   []byte
	CreatedAt string
	UpdatedAt string
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Insert(ctx context.Context, row RowPreset) error {
	const sql = `
insert into presets (id, theme_id, name, filters)
values ($1, $2, $3, $4)
`
	_, err := r.q.Exec(ctx, sql, row.ID, row.ThemeID, row.Name, row.Filters)
	return err
}

func (r *queries) List(ctx context.Context, themeID string) ([]RowPreset, error) {
	const sql = `
select id::text, theme_id, name, filters, created_at::text, updated_at::text
from presets
where theme_id = $1
order by created_at desc
`
	rows, err := r.q.Query(ctx, sql, themeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowPreset
	for rows.Next() {
		var rr RowPreset
		if err := rows.Scan(&rr.ID, &rr.ThemeID, &rr.Name, &rr.Filters, &rr.CreatedAt, &rr.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) Get(ctx context.Context, id string) (RowPreset, error) {
	const sql = `
select id::text, theme_id, name, filters, created_at::text, updated_at::text
from presets
where id = $1
`
	var rr RowPreset
	err := r.q.QueryRow(ctx, sql, id).Scan(&rr.ID, &rr.ThemeID, &rr.Name, &rr.Filters, &rr.CreatedAt, &rr.UpdatedAt)
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return RowPreset{}, perr.NotFoundf("preset %s", id)
		}
		return RowPreset{}, err
	}
	return rr, nil
}

func (r *queries) Rename(ctx context.Context, id, name string) error {
	const sql = `
update presets set name = $2, updated_at = now()
where id = $1
`
	tag, err := r.q.Exec(ctx, sql, id, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("preset %s", id)
	}
	return nil
}

func (r *queries) Delete(ctx context.Context, id string) error {
	const sql = `delete from presets where id = $1`
	tag, err := r.q.Exec(ctx, sql, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("preset %s", id)
	}
	return nil
}
