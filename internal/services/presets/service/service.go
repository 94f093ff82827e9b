// Package service contains preset workflows
package service

import (
	"context"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"themewatch/internal/modkit/repokit"
	perr "themewatch/internal/platform/errors"
	"themewatch/internal/services/presets/domain"
	"themewatch/internal/services/presets/repo"
)

// Service defines the preset service contract
type Service interface {
	Create(ctx context.Context, in domain.CreateInput) (domain.Preset, error)
	List(ctx context.Context, in domain.ListInput) ([]domain.Preset, error)
	Get(ctx context.Context, in domain.GetInput) (domain.Preset, error)
	Rename(ctx context.Context, in domain.RenameInput) (domain.Preset, error)
	Delete(ctx context.Context, in domain.DeleteInput) error
}

// Svc implements the preset service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a preset service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("presets.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("presets.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Create saves the filter combination and returns the stored preset
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.Preset, error) {
	raw, err := json.Marshal(in.Filters)
	if err != nil {
		return domain.Preset{}, perr.JSONErrf("encode preset filters: %v", err)
	}
	row := repo.RowPreset{
		ID:      uuid.NewString(),
		ThemeID: in.ThemeID,
		Name:    in.Name,
		Filters: raw,
	}
	if err := s.Repo.Insert(ctx, row); err != nil {
		return domain.Preset{}, perr.FromPostgresf(err, "insert preset %q", in.Name)
	}
	return s.Get(ctx, domain.GetInput{ID: row.ID})
}

// List returns every preset saved for a theme, newest first
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.Preset, error) {
	rows, err := s.Repo.List(ctx, in.ThemeID)
	if err != nil {
		return nil, perr.FromPostgresf(err, "list presets for %s", in.ThemeID)
	}
	out := make([]domain.Preset, 0, len(rows))
	for _, r := range rows {
		p, err := fromRow(r)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Get returns one preset with its decoded filter state
func (s *Svc) Get(ctx context.Context, in domain.GetInput) (domain.Preset, error) {
	row, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return domain.Preset{}, err
	}
	return fromRow(row)
}

// Rename changes the display name
func (s *Svc) Rename(ctx context.Context, in domain.RenameInput) (domain.Preset, error) {
	if err := s.Repo.Rename(ctx, in.ID, in.Name); err != nil {
		return domain.Preset{}, err
	}
	return s.Get(ctx, domain.GetInput{ID: in.ID})
}

// Delete removes one preset
func (s *Svc) Delete(ctx context.Context, in domain.DeleteInput) error {
	return s.Repo.Delete(ctx, in.ID)
}

func fromRow(r repo.RowPreset) (domain.Preset, error) {
	p := domain.Preset{
		ID:        r.ID,
		ThemeID:   r.ThemeID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if len(r.Filters) > 0 {
		if err := json.Unmarshal(r.Filters, &p.Filters); err != nil {
			return domain.Preset{}, perr.JSONErrf("decode preset %s filters: %v", r.ID, err)
		}
	}
	return p, nil
}
