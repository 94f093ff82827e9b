package service

import (
	"context"
	"testing"

	"themewatch/internal/core/facet"
	perr "themewatch/internal/platform/errors"
	dash "themewatch/internal/services/dashboard/domain"
	"themewatch/internal/services/presets/domain"
	"themewatch/internal/services/presets/repo"

	"themewatch/internal/modkit/repokit"
)

// memRepo is an in-memory Repo for service tests
type memRepo struct {
	rows map[string]repo.RowPreset
}

func newMemRepo() *memRepo { return &memRepo{rows: make(map[string]repo.RowPreset)} }

func (m *memRepo) Insert(_ context.Context, row repo.RowPreset) error {
	row.CreatedAt = "2025-08-01T00:00:00Z"
	row.UpdatedAt = row.CreatedAt
	m.rows[row.ID] = row
	return nil
}

func (m *memRepo) List(_ context.Context, themeID string) ([]repo.RowPreset, error) {
	var out []repo.RowPreset
	for _, r := range m.rows {
		if r.ThemeID == themeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRepo) Get(_ context.Context, id string) (repo.RowPreset, error) {
	if r, ok := m.rows[id]; ok {
		return r, nil
	}
	return repo.RowPreset{}, perr.NotFoundf("preset %s", id)
}

func (m *memRepo) Rename(_ context.Context, id, name string) error {
	r, ok := m.rows[id]
	if !ok {
		return perr.NotFoundf("preset %s", id)
	}
	r.Name = name
	m.rows[id] = r
	return nil
}

func (m *memRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.rows[id]; !ok {
		return perr.NotFoundf("preset %s", id)
	}
	delete(m.rows, id)
	return nil
}

// nopTx satisfies TxRunner for services that never open transactions in tests
type nopTx struct{ repokit.TxRunner }

func newSvc() *Svc {
	mem := newMemRepo()
	return New(nopTx{}, repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return mem }))
}

func TestCreate_RoundTripsFilterState(t *testing.T) {
	t.Parallel()

	svc := newSvc()
	ctx := context.Background()

	in := domain.CreateInput{
		ThemeID: "theme-1",
		Name:    "negative english posts",
		Filters: dash.FilterState{
			Material: dash.MaterialFilter{
				Sentiment: []facet.Tone{facet.ToneNegative},
				Languages: []string{"en"},
			},
			Mode:     dash.ViewAll,
			Page:     1,
			PageSize: 20,
		},
	}
	p, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == "" {
		t.Fatal("create must assign an id")
	}

	got, err := svc.Get(ctx, domain.GetInput{ID: p.ID})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Filters.Material.Sentiment) != 1 || got.Filters.Material.Sentiment[0] != "negative" {
		t.Fatalf("filters did not round trip: %+v", got.Filters)
	}
	if got.Filters.Page != 1 || got.Filters.PageSize != 20 {
		t.Fatalf("pagination did not round trip: %+v", got.Filters)
	}
}

func TestRename_And_Delete(t *testing.T) {
	t.Parallel()

	svc := newSvc()
	ctx := context.Background()
	p, err := svc.Create(ctx, domain.CreateInput{ThemeID: "theme-1", Name: "old"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	renamed, err := svc.Rename(ctx, domain.RenameInput{ID: p.ID, Name: "new"})
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if renamed.Name != "new" {
		t.Fatalf("name = %s, want new", renamed.Name)
	}

	if err := svc.Delete(ctx, domain.DeleteInput{ID: p.ID}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, domain.GetInput{ID: p.ID}); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestList_ScopedToTheme(t *testing.T) {
	t.Parallel()

	svc := newSvc()
	ctx := context.Background()
	if _, err := svc.Create(ctx, domain.CreateInput{ThemeID: "theme-1", Name: "a"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, domain.CreateInput{ThemeID: "theme-2", Name: "b"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.List(ctx, domain.ListInput{ThemeID: "theme-1"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Name != "a" {
		t.Fatalf("list = %+v, want only theme-1's preset", got)
	}
}
