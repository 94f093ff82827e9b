// Package drill turns chart point clicks into filter mutations. A click
// carries the originating chart and the rendered point label; the bridge
// translates the label into a canonical facet value, appends it to the
// session's filter state and re-issues only the panel scope of that chart
package drill

import (
	"context"

	"themewatch/internal/core/facet"
	"themewatch/internal/services/dashboard/domain"
	"themewatch/internal/services/dashboard/refresh"
	"themewatch/internal/services/dashboard/state"
)

// Bridge joins the filter store and the refresh orchestrator for drill-downs
type Bridge struct {
	store *state.Store
	orch  *refresh.Orchestrator
}

// New wires a Bridge. Both collaborators are required
func New(store *state.Store, orch *refresh.Orchestrator) *Bridge {
	if store == nil {
		panic("drill.Bridge requires a non nil state.Store")
	}
	if orch == nil {
		panic("drill.Bridge requires a non nil refresh.Orchestrator")
	}
	return &Bridge{store: store, orch: orch}
}

// Apply translates the clicked label and appends it to the owning facet,
// then refreshes the chart's panel scope against the mutated state. Labels
// that translate to nothing (placeholders, unknown vocabulary, facets that
// are not drillable) leave the state untouched and issue no fetches. The
// return reports whether a filter was applied
func (b *Bridge) Apply(ctx context.Context, themeID string, chart domain.SliceKey, n facet.Name, label string) bool {
	value, ok := facet.Translate(n, label)
	if !ok {
		return false
	}
	if !b.append(n, value) {
		return false
	}
	b.orch.Refresh(ctx, themeID, b.store.Snapshot(), refresh.ScopeForChart(chart)...)
	return true
}

// append adds one canonical value to its facet. The store setters replace
// wholesale and deduplicate, so drilling the same point twice is idempotent
func (b *Bridge) append(n facet.Name, value string) bool {
	cur := b.store.Snapshot()
	switch n {
	case facet.Sentiment:
		b.store.SetSentiment(append(cur.Material.Sentiment, facet.Tone(value)))
	case facet.MaterialType:
		b.store.SetMaterialTypes(append(cur.Material.MaterialTypes, facet.MaterialKind(value)))
	case facet.Language:
		b.store.SetLanguages(append(cur.Material.Languages, value))
	case facet.SourceType:
		b.store.SetSourceTypes(append(cur.Material.SourceTypes, facet.SourceKind(value)))
	case facet.AuthorType:
		b.store.SetAuthorTypes(append(cur.Author.AuthorTypes, facet.AuthorKind(value)))
	case facet.Gender:
		b.store.SetGenders(append(cur.Author.Genders, facet.GenderKind(value)))
	default:
		return false
	}
	return true
}
