// Package domain holds the dashboard filter model and the DTOs shared by
// the http and service layers
package domain

import (
	"time"

	"themewatch/internal/core/facet"
)

// ViewMode selects which material list a session is looking at.
// A single tagged value, so processed/unprocessed/favourite can never be
// requested together
type ViewMode string

// ViewMode values
const (
	ViewAll         ViewMode = "all"
	ViewProcessed   ViewMode = "processed"
	ViewUnprocessed ViewMode = "unprocessed"
	ViewFavourite   ViewMode = "favourite"
)

// AgeRange is an inclusive author age band
type AgeRange struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// SubscriberRange bounds the author audience size, nil means no constraint
type SubscriberRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// MaterialFilter carries the material facets. Every slice holds unique
// elements, insertion order is irrelevant
type MaterialFilter struct {
	Sentiment     []facet.Tone         `json:"sentiment"`
	MaterialTypes []facet.MaterialKind `json:"material_types"`
	Languages     []string             `json:"languages"`
	SourceTypes   []facet.SourceKind   `json:"source_types"`
	Sources       []string             `json:"sources"`
	Tags          []string             `json:"tags"`
	Description   string               `json:"description"`
}

// AuthorFilter carries the author demographic facets
type AuthorFilter struct {
	AuthorTypes []facet.AuthorKind `json:"author_types"`
	AgeRanges   []AgeRange         `json:"age_ranges"`
	Genders     []facet.GenderKind `json:"genders"`
	Subscribers *SubscriberRange   `json:"subscribers,omitempty"`
}

// TimeFilter is the analysed window. RangeDays is always derived from the
// bounds, never set independently; nil bounds mean "today"
type TimeFilter struct {
	Start     *time.Time `json:"start,omitempty"`
	End       *time.Time `json:"end,omitempty"`
	RangeDays float64    `json:"range_days"`
}

// FilterState is the full facet selection of one dashboard session
type FilterState struct {
	Material    MaterialFilter    `json:"material"`
	Author      AuthorFilter      `json:"author"`
	Time        TimeFilter        `json:"time"`
	Mode        ViewMode          `json:"mode"`
	ChartPeriod facet.Granularity `json:"chart_period"`
	Page        int               `json:"page"`
	PageSize    int               `json:"page_size"`
}

// FilterChip is one entry of the flattened active filter list the UI renders
type FilterChip struct {
	Facet facet.Name `json:"facet"`
	Value string     `json:"value"`
}

// FilterCounts maps facet name to value to the number of materials that
// would match if that value were added. Rebuilt wholesale per fetch
type FilterCounts map[facet.Name]map[string]int64
