package domain

import "themewatch/internal/core/facet"

// SliceKey names one independently fetched analytic view
type SliceKey string

// The fixed slice set. Every key maps to exactly one upstream endpoint
const (
	SliceMaterials         SliceKey = "materials"
	SliceFilterCount       SliceKey = "filter_count"
	SliceMainSeries        SliceKey = "main_series"
	SliceToneByReview      SliceKey = "tone_by_review"
	SliceLanguageByReview  SliceKey = "language_by_review"
	SliceSourceMessageMix  SliceKey = "source_message_mix"
	SliceSourceDynamic     SliceKey = "source_dynamic"
	SliceSourceMessageType SliceKey = "source_message_type"
	SliceSourceTone        SliceKey = "source_tone"
	SliceSourceTable       SliceKey = "source_table"
	SliceAuthorDynamic     SliceKey = "author_dynamic"
	SliceAuthorTable       SliceKey = "author_table"
	SliceTagDynamic        SliceKey = "tag_dynamic"
	SliceTagMessageMix     SliceKey = "tag_message_mix"
	SliceTagTone           SliceKey = "tag_tone"
	SliceTagTable          SliceKey = "tag_table"
)

// AllSlices enumerates the full refresh set in a stable order
var AllSlices = []SliceKey{
	SliceMaterials,
	SliceFilterCount,
	SliceMainSeries,
	SliceToneByReview,
	SliceLanguageByReview,
	SliceSourceMessageMix,
	SliceSourceDynamic,
	SliceSourceMessageType,
	SliceSourceTone,
	SliceSourceTable,
	SliceAuthorDynamic,
	SliceAuthorTable,
	SliceTagDynamic,
	SliceTagMessageMix,
	SliceTagTone,
	SliceTagTable,
}

// SliceState is the externally visible lifecycle of one slice
type SliceState struct {
	Data    any    `json:"data,omitempty"`
	Pending bool   `json:"pending"`
	ThemeID string `json:"theme_id,omitempty"`
}

// Series is one named time series, points are [unixMillis, value]
type Series struct {
	Name string     `json:"name"`
	Data [][2]int64 `json:"data"`
}

// CategoryPoint is one slice of a categorical breakdown (pie or bar)
type CategoryPoint struct {
	Name  string  `json:"name"`
	Y     float64 `json:"y"`
	Color string  `json:"color,omitempty"`
}

// TableMeta is upstream pagination metadata, passed through unchanged
type TableMeta struct {
	Page       int `json:"page"`
	PageCount  int `json:"page_count"`
	TotalCount int `json:"total_count"`
}

// MaterialRow is one entry of the materials list
type MaterialRow struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Source      string     `json:"source"`
	Tone        facet.Tone `json:"tone"`
	PublishedAt int64      `json:"published_at"`
}

// MaterialsPage is the paginated materials list
type MaterialsPage struct {
	Items []MaterialRow `json:"items"`
	Meta  TableMeta     `json:"meta"`
}

// SourceRow is one row of the source table
type SourceRow struct {
	Name          string `json:"name"`
	MaterialCount int64  `json:"material_count"`
	Audience      int64  `json:"audience"`
}

// SourceTable is the paginated source table
type SourceTable struct {
	Rows []SourceRow `json:"rows"`
	Meta TableMeta   `json:"meta"`
}

// AuthorRow is one row of the author table
type AuthorRow struct {
	Name          string `json:"name"`
	MaterialCount int64  `json:"material_count"`
	Subscribers   int64  `json:"subscribers"`
}

// AuthorTable is the paginated author table
type AuthorTable struct {
	Rows []AuthorRow `json:"rows"`
	Meta TableMeta   `json:"meta"`
}

// TagRow is one row of the tag table
type TagRow struct {
	Name          string `json:"name"`
	MaterialCount int64  `json:"material_count"`
}

// TagTable is the paginated tag table
type TagTable struct {
	Rows []TagRow  `json:"rows"`
	Meta TableMeta `json:"meta"`
}

// AxisConfig is everything a time series chart needs to lay out its x axis
type AxisConfig struct {
	Granularities   []facet.Granularity `json:"granularities"`
	Period          facet.Granularity   `json:"period"`
	PointIntervalMs int64               `json:"point_interval_ms"`
	PointStartMs    int64               `json:"point_start_ms"`
	AxisMinMs       int64               `json:"axis_min_ms"`
	AxisMaxMs       *int64              `json:"axis_max_ms,omitempty"`
}
