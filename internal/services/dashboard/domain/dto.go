package domain

// HTTP input DTOs. Validation follows the forgiving contract: malformed or
// empty numeric ranges mean "no constraint", they are never surfaced as
// validation errors

// MaterialFilterInput is the material filter form submission
type MaterialFilterInput struct {
	Sentiment     []string `json:"sentiment" validate:"omitempty,dive,oneof=positive negative neutral" example:"negative"`
	MaterialTypes []string `json:"material_types" validate:"omitempty,dive,oneof=post repost comment article" example:"post"`
	Languages     []string `json:"languages" validate:"omitempty,dive,min=2,max=35" example:"en"`
	SourceTypes   []string `json:"source_types" validate:"omitempty,dive,oneof=social news blog video messenger" example:"news"`
	Sources       []string `json:"sources" validate:"omitempty,dive,min=1,max=200" example:"lenta.ru"`
	Tags          []string `json:"tags" validate:"omitempty,dive,min=1,max=64" example:"tag-7"`
	Description   string   `json:"description,omitempty" validate:"omitempty,max=500"`
}

// AuthorFilterInput is the author filter form submission
type AuthorFilterInput struct {
	AuthorTypes   []string   `json:"author_types" validate:"omitempty,dive,oneof=person community media" example:"person"`
	Genders       []string   `json:"genders" validate:"omitempty,dive,oneof=male female" example:"female"`
	AgeRanges     []AgeRange `json:"age_ranges" validate:"omitempty,dive"`
	SubscriberMin *int64     `json:"subscriber_min,omitempty" validate:"omitempty,min=0"`
	SubscriberMax *int64     `json:"subscriber_max,omitempty" validate:"omitempty,min=0"`
}

// TimeRangeInput sets the analysed window, RFC 3339 bounds, both optional
type TimeRangeInput struct {
	Start string `json:"start,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00" example:"2025-08-01T00:00:00Z"`
	End   string `json:"end,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00" example:"2025-08-31T00:00:00Z"`
}

// ChartPeriodInput selects the display granularity
type ChartPeriodInput struct {
	Period string `json:"period" validate:"required,oneof=quarter_hour half_hour hour day week month" example:"day"`
}

// ViewModeInput switches the material list view
type ViewModeInput struct {
	Mode string `json:"mode" validate:"required,oneof=all processed unprocessed favourite" example:"all"`
}

// DrillInput is a chart point click. Chart names the originating slice so
// the refresh can stay scoped to that panel; an unknown chart widens the
// refresh to the full board rather than failing
type DrillInput struct {
	Chart string `json:"chart" validate:"required,max=64" example:"source_tone"`
	Facet string `json:"facet" validate:"required,oneof=sentiment material_type language source_type author_type gender" example:"sentiment"`
	Label string `json:"label" validate:"required,max=200" example:"Negative"`
}

// RemoveFilterInput removes a single active filter chip
type RemoveFilterInput struct {
	Facet string `json:"facet" validate:"required,oneof=sentiment material_type language source_type sources tags gender author_type age" example:"sentiment"`
	Value string `json:"value" validate:"required,max=200" example:"negative"`
}

// PageInput changes the materials list pagination
type PageInput struct {
	Page     int `json:"page" validate:"min=1" example:"2"`
	PageSize int `json:"page_size,omitempty" validate:"omitempty,min=1,max=200" example:"20"`
}

// Snapshot is the full session view the UI can rehydrate from
type Snapshot struct {
	Filters FilterState             `json:"filters"`
	Chips   []FilterChip            `json:"chips"`
	Counts  FilterCounts            `json:"counts"`
	Slices  map[SliceKey]SliceState `json:"slices"`
	Axis    AxisConfig              `json:"axis"`
}
