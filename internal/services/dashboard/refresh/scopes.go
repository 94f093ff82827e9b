package refresh

import "themewatch/internal/services/dashboard/domain"

// Narrow refresh scopes. A filter change scoped to one panel re-issues only
// the slices whose data depends on it; callers pick the narrowest set that
// applies. Filter counts ride along with every scope because the badge
// counts must track the applied filter

// SourceScope covers the source panel
var SourceScope = []domain.SliceKey{
	domain.SliceFilterCount,
	domain.SliceSourceMessageMix,
	domain.SliceSourceDynamic,
	domain.SliceSourceMessageType,
	domain.SliceSourceTone,
	domain.SliceSourceTable,
}

// TagScope covers the tag panel
var TagScope = []domain.SliceKey{
	domain.SliceFilterCount,
	domain.SliceTagDynamic,
	domain.SliceTagMessageMix,
	domain.SliceTagTone,
	domain.SliceTagTable,
}

// AuthorScope covers the author panel
var AuthorScope = []domain.SliceKey{
	domain.SliceFilterCount,
	domain.SliceAuthorDynamic,
	domain.SliceAuthorTable,
}

// OverviewScope covers the main chart panel
var OverviewScope = []domain.SliceKey{
	domain.SliceFilterCount,
	domain.SliceMaterials,
	domain.SliceMainSeries,
	domain.SliceToneByReview,
	domain.SliceLanguageByReview,
}

// SeriesScope re-fetches only the time series charts, used when the display
// granularity changes and categorical breakdowns are unaffected
var SeriesScope = []domain.SliceKey{
	domain.SliceMainSeries,
	domain.SliceSourceDynamic,
	domain.SliceAuthorDynamic,
	domain.SliceTagDynamic,
}

// PageScope re-fetches only what pagination affects
var PageScope = []domain.SliceKey{
	domain.SliceMaterials,
}

// ModeScope re-fetches the material list and its badge counts on a view
// mode switch
var ModeScope = []domain.SliceKey{
	domain.SliceMaterials,
	domain.SliceFilterCount,
}

// panelOf groups each chart slice into its panel scope
var panelOf = map[domain.SliceKey][]domain.SliceKey{
	domain.SliceSourceMessageMix:  SourceScope,
	domain.SliceSourceDynamic:     SourceScope,
	domain.SliceSourceMessageType: SourceScope,
	domain.SliceSourceTone:        SourceScope,
	domain.SliceSourceTable:       SourceScope,
	domain.SliceTagDynamic:        TagScope,
	domain.SliceTagMessageMix:     TagScope,
	domain.SliceTagTone:           TagScope,
	domain.SliceTagTable:          TagScope,
	domain.SliceAuthorDynamic:     AuthorScope,
	domain.SliceAuthorTable:       AuthorScope,
	domain.SliceMainSeries:        OverviewScope,
	domain.SliceToneByReview:      OverviewScope,
	domain.SliceLanguageByReview:  OverviewScope,
	domain.SliceMaterials:         OverviewScope,
}

// ScopeForChart returns the narrow refresh set for an interaction that
// originated on the given chart. Unknown charts fall back to the full set
func ScopeForChart(chart domain.SliceKey) []domain.SliceKey {
	if s, ok := panelOf[chart]; ok {
		return s
	}
	return domain.AllSlices
}
