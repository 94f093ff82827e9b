// Package facet defines the filterable dimensions of the dashboard and the
// canonical vocabulary for their values
package facet

// Name identifies one filterable dimension
type Name string

// Facet names, stable wire values
const (
	Sentiment    Name = "sentiment"
	MaterialType Name = "material_type"
	Language     Name = "language"
	SourceType   Name = "source_type"
	Sources      Name = "sources"
	Tags         Name = "tags"
	Gender       Name = "gender"
	AuthorType   Name = "author_type"
	Age          Name = "age"
)

// ChipOrder is the canonical flattening order for active filter chips
// the order is part of the contract with the UI, do not reorder
var ChipOrder = [...]Name{
	Sentiment, MaterialType, Language, SourceType, Sources, Tags, Gender, AuthorType, Age,
}

// Tone is a sentiment classification of a material
type Tone string

// Tone values
const (
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
	ToneNeutral  Tone = "neutral"
)

// MaterialKind classifies the shape of a monitored material
type MaterialKind string

// MaterialKind values
const (
	MaterialPost    MaterialKind = "post"
	MaterialRepost  MaterialKind = "repost"
	MaterialComment MaterialKind = "comment"
	MaterialArticle MaterialKind = "article"
)

// SourceKind classifies the publishing platform
type SourceKind string

// SourceKind values
const (
	SourceSocial    SourceKind = "social"
	SourceNews      SourceKind = "news"
	SourceBlog      SourceKind = "blog"
	SourceVideo     SourceKind = "video"
	SourceMessenger SourceKind = "messenger"
)

// AuthorKind classifies who published a material
type AuthorKind string

// AuthorKind values
const (
	AuthorPerson    AuthorKind = "person"
	AuthorCommunity AuthorKind = "community"
	AuthorMedia     AuthorKind = "media"
)

// GenderKind is the author gender dimension
type GenderKind string

// GenderKind values
const (
	GenderMale   GenderKind = "male"
	GenderFemale GenderKind = "female"
)

// Granularity is the time bucket size used to render a time series chart
type Granularity string

// Granularity values, quarter hour through month
const (
	QuarterHour Granularity = "quarter_hour"
	HalfHour    Granularity = "half_hour"
	Hour        Granularity = "hour"
	Day         Granularity = "day"
	Week        Granularity = "week"
	Month       Granularity = "month"
)
