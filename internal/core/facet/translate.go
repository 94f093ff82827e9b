package facet

import "strings"

// Chart point labels arrive in display vocabulary, one table per facet maps
// them back to canonical values. The tables live here, shared by every
// drill-down call site, so a label never has two translations.

var toneLabels = map[string]Tone{
	"positive": TonePositive,
	"negative": ToneNegative,
	"neutral":  ToneNeutral,
}

var materialLabels = map[string]MaterialKind{
	"post":     MaterialPost,
	"posts":    MaterialPost,
	"repost":   MaterialRepost,
	"reposts":  MaterialRepost,
	"comment":  MaterialComment,
	"comments": MaterialComment,
	"article":  MaterialArticle,
	"articles": MaterialArticle,
}

var sourceKindLabels = map[string]SourceKind{
	"social":          SourceSocial,
	"social network":  SourceSocial,
	"social networks": SourceSocial,
	"news":            SourceNews,
	"news site":       SourceNews,
	"blog":            SourceBlog,
	"blogs":           SourceBlog,
	"video":           SourceVideo,
	"video hosting":   SourceVideo,
	"messenger":       SourceMessenger,
	"messengers":      SourceMessenger,
}

var authorKindLabels = map[string]AuthorKind{
	"person":    AuthorPerson,
	"people":    AuthorPerson,
	"community": AuthorCommunity,
	"group":     AuthorCommunity,
	"media":     AuthorMedia,
	"mass media": AuthorMedia,
}

var genderLabels = map[string]GenderKind{
	"male":   GenderMale,
	"men":    GenderMale,
	"female": GenderFemale,
	"women":  GenderFemale,
}

// placeholder buckets charts render for unclassified points
// translating them is always a miss
var placeholders = map[string]struct{}{
	"":          {},
	"unknown":   {},
	"other":     {},
	"undefined": {},
}

// Translate maps a chart display label to the canonical value of the named
// facet. The second return is false for placeholder labels and for facets
// whose values pass through untranslated (sources, tags carry canonical ids
// already and must not be looked up here)
func Translate(n Name, label string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(label))
	if _, ok := placeholders[key]; ok {
		return "", false
	}
	switch n {
	case Sentiment:
		if v, ok := toneLabels[key]; ok {
			return string(v), true
		}
	case MaterialType:
		if v, ok := materialLabels[key]; ok {
			return string(v), true
		}
	case SourceType:
		if v, ok := sourceKindLabels[key]; ok {
			return string(v), true
		}
	case AuthorType:
		if v, ok := authorKindLabels[key]; ok {
			return string(v), true
		}
	case Gender:
		if v, ok := genderLabels[key]; ok {
			return string(v), true
		}
	case Language:
		return NormalizeLang(label)
	}
	return "", false
}
