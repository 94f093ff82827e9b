package facet

import (
	"strings"

	"golang.org/x/text/language"
)

// NormalizeLang canonicalizes a language code or display label to its BCP 47
// base tag ("EN", "eng" and "en-US" all become "en"). Returns false when the
// input does not parse as a language
func NormalizeLang(code string) (string, bool) {
	s := strings.TrimSpace(code)
	if s == "" {
		return "", false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", false
	}
	return base.String(), true
}
