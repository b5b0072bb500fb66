// Package normalize holds the pure field normalizers applied to extracted
// resume values. None of these functions do I/O and none of them return errors:
// unusable input always comes back as nil/zero, never as a failure.
package normalize

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/careerdock/resume-import/constants"
)

// SummaryMaxLen caps professional summaries (in runes, ellipsis included).
const SummaryMaxLen = 600

var (
	reYearMonth    = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
	reYearOnly     = regexp.MustCompile(`^\d{4}$`)
	rePresentToken = regexp.MustCompile(`(?i)\b(present|current|now|ongoing)\b`)
	rePhoneKeep    = regexp.MustCompile(`[^0-9+()\-\s]`)
)

// dateLayouts are tried in order for anything that is not already YYYY-MM or
// a bare year. The first parseable layout wins.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"January 2006",
	"Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"01/2006",
	"1/2006",
	"01/02/2006",
	"2006/01",
	"2006.01",
}

// Date normalizes a loosely-typed date string to canonical YYYY-MM.
// Blank input, present/current tokens, and unparseable input all yield nil.
func Date(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" || IsPresentToken(s) {
		return nil
	}
	if reYearMonth.MatchString(s) {
		return &s
	}
	if reYearOnly.MatchString(s) {
		v := s + "-01"
		return &v
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			v := t.UTC().Format("2006-01")
			return &v
		}
	}
	return nil
}

// IsPresentToken reports whether s contains a present/current marker.
func IsPresentToken(s string) bool {
	return rePresentToken.MatchString(s)
}

// URL trims the input, prefixes https:// when no scheme is present, and
// returns the canonical string form of a valid absolute URL, else nil.
func URL(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" || !strings.Contains(u.Host, ".") {
		return nil
	}
	if u.Path == "" {
		u.Path = "/"
	}
	v := u.String()
	return &v
}

// Years normalizes a loosely-typed years-of-experience value: non-numeric or
// NaN input yields nil, everything else rounds to the nearest integer and is
// clamped to a minimum of zero.
func Years(v any) *int {
	var f float64
	switch t := v.(type) {
	case nil:
		return nil
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case float32:
		f = float64(t)
	case float64:
		f = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	n := int(math.Round(f))
	if n < 0 {
		n = 0
	}
	return &n
}

// Relationship resolves a freeform relationship label against the allow-list.
func Relationship(s string) *constants.Relationship {
	if r, ok := constants.CanonicalRelationship(s); ok {
		return &r
	}
	return nil
}

// SkillCategory resolves a freeform category label. Category is mandatory, so
// unknown input defaults to technical instead of nil.
func SkillCategory(s string) constants.SkillCategory {
	c, _ := constants.CanonicalSkillCategory(s)
	return c
}

// Proficiency resolves a freeform proficiency label; unknown input yields nil.
func Proficiency(s string) *constants.Proficiency {
	if p, ok := constants.CanonicalProficiency(s); ok {
		return &p
	}
	return nil
}

// Phone strips every character except digits, +, parentheses, hyphen, and
// whitespace, then trims. Nothing left -> nil.
func Phone(s string) *string {
	cleaned := strings.TrimSpace(rePhoneKeep.ReplaceAllString(s, ""))
	if cleaned == "" {
		return nil
	}
	return &cleaned
}

// Summary caps a professional summary at SummaryMaxLen runes, appending an
// ellipsis when truncated so the result is exactly SummaryMaxLen runes long.
func Summary(s string) string {
	runes := []rune(s)
	if len(runes) <= SummaryMaxLen {
		return s
	}
	return string(runes[:SummaryMaxLen-1]) + "…"
}

// JoinList joins the non-blank, string-coercible members of a loosely-typed
// list into one comma-and-space-separated string. Nothing usable -> nil.
func JoinList(values []any) *string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		var s string
		switch t := v.(type) {
		case string:
			s = t
		case fmt.Stringer:
			s = t.String()
		case float64:
			s = strconv.FormatFloat(t, 'f', -1, 64)
		case int:
			s = strconv.Itoa(t)
		case bool, nil:
			continue
		default:
			continue
		}
		s = strings.TrimSpace(s)
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	joined := strings.Join(parts, ", ")
	return &joined
}

// StringPtr returns a pointer to the trimmed string, or nil when blank.
func StringPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
