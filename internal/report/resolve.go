// Package report implements the presentation core: field resolution onto
// the canonical logical schema, tag classification, and per-session
// aggregation. Everything in this package is a pure function over its
// inputs; malformed values degrade to fallbacks and never error.
package report

import (
	"strings"

	"GoldView/internal/domain/models"
)

// Resolve picks one logical field's value out of a raw record.
//
// Exact keys are tried first, in the order given; the first present,
// non-empty value wins (numeric zero counts as present). Failing that,
// the record's own entries are scanned in their native insertion order
// and the first non-empty entry whose lower-cased key contains any of
// the lower-cased fuzzy parts wins. Record order decides between fuzzy
// candidates, not the order of fuzzyParts. When nothing matches the
// fallback is returned; missing fields are never an error.
func Resolve(rec models.Record, exactKeys []string, fuzzyParts []string, fallback any) any {
	for _, key := range exactKeys {
		if v, ok := rec.Get(key); ok && !emptyValue(v) {
			return v
		}
	}

	if len(fuzzyParts) > 0 {
		parts := make([]string, len(fuzzyParts))
		for i, p := range fuzzyParts {
			parts[i] = strings.ToLower(p)
		}
		for _, key := range rec.Keys() {
			v, _ := rec.Get(key)
			if emptyValue(v) {
				continue
			}
			lk := strings.ToLower(key)
			for _, p := range parts {
				if strings.Contains(lk, p) {
					return v
				}
			}
		}
	}

	return fallback
}

// emptyValue reports whether a record value counts as absent. Only nil
// and the empty string do; 0 and false are real values.
func emptyValue(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}
