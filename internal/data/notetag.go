package data

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Notetag grammar: <Tag Name: value> anywhere in a record's free-text note.
// Tag names are case-insensitive and tolerant of spacing and hyphenation:
// "Hit Mod", "hit-mod" and "hitMod" are the same tag. Numeric values take an
// optional sign and a cosmetic trailing percent sign ("+5", "5%" and "5" all
// mean 5). Stat-list values take one or two stat names separated by commas
// and/or whitespace.
var (
	powerStatsTag  = statListPattern("power")
	resistStatsTag = statListPattern("resist")
	hitModTag      = numberPattern("hit", "mod")
	critModTag     = numberPattern("crit", "mod")
	critBoostTag   = numberPattern("crit", "boost")
)

func numberPattern(words ...string) *regexp.Regexp {
	return regexp.MustCompile(
		`(?i)<\s*` + strings.Join(words, `[\s_-]*`) + `\s*:\s*([+-]?\d+(?:\.\d+)?)\s*%?\s*>`)
}

func statListPattern(word string) *regexp.Regexp {
	// One stat name, optionally followed by a second after commas/spaces.
	return regexp.MustCompile(
		`(?i)<\s*` + word + `[\s_-]*stats?\s*:\s*([A-Za-z.]+)(?:[\s,]+([A-Za-z.]+))?\s*>`)
}

// parseNumberTag extracts a numeric notetag value. Absent or malformed tags
// fall back to 0: numeric annotations are optional tuning knobs, never
// required content.
func parseNumberTag(note string, tag *regexp.Regexp) float64 {
	m := tag.FindStringSubmatch(note)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimPrefix(m[1], "+"), 64)
	if err != nil {
		return 0
	}
	return v
}

// parseStatListTag extracts an ordered stat list from a notetag. An absent
// tag yields an empty list; a stat name no alias resolves is a content
// error and propagates.
func parseStatListTag(note string, tag *regexp.Regexp) ([]ParamID, error) {
	m := tag.FindStringSubmatch(note)
	if m == nil {
		return nil, nil
	}
	var stats []ParamID
	for _, name := range m[1:] {
		if name == "" {
			continue
		}
		id, err := ResolveParam(name)
		if err != nil {
			return nil, err
		}
		stats = append(stats, id)
	}
	return stats, nil
}

// ParseAnnotations parses every recognized notetag out of one record's note.
// Parsing is total and idempotent: the same note always yields the same
// result, and anything unrecognized falls back to the documented defaults.
// Only an unresolvable stat name fails.
func ParseAnnotations(note string) (Annotations, error) {
	power, err := parseStatListTag(note, powerStatsTag)
	if err != nil {
		return Annotations{}, fmt.Errorf("power stats: %w", err)
	}
	resist, err := parseStatListTag(note, resistStatsTag)
	if err != nil {
		return Annotations{}, fmt.Errorf("resist stats: %w", err)
	}
	return Annotations{
		PowerStats:  power,
		ResistStats: resist,
		HitMod:      parseNumberTag(note, hitModTag),
		CritMod:     parseNumberTag(note, critModTag),
		CritBoost:   parseNumberTag(note, critBoostTag),
	}, nil
}
