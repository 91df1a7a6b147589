package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumberTagVariants(t *testing.T) {
	tests := []struct {
		name string
		note string
		want float64
	}{
		{"plain", "<Hit Mod: 5>", 5},
		{"leading plus", "<Hit Mod: +5>", 5},
		{"percent sign cosmetic", "<Hit Mod: 5%>", 5},
		{"negative", "<Hit Mod: -5>", -5},
		{"decimal", "<Hit Mod: 2.5>", 2.5},
		{"hyphenated tag", "<hit-mod: 7>", 7},
		{"camel case tag", "<hitMod: 7>", 7},
		{"squashed upper", "<HITMOD:7>", 7},
		{"extra spacing", "<  hit   mod  :  3  % >", 3},
		{"buried in text", "A mighty blow.\n<Hit Mod: 4>\nUse wisely.", 4},
		{"absent", "no tags here", 0},
		{"empty note", "", 0},
		{"malformed value", "<Hit Mod: lots>", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseNumberTag(tt.note, hitModTag))
		})
	}
}

func TestParseStatListTag(t *testing.T) {
	tests := []struct {
		name string
		note string
		want []ParamID
	}{
		{"one name", "<Power Stats: atk>", []ParamID{ParamAttack}},
		{"comma separated", "<Power Stats: atk, agi>", []ParamID{ParamAttack, ParamAgility}},
		{"space separated", "<Power Stats: atk agi>", []ParamID{ParamAttack, ParamAgility}},
		{"mixed case", "<power stats: ATK, Agility>", []ParamID{ParamAttack, ParamAgility}},
		{"aliases", "<Power Stats: strength speed>", []ParamID{ParamAttack, ParamAgility}},
		{"singular tag", "<Power Stat: luk>", []ParamID{ParamLuck}},
		{"absent", "nothing to see", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseStatListTag(tt.note, powerStatsTag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatListTagUnknownStat(t *testing.T) {
	_, err := parseStatListTag("<Power Stats: charisma>", powerStatsTag)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnrecognizedStat)
}

func TestParseAnnotations(t *testing.T) {
	note := "<Power Stats: atk, agi>\n<Resist Stats: def>\n<Hit Mod: +5>\n<Crit Mod: 10%>\n<Crit Boost: 25>"

	a, err := ParseAnnotations(note)
	require.NoError(t, err)
	assert.Equal(t, []ParamID{ParamAttack, ParamAgility}, a.PowerStats)
	assert.Equal(t, []ParamID{ParamDefense}, a.ResistStats)
	assert.Equal(t, 5.0, a.HitMod)
	assert.Equal(t, 10.0, a.CritMod)
	assert.Equal(t, 25.0, a.CritBoost)
}

func TestParseAnnotationsDefaults(t *testing.T) {
	a, err := ParseAnnotations("just flavor text")
	require.NoError(t, err)
	assert.Empty(t, a.PowerStats)
	assert.Empty(t, a.ResistStats)
	assert.Zero(t, a.HitMod)
	assert.Zero(t, a.CritMod)
	assert.Zero(t, a.CritBoost)
}

func TestParseAnnotationsIdempotent(t *testing.T) {
	note := "<Power Stats: atk agi>\n<Crit Boost: 15>"

	first, err := ParseAnnotations(note)
	require.NoError(t, err)
	second, err := ParseAnnotations(note)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseAnnotationsBadStatName(t *testing.T) {
	_, err := ParseAnnotations("<Resist Stats: vigor>")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnrecognizedStat)
}
