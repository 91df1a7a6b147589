package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveParamAliases(t *testing.T) {
	tests := []struct {
		name string
		want ParamID
	}{
		{"atk", ParamAttack},
		{"attack", ParamAttack},
		{"power", ParamAttack},
		{"strength", ParamAttack},
		{"def", ParamDefense},
		{"guard", ParamDefense},
		{"mat", ParamMagicAttack},
		{"magic", ParamMagicAttack},
		{"intelligence", ParamMagicAttack},
		{"mdf", ParamMagicDefense},
		{"resistance", ParamMagicDefense},
		{"spirit", ParamMagicDefense},
		{"agi", ParamAgility},
		{"speed", ParamAgility},
		{"dexterity", ParamAgility},
		{"luk", ParamLuck},
		{"luck", ParamLuck},
		{"lck", ParamLuck},
		{"hp", ParamHP},
		{"health", ParamHP},
		{"mp", ParamMP},
		{"mana", ParamMP},
		{"mhp", ParamMaxHP},
		{"mmp", ParamMaxMP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveParam(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveParamCaseAndSpace(t *testing.T) {
	for _, name := range []string{"ATK", "Attack", "  atk  ", "AtTaCk"} {
		got, err := ResolveParam(name)
		require.NoError(t, err, name)
		assert.Equal(t, ParamAttack, got, name)
	}
}

func TestResolveParamUnknown(t *testing.T) {
	_, err := ResolveParam("charisma")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnrecognizedStat)
}

func TestClassParamAt(t *testing.T) {
	c := &Class{Params: [BaseParamCount][]int{
		ParamAttack: {5, 6, 7},
	}}

	assert.Equal(t, 5, c.ParamAt(ParamAttack, 1))
	assert.Equal(t, 7, c.ParamAt(ParamAttack, 3))
	// Short curves extend their last element.
	assert.Equal(t, 7, c.ParamAt(ParamAttack, 99))
	assert.Equal(t, 5, c.ParamAt(ParamAttack, 0))
	// Empty curve reads 0.
	assert.Equal(t, 0, c.ParamAt(ParamDefense, 10))
}
