package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsOnly(t *testing.T) {
	db, err := Load("")
	require.NoError(t, err)

	assert.NotNil(t, db.Skill(1))
	assert.NotNil(t, db.Actor(1))
	assert.Nil(t, db.Skill(999))
}

func TestLoadMissingDirIsDefaults(t *testing.T) {
	db, err := Load(filepath.Join(t.TempDir(), "no-such-dir"))
	require.NoError(t, err)
	assert.Equal(t, len(Default().Skills), len(db.Skills))
}

func TestLoadOverlayReplacesAndAppends(t *testing.T) {
	dir := t.TempDir()
	overlay := `
- id: 1
  name: Brutal Attack
  success_rate: 100
  hit_type: 1
  damage:
    kind: 1
    formula: "a.atk * 6"
- id: 50
  name: Meteor
  success_rate: 90
  hit_type: 2
  damage:
    kind: 1
    element: 2
    formula: "a.mat * 5"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skills.yaml"), []byte(overlay), 0o644))

	db, err := Load(dir)
	require.NoError(t, err)

	// Matching ID replaced.
	attack := db.Skill(1)
	require.NotNil(t, attack)
	assert.Equal(t, "Brutal Attack", attack.Name)
	assert.Equal(t, "a.atk * 6", attack.Damage.Formula)

	// New ID appended.
	meteor := db.Skill(50)
	require.NotNil(t, meteor)
	assert.Equal(t, HitMagical, meteor.Hit)

	// Untouched records survive.
	assert.NotNil(t, db.Skill(4))
	assert.Equal(t, len(Default().Skills)+1, len(db.Skills))
}

func TestLoadBadYAMLFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "enemies.yaml"), []byte("{not a list"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
