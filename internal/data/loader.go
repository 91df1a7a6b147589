package data

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load builds the database from the built-in defaults, overlaid with any
// YAML record files found in dir. Records with a matching ID replace the
// default; new IDs are appended. A missing dir (or missing individual
// files) just means defaults.
func Load(dir string) (*Database, error) {
	db := Default()

	if dir != "" {
		if err := overlayDir(db, dir); err != nil {
			return nil, err
		}
		db.index()
	}

	slog.Info("game data loaded",
		"actors", len(db.Actors),
		"classes", len(db.Classes),
		"skills", len(db.Skills),
		"items", len(db.Items),
		"weapons", len(db.Weapons),
		"armors", len(db.Armors),
		"enemies", len(db.Enemies),
		"states", len(db.States))

	return db, nil
}

func overlayDir(db *Database, dir string) error {
	if err := overlayFile(dir, "actors.yaml", &db.Actors, func(r *Actor) int { return r.ID }); err != nil {
		return err
	}
	if err := overlayFile(dir, "classes.yaml", &db.Classes, func(r *Class) int { return r.ID }); err != nil {
		return err
	}
	if err := overlayFile(dir, "skills.yaml", &db.Skills, func(r *Skill) int { return r.ID }); err != nil {
		return err
	}
	if err := overlayFile(dir, "items.yaml", &db.Items, func(r *Item) int { return r.ID }); err != nil {
		return err
	}
	if err := overlayFile(dir, "weapons.yaml", &db.Weapons, func(r *Weapon) int { return r.ID }); err != nil {
		return err
	}
	if err := overlayFile(dir, "armors.yaml", &db.Armors, func(r *Armor) int { return r.ID }); err != nil {
		return err
	}
	if err := overlayFile(dir, "enemies.yaml", &db.Enemies, func(r *Enemy) int { return r.ID }); err != nil {
		return err
	}
	if err := overlayFile(dir, "states.yaml", &db.States, func(r *State) int { return r.ID }); err != nil {
		return err
	}
	return nil
}

// overlayFile merges one YAML record list into the matching set.
func overlayFile[T any](dir, name string, set *[]*T, id func(*T) int) error {
	path := filepath.Join(dir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var records []*T
	if err := yaml.Unmarshal(raw, &records); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	byID := make(map[int]int, len(*set))
	for i, r := range *set {
		byID[id(r)] = i
	}
	for _, r := range records {
		if i, ok := byID[id(r)]; ok {
			(*set)[i] = r
		} else {
			*set = append(*set, r)
		}
	}

	slog.Debug("overlaid record file", "file", name, "records", len(records))
	return nil
}
