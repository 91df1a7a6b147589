package data

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Modifier names a numeric annotation that can be aggregated across a
// battler's trait sources.
type Modifier string

const (
	ModHitMod    Modifier = "hitMod"
	ModCritMod   Modifier = "critMod"
	ModCritBoost Modifier = "critBoost"
)

// Annotations is the parsed notetag set of one record. Zero values are the
// documented defaults: no stat lists, no modifiers.
type Annotations struct {
	PowerStats  []ParamID
	ResistStats []ParamID
	HitMod      float64
	CritMod     float64
	CritBoost   float64
}

// Modifier returns one named numeric annotation value.
func (a Annotations) Modifier(m Modifier) float64 {
	switch m {
	case ModHitMod:
		return a.HitMod
	case ModCritMod:
		return a.CritMod
	case ModCritBoost:
		return a.CritBoost
	}
	return 0
}

// AnnotationTable is the side-table of parsed annotations, keyed by record
// reference. Built once per data load and read-only afterwards; a data
// reload builds a fresh table and the consumer swaps it in atomically, so
// readers see either the fully-old or the fully-new table.
type AnnotationTable struct {
	byRef map[RecordRef]Annotations
}

// Get returns a record's parsed annotations. A record with no entry reads
// as the zero Annotations — absence of notetags, not an error.
func (t *AnnotationTable) Get(ref RecordRef) Annotations {
	if t == nil {
		return Annotations{}
	}
	return t.byRef[ref]
}

// Len returns the number of records with a parsed entry.
func (t *AnnotationTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byRef)
}

// SumModifier sums a named modifier across an ordered sequence of trait
// sources. Sources without an entry contribute 0; the order never changes
// the sum, only how a trace reads.
func (t *AnnotationTable) SumModifier(refs []RecordRef, m Modifier) float64 {
	total := 0.0
	for _, ref := range refs {
		total += t.Get(ref).Modifier(m)
	}
	return total
}

// BuildAnnotations parses the notetags of every record in the database into
// a fresh AnnotationTable, one goroutine per record set. Skills and items
// carry the full tag set; the trait-bearing kinds carry only crit boost.
// Any unresolvable stat name aborts the whole build: bad content should
// block loading, not limp along.
func BuildAnnotations(ctx context.Context, db *Database) (*AnnotationTable, error) {
	table := &AnnotationTable{byRef: make(map[RecordRef]Annotations)}

	var mu sync.Mutex
	put := func(ref RecordRef, a Annotations) {
		mu.Lock()
		table.byRef[ref] = a
		mu.Unlock()
	}

	usable := func(ref RecordRef, note string) error {
		a, err := ParseAnnotations(note)
		if err != nil {
			return fmt.Errorf("%s: %w", ref, err)
		}
		put(ref, a)
		return nil
	}
	trait := func(ref RecordRef, note string) {
		put(ref, Annotations{CritBoost: parseNumberTag(note, critBoostTag)})
	}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		for _, r := range db.Skills {
			if err := usable(r.RecordRef(), r.Note); err != nil {
				return err
			}
		}
		return nil
	})
	g.Go(func() error {
		for _, r := range db.Items {
			if err := usable(r.RecordRef(), r.Note); err != nil {
				return err
			}
		}
		return nil
	})
	g.Go(func() error {
		for _, r := range db.Actors {
			trait(RecordRef{KindActor, r.ID}, r.Note)
		}
		for _, r := range db.Classes {
			trait(RecordRef{KindClass, r.ID}, r.Note)
		}
		return nil
	})
	g.Go(func() error {
		for _, r := range db.Weapons {
			trait(RecordRef{KindWeapon, r.ID}, r.Note)
		}
		for _, r := range db.Armors {
			trait(RecordRef{KindArmor, r.ID}, r.Note)
		}
		return nil
	})
	g.Go(func() error {
		for _, r := range db.Enemies {
			trait(RecordRef{KindEnemy, r.ID}, r.Note)
		}
		for _, r := range db.States {
			trait(RecordRef{KindState, r.ID}, r.Note)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Info("annotations parsed", "records", table.Len())
	return table, nil
}
