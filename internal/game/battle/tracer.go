package battle

import "log/slog"

// Category names one diagnostic trace channel.
type Category string

const (
	CategoryNone     Category = "none"
	CategoryAll      Category = "all"
	CategoryDamage   Category = "damage"
	CategoryHit      Category = "hit"
	CategoryEvasion  Category = "evasion"
	CategoryCritical Category = "critical"
	CategoryLuck     Category = "luck"
)

// Tracer is the category-filtered diagnostic side channel. It never
// affects control flow: every stage computes the same values whether or
// not its category is enabled.
//
// "none" anywhere in the list suppresses all trace output regardless of
// what else is listed; "all" enables everything; otherwise only the named
// categories emit.
type Tracer struct {
	log     *slog.Logger
	all     bool
	enabled map[Category]bool
}

// NewTracer builds a tracer over a logger. A nil logger means
// slog.Default. Unrecognized category names are reported once and ignored.
func NewTracer(log *slog.Logger, categories []string) *Tracer {
	if log == nil {
		log = slog.Default()
	}
	t := &Tracer{log: log, enabled: make(map[Category]bool)}

	none := false
	for _, name := range categories {
		switch c := Category(name); c {
		case CategoryNone:
			none = true
		case CategoryAll:
			t.all = true
		case CategoryDamage, CategoryHit, CategoryEvasion, CategoryCritical, CategoryLuck:
			t.enabled[c] = true
		default:
			log.Warn("unrecognized log category", "category", name)
		}
	}
	if none {
		t.all = false
		t.enabled = make(map[Category]bool)
	}
	return t
}

// On reports whether a category emits.
func (t *Tracer) On(c Category) bool {
	if t == nil {
		return false
	}
	return t.all || t.enabled[c]
}

// Trace emits one diagnostic line if the category is enabled.
func (t *Tracer) Trace(c Category, msg string, args ...any) {
	if !t.On(c) {
		return
	}
	t.log.Info(msg, append([]any{"category", string(c)}, args...)...)
}

// Fail reports a recovered evaluation failure. Failures always log,
// independent of category filtering: they are errors, not traces.
func (t *Tracer) Fail(c Category, err error) {
	log := slog.Default()
	if t != nil {
		log = t.log
	}
	log.Error("formula evaluation failed", "category", string(c), "err", err)
}
