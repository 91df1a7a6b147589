package model

import "github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/data"

// Action is one attempted use of a skill or item by a subject. The target
// is bound per evaluation by the battle core; an Action owns nothing and
// is discarded after resolution.
type Action struct {
	Subject Battler
	Usable  data.Usable
}

// NewAction binds a subject to the skill or item it is using.
func NewAction(subject Battler, usable data.Usable) *Action {
	return &Action{Subject: subject, Usable: usable}
}

// CertainHit reports whether the action bypasses hit and evasion checks.
func (a *Action) CertainHit() bool { return a.Usable.HitType() == data.HitCertain }

// Physical reports whether accuracy resolves by the physical formulas.
func (a *Action) Physical() bool { return a.Usable.HitType() == data.HitPhysical }

// Magical reports whether accuracy resolves by the magical formulas.
func (a *Action) Magical() bool { return a.Usable.HitType() == data.HitMagical }

// SuccessRate is the record's raw success rate as a fraction.
func (a *Action) SuccessRate() float64 { return a.Usable.SuccessRate() }

// DamageKind is the record's damage classification.
func (a *Action) DamageKind() data.DamageKind { return a.Usable.DamageSpec().Kind }

// ElementID is the record's damage element.
func (a *Action) ElementID() int { return a.Usable.DamageSpec().ElementID }

// Formula is the record's base damage formula text.
func (a *Action) Formula() string { return a.Usable.DamageSpec().Formula }

// Variance is the record's damage variance in percent.
func (a *Action) Variance() int { return a.Usable.DamageSpec().Variance }

// AllowsCritical reports whether the record can critically hit.
func (a *Action) AllowsCritical() bool { return a.Usable.DamageSpec().Critical }

// Ref identifies the used record in the annotation side-table.
func (a *Action) Ref() data.RecordRef { return a.Usable.RecordRef() }
