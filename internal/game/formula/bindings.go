package formula

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/data"
	"github.com/TyruswooStudio/Tyruswoo-BattleMechanics-MZ/internal/model"
)

// Bindings is the fixed variable set a formula evaluates against:
// a/subject, b/target, action, v. Stage-specific scalars (damage, power,
// resist, hitMod, critMod, critBoost) ride in Extra. Rebuilt per call and
// never mutated by the evaluator.
type Bindings struct {
	Subject model.Battler
	Target  model.Battler
	Action  *model.Action
	Vars    *model.Variables
	Extra   map[string]float64
}

// stageGlobals are the per-stage scalar names. Cleared before every
// evaluation so one stage's bindings never leak into the next.
var stageGlobals = []string{"damage", "power", "resist", "hitMod", "critMod", "critBoost"}

// install publishes the bindings as Lua globals.
func (b Bindings) install(L *lua.LState) {
	for _, name := range stageGlobals {
		L.SetGlobal(name, lua.LNil)
	}

	subj := battlerTable(L, b.Subject)
	L.SetGlobal("a", subj)
	L.SetGlobal("subject", subj)

	tgt := battlerTable(L, b.Target)
	L.SetGlobal("b", tgt)
	L.SetGlobal("target", tgt)

	L.SetGlobal("action", actionTable(L, b.Action))
	L.SetGlobal("v", variablesTable(L, b.Vars))

	for name, value := range b.Extra {
		L.SetGlobal(name, lua.LNumber(value))
	}
}

// battlerTable snapshots a battler's params and rates into a plain table.
func battlerTable(L *lua.LState, b model.Battler) lua.LValue {
	if b == nil {
		return lua.LNil
	}
	t := L.NewTable()
	for p := data.ParamID(0); p < data.ParamCount; p++ {
		L.SetField(t, p.String(), lua.LNumber(b.Param(p)))
	}
	ex := b.Ex()
	L.SetField(t, "level", lua.LNumber(b.Level()))
	L.SetField(t, "hit", lua.LNumber(ex.Hit))
	L.SetField(t, "eva", lua.LNumber(ex.Evasion))
	L.SetField(t, "mev", lua.LNumber(ex.MagicEvasion))
	L.SetField(t, "cri", lua.LNumber(ex.CritRate))
	L.SetField(t, "cev", lua.LNumber(ex.CritEvasion))
	return t
}

// actionTable exposes the used record's identity and scalar fields.
func actionTable(L *lua.LState, a *model.Action) lua.LValue {
	if a == nil {
		return lua.LNil
	}
	t := L.NewTable()
	L.SetField(t, "id", lua.LNumber(a.Ref().ID))
	L.SetField(t, "name", lua.LString(a.Usable.RecordName()))
	L.SetField(t, "successRate", lua.LNumber(a.SuccessRate()))
	L.SetField(t, "element", lua.LNumber(a.ElementID()))
	L.SetField(t, "variance", lua.LNumber(a.Variance()))
	return t
}

// variablesTable exposes the host variable store as a read-through table:
// v[n] reads the store at call time, unset indices read 0.
func variablesTable(L *lua.LState, vars *model.Variables) lua.LValue {
	t := L.NewTable()
	mt := L.NewTable()
	L.SetField(mt, "__index", L.NewFunction(func(L *lua.LState) int {
		index := L.CheckInt(2)
		L.Push(lua.LNumber(vars.Get(index)))
		return 1
	}))
	L.SetMetatable(t, mt)
	return t
}
