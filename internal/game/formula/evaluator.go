package formula

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// Evaluator runs user-authored formula strings as Lua expressions inside a
// sandboxed state: only the base and math libraries are open, and the
// file-touching base functions are removed. Each distinct formula text is
// compiled once and the chunk cached.
//
// One Evaluator owns one Lua state and is single-goroutine, matching the
// synchronous turn-resolution loop it is called from.
type Evaluator struct {
	state   *lua.LState
	chunks  map[string]*lua.FunctionProto
	timeout time.Duration
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithTimeout bounds each evaluation. Formulas are end-user text; a
// budget keeps a pathological one (e.g. an accidental loop via a crafted
// expression) from stalling the turn. Zero means no budget.
func WithTimeout(d time.Duration) Option {
	return func(e *Evaluator) { e.timeout = d }
}

// New creates a sandboxed evaluator.
func New(opts ...Option) *Evaluator {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(lib.open))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	// Base opens a few escape hatches we don't want formulas to have.
	for _, name := range []string{"dofile", "loadfile", "load", "print"} {
		L.SetGlobal(name, lua.LNil)
	}

	e := &Evaluator{state: L, chunks: make(map[string]*lua.FunctionProto)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Close releases the Lua state.
func (e *Evaluator) Close() {
	e.state.Close()
}

// Eval evaluates one formula text against the bindings and returns its
// numeric result. Blank text is ErrMissingFormula; a compile/runtime
// failure or a non-finite result is an *EvalError for the caller's
// recovery policy. Side-effect-free: bindings are reinstalled from
// scratch on every call.
func (e *Evaluator) Eval(text string, binds Bindings) (float64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, ErrMissingFormula
	}

	proto, ok := e.chunks[text]
	if !ok {
		fn, err := e.state.LoadString("return " + text)
		if err != nil {
			return 0, &EvalError{Formula: text, Kind: KindRaised, Err: err}
		}
		proto = fn.Proto
		e.chunks[text] = proto
	}

	binds.install(e.state)

	if e.timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
		e.state.SetContext(ctx)
		defer func() {
			cancel()
			e.state.RemoveContext()
		}()
	}

	e.state.Push(e.state.NewFunctionFromProto(proto))
	if err := e.state.PCall(0, 1, nil); err != nil {
		return 0, &EvalError{Formula: text, Kind: KindRaised, Err: err}
	}
	ret := e.state.Get(-1)
	e.state.Pop(1)

	n, ok := ret.(lua.LNumber)
	if !ok {
		return 0, &EvalError{
			Formula: text,
			Kind:    KindNonFinite,
			Err:     fmt.Errorf("result is %s, not a number", ret.Type()),
		}
	}
	value := float64(n)
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, &EvalError{Formula: text, Kind: KindNonFinite}
	}
	return value, nil
}
