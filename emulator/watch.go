package emulator

import (
	"fmt"
	"iter"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/bytevm/vm"
)

const (
	WATCH_STEP_LIMIT = 100_000 // Starlark execution steps allowed per evaluation.
)

// Watch is a Starlark boolean expression evaluated against machine state.
//
// The expression sees the instruction pointer as 'ip', registers r0 through
// r6 as 'r0'..'r6', memory as the 256 element tuple 'mem', and every integer
// define by name. For example:
//
//	ip == 0x28 or mem[15] == MOVE
type Watch struct {
	Expr string

	prog    *starlark.Program
	defines starlark.StringDict
}

// watchNames are the machine state names visible to a watch expression.
func watchNames() (names []string) {
	names = []string{"ip", "mem"}
	for n := range vm.REGISTER_LIMIT {
		names = append(names, fmt.Sprintf("r%d", n))
	}
	return
}

// NewWatch compiles a watch expression. Defines with non-integer values are
// ignored.
func NewWatch(expr string, defines iter.Seq2[string, string]) (w *Watch, err error) {
	w = &Watch{
		Expr:    expr,
		defines: starlark.StringDict{},
	}

	for key, str := range defines {
		value, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			continue
		}
		w.defines[key] = starlark.MakeInt64(value)
	}

	state := map[string]bool{}
	for _, name := range watchNames() {
		state[name] = true
	}

	opts := syntax.FileOptions{}
	src := "rc = (" + expr + ")\n"
	_, w.prog, err = starlark.SourceProgramOptions(&opts, "watch", src, func(name string) bool {
		_, ok := w.defines[name]
		return ok || state[name]
	})
	if err != nil {
		err = &ErrWatch{Expr: expr, Err: err}
		w = nil
		return
	}

	return
}

// Eval returns the value of the watch expression for the machine state.
func (w *Watch) Eval(m *vm.Machine) (hit bool, err error) {
	pred := make(starlark.StringDict, len(w.defines)+vm.REGISTER_LIMIT+2)
	for key, value := range w.defines {
		pred[key] = value
	}

	pred["ip"] = starlark.MakeInt(int(m.Ip))
	for n := range vm.REGISTER_LIMIT {
		pred[fmt.Sprintf("r%d", n)] = starlark.MakeInt(int(m.Register[n]))
	}
	mem := make(starlark.Tuple, len(m.Memory))
	for n, value := range m.Memory {
		mem[n] = starlark.MakeInt(int(value))
	}
	pred["mem"] = mem

	thread := &starlark.Thread{Name: "watch"}
	thread.SetMaxExecutionSteps(WATCH_STEP_LIMIT)

	globals, err := w.prog.Init(thread, pred)
	if err != nil {
		err = &ErrWatch{Expr: w.Expr, Err: err}
		return
	}

	rc, ok := globals["rc"].(starlark.Bool)
	if !ok {
		err = &ErrWatch{Expr: w.Expr, Err: ErrWatchResult}
		return
	}

	hit = bool(rc)
	return
}
