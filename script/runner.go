package script

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/sll-cli/sll/list"
	"github.com/sll-cli/sll/log"
	"github.com/sll-cli/sll/render"
	"github.com/sll-cli/sll/util"
	"golang.org/x/exp/slices"
)

// ErrUnknownTransform is returned by iter-mut for an unsupported transform name.
var ErrUnknownTransform = errors.New("unknown transform")

// transforms are the in-place edits iter-mut can apply.
var transforms = map[string]func(string) string{
	"upper":      strings.ToUpper,
	"lower":      strings.ToLower,
	"capitalize": util.Capitalize,
	"reverse": func(s string) string {
		r := []rune(s)
		for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
			r[i], r[j] = r[j], r[i]
		}
		return string(r)
	},
}

// Transforms returns the names accepted by iter-mut.
func Transforms() []string {
	return sortedKeys(transforms)
}

// Runner executes ops against a list of strings it owns.
type Runner struct {
	list *list.List[string]

	// Width wraps rendered chains; zero disables wrapping.
	Width int
}

// NewRunner returns a runner over an empty list.
func NewRunner() *Runner {
	return &Runner{list: list.New[string]()}
}

// List exposes the list the runner operates on.
func (r *Runner) List() *list.List[string] {
	return r.list
}

// Exec runs a single op and records its outcome.
func (r *Runner) Exec(op Op) (*Step, error) {
	step := &Step{Op: op.Name, Arg: op.Arg, Present: true}

	switch op.Name {
	case OpPush:
		r.list.Push(op.Arg)
	case OpPop:
		step.setOption(r.list.Pop().Get())
	case OpPeek:
		step.setOption(r.list.Peek().Get())
	case OpSet:
		p, ok := r.list.PeekMut().Get()
		if ok {
			*p = op.Arg
			step.Value = op.Arg
		}
		step.Present = ok
	case OpIter:
		step.Values = collect(r.list.Iter().Next)
		step.Present = len(step.Values) > 0
	case OpIterMut:
		fn, ok := transforms[op.Arg]
		if !ok {
			return nil, fmt.Errorf("line %d: %w %q (available: %s)", op.Line, ErrUnknownTransform, op.Arg, strings.Join(Transforms(), ", "))
		}
		it := r.list.IterMut()
		for p, ok := it.Next().Get(); ok; p, ok = it.Next().Get() {
			*p = fn(*p)
			step.Values = append(step.Values, *p)
		}
		step.Present = len(step.Values) > 0
	case OpDrain:
		step.Values = collect(r.list.IntoIter().Next)
		step.Present = len(step.Values) > 0
	case OpFind:
		for v := range r.list.All() {
			if fuzzy.MatchFold(op.Arg, v) {
				step.Values = append(step.Values, v)
			}
		}
		step.Present = len(step.Values) > 0
	case OpLen:
		step.Value = strconv.Itoa(r.list.Len())
	case OpDrop:
		r.list.Drop()
	default:
		return nil, unknownOp(op.Name, op.Line)
	}

	step.List = collect(r.list.Iter().Next)
	step.chain = render.Chain(r.list, r.Width)

	log.With(log.Fields{
		"op":      op.Name,
		"arg":     op.Arg,
		"present": step.Present,
		"len":     r.list.Len(),
	}).Debug("executed op")

	return step, nil
}

// Run executes ops in order and returns the transcript. Execution stops at
// the first failing op; the transcript holds every step that completed.
func (r *Runner) Run(name string, ops []Op) (*Transcript, error) {
	t := &Transcript{Name: name, Steps: make([]*Step, 0, len(ops))}

	for _, op := range ops {
		step, err := r.Exec(op)
		if err != nil {
			t.Final = collect(r.list.Iter().Next)
			return t, err
		}
		t.Steps = append(t.Steps, step)
	}

	t.Final = collect(r.list.Iter().Next)
	log.Infof("script %q: %s, %s left", name, util.Quantify(len(t.Steps), "op", "ops"), util.Quantify(len(t.Final), "value", "values"))
	return t, nil
}

func (s *Step) setOption(v string, ok bool) {
	s.Value = v
	s.Present = ok
}

// collect drains a Next-style cursor into a slice.
func collect[T any](next func() mo.Option[T]) []T {
	values := make([]T, 0)
	for {
		v, ok := next().Get()
		if !ok {
			return values
		}
		values = append(values, v)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}
