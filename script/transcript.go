package script

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/sll-cli/sll/color"
	"github.com/sll-cli/sll/icon"
	"github.com/sll-cli/sll/style"
)

// Step is the recorded outcome of one op.
type Step struct {
	Op  string `json:"op" jsonschema:"description=Name of the executed op."`
	Arg string `json:"arg,omitempty" jsonschema:"description=Argument given to the op when it takes one."`
	// Present is false when the op found the list empty (pop, peek, set) or matched nothing (find).
	Present bool   `json:"present" jsonschema:"description=False when the op observed an empty list or found no match."`
	Value   string `json:"value,omitempty" jsonschema:"description=Value returned by pop or peek or written by set or counted by len."`
	// Values holds every element produced by iter, iter-mut, drain or find, in yield order.
	Values []string `json:"values,omitempty" jsonschema:"description=Elements produced by iter or iter-mut or drain or find in yield order."`
	List   []string `json:"list" jsonschema:"description=Contents of the list after the op with the head first."`

	chain string
}

// Transcript is the full record of a script run.
type Transcript struct {
	Name  string   `json:"name" jsonschema:"description=Name of the script: a file stem or args or stdin or a scenario name."`
	Steps []*Step  `json:"steps" jsonschema:"description=One entry per executed op."`
	Final []string `json:"final" jsonschema:"description=Contents of the list when the script ended with the head first."`
}

// Result summarizes what the op returned, as shown in text output.
func (s *Step) Result() string {
	switch s.Op {
	case OpPop, OpPeek, OpSet:
		if !s.Present {
			return "none"
		}
		return s.Value
	case OpLen:
		return s.Value
	case OpIter, OpIterMut, OpDrain, OpFind:
		if len(s.Values) == 0 {
			return "none"
		}
		return strings.Join(s.Values, " ")
	default:
		return ""
	}
}

func (s *Step) icon() string {
	switch {
	case !s.Present:
		return icon.Get(icon.Empty)
	case s.Op == OpPush:
		return icon.Get(icon.Push)
	case s.Op == OpPop || s.Op == OpDrain || s.Op == OpDrop:
		return icon.Get(icon.Pop)
	default:
		return icon.Get(icon.Peek)
	}
}

// WriteText prints one line per step followed by the list it left behind.
func (t *Transcript) WriteText(w io.Writer) error {
	for _, s := range t.Steps {
		if err := s.WriteText(w); err != nil {
			return err
		}
	}
	return nil
}

// WriteText prints the op with its result, then the chain it left behind.
func (s *Step) WriteText(w io.Writer) error {
	opStyle := style.New().Bold(true).Foreground(color.Purple).Render

	line := fmt.Sprintf("%s %s", s.icon(), opStyle(fmt.Sprintf("%-14s", s.Op+" "+s.Arg)))
	if res := s.Result(); res != "" {
		line += " " + style.Faint("=>") + " " + style.Fg(color.Yellow)(res)
	}

	_, err := fmt.Fprintf(w, "%s\n  %s\n", line, s.chain)
	return err
}

// WriteJSON encodes the transcript.
func (t *Transcript) WriteJSON(w io.Writer) error {
	return json.NewEncoder(w).Encode(t)
}

// Schema returns the JSON schema of Transcript.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		name := t.Name()
		switch name {
		case "Step", "Transcript":
			return filepath.Base(t.PkgPath()) + "." + name
		}

		return name
	}

	return reflector.Reflect(&Transcript{})
}
