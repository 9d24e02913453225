// Package script parses and runs list op scripts.
//
// A script is a sequence of ops, one per line:
//
//	push 1
//	push 2
//	pop
//	set 42     # overwrite the head in place
//	iter-mut upper
//
// Blank lines and text after '#' are ignored.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/sll-cli/sll/key"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Op names understood by the runner.
const (
	OpPush    = "push"
	OpPop     = "pop"
	OpPeek    = "peek"
	OpSet     = "set"
	OpIter    = "iter"
	OpIterMut = "iter-mut"
	OpDrain   = "drain"
	OpFind    = "find"
	OpLen     = "len"
	OpDrop    = "drop"
)

// arity tells whether an op takes an argument.
var arity = map[string]bool{
	OpPush:    true,
	OpPop:     false,
	OpPeek:    false,
	OpSet:     true,
	OpIter:    false,
	OpIterMut: true,
	OpDrain:   false,
	OpFind:    true,
	OpLen:     false,
	OpDrop:    false,
}

var (
	ErrUnknownOp   = errors.New("unknown op")
	ErrMissingArg  = errors.New("missing argument")
	ErrUnexpectArg = errors.New("unexpected argument")
)

// Op is a single parsed instruction.
type Op struct {
	Name string
	Arg  string
	Line int
}

func (o Op) String() string {
	if o.Arg == "" {
		return o.Name
	}
	return o.Name + " " + o.Arg
}

// Names returns every known op name, sorted.
func Names() []string {
	names := lo.Keys(arity)
	slices.Sort(names)
	return names
}

// ParseLine parses one line. ok is false for blank or comment-only lines.
func ParseLine(line string, n int) (op Op, ok bool, err error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return Op{}, false, nil
	}

	name, arg := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		name, arg = line[:i], strings.TrimSpace(line[i:])
	}
	name = strings.ToLower(name)

	takesArg, known := arity[name]
	switch {
	case !known:
		return Op{}, false, unknownOp(name, n)
	case takesArg && arg == "":
		return Op{}, false, fmt.Errorf("line %d: %s: %w", n, name, ErrMissingArg)
	case !takesArg && arg != "":
		return Op{}, false, fmt.Errorf("line %d: %s: %w %q", n, name, ErrUnexpectArg, arg)
	}

	return Op{Name: name, Arg: arg, Line: n}, true, nil
}

// Parse reads a script, one op per line.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op

	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		op, ok, err := ParseLine(scanner.Text(), n)
		if err != nil {
			return nil, err
		}
		if ok {
			ops = append(ops, op)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}

	return ops, nil
}

// ParseArgs treats each argument as one line of a script.
func ParseArgs(args []string) ([]Op, error) {
	return Parse(strings.NewReader(strings.Join(args, "\n")))
}

// Closest returns the known op name nearest to name by edit distance.
func Closest(name string) string {
	return lo.MinBy(Names(), func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
}

func unknownOp(name string, n int) error {
	if viper.GetBool(key.ExecSuggestOps) {
		return fmt.Errorf("line %d: %w %q, did you mean %q?", n, ErrUnknownOp, name, Closest(name))
	}
	return fmt.Errorf("line %d: %w %q", n, ErrUnknownOp, name)
}
