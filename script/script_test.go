package script

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/sll-cli/sll/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	viper.Set(key.ExecSuggestOps, true)
	viper.Set(key.RenderLimit, 32)
}

func mustRun(src string) *Transcript {
	ops := lo.Must(Parse(strings.NewReader(src)))
	return lo.Must(NewRunner().Run("test", ops))
}

func TestParseLine(t *testing.T) {
	Convey("ParseLine", t, func() {
		Convey("Skips blanks and comments", func() {
			_, ok, err := ParseLine("   # nothing here", 1)
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
		})

		Convey("Parses an op with an argument", func() {
			op, ok, err := ParseLine("  PUSH  hello world  # trailing", 3)
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(op, ShouldResemble, Op{Name: OpPush, Arg: "hello world", Line: 3})
			So(op.String(), ShouldEqual, "push hello world")
		})

		Convey("Splits the op from its argument on any whitespace", func() {
			op, ok, err := ParseLine("push\t1", 1)
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(op, ShouldResemble, Op{Name: OpPush, Arg: "1", Line: 1})

			op, ok, err = ParseLine("push \t two words", 2)
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(op.Arg, ShouldEqual, "two words")

			op, ok, err = ParseLine("pop\t", 3)
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(op.Name, ShouldEqual, OpPop)
		})

		Convey("Suggests the closest op for a typo", func() {
			_, _, err := ParseLine("pusj 1", 2)
			So(errors.Is(err, ErrUnknownOp), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, `did you mean "push"`)
			So(err.Error(), ShouldStartWith, "line 2:")
		})

		Convey("Omits the suggestion when disabled", func() {
			viper.Set(key.ExecSuggestOps, false)
			defer viper.Set(key.ExecSuggestOps, true)

			_, _, err := ParseLine("peak", 1)
			So(errors.Is(err, ErrUnknownOp), ShouldBeTrue)
			So(err.Error(), ShouldNotContainSubstring, "did you mean")
		})

		Convey("Rejects a missing argument", func() {
			_, _, err := ParseLine("push", 1)
			So(errors.Is(err, ErrMissingArg), ShouldBeTrue)
		})

		Convey("Rejects an unexpected argument", func() {
			_, _, err := ParseLine("pop 3", 1)
			So(errors.Is(err, ErrUnexpectArg), ShouldBeTrue)
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Parse keeps line numbers", t, func() {
		ops, err := Parse(strings.NewReader("push a\n\n# c\npop\n"))
		So(err, ShouldBeNil)
		So(ops, ShouldHaveLength, 2)
		So(ops[1].Line, ShouldEqual, 4)
	})

	Convey("ParseArgs treats each argument as a line", t, func() {
		ops, err := ParseArgs([]string{"push a", "push b", "len"})
		So(err, ShouldBeNil)
		So(lo.Map(ops, func(o Op, _ int) string { return o.Name }), ShouldResemble, []string{OpPush, OpPush, OpLen})
	})

	Convey("Names is sorted and complete", t, func() {
		names := Names()
		So(names, ShouldHaveLength, len(arity))
		So(names[0], ShouldEqual, OpDrain)
	})
}

func TestScenarios(t *testing.T) {
	Convey("The basic scenario follows the LIFO law", t, func() {
		ops, ok := Scenario("basic")
		So(ok, ShouldBeTrue)

		tr, err := NewRunner().Run("basic", ops)
		So(err, ShouldBeNil)

		pops := lo.Filter(tr.Steps, func(s *Step, _ int) bool { return s.Op == OpPop })
		So(lo.Map(pops, func(s *Step, _ int) string { return s.Result() }), ShouldResemble,
			[]string{"none", "4", "3", "9", "2", "1", "none"})
		So(tr.Final, ShouldBeEmpty)
	})

	Convey("The peek scenario never consumes", t, func() {
		ops, _ := Scenario("peek")
		tr, err := NewRunner().Run("peek", ops)
		So(err, ShouldBeNil)

		So(tr.Steps[0].Present, ShouldBeFalse)
		So(tr.Steps[1].Present, ShouldBeFalse)
		So(tr.Steps[5].Value, ShouldEqual, "3")
		So(tr.Steps[5].List, ShouldResemble, []string{"3", "2", "1"})
		So(tr.Steps[7].Value, ShouldEqual, "42")
		So(tr.Steps[8].Value, ShouldEqual, "42")
		So(tr.Steps[9].Values, ShouldResemble, []string{"2", "1"})
		So(tr.Final, ShouldResemble, []string{"2", "1"})
	})

	Convey("Walking an empty list reports nothing present", t, func() {
		tr := mustRun("iter\niter-mut upper\ndrain\nfind x")
		for _, s := range tr.Steps {
			So(s.Present, ShouldBeFalse)
			So(s.Result(), ShouldEqual, "none")
		}
	})

	Convey("Unknown scenarios are reported", t, func() {
		_, ok := Scenario("nope")
		So(ok, ShouldBeFalse)
		So(ScenarioNames(), ShouldResemble, []string{"basic", "peek"})
	})
}

func TestRunner(t *testing.T) {
	Convey("Given a list of a, b, c", t, func() {
		base := "push a\npush bob\npush carol\n"

		Convey("iter yields head first without consuming", func() {
			tr := mustRun(base + "iter")
			So(tr.Steps[3].Values, ShouldResemble, []string{"carol", "bob", "a"})
			So(tr.Final, ShouldHaveLength, 3)
		})

		Convey("iter-mut rewrites every element in place", func() {
			tr := mustRun(base + "iter-mut upper\npeek")
			So(tr.Steps[3].Values, ShouldResemble, []string{"CAROL", "BOB", "A"})
			So(tr.Steps[4].Value, ShouldEqual, "CAROL")
			So(tr.Final, ShouldResemble, []string{"CAROL", "BOB", "A"})
		})

		Convey("iter-mut rejects unknown transforms", func() {
			ops := lo.Must(Parse(strings.NewReader(base + "iter-mut shout\npop")))
			tr, err := NewRunner().Run("test", ops)
			So(errors.Is(err, ErrUnknownTransform), ShouldBeTrue)
			So(tr.Steps, ShouldHaveLength, 3)
			So(tr.Final, ShouldResemble, []string{"carol", "bob", "a"})
		})

		Convey("drain empties the list", func() {
			tr := mustRun(base + "drain\nlen\npop")
			So(tr.Steps[3].Values, ShouldResemble, []string{"carol", "bob", "a"})
			So(tr.Steps[4].Value, ShouldEqual, "0")
			So(tr.Steps[5].Present, ShouldBeFalse)
		})

		Convey("find matches fuzzily", func() {
			tr := mustRun(base + "find cl\nfind zz")
			So(tr.Steps[3].Values, ShouldResemble, []string{"carol"})
			So(tr.Steps[4].Present, ShouldBeFalse)
			So(tr.Steps[4].Result(), ShouldEqual, "none")
		})

		Convey("drop releases everything", func() {
			tr := mustRun(base + "drop\nlen")
			So(tr.Steps[4].Value, ShouldEqual, "0")
			So(tr.Final, ShouldBeEmpty)
		})
	})
}

func TestOutput(t *testing.T) {
	Convey("Given a transcript", t, func() {
		tr := mustRun("push 1\npush 2\npop")

		Convey("WriteText prints each op and the chain", func() {
			var buf bytes.Buffer
			So(tr.WriteText(&buf), ShouldBeNil)

			out := buf.String()
			So(out, ShouldContainSubstring, "push 1")
			So(out, ShouldContainSubstring, "[2] -> [1] -> nil")
			So(strings.Count(out, "\n"), ShouldEqual, 6)
		})

		Convey("WriteJSON encodes every step", func() {
			var buf bytes.Buffer
			So(tr.WriteJSON(&buf), ShouldBeNil)

			var decoded Transcript
			So(json.Unmarshal(buf.Bytes(), &decoded), ShouldBeNil)
			So(decoded.Steps, ShouldHaveLength, 3)
			So(decoded.Steps[2].Value, ShouldEqual, "2")
			So(decoded.Final, ShouldResemble, []string{"1"})
		})

		Convey("Schema describes the transcript", func() {
			schema := Schema()
			So(schema.Definitions, ShouldContainKey, "script.Step")
			So(schema.Definitions, ShouldContainKey, "script.Transcript")
			So(schema.Definitions, ShouldNotContainKey, "script.")
			So(schema.Definitions, ShouldHaveLength, 2)

			steps, ok := schema.Definitions["script.Transcript"].Properties.Get("steps")
			So(ok, ShouldBeTrue)
			So(steps.Type, ShouldEqual, "array")
			So(steps.Items.Ref, ShouldEqual, "#/$defs/script.Step")

			list, ok := schema.Definitions["script.Step"].Properties.Get("list")
			So(ok, ShouldBeTrue)
			So(list.Items.Type, ShouldEqual, "string")
		})
	})
}
