package script

import "strings"

// scenario exercises the LIFO law: pops return pushes in reverse order and
// an empty list pops nothing.
const scenario = `
pop
push 1
push 2
push 3
push 4
pop     # 4
pop     # 3
push 9
pop     # 9
pop     # 2
pop     # 1
pop     # empty
`

// peekScenario shows that peeking never consumes and that writes through
// the head reference are seen by the next pop.
const peekScenario = `
peek
set 7
push 1
push 2
push 3
peek    # 3
set 42
peek    # 42
pop     # 42
iter    # 2 1
`

// Scenarios maps scenario names to their scripts.
var Scenarios = map[string]string{
	"basic": scenario,
	"peek":  peekScenario,
}

// Scenario returns the ops of a named scenario.
func Scenario(name string) ([]Op, bool) {
	src, ok := Scenarios[name]
	if !ok {
		return nil, false
	}

	ops, err := Parse(strings.NewReader(src))
	if err != nil {
		panic("invalid builtin scenario " + name + ": " + err.Error())
	}
	return ops, true
}

// ScenarioNames returns the builtin scenario names, sorted.
func ScenarioNames() []string {
	return sortedKeys(Scenarios)
}
