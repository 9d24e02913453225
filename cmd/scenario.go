package cmd

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/sll-cli/sll/script"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scenarioCmd)

	scenarioCmd.Flags().BoolP("json", "j", false, "Format the transcript as a JSON object")
	scenarioCmd.Flags().StringP("output", "o", "", "Write the transcript to a file")
	scenarioCmd.Flags().BoolP("list", "l", false, "List the builtin scenarios")
	scenarioCmd.SetOut(os.Stdout)
}

// scenarioCmd replays a builtin script.
var scenarioCmd = &cobra.Command{
	Use:       "scenario [name]",
	Short:     "Replay a builtin scenario step by step",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: script.ScenarioNames(),
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("list")) {
			for _, name := range script.ScenarioNames() {
				cmd.Println(name)
			}
			return
		}

		name := "basic"
		if len(args) > 0 {
			name = args[0]
		}

		ops, ok := script.Scenario(name)
		if !ok {
			handleErr(fmt.Errorf("unknown scenario %q (available: %v)", name, script.ScenarioNames()))
		}

		runScript(cmd, name, ops)
	},
}
