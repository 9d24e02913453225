package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/samber/lo"
	"github.com/sll-cli/sll/icon"
	"github.com/sll-cli/sll/log"
	"github.com/sll-cli/sll/script"
	"github.com/sll-cli/sll/style"
	"github.com/sll-cli/sll/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.SetOut(os.Stdout)
}

// suggestOps completes the op name being typed.
func suggestOps(toComplete string) []string {
	return lo.Filter(script.Names(), func(name string, _ int) bool {
		return strings.HasPrefix(name, strings.ToLower(toComplete))
	})
}

// replCmd reads ops one at a time and runs them against the same list.
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Type ops one at a time against a single list",
	Long:  "Type ops one at a time against a single list. Enter an empty line, 'quit' or press ctrl+c to leave.",
	Run: func(cmd *cobra.Command, args []string) {
		runner := script.NewRunner()
		runner.Width = util.TerminalWidth(80)

		for n := 1; ; n++ {
			var line string
			err := survey.AskOne(&survey.Input{
				Message: "op",
				Suggest: suggestOps,
			}, &line)

			if errors.Is(err, terminal.InterruptErr) {
				return
			}
			handleErr(err)

			line = strings.TrimSpace(line)
			if line == "" || line == "quit" || line == "exit" {
				return
			}

			op, ok, err := script.ParseLine(line, n)
			if err != nil {
				log.Warn(err)
				cmd.Println(icon.Get(icon.Fail), style.Faint(err.Error()))
				continue
			}
			if !ok {
				continue
			}

			step, err := runner.Exec(op)
			if err != nil {
				log.Warn(err)
				cmd.Println(icon.Get(icon.Fail), style.Faint(err.Error()))
				continue
			}
			handleErr(step.WriteText(cmd.OutOrStdout()))
		}
	},
}
