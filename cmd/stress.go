package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/sll-cli/sll/color"
	"github.com/sll-cli/sll/icon"
	"github.com/sll-cli/sll/key"
	"github.com/sll-cli/sll/stress"
	"github.com/sll-cli/sll/style"
	"github.com/sll-cli/sll/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(stressCmd)

	stressCmd.Flags().IntP("count", "n", 0, "Number of nodes to build and tear down")
	lo.Must0(viper.BindPFlag(key.StressCount, stressCmd.Flags().Lookup("count")))
	stressCmd.Flags().BoolP("json", "j", false, "Format the result as a JSON object")
}

// stressCmd builds a very long list and releases it with the iterative teardown.
var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Build a very long list and tear it down",
	Run: func(cmd *cobra.Command, args []string) {
		count := viper.GetInt(key.StressCount)
		asJson := lo.Must(cmd.Flags().GetBool("json"))

		var erase func()
		progress := func(stage string) {
			if asJson {
				return
			}
			if erase != nil {
				erase()
			}
			erase = util.PrintErasable(fmt.Sprintf("%s %s done", icon.Get(icon.Progress), stage))
		}

		res, err := stress.Run(count, progress)
		if erase != nil {
			erase()
		}
		handleErr(err)

		if asJson {
			handleErr(json.NewEncoder(os.Stdout).Encode(res))
			return
		}

		fmt.Printf(
			"%s %s built in %s, dropped in %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Bold(util.Quantify(res.Count, "node", "nodes")),
			style.Fg(color.Yellow)(res.Build.String()),
			style.Fg(color.Yellow)(res.Teardown.String()),
		)
	},
}
