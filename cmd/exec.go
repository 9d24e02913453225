package cmd

import (
	"encoding/json"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/sll-cli/sll/filesystem"
	"github.com/sll-cli/sll/script"
	"github.com/sll-cli/sll/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(execCmd)

	execCmd.Flags().StringP("file", "f", "", "Read the script from a file instead of arguments or stdin")
	execCmd.Flags().BoolP("json", "j", false, "Format the transcript as a JSON object")
	execCmd.Flags().StringP("output", "o", "", "Write the transcript to a file")
	lo.Must0(execCmd.MarkFlagFilename("file"))
}

// runScript executes ops and writes the transcript. Steps completed before
// a failing op are still written.
func runScript(cmd *cobra.Command, name string, ops []script.Op) {
	output := lo.Must(cmd.Flags().GetString("output"))
	asJson := lo.Must(cmd.Flags().GetBool("json"))

	var (
		writer io.Writer = os.Stdout
		width            = util.TerminalWidth(80)
	)
	if output != "" {
		f, err := filesystem.API().Create(output)
		handleErr(err)
		defer f.Close()

		writer = f
		width = 0
	}

	runner := script.NewRunner()
	runner.Width = width

	transcript, runErr := runner.Run(name, ops)

	if asJson {
		handleErr(transcript.WriteJSON(writer))
	} else {
		handleErr(transcript.WriteText(writer))
	}
	handleErr(runErr)
}

// execCmd runs an op script against a fresh list.
var execCmd = &cobra.Command{
	Use:   "exec [ops...]",
	Short: "Run an op script against a fresh list",
	Long: `Run an op script against a fresh list and print what every op did.

Each argument is one op. Without arguments the script is read from --file or stdin,
one op per line; blank lines and text after '#' are ignored.

Ops:
  push <value>      push a value
  pop               pop the head
  peek              show the head
  set <value>       overwrite the head in place
  iter              walk the list without consuming it
  iter-mut <how>    rewrite every value in place (upper, lower, capitalize, reverse)
  drain             move every value out, emptying the list
  find <query>      fuzzy-match values while walking the list
  len               count the values
  drop              release every node`,
	Example: `  sll exec "push 1" "push 2" pop
  printf 'push a\npush b\niter\n' | sll exec --json`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			ops  []script.Op
			name string
			err  error
		)

		file := lo.Must(cmd.Flags().GetString("file"))

		switch {
		case len(args) > 0:
			name = "args"
			ops, err = script.ParseArgs(args)
		case file != "":
			name = util.FileStem(file)
			f, openErr := filesystem.API().Open(file)
			handleErr(openErr)
			defer f.Close()
			ops, err = script.Parse(f)
		default:
			name = "stdin"
			ops, err = script.Parse(cmd.InOrStdin())
		}
		handleErr(err)

		runScript(cmd, name, ops)
	},
}

func init() {
	execCmd.AddCommand(execSchemaCmd)
}

// execSchemaCmd prints the JSON schema of the transcript emitted by --json.
var execSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the transcript produced with --json",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(json.NewEncoder(os.Stdout).Encode(script.Schema()))
	},
}
