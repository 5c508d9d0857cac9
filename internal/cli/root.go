package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	verbose bool
)

// rootCmd represents the base command. callscope has a single analysis
// command with positional arguments; omitting the action name switches to
// discovery mode, which lists candidate actions without walking.
var rootCmd = &cobra.Command{
	Use:   "callscope <workspace-path> <type-name> [action-name]",
	Short: "Callscope - static call-graph explorer for web handler actions",
	Long: `Callscope analyzes a codebase's static call structure starting from a
web-handler action and prints the transitive set of methods it reaches,
annotated with object constructions and injected-dependency usages.

Examples:
  # List the action-like methods of OrdersController
  callscope ./src Orders

  # Walk the call graph from OrdersController.Details
  callscope ./src Orders Details
`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runTrace,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output with parse progress")

	// Bind flags to viper
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}
