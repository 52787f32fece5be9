package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the whenami application
var rootCmd = &cobra.Command{
	Use:   "whenami",
	Short: "Compute free and busy slots from your Google calendars",
	Long: `whenami answers "when am I free?" by merging the busy periods of all
configured Google calendars into one timeline and printing the free and
busy slots of a chosen date range.

Running whenami without a subcommand computes slots for today, so the
slots flags can be passed directly: whenami --tomorrow --free`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "whenami version %s\n" .Version}}`)

	os.Args = withDefaultCommand(os.Args)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// withDefaultCommand injects the slots command when the invocation names no
// subcommand. Bare help and version requests stay on the root command.
func withDefaultCommand(args []string) []string {
	if len(args) == 1 {
		return append(args, "slots")
	}

	first := args[1]
	switch first {
	case "-h", "--help", "-v", "--version":
		return args
	}
	if !strings.HasPrefix(first, "-") {
		return args
	}

	injected := make([]string, 0, len(args)+1)
	injected = append(injected, args[0], "slots")
	return append(injected, args[1:]...)
}

func init() {
	rootCmd.AddCommand(newSlotsCmd())
	rootCmd.AddCommand(newQueryCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newCalendarsCmd())
	rootCmd.AddCommand(newTimezonesCmd())
	rootCmd.AddCommand(newVersionCmd())
}
