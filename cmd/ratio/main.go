package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsiemens/ratio/app"
	"github.com/tsiemens/ratio/config"
	"github.com/tsiemens/ratio/log"
)

var (
	flagConfigFile string
	flagElemType   string
	flagPlaces     int
	flagFull       bool
	flagHumanize   bool
)

// loadOptions layers command-line flags over the config file and environment.
func loadOptions(cmd *cobra.Command) (app.Options, error) {
	c, err := config.Initialize(flagConfigFile)
	if err != nil {
		return app.Options{}, err
	}
	opts := app.OptionsFromConfig(c)
	flags := cmd.Flags()
	if flags.Changed("type") {
		opts.ElemType = flagElemType
	}
	if flags.Changed("places") {
		opts.Places = flagPlaces
	}
	if flags.Changed("full") {
		opts.RenderFullValues = flagFull
	}
	if flags.Changed("humanize") {
		opts.Humanize = flagHumanize
	}
	return opts, nil
}

// runWithOptions wraps an app entry point that reports an OK flag.
func runWithOptions(fn func(opts app.Options, args []string, errPrinter log.ErrorPrinter) bool) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		errPrinter := log.NewStderrErrorPrinter()
		opts, err := loadOptions(cmd)
		if err != nil {
			errPrinter.Ln("Error:", err)
			os.Exit(1)
		}
		if !fn(opts, args, errPrinter) {
			os.Exit(1)
		}
	}
}

var describeCmd = &cobra.Command{
	Use:   "describe VALUE...",
	Short: "Show the reduced form and approximations of each value",
	Long: `Show the reduced form and approximations of each value.

Values are written as N/D or N, for example 3/4, -10/4 or 7.`,
	Args: cobra.MinimumNArgs(1),
	Run: runWithOptions(func(opts app.Options, args []string, errPrinter log.ErrorPrinter) bool {
		return app.RunDescribe(os.Stdout, args, opts, errPrinter)
	}),
}

var evalCmd = &cobra.Command{
	Use:   "eval (OP X | X OP Y)",
	Short: "Evaluate a single operation",
	Long: `Evaluate a single operation.

Binary operators: + - * (or x) / == != < <= > >= cmp
Unary operators:  neg inv abs reduce float floor ceil trunc round

Subtraction and negation fail for unsigned element types. Put -- before
the operands when the first one is negative: ratio eval -- -1/2 + 1/3`,
	Args: cobra.RangeArgs(2, 3),
	Run: runWithOptions(func(opts app.Options, args []string, errPrinter log.ErrorPrinter) bool {
		return app.RunEval(os.Stdout, args, opts, errPrinter)
	}),
}

var sumCmd = &cobra.Command{
	Use:   "sum CSV...",
	Short: "Total label,value records per label and across all files",
	Args:  cobra.MinimumNArgs(1),
	Run: runWithOptions(func(opts app.Options, args []string, errPrinter log.ErrorPrinter) bool {
		var readers []app.DescribedReader
		for _, fn := range args {
			fp, err := os.Open(fn)
			if err != nil {
				errPrinter.Ln("Error:", err)
				return false
			}
			defer fp.Close()
			readers = append(readers, app.DescribedReader{Desc: fn, Reader: fp})
		}
		return app.RunSum(os.Stdout, readers, opts, errPrinter)
	}),
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(app.RatioVersion)
	},
}

var RootCmd = &cobra.Command{
	Use:   "ratio",
	Short: "Exact rational arithmetic over fixed-width integers",
	Long: `Exact rational arithmetic over fixed-width integers.

The element type of numerators and denominators is one of:
  ` + strings.Join(app.ElemTypes, ", ") + `

Settings are read from the --config TOML file, then the RATIO_TYPE and
HUMANIZE environment variables, then flags. Set DISPLAY_NAN=1 to show NaN
instead of - for values undefined on a zero denominator.`,
	Version: app.RatioVersion,
}

func init() {
	pflags := RootCmd.PersistentFlags()
	pflags.StringVar(&flagConfigFile, "config", "", "TOML config file")
	pflags.StringVarP(&flagElemType, "type", "t", config.DefaultElemType, "element type of numerator and denominator")
	pflags.IntVar(&flagPlaces, "places", config.DefaultPlaces, "decimal places to render")
	pflags.BoolVar(&flagFull, "full", false, "render decimals at full division precision")
	pflags.BoolVar(&flagHumanize, "humanize", false, "group thousands in rendered numbers")

	RootCmd.AddCommand(describeCmd, evalCmd, sumCmd, versionCmd)
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
