// Package main provides the ratbagctl CLI entry point. ratbagctl configures
// programmable pointing devices: it parses the global options here and hands
// the remaining tokens to the command dispatcher in internal/command.
//
// The hardware protocol lives behind the ratbag.Ratbag interface. This
// binary wires the emulated backend, selected with --simulate; hardware
// backends register the same interface out of tree.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ZephyraSilentis/libratbag/internal/command"
	"github.com/ZephyraSilentis/libratbag/internal/logger"
	"github.com/ZephyraSilentis/libratbag/pkg/ratbag"
	"github.com/ZephyraSilentis/libratbag/pkg/ratbag/emulated"
)

const prog = "ratbagctl"

var (
	verbose  string
	simulate string

	exitStatus command.Status
)

var rootCmd = &cobra.Command{
	Use:                   prog + " [options] [command] /sys/class/input/eventX",
	Short:                 "Configure programmable mice",
	Args:                  cobra.ArbitraryArgs,
	DisableFlagsInUseLine: true,
	SilenceUsage:          true,
	SilenceErrors:         true,
	Run: func(_ *cobra.Command, args []string) {
		exitStatus = run(args)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(command.StatusUsage))
	}
	os.Exit(int(exitStatus))
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&verbose, "verbose", "", "Print debugging output, with protocol output if 'raw' is requested")
	// --verbose without a value selects plain debug output.
	flags.Lookup("verbose").NoOptDefVal = "debug"
	flags.StringVar(&simulate, "simulate", "", "Use the emulated backend defined in the given YAML fixture")

	if err := viper.BindPFlag("verbose", flags.Lookup("verbose")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding verbose flag: %v\n", err)
		os.Exit(int(command.StatusUsage))
	}

	// The contract for --help is the full command-tree usage, not cobra's
	// generated help.
	rootCmd.SetHelpFunc(func(_ *cobra.Command, _ []string) {
		command.Usage(os.Stdout, command.Tree(), prog)
	})

	cobra.OnInitialize(initConfig)
}

// initConfig configures logging from the CLI flag and the environment.
// A .env file is honored the same way the environment is.
func initConfig() {
	_ = godotenv.Load()

	viper.SetEnvPrefix("RATBAGCTL")
	viper.AutomaticEnv()

	logger.Configure(verbose != "", viper.GetString("log_level"))
}

// run executes one command path and returns the process exit status.
func run(args []string) command.Status {
	rb, err := backend()
	if err != nil {
		logger.Error(err.Error())
		return command.StatusDevice
	}

	switch verbose {
	case "raw":
		rb.SetLogPriority(ratbag.LogPriorityRaw)
	case "":
	default:
		rb.SetLogPriority(ratbag.LogPriorityDebug)
	}

	if len(args) == 0 {
		command.Usage(os.Stdout, command.Tree(), prog)
		return command.StatusUsage
	}

	opts := command.NewOptions()
	defer opts.Release()

	err = command.Run(command.Tree(), rb, opts, args)
	status := command.StatusOf(err)
	if err != nil {
		logger.Error(err.Error())
	}
	if status == command.StatusUsage {
		command.Usage(os.Stdout, command.Tree(), prog)
	}
	return status
}

// backend selects the device backend for this run.
func backend() (ratbag.Ratbag, error) {
	if simulate != "" {
		rb, err := emulated.LoadFile(simulate)
		if err != nil {
			return nil, fmt.Errorf("loading simulated devices: %w", err)
		}
		return rb, nil
	}
	// Without a hardware backend compiled in, an empty emulator keeps the
	// full CLI surface usable; `list` simply finds no devices.
	return emulated.New(), nil
}
