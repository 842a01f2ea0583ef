// Copyright © 2016 Nicholas Ng <nickng@projectfate.org>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/nickng/philo/config"
	"github.com/nickng/philo/fairness"
	"github.com/nickng/philo/logwriter"
	"github.com/nickng/philo/simulation"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string // Path to config file
	logFile   string // Path to log file
	noLogging bool   // Turn off logging
	noColour  bool   // Turn of colour output
	noAudit   bool   // Skip the fairness audit
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "philo number_of_philosophers time_to_die time_to_eat time_to_sleep [number_of_times_each_philosopher_must_eat]",
	Short: "Dining philosophers simulation",
	Long: `philo seats philosophers around a table and simulates them until one
starves or, if number_of_times_each_philosopher_must_eat is given, until
everyone has eaten enough

Times are in milliseconds. Events are printed to stdout as
"<ms since start> <philosopher> <event>", diagnostics go to the log.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runSimulation,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return RootCmd.ExecuteContext(context.Background())
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.philo.yaml)")
	RootCmd.PersistentFlags().StringVar(&logFile, "log", "", "path to log file (default is stderr)")
	RootCmd.PersistentFlags().BoolVar(&noLogging, "no-logging", false, "disable logging")
	RootCmd.PersistentFlags().BoolVar(&noColour, "no-colour", false, "disable colour output")
	RootCmd.PersistentFlags().Duration("watchdog-interval", simulation.DefaultWatchInterval, "how often the watchdog checks for starvation")
	RootCmd.PersistentFlags().Duration("stagger", simulation.DefaultStagger, "start delay of even philosophers")
	RootCmd.Flags().BoolVar(&noAudit, "no-audit", false, "skip the fairness audit after the run")

	viper.BindPFlag("watchdog-interval", RootCmd.PersistentFlags().Lookup("watchdog-interval"))
	viper.BindPFlag("stagger", RootCmd.PersistentFlags().Lookup("stagger"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" { // enable ability to specify config file via flag
		viper.SetConfigFile(cfgFile)
	}

	viper.SetConfigName(".philo") // name of config file (without extension)
	viper.AddConfigPath("$HOME")  // adding home directory as first search path
	viper.SetEnvPrefix("philo")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	viper.ReadInConfig()
}

// newLog creates the diagnostic log from the persistent flags.
func newLog() (*logwriter.Writer, error) {
	l := logwriter.NewFile(logFile, !noLogging, !noColour)
	if err := l.Create(); err != nil {
		return nil, err
	}
	if f := viper.ConfigFileUsed(); f != "" {
		l.Logger().Println("Using config file:", f)
	}
	return l, nil
}

// options are the simulation tunables from flags, environment and config file.
func options(l *logwriter.Writer) simulation.Options {
	return simulation.Options{
		Logger:        l.Logger(),
		Colour:        !color.NoColor,
		WatchInterval: durationOf("watchdog-interval", simulation.DefaultWatchInterval),
		Stagger:       durationOf("stagger", simulation.DefaultStagger),
	}
}

func durationOf(key string, def time.Duration) time.Duration {
	if d := viper.GetDuration(key); d > 0 {
		return d
	}
	return def
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := config.Parse(args)
	if err != nil {
		return err
	}
	l, err := newLog()
	if err != nil {
		return err
	}
	defer l.Cleanup()

	opts := options(l)
	sim, err := simulation.New(cfg, cmd.OutOrStdout(), opts)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	if !noAudit {
		fairness.Check(report, cfg, opts.Logger)
	}
	return nil
}
