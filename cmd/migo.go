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
	"github.com/nickng/philo/protocol"
	"github.com/spf13/cobra"
)

var (
	outfile string // Path to output file
)

// migoCmd represents the migo command
var migoCmd = &cobra.Command{
	Use:   "migo number_of_philosophers",
	Short: "Write the fork protocol as MiGo types",
	Long: `Write the fork protocol as MiGo types

Every fork is a synchronous channel served by its own process, every
philosopher takes its forks in the same order as the simulation does.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newProtocol(args[0])
		if err != nil {
			return err
		}
		return writeOutput(cmd, protocol.NewMigo(p))
	},
}

func init() {
	migoCmd.Flags().StringVar(&outfile, "output", "", "output migo file")

	RootCmd.AddCommand(migoCmd)
}
