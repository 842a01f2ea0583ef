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

// cfsmsCmd represents the cfsms command
var cfsmsCmd = &cobra.Command{
	Use:   "cfsms number_of_philosophers",
	Short: "Write the fork protocol as CFSMs",
	Long: `Write the fork protocol as CFSMs

One machine per fork and one per philosopher, ready for a
synthesis or model checking tool. The machine numbering is logged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newProtocol(args[0])
		if err != nil {
			return err
		}
		l, err := newLog()
		if err != nil {
			return err
		}
		defer l.Cleanup()

		sys := protocol.NewCFSMs(p)
		sys.PrintSummary(l)
		return writeOutput(cmd, sys)
	},
}

func init() {
	cfsmsCmd.Flags().StringVar(&outfile, "output", "", "output CFSMs file")

	RootCmd.AddCommand(cfsmsCmd)
}
