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

// dotCmd represents the dot command
var dotCmd = &cobra.Command{
	Use:   "dot number_of_philosophers",
	Short: "Draw the table as a Graphviz graph",
	Long: `Draw the table as a Graphviz graph

Edges go from a philosopher to the forks it takes, labelled 1 for the first
fork and 2 for the second.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newProtocol(args[0])
		if err != nil {
			return err
		}
		dot, err := protocol.NewGraphvizDot(p)
		if err != nil {
			return err
		}
		return writeOutput(cmd, dot)
	},
}

func init() {
	dotCmd.Flags().StringVar(&outfile, "output", "", "output dot file")

	RootCmd.AddCommand(dotCmd)
}
