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
	"io"
	"os"

	"github.com/nickng/philo/config"
	"github.com/nickng/philo/protocol"
	"github.com/spf13/cobra"
)

func newProtocol(arg string) (*protocol.Protocol, error) {
	n, err := config.ParseDiners(arg)
	if err != nil {
		return nil, err
	}
	return protocol.New(n)
}

// writeOutput writes a model to --output, or stdout if unset.
func writeOutput(cmd *cobra.Command, model io.WriterTo) error {
	if outfile == "" {
		_, err := model.WriteTo(cmd.OutOrStdout())
		return err
	}
	f, err := os.Create(outfile)
	if err != nil {
		return err
	}
	if _, err := model.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
