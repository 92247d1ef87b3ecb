// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/tbprobe/pkg/batch"
	"laptudirm.com/x/tbprobe/pkg/common"
)

// tbprobe batch
func Batch() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch positions-file",
		Short: "Probe every position in a file of FENs",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			lines, err := batch.ReadFile(args[0])
			if err != nil {
				return err
			}

			workers := conf.Workers
			if cmd.Flag("workers").Changed {
				workers, _ = cmd.Flags().GetInt("workers")
			}

			prober := openProber(cmd, conf)
			defer prober.Close()

			logrus.Infof("Probing %d positions with %d workers...", len(lines), workers)

			s := spinner.New(spinner.CharSets[common.SPIN], 100*time.Millisecond)
			s.Start()
			entries := batch.Run(prober, lines, workers)
			s.Stop()

			quiet, _ := cmd.Flags().GetBool("quiet")
			if !quiet {
				for _, entry := range entries {
					fmt.Println(entry)
				}
				fmt.Println()
			}

			batch.Summarize(entries).Report(os.Stdout)
			return nil
		},
	}

	cmd.Flags().IntP("workers", "w", 1, "Number of positions probed concurrently")
	cmd.Flags().BoolP("quiet", "q", false, "Only print the summary")

	return cmd
}
