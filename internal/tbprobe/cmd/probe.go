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
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/tbprobe/pkg/gaviota"
)

// tbprobe probe
func Probe() *cobra.Command {
	return &cobra.Command{
		Use:   "probe fen",
		Short: "Probe the tablebases for a single position",
		Long: heredoc.Doc(`probe looks the given position up in the tablebases. The
			position is given as a FEN string, either quoted or as
			separate arguments:

			  tbprobe probe 8/8/8/8/8/8/4K3/4k3 w - - 0 1

			Only the first four FEN fields are used.`),
		Args: cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			prober := openProber(cmd, conf)
			defer prober.Close()

			fen := strings.Join(args, " ")
			outcome, err := gaviota.Probe(prober, fen)
			if err != nil {
				return err
			}

			color := "\x1b[33m"
			if outcome.Known() {
				color = "\x1b[32m"
			}

			fmt.Printf("%s%s\x1b[0m\n", color, outcome)
			if winner, decisive := outcome.Winner(); decisive {
				fmt.Printf("%s mates in %d\n", winner, outcome.MovesToMate())
			}

			return nil
		},
	}
}
