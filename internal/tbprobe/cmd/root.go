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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/tbprobe/pkg/common"
	"laptudirm.com/x/tbprobe/pkg/config"
	"laptudirm.com/x/tbprobe/pkg/gaviota"
	"laptudirm.com/x/tbprobe/pkg/oracle"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "tbprobe",
		Short: "Probe Gaviota endgame tablebases using FEN strings",
		Long: heredoc.Doc(`tbprobe translates chess positions in FEN notation into
			Gaviota tablebase probes and reports the result: a draw, a
			mate in some number of plies, or no tablebase hit.

			Positions with castling rights can't be probed since the
			tablebases do not contain them.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}

			common.Setup()
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show tbprobe's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().StringP("config", "c", common.ConfigFile, "Configuration file to use")
	root.PersistentFlags().StringSliceP("paths", "p", nil, "Tablebase directories, overrides the configuration")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(Probe())
	root.AddCommand(Batch())
	root.AddCommand(Paths())
	root.AddCommand(Fetch())

	return root
}

// loadConfig loads the configuration file selected by the --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	return config.Load(file)
}

// openProber initializes a prober with the tablebase paths from --paths or
// the configuration file. The caller has to Close it.
func openProber(cmd *cobra.Command, conf *config.Config) gaviota.Prober {
	paths := conf.Paths
	if cmd.Flag("paths").Changed {
		paths, _ = cmd.Flags().GetStringSlice("paths")
	}

	prober := oracle.New()
	logrus.WithField("paths", paths).Debug("initializing prober")
	if message := prober.Init(paths); message != "" {
		logrus.Info(message)
	}

	return prober
}
