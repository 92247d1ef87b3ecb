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
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// tbprobe paths
func Paths() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "List the configured tablebase directories",
		Args:  cobra.ExactArgs(0),

		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if len(conf.Paths) == 0 {
				fmt.Println("\x1b[31mNo Tablebase Paths Configured.\x1b[0m")
				return nil
			}

			fmt.Println("\u001B[32mTablebase Paths\u001B[0m:")
			for _, path := range conf.Paths {
				fmt.Printf("- %s\n", path)
			}

			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add directory",
		Short: "Add a tablebase directory",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			path, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}

			if info, err := os.Stat(path); err != nil || !info.IsDir() {
				return fmt.Errorf("%s is not a directory", path)
			}

			if !conf.AddPath(path) {
				logrus.Warnf("%s is already a tablebase path", path)
				return nil
			}

			fmt.Printf("\x1b[32mAdded Path:\x1b[0m %s\n", path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove directory",
		Short: "Remove a tablebase directory",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			path, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}

			if !conf.RemovePath(path) {
				fmt.Printf("\nPath \x1b[32m%s\x1b[0m is not configured.\n", path)
				return nil
			}

			fmt.Printf("\x1b[32mRemoved Path:\x1b[0m %s\n", path)
			return nil
		},
	})

	return cmd
}
