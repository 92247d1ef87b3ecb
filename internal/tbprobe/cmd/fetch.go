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

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"laptudirm.com/x/tbprobe/pkg/common"
	"laptudirm.com/x/tbprobe/pkg/fetch"
)

// tbprobe fetch
func Fetch() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch { owner/name git-url }",
		Short: "Download a git repository of tablebase files",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`fetch clones the given git repository of tablebase files
			into tbprobe's tables directory and adds it to the
			configured tablebase paths. If the repository has been
			fetched before, any new changes are pulled instead. Every
			directory in the repository holding .gtb table files is
			registered.

			The formats supported for the repository are <owner>/<name>
			(for repositories on github), or a full <url> to a git
			repository.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			tables, err := fetch.NewIdentifier(args[0], common.TablesDirectory)
			if err != nil {
				return err
			}

			dirs, err := fetch.Fetch(tables)
			if err != nil {
				return err
			}

			fmt.Printf("\nFetched tables \x1b[92m%s\x1b[0m into %s.\n", tables.Name, tables.LocalPath)
			for _, dir := range dirs {
				if conf.AddPath(dir) {
					fmt.Printf("\x1b[32mAdded Path:\x1b[0m %s\n", dir)
				}
			}

			return nil
		},
	}
}
