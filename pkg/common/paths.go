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

package common

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const FilePermissions = 0755

var (
	// Directory is the root of all the files managed by tbprobe.
	Directory = filepath.Join(xdg.Home, "tbprobe")

	// TablesDirectory is where fetched tablebase repositories are stored.
	TablesDirectory = filepath.Join(Directory, "tables")

	// ConfigFile is the path of tbprobe's configuration file.
	ConfigFile = filepath.Join(Directory, "config.yaml")
)

// SPIN is the spinner character set used while working.
const SPIN = 31

func TryMkdir(dir string) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		_ = os.MkdirAll(dir, FilePermissions)
	}
}

func TryCreate(file string, data []byte) {
	if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
		_ = os.WriteFile(file, data, FilePermissions)
	}
}

// Setup creates tbprobe's directories if they don't exist yet.
func Setup() {
	TryMkdir(Directory)
	TryMkdir(TablesDirectory)
}
