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

// Package fetch downloads tablebase files kept in git repositories.
package fetch

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/go-git/go-git/v5"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/tbprobe/pkg/common"
)

// Identifier locates a tablebase repository.
type Identifier struct {
	Name      string
	SourceURL string
	LocalPath string
}

// NewIdentifier parses a repository identifier, which is either
// <owner>/<name> for a repository on GitHub or the full url of a git
// repository. The repository is stored in dir/<name>.
func NewIdentifier(source, dir string) (*Identifier, error) {
	source = strings.TrimSuffix(strings.TrimSuffix(source, "/"), ".git")

	var identifier Identifier
	identifier.Name = filepath.Base(source)

	switch strings.Count(source, "/") {
	case 0:
		return nil, errors.New("fetch: repository must be <owner>/<name> or a git url")
	case 1:
		// Github Repository: <owner>/<name>
		identifier.SourceURL = "https://github.com/" + source
	default:
		// Git Repository: <full-repository-url>
		identifier.SourceURL = source
	}

	identifier.LocalPath = filepath.Join(dir, strings.ToLower(identifier.Name))
	return &identifier, nil
}

// Fetch brings the local copy of the given repository up to date and
// returns the directories inside it which hold Gaviota table files. These
// are the paths to register with the prober.
func Fetch(tables *Identifier) ([]string, error) {
	s := spinner.New(spinner.CharSets[common.SPIN], 100*time.Millisecond)
	s.Start()
	err := update(tables)
	s.Stop()

	if err != nil {
		return nil, err
	}

	dirs, err := TableDirectories(tables.LocalPath)
	if err != nil {
		return nil, err
	}

	if len(dirs) == 0 {
		return nil, fmt.Errorf("fetch: no gaviota tables found in %s", tables.SourceURL)
	}

	logrus.WithField("directories", len(dirs)).Debug("tables found in repository")
	return dirs, nil
}

// update pulls into an existing clone, and makes a fresh shallow clone if
// there is none or the existing one can't be updated.
func update(tables *Identifier) error {
	if r, err := git.PlainOpen(tables.LocalPath); err == nil {
		logrus.Info("Pulling from the tablebase repository...")

		w, err := r.Worktree()
		if err == nil {
			err = w.Pull(&git.PullOptions{RemoteURL: tables.SourceURL, Depth: 1})
			if err == nil || errors.Is(err, git.NoErrAlreadyUpToDate) {
				return nil
			}
		}

		logrus.Debug(err)
		logrus.Error("Pulling repository failed, making a fresh clone")
		_ = os.RemoveAll(tables.LocalPath)
	}

	logrus.Info("Cloning the tablebase repository...")
	_, err := git.PlainClone(tables.LocalPath, false, &git.CloneOptions{
		URL:          tables.SourceURL,
		Depth:        1,
		SingleBranch: true,
	})

	return err
}

// tableExtensions are the suffixes of the compressed Gaviota table files.
var tableExtensions = []string{".gtb", ".gtb.cp1", ".gtb.cp2", ".gtb.cp3", ".gtb.cp4"}

// IsTableFile reports whether the named file is a Gaviota table file.
func IsTableFile(name string) bool {
	name = strings.ToLower(name)
	for _, ext := range tableExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}

	return false
}

// TableDirectories returns the directories under root, root included,
// which directly contain Gaviota table files. The .git directory is not
// searched.
func TableDirectories(root string) ([]string, error) {
	var dirs []string
	seen := make(map[string]bool)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}

		if dir := filepath.Dir(path); IsTableFile(d.Name()) && !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}

		return nil
	})

	return dirs, err
}
