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

package fetch

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestNewIdentifier(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		source string
		name   string
		url    string
	}{
		{"michiguel/Gaviota-Tablebases", "Gaviota-Tablebases", "https://github.com/michiguel/Gaviota-Tablebases"},
		{"https://example.com/tables/gtb.git", "gtb", "https://example.com/tables/gtb"},
		{"https://example.com/tables/gtb/", "gtb", "https://example.com/tables/gtb"},
	}

	for _, tc := range tests {
		id, err := NewIdentifier(tc.source, dir)
		if err != nil {
			t.Errorf("NewIdentifier(%q) error: %v", tc.source, err)
			continue
		}

		if id.Name != tc.name || id.SourceURL != tc.url {
			t.Errorf("NewIdentifier(%q) = %+v, want name %q url %q", tc.source, id, tc.name, tc.url)
		}

		if want := filepath.Join(dir, filepath.Base(id.LocalPath)); id.LocalPath != want {
			t.Errorf("LocalPath = %q, want it inside %q", id.LocalPath, dir)
		}
	}

	if _, err := NewIdentifier("gtb", dir); err == nil {
		t.Errorf("NewIdentifier(\"gtb\") succeeded, want error")
	}
}

func TestIsTableFile(t *testing.T) {
	for name, want := range map[string]bool{
		"kqk.gtb.cp4":   true,
		"KRPKR.GTB.CP2": true,
		"kpk.gtb":       true,
		"README.md":     false,
		"kqk.gtb.cp4.1": false,
	} {
		if got := IsTableFile(name); got != want {
			t.Errorf("IsTableFile(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestTableDirectories(t *testing.T) {
	root := t.TempDir()

	files := []string{
		"README.md",
		"3/kqk.gtb.cp4",
		"3/krk.gtb.cp4",
		"3/more/kpk.gtb.cp4",
		"3/zzz.gtb.cp4",
		"4/notes.txt",
		"5/kqqkq.gtb.cp4",
		".git/objects/kqk.gtb.cp4",
	}

	for _, file := range files {
		path := filepath.Join(root, file)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	dirs, err := TableDirectories(root)
	if err != nil {
		t.Fatalf("TableDirectories error: %v", err)
	}

	want := []string{
		filepath.Join(root, "3"),
		filepath.Join(root, "3", "more"),
		filepath.Join(root, "5"),
	}

	if !reflect.DeepEqual(dirs, want) {
		t.Errorf("TableDirectories = %v, want %v", dirs, want)
	}
}
