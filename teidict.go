// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package teidict

import (
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-teidict/phrase"
	"github.com/ianlewis/go-teidict/render"
	"github.com/ianlewis/go-teidict/tei"
)

// teiExts are recognized dictionary file extensions. Dictionaries may be
// stored plain, gzip-compressed, or dictzip-compressed.
var teiExts = []string{".tei", ".tei.gz", ".tei.dz"}

// TEIDict is a TEI dictionary loaded into memory.
type TEIDict struct {
	doc  *tei.Document
	path string

	entries []*tei.Entry
}

// OpenAll opens all dictionaries under a directory. This function will return
// all successfully opened dictionaries along with any errors that occurred.
func OpenAll(path string) ([]*TEIDict, []error) {
	var dicts []*TEIDict
	var errs []error
	if err := filepath.WalkDir(path, func(path string, info fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if !info.IsDir() && hasTEIExt(info.Name()) {
			dict, err := Open(path)
			if err != nil {
				errs = append(errs, err)
				return nil
			}
			dicts = append(dicts, dict)
		}
		return nil
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}
	return dicts, errs
}

// Open opens a TEI dictionary from the given file path. The file may be a
// plain .tei file or compressed as .tei.gz or .tei.dz.
func Open(path string) (*TEIDict, error) {
	if !hasTEIExt(path) {
		return nil, fmt.Errorf("bad extension: %v", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch {
	case strings.HasSuffix(strings.ToLower(path), ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("error opening %q: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case strings.HasSuffix(strings.ToLower(path), ".dz"):
		zr, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("error opening %q: %w", path, err)
		}
		r = io.NewSectionReader(zr, 0, math.MaxInt64)
	}

	doc, err := tei.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}

	return &TEIDict{
		doc:     doc,
		path:    path,
		entries: doc.Entries(),
	}, nil
}

// Bookname returns the dictionary name. The title from the TEI header is used
// when present, falling back to the dictionary's file name.
func (d *TEIDict) Bookname() string {
	if title := d.doc.Title(); title != "" {
		return title
	}
	name := filepath.Base(d.path)
	for _, ext := range teiExts {
		if trimmed := strings.TrimSuffix(name, ext); trimmed != name {
			return trimmed
		}
	}
	return name
}

// Path returns the path of the dictionary file.
func (d *TEIDict) Path() string {
	return d.path
}

// Title returns the dictionary title from the TEI header.
func (d *TEIDict) Title() string {
	return d.doc.Title()
}

// Author returns the dictionary author from the TEI header.
func (d *TEIDict) Author() string {
	return d.doc.Author()
}

// Publisher returns the dictionary publisher from the TEI header.
func (d *TEIDict) Publisher() string {
	return d.doc.Publisher()
}

// Licence returns the dictionary licence from the TEI header.
func (d *TEIDict) Licence() string {
	return d.doc.Licence()
}

// EntryCount returns the number of entries in the dictionary.
func (d *TEIDict) EntryCount() int {
	return len(d.entries)
}

// Entries returns the dictionary's entries. Callers must not mutate the
// returned entries; they are shared by all lookups.
func (d *TEIDict) Entries() []*tei.Entry {
	return d.entries
}

// Translate searches the dictionary for entries matching any contiguous word
// combination of the sentence and returns their rendered text in entry order.
// Matched headwords are wrapped in <b>...</b> markup and entries are rendered
// with <br/> line breaks between sense blocks.
//
// The shared dictionary tree is never mutated; each matched entry is rendered
// from a private deep copy. An empty result is a valid outcome, returned both
// when nothing matches and when the lookup fails unexpectedly. Failures are
// logged with the dictionary name and the searched text.
func (d *TEIDict) Translate(sentence string) []string {
	return translate(d.Bookname(), sentence, d.entries)
}

// Translate searches the given entries for matches against the sentence. See
// [TEIDict.Translate].
func Translate(sentence string, entries []*tei.Entry) []string {
	return translate("", sentence, entries)
}

func translate(bookname, sentence string, entries []*tei.Entry) (translations []string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("translation failed",
				slog.String("dictionary", bookname),
				slog.String("query", sentence),
				slog.Any("error", r),
			)
			translations = nil
		}
	}()

	combinations := phrase.Decompose(sentence)
	if len(combinations) == 0 {
		return nil
	}
	set := phrase.NewSet(combinations)

	for _, e := range entries {
		if !matches(e, set) {
			continue
		}
		c := e.Copy()
		translations = append(translations, render.Entry(c.Element()))
	}
	return translations
}

// matches returns true if any of the entry's normalized headwords is in the
// combination set. An entry with no headword elements never matches.
func matches(e *tei.Entry, set phrase.Set) bool {
	for _, w := range e.Headwords() {
		if n := phrase.Normalize(w); n != "" && set.Contains(n) {
			return true
		}
	}
	return false
}

// hasTEIExt returns true if the file name has a recognized dictionary
// extension.
func hasTEIExt(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range teiExts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
