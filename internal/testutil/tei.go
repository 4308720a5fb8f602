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

// Package testutil provides helpers for building test TEI dictionaries.
package testutil

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-teidict/tei"
)

// Compression is the compression used for a test dictionary file.
type Compression int

const (
	// NoCompression writes a plain .tei file.
	NoCompression Compression = iota

	// Gzip writes a gzip-compressed .tei.gz file.
	Gzip

	// DictZip writes a dictzip-compressed .tei.dz file.
	DictZip
)

// MakeDictOptions are options for MakeTempDict.
type MakeDictOptions struct {
	// Name is the dictionary file name without extension. Defaults to
	// "dictionary".
	Name string

	// Compression selects the file compression. The file extension is derived
	// from it.
	Compression Compression
}

func (o *MakeDictOptions) name() string {
	if o != nil && o.Name != "" {
		return o.Name
	}
	return "dictionary"
}

func (o *MakeDictOptions) ext() string {
	if o != nil {
		switch o.Compression {
		case Gzip:
			return ".tei.gz"
		case DictZip:
			return ".tei.dz"
		case NoCompression:
		}
	}
	return ".tei"
}

// MakeTEI builds a minimal TEI dictionary document containing the given entry
// XML fragments in order. The title is stored in the teiHeader and may be
// empty.
func MakeTEI(title string, entries ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString("\n")
	b.WriteString(`<TEI xmlns="` + tei.Namespace + `">`)
	b.WriteString("<teiHeader><fileDesc><titleStmt><title>")
	b.WriteString(title)
	b.WriteString("</title></titleStmt></fileDesc></teiHeader>")
	b.WriteString("<text><body>")
	for _, e := range entries {
		b.WriteString(e)
	}
	b.WriteString("</body></text></TEI>")
	return b.String()
}

// MakeTempDict writes a test dictionary file into a temporary directory and
// returns its path. The file is removed when the test completes.
func MakeTempDict(t *testing.T, doc string, opts *MakeDictOptions) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), opts.name()+opts.ext())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var compression Compression
	if opts != nil {
		compression = opts.Compression
	}
	switch compression {
	case Gzip:
		z := gzip.NewWriter(f)
		if _, err := z.Write([]byte(doc)); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case DictZip:
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write([]byte(doc)); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	case NoCompression:
		if _, err := f.Write([]byte(doc)); err != nil {
			t.Fatal(err)
		}
	}

	return path
}
