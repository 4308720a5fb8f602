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

// Package teidict implements a lookup engine for TEI dictionaries in pure Go.
//
// A TEI dictionary is a single XML document in the Text Encoding Initiative
// namespace (http://www.tei-c.org/ns/1.0) whose records are entry and
// entryFree elements. A lookup takes free text, a word or whole sentence,
// decomposes it into every contiguous word combination, and returns the
// rendered text of every entry whose orthographic or quoted forms match one
// of the combinations. Matching is diacritic-preserving but case-insensitive:
// both sides are Unicode case folded and NFC normalized.
//
// Rendered entries contain only <br/> and <b>...</b> markup and are safe to
// embed in a simple rich-text display.
//
// The loaded dictionary is immutable and safe for concurrent lookups.
// Dictionary files may be stored plain (.tei) or compressed (.tei.gz,
// .tei.dz).
package teidict
