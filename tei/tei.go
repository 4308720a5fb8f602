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

// Package tei implements reading TEI (Text Encoding Initiative) dictionary
// documents.
//
// A TEI dictionary is a single XML document in the TEI namespace. Dictionary
// records are entry and entryFree elements which may appear anywhere in the
// document. Metadata about the dictionary is read from the teiHeader element.
package tei

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

// Namespace is the TEI XML namespace.
const Namespace = "http://www.tei-c.org/ns/1.0"

// ErrNoRoot indicates that the document has no root element.
var ErrNoRoot = errors.New("document has no root element")

// headword-bearing element names used for matching search input.
const (
	orthTag  = "orth"
	quoteTag = "quote"
)

// Document is a parsed TEI dictionary document. The document tree is shared
// by all entries and must not be mutated; lookups that need to mutate an
// entry operate on a copy made with [Entry.Copy].
type Document struct {
	doc *etree.Document

	title     string
	author    string
	publisher string
	licence   string
}

// Parse reads a TEI document from r. The whole document is read into memory.
func Parse(r io.Reader) (*Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parsing TEI document: %w", err)
	}
	if doc.Root() == nil {
		return nil, ErrNoRoot
	}

	d := &Document{
		doc: doc,
	}
	d.readHeader()
	return d, nil
}

// readHeader reads dictionary metadata from the teiHeader element. Missing
// header fields are left empty.
func (d *Document) readHeader() {
	fileDesc := firstDescendant(d.doc.Root(), "fileDesc")
	if fileDesc == nil {
		return
	}

	if titleStmt := firstDescendant(fileDesc, "titleStmt"); titleStmt != nil {
		if title := firstDescendant(titleStmt, "title"); title != nil {
			d.title = strings.TrimSpace(title.Text())
		}
		if author := firstDescendant(titleStmt, "author"); author != nil {
			d.author = strings.TrimSpace(author.Text())
		}
	}
	if pubStmt := firstDescendant(fileDesc, "publicationStmt"); pubStmt != nil {
		if publisher := firstDescendant(pubStmt, "publisher"); publisher != nil {
			d.publisher = strings.TrimSpace(publisher.Text())
		}
		if licence := firstDescendant(pubStmt, "licence"); licence != nil {
			d.licence = strings.TrimSpace(licence.Text())
		}
	}
}

// Title returns the dictionary title from the teiHeader.
func (d *Document) Title() string {
	return d.title
}

// Author returns the dictionary author from the teiHeader.
func (d *Document) Author() string {
	return d.author
}

// Publisher returns the dictionary publisher from the teiHeader.
func (d *Document) Publisher() string {
	return d.publisher
}

// Licence returns the dictionary licence from the teiHeader.
func (d *Document) Licence() string {
	return d.licence
}

// Entries returns all dictionary entries in the document. All entry elements
// are returned in document order followed by all entryFree elements in
// document order.
func (d *Document) Entries() []*Entry {
	var entries []*Entry
	for _, el := range descendants(d.doc.Root(), "entry") {
		entries = append(entries, &Entry{el: el})
	}
	for _, el := range descendants(d.doc.Root(), "entryFree") {
		entries = append(entries, &Entry{el: el})
	}
	return entries
}

// Entry is a single dictionary record, the subtree rooted at an entry or
// entryFree element.
type Entry struct {
	el *etree.Element
}

// NewEntry returns an Entry rooted at the given element.
func NewEntry(el *etree.Element) *Entry {
	return &Entry{el: el}
}

// Element returns the entry's root element.
func (e *Entry) Element() *etree.Element {
	return e.el
}

// Copy returns a deep copy of the entry. The copy shares no nodes with the
// original so it can be mutated freely. An element's trailing text lives in
// its parent's token list, so the copy is placed under a scratch parent to
// carry the original's tail.
func (e *Entry) Copy() *Entry {
	c := e.el.Copy()
	scratch := etree.NewElement("scratch")
	scratch.AddChild(c)
	c.SetTail(e.el.Tail())
	return &Entry{el: c}
}

// Headwords returns the leading text of every headword-bearing element in the
// entry subtree: orthographic forms first, then quoted forms. The texts are
// returned as they appear in the document, without normalization.
func (e *Entry) Headwords() []string {
	var words []string
	for _, el := range descendants(e.el, orthTag) {
		words = append(words, el.Text())
	}
	for _, el := range descendants(e.el, quoteTag) {
		words = append(words, el.Text())
	}
	return words
}

// Title returns the entry's first orthographic form, for display purposes.
func (e *Entry) Title() string {
	for _, el := range descendants(e.el, orthTag) {
		return strings.TrimSpace(el.Text())
	}
	return ""
}

// firstDescendant returns the first descendant of el with the given local tag
// name, in document order, or nil.
func firstDescendant(el *etree.Element, name string) *etree.Element {
	for _, c := range el.ChildElements() {
		if c.Tag == name {
			return c
		}
		if found := firstDescendant(c, name); found != nil {
			return found
		}
	}
	return nil
}

// descendants returns all descendants of el with the given local tag name in
// document order. The namespace prefix is ignored; etree keeps the local name
// in [etree.Element.Tag].
func descendants(el *etree.Element, name string) []*etree.Element {
	var out []*etree.Element
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		for _, c := range e.ChildElements() {
			if c.Tag == name {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(el)
	return out
}
