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

// Package render converts TEI dictionary entry subtrees to formatted text.
//
// Rendered text contains only a small markup vocabulary suitable for a simple
// rich-text display: <br/> line breaks, <b>...</b> around matched headwords,
// and plain characters. Formatting is tag-driven: each element is classified
// by its local tag name into one of three fixed bins that determine how its
// text, children, and tail are joined.
//
// All functions in this package mutate the subtree they are given. Callers
// rendering an entry from a shared document must pass a private deep copy.
package render

import (
	"strings"

	"github.com/beevik/etree"
)

// kind is an element's formatting classification.
type kind int

const (
	// defaultKind formats unclassified elements, including the entry root:
	// leading text and comma-joined children.
	defaultKind kind = iota

	// simpleKind formats phrase-level elements inline: leading text and
	// space-joined children, no added markup.
	simpleKind

	// complexKind formats grouping elements as blocks: a leading <br/> and
	// comma-joined children.
	complexKind
)

// simpleTags are phrase-level elements rendered inline.
var simpleTags = map[string]struct{}{
	"orth": {}, "pron": {}, "hyph": {}, "syll": {}, "stress": {},
	"gram": {}, "gen": {}, "number": {}, "case": {}, "per": {}, "tsn": {},
	"mood": {}, "iType": {}, "pos": {}, "subc": {}, "colloc": {}, "quote": {},
	"lang": {}, "date": {}, "mentioned": {}, "gloss": {}, "ref": {},
	"ptr": {}, "usg": {}, "def": {}, "lbl": {}, "note": {}, "oRef": {}, "pRef": {},
}

// complexTags are grouping elements rendered as blocks.
var complexTags = map[string]struct{}{
	"hom": {}, "form": {}, "sense": {}, "etym": {}, "re": {}, "dictScrap": {},
}

// bracketTags have their leading text wrapped in square brackets. These are
// pronunciation-like forms conventionally displayed as [text].
var bracketTags = map[string]struct{}{
	"pron": {}, "hyph": {}, "syll": {}, "stress": {},
}

// parenTags are wrapped in parentheses, opening in the leading text and
// closing in the tail, so that the whole block including children is
// visually grouped.
var parenTags = map[string]struct{}{
	"gramGrp": {}, "re": {}, "etym": {}, "dictScrap": {},
}

// highlightTags are the headword-bearing elements whose text is emphasized in
// a matched entry.
var highlightTags = map[string]struct{}{
	"orth": {}, "quote": {},
}

// classify returns the formatting classification for a local tag name.
func classify(tag string) kind {
	if _, ok := simpleTags[tag]; ok {
		return simpleKind
	}
	if _, ok := complexTags[tag]; ok {
		return complexKind
	}
	return defaultKind
}

// Preformat applies tag-specific text decoration to el and every element
// below it.
//
// Pronunciation-like elements get their leading text wrapped as [text] unless
// it already starts with "[" or already ends with "]". Grouping elements
// (gramGrp, re, etym, dictScrap) get "(" prepended to their leading text and
// ")" appended to their tail unless already present. Preformat is idempotent.
func Preformat(el *etree.Element) {
	if _, ok := bracketTags[el.Tag]; ok {
		if text := el.Text(); text != "" &&
			!strings.HasPrefix(text, "[") &&
			!strings.HasSuffix(text, "]") {
			el.SetText("[" + text + "]")
		}
	} else if _, ok := parenTags[el.Tag]; ok {
		if text := el.Text(); !strings.HasPrefix(text, "(") {
			el.SetText("(" + text)
		}
		if tail := el.Tail(); !strings.HasSuffix(tail, ")") {
			el.SetTail(tail + ")")
		}
	}

	for _, c := range el.ChildElements() {
		Preformat(c)
	}
}

// Highlight wraps the leading text of every headword-bearing element (orth
// and quote) below el in <b>...</b> markup. Elements with no leading text are
// left unchanged.
func Highlight(el *etree.Element) {
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		for _, c := range e.ChildElements() {
			if _, ok := highlightTags[c.Tag]; ok {
				if text := c.Text(); text != "" {
					c.SetText("<b>" + text + "</b>")
				}
			}
			walk(c)
		}
	}
	walk(el)
}

// Text recursively builds the formatted text of el. Classification and the
// joining separator are re-evaluated at every depth; only direct child
// elements are recursed into.
func Text(el *etree.Element) string {
	children := el.ChildElements()
	parts := make([]string, 0, len(children))
	for _, c := range children {
		parts = append(parts, Text(c))
	}

	var b strings.Builder
	switch classify(el.Tag) {
	case simpleKind:
		b.WriteString(strings.TrimSpace(el.Text()))
		b.WriteString(strings.Join(parts, " "))
		b.WriteString(strings.TrimSpace(el.Tail()))
	case complexKind:
		b.WriteString("<br/>")
		b.WriteString(strings.TrimSpace(el.Text()))
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(strings.TrimSpace(el.Tail()))
	default:
		b.WriteString(strings.TrimSpace(el.Text()))
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(strings.TrimSpace(el.Tail()))
	}
	return b.String()
}

// Entry renders a matched dictionary entry: the pre-formatting pass, the
// headword highlight pass, and the text-building pass, in that order. The
// subtree is mutated; pass a private copy of the entry.
func Entry(el *etree.Element) string {
	Preformat(el)
	Highlight(el)
	return Text(el)
}
