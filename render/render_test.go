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

package render_test

import (
	"strings"
	"testing"

	"github.com/beevik/etree"

	"github.com/ianlewis/go-teidict/render"
)

// parseElement parses an XML fragment and returns its root element.
func parseElement(t *testing.T, fragment string) *etree.Element {
	t.Helper()

	doc := etree.NewDocument()
	if err := doc.ReadFromString(fragment); err != nil {
		t.Fatalf("ReadFromString: %v", err)
	}
	if doc.Root() == nil {
		t.Fatal("fragment has no root element")
	}
	return doc.Root()
}

// TestText tests the text-building pass.
func TestText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fragment string

		expected string
	}{
		{
			name:     "simple leading text only",
			fragment: `<orth>run</orth>`,
			expected: "run",
		},
		{
			name:     "simple trims text",
			fragment: `<orth>  run </orth>`,
			expected: "run",
		},
		{
			name:     "simple children space-joined",
			fragment: `<def><mentioned>a</mentioned><mentioned>b</mentioned></def>`,
			expected: "a b",
		},
		{
			name:     "complex leading break and comma-join",
			fragment: `<sense><gloss>a</gloss><gloss>b</gloss></sense>`,
			expected: "<br/>a, b",
		},
		{
			name:     "complex with leading text",
			fragment: `<sense>1.<gloss>a</gloss></sense>`,
			expected: "<br/>1.a",
		},
		{
			name:     "default comma-join",
			fragment: `<entry><orth>dog</orth><orth>hound</orth></entry>`,
			expected: "dog, hound",
		},
		{
			name:     "unrecognized tag uses default",
			fragment: `<xr><orth>a</orth><orth>b</orth></xr>`,
			expected: "a, b",
		},
		{
			name:     "classification re-evaluated per depth",
			fragment: `<entry><form><orth>dog</orth></form><sense><gloss>animal</gloss></sense></entry>`,
			expected: "<br/>dog, <br/>animal",
		},
		{
			name:     "missing text is empty",
			fragment: `<sense></sense>`,
			expected: "<br/>",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			el := parseElement(t, test.fragment)
			if want, got := test.expected, render.Text(el); want != got {
				t.Fatalf("Text; want: %q, got: %q", want, got)
			}
		})
	}
}

// TestText_tail verifies that an element's tail is appended by the element's
// own rendering, not its parent's.
func TestText_tail(t *testing.T) {
	t.Parallel()

	el := parseElement(t, `<entry><orth>dog</orth>bark</entry>`)
	// The orth's rendering includes its own trimmed tail.
	if want, got := "dogbark", render.Text(el); want != got {
		t.Fatalf("Text; want: %q, got: %q", want, got)
	}
}

// TestPreformat tests the pre-formatting pass.
func TestPreformat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fragment string

		expected string
	}{
		{
			name:     "pron bracketed",
			fragment: `<pron>kæt</pron>`,
			expected: "[kæt]",
		},
		{
			name:     "already bracketed unchanged",
			fragment: `<pron>[kæt]</pron>`,
			expected: "[kæt]",
		},
		{
			name:     "leading bracket unchanged",
			fragment: `<pron>[kæt</pron>`,
			expected: "[kæt",
		},
		{
			name:     "trailing bracket unchanged",
			fragment: `<pron>kæt]</pron>`,
			expected: "kæt]",
		},
		{
			name:     "empty pron unchanged",
			fragment: `<pron></pron>`,
			expected: "",
		},
		{
			name:     "hyphenation bracketed",
			fragment: `<hyph>dic-tion-ary</hyph>`,
			expected: "[dic-tion-ary]",
		},
		{
			name:     "orth not bracketed",
			fragment: `<orth>cat</orth>`,
			expected: "cat",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			el := parseElement(t, test.fragment)
			render.Preformat(el)
			if want, got := test.expected, el.Text(); want != got {
				t.Fatalf("Preformat text; want: %q, got: %q", want, got)
			}
		})
	}
}

// TestPreformat_parens tests parenthesization of grouping elements.
func TestPreformat_parens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fragment string

		expectedText string
		expectedTail string
	}{
		{
			name:         "gramGrp with text",
			fragment:     `<entry><gramGrp>masc</gramGrp></entry>`,
			expectedText: "(masc",
			expectedTail: ")",
		},
		{
			name:         "gramGrp without text",
			fragment:     `<entry><gramGrp><gen>m</gen></gramGrp></entry>`,
			expectedText: "(",
			expectedTail: ")",
		},
		{
			name:         "already parenthesized unchanged",
			fragment:     `<entry><gramGrp>(masc</gramGrp>)</entry>`,
			expectedText: "(masc",
			expectedTail: ")",
		},
		{
			name:         "etym parenthesized",
			fragment:     `<entry><etym>from Latin</etym></entry>`,
			expectedText: "(from Latin",
			expectedTail: ")",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			el := parseElement(t, test.fragment)
			render.Preformat(el)
			child := el.ChildElements()[0]
			if want, got := test.expectedText, child.Text(); want != got {
				t.Fatalf("Preformat text; want: %q, got: %q", want, got)
			}
			if want, got := test.expectedTail, child.Tail(); want != got {
				t.Fatalf("Preformat tail; want: %q, got: %q", want, got)
			}
		})
	}
}

// TestPreformat_idempotent verifies that applying the pre-formatting pass
// twice leaves the tree unchanged after the first application.
func TestPreformat_idempotent(t *testing.T) {
	t.Parallel()

	el := parseElement(t, `<entry><pron>kæt</pron><gramGrp>masc</gramGrp><etym>Latin</etym></entry>`)
	render.Preformat(el)
	first := render.Text(el.Copy())
	render.Preformat(el)
	second := render.Text(el.Copy())

	if first != second {
		t.Fatalf("Preformat not idempotent; first: %q, second: %q", first, second)
	}
}

// TestHighlight tests headword highlighting.
func TestHighlight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fragment string

		expected string
	}{
		{
			name:     "orth highlighted",
			fragment: `<entry><orth>run</orth></entry>`,
			expected: "<b>run</b>",
		},
		{
			name:     "quote highlighted",
			fragment: `<entry><sense><cit><quote>run out</quote></cit></sense></entry>`,
			expected: "<b>run out</b>",
		},
		{
			name:     "empty orth unchanged",
			fragment: `<entry><orth></orth></entry>`,
			expected: "",
		},
		{
			name:     "gloss not highlighted",
			fragment: `<entry><sense><gloss>to move fast</gloss></sense></entry>`,
			expected: "<br/>to move fast",
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			el := parseElement(t, test.fragment)
			render.Highlight(el)
			if got := render.Text(el); !strings.Contains(got, test.expected) {
				t.Fatalf("Highlight; expected %q in %q", test.expected, got)
			}
		})
	}
}

// TestEntry tests the full render pipeline.
func TestEntry(t *testing.T) {
	t.Parallel()

	el := parseElement(t,
		`<entry><form><orth>run</orth><pron>rʌn</pron></form><sense><gloss>to move fast</gloss></sense></entry>`)

	if want, got := "<br/><b>run</b>, [rʌn], <br/>to move fast", render.Entry(el); want != got {
		t.Fatalf("Entry; want: %q, got: %q", want, got)
	}
}
