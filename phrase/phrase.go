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

// Package phrase implements search text normalization and sentence
// decomposition. A search sentence is decomposed into every contiguous word
// combination so that both single-word headwords and multi-word dictionary
// phrases can be matched.
package phrase

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ianlewis/go-teidict/internal/folding"
)

// Normalize folds a token to its canonical comparable form. It trims
// surrounding whitespace, performs Unicode case folding, and applies Unicode
// canonical composition (NFC). Normalize never fails; input that cannot be
// transformed normalizes to the empty string. The empty string never matches
// any headword.
func Normalize(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return ""
	}

	// Casers are stateful so a new transformer chain is created per call.
	folded, _, err := transform.String(transform.Chain(cases.Fold(), norm.NFC), token)
	if err != nil {
		return ""
	}
	return folded
}

// Decompose splits a sentence on whitespace and returns every contiguous
// combination of its normalized words joined by single spaces. For an N-word
// sentence exactly N(N+1)/2 combinations are returned: for each start index,
// left to right, the longest remaining phrase first followed by its shorter
// prefixes. An empty or whitespace-only sentence returns no combinations.
func Decompose(sentence string) []string {
	folded, _, err := transform.String(&folding.WhitespaceFolder{}, sentence)
	if err != nil || folded == "" {
		return nil
	}

	words := strings.Split(folded, " ")
	for i := range words {
		words[i] = Normalize(words[i])
	}

	combinations := make([]string, 0, len(words)*(len(words)+1)/2)
	for i := range words {
		for j := len(words); j > i; j-- {
			combinations = append(combinations, strings.Join(words[i:j], " "))
		}
	}
	return combinations
}

// Set is a set of word combinations supporting O(1) membership tests.
type Set map[string]struct{}

// NewSet returns a Set containing the given combinations.
func NewSet(combinations []string) Set {
	s := make(Set, len(combinations))
	for _, c := range combinations {
		s[c] = struct{}{}
	}
	return s
}

// Contains returns true if the combination is in the set.
func (s Set) Contains(combination string) bool {
	_, ok := s[combination]
	return ok
}
