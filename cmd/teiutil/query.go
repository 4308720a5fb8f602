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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/k3a/html2text"
	"github.com/urfave/cli/v2"
)

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "Query dictionaries",
	ArgsUsage: "[SENTENCE]",
	Description: strings.Join([]string{
		"Search all dictionaries for words and word combinations of SENTENCE.",
		"Matched entries are printed in plain text, one dictionary at a time.",
	}, "\n"),
	Action: func(c *cli.Context) error {
		sentence := strings.Join(c.Args().Slice(), " ")

		dicts, errs := openTEIDicts(c.StringSlice("data-dir"))
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err)
		}

		for _, d := range dicts {
			translations := d.Translate(sentence)
			if len(translations) == 0 {
				continue
			}

			fmt.Fprintln(c.App.Writer, d.Bookname())
			fmt.Fprintln(c.App.Writer)
			for _, t := range translations {
				fmt.Fprintln(c.App.Writer, html2text.HTML2Text(t))
				fmt.Fprintln(c.App.Writer, "--------")
			}
			fmt.Fprintln(c.App.Writer)
		}

		if len(errs) > 0 {
			return cli.Exit("", ExitCodeUnknownError)
		}
		return nil
	},
}
