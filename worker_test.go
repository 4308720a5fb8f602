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
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-teidict/internal/testutil"
)

// TestWorker tests background lookups.
func TestWorker(t *testing.T) {
	t.Parallel()

	path := testutil.MakeTempDict(t, testutil.MakeTEI("Test dictionary", runEntry), nil)
	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	w := NewWorker(d)
	defer w.Close()

	got, err := w.Translate(context.Background(), "run")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if diff := cmp.Diff(d.Translate("run"), got); diff != "" {
		t.Fatalf("Translate (-want, +got):\n%s", diff)
	}
}

// TestWorker_cancelled tests that a cancelled context abandons the lookup.
func TestWorker_cancelled(t *testing.T) {
	t.Parallel()

	path := testutil.MakeTempDict(t, testutil.MakeTEI("Test dictionary", runEntry), nil)
	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	w := NewWorker(d)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := w.Translate(ctx, "run"); !errors.Is(err, context.Canceled) {
		t.Fatalf("Translate; want: %v, got: %v", context.Canceled, err)
	}
}

// TestWorker_closed tests that lookups fail after Close.
func TestWorker_closed(t *testing.T) {
	t.Parallel()

	path := testutil.MakeTempDict(t, testutil.MakeTEI("Test dictionary", runEntry), nil)
	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	w := NewWorker(d)
	w.Close()

	if _, err := w.Translate(context.Background(), "run"); !errors.Is(err, ErrWorkerClosed) {
		t.Fatalf("Translate; want: %v, got: %v", ErrWorkerClosed, err)
	}
}
