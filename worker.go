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
	"sync"
)

// ErrWorkerClosed indicates that the worker has been closed.
var ErrWorkerClosed = errors.New("worker closed")

// Worker runs lookups against a dictionary on a background goroutine so that
// callers with an interactive event loop can keep lookups off the blocking
// path. Lookups are serialized in submission order. The lookup itself is
// synchronous and cannot be interrupted; cancelling the context abandons the
// call and its eventual result is discarded.
type Worker struct {
	dict *TEIDict

	requests chan workerRequest
	quit     chan struct{}

	closeOnce sync.Once
}

type workerRequest struct {
	sentence string
	result   chan []string
}

// NewWorker returns a Worker for the given dictionary and starts its
// background goroutine.
func NewWorker(d *TEIDict) *Worker {
	w := &Worker{
		dict:     d,
		requests: make(chan workerRequest),
		quit:     make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *Worker) run() {
	for {
		select {
		case req := <-w.requests:
			req.result <- w.dict.Translate(req.sentence)
		case <-w.quit:
			return
		}
	}
}

// Translate submits a lookup to the worker and waits for its result. It
// returns the context's error if ctx is cancelled before the result is
// available, and ErrWorkerClosed if the worker has been closed.
func (w *Worker) Translate(ctx context.Context, sentence string) ([]string, error) {
	// Fail fast so that a closed worker or cancelled context never submits.
	select {
	case <-w.quit:
		return nil, ErrWorkerClosed
	default:
	}
	if err := ctx.Err(); err != nil {
		//nolint:wrapcheck // context error should not be wrapped
		return nil, err
	}

	req := workerRequest{
		sentence: sentence,
		// The result channel is buffered so the worker never blocks on an
		// abandoned request.
		result: make(chan []string, 1),
	}

	select {
	case w.requests <- req:
	case <-w.quit:
		return nil, ErrWorkerClosed
	case <-ctx.Done():
		//nolint:wrapcheck // context error should not be wrapped
		return nil, ctx.Err()
	}

	select {
	case translations := <-req.result:
		return translations, nil
	case <-ctx.Done():
		//nolint:wrapcheck // context error should not be wrapped
		return nil, ctx.Err()
	}
}

// Close stops the worker's background goroutine. Lookups submitted after
// Close fail with ErrWorkerClosed.
func (w *Worker) Close() {
	w.closeOnce.Do(func() {
		close(w.quit)
	})
}
