/*
Copyright 2018 The pdfcpu Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package sink implements an append-only byte sink: a thin,
// forward-only wrapper over a bufio.Writer that tracks the current
// write offset and remembers the first write error it sees.
package sink

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Sink is an append-only byte sink. Once a write fails, every
// subsequent call to Write returns the same sticky error without
// touching the underlying writer again.
type Sink struct {
	w      *bufio.Writer
	offset int64
	err    error
}

// New wraps w in a Sink.
func New(w io.Writer) *Sink {
	return &Sink{w: bufio.NewWriter(w)}
}

// Position returns the number of bytes written so far, in O(1).
func (s *Sink) Position() int64 { return s.offset }

// Err returns the sticky failure, if any.
func (s *Sink) Err() error { return s.err }

// Write appends p to the sink. Once Err() is non-nil, Write is a
// no-op that returns the same error.
func (s *Sink) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	s.offset += int64(n)
	if err != nil {
		s.err = errors.Wrap(err, "pdfstream: sink write failed")
	}
	return n, s.err
}

// WriteString appends s to the sink.
func (s *Sink) WriteString(str string) (int, error) {
	return s.Write([]byte(str))
}

// Flush flushes any buffered bytes to the underlying writer. It is a
// no-op if the sink has already failed.
func (s *Sink) Flush() error {
	if s.err != nil {
		return s.err
	}
	if err := s.w.Flush(); err != nil {
		s.err = errors.Wrap(err, "pdfstream: sink flush failed")
		return s.err
	}
	return nil
}
