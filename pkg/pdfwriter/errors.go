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

package pdfwriter

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotOpen is returned when an operation other than a query is
// invoked while the writer is not in the Open state.
var ErrNotOpen = errors.New("pdfstream: writer is not open")

// ErrSinkFailure is returned when the byte sink fails a write or
// flush. The failure is sticky; the sink's own error is not attached.
var ErrSinkFailure = errors.New("pdfstream: byte sink write failed")

// UnfulfilledReservationError is returned by EndDocument when a
// reserved object slot was never filled.
type UnfulfilledReservationError struct{ Num int }

func (e *UnfulfilledReservationError) Error() string {
	return fmt.Sprintf("pdfstream: object %d reserved but never written", e.Num)
}

// InvalidReservationError is returned by WriteReservedObject when its
// reference is out of range, not reserved, or already fulfilled.
type InvalidReservationError struct{ Num, Gen int }

func (e *InvalidReservationError) Error() string {
	return fmt.Sprintf("pdfstream: reference %d %d is not a pending reservation", e.Num, e.Gen)
}

// StructuralError reports a programming error found by pdfobj.Validate
// before an object is written: a stream whose /Length is missing, is
// not an integer, or disagrees with its payload.
type StructuralError struct{ Msg string }

func (e *StructuralError) Error() string { return "pdfstream: structural error: " + e.Msg }

// FileCommitFailureError wraps a failure to atomically replace the
// destination file at merger finish.
type FileCommitFailureError struct{ Err error }

func (e *FileCommitFailureError) Error() string {
	return "pdfstream: could not commit output file: " + e.Err.Error()
}

func (e *FileCommitFailureError) Unwrap() error { return e.Err }
