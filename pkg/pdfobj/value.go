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

// Package pdfobj defines the PDF value model and its canonical,
// deterministic serialization to bytes. Serialize is a pure function:
// it never performs I/O and always produces the same bytes for the
// same value.
package pdfobj

import "fmt"

// Value is a PDF value: Null, Boolean, Integer, Real, String, Name,
// Array, *Dict, Stream or Reference.
type Value interface {
	fmt.Stringer

	// Serialize appends the canonical PDF byte representation of this
	// value, including its trailing separator space, to dst and
	// returns the extended slice.
	Serialize(dst []byte) []byte
}

// Null is the PDF null value.
type Null struct{}

func (Null) String() string              { return "null " }
func (Null) Serialize(dst []byte) []byte { return append(dst, "null "...) }

// Boolean is a PDF boolean value.
type Boolean bool

func (b Boolean) String() string {
	if b {
		return "true "
	}
	return "false "
}

func (b Boolean) Serialize(dst []byte) []byte { return append(dst, b.String()...) }

// Integer is a PDF integer value.
type Integer int64

func (i Integer) String() string              { return fmt.Sprintf("%d ", int64(i)) }
func (i Integer) Serialize(dst []byte) []byte { return append(dst, i.String()...) }

// Real is a PDF real number. It always serializes with exactly five
// fractional digits, regardless of the input's original precision.
type Real float64

func (r Real) String() string              { return fmt.Sprintf("%.5f ", float64(r)) }
func (r Real) Serialize(dst []byte) []byte { return append(dst, r.String()...) }

// Reference is an indirect reference to object number Num at
// generation Gen.
type Reference struct {
	Num int
	Gen int
}

func (ref Reference) String() string { return fmt.Sprintf("%d %d R ", ref.Num, ref.Gen) }

func (ref Reference) Serialize(dst []byte) []byte { return append(dst, ref.String()...) }
