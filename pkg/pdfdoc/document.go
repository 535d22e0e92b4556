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

// Package pdfdoc is a minimal in-memory implementation of the source
// document collaborator the merger consumes. It performs no PDF
// parsing: callers build a Document directly from already-parsed
// values. Parsing a real PDF file into this shape is out of scope.
package pdfdoc

import "github.com/mechiko/pdfstream/pkg/pdfobj"

// Slot is one entry in a Document's object table. A nil Value
// represents an absent (null) slot, skipped by the merger.
type Slot struct {
	Generation int
	Value      pdfobj.Value
}

// Document is an ordered slot array plus an ordered page list, both
// addressed in the document's own numbering space (object number i
// is Slots[i-1]; object number 0 does not appear here).
type Document struct {
	Slots []Slot
	Pages []pdfobj.Reference
}

// New returns an empty Document.
func New() *Document { return &Document{} }

// AddObject appends a populated slot and returns its reference in
// this document's own numbering space.
func (d *Document) AddObject(generation int, v pdfobj.Value) pdfobj.Reference {
	d.Slots = append(d.Slots, Slot{Generation: generation, Value: v})
	return pdfobj.Reference{Num: len(d.Slots), Gen: generation}
}

// AddNullSlot appends an absent slot, consuming an object number
// without a value — the merger skips it during both passes.
func (d *Document) AddNullSlot(generation int) pdfobj.Reference {
	d.Slots = append(d.Slots, Slot{Generation: generation, Value: nil})
	return pdfobj.Reference{Num: len(d.Slots), Gen: generation}
}

// AddPage appends ref, which must address a slot in this Document, to
// the page list.
func (d *Document) AddPage(ref pdfobj.Reference) { d.Pages = append(d.Pages, ref) }

// Slot returns the slot at object number num (1-based), or false if
// num is out of range.
func (d *Document) Slot(num int) (Slot, bool) {
	if num < 1 || num > len(d.Slots) {
		return Slot{}, false
	}
	return d.Slots[num-1], true
}
