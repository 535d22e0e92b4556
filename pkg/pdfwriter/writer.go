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

// Package pdfwriter implements the streaming PDF writer: document
// prologue, indirect-object emission (immediate and reserved-then-
// filled), page accumulation, catalog/page-tree synthesis, and xref +
// trailer emission.
package pdfwriter

import (
	"fmt"

	"github.com/mechiko/pdfstream/internal/log"
	"github.com/mechiko/pdfstream/pkg/pdfobj"
	"github.com/mechiko/pdfstream/pkg/sink"
)

// state is the writer's lifecycle state.
type state int

const (
	stateCreated state = iota
	stateOpen
	stateClosed
	stateFailed
)

// Writer is a single-threaded, non-suspending streaming PDF writer.
// It owns its Sink exclusively and never closes it.
type Writer struct {
	sink  *sink.Sink
	cfg   Config
	state state

	table *offsetTable
	pages []pdfobj.Reference

	catalogRef *pdfobj.Reference
	infoRef    *pdfobj.Reference
}

// New constructs a Writer over s using cfg.
func New(s *sink.Sink, cfg Config) *Writer {
	return &Writer{sink: s, cfg: cfg, table: newOffsetTable()}
}

// BeginDocument emits the PDF header and transitions the writer to
// Open. It returns ErrSinkFailure if the sink is not writable.
func (w *Writer) BeginDocument() error {
	if w.state != stateCreated {
		return ErrNotOpen
	}
	_, err := w.sink.WriteString(fmt.Sprintf("%%PDF-%s\r\n", w.cfg.Version.String()))
	if err == nil {
		_, err = w.sink.WriteString(fmt.Sprintf("%% PDF producer: %s\r\n", w.cfg.ProducerID))
	}
	if err == nil {
		_, err = w.sink.Write([]byte{'%', 0xE2, 0xE3, 0xCF, 0xD3, '\r', '\n'})
	}
	if err == nil {
		_, err = w.sink.WriteString("\r\n")
	}
	if err != nil {
		w.state = stateFailed
		log.Write.Printf("beginDocument: sink failure: %v", err)
		return ErrSinkFailure
	}
	w.state = stateOpen
	return nil
}

// WriteObject allocates the next object number, emits its body
// immediately, and returns the new reference.
func (w *Writer) WriteObject(v pdfobj.Value, generation int) (pdfobj.Reference, error) {
	if w.state != stateOpen {
		return pdfobj.Reference{}, ErrNotOpen
	}
	if err := pdfobj.Validate(v); err != nil {
		w.state = stateFailed
		return pdfobj.Reference{}, &StructuralError{Msg: err.Error()}
	}
	num := w.table.alloc(generation, w.sink.Position())
	if err := w.emitObjectBody(num, generation, v); err != nil {
		return pdfobj.Reference{}, err
	}
	return pdfobj.Reference{Num: num, Gen: generation}, nil
}

// ReserveObject allocates the next object number without writing it.
// The caller must later call WriteReservedObject with this exact
// reference.
func (w *Writer) ReserveObject(generation int) (pdfobj.Reference, error) {
	if w.state != stateOpen {
		return pdfobj.Reference{}, ErrNotOpen
	}
	num := w.table.reserve(generation)
	return pdfobj.Reference{Num: num, Gen: generation}, nil
}

// WriteReservedObject fulfills a previously reserved slot, recording
// its offset now and emitting its body.
func (w *Writer) WriteReservedObject(ref pdfobj.Reference, v pdfobj.Value) error {
	if w.state != stateOpen {
		return ErrNotOpen
	}
	if err := pdfobj.Validate(v); err != nil {
		w.state = stateFailed
		return &StructuralError{Msg: err.Error()}
	}
	if !w.table.fulfill(ref.Num, ref.Gen, w.sink.Position()) {
		return &InvalidReservationError{Num: ref.Num, Gen: ref.Gen}
	}
	return w.emitObjectBody(ref.Num, ref.Gen, v)
}

func (w *Writer) emitObjectBody(num, generation int, v pdfobj.Value) error {
	_, err := w.sink.WriteString(fmt.Sprintf("%d %d obj\r\n", num, generation))
	if err == nil {
		_, err = w.sink.Write(v.Serialize(nil))
	}
	if err == nil {
		_, err = w.sink.WriteString("\r\nendobj\r\n")
	}
	if err != nil {
		w.state = stateFailed
		log.Write.Printf("object %d %d: sink failure: %v", num, generation, err)
		return ErrSinkFailure
	}
	return nil
}

// AddPage appends ref to the pages list. The referent is not
// validated.
func (w *Writer) AddPage(ref pdfobj.Reference) { w.pages = append(w.pages, ref) }

// SetCatalogReference overrides the synthesized catalog reference.
func (w *Writer) SetCatalogReference(ref pdfobj.Reference) { w.catalogRef = &ref }

// SetInfoReference sets the trailer's /Info entry.
func (w *Writer) SetInfoReference(ref pdfobj.Reference) { w.infoRef = &ref }

// EndDocument synthesizes the page tree and catalog if needed, then
// emits the xref table, trailer, startxref and EOF marker, closing the
// writer.
func (w *Writer) EndDocument() error {
	if w.state != stateOpen {
		return ErrNotOpen
	}
	if n := w.table.unfulfilled(); n != 0 {
		return &UnfulfilledReservationError{Num: n}
	}

	if w.catalogRef == nil {
		if err := w.synthesizeCatalog(); err != nil {
			return err
		}
	}

	xrefOffset := w.sink.Position()
	if err := w.writeXref(); err != nil {
		return err
	}
	if err := w.writeTrailer(xrefOffset); err != nil {
		return err
	}

	if err := w.sink.Flush(); err != nil {
		w.state = stateFailed
		return ErrSinkFailure
	}

	w.state = stateClosed
	log.Stats.Printf("endDocument: %d objects, %d pages", w.table.len()-1, len(w.pages))
	return nil
}

func (w *Writer) synthesizeCatalog() error {
	kids := make(pdfobj.Array, len(w.pages))
	for i, p := range w.pages {
		kids[i] = p
	}
	pagesDict := pdfobj.NewDict()
	pagesDict.Set("Type", pdfobj.Name("Pages"))
	pagesDict.Set("Kids", kids)
	pagesDict.Set("Count", pdfobj.Integer(len(w.pages)))
	pagesRef, err := w.WriteObject(pagesDict, 0)
	if err != nil {
		return err
	}

	catalogDict := pdfobj.NewDict()
	catalogDict.Set("Type", pdfobj.Name("Catalog"))
	catalogDict.Set("Pages", pagesRef)
	catalogRef, err := w.WriteObject(catalogDict, 0)
	if err != nil {
		return err
	}
	w.catalogRef = &catalogRef
	return nil
}

func (w *Writer) writeXref() error {
	if _, err := w.sink.WriteString("xref\r\n"); err != nil {
		return w.fail(err)
	}
	k := w.table.len()
	if _, err := w.sink.WriteString(fmt.Sprintf("0 %d\r\n", k)); err != nil {
		return w.fail(err)
	}
	for i, e := range w.table.entries {
		off := e.offset
		if off < 0 {
			off = 0
		}
		kind := byte('n')
		if i == 0 || e.reserved {
			kind = 'f'
		}
		row := fmt.Sprintf("%010d %05d %c\r\n", off, e.generation, kind)
		if _, err := w.sink.WriteString(row); err != nil {
			return w.fail(err)
		}
	}
	return nil
}

func (w *Writer) writeTrailer(xrefOffset int64) error {
	trailer := pdfobj.NewDict()
	trailer.Set("Size", pdfobj.Integer(w.table.len()))
	trailer.Set("Root", *w.catalogRef)
	if w.infoRef != nil {
		trailer.Set("Info", *w.infoRef)
	}

	if _, err := w.sink.WriteString("trailer\r\n"); err != nil {
		return w.fail(err)
	}
	if _, err := w.sink.Write(trailer.Serialize(nil)); err != nil {
		return w.fail(err)
	}
	if _, err := w.sink.WriteString(fmt.Sprintf("\r\nstartxref\r\n%d\r\n%%%%EOF", xrefOffset)); err != nil {
		return w.fail(err)
	}
	return nil
}

func (w *Writer) fail(err error) error {
	w.state = stateFailed
	log.Write.Printf("sink failure: %v", err)
	return ErrSinkFailure
}
