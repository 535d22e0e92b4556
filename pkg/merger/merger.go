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

// Package merger binds a Streaming Writer to an atomically-committed
// output file and merges one source document at a time into it,
// renumbering every indirect reference into the writer's output
// numbering space.
package merger

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/mechiko/pdfstream/internal/log"
	"github.com/mechiko/pdfstream/pkg/pdfdoc"
	"github.com/mechiko/pdfstream/pkg/pdfobj"
	"github.com/mechiko/pdfstream/pkg/pdfwriter"
	"github.com/mechiko/pdfstream/pkg/rewriter"
	"github.com/mechiko/pdfstream/pkg/sink"
)

// Merger streams one or more source documents into a single merged
// output file. Each addDocument call releases its source document
// before returning; the merger itself holds no per-document state
// across calls.
type Merger struct {
	writer   *pdfwriter.Writer
	tempFile *os.File
	destPath string

	documentCount int
	pageCount     int
}

// Begin opens outputPath for atomic, write-to-temp/commit-on-finish
// output, constructs a Streaming Writer over it, and begins the
// document. On any failure the temp file, if created, is removed.
func Begin(outputPath string, cfg pdfwriter.Config) (*Merger, error) {
	dir := filepath.Dir(outputPath)
	tmp, err := os.CreateTemp(dir, ".pdfstream-merge-*.tmp")
	if err != nil {
		return nil, errors.Wrap(err, "pdfstream: open temp output file")
	}

	w := pdfwriter.New(sink.New(tmp), cfg)
	if err := w.BeginDocument(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, err
	}

	return &Merger{writer: w, tempFile: tmp, destPath: outputPath}, nil
}

// AddDocument merges doc into the output under construction.
// namespaceFields is accepted for forward compatibility and has no
// effect: field-namespacing is not implemented by this merger.
//
// It runs two passes over doc's slots (object numbers 1..N):
//  1. reserve pass — every non-null slot gets a fresh writer
//     reservation, recorded in a reference mapping.
//  2. emit pass — every non-null slot is rewritten against that
//     mapping and written to its reservation.
//
// After the emit pass, doc's pages are walked in order; a page whose
// original reference is absent from the mapping (an inconsistent
// source document) is silently dropped rather than merged.
func (m *Merger) AddDocument(doc *pdfdoc.Document, index int, namespaceFields bool) error {
	mapping := make(rewriter.Mapping, len(doc.Slots))

	for num := 1; num <= len(doc.Slots); num++ {
		slot, _ := doc.Slot(num)
		if slot.Value == nil {
			continue
		}
		newRef, err := m.writer.ReserveObject(0)
		if err != nil {
			return err
		}
		mapping[pdfobj.Reference{Num: num, Gen: slot.Generation}] = newRef
	}

	for num := 1; num <= len(doc.Slots); num++ {
		slot, _ := doc.Slot(num)
		if slot.Value == nil {
			continue
		}
		src := pdfobj.Reference{Num: num, Gen: slot.Generation}
		newRef := mapping[src]
		rewritten := rewriter.Rewrite(slot.Value, mapping)
		if err := m.writer.WriteReservedObject(newRef, rewritten); err != nil {
			return err
		}
	}

	for _, oldPageRef := range doc.Pages {
		newPageRef, ok := mapping[oldPageRef]
		if !ok {
			log.Merge.Printf("document %d: page ref %v not in mapping, dropped", index, oldPageRef)
			continue
		}
		m.writer.AddPage(newPageRef)
		m.pageCount++
	}

	m.documentCount++
	return nil
}

// Finish closes the underlying document (emitting the xref and
// trailer) and, on success, atomically commits the temp file to its
// final destination path. On any failure the partially written temp
// file is discarded and the destination path is left untouched.
func (m *Merger) Finish() error {
	if err := m.writer.EndDocument(); err != nil {
		m.abort()
		return err
	}
	if err := m.tempFile.Close(); err != nil {
		m.abort()
		return &pdfwriter.FileCommitFailureError{Err: err}
	}
	if err := os.Rename(m.tempFile.Name(), m.destPath); err != nil {
		os.Remove(m.tempFile.Name())
		return &pdfwriter.FileCommitFailureError{Err: err}
	}
	log.Stats.Printf("finish: merged %d documents, %d pages", m.documentCount, m.pageCount)
	return nil
}

func (m *Merger) abort() {
	m.tempFile.Close()
	os.Remove(m.tempFile.Name())
}
