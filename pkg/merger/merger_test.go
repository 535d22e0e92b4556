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

package merger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mechiko/pdfstream/pkg/pdfdoc"
	"github.com/mechiko/pdfstream/pkg/pdfobj"
	"github.com/mechiko/pdfstream/pkg/pdfwriter"
)

// buildTwoObjectPage builds a tiny one-page document: object 1 is a
// resource, object 2 is the page whose dict references it.
func buildTwoObjectPage(t *testing.T) *pdfdoc.Document {
	t.Helper()
	d := pdfdoc.New()

	resDict := pdfobj.NewDict()
	resDict.Set("Type", pdfobj.Name("Font"))
	resRef := d.AddObject(0, resDict) // object 1

	pageDict := pdfobj.NewDict()
	pageDict.Set("Type", pdfobj.Name("Page"))
	pageDict.Set("Font", resRef)
	pageRef := d.AddObject(0, pageDict) // object 2

	d.AddPage(pageRef)
	return d
}

func TestMergeTwoDocuments(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "merged.pdf")

	m, err := Begin(out, pdfwriter.DefaultConfig())
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}

	d1 := buildTwoObjectPage(t)
	d2 := buildTwoObjectPage(t)

	if err := m.AddDocument(d1, 0, false); err != nil {
		t.Fatalf("AddDocument(d1): %v", err)
	}
	if err := m.AddDocument(d2, 1, false); err != nil {
		t.Fatalf("AddDocument(d2): %v", err)
	}
	if err := m.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	if m.pageCount != 2 {
		t.Errorf("pageCount = %d, want 2", m.pageCount)
	}
	if m.documentCount != 2 {
		t.Errorf("documentCount = %d, want 2", m.documentCount)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	content := string(b)
	if !strings.HasPrefix(content, "%PDF-") {
		t.Error("output missing PDF header")
	}
	if !strings.HasSuffix(content, "%%EOF") {
		t.Error("output missing trailing %%EOF")
	}
	// 4 transplanted objects (2 per doc) + synthesized pages + catalog = 6.
	if got := strings.Count(content, " obj\r\n"); got != 6 {
		t.Errorf("object count = %d, want 6", got)
	}
}

func TestAddDocumentDropsPageAbsentFromMapping(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "merged.pdf")

	m, err := Begin(out, pdfwriter.DefaultConfig())
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}

	d := pdfdoc.New()
	pageDict := pdfobj.NewDict()
	pageDict.Set("Type", pdfobj.Name("Page"))
	d.AddObject(0, pageDict) // object 1, a real page

	// Reference an object number that was never populated: a
	// deliberately inconsistent source document.
	d.AddPage(pdfobj.Reference{Num: 99, Gen: 0})

	if err := m.AddDocument(d, 0, false); err != nil {
		t.Fatalf("AddDocument: %v", err)
	}
	if m.pageCount != 0 {
		t.Errorf("pageCount = %d, want 0 (dangling page ref must be dropped)", m.pageCount)
	}
	if err := m.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
}

func TestFinishAbortsOnUnfulfilledReservation(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "merged.pdf")

	m, err := Begin(out, pdfwriter.DefaultConfig())
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	// Reserve directly on the writer without fulfilling it, bypassing
	// AddDocument, to simulate a broken caller.
	if _, err := m.writer.ReserveObject(0); err != nil {
		t.Fatalf("ReserveObject: %v", err)
	}

	if err := m.Finish(); err == nil {
		t.Fatal("expected Finish to fail on unfulfilled reservation")
	}
	if _, err := os.Stat(out); err == nil {
		t.Fatal("destination file must not exist after an aborted merge")
	}
}
