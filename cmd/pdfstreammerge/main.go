/*
Copyright 2020 The pdfcpu Authors.

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

// Command pdfstreammerge drives the Streaming Merger from a YAML
// manifest describing synthetic source documents, since parsing real
// PDF files into pdfdoc.Document is out of scope for this module.
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/mechiko/pdfstream/internal/log"
	"github.com/mechiko/pdfstream/pkg/merger"
	"github.com/mechiko/pdfstream/pkg/pdfdoc"
	"github.com/mechiko/pdfstream/pkg/pdfobj"
	"github.com/mechiko/pdfstream/pkg/pdfwriter"
)

var (
	outPath  string
	manifest string
	verbose  bool
)

func init() {
	flag.StringVar(&outPath, "out", "merged.pdf", "output PDF path")
	flag.StringVar(&manifest, "manifest", "", "YAML manifest describing source documents")
	flag.BoolVar(&verbose, "v", false, "verbose logging")
}

// manifestDoc describes one synthetic source document holding Pages
// pages, each page a single object carrying a MediaBox of
// mediaBox[0..3].
type manifestDoc struct {
	Pages    int    `yaml:"pages"`
	MediaBox [4]int `yaml:"mediaBox"`
}

type manifestFile struct {
	Documents []manifestDoc `yaml:"documents"`
}

func main() {
	flag.Parse()
	if verbose {
		log.SetDefaultLoggers()
	}
	if manifest == "" {
		fmt.Fprintln(os.Stderr, "pdfstreammerge: -manifest is required")
		os.Exit(1)
	}
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pdfstreammerge: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	b, err := os.ReadFile(manifest)
	if err != nil {
		return err
	}
	var mf manifestFile
	if err := yaml.Unmarshal(b, &mf); err != nil {
		return err
	}

	m, err := merger.Begin(outPath, pdfwriter.DefaultConfig())
	if err != nil {
		return err
	}

	for i, md := range mf.Documents {
		doc := pdfdoc.New()
		box := pdfobj.Array{
			pdfobj.Integer(md.MediaBox[0]),
			pdfobj.Integer(md.MediaBox[1]),
			pdfobj.Integer(md.MediaBox[2]),
			pdfobj.Integer(md.MediaBox[3]),
		}
		for p := 0; p < md.Pages; p++ {
			pageDict := pdfobj.NewDict()
			pageDict.Set("Type", pdfobj.Name("Page"))
			pageDict.Set("MediaBox", box)
			ref := doc.AddObject(0, pageDict)
			doc.AddPage(ref)
		}
		if err := m.AddDocument(doc, i, false); err != nil {
			return err
		}
	}

	return m.Finish()
}
