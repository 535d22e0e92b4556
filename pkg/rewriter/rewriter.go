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

// Package rewriter rewrites indirect references inside a PDF value
// according to a mapping from source to destination references. It
// never mutates the value handed to it: every call produces a fresh,
// structurally identical deep copy.
package rewriter

import "github.com/mechiko/pdfstream/pkg/pdfobj"

// Mapping maps a source reference to its destination reference.
type Mapping map[pdfobj.Reference]pdfobj.Reference

// Rewrite returns a deep copy of v with every indirect reference
// present in m substituted by its mapped destination. References not
// in m are preserved verbatim. Rewrite recurses into arrays and
// dictionary values (never into dictionary keys, since names are
// never references) and into stream dictionaries; stream payloads are
// copied unchanged, byte for byte.
func Rewrite(v pdfobj.Value, m Mapping) pdfobj.Value {
	switch t := v.(type) {
	case pdfobj.Reference:
		if dst, ok := m[t]; ok {
			return dst
		}
		return t

	case pdfobj.Array:
		out := make(pdfobj.Array, len(t))
		for i, elem := range t {
			out[i] = Rewrite(elem, m)
		}
		return out

	case *pdfobj.Dict:
		return rewriteDict(t, m)

	case pdfobj.Stream:
		return pdfobj.Stream{
			Dict: rewriteDict(t.Dict, m),
			Data: append([]byte(nil), t.Data...), // payload copied unchanged, never walked
		}

	case pdfobj.String:
		// No references inside; copy the bytes so the result shares
		// no backing array with the source.
		return append(pdfobj.String(nil), t...)

	default:
		// Null, Boolean, Integer, Real, Name: no references can occur
		// inside these, return as-is (they are value types).
		return v
	}
}

func rewriteDict(d *pdfobj.Dict, m Mapping) *pdfobj.Dict {
	out := pdfobj.NewDict()
	for _, k := range d.Keys() {
		val, _ := d.Get(k)
		out.Set(k, Rewrite(val, m))
	}
	return out
}
