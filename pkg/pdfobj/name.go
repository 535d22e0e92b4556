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

package pdfobj

import (
	"encoding/hex"
	"strings"
)

// Name is a PDF name object, stored without its leading slash.
type Name string

// String returns the name's serialized form (with trailing space).
func (n Name) String() string { return "/" + EncodeName(string(n)) + " " }

func (n Name) Serialize(dst []byte) []byte { return append(dst, n.String()...) }

// isRegular reports whether c may be emitted verbatim inside a name:
// printable ASCII, excluding whitespace and the PDF delimiters
// ()<>[]{}/%  and '#'.
func isRegular(c byte) bool {
	if c <= ' ' || c > '~' {
		return false
	}
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%', '#':
		return false
	}
	return true
}

// EncodeName #xx-escapes every byte of s that is not a PDF regular
// character. s is treated as a raw byte sequence, not Unicode text: no
// normalization is applied, so the output round-trips to the exact
// input bytes.
func EncodeName(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isRegular(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('#')
		sb.WriteString(hex.EncodeToString([]byte{c}))
	}
	return sb.String()
}
