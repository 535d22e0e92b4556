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
	"bytes"
	"encoding/hex"
	"strings"
)

// String is a PDF string value. Serialize picks hex "<...>" form if
// the raw payload contains '(', ')', or '\\'; otherwise literal
// "(...)" form. Callers never choose the representation themselves.
type String []byte

func (s String) String() string {
	if needsHexLiteral(s) {
		return "<" + strings.ToUpper(hex.EncodeToString(s)) + "> "
	}
	var b bytes.Buffer
	b.WriteByte('(')
	b.Write(s)
	b.WriteByte(')')
	b.WriteByte(' ')
	return b.String()
}

func (s String) Serialize(dst []byte) []byte { return append(dst, s.String()...) }

func needsHexLiteral(b []byte) bool {
	for _, c := range b {
		if c == '(' || c == ')' || c == '\\' {
			return true
		}
	}
	return false
}
