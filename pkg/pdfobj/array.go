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

// Array is a PDF array object.
type Array []Value

func (a Array) String() string { return string(a.Serialize(nil)) }

func (a Array) Serialize(dst []byte) []byte {
	dst = append(dst, "[ "...)
	for _, v := range a {
		dst = v.Serialize(dst)
	}
	dst = append(dst, "] "...)
	return dst
}
