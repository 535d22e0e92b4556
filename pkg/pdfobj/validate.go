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

// Validate walks v and every Value it contains, reporting the first
// structural problem found: a Stream whose /Length disagrees with its
// payload. A dict key can never be anything but a Name since Dict.Set
// only accepts Name keys, so that class of structural error cannot
// arise here.
//
// Callers that intend to serialize v should call Validate first;
// Serialize itself does not validate, and emits an invalid value's
// bytes unchecked.
func Validate(v Value) error {
	switch t := v.(type) {
	case Stream:
		if err := t.Validate(); err != nil {
			return err
		}
		return Validate(t.Dict)
	case *Dict:
		for _, k := range t.Keys() {
			val, _ := t.Get(k)
			if err := Validate(val); err != nil {
				return err
			}
		}
	case Array:
		for _, e := range t {
			if err := Validate(e); err != nil {
				return err
			}
		}
	}
	return nil
}
