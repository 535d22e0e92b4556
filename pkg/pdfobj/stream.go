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

import "github.com/pkg/errors"

// Stream is a dictionary followed by a raw payload. Dict must carry a
// /Length entry whose Integer value equals len(Data) exactly; the
// serializer never synthesizes it. Use Validate (directly, or via
// pdfobj.Validate) to check this before serializing.
type Stream struct {
	Dict *Dict
	Data []byte
}

// Validate checks that Dict's /Length matches len(Data). Serialize
// does not call Validate: callers that need to reject a malformed
// Stream before it reaches a sink must Validate it themselves.
func (s Stream) Validate() error {
	v, ok := s.Dict.Get("Length")
	if !ok {
		return errors.New("pdfstream: stream dict missing /Length")
	}
	n, ok := v.(Integer)
	if !ok {
		return errors.New("pdfstream: stream /Length is not an integer")
	}
	if int64(n) != int64(len(s.Data)) {
		return errors.Errorf("pdfstream: stream /Length %d does not match payload length %d", int64(n), len(s.Data))
	}
	return nil
}

func (s Stream) String() string { return string(s.Serialize(nil)) }

func (s Stream) Serialize(dst []byte) []byte {
	dst = s.Dict.Serialize(dst)
	dst = append(dst, "stream\r\n"...)
	dst = append(dst, s.Data...)
	dst = append(dst, "\r\nendstream\r\n"...)
	return dst
}
