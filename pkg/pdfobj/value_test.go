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

import "testing"

func TestRealString(t *testing.T) {
	for _, tc := range []struct {
		in   Real
		want string
	}{
		{0, "0.00000 "},
		{1.5, "1.50000 "},
		{3.1, "3.10000 "},
		{-3.14159265, "-3.14159 "},
	} {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("Real(%v).String() = %q, want %q", float64(tc.in), got, tc.want)
		}
	}
}

func TestReferenceString(t *testing.T) {
	r := Reference{Num: 12, Gen: 0}
	if got, want := r.String(), "12 0 R "; got != want {
		t.Errorf("Reference.String() = %q, want %q", got, want)
	}
}

func TestStringLiteralVsHex(t *testing.T) {
	for _, tc := range []struct {
		in   String
		want string
	}{
		{String("hello"), "(hello) "},
		{String("a(b)c"), "<6128622963> "},
	} {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("String(%q).String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNameEncoding(t *testing.T) {
	if got, want := Name("Plain").String(), "/Plain "; got != want {
		t.Errorf("Name.String() = %q, want %q", got, want)
	}
	if got, want := Name("A B").String(), "/A#20B "; got != want {
		t.Errorf("Name.String() = %q, want %q", got, want)
	}
}

func TestNameRoundTripsAllBytes(t *testing.T) {
	var b []byte
	for i := 0; i < 256; i++ {
		b = append(b, byte(i))
	}
	encoded := EncodeName(string(b))
	// Every escaped or verbatim byte must decode back to the original.
	decoded, err := decodeNameForTest(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded != string(b) {
		t.Errorf("round trip mismatch: got %d bytes, want %d bytes", len(decoded), len(b))
	}
}

// TestNameRoundTripsComposableUTF8 exercises a byte sequence that
// Unicode NFC normalization would recompose into a different sequence
// of bytes: "e" (0x65) followed by the combining acute accent U+0301
// (0xCC 0x81) normalizes to "é" (0xC3 0xA9). A name's bytes are opaque
// and must survive unchanged regardless of what they happen to decode
// to as UTF-8.
func TestNameRoundTripsComposableUTF8(t *testing.T) {
	b := []byte{0x65, 0xCC, 0x81}
	encoded := EncodeName(string(b))
	decoded, err := decodeNameForTest(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded != string(b) {
		t.Errorf("round trip mismatch: got %x, want %x", []byte(decoded), b)
	}
}

// decodeNameForTest reverses EncodeName's #xx escaping for test
// verification only; production code never needs to decode a name it
// just serialized.
func decodeNameForTest(s string) (string, error) {
	var out []byte
	for i := 0; i < len(s); i++ {
		if s[i] == '#' && i+2 < len(s) {
			hi, lo := s[i+1], s[i+2]
			out = append(out, hexNibble(hi)<<4|hexNibble(lo))
			i += 2
			continue
		}
		out = append(out, s[i])
	}
	return string(out), nil
}

func hexNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

func TestArraySerialize(t *testing.T) {
	a := Array{Integer(1), Integer(2), Name("X")}
	if got, want := a.String(), "[ 1 2 /X ] "; got != want {
		t.Errorf("Array.String() = %q, want %q", got, want)
	}
}

func TestDictNoDuplicateKeys(t *testing.T) {
	d := NewDict()
	if err := d.Set("Type", Name("Catalog")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := d.Set("Type", Name("Page")); err == nil {
		t.Fatal("expected error setting duplicate key")
	}
}

func TestDictPreservesInsertionOrder(t *testing.T) {
	d := NewDict()
	d.Set("B", Integer(2))
	d.Set("A", Integer(1))
	keys := d.Keys()
	if len(keys) != 2 || keys[0] != "B" || keys[1] != "A" {
		t.Errorf("Keys() = %v, want [B A]", keys)
	}
}

func TestDictSerialize(t *testing.T) {
	d := NewDict()
	d.Set("Type", Name("Catalog"))
	if got, want := d.String(), "<< /Type /Catalog >> "; got != want {
		t.Errorf("Dict.String() = %q, want %q", got, want)
	}
}

func TestStreamValidateLengthMismatch(t *testing.T) {
	d := NewDict()
	d.Set("Length", Integer(3))
	s := Stream{Dict: d, Data: []byte("abcd")}
	if err := s.Validate(); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestStreamSerialize(t *testing.T) {
	d := NewDict()
	d.Set("Length", Integer(5))
	s := Stream{Dict: d, Data: []byte("hello")}
	want := "<< /Length 5 >> stream\r\nhello\r\nendstream\r\n"
	if got := s.String(); got != want {
		t.Errorf("Stream.String() = %q, want %q", got, want)
	}
}
