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

// Dict is a PDF dictionary. Unlike a bare Go map, key order is the
// order keys were first inserted, and a key may be set only once:
// Set returns an error on a duplicate key rather than overwriting it.
type Dict struct {
	keys   []Name
	values map[Name]Value
}

// NewDict returns an empty Dict.
func NewDict() *Dict {
	return &Dict{values: map[Name]Value{}}
}

// Set inserts key=val. It returns an error if key is already present.
func (d *Dict) Set(key Name, val Value) error {
	if _, ok := d.values[key]; ok {
		return errors.Errorf("pdfstream: dict already has key %q", key)
	}
	d.keys = append(d.keys, key)
	d.values[key] = val
	return nil
}

// Get returns the value for key and whether it was present.
func (d *Dict) Get(key Name) (Value, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Keys returns the dict's keys in insertion order.
func (d *Dict) Keys() []Name { return d.keys }

// Clone returns a shallow copy of d: a new Dict with the same keys in
// the same order, sharing the underlying values.
func (d *Dict) Clone() *Dict {
	c := NewDict()
	for _, k := range d.keys {
		c.keys = append(c.keys, k)
		c.values[k] = d.values[k]
	}
	return c
}

func (d *Dict) String() string { return string(d.Serialize(nil)) }

func (d *Dict) Serialize(dst []byte) []byte {
	dst = append(dst, "<< "...)
	for _, k := range d.keys {
		dst = k.Serialize(dst)
		dst = d.values[k].Serialize(dst)
	}
	dst = append(dst, ">> "...)
	return dst
}
