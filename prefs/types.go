// This file is part of nesrom.
//
// nesrom is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nesrom is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nesrom.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value interface{}

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	value atomic.Value // bool
	def   bool
}

// NewBool returns a Bool with a default value that will be restored by
// Reset().
func NewBool(def bool) *Bool {
	p := &Bool{def: def}
	p.value.Store(def)
	return p
}

func (p *Bool) String() string {
	return fmt.Sprintf("%v", p.Get())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		p.value.Store(v)
	case string:
		p.value.Store(strings.ToLower(strings.TrimSpace(v)) == "true")
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
	}
	return nil
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	if v := p.value.Load(); v != nil {
		return v.(bool)
	}
	return p.def
}

// Reset sets the value to the default value.
func (p *Bool) Reset() error {
	return p.Set(p.def)
}

// String implements a string type in the prefs system.
type String struct {
	value atomic.Value // string
	def   string
}

// NewString returns a String with a default value that will be restored by
// Reset().
func NewString(def string) *String {
	p := &String{def: def}
	p.value.Store(def)
	return p
}

func (p *String) String() string {
	return p.Get().(string)
}

// Set new value to String type. New value must be of type string.
func (p *String) Set(v Value) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("prefs: cannot convert %T to prefs.String", v)
	}
	p.value.Store(strings.TrimSpace(s))
	return nil
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	if v := p.value.Load(); v != nil {
		return v.(string)
	}
	return p.def
}

// Reset sets the value to the default value.
func (p *String) Reset() error {
	return p.Set(p.def)
}

// Int implements an integer type in the prefs system.
type Int struct {
	value atomic.Value // int
	def   int
}

// NewInt returns an Int with a default value that will be restored by
// Reset().
func NewInt(def int) *Int {
	p := &Int{def: def}
	p.value.Store(def)
	return p
}

func (p *Int) String() string {
	return fmt.Sprintf("%d", p.Get())
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		p.value.Store(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Int", v)
		}
		p.value.Store(n)
	default:
		return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
	}
	return nil
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	if v := p.value.Load(); v != nil {
		return v.(int)
	}
	return p.def
}

// Reset sets the value to the default value.
func (p *Int) Reset() error {
	return p.Set(p.def)
}
