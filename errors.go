// Copyright © 2018 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package diverseseq

import "fmt"

// ConfigError reports an unknown mode, a missing/forbidden option, or an
// incompatible moltype combination, naming the offending option.
type ConfigError struct {
	Option string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("diverseseq: config error for %q: %s", e.Option, e.Reason)
}

// NewConfigError builds a ConfigError naming the offending option.
func NewConfigError(option, reason string) error {
	return &ConfigError{Option: option, Reason: reason}
}

// TypeError reports a wrongly-typed SeqRecord field.
type TypeError struct {
	Field string
	Want  string
	Got   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("diverseseq: field %q must be %s, got %s", e.Field, e.Want, e.Got)
}

// ValueError reports a coord-dimension mismatch, subtraction of an absent
// record, or an out-of-range alphabet index during decoding.
type ValueError struct {
	Reason string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("diverseseq: value error: %s", e.Reason)
}

// NewValueError builds a ValueError.
func NewValueError(reason string) error {
	return &ValueError{Reason: reason}
}

// InvariantError reports a violated engine invariant: a NaN delta_jsd, or a
// SummedRecords sort-order check failing. Per spec.md §7 these abort the
// program, since they indicate a bug rather than bad input.
type InvariantError struct {
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("diverseseq: invariant violated: %s", e.Reason)
}

// NewInvariantError builds an InvariantError.
func NewInvariantError(reason string) error {
	return &InvariantError{Reason: reason}
}
