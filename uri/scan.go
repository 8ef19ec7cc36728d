/*
Copyright 2026 Uriel Authors

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

package uri

import "strings"

// scanner is a forward-only cursor over the raw input string. Parsing is a
// sequence of takeUntil calls over small delimiter sets; the scanner never
// backs up. All delimiters recognized by the parser are single ASCII bytes,
// so byte positions are safe even when component values carry multi-byte
// UTF-8 sequences.
type scanner struct {
	input string
	pos   int
}

// newScanner creates a scanner positioned at the start of s.
func newScanner(s string) *scanner {
	return &scanner{input: s}
}

// eof reports whether the cursor has consumed the whole input.
func (s *scanner) eof() bool {
	return s.pos >= len(s.input)
}

// peek returns the byte at the cursor without advancing, or 0 at end of
// input.
func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.input[s.pos]
}

// consume advances past the literal prefix lit and reports whether the
// remaining input actually started with it. On a false report the cursor is
// unchanged.
func (s *scanner) consume(lit string) bool {
	if !strings.HasPrefix(s.input[s.pos:], lit) {
		return false
	}
	s.pos += len(lit)
	return true
}

// takeUntil advances the cursor to the first occurrence of any byte in
// delims, or to end of input, and returns the text passed over. The
// delimiter itself is not consumed.
func (s *scanner) takeUntil(delims string) string {
	rest := s.input[s.pos:]
	i := strings.IndexAny(rest, delims)
	if i < 0 {
		s.pos = len(s.input)
		return rest
	}
	s.pos += i
	return rest[:i]
}

// rest consumes and returns everything remaining.
func (s *scanner) rest() string {
	r := s.input[s.pos:]
	s.pos = len(s.input)
	return r
}
