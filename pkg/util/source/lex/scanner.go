// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package lex

import (
	"cmp"
)

// Scanner matches a prefix of the given items, returning how many items were
// matched.  Zero always means no match: a scanner which can legitimately
// match nothing (e.g. Many) still reports the length it consumed.
type Scanner[T any] func(items []T) uint

// And requires every scanner to match at the same starting position, and
// yields the longest of their matches.  Scanners are applied left to right.
// A rule like And(first, rest) therefore anchors rest's (typically wider)
// alphabet behind first's.
func And[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		var longest uint
		//
		for _, scanner := range scanners {
			n := scanner(items)
			//
			if n == 0 {
				return 0
			} else if n > longest {
				longest = n
			}
		}
		//
		return longest
	}
}

// Or yields the first scanner (left to right) which matches at the given
// position.
func Or[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		for _, scanner := range scanners {
			if n := scanner(items); n > 0 {
				return n
			}
		}
		//
		return 0
	}
}

// Sequence chains scanners one after another, each picking up where the
// previous match ended.  Every scanner must consume at least one item, so
// the whole sequence fails on exhausted input.
func Sequence[T comparable](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		var consumed uint
		//
		for _, scanner := range scanners {
			if consumed == uint(len(items)) {
				return 0
			}
			//
			n := scanner(items[consumed:])
			//
			if n == 0 {
				return 0
			}
			//
			consumed += n
		}
		//
		return consumed
	}
}

// Unit matches exactly the given items, in the given order.
func Unit[T comparable](expected ...T) Scanner[T] {
	return func(items []T) uint {
		if len(items) < len(expected) {
			return 0
		}
		//
		for i, e := range expected {
			if items[i] != e {
				return 0
			}
		}
		//
		return uint(len(expected))
	}
}

// String matches exactly the given string, byte for byte.
func String(s string) Scanner[rune] {
	return func(items []rune) uint {
		if len(items) < len(s) {
			return 0
		}
		//
		for i := range s {
			if items[i] != rune(s[i]) {
				return 0
			}
		}
		//
		return uint(len(s))
	}
}

// Within matches any single item in the given inclusive range.
func Within[T cmp.Ordered](lowest T, highest T) Scanner[T] {
	return func(items []T) uint {
		if len(items) == 0 || items[0] < lowest || highest < items[0] {
			return 0
		}
		//
		return 1
	}
}

// Not matches any single item except the given one.
func Not[T comparable](item T) Scanner[T] {
	return func(items []T) uint {
		if len(items) == 0 || items[0] == item {
			return 0
		}
		//
		return 1
	}
}

// Many matches zero or more repetitions of the given scanner, consuming as
// many as it can.
func Many[T any](scanner Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		var consumed uint
		//
		for consumed < uint(len(items)) {
			n := scanner(items[consumed:])
			//
			if n == 0 {
				break
			}
			//
			consumed += n
		}
		//
		return consumed
	}
}

// Until matches everything strictly before the first occurrence of the given
// item, or the whole remaining input if it never occurs.
func Until[T comparable](item T) Scanner[T] {
	return func(items []T) uint {
		for i, c := range items {
			if c == item {
				return uint(i)
			}
		}
		//
		return uint(len(items))
	}
}

// Eof matches only at the very end of the input.
func Eof[T any]() Scanner[T] {
	return func(items []T) uint {
		if len(items) == 0 {
			return 1
		}
		//
		return 0
	}
}
