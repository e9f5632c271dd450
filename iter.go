// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strm

import (
	"iter"
)

// All returns an iterator over the remaining items, in production
// order. The sequence ends at the terminal signal; inspect [Stream.Err]
// afterwards to distinguish clean completion from upstream failure.
// Breaking out early leaves the stream pullable; pair the break with
// [Stream.Cancel] to stop inviting more data.
//
// A stream supports exactly one traversal: a second All call panics.
func (s *Stream[V]) All() iter.Seq[V] {
	if s.traverse.Add(1) != 1 {
		panic("strm: stream supports a single traversal")
	}
	return func(yield func(V) bool) {
		for {
			v, err := s.Next()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}
