// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strm

// TryNext attempts to take the next item without blocking.
// Returns iox.ErrWouldBlock while no item is buffered and no terminal
// signal has been set; classify with iox.IsWouldBlock and retry, so a
// poll loop can drive the stream alongside other sources. Otherwise the
// contract is exactly Next's: items in production order, ErrExhausted
// after clean completion, and the identical stored cause after failure.
// The owed credit is settled on entry.
func (s *Stream[V]) TryNext() (V, error) {
	return s.pull()
}
