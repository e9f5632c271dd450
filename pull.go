// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strm

import (
	"code.hybscloud.com/iox"
)

// grant issues the credit owed for the previously consumed item.
// Auto mode keeps at most one credit outstanding: Request(1) fires at
// most once per consumed item, at the start of the following pull.
// Cancellation withholds it: a cancelled consumer stops inviting data,
// which pins the producer's last deliverable item to an exact boundary.
func (s *Stream[V]) grant() {
	if !s.owe {
		return
	}
	s.owe = false
	if s.core.manual || s.core.cancelled.Load() != 0 {
		return
	}
	s.core.ctrl.Request(1)
}

// pull is the consumer step shared by Next and TryNext: settle the owed
// credit, then take the buffered item or observe the terminal signal.
func (s *Stream[V]) pull() (V, error) {
	s.grant()
	v, err := s.core.tryPull()
	if err == nil {
		s.owe = true
	}
	return v, err
}

// Next blocks until an item is available or a terminal signal is set.
// Returns the next item in production order; ErrExhausted on every call
// after the stream completes cleanly; the upstream cause, identical on
// every call, after it fails. Waits past empty-slot boundaries with
// adaptive backoff (iox.Backoff), without goroutines or channels.
//
// Next re-checks state itself; no readiness query is required first.
func (s *Stream[V]) Next() (V, error) {
	var bo iox.Backoff
	for {
		v, err := s.pull()
		if err == nil || !iox.IsWouldBlock(err) {
			return v, err
		}
		bo.Wait()
	}
}

// Collect drains the stream to its terminal signal and returns every
// item in production order. Clean completion yields a nil error; an
// upstream failure yields the items delivered before the cause.
func (s *Stream[V]) Collect() ([]V, error) {
	var items []V
	for {
		v, err := s.Next()
		if err == ErrExhausted {
			return items, nil
		}
		if err != nil {
			return items, err
		}
		items = append(items, v)
	}
}
