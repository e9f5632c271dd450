// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strm

import (
	"code.hybscloud.com/atomix"
)

// Stream is the consumer-side handle of a push-to-pull bridge over a
// server-streaming call. The transport drives the Observer side from
// its own goroutine; the application pulls items here. One producer,
// one consumer, exactly one traversal.
type Stream[V any] struct {
	core bridge[V]
	obs  Observer[V]

	// owe marks a consumed item whose follow-up credit has not been
	// issued yet. Consumer-goroutine state; settled at the start of the
	// next pull, withheld once cancelled.
	owe      bool
	traverse atomix.Uint32
	serial   Serial
}

// New creates an unstarted stream. Hand [Stream.Observer] to the
// transport call that produces the responses, then pull with
// [Stream.Next], [Stream.TryNext], or [Stream.All].
//
// The hand-off is a bounded lock-free rendezvous: at most one item is
// buffered at any time, and in auto flow-control mode at most one
// credit is outstanding, so the producer can never run ahead of the
// consumer regardless of its speed. Stream and bridge share a single
// allocation; the ring buffer is the only secondary heap object.
func New[V any](opts ...Option) *Stream[V] {
	cfg := apply(opts)

	s := &Stream[V]{serial: nextSerial()}
	s.core.manual = cfg.manual
	s.core.slot.Init(slotCapacity)
	s.obs = Checked[V](&s.core)
	return s
}

// Observer returns the producer-facing capability of the stream,
// protocol-checked: out-of-order calls panic.
func (s *Stream[V]) Observer() Observer[V] {
	return s.obs
}

// Serial returns the serial number assigned to this stream.
func (s *Stream[V]) Serial() Serial {
	return s.serial
}

// IsReady reports whether an item is buffered, so the next pull would
// return without blocking. Non-blocking.
func (s *Stream[V]) IsReady() bool {
	return s.core.occupied()
}

// Err returns the upstream cause once the Error terminal signal is set,
// the identical value on every call. Nil while the stream is live and
// after clean completion.
func (s *Stream[V]) Err() error {
	if s.core.state.Load() == stateFailed {
		return s.core.cause
	}
	return nil
}

// Cancel forwards a cancellation request to the transport controller,
// or latches it for OnStart to forward when the stream has not started
// yet. Cooperative: no terminal signal is set and a waiting producer is
// not unblocked; items already in flight still arrive in order until
// the transport reports its own terminal signal. Further credit is
// withheld, so an auto-mode producer stops being invited to push.
func (s *Stream[V]) Cancel() {
	s.core.cancelled.Add(1)
	if s.core.state.Load() != stateNotStarted {
		s.core.ctrl.Cancel()
	}
}
