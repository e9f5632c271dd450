// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strm

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// slotCapacity is the physical ring capacity backing the hand-off slot.
// 2 is the lfq minimum; the put/got counters hold logical occupancy to
// at most one item, preserving the capacity-1 rendezvous.
const slotCapacity = 2

// Stream states. Transitions are driven solely by producer calls:
// NotStarted → Active → Complete | Failed. Terminal states are absorbing
// and are stored only after the slot has drained, so a terminal state
// implies an empty slot.
const (
	stateNotStarted uint32 = iota
	stateActive
	stateComplete
	stateFailed
)

// bridge is the capacity-1 rendezvous between the producer (transport)
// goroutine and the consumer goroutine. The slot holds at most one
// pending item; the terminal signal lives in a separate sticky cell
// (state plus cause) so completion can never overwrite an undelivered
// item.
//
// put counts items placed, got counts items taken; the slot is occupied
// exactly when they differ. cause and ctrl are plain fields written
// strictly before the state store that makes them reachable.
// fill is the producer's enqueue scratch slot.
type bridge[V any] struct {
	slot      lfq.SPSC[V]
	fill      V
	put       atomix.Uint32
	got       atomix.Uint32
	state     atomix.Uint32
	cancelled atomix.Uint32
	cause     error
	ctrl      Controller
	manual    bool
}

// occupied reports whether the slot holds an unconsumed item.
func (b *bridge[V]) occupied() bool {
	return b.put.Load() != b.got.Load()
}

// waitDrain blocks the producer until the consumer has taken the
// buffered item, backing off with iox.Backoff (readiness waiting).
func (b *bridge[V]) waitDrain() {
	var bo iox.Backoff
	for b.occupied() {
		bo.Wait()
	}
}

// tryPull is the non-blocking consumer step: take the buffered item if
// one is present, otherwise observe the terminal signal. Returns
// iox.ErrWouldBlock when the slot is empty and the stream is still
// live; that is the retryable boundary Next waits past.
//
// Terminal signals are stored only after the slot drains, so a failed
// dequeue followed by a terminal state read cannot lose an item. On
// Complete the result is ErrExhausted; on Failed it is the stored
// cause, the identical value on every call.
func (b *bridge[V]) tryPull() (V, error) {
	if v, err := b.slot.Dequeue(); err == nil {
		b.got.Add(1)
		return v, nil
	}
	var zero V
	switch b.state.Load() {
	case stateComplete:
		return zero, ErrExhausted
	case stateFailed:
		return zero, b.cause
	}
	return zero, iox.ErrWouldBlock
}
