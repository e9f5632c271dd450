// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strm

import (
	"code.hybscloud.com/iox"
)

// Controller is the transport-side capability a stream uses to meter
// demand and forward cancellation. Implemented by the transport.
type Controller interface {
	// Cancel asks the transport to cancel the stream. Cooperative: the
	// producer keeps running until it observes the cancellation itself
	// and reports a terminal signal.
	Cancel()

	// DisableAutoInboundFlowControl turns off the transport's implicit
	// credit issuance so demand can be metered item by item.
	// Must be called before the first Request.
	DisableAutoInboundFlowControl()

	// Request grants the transport credit to deliver up to n more items.
	Request(n int)
}

// Observer is the producer-facing capability of a stream. The transport
// calls OnStart exactly once, then OnResponse zero or more times, then
// exactly one of OnError or OnComplete, all from a single producer
// goroutine. Each call may block until the consumer drains the slot.
//
// [Stream.Observer] returns the stream's observer with protocol
// enforcement already layered on; out-of-order calls panic.
type Observer[V any] interface {
	OnStart(ctrl Controller)
	OnResponse(v V)
	OnError(cause error)
	OnComplete()
}

// OnStart captures the controller, activates the stream, and takes over
// inbound flow control. A cancellation latched before the start is
// forwarded in place of the initial credit; otherwise auto mode issues
// Request(1) immediately.
func (b *bridge[V]) OnStart(ctrl Controller) {
	b.ctrl = ctrl
	b.state.Store(stateActive)
	ctrl.DisableAutoInboundFlowControl()
	if b.cancelled.Load() != 0 {
		ctrl.Cancel()
		return
	}
	if !b.manual {
		ctrl.Request(1)
	}
}

// OnResponse delivers one item. Blocks until the slot is vacant, then
// places v and publishes it. With the capacity-1 slot and the one
// outstanding credit of auto mode, the producer never runs more than
// one item ahead of the consumer.
func (b *bridge[V]) OnResponse(v V) {
	b.waitDrain()
	b.fill = v
	var bo iox.Backoff
	for b.slot.Enqueue(&b.fill) != nil {
		bo.Wait()
	}
	b.put.Add(1)
}

// OnError stores cause and sets the Error terminal signal. Waits for a
// buffered item to drain first: an error never pre-empts data already
// in flight, so the consumer sees the item and only the pull after it
// returns the cause — the identical value on every later pull.
func (b *bridge[V]) OnError(cause error) {
	b.waitDrain()
	b.cause = cause
	b.state.Store(stateFailed)
}

// OnComplete sets the Complete terminal signal, waiting for a buffered
// item to drain first. Completion never overwrites an undelivered item.
func (b *bridge[V]) OnComplete() {
	b.waitDrain()
	b.state.Store(stateComplete)
}
