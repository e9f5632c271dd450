// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package strm bridges push-based streaming responses into pull-based
// blocking iteration.
//
// A server-streaming transport delivers responses one at a time on its
// own goroutine through the [Observer] capability; application code
// pulls them through [Stream.Next] or ranges over [Stream.All], never
// seeing the callbacks, the producer goroutine, or the flow-control
// credits.
//
// # Architecture
//
//   - Hand-off: a capacity-1 rendezvous over a bounded lock-free SPSC queue via [code.hybscloud.com/lfq]. The producer is never more than one item ahead of the consumer.
//   - Terminal signal: a separate sticky cell, Complete or the upstream cause, set only after buffered data drains and observed identically on every later pull.
//   - Non-blocking core: [Stream.TryNext] returns [code.hybscloud.com/iox.ErrWouldBlock] at the empty-slot boundary; [Stream.Next] waits past it with adaptive backoff.
//   - Flow control: auto mode keeps at most one credit outstanding, one Request(1) at start and one per consumed item. [WithManualFlowControl] hands metering to the embedder.
//
// # Capabilities
//
//   - [Observer]: producer-facing. OnStart, OnResponse, OnError, OnComplete, called in sequence from one transport goroutine. [Checked] wraps any observer with protocol enforcement.
//   - [Controller]: transport-side. Cancel, DisableAutoInboundFlowControl, Request. The stream calls it to meter demand and forward cancellation.
//
// # Integration
//
//   - Blocking: [Stream.Next] and [Stream.Collect] wait using adaptive backoff, without goroutines or channels.
//   - Polling: [Stream.TryNext] and [Stream.IsReady] integrate with a proactor loop one attempt at a time.
//   - Iteration: [Stream.All] is a single-use range sequence; [Stream.Err] reports how the stream ended.
//
// # Example
//
//	s := strm.New[int]()
//	go transport.Call(req, s.Observer()) // OnStart, OnResponse…, OnComplete
//	for v := range s.All() {
//		use(v)
//	}
//	if err := s.Err(); err != nil {
//		// upstream failure, identical cause on every observation
//	}
package strm
