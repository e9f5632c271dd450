// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strm

// checkedObserver enforces the observer protocol in front of an inner
// observer: OnStart exactly once and first, then data calls, then
// exactly one terminal call. started/done are producer-goroutine state.
type checkedObserver[V any] struct {
	inner   Observer[V]
	started bool
	done    bool
}

// Checked wraps an observer with protocol enforcement. Violations are
// integration bugs, not stream failures, and panic immediately. Streams
// wrap their own observer this way; the helper is exported for
// transports and tests that hand-build observers and want the same
// guardrails.
func Checked[V any](inner Observer[V]) Observer[V] {
	return &checkedObserver[V]{inner: inner}
}

// live panics unless a data or terminal call is currently permitted.
func (c *checkedObserver[V]) live(call string) {
	if !c.started {
		panic("strm: " + call + " before OnStart")
	}
	if c.done {
		panic("strm: " + call + " after stream end")
	}
}

func (c *checkedObserver[V]) OnStart(ctrl Controller) {
	if c.started {
		panic("strm: OnStart called twice")
	}
	if ctrl == nil {
		panic("strm: OnStart with nil controller")
	}
	c.started = true
	c.inner.OnStart(ctrl)
}

func (c *checkedObserver[V]) OnResponse(v V) {
	c.live("OnResponse")
	c.inner.OnResponse(v)
}

func (c *checkedObserver[V]) OnError(cause error) {
	c.live("OnError")
	if cause == nil {
		panic("strm: OnError with nil cause")
	}
	c.done = true
	c.inner.OnError(cause)
}

func (c *checkedObserver[V]) OnComplete() {
	c.live("OnComplete")
	c.done = true
	c.inner.OnComplete()
}
