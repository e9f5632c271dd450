// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strm_test

// testController is a scripted transport controller. Credits land on
// requests for the producer side to poll one by one; Cancel latches a
// signal the producer selects on as its cancellation side channel.
type testController struct {
	requests  chan int
	cancelled chan struct{}
	disabled  bool
}

func newTestController() *testController {
	return &testController{
		requests:  make(chan int, 128),
		cancelled: make(chan struct{}, 1),
	}
}

func (c *testController) Cancel() {
	select {
	case c.cancelled <- struct{}{}:
	default:
	}
}

func (c *testController) DisableAutoInboundFlowControl() {
	c.disabled = true
}

func (c *testController) Request(n int) {
	c.requests <- n
}

// pending drains and counts the credits still queued on requests.
// Call only after the producer goroutine has been joined.
func (c *testController) pending() int {
	n := 0
	for {
		select {
		case <-c.requests:
			n++
		default:
			return n
		}
	}
}
