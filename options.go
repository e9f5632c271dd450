// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strm

// config holds construction-time stream configuration.
type config struct {
	manual bool
}

// Option is a functional option for configuring a stream.
type Option func(*config)

// apply folds options over the default configuration.
func apply(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithManualFlowControl disables the stream's own credit issuance.
// OnStart still takes over the transport's inbound flow control, but no
// credits are requested implicitly: whoever selected manual mode meters
// demand by calling Request on the controller directly, and the
// transport's own limits are the only bound on items in flight.
func WithManualFlowControl() Option {
	return func(c *config) {
		c.manual = true
	}
}
