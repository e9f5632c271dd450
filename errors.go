// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strm

import "errors"

// ErrExhausted reports that the stream completed cleanly and every item
// has been consumed. Pull operations return it on every call made after
// the Complete signal, sticky like an upstream cause. Returned
// unwrapped; compare with ==.
var ErrExhausted = errors.New("strm: stream exhausted")
