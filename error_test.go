// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package strm_test

import (
	"errors"
	"slices"
	"testing"

	"code.hybscloud.com/strm"
)

func TestErrorPropagation(t *testing.T) {
	s := strm.New[int]()
	ctrl := newTestController()
	cause := errors.New("upstream failure")

	obs := s.Observer()
	obs.OnStart(ctrl)
	obs.OnError(cause)

	if _, err := s.Next(); err != cause {
		t.Fatalf("Next error got %v, want %v", err, cause)
	}
	if err := s.Err(); err != cause {
		t.Fatalf("Err got %v, want %v", err, cause)
	}
}

func TestAfterError(t *testing.T) {
	// The stored cause is returned identically on every later poll.
	s := strm.New[int]()
	ctrl := newTestController()
	cause := errors.New("boom")

	obs := s.Observer()
	obs.OnStart(ctrl)
	obs.OnError(cause)

	for i := 0; i < 3; i++ {
		if _, err := s.Next(); err != cause {
			t.Fatalf("poll %d error got %v, want identical cause", i, err)
		}
		if err := s.Err(); err != cause {
			t.Fatalf("poll %d Err got %v, want identical cause", i, err)
		}
	}
}

func TestDataBeforeError(t *testing.T) {
	skipRace(t)
	// An error reported behind a buffered item surfaces only on the
	// pull after the item is consumed.
	s := strm.New[int]()
	ctrl := newTestController()
	cause := errors.New("late failure")

	obs := s.Observer()
	obs.OnStart(ctrl)
	obs.OnResponse(1)

	done := make(chan struct{})
	go func() {
		obs.OnError(cause) // blocks until the buffered item is consumed
		close(done)
	}()

	if !s.IsReady() {
		t.Fatal("expected buffered item ahead of the error")
	}
	v, err := s.Next()
	if err != nil || v != 1 {
		t.Fatalf("Next got (%d, %v), want (1, nil)", v, err)
	}
	<-done
	if _, err := s.Next(); err != cause {
		t.Fatalf("Next error got %v, want %v", err, cause)
	}
}

func TestNextAfterEOF(t *testing.T) {
	s := strm.New[int]()
	ctrl := newTestController()

	obs := s.Observer()
	obs.OnStart(ctrl)
	obs.OnResponse(3)

	v, err := s.Next()
	if err != nil || v != 3 {
		t.Fatalf("Next got (%d, %v), want (3, nil)", v, err)
	}

	obs.OnComplete()
	for i := 0; i < 2; i++ {
		if _, err := s.Next(); err != strm.ErrExhausted {
			t.Fatalf("poll %d error got %v, want %v", i, err, strm.ErrExhausted)
		}
	}
	if s.IsReady() {
		t.Fatal("ready after terminal signal")
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Err got %v, want nil after clean completion", err)
	}
}

func TestCollectPartialOnError(t *testing.T) {
	skipRace(t)
	s := strm.New[int]()
	ctrl := newTestController()
	cause := errors.New("midstream failure")

	done := make(chan struct{})
	go func() {
		defer close(done)
		obs := s.Observer()
		obs.OnStart(ctrl)
		obs.OnResponse(0)
		obs.OnResponse(1)
		obs.OnError(cause)
	}()

	items, err := s.Collect()
	<-done

	if err != cause {
		t.Fatalf("Collect error got %v, want %v", err, cause)
	}
	if !slices.Equal(items, []int{0, 1}) {
		t.Fatalf("items got %v, want [0 1]", items)
	}
}
