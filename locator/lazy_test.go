package locator

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/omnifaces/locator/util/errs"
)

func TestLazyGet(t *testing.T) {
	l := NewLazy(func() (string, error) { return "apple", nil })
	if l.Initialized() {
		t.Fatal("should not be initialized yet")
	}

	v, err := l.Get()
	if err != nil {
		t.Fatal(err)
	}
	if v != "apple" {
		t.Fatalf("v should be apple, but %v", v)
	}
	if !l.Initialized() {
		t.Fatal("should be initialized")
	}
}

func TestLazyGetConcurrent(t *testing.T) {
	var supplied int32
	l := NewLazy(func() (int, error) {
		atomic.AddInt32(&supplied, 1)
		return 42, nil
	})

	n := 50
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			v, err := l.Get()
			if err != nil {
				t.Error(err)
				return
			}
			if v != 42 {
				t.Errorf("v should be 42, but %v", v)
			}
		}()
	}
	close(start)
	wg.Wait()

	if c := atomic.LoadInt32(&supplied); c != 1 {
		t.Fatalf("supplier should run exactly once, but ran %v times", c)
	}
}

func TestLazyGetRetriesAfterError(t *testing.T) {
	calls := 0
	l := NewLazy(func() (string, error) {
		calls++
		if calls == 1 {
			return "", errs.NewErrf("supplier not ready")
		}
		return "banana", nil
	})

	if _, err := l.Get(); err == nil {
		t.Fatal("first Get should fail")
	}
	if l.Initialized() {
		t.Fatal("failed supply should not mark it initialized")
	}

	v, err := l.Get()
	if err != nil {
		t.Fatal(err)
	}
	if v != "banana" {
		t.Fatalf("v should be banana, but %v", v)
	}
	if calls != 2 {
		t.Fatalf("calls should be 2, but %v", calls)
	}
}

func TestNewLazyNilSupplier(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("should panic on nil supplier")
		}
	}()
	NewLazy[string](nil)
}
