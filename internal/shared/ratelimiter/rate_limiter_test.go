package ratelimiter

import (
	"sync"
	"testing"
	"time"
)

// TestWaitIfNeeded_UnderLimit は制限内の呼び出しが待機しないことを検証します。
func TestWaitIfNeeded_UnderLimit(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(3, time.Second)

	start := time.Now()
	rl.WaitIfNeeded()
	rl.WaitIfNeeded()
	rl.WaitIfNeeded()

	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("calls under the limit should not block, took %s", elapsed)
	}
}

// TestWaitIfNeeded_OverLimit は制限超過時に次のインターバルまで待機することを検証します。
func TestWaitIfNeeded_OverLimit(t *testing.T) {
	t.Parallel()

	interval := 200 * time.Millisecond
	rl := NewRateLimiter(2, interval)

	rl.WaitIfNeeded()
	rl.WaitIfNeeded()

	start := time.Now()
	rl.WaitIfNeeded()

	if elapsed := time.Since(start); elapsed < interval/2 {
		t.Errorf("call over the limit should wait for the next interval, took %s", elapsed)
	}
}

// TestWaitIfNeeded_ResetsAfterInterval はインターバル経過後にカウンタがリセットされることを検証します。
func TestWaitIfNeeded_ResetsAfterInterval(t *testing.T) {
	t.Parallel()

	interval := 100 * time.Millisecond
	rl := NewRateLimiter(1, interval)

	rl.WaitIfNeeded()
	time.Sleep(interval + 20*time.Millisecond)

	start := time.Now()
	rl.WaitIfNeeded()

	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("counter should reset after the interval, took %s", elapsed)
	}
}

// TestWaitIfNeeded_Concurrent は並行呼び出しでレースが起きないことを検証します。
func TestWaitIfNeeded_Concurrent(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(100, time.Second)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rl.WaitIfNeeded()
		}()
	}
	wg.Wait()
}
