package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedisLocker(t *testing.T, ttl time.Duration) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLocker(client, ttl), mr
}

func TestRedisLockerBlocksSecondAcquire(t *testing.T) {
	l, _ := newTestRedisLocker(t, time.Minute)
	release, err := l.Acquire(context.Background(), "1:2024-01-01:2024-01-07")
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()
	if _, err := l.Acquire(ctx, "1:2024-01-01:2024-01-07"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("second acquire: want=DeadlineExceeded got=%v", err)
	}

	other, err := l.Acquire(context.Background(), "2:2024-01-01:2024-01-07")
	if err != nil {
		t.Fatalf("other key: %v", err)
	}
	other()
}

func TestRedisLockerReleaseFreesKey(t *testing.T) {
	l, mr := newTestRedisLocker(t, time.Minute)
	release, err := l.Acquire(context.Background(), "k")
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if !mr.Exists(keyPrefix + "k") {
		t.Fatalf("key missing while held")
	}
	release()
	if mr.Exists(keyPrefix + "k") {
		t.Fatalf("key still present after release")
	}

	again, err := l.Acquire(context.Background(), "k")
	if err != nil {
		t.Fatalf("after release: %v", err)
	}
	again()
}

func TestRedisLockerStaleReleaseKeepsNewHolder(t *testing.T) {
	l, mr := newTestRedisLocker(t, time.Second)
	stale, err := l.Acquire(context.Background(), "k")
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	staleToken, _ := mr.Get(keyPrefix + "k")

	mr.FastForward(2 * time.Second)
	if mr.Exists(keyPrefix + "k") {
		t.Fatalf("key should have expired")
	}

	current, err := l.Acquire(context.Background(), "k")
	if err != nil {
		t.Fatalf("re-acquire: %v", err)
	}
	currentToken, _ := mr.Get(keyPrefix + "k")
	if currentToken == staleToken {
		t.Fatalf("tokens must differ: %s", currentToken)
	}

	stale()
	got, err := mr.Get(keyPrefix + "k")
	if err != nil || got != currentToken {
		t.Fatalf("holder after stale release: want=%s got=%s err=%v", currentToken, got, err)
	}

	current()
	if mr.Exists(keyPrefix + "k") {
		t.Fatalf("key still present after current release")
	}
}

func TestRedisLockerTTLUnblocksWaiter(t *testing.T) {
	l, mr := newTestRedisLocker(t, time.Second)
	if _, err := l.Acquire(context.Background(), "k"); err != nil {
		t.Fatalf("Acquire: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	done := make(chan error, 1)
	go func() {
		release, err := l.Acquire(ctx, "k")
		if err == nil {
			release()
		}
		done <- err
	}()

	select {
	case err := <-done:
		t.Fatalf("waiter returned before expiry: %v", err)
	case <-time.After(3 * retryBackoff):
	}

	mr.FastForward(2 * time.Second)
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("waiter after expiry: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("waiter still blocked after ttl expiry")
	}
}
