package httpclient

import (
	"testing"
	"time"
)

func TestPool_GetAndPut(t *testing.T) {
	pool := NewHTTPClientPool(2, 5*time.Second)
	defer pool.Close()

	c1 := pool.Get()
	if c1 == nil {
		t.Fatal("Get() returned nil client")
	}
	c2 := pool.Get()
	c3 := pool.Get() // pool empty, must still return a client
	if c3 == nil {
		t.Fatal("Get() returned nil when pool exhausted")
	}

	pool.Put(c1)
	pool.Put(c2)
	pool.Put(c3) // pool full, dropped silently
}

func TestPool_GetAfterClose(t *testing.T) {
	pool := NewHTTPClientPool(1, 5*time.Second)
	pool.Close()

	if pool.Get() == nil {
		t.Error("Get() after Close() returned nil")
	}

	// Put and a second Close must be safe after closing
	pool.Put(newHTTPClient(time.Second))
	pool.Close()
}

func TestPool_ClientTimeout(t *testing.T) {
	pool := NewHTTPClientPool(1, 3*time.Second)
	defer pool.Close()

	if got := pool.Get().Timeout; got != 3*time.Second {
		t.Errorf("client timeout = %v, want 3s", got)
	}
}
