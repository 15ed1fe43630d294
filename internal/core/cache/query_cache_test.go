package cache

import (
	"bytes"
	"sync"
	"testing"

	"github.com/trailatlas/trails-api/internal/core/domain"
)

func TestQueryCache_MissOnEmpty(t *testing.T) {
	c := New()

	if _, ok := c.Get("5000-59.12-18.11"); ok {
		t.Fatalf("expected miss on empty cache")
	}
}

func TestQueryCache_PutThenGet(t *testing.T) {
	c := New()
	payload := domain.RouteData(`{"elements":[]}`)

	c.Put("5000-59.12-18.11", payload)

	got, ok := c.Get("5000-59.12-18.11")
	if !ok {
		t.Fatalf("expected hit after put")
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("cached value must be served verbatim, got %s", got)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", c.Len())
	}
}

func TestQueryCache_LastWriterWins(t *testing.T) {
	c := New()

	c.Put("k", domain.RouteData(`"first"`))
	c.Put("k", domain.RouteData(`"second"`))

	got, ok := c.Get("k")
	if !ok || string(got) != `"second"` {
		t.Fatalf("expected last write to win, got %s", got)
	}
}

func TestQueryCache_ConcurrentAccess(t *testing.T) {
	c := New()
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Put("shared", domain.RouteData(`{}`))
			c.Get("shared")
		}()
	}
	wg.Wait()

	if _, ok := c.Get("shared"); !ok {
		t.Fatalf("expected entry after concurrent writes")
	}
}
