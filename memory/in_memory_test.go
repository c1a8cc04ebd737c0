package memory

import (
	"sync"
	"testing"
	"time"

	"github.com/nexusmind/nexus/cycle"
)

// Interface compliance (compile-time assertion)
var _ cycle.Memory = (*InMemoryStore)(nil)

func TestInMemoryStore_AcceptAndConfirm(t *testing.T) {
	store := NewInMemoryStore()
	if store.Confirmed("Golden Ratio") {
		t.Fatal("empty store must not confirm anything")
	}
	if err := store.Accept(cycle.Principle{ID: "Golden Ratio", Confidence: 0.8, AcceptedAt: time.Now()}); err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	if !store.Confirmed("Golden Ratio") {
		t.Fatal("accepted principle must be confirmed")
	}
	ps := store.Principles()
	if len(ps) != 1 || ps[0].ID != "Golden Ratio" || ps[0].Confidence != 0.8 {
		t.Fatalf("unexpected principles: %#v", ps)
	}
}

func TestInMemoryStore_AcceptKeepsFirstRecord(t *testing.T) {
	store := NewInMemoryStore()
	if err := store.Accept(cycle.Principle{ID: "p", Confidence: 0.8}); err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	if err := store.Accept(cycle.Principle{ID: "p", Confidence: 0.99}); err != nil {
		t.Fatalf("re-accept failed: %v", err)
	}
	ps := store.Principles()
	if len(ps) != 1 {
		t.Fatalf("expected single principle, got %d", len(ps))
	}
	if ps[0].Confidence != 0.8 {
		t.Fatalf("re-accept must keep the original record, got %#v", ps[0])
	}
}

func TestInMemoryStore_AcceptanceOrder(t *testing.T) {
	store := NewInMemoryStore()
	for _, id := range []string{"c", "a", "b"} {
		if err := store.Accept(cycle.Principle{ID: id}); err != nil {
			t.Fatalf("accept failed: %v", err)
		}
	}
	ps := store.Principles()
	if len(ps) != 3 || ps[0].ID != "c" || ps[1].ID != "a" || ps[2].ID != "b" {
		t.Fatalf("acceptance order not preserved: %#v", ps)
	}
}

func TestInMemoryStore_HypothesisLog(t *testing.T) {
	store := NewInMemoryStore()
	if err := store.AddHypothesis(cycle.Hypothesis{ID: "h1", Principle: "p", Text: "text"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	hs := store.Hypotheses()
	if len(hs) != 1 || hs[0].ID != "h1" {
		t.Fatalf("unexpected log: %#v", hs)
	}
	// mutation safety (returned slice is a copy)
	hs[0].Text = "changed"
	if store.Hypotheses()[0].Text != "text" {
		t.Fatal("expected copy isolation on hypothesis log")
	}
}

func TestInMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewInMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Accept(cycle.Principle{ID: string(rune('a' + n))})
			_ = store.AddHypothesis(cycle.Hypothesis{ID: string(rune('a' + n))})
			store.Confirmed("a")
			store.Principles()
		}(i)
	}
	wg.Wait()
	if len(store.Principles()) != 10 || len(store.Hypotheses()) != 10 {
		t.Fatalf("lost writes: %d principles, %d hypotheses", len(store.Principles()), len(store.Hypotheses()))
	}
}
