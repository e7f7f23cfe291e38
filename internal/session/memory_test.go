package session

import (
	"testing"

	"github.com/tasnim/rise-and-shine-bot/internal/domain"
)

func TestMemoryStorePutGetDelete(t *testing.T) {
	store := NewMemoryStore()

	if _, ok := store.Get(1); ok {
		t.Fatal("expected no session for unknown chat")
	}

	store.Put(&domain.Session{ChatID: 1, Step: domain.StepName})

	sess, ok := store.Get(1)
	if !ok {
		t.Fatal("expected session after Put")
	}
	if sess.Step != domain.StepName {
		t.Fatalf("step = %q, want %q", sess.Step, domain.StepName)
	}

	store.Delete(1)
	if _, ok := store.Get(1); ok {
		t.Fatal("expected no session after Delete")
	}
}

func TestMemoryStoreReplacesExistingSession(t *testing.T) {
	store := NewMemoryStore()
	store.Put(&domain.Session{ChatID: 7, Step: domain.StepEmail, Name: "Alice"})
	store.Put(&domain.Session{ChatID: 7, Step: domain.StepName})

	sess, ok := store.Get(7)
	if !ok {
		t.Fatal("expected session")
	}
	if sess.Step != domain.StepName || sess.Name != "" {
		t.Fatalf("expected fresh session, got %+v", sess)
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	store.Put(&domain.Session{ChatID: 3, Step: domain.StepName})

	first, _ := store.Get(3)
	first.Name = "mutated"

	second, _ := store.Get(3)
	if second.Name != "" {
		t.Fatalf("stored session mutated through a returned copy: %+v", second)
	}
}

func TestMemoryStoreKeepsChatsSeparate(t *testing.T) {
	store := NewMemoryStore()
	store.Put(&domain.Session{ChatID: 1, Step: domain.StepEmail, Name: "Alice"})
	store.Put(&domain.Session{ChatID: 2, Step: domain.StepName, Name: "Bob"})

	store.Delete(1)

	sess, ok := store.Get(2)
	if !ok {
		t.Fatal("expected chat 2 session to survive chat 1 delete")
	}
	if sess.Name != "Bob" {
		t.Fatalf("name = %q, want Bob", sess.Name)
	}
}
