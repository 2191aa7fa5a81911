package session

import (
	"context"
	"errors"
	"testing"

	"github.com/Reshma22M/Flexa-ChatBot/internal/models"
)

func TestMemoryStoreCreateGetPut(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	created, err := store.Create(ctx)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a session id")
	}
	if created.State != models.StateAskName {
		t.Fatalf("expected new session in ASK_NAME, got %s", created.State)
	}

	name := "Ana"
	created.Profile.Name = &name
	created.State = models.StateAskProblem
	if err := store.Put(ctx, created); err != nil {
		t.Fatalf("Put: %v", err)
	}

	loaded, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if loaded.State != models.StateAskProblem {
		t.Errorf("expected ASK_PROBLEM, got %s", loaded.State)
	}
	if loaded.Profile.Name == nil || *loaded.Profile.Name != "Ana" {
		t.Errorf("expected stored name Ana, got %v", loaded.Profile.Name)
	}
}

func TestMemoryStoreGetUnknownID(t *testing.T) {
	store := NewMemoryStore(0)
	if _, err := store.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStorePutUnknownID(t *testing.T) {
	store := NewMemoryStore(0)
	err := store.Put(context.Background(), &models.ChatSession{ID: "ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreCapacity(t *testing.T) {
	store := NewMemoryStore(2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := store.Create(ctx); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}
	if _, err := store.Create(ctx); !errors.Is(err, ErrStoreFull) {
		t.Fatalf("expected ErrStoreFull, got %v", err)
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	created, err := store.Create(ctx)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Mutating the returned session must not affect the stored one until Put.
	created.State = models.StateDone
	loaded, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if loaded.State != models.StateAskName {
		t.Errorf("store leaked a mutable reference: state is %s", loaded.State)
	}
}
