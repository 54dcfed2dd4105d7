package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/INFR3120-F25/coursetrack-service/internal/models"
)

var testIdentity = &models.Identity{
	ProviderUserID: "1234567890",
	DisplayName:    "Alex",
	Email:          "alex@example.com",
	Provider:       models.ProviderGoogle,
}

func runStoreTests(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create and get round-trips the identity verbatim", func(t *testing.T) {
		token, err := store.Create(ctx, testIdentity)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if token == "" {
			t.Fatal("Create() returned empty token")
		}

		got, err := store.Get(ctx, token)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if *got != *testIdentity {
			t.Errorf("Get() = %+v, want %+v", got, testIdentity)
		}
	})

	t.Run("distinct sessions get distinct tokens", func(t *testing.T) {
		t1, err := store.Create(ctx, testIdentity)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		t2, err := store.Create(ctx, testIdentity)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if t1 == t2 {
			t.Error("two sessions share one token")
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		if _, err := store.Get(ctx, "nope"); !errors.Is(err, ErrNoSession) {
			t.Errorf("Get(unknown) error = %v, want ErrNoSession", err)
		}
	})

	t.Run("empty token", func(t *testing.T) {
		if _, err := store.Get(ctx, ""); !errors.Is(err, ErrNoSession) {
			t.Errorf("Get(\"\") error = %v, want ErrNoSession", err)
		}
	})

	t.Run("destroy is effective and idempotent", func(t *testing.T) {
		token, err := store.Create(ctx, testIdentity)
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}

		if err := store.Destroy(ctx, token); err != nil {
			t.Fatalf("Destroy() error = %v", err)
		}
		if _, err := store.Get(ctx, token); !errors.Is(err, ErrNoSession) {
			t.Errorf("Get(destroyed) error = %v, want ErrNoSession", err)
		}
		if err := store.Destroy(ctx, token); err != nil {
			t.Errorf("second Destroy() error = %v, want nil", err)
		}
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreTests(t, NewMemoryStore(24*time.Hour))
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(24 * time.Hour)
	now := time.Now()
	store.now = func() time.Time { return now }

	token, err := store.Create(context.Background(), testIdentity)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Just under the TTL the session is still live.
	now = now.Add(24*time.Hour - time.Minute)
	if _, err := store.Get(context.Background(), token); err != nil {
		t.Fatalf("Get() before expiry error = %v", err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := store.Get(context.Background(), token); !errors.Is(err, ErrNoSession) {
		t.Errorf("Get() after expiry error = %v, want ErrNoSession", err)
	}
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	runStoreTests(t, NewRedisStore(client, 24*time.Hour))
}

func TestRedisStoreExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client, 24*time.Hour)

	token, err := store.Create(context.Background(), testIdentity)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	mr.FastForward(25 * time.Hour)

	if _, err := store.Get(context.Background(), token); !errors.Is(err, ErrNoSession) {
		t.Errorf("Get() after TTL error = %v, want ErrNoSession", err)
	}
}

func TestMemoryStoreConcurrentReads(t *testing.T) {
	store := NewMemoryStore(24 * time.Hour)
	token, err := store.Create(context.Background(), testIdentity)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				store.Get(context.Background(), token)
			}
		}()
	}
	// One writer destroying mid-flight must not corrupt readers.
	store.Destroy(context.Background(), token)
	for i := 0; i < 8; i++ {
		<-done
	}
}
