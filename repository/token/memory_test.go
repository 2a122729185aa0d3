package token_test

import (
	"context"
	"testing"
	"time"

	"github.com/campusnest/backend/repository/token"
)

func TestMemoryStore_SetGet(t *testing.T) {
	ctx := context.Background()
	store := token.NewMemoryStore()

	if err := store.SetWithTTL(ctx, "otp:a@b.com", "123456", time.Minute); err != nil {
		t.Fatalf("SetWithTTL() error = %v", err)
	}

	got, err := store.Get(ctx, "otp:a@b.com")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "123456" {
		t.Fatalf("Get() = %q, want %q", got, "123456")
	}
}

func TestMemoryStore_MissingKey(t *testing.T) {
	store := token.NewMemoryStore()

	got, err := store.Get(context.Background(), "reset:nope")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "" {
		t.Fatalf("Get() = %q, want empty", got)
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := token.NewMemoryStore()

	if err := store.SetWithTTL(ctx, "otp:a@b.com", "123456", -time.Second); err != nil {
		t.Fatalf("SetWithTTL() error = %v", err)
	}

	got, err := store.Get(ctx, "otp:a@b.com")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "" {
		t.Fatalf("expired entry still readable: %q", got)
	}
}

func TestMemoryStore_Overwrite(t *testing.T) {
	ctx := context.Background()
	store := token.NewMemoryStore()

	_ = store.SetWithTTL(ctx, "otp:a@b.com", "111111", time.Minute)
	_ = store.SetWithTTL(ctx, "otp:a@b.com", "222222", time.Minute)

	got, _ := store.Get(ctx, "otp:a@b.com")
	if got != "222222" {
		t.Fatalf("Get() = %q, want latest value", got)
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := token.NewMemoryStore()

	_ = store.SetWithTTL(ctx, "reset:tok", "payload", time.Minute)
	if err := store.Delete(ctx, "reset:tok"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	got, _ := store.Get(ctx, "reset:tok")
	if got != "" {
		t.Fatalf("deleted entry still readable: %q", got)
	}
}
