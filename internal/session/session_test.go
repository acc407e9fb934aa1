package session

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-booking/internal/notify"
)

func TestCodec_RoundTrip(t *testing.T) {
	c := NewCodec("secret")
	id := NewID()

	token, err := c.Encode(id, time.Hour)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := c.Decode(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != id {
		t.Errorf("id: got %q, want %q", got, id)
	}
}

func TestCodec_RejectsForeignSecret(t *testing.T) {
	token, _ := NewCodec("one").Encode(NewID(), time.Hour)

	if _, err := NewCodec("two").Decode(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestCodec_RejectsExpired(t *testing.T) {
	c := NewCodec("secret")
	base := time.Now()
	c.now = func() time.Time { return base }
	token, _ := c.Encode(NewID(), time.Minute)

	c.now = func() time.Time { return base.Add(2 * time.Minute) }
	if _, err := c.Decode(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestCodec_RejectsGarbage(t *testing.T) {
	if _, err := NewCodec("secret").Decode("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestMemoryStore_SaveLoad(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	st := domain.NewFormState()
	st.Phone = "555"
	st.Mode = domain.ModeCreate
	st.Notify(notify.Info("hello"))

	if err := s.Save(ctx, "a", st, time.Hour); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load(ctx, "a")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Phone != "555" || got.Mode != domain.ModeCreate || len(got.Toasts) != 1 {
		t.Errorf("unexpected state: %+v", got)
	}

	got.Phone = "changed"
	again, _ := s.Load(ctx, "a")
	if again.Phone != "555" {
		t.Errorf("loaded state must not alias the stored one")
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	s := NewMemoryStore()
	base := time.Now()
	s.now = func() time.Time { return base }
	ctx := context.Background()

	_ = s.Save(ctx, "a", domain.NewFormState(), time.Minute)

	s.now = func() time.Time { return base.Add(time.Minute) }
	if _, err := s.Load(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("expired entry should be dropped on load")
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	_ = s.Save(ctx, "a", domain.NewFormState(), time.Hour)

	_ = s.Delete(ctx, "a")
	if _, err := s.Load(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestContextID(t *testing.T) {
	ctx := WithID(context.Background(), "abc")
	if IDFromContext(ctx) != "abc" {
		t.Errorf("got %q", IDFromContext(ctx))
	}
	if IDFromContext(context.Background()) != "" {
		t.Errorf("empty context should yield empty id")
	}
}
