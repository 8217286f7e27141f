package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestNew_EmptyURL_Disabled(t *testing.T) {
	l, err := New("")
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if l.Enabled() {
		t.Fatal("expected disabled limiter")
	}

	ok, n, err := l.Allow(context.Background(), "k", 1, time.Minute)
	if err != nil || !ok || n != 0 {
		t.Fatalf("disabled limiter should allow: ok=%v n=%d err=%v", ok, n, err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
}

func TestNew_BadURL(t *testing.T) {
	if _, err := New("not-a-url"); err == nil {
		t.Fatal("expected parse error")
	}
}
