package settings

import (
	"testing"
	"time"
)

func TestMilliseconds_Int(t *testing.T) {
	m := Milliseconds(5000)
	if m.Int() != 5000 {
		t.Fatalf("expected 5000, got %d", m.Int())
	}
}

func TestMilliseconds_Duration(t *testing.T) {
	m := Milliseconds(3000)
	if m.Duration() != 3*time.Second {
		t.Fatalf("expected 3s, got %v", m.Duration())
	}
}

func TestMilliseconds_Or(t *testing.T) {
	tests := []struct {
		name     string
		value    Milliseconds
		fallback time.Duration
		want     time.Duration
	}{
		{"positive value wins", 20, time.Second, 20 * time.Millisecond},
		{"zero falls back", 0, time.Second, time.Second},
		{"negative falls back", -5, DefaultIdleWait, DefaultIdleWait},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Or(tt.fallback); got != tt.want {
				t.Fatalf("Or(%v) = %v, want %v", tt.fallback, got, tt.want)
			}
		})
	}
}
