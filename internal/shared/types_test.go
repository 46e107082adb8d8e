package shared

import (
	"strings"
	"testing"
)

func TestStringSlice_Value(t *testing.T) {
	tests := []struct {
		name     string
		slice    StringSlice
		expected string
	}{
		{
			name:     "empty slice",
			slice:    StringSlice{},
			expected: "[]",
		},
		{
			name:     "nil slice",
			slice:    nil,
			expected: "[]",
		},
		{
			name:     "single id",
			slice:    StringSlice{"don_1"},
			expected: `["don_1"]`,
		},
		{
			name:     "multiple ids",
			slice:    StringSlice{"don_1", "don_2", "don_3"},
			expected: `["don_1","don_2","don_3"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.slice.Value()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			str, ok := result.([]byte)
			if !ok {
				s, ok := result.(string)
				if !ok {
					t.Fatalf("expected string or []byte, got %T", result)
				}
				str = []byte(s)
			}
			if string(str) != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, string(str))
			}
		})
	}
}

func TestStringSlice_Scan(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected StringSlice
		wantErr  bool
	}{
		{
			name:     "nil value",
			input:    nil,
			expected: nil,
		},
		{
			name:     "byte slice",
			input:    []byte(`["don_1","don_2"]`),
			expected: StringSlice{"don_1", "don_2"},
		},
		{
			name:     "string value",
			input:    `["don_1"]`,
			expected: StringSlice{"don_1"},
		},
		{
			name:    "unsupported type",
			input:   42,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s StringSlice
			err := s.Scan(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Scan() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if len(s) != len(tt.expected) {
				t.Fatalf("expected %d items, got %d", len(tt.expected), len(s))
			}
			for i := range s {
				if s[i] != tt.expected[i] {
					t.Errorf("item %d: expected %s, got %s", i, tt.expected[i], s[i])
				}
			}
		})
	}
}

func TestStringSlice_Contains(t *testing.T) {
	s := StringSlice{"don_1", "don_2"}

	if !s.Contains("don_1") {
		t.Error("expected don_1 to be present")
	}
	if s.Contains("don_3") {
		t.Error("did not expect don_3 to be present")
	}
	if (StringSlice)(nil).Contains("don_1") {
		t.Error("nil slice should contain nothing")
	}
}

func TestStringSlice_Without(t *testing.T) {
	s := StringSlice{"don_1", "don_2", "don_1"}

	out := s.Without("don_1")
	if len(out) != 1 || out[0] != "don_2" {
		t.Errorf("expected [don_2], got %v", out)
	}

	// original is untouched
	if len(s) != 3 {
		t.Errorf("source slice mutated: %v", s)
	}

	out = s.Without("don_9")
	if len(out) != 3 {
		t.Errorf("expected unchanged copy, got %v", out)
	}
}

func TestNewID(t *testing.T) {
	id1 := NewID("don_")
	id2 := NewID("don_")

	if !strings.HasPrefix(id1, "don_") {
		t.Errorf("expected don_ prefix, got %s", id1)
	}
	if len(id1) != len("don_")+32 {
		t.Errorf("unexpected id length: %d", len(id1))
	}
	if id1 == id2 {
		t.Error("expected unique ids")
	}
}
