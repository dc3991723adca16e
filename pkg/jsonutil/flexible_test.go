package jsonutil

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestFlexibleString(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`"hello"`, "hello"},
		{`42`, "42"},
		{`3.5`, "3.5"},
		{`true`, "true"},
		{`null`, ""},
		{``, ""},
	}

	for _, tt := range tests {
		if got := FlexibleString(json.RawMessage(tt.raw)); got != tt.want {
			t.Errorf("FlexibleString(%s) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestFlexibleStringSlice(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{`["a", "b"]`, []string{"a", "b"}},
		{`[1, "two", 3.5]`, []string{"1", "two", "3.5"}},
		{`"single"`, []string{"single"}},
		{`"a, b, c"`, []string{"a", "b", "c"}},
		{`["", "  ", "kept"]`, []string{"kept"}},
		{`null`, nil},
		{`[]`, []string{}},
	}

	for _, tt := range tests {
		got := FlexibleStringSlice(json.RawMessage(tt.raw))
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("FlexibleStringSlice(%s) = %#v, want %#v", tt.raw, got, tt.want)
		}
	}
}

func TestFlexibleFloat(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{`0.85`, 0.85, false},
		{`1`, 1, false},
		{`"0.5"`, 0.5, false},
		{`" 0.25 "`, 0.25, false},
		{`"high"`, 0, true},
		{`null`, 0, true},
		{`[0.5]`, 0, true},
	}

	for _, tt := range tests {
		got, err := FlexibleFloat(json.RawMessage(tt.raw))
		if tt.wantErr {
			if err == nil {
				t.Errorf("FlexibleFloat(%s) expected error, got %v", tt.raw, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("FlexibleFloat(%s) unexpected error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FlexibleFloat(%s) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
