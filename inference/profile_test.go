package inference

import (
	"strconv"
	"testing"
	"time"

	"github.com/typelens/typelens/typelens"
)

func TestProfileStrings(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   typelens.DataType
	}{
		{
			name:   "integers",
			values: []string{"1", "2", "3", "4", "5"},
			want:   typelens.Integer,
		},
		{
			name:   "floats",
			values: []string{"1.1", "2.2", "3.3"},
			want:   typelens.Float,
		},
		{
			name:   "numeric widening",
			values: []string{"1", "2", "3.5"},
			want:   typelens.Float,
		},
		{
			name:   "numeric widening reversed",
			values: []string{"3.5", "1", "2"},
			want:   typelens.Float,
		},
		{
			name:   "booleans",
			values: []string{"true", "false", "True", "False"},
			want:   typelens.Boolean,
		},
		{
			name:   "booleans mixed with numeric words",
			values: []string{"true", "false", "yes", "no", "1", "0"},
			want:   typelens.Mixed,
		},
		{
			name:   "dates",
			values: []string{"2023-12-25", "2024-01-01", "2024-12-31"},
			want:   typelens.Date,
		},
		{
			name:   "times",
			values: []string{"14:30:00", "09:15:30", "23:59:59"},
			want:   typelens.Time,
		},
		{
			name:   "datetimes",
			values: []string{"2023-12-25T14:30:00", "2024-01-01 09:00:00"},
			want:   typelens.Datetime,
		},
		{
			name:   "temporal mix",
			values: []string{"2023-12-25", "2024-01-01T14:30:00", "09:15:30"},
			want:   typelens.Mixed,
		},
		{
			name:   "strings",
			values: []string{"hello", "world"},
			want:   typelens.String,
		},
		{
			name:   "single string",
			values: []string{"hello"},
			want:   typelens.String,
		},
		{
			name:   "mixed",
			values: []string{"1", "2.5", "hello", "2023-01-01"},
			want:   typelens.Mixed,
		},
		{
			name:   "integer and string",
			values: []string{"1", "abc"},
			want:   typelens.Mixed,
		},
		{
			name:   "empty input",
			values: []string{},
			want:   typelens.Empty,
		},
		{
			name:   "all empty elements",
			values: []string{"", "   "},
			want:   typelens.Empty,
		},
		{
			name:   "empties are skipped",
			values: []string{"", "1", ""},
			want:   typelens.Integer,
		},
		{
			name:   "all none-like",
			values: []string{"none", "null", "NONE"},
			want:   typelens.None,
		},
		{
			name:   "none mixed with integers",
			values: []string{"none", "1", "2"},
			want:   typelens.Mixed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProfileStrings(tt.values); got != tt.want {
				t.Errorf("ProfileStrings(%v) = %s, want %s", tt.values, got, tt.want)
			}
		})
	}
}

func TestProfileStringsTrim(t *testing.T) {
	values := []string{"  123  ", "  456  "}
	if got := ProfileStrings(values); got != typelens.Integer {
		t.Errorf("trimming profile = %s, want INTEGER", got)
	}
	// Disabling trim threads through the per-element inference too: the
	// padded values stop matching the numeric grammar.
	noTrim := Inferrer{TrimSpace: false}
	if got := noTrim.ProfileStrings(values); got != typelens.String {
		t.Errorf("non-trimming profile = %s, want STRING", got)
	}
}

func TestProfileUsageErrors(t *testing.T) {
	if _, err := Profile("not_a_sequence"); err == nil {
		t.Errorf("profiling a string should be a usage error")
	}
	if _, err := Profile(123); err == nil {
		t.Errorf("profiling a non-iterable should be a usage error")
	}
	if _, err := Profile(nil); err == nil {
		t.Errorf("profiling nil should be a usage error")
	}
}

func TestProfileNativeElements(t *testing.T) {
	got, err := Profile([]interface{}{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got != typelens.Integer {
		t.Errorf("Profile(ints) = %s, want INTEGER", got)
	}

	got, err = Profile([]interface{}{1, 2.5})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got != typelens.Float {
		t.Errorf("Profile(int and float) = %s, want FLOAT", got)
	}

	got, err = Profile([]interface{}{true, false})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got != typelens.Boolean {
		t.Errorf("Profile(bools) = %s, want BOOLEAN", got)
	}

	got, err = Profile([]interface{}{nil, nil})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got != typelens.None {
		t.Errorf("Profile(nils) = %s, want NONE", got)
	}

	got, err = Profile([]time.Time{time.Now(), time.Now()})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got != typelens.Datetime {
		t.Errorf("Profile(times) = %s, want DATETIME", got)
	}

	got, err = Profile([]typelens.Value{typelens.NewString("1"), typelens.NewInt(2)})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got != typelens.Integer {
		t.Errorf("Profile(tagged values) = %s, want INTEGER", got)
	}
}

func TestProfileEmptySlice(t *testing.T) {
	got, err := Profile([]string{})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got != typelens.Empty {
		t.Errorf("Profile(empty) = %s, want EMPTY", got)
	}
}

func TestIncrementalTypecheckThreshold(t *testing.T) {
	if IncrementalTypecheckThreshold() <= 0 {
		t.Errorf("threshold must be a positive integer, got %d", IncrementalTypecheckThreshold())
	}
}

func TestProfileAroundThreshold(t *testing.T) {
	// Identical content must profile identically just below and just
	// above the chunked-scan threshold.
	threshold := IncrementalTypecheckThreshold()
	for _, n := range []int{threshold - 1, threshold, threshold + 1} {
		values := make([]string, n)
		for i := range values {
			values[i] = "1"
		}
		if got := ProfileStrings(values); got != typelens.Integer {
			t.Errorf("ProfileStrings of %d copies of \"1\" = %s, want INTEGER", n, got)
		}
	}

	for _, n := range []int{threshold - 1, threshold + 1} {
		values := make([]string, n)
		for i := range values {
			values[i] = strconv.Itoa(i)
		}
		values[n/2] = "abc"
		if got := ProfileStrings(values); got != typelens.Mixed {
			t.Errorf("ProfileStrings with one outlier among %d = %s, want MIXED", n, got)
		}
	}
}
