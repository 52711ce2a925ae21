package labsync_test

import (
	"testing"
	"time"

	labsync "github.com/bhklab/lab-website-data-refresh"
)

func TestParseYear(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   int
		wantOK bool
	}{
		{name: "plain year", raw: "2023", want: 2023, wantOK: true},
		{name: "surrounding whitespace", raw: "  2020 ", want: 2020, wantOK: true},
		{name: "not a number", raw: "abc", wantOK: false},
		{name: "empty", raw: "", wantOK: false},
		{name: "whitespace only", raw: "   ", wantOK: false},
		{name: "decimal", raw: "2023.5", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := labsync.ParseYear(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ParseYear(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseYear(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   time.Time
		wantOK bool
	}{
		{
			name:   "ISO",
			raw:    "2024-01-15",
			want:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "slash year first",
			raw:    "2024/01/15",
			want:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "US month first",
			raw:    "01/15/2024",
			want:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			// Month 15 is invalid, so this only parses day-first.
			name:   "day first when month impossible",
			raw:    "15/01/2024",
			want:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "day thirteen is still day first",
			raw:    "13/01/2024",
			want:   time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			// Both readings are valid dates; month-first wins because it is
			// tried first. July 4th, not April 7th.
			name:   "ambiguous resolves month first",
			raw:    "07/04/2024",
			want:   time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "full month name",
			raw:    "January 15, 2024",
			want:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "abbreviated month name",
			raw:    "Jan 15, 2024",
			want:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "unpadded numeric",
			raw:    "1/5/2024",
			want:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "surrounding whitespace",
			raw:    " 2020-01-15 ",
			want:   time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{name: "empty", raw: "", wantOK: false},
		{name: "whitespace only", raw: "  ", wantOK: false},
		{name: "free text", raw: "sometime last spring", wantOK: false},
		{name: "unsupported format", raw: "15.01.2024", wantOK: false},
		{name: "impossible date", raw: "2024-13-45", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := labsync.ParseDate(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			if got.Location() != time.UTC {
				t.Errorf("ParseDate(%q) location = %v, want UTC", tt.raw, got.Location())
			}
		})
	}
}

func TestTrimString(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain", raw: "hello", want: "hello"},
		{name: "whitespace trimmed", raw: "  hello world \n", want: "hello world"},
		{name: "empty", raw: "", want: ""},
		{name: "whitespace only", raw: " \t ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := labsync.TrimString(tt.raw); got != tt.want {
				t.Errorf("TrimString(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDateOrYear(t *testing.T) {
	t.Run("zero value is absent", func(t *testing.T) {
		var v labsync.DateOrYear
		if !v.IsAbsent() {
			t.Error("zero DateOrYear should be absent")
		}
		if got := v.Interface(); got != nil {
			t.Errorf("Interface() = %v, want nil", got)
		}
	})

	t.Run("date value", func(t *testing.T) {
		d := time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)
		v := labsync.DateOf(d)
		if v.IsAbsent() {
			t.Error("DateOf should not be absent")
		}
		got, ok := v.Date()
		if !ok || !got.Equal(d) {
			t.Errorf("Date() = %v, %v; want %v, true", got, ok, d)
		}
		if _, ok := v.Year(); ok {
			t.Error("Year() should not be present on a date value")
		}
		if got := v.Interface(); got != d {
			t.Errorf("Interface() = %v, want %v", got, d)
		}
	})

	t.Run("year value", func(t *testing.T) {
		v := labsync.YearOf(2019)
		got, ok := v.Year()
		if !ok || got != 2019 {
			t.Errorf("Year() = %v, %v; want 2019, true", got, ok)
		}
		if _, ok := v.Date(); ok {
			t.Error("Date() should not be present on a year value")
		}
		if got := v.Interface(); got != 2019 {
			t.Errorf("Interface() = %v, want 2019", got)
		}
	})
}
