package dateutil

import (
	"errors"
	"testing"
	"time"
)

var fixedTime = time.Date(2026, time.March, 7, 10, 0, 0, 0, time.UTC)

func TestParseDateFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr bool
	}{
		{name: "iso", format: "YYYY-MM-DD", want: "2006-01-02"},
		{name: "european", format: "DD/MM/YYYY", want: "02/01/2006"},
		{name: "long month", format: "MMMM D, YYYY", want: "January 2, 2006"},
		{name: "short year", format: "YY-M-D", want: "06-1-2"},
		{name: "bracket literal", format: "[Published] YYYY", want: "Published 2006"},
		{name: "literal chars pass through", format: "YYYY.MM.DD", want: "2006.01.02"},
		{name: "empty", format: "", wantErr: true},
		{name: "unclosed bracket", format: "[oops YYYY", wantErr: true},
		{name: "too long", format: string(make([]byte, MaxDateFormatLength+1)), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDateFormat(tt.format)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDateFormat) {
					t.Fatalf("ParseDateFormat(%q) = %v, want ErrInvalidDateFormat", tt.format, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDateFormat(%q) error = %v", tt.format, err)
			}
			if got != tt.want {
				t.Fatalf("ParseDateFormat(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestResolveDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{name: "auto default", value: "auto", want: "2026-03-07"},
		{name: "auto custom", value: "auto:DD/MM/YYYY", want: "07/03/2026"},
		{name: "auto preset", value: "auto:long", want: "March 7, 2026"},
		{name: "preset case insensitive", value: "auto:ISO", want: "2026-03-07"},
		{name: "literal passthrough", value: "2025-12-31", want: "2025-12-31"},
		{name: "non-date passthrough", value: "yesterday", want: "yesterday"},
		{name: "empty format", value: "auto:", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ResolveDate(tt.value, fixedTime)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDateFormat) {
					t.Fatalf("ResolveDate(%q) = %v, want ErrInvalidDateFormat", tt.value, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveDate(%q) error = %v", tt.value, err)
			}
			if got != tt.want {
				t.Fatalf("ResolveDate(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
