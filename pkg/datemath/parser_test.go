package datemath_test

import (
	"errors"
	"testing"
	"time"

	"task-scheduling-advisor/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}

	if p := datemath.NewParserInLocation(nil); p.Location() != time.UTC {
		t.Errorf("expected UTC fallback, got %v", p.Location())
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{
			name:     "Today",
			relative: "today",
			want:     startOfBase,
		},
		{
			name:     "Tomorrow",
			relative: "Tomorrow",
			want:     startOfBase.AddDate(0, 0, 1),
		},
		{
			name:     "Yesterday",
			relative: "yesterday",
			want:     startOfBase.AddDate(0, 0, -1),
		},
		{
			name:     "In 3 days",
			relative: "in 3 days",
			want:     startOfBase.AddDate(0, 0, 3),
		},
		{
			name:     "In 2 weeks",
			relative: "in 2 weeks",
			want:     startOfBase.AddDate(0, 0, 14),
		},
		{
			name:     "In 1 month",
			relative: "in 1 month",
			want:     startOfBase.AddDate(0, 1, 0),
		},
		{
			name:     "Invalid duration pattern",
			relative: "in a few days",
			want:     baseTime,
			wantErr:  true,
		},
		{
			name:     "Next Monday (from Wed)",
			relative: "next monday",
			want:     startOfBase.AddDate(0, 0, 5), // Wed(3) to Mon(1) is +5 days
		},
		{
			name:     "Next Wednesday (from Wed)",
			relative: "next wednesday",
			want:     startOfBase.AddDate(0, 0, 7), // 1 week later
		},
		{
			name:     "Unknown expression",
			relative: "some random day",
			want:     baseTime,
			wantErr:  true,
		},
		{
			name:     "Invalid Next Weekday",
			relative: "next funday",
			want:     baseTime, // Error returns baseTime
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, datemath.ErrUnrecognized) {
				t.Errorf("Parse() error = %v, want ErrUnrecognized", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseInstant(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	parser := datemath.NewParserInLocation(loc)
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, loc) // Wednesday

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr error
	}{
		{
			name:  "RFC3339 keeps its offset",
			input: "2024-01-02T09:00:00Z",
			want:  time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
		},
		{
			name:  "Wall clock in parser zone",
			input: "2024-01-02 09:00",
			want:  time.Date(2024, 1, 2, 9, 0, 0, 0, loc),
		},
		{
			name:  "Date only",
			input: "2024-01-02",
			want:  time.Date(2024, 1, 2, 0, 0, 0, 0, loc),
		},
		{
			name:  "Today with clock",
			input: "today 14:00",
			want:  time.Date(2024, 5, 1, 14, 0, 0, 0, loc),
		},
		{
			name:  "Tomorrow with 12h clock",
			input: "tomorrow 9:30 am",
			want:  time.Date(2024, 5, 2, 9, 30, 0, 0, loc),
		},
		{
			name:  "Noon pm",
			input: "tomorrow 12:15 pm",
			want:  time.Date(2024, 5, 2, 12, 15, 0, 0, loc),
		},
		{
			name:  "Midnight am",
			input: "tomorrow 12:00 am",
			want:  time.Date(2024, 5, 2, 0, 0, 0, 0, loc),
		},
		{
			name:  "Next weekday with clock",
			input: "next monday 10:00",
			want:  time.Date(2024, 5, 6, 10, 0, 0, 0, loc),
		},
		{
			name:  "In days with clock",
			input: "in 2 days 08:00",
			want:  time.Date(2024, 5, 3, 8, 0, 0, 0, loc),
		},
		{
			name:  "Relative day without clock",
			input: "tomorrow",
			want:  time.Date(2024, 5, 2, 0, 0, 0, 0, loc),
		},
		{
			name:    "Empty",
			input:   "  ",
			wantErr: datemath.ErrUnrecognized,
		},
		{
			name:    "Garbage",
			input:   "whenever",
			wantErr: datemath.ErrUnrecognized,
		},
		{
			name:    "Hour out of range",
			input:   "today 25:00",
			wantErr: datemath.ErrInvalidClock,
		},
		{
			name:    "Minute out of range",
			input:   "today 10:75",
			wantErr: datemath.ErrInvalidClock,
		},
		{
			name:    "12h hour out of range",
			input:   "today 13:00 pm",
			wantErr: datemath.ErrInvalidClock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseInstant(tt.input, baseTime)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseInstant() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInstant() unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseInstant() got = %v, want %v", got, tt.want)
			}
		})
	}
}
