package valueobject

import (
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

func TestParseCalendarDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    civil.Date
		wantErr bool
	}{
		{name: "plain date", value: "2024-07-01", want: civil.Date{Year: 2024, Month: time.July, Day: 1}},
		{name: "iso timestamp", value: "2024-07-01T23:10:00Z", want: civil.Date{Year: 2024, Month: time.July, Day: 1}},
		{name: "surrounding spaces", value: " 2024-02-29 ", want: civil.Date{Year: 2024, Month: time.February, Day: 29}},
		{name: "not a leap year", value: "2023-02-29", wantErr: true},
		{name: "wrong layout", value: "01/07/2024", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCalendarDate(tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCalendarDate) {
					t.Fatalf("expected ErrInvalidCalendarDate, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		clock   string
		want    string
		wantErr bool
	}{
		{name: "date only", date: "2024-06-01", want: "2024-06-01T00:00:00"},
		{name: "date and short clock", date: "2024-06-01", clock: "14:05", want: "2024-06-01T14:05:00"},
		{name: "date and long clock", date: "2024-06-01", clock: "14:05:09", want: "2024-06-01T14:05:09"},
		{name: "timestamp ignores clock", date: "2024-06-01T10:00:00", clock: "23:00", want: "2024-06-01T10:00:00"},
		{name: "timestamp without seconds", date: "2024-06-01T10:30", want: "2024-06-01T10:30:00"},
		{name: "bad clock", date: "2024-06-01", clock: "noon", wantErr: true},
		{name: "bad date", date: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateTime(tt.date, tt.clock)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestMonthIntervalOf(t *testing.T) {
	tests := []struct {
		name  string
		now   time.Time
		start string
		end   string
	}{
		{name: "thirty day month", now: time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC), start: "2024-06-01", end: "2024-06-30"},
		{name: "leap february", now: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), start: "2024-02-01", end: "2024-02-29"},
		{name: "december", now: time.Date(2023, time.December, 31, 23, 59, 0, 0, time.UTC), start: "2023-12-01", end: "2023-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthIntervalOf(tt.now)
			if got.Start.String() != tt.start || got.End.String() != tt.end {
				t.Errorf("expected [%s, %s], got [%s, %s]", tt.start, tt.end, got.Start, got.End)
			}
			if !got.Contains(got.Start) || !got.Contains(got.End) {
				t.Error("expected both ends to be included")
			}
			if got.Contains(got.End.AddDays(1)) || got.Contains(got.Start.AddDays(-1)) {
				t.Error("expected neighbouring days to be excluded")
			}
		})
	}
}

func TestMonthKey(t *testing.T) {
	key := MonthKeyOf(civil.Date{Year: 2024, Month: time.July, Day: 9})
	if key != "2024-07" {
		t.Errorf("expected 2024-07, got %s", key)
	}
	if key.Label() != "Jul 2024" {
		t.Errorf("expected Jul 2024, got %s", key.Label())
	}
	if MonthKey("garbage").Label() != "garbage" {
		t.Error("expected an unparseable key to label as itself")
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name  string
		part  string
		whole string
		want  float64
	}{
		{name: "zero whole", part: "50", whole: "0", want: 0},
		{name: "half", part: "250", whole: "500", want: 50},
		{name: "rounded", part: "1", whole: "3", want: 33.33},
		{name: "clamped above", part: "750", whole: "500", want: 100},
		{name: "clamped below", part: "-5", whole: "500", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentage(decimal.RequireFromString(tt.part), decimal.RequireFromString(tt.whole))
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFitsMoneyScale(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"10", true},
		{"10.5", true},
		{"10.55", true},
		{"10.500", true},
		{"10.555", false},
		{"0.001", false},
		{"-3.14", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := FitsMoneyScale(decimal.RequireFromString(tt.value)); got != tt.want {
				t.Errorf("FitsMoneyScale(%s) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
