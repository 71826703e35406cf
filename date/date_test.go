package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-01-02", want: New(2024, time.January, 2)},
		{in: "2024-1-2", want: New(2024, time.January, 2)},
		{in: "2023-12-31", want: New(2023, time.December, 31)},
		{in: "not-a-date", wantErr: true},
		{in: "2024/01/02", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDate_Normalization(t *testing.T) {
	// Out-of-range day and month values roll over like time.Date does.
	got := New(2024, time.January, 32)
	want := New(2024, time.February, 1)
	if got != want {
		t.Errorf("New(2024, January, 32) = %v, want %v", got, want)
	}

	got = New(2024, time.December, 31).Add(1)
	want = New(2025, time.January, 1)
	if got != want {
		t.Errorf("Add(1) across year = %v, want %v", got, want)
	}
}

func TestDate_AddMonths(t *testing.T) {
	got := New(2024, time.March, 15).AddMonths(-12)
	want := New(2023, time.March, 15)
	if got != want {
		t.Errorf("AddMonths(-12) = %v, want %v", got, want)
	}
}

func TestDate_MonthKey(t *testing.T) {
	if got := MustParse("2024-01-10").MonthKey(); got != "2024-01" {
		t.Errorf("MonthKey() = %q, want %q", got, "2024-01")
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	day := MustParse("2024-06-30")
	data, err := json.Marshal(day)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2024-06-30"` {
		t.Errorf("Marshal() = %s, want %q", data, `"2024-06-30"`)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != day {
		t.Errorf("round trip = %v, want %v", back, day)
	}
}
