package utils

import "testing"

func TestSpanDays(t *testing.T) {
	tests := []struct {
		start string
		end   string
		want  int
	}{
		{"2024-06-01", "2024-06-01", 1},
		{"2024-06-01", "2024-06-03", 3},
		{"2024-02-27", "2024-03-02", 5}, // leap year
		{"2024-12-30", "2025-01-02", 4}, // year boundary
	}

	for _, tt := range tests {
		start, err := ParseDate(tt.start)
		if err != nil {
			t.Fatalf("bad start %s: %v", tt.start, err)
		}
		end, err := ParseDate(tt.end)
		if err != nil {
			t.Fatalf("bad end %s: %v", tt.end, err)
		}
		if got := SpanDays(start, end); got != tt.want {
			t.Errorf("SpanDays(%s, %s): expected %d, got %d", tt.start, tt.end, tt.want, got)
		}
	}
}

func TestDateAtIndex(t *testing.T) {
	start, _ := ParseDate("2024-06-29")
	if got := DateAtIndex(start, 0); got != "2024-06-29" {
		t.Errorf("index 0: got %s", got)
	}
	if got := DateAtIndex(start, 2); got != "2024-07-01" {
		t.Errorf("index 2: expected month rollover, got %s", got)
	}
}

func TestParseDate_Rejects(t *testing.T) {
	for _, input := range []string{"", "June 1", "2024-13-01", "01-06-2024"} {
		if _, err := ParseDate(input); err == nil {
			t.Errorf("expected error for %q", input)
		}
	}
}
