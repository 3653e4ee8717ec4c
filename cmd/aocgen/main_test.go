package main

import "testing"

func TestResolveYearDay(t *testing.T) {
	cases := []struct {
		name     string
		args     []string
		yearFlag int
		dayFlag  int
		wantYear int
		wantDay  int
		wantErr  bool
	}{
		{"positional", []string{"2024", "17"}, 0, 0, 2024, 17, false},
		{"flags only", nil, 2024, 17, 2024, 17, false},
		{"flags override positional", []string{"2020", "1"}, 2024, 17, 2024, 17, false},
		{"year flag with positional day", []string{"2020", "5"}, 2024, 0, 2024, 5, false},
		{"missing day", []string{"2024"}, 0, 0, 0, 0, true},
		{"missing both", nil, 0, 0, 0, 0, true},
		{"non-numeric year", []string{"twenty", "5"}, 0, 0, 0, 0, true},
		{"non-numeric day", []string{"2024", "five"}, 0, 0, 0, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			year, day, err := resolveYearDay(tc.args, tc.yearFlag, tc.dayFlag)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got year=%d day=%d", year, day)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if year != tc.wantYear || day != tc.wantDay {
				t.Errorf("got (%d, %d), want (%d, %d)", year, day, tc.wantYear, tc.wantDay)
			}
		})
	}
}
