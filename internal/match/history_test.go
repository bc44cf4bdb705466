package match

import "testing"

func TestExtractWorkHistoryDateRanges(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantEntries  int
		wantDuration float64
	}{
		{
			name:         "closed range",
			text:         "Backend Developer at Nimbus | 2018 - 2022",
			wantEntries:  1,
			wantDuration: 4.0,
		},
		{
			name:         "open ended range uses current year",
			text:         "Data Engineer at Flux | 2022 - Present",
			wantEntries:  1,
			wantDuration: 3.0,
		},
		{
			name:         "same year floors at half a year",
			text:         "QA Engineer at Probe | 2024 - 2024",
			wantEntries:  1,
			wantDuration: 0.5,
		},
		{
			name:        "implausible start year rejected",
			text:        "Alchemist at Guild | 1492 - 1500",
			wantEntries: 0,
		},
		{
			name:        "end before start rejected",
			text:        "Time Traveler at Paradox | 2023 - 2020",
			wantEntries: 0,
		},
		{
			name:        "bullet description rejected as title",
			text:        "- Developed the billing pipeline 2019 - 2021",
			wantEntries: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := extractWorkHistory(tt.text, 2025)
			if len(entries) != tt.wantEntries {
				t.Fatalf("entries = %v, want %d", entries, tt.wantEntries)
			}
			if tt.wantEntries == 1 && entries[0].DurationYears != tt.wantDuration {
				t.Errorf("duration = %.1f, want %.1f", entries[0].DurationYears, tt.wantDuration)
			}
		})
	}
}

func TestExtractWorkHistoryPrevLineFallback(t *testing.T) {
	text := "Data Scientist, DataPrime\n2019 - 2022"
	entries := extractWorkHistory(text, 2025)
	if len(entries) != 1 {
		t.Fatalf("entries = %v, want 1", entries)
	}
	if entries[0].Title != "Data Scientist" {
		t.Errorf("title = %q, want Data Scientist", entries[0].Title)
	}
	if entries[0].Company != "DataPrime" {
		t.Errorf("company = %q, want DataPrime", entries[0].Company)
	}
}

func TestExtractWorkHistorySectionScoping(t *testing.T) {
	text := `Experience
Platform Engineer at Orbit | 2020 - 2023

Education
Completed coursework 2015 - 2019`

	entries := extractWorkHistory(text, 2025)
	if len(entries) != 1 {
		t.Fatalf("entries = %v, want only the experience section entry", entries)
	}
	if entries[0].Title != "Platform Engineer" {
		t.Errorf("title = %q", entries[0].Title)
	}
}

func TestCalculateTotalYears(t *testing.T) {
	if got := calculateTotalYears(nil); got != nil {
		t.Errorf("empty history total = %v, want nil", got)
	}

	history := []WorkEntry{
		{Title: "Engineer", DurationYears: 3.0},
		{Title: "Senior Engineer", DurationYears: 2.5},
	}
	got := calculateTotalYears(history)
	if got == nil || *got != 5.5 {
		t.Errorf("total = %v, want 5.5", got)
	}
}
