package cron

import (
	"testing"

	"rangely/models"
)

func day(t *testing.T, s string) models.Day {
	t.Helper()
	d, err := models.ParseDay(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestRuleExpired(t *testing.T) {
	cutoff := day(t, "2025-06-01")

	tests := []struct {
		name string
		rule models.Rule
		want bool
	}{
		{
			name: "date range fully in the past",
			rule: models.Rule{
				Kind: models.RuleKindDateRange,
				DateRange: &models.DateRangeRule{Ranges: []models.DayRange{
					{Start: day(t, "2025-01-01"), End: day(t, "2025-01-05")},
					{Start: day(t, "2025-03-01"), End: day(t, "2025-03-02")},
				}},
			},
			want: true,
		},
		{
			name: "date range still upcoming",
			rule: models.Rule{
				Kind: models.RuleKindDateRange,
				DateRange: &models.DateRangeRule{Ranges: []models.DayRange{
					{Start: day(t, "2025-01-01"), End: day(t, "2025-01-05")},
					{Start: day(t, "2025-07-01"), End: day(t, "2025-07-05")},
				}},
			},
			want: false,
		},
		{
			name: "date range ending on the cutoff",
			rule: models.Rule{
				Kind: models.RuleKindDateRange,
				DateRange: &models.DateRangeRule{Ranges: []models.DayRange{
					{Start: day(t, "2025-05-01"), End: day(t, "2025-06-01")},
				}},
			},
			want: false,
		},
		{
			name: "date range with only malformed entries",
			rule: models.Rule{
				Kind:      models.RuleKindDateRange,
				DateRange: &models.DateRangeRule{Ranges: []models.DayRange{{}}},
			},
			want: false,
		},
		{
			name: "restricted boundary with past zones",
			rule: models.Rule{
				Kind: models.RuleKindRestrictedBoundary,
				RestrictedBoundary: &models.RestrictedBoundaryRule{
					Zones: []models.Zone{{
						Range: models.DayRange{Start: day(t, "2024-07-01"), End: day(t, "2024-07-31")},
					}},
				},
			},
			want: true,
		},
		{
			name: "weekday rules never expire",
			rule: models.Rule{
				Kind:    models.RuleKindWeekday,
				Weekday: &models.WeekdayRule{Days: []int{0}},
			},
			want: false,
		},
		{
			name: "allowed ranges never expire",
			rule: models.Rule{
				Kind: models.RuleKindAllowedRanges,
				AllowedRanges: &models.AllowedRangesRule{Ranges: []models.DayRange{
					{Start: day(t, "2025-01-01"), End: day(t, "2025-01-05")},
				}},
			},
			want: false,
		},
		{
			name: "boundary rules never expire",
			rule: models.Rule{
				Kind: models.RuleKindBoundary,
				Boundary: &models.BoundaryRule{
					Date:      day(t, "2024-01-01"),
					Direction: models.DirectionBefore,
				},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RuleExpired(tt.rule, cutoff); got != tt.want {
				t.Errorf("RuleExpired = %v, want %v", got, tt.want)
			}
		})
	}
}
