// internal/forecast/bucketing.go
package forecast

import (
	"sort"
	"time"

	"github.com/stokpintar/backend-go/internal/domain"
)

// WeekStart returns the Monday of the calendar week containing the given date,
// truncated to midnight UTC. Weeks start on Monday: a Sunday date belongs to the
// week that started six days earlier.
func WeekStart(date time.Time) time.Time {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	weekday := int(d.Weekday())
	if weekday == 0 {
		return d.AddDate(0, 0, -6)
	}

	return d.AddDate(0, 0, -(weekday - 1))
}

// WeeklySeries groups the given transactions into calendar-week buckets and
// returns the per-week total quantities ordered by week start ascending.
// Weeks without any transaction are not synthesized as zero entries, so the
// series may have gaps; consumers treat it as a plain ordered sequence.
func WeeklySeries(sales []domain.SalesTransaction) []float64 {
	if len(sales) == 0 {
		return nil
	}

	totals := make(map[time.Time]float64, len(sales))
	for _, sale := range sales {
		week := WeekStart(sale.Date)
		totals[week] += float64(sale.Quantity)
	}

	weeks := make([]time.Time, 0, len(totals))
	for week := range totals {
		weeks = append(weeks, week)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })

	series := make([]float64, len(weeks))
	for i, week := range weeks {
		series[i] = totals[week]
	}

	return series
}
