package config

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
	"github.com/urfave/cli/v2"

	"github.com/rjvisser/worklog/internal/timeutil"
)

var (
	errInvalidDateRange = errors.New(
		"the start time must be earlier than the end time",
	)

	errInvalidPeriod = errors.New(
		"please provide a valid time period",
	)
)

// FilterConfig limits which sessions are shown or exported according to
// their start time. A nil filter includes everything.
type FilterConfig struct {
	StartTime time.Time
	EndTime   time.Time
}

// Includes reports whether a session starting at the given time falls
// within the filter bounds.
func (f *FilterConfig) Includes(t time.Time) bool {
	if f == nil {
		return true
	}

	return !t.Before(f.StartTime) && !t.After(f.EndTime)
}

// getTimeRange returns the start and end time according to the
// specified time period.
func getTimeRange(period timeutil.Period) (start, end time.Time) {
	now := time.Now()

	start = timeutil.RoundToStart(now)

	end = timeutil.RoundToEnd(now)

	//nolint:exhaustive // other cases covered by default
	switch period {
	case timeutil.PeriodToday:
		return
	case timeutil.PeriodYesterday:
		start = now.AddDate(0, 0, timeutil.Range[period])
		start = timeutil.RoundToStart(start)
		end = timeutil.RoundToEnd(start)

		return
	case timeutil.PeriodAllTime:
		start = time.Time{}
		return
	default:
		start = now.AddDate(0, 0, timeutil.Range[period])
		start = timeutil.RoundToStart(start)
	}

	return
}

// Filter builds a session filter from command-line arguments. It
// returns nil when no filtering flags were supplied.
func Filter(ctx *cli.Context) (*FilterConfig, error) {
	period := timeutil.Period(strings.TrimSpace(ctx.String("period")))

	start := ctx.String("start")
	end := ctx.String("end")

	if period == "" && start == "" && end == "" {
		return nil, nil
	}

	filterCfg := &FilterConfig{}

	if period != "" {
		if !slices.Contains(timeutil.PeriodCollection, period) {
			return nil, errInvalidPeriod
		}

		filterCfg.StartTime, filterCfg.EndTime = getTimeRange(period)

		return filterCfg, nil
	}

	dpCfg := &dateparser.Configuration{
		CurrentTime:     time.Now(),
		DefaultTimezone: time.Local,
	}

	if start != "" {
		dt, err := dateparser.Parse(dpCfg, start)
		if err != nil {
			return nil, err
		}

		filterCfg.StartTime = timeutil.RoundToStart(dt.Time)
	}

	filterCfg.EndTime = timeutil.RoundToEnd(time.Now())

	if end != "" {
		dt, err := dateparser.Parse(dpCfg, end)
		if err != nil {
			return nil, err
		}

		filterCfg.EndTime = timeutil.RoundToEnd(dt.Time)
	}

	if filterCfg.EndTime.Before(filterCfg.StartTime) {
		return nil, errInvalidDateRange
	}

	return filterCfg, nil
}
