package config

import (
	"flag"
	"testing"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/rjvisser/worklog/internal/timeutil"
)

func testContext(t *testing.T, flags map[string]string) *cli.Context {
	t.Helper()

	f := flag.NewFlagSet("show", flag.PanicOnError)

	for k, v := range flags {
		_ = f.String(k, "", "")

		err := f.Set(k, v)
		if err != nil {
			t.Log(err)
		}
	}

	return cli.NewContext(&cli.App{}, f, nil)
}

func TestFilterWithoutFlags(t *testing.T) {
	cfg, err := Filter(testContext(t, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg != nil {
		t.Fatalf("expected no filter, but got: %+v", cfg)
	}

	if !cfg.Includes(time.Now()) {
		t.Error("expected a nil filter to include everything")
	}
}

func TestFilterPeriodToday(t *testing.T) {
	cfg, err := Filter(testContext(t, map[string]string{
		"period": "today",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now := time.Now()

	if !cfg.Includes(now) {
		t.Error("expected the current time to fall within today")
	}

	yesterday := now.AddDate(0, 0, -1)

	if cfg.Includes(yesterday) {
		t.Error("expected yesterday to fall outside today")
	}
}

func TestFilterPeriodAllTime(t *testing.T) {
	cfg, err := Filter(testContext(t, map[string]string{
		"period": string(timeutil.PeriodAllTime),
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ancient := time.Date(1999, time.January, 1, 0, 0, 0, 0, time.Local)

	if !cfg.Includes(ancient) {
		t.Error("expected all-time to include any past session")
	}
}

func TestFilterInvalidPeriod(t *testing.T) {
	_, err := Filter(testContext(t, map[string]string{
		"period": "fortnight",
	}))
	if err == nil {
		t.Fatal("expected an error for an unknown period")
	}
}

func TestFilterStartDate(t *testing.T) {
	cfg, err := Filter(testContext(t, map[string]string{
		"start": "2024-03-01",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before := time.Date(2024, time.February, 28, 12, 0, 0, 0, time.Local)

	if cfg.Includes(before) {
		t.Error("expected sessions before the start date to be excluded")
	}
}
