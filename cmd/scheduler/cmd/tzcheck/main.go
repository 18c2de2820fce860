// Command tzcheck sweeps calendar days across timezones and reports whether the
// wall clock conversions round-trip. Days next to a DST change are reported as a
// known limitation of offset probing rather than as failures.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/models"
	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/wallclock"
)

const defaultZones = "UTC,America/Los_Angeles,America/New_York,Europe/London,Europe/Berlin,Asia/Tokyo,Asia/Kolkata,Asia/Kathmandu,Australia/Sydney,Pacific/Auckland"

type options struct {
	zones []string
	from  models.CalendarDate
	days  int
	step  int
}

type report struct {
	checked  int
	failures int
	known    int
}

func main() {
	var (
		zones = flag.String("zones", defaultZones, "comma separated IANA zone ids")
		from  = flag.String("from", "", "first date to check, YYYY-MM-DD (default: Jan 1 of this year)")
		days  = flag.Int("days", 366, "number of days to sweep")
		step  = flag.Int("step", 15, "minutes between checked clock times")
		plain = flag.Bool("no-color", false, "disable colored output")
	)
	flag.Parse()

	if *plain {
		color.NoColor = true
	}

	opts := options{zones: splitZones(*zones), days: *days, step: *step}
	if *from == "" {
		opts.from = models.NewCalendarDate(time.Now().UTC().Year(), time.January, 1)
	} else {
		date, err := models.ParseCalendarDate(*from)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		opts.from = date
	}

	rep, err := run(os.Stdout, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if rep.failures > 0 {
		os.Exit(1)
	}
}

func splitZones(raw string) []string {
	parts := strings.Split(raw, ",")
	zones := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			zones = append(zones, p)
		}
	}
	return zones
}

func run(w io.Writer, opts options) (report, error) {
	if opts.days <= 0 {
		return report{}, fmt.Errorf("days must be positive, got %d", opts.days)
	}
	if opts.step <= 0 || opts.step > 24*60 {
		return report{}, fmt.Errorf("step must be between 1 and 1440 minutes, got %d", opts.step)
	}

	pass := color.New(color.FgGreen, color.Bold).SprintFunc()
	fail := color.New(color.FgRed, color.Bold).SprintFunc()
	known := color.New(color.FgYellow).SprintFunc()

	conv := wallclock.New(nil, time.UTC)

	var total report
	for _, tz := range opts.zones {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return total, fmt.Errorf("load zone %q: %w", tz, err)
		}

		var zone report
		var notes []string
		for i := 0; i < opts.days; i++ {
			date := opts.from.AddDays(i)
			bad := checkDay(conv, date, loc, opts.step)
			zone.checked++

			switch {
			case len(bad) == 0:
			case nearTransition(date, loc):
				zone.known++
				notes = append(notes, fmt.Sprintf("    %s %s %s", known("KNOWN"), date, bad[0]))
			default:
				zone.failures++
				notes = append(notes, fmt.Sprintf("    %s %s %s", fail("FAIL"), date, bad[0]))
			}
		}

		verdict := pass("PASS")
		if zone.failures > 0 {
			verdict = fail("FAIL")
		}
		fmt.Fprintf(w, "%s %-22s days=%d known_dst=%d failures=%d\n", verdict, tz, zone.checked, zone.known, zone.failures)
		for _, n := range notes {
			fmt.Fprintln(w, n)
		}

		total.checked += zone.checked
		total.known += zone.known
		total.failures += zone.failures
	}

	return total, nil
}

// checkDay returns a description of every law the date breaks in loc.
func checkDay(conv *wallclock.Converter, date models.CalendarDate, loc *time.Location, step int) []string {
	var bad []string

	for _, b := range []wallclock.Boundary{wallclock.BoundaryStart, wallclock.BoundaryEnd} {
		instant := conv.CalendarDateToInstantIn(date, loc, b)
		got, _ := wallclock.InstantToWallDateTimeIn(instant, loc)
		if got != date {
			bad = append(bad, fmt.Sprintf("%s boundary lands on %s", b, got))
		}
	}

	for minutes := 0; minutes < 24*60; minutes += step {
		clock := models.WallTimeFromMinutes(minutes)
		instant := wallclock.WallDateTimeToInstantIn(date, clock, loc)
		gotDate, gotClock := wallclock.InstantToWallDateTimeIn(instant, loc)
		if gotDate != date || gotClock != clock {
			bad = append(bad, fmt.Sprintf("%s renders back as %s %s", clock, gotDate, gotClock))
		}
	}

	return bad
}

// nearTransition reports whether the UTC offset changes within a day either side
// of date. Probing uses the offset at the trial instant, which can sit on the
// other side of the change for zones far from UTC.
func nearTransition(date models.CalendarDate, loc *time.Location) bool {
	before := date.AddDays(-1)
	after := date.AddDays(2)
	_, offBefore := time.Date(before.Year, before.Month, before.Day, 0, 0, 0, 0, loc).Zone()
	_, offAfter := time.Date(after.Year, after.Month, after.Day, 0, 0, 0, 0, loc).Zone()
	return offBefore != offAfter
}
