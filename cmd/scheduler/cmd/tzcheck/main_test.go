package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/ozzus/trip-scheduler/cmd/scheduler/internal/domain/models"
)

func TestRunMarksDSTDaysAsKnown(t *testing.T) {
	color.NoColor = true

	var out bytes.Buffer
	rep, err := run(&out, options{
		zones: []string{"UTC", "America/Los_Angeles"},
		from:  models.NewCalendarDate(2026, time.March, 1),
		days:  14,
		step:  30,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rep.failures != 0 {
		t.Fatalf("expected no failures, got %d:\n%s", rep.failures, out.String())
	}
	if rep.known == 0 {
		t.Fatalf("expected the spring-forward day to be reported:\n%s", out.String())
	}
	if rep.checked != 28 {
		t.Fatalf("expected 28 checked days, got %d", rep.checked)
	}

	text := out.String()
	for _, want := range []string{"PASS UTC", "PASS America/Los_Angeles", "KNOWN 2026-03-08"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output:\n%s", want, text)
		}
	}
}

func TestRunValidatesOptions(t *testing.T) {
	var out bytes.Buffer
	if _, err := run(&out, options{zones: []string{"UTC"}, days: 0, step: 15}); err == nil {
		t.Fatal("expected error for zero days")
	}
	if _, err := run(&out, options{zones: []string{"UTC"}, days: 1, step: 0}); err == nil {
		t.Fatal("expected error for zero step")
	}
	if _, err := run(&out, options{zones: []string{"Mars/Olympus"}, days: 1, step: 60}); err == nil {
		t.Fatal("expected error for unknown zone")
	}
}

func TestSplitZones(t *testing.T) {
	got := splitZones(" UTC, ,Asia/Tokyo,")
	if len(got) != 2 || got[0] != "UTC" || got[1] != "Asia/Tokyo" {
		t.Fatalf("unexpected zones %v", got)
	}
}
