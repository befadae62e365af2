package timezone_test

import (
	"cargobike/shared/constant"
	"cargobike/shared/timezone"
	"testing"
	"time"
)

func TestInitWithStandardLocation(t *testing.T) {
	defer timezone.Init("")

	timezone.Init("Europe/Paris")

	if timezone.GetLocation().String() != "Europe/Paris" {
		t.Errorf("expected Europe/Paris, got %s", timezone.GetLocation())
	}
}

func TestInitWithUnknownLocationFallsBack(t *testing.T) {
	defer timezone.Init("")

	timezone.Init("Mars/Olympus_Mons")

	if timezone.GetLocation() != time.Local {
		t.Errorf("expected local location, got %s", timezone.GetLocation())
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	timezone.Init("UTC")
	defer timezone.Init("")

	parsed, err := timezone.Parse(constant.DateTimeFormat, "2024-01-01 10:00:00")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if got := timezone.Format(parsed, constant.DateTimeFormat); got != "2024-01-01 10:00:00" {
		t.Errorf("expected 2024-01-01 10:00:00, got %s", got)
	}
}

func TestFromUnixMilli(t *testing.T) {
	timezone.Init("UTC")
	defer timezone.Init("")

	got := timezone.FromUnixMilli(1704103200000)

	if got.Format(constant.DateTimeFormat) != "2024-01-01 10:00:00" {
		t.Errorf("expected 2024-01-01 10:00:00, got %s", got.Format(constant.DateTimeFormat))
	}
}

func TestNowHasNoSubSecondPart(t *testing.T) {
	if timezone.Now().Nanosecond() != 0 {
		t.Error("Now() should be truncated to seconds")
	}
}

func TestFromUnixMilliDuringFallBack(t *testing.T) {
	timezone.Init("Europe/Paris")
	defer timezone.Init("")

	// 2024-10-27 00:45 UTC is 02:45 CEST, half an hour before clocks go back.
	start := timezone.FromUnixMilli(1729989900000)
	end := start.Add(30 * time.Minute)

	if got := timezone.Format(start, constant.DateTimeFormat); got != "2024-10-27 02:45:00" {
		t.Errorf("expected 2024-10-27 02:45:00, got %s", got)
	}

	if got := timezone.Format(end, constant.DateTimeFormat); got != "2024-10-27 03:15:00" {
		t.Errorf("expected 2024-10-27 03:15:00, got %s", got)
	}

	reparsed, err := timezone.Parse(constant.DateTimeFormat, timezone.Format(end, constant.DateTimeFormat))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if !reparsed.After(start) {
		t.Errorf("expected %s to be after %s", reparsed, start)
	}
}

func TestParseFormatRoundTripInSpringGap(t *testing.T) {
	timezone.Init("Europe/Paris")
	defer timezone.Init("")

	// 02:30 does not exist on the Paris clock on 2024-03-31.
	parsed, err := timezone.Parse(constant.DateTimeFormat, "2024-03-31 02:30:00")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if got := timezone.Format(parsed, constant.DateTimeFormat); got != "2024-03-31 02:30:00" {
		t.Errorf("expected 2024-03-31 02:30:00, got %s", got)
	}
}
