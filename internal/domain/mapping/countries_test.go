package mapping

import "testing"

func TestCountryCodeSymmetry(t *testing.T) {
	for three, two := range countryThreeToTwo {
		if got := ThreeLetterCountryCode(two); got != three {
			t.Fatalf("round trip broken for %s: got %q", three, got)
		}
		if got := TwoLetterCountryCode(three); got != two {
			t.Fatalf("lookup broken for %s: got %q", three, got)
		}
	}
}

func TestCountryCodeUnknown(t *testing.T) {
	if got := TwoLetterCountryCode("XXX"); got != "" {
		t.Fatalf("expected empty for unknown alpha-3, got %q", got)
	}
	if got := ThreeLetterCountryCode("XX"); got != "" {
		t.Fatalf("expected empty for unknown alpha-2, got %q", got)
	}
}

func TestRegionLookup(t *testing.T) {
	t.Run("US states", func(t *testing.T) {
		if got := RegionCode("US", "Washington"); got != "WA" {
			t.Fatalf("expected WA, got %q", got)
		}
		if got := RegionName("US", "WA"); got != "Washington" {
			t.Fatalf("expected Washington, got %q", got)
		}
	})

	t.Run("Canadian provinces", func(t *testing.T) {
		if got := RegionCode("CA", "British Columbia"); got != "BC" {
			t.Fatalf("expected BC, got %q", got)
		}
		if got := RegionName("CA", "BC"); got != "British Columbia" {
			t.Fatalf("expected British Columbia, got %q", got)
		}
	})

	t.Run("unknown region or country", func(t *testing.T) {
		if got := RegionCode("US", "Atlantis"); got != "" {
			t.Fatalf("expected empty region code, got %q", got)
		}
		if got := RegionCode("SE", "Stockholm"); got != "" {
			t.Fatalf("expected empty for untabled country, got %q", got)
		}
		if got := RegionName("US", "ZZ"); got != "" {
			t.Fatalf("expected empty region name, got %q", got)
		}
	})
}
