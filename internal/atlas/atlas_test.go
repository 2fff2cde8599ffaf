package atlas

import "testing"

func TestLookupExact(t *testing.T) {
	a := New()
	c, ok := a.Lookup("San Francisco, CA, United States")
	if !ok {
		t.Fatal("expected a hit")
	}
	if c.Lat != 37.7749 || c.Lon != -122.4194 {
		t.Fatalf("unexpected coordinates: %+v", c)
	}
}

func TestLookupTypoNormalization(t *testing.T) {
	a := New()
	got, ok := a.Lookup("Sao Paolo")
	if !ok {
		t.Fatal("expected a hit")
	}
	want, ok := a.Lookup("São Paulo")
	if !ok {
		t.Fatal("expected a hit for canonical spelling")
	}
	if got != want {
		t.Fatalf("Sao Paolo %+v != São Paulo %+v", got, want)
	}
}

func TestLookupPipePrefix(t *testing.T) {
	a := New()
	c, ok := a.Lookup("San Francisco, CA | New York, NY")
	if !ok {
		t.Fatal("expected a hit on the pipe-prefix fallback")
	}
	if c.Lat != 37.7749 {
		t.Fatalf("expected San Francisco coordinates, got %+v", c)
	}
}

func TestLookupCityStateRegexFallback(t *testing.T) {
	a := New()
	_, ok := a.Lookup("Remote - Austin, TX - US Region")
	if !ok {
		t.Fatal("expected the City, ST regex fallback to find Austin, TX")
	}
}

func TestLookupDataCenterSuffix(t *testing.T) {
	a2 := NewFromMap(map[string]Coordinates{"Ashburn, VA": {Lat: 39.0438, Lon: -77.4874}})
	c, ok := a2.Lookup("Ashburn, VA - Data Center")
	if !ok {
		t.Fatal("expected data-center-suffix fallback to hit")
	}
	if c.Lat != 39.0438 {
		t.Fatalf("unexpected coordinates: %+v", c)
	}
}

func TestLookupWorkplaceTypeSuffix(t *testing.T) {
	a := New()
	c, ok := a.Lookup("Austin, Texas, United States (Hybrid)")
	if !ok {
		t.Fatal("expected workplace-type-suffix fallback to hit")
	}
	if c.Lat != 30.2672 {
		t.Fatalf("unexpected coordinates: %+v", c)
	}
}

func TestLookupSubstring(t *testing.T) {
	a := NewFromMap(map[string]Coordinates{"Austin": {Lat: 30.2672, Lon: -97.7431}})
	c, ok := a.Lookup("Austin HQ (Building 2)")
	if !ok {
		t.Fatal("expected substring fallback to hit")
	}
	if c.Lat != 30.2672 {
		t.Fatalf("unexpected coordinates: %+v", c)
	}
}

func TestLookupOfficeNameHeuristic(t *testing.T) {
	a := NewFromMap(map[string]Coordinates{"Seattle": {Lat: 47.6062, Lon: -122.3321}})
	cases := []string{
		"Seattle Office",
		"Office - Seattle",
		"Office, Seattle",
	}
	for _, s := range cases {
		c, ok := a.Lookup(s)
		if !ok {
			t.Fatalf("expected office-name heuristic to resolve %q", s)
		}
		if c.Lat != 47.6062 {
			t.Fatalf("%q: unexpected coordinates %+v", s, c)
		}
	}
}

func TestLookupMiss(t *testing.T) {
	a := New()
	_, ok := a.Lookup("Nowhere Land, Antarctica")
	if ok {
		t.Fatal("expected no match")
	}
}

func TestLookupEmpty(t *testing.T) {
	a := New()
	_, ok := a.Lookup("   ")
	if ok {
		t.Fatal("expected no match on blank input")
	}
}
