package catalog

import "testing"

func TestRegistryFallbacks(t *testing.T) {
	r := DefaultRegistry()

	if icon := r.IconFor("골프"); icon != "🏌️" {
		t.Fatalf("unexpected golf icon %q", icon)
	}
	if icon := r.IconFor("no-such-type"); icon != "🧾" {
		t.Fatalf("expected fallback icon, got %q", icon)
	}

	schema := r.SchemaFor("no-such-type")
	if len(schema) != 1 || schema[0].Role != "count" {
		t.Fatalf("expected single generic count factor, got %+v", schema)
	}
	if schema[0].Default < 1 {
		t.Fatalf("fallback default must be at least 1, got %g", schema[0].Default)
	}
}

func TestRegistrySchemas(t *testing.T) {
	r := DefaultRegistry()

	golf := r.SchemaFor("골프")
	if len(golf) != 2 || golf[0].Role != "persons" || golf[1].Role != "rounds" {
		t.Fatalf("unexpected golf schema %+v", golf)
	}
	apartment := r.SchemaFor("아파트")
	if len(apartment) != 2 || apartment[1].Role != "days" {
		t.Fatalf("unexpected apartment schema %+v", apartment)
	}
	car := r.SchemaFor("차량")
	if len(car) != 1 || car[0].Role != "persons" {
		t.Fatalf("unexpected car schema %+v", car)
	}
}

func TestSchemaForReturnsCopy(t *testing.T) {
	r := DefaultRegistry()
	schema := r.SchemaFor("골프")
	schema[0].Default = 99
	if again := r.SchemaFor("골프"); again[0].Default != 1 {
		t.Fatalf("registry schema mutated through returned slice: %+v", again)
	}
}

func TestListTypesOrdering(t *testing.T) {
	r := DefaultRegistry()
	list := r.ListTypes([]string{"차량", "스파", "차량", ""})

	if list[0] != "차량" || list[1] != "스파" {
		t.Fatalf("discovered keys must lead, got %v", list[:2])
	}
	seen := map[string]int{}
	for _, key := range list {
		seen[key]++
	}
	for key, n := range seen {
		if n > 1 {
			t.Fatalf("duplicate key %q in list", key)
		}
	}
	if seen["골프"] != 1 || seen[OtherKey] != 1 {
		t.Fatalf("catalog keys missing from list: %v", list)
	}
}
