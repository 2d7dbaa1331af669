package models

import "testing"

func TestParseInfractionType(t *testing.T) {
	for _, typ := range AllInfractionTypes {
		got, err := ParseInfractionType(string(typ))
		if err != nil {
			t.Errorf("ParseInfractionType(%q) returned error: %v", typ, err)
		}
		if got != typ {
			t.Errorf("ParseInfractionType(%q) = %v, want %v", typ, got, typ)
		}
	}

	if _, err := ParseInfractionType("timeout"); err == nil {
		t.Error("ParseInfractionType should reject unknown types")
	}
	if _, err := ParseInfractionType(""); err == nil {
		t.Error("ParseInfractionType should reject the empty string")
	}
}

func TestInfractionTypeMappingsAreTotal(t *testing.T) {
	// Every member of the closed set must have a glyph and a label;
	// the fallback values are reserved for corrupted rows.
	for _, typ := range AllInfractionTypes {
		if typ.Emoji() == "❔" {
			t.Errorf("type %q has no emoji mapping", typ)
		}
		if typ.Label() == string(typ) {
			t.Errorf("type %q has no label mapping", typ)
		}
		if !typ.Valid() {
			t.Errorf("type %q should be valid", typ)
		}
	}
}

func TestInfractionTypeUnknownFallbacks(t *testing.T) {
	bad := InfractionType("corrupted")
	if bad.Valid() {
		t.Error("unknown type should not be valid")
	}
	if bad.Emoji() != "❔" {
		t.Errorf("unknown type emoji = %q, want fallback", bad.Emoji())
	}
	if bad.Label() != "corrupted" {
		t.Errorf("unknown type label = %q, want raw value", bad.Label())
	}
}
