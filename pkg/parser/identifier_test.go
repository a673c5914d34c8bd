package parser

import (
	"testing"

	"github.com/cpp-pm/openddl-parser/pkg/ddl"
)

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantID string
		wantOK bool
	}{
		{"plain identifier", "GeometryNode ", "GeometryNode", true},
		{"leading whitespace", "   Name {", "Name", true},
		{"stops at paren", "Metric(key = 1)", "Metric", true},
		{"digit start rejected", "9abc", "", false},
		{"separator rejected", ", next", "", false},
		{"empty input", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := []byte(tt.input)
			id, _, ok := parseIdentifier(buf, 0, len(buf))
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if id != tt.wantID {
				t.Errorf("id = %q, want %q", id, tt.wantID)
			}
		})
	}
}

func TestParseName(t *testing.T) {
	buf := []byte("$box ")
	name, _ := parseName(buf, 0, len(buf))
	if name == nil {
		t.Fatal("Expected a name for $box")
	}
	if name.Kind != ddl.GlobalName || name.ID != "box" {
		t.Errorf("Got %v %q, want global box", name.Kind, name.ID)
	}

	buf = []byte("%local,")
	name, _ = parseName(buf, 0, len(buf))
	if name == nil {
		t.Fatal("Expected a name for %local")
	}
	if name.Kind != ddl.LocalName || name.ID != "local" {
		t.Errorf("Got %v %q, want local local", name.Kind, name.ID)
	}

	buf = []byte("plain")
	if name, _ = parseName(buf, 0, len(buf)); name != nil {
		t.Errorf("Expected nil for an unprefixed identifier, got %v", name)
	}
}
