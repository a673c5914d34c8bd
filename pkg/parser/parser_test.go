package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/cpp-pm/openddl-parser/pkg/ddl"
	"github.com/cpp-pm/openddl-parser/pkg/sink"
)

func parseString(t *testing.T, input string) *Parser {
	t.Helper()
	p := NewFromBuffer([]byte(input), true)
	p.SetSink(sink.Func(func(severity sink.Severity, message string) {}))
	if err := p.Parse(); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return p
}

func TestVersion(t *testing.T) {
	if Version() != "0.1.0" {
		t.Errorf("Version() = %q, want 0.1.0", Version())
	}
}

func TestParseEmptyBuffer(t *testing.T) {
	p := New()
	err := p.Parse()
	if !errors.Is(err, ErrEmptyBuffer) {
		t.Errorf("Expected ErrEmptyBuffer, got %v", err)
	}
	if p.Root() != nil {
		t.Error("Expected no root before a successful parse")
	}
}

func TestParseMetricHeader(t *testing.T) {
	p := parseString(t, `Metric (key = "distance") {float {1}}`)

	ctx := p.Context()
	if ctx == nil {
		t.Fatal("Expected a context after parsing")
	}
	if len(ctx.Properties) != 1 {
		t.Fatalf("Expected 1 context property, got %d", len(ctx.Properties))
	}
	prop := ctx.Properties[0]
	if prop.Key != "key" || prop.Value == nil || prop.Value.String != "distance" {
		t.Errorf("Context property = %q %v, want key = distance", prop.Key, prop.Value)
	}

	root := p.Root()
	if len(root.Children) != 1 {
		t.Fatalf("Expected 1 top-level structure, got %d", len(root.Children))
	}
	metric := root.Children[0]
	if metric.Type != "Metric" {
		t.Errorf("Type = %q, want Metric", metric.Type)
	}
	if len(metric.Values) != 1 || metric.Values[0].Int64 != 1 {
		t.Errorf("Values = %v, want a single 1", metric.Values)
	}
}

func TestParseNestedStructures(t *testing.T) {
	input := `GeometryNode $node1 {
    Name {string {"box"}}
    ObjectRef (target = ref {$box}) {}
}`
	p := parseString(t, input)

	root := p.Root()
	if len(root.Children) != 1 {
		t.Fatalf("Expected 1 top-level structure, got %d", len(root.Children))
	}
	geo := root.Children[0]
	if geo.Type != "GeometryNode" || geo.Name != "node1" {
		t.Errorf("Got %q $%q, want GeometryNode $node1", geo.Type, geo.Name)
	}
	if geo.Parent != root {
		t.Error("Expected the top-level structure to hang off the root")
	}
	if len(geo.Children) != 2 {
		t.Fatalf("Expected 2 children, got %d", len(geo.Children))
	}

	name := geo.Children[0]
	if name.Type != "Name" {
		t.Errorf("First child type = %q, want Name", name.Type)
	}
	if len(name.Values) != 1 || name.Values[0].String != "box" {
		t.Errorf("Name values = %v, want the string box", name.Values)
	}
	if name.Parent != geo {
		t.Error("Expected the nested child's parent to be the enclosing structure")
	}

	objRef := geo.Children[1]
	if objRef.Type != "ObjectRef" {
		t.Errorf("Second child type = %q, want ObjectRef", objRef.Type)
	}
	// header properties attach to the enclosing open node, not to the node
	// the header creates
	if len(geo.Properties) != 1 || geo.Properties[0].Ref == nil {
		t.Fatalf("Expected the reference property on the enclosing structure, got %v", geo.Properties)
	}
	if geo.Properties[0].Ref.Names[0].ID != "box" {
		t.Errorf("Reference name = %q, want box", geo.Properties[0].Ref.Names[0].ID)
	}
	if len(objRef.Properties) != 0 {
		t.Errorf("Expected no properties on the header's own node, got %v", objRef.Properties)
	}
}

func TestParseHeaderPropertiesAttachToEnclosingNode(t *testing.T) {
	// A non-Metric header's properties land on the enclosing open node,
	// not on the node the header creates.
	p := parseString(t, `Outer { Inner (lod = 2) {} }`)

	outer := p.Root().Children[0]
	if len(outer.Properties) != 1 || outer.Properties[0].Key != "lod" {
		t.Fatalf("Expected the property on the enclosing structure, got %v", outer.Properties)
	}
	inner := outer.Children[0]
	if len(inner.Properties) != 0 {
		t.Errorf("Expected no properties on the inner structure, got %v", inner.Properties)
	}
}

func TestParseFlatDataArrayList(t *testing.T) {
	p := parseString(t, `Data { int32[3] {1, 2, 3} }`)

	data := p.Root().Children[0]
	if len(data.Arrays) != 1 {
		t.Fatalf("Expected 1 array element, got %d", len(data.Arrays))
	}
	values := data.Arrays[0].Values
	if len(values) != 3 {
		t.Fatalf("Expected 3 values, got %d", len(values))
	}
	for i, want := range []int64{1, 2, 3} {
		if values[i].Type != ddl.TypeInt32 || values[i].Int64 != want {
			t.Errorf("Value %d = %v %d, want int32 %d", i, values[i].Type, values[i].Int64, want)
		}
	}
}

func TestParseWrappedDataArrayList(t *testing.T) {
	p := parseString(t, `VertexArray { float[2] {{1.0, 2.0}, {3.0, 4.0}} }`)

	va := p.Root().Children[0]
	if len(va.Arrays) != 2 {
		t.Fatalf("Expected 2 array elements, got %d", len(va.Arrays))
	}
	if got := va.Arrays[0].Values[1].Float32; got != 2.0 {
		t.Errorf("First element second value = %v, want 2.0", got)
	}
	if got := va.Arrays[1].Values[0].Float32; got != 3.0 {
		t.Errorf("Second element first value = %v, want 3.0", got)
	}
}

func TestParseDataListLiteralKinds(t *testing.T) {
	p := parseString(t, `Flags { bool {true, false} }`)
	flags := p.Root().Children[0]
	if len(flags.Values) != 2 || !flags.Values[0].Bool || flags.Values[1].Bool {
		t.Errorf("Bool values = %v, want true then false", flags.Values)
	}

	p = parseString(t, `Color { int32 {0xFF, 0x10} }`)
	color := p.Root().Children[0]
	if len(color.Values) != 2 {
		t.Fatalf("Expected 2 hex values, got %d", len(color.Values))
	}
	if color.Values[0].Int64 != 255 || color.Values[1].Int64 != 16 {
		t.Errorf("Hex values = %d, %d, want 255, 16", color.Values[0].Int64, color.Values[1].Int64)
	}

	p = parseString(t, `Width { int8 {300} }`)
	width := p.Root().Children[0]
	if len(width.Values) != 1 || width.Values[0].Int64 != 44 {
		t.Errorf("Expected the declared width to truncate 300 to 44, got %v", width.Values)
	}
}

func TestParseEmptyStructure(t *testing.T) {
	p := parseString(t, `Empty {}`)
	node := p.Root().Children[0]
	if node.Type != "Empty" {
		t.Errorf("Type = %q, want Empty", node.Type)
	}
	if len(node.Values) != 0 || len(node.Arrays) != 0 || len(node.Children) != 0 {
		t.Error("Expected a completely empty structure")
	}
}

func TestParseCommentsStripped(t *testing.T) {
	input := `// header comment
Metric {float {1}} // trailing
// footer`
	p := parseString(t, input)

	if strings.Contains(string(p.Buffer()), "//") {
		t.Errorf("Normalized buffer still contains a comment: %q", p.Buffer())
	}
	if len(p.Root().Children) != 1 {
		t.Fatalf("Expected 1 structure, got %d", len(p.Root().Children))
	}
}

func TestParseMalformedInputTerminates(t *testing.T) {
	var messages []string
	p := NewFromBuffer([]byte(`ObjectRef (ref = {$a, $b}) {`), true)
	p.SetSink(sink.Func(func(severity sink.Severity, message string) {
		if severity == sink.SeverityError {
			messages = append(messages, message)
		}
	}))

	if err := p.Parse(); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(messages) == 0 {
		t.Error("Expected at least one diagnostic for malformed input")
	}
}

func TestParseZeroLengthArrayReported(t *testing.T) {
	var messages []string
	p := NewFromBuffer([]byte(`Data { int32[0] {1} }`), true)
	p.SetSink(sink.Func(func(severity sink.Severity, message string) {
		messages = append(messages, message)
	}))

	if err := p.Parse(); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	found := false
	for _, m := range messages {
		if strings.Contains(m, "0 for array is invalid") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a zero-length array diagnostic, got %v", messages)
	}
	if len(p.Root().Children[0].Arrays) != 0 {
		t.Error("Expected the payload to stay empty")
	}
}

func TestReparseReplacesContext(t *testing.T) {
	p := NewFromBuffer([]byte(`First {}`), true)
	p.SetSink(sink.Func(func(sink.Severity, string) {}))
	if err := p.Parse(); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	firstCtx := p.Context()

	p.SetBuffer([]byte(`Second {}`), true)
	if err := p.Parse(); err != nil {
		t.Fatalf("Second parse failed: %v", err)
	}
	if p.Context() == firstCtx {
		t.Error("Expected a fresh context per parse")
	}
	if got := p.Root().Children[0].Type; got != "Second" {
		t.Errorf("Top-level type = %q, want Second", got)
	}
}

func TestSetBufferOwnershipCopies(t *testing.T) {
	original := []byte("Metric {float {1}} // comment")
	backup := append([]byte(nil), original...)

	p := NewFromBuffer(original, true)
	p.SetSink(sink.Func(func(sink.Severity, string) {}))
	if err := p.Parse(); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if string(original) != string(backup) {
		t.Error("Expected the caller's buffer to stay untouched when owned")
	}
}

func TestClearReleasesSession(t *testing.T) {
	p := parseString(t, `Metric {float {1}}`)
	p.Clear()
	if p.Root() != nil || p.Context() != nil || p.BufferSize() != 0 {
		t.Error("Expected Clear to drop buffer and tree together")
	}
}
