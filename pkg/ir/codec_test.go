package ir_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"uilift/pkg/ir"
)

func sampleTemplate() *ir.Template {
	root := ir.NewNode(ir.KindLayout, "root")
	root.Style["width"] = "100%"
	hero := ir.NewNode(ir.KindLayout, "hero")
	hero.Style["background"] = "#1976D2"
	cta := ir.NewNode(ir.KindButton, "cta_button")
	cta.Properties["text"] = "Get Started"
	hero.AddChild(cta)
	root.AddChild(hero)
	root.AddChild(ir.NewNode(ir.KindImage, "logo"))

	contact := ir.NewNode(ir.KindLayout, "root")
	form := ir.NewNode(ir.KindTextField, "email_field")
	form.Properties["placeholder"] = "Email"
	contact.AddChild(form)

	return &ir.Template{
		Name:        "Sample App",
		Description: "UI extracted from sample",
		Style:       ir.DefaultStyle(),
		Screens: map[string]*ir.Node{
			"home":    root,
			"contact": contact,
		},
		Navigation: map[string][]string{
			"home":    {"contact"},
			"contact": {"home"},
		},
		Assets: map[string]string{
			"logo.png": "/tmp/assets/logo.png",
		},
		Metadata: ir.Metadata{
			Created:     "2026-01-12T10:30:00Z",
			Source:      "sample.apk",
			Platform:    "android",
			Tags:        []string{"extracted", "android"},
			PackageName: "com.example.sample",
		},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	original := sampleTemplate()

	data, err := ir.Encode(original)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := ir.Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if diff := cmp.Diff(original, decoded, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
	if got, want := decoded.NodeCount(), original.NodeCount(); got != want {
		t.Fatalf("node count mismatch: want %d, got %d", want, got)
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	template := sampleTemplate()

	first, err := ir.Encode(template)
	if err != nil {
		t.Fatalf("first encode: %v", err)
	}
	second, err := ir.Encode(template)
	if err != nil {
		t.Fatalf("second encode: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("expected byte-identical documents")
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{name: "not json", data: "not a document"},
		{name: "json array", data: `[1, 2, 3]`},
		{name: "missing name", data: `{"style": {}, "screens": {}}`},
		{name: "missing style", data: `{"name": "x", "screens": {}}`},
		{name: "missing screens", data: `{"name": "x", "style": {}}`},
		{name: "blank name", data: `{"name": "  ", "style": {}, "screens": {}}`},
		{name: "bad node shape", data: `{"name": "x", "style": {}, "screens": {"home": {"children": "nope"}}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ir.Decode([]byte(tc.data))
			if err == nil {
				t.Fatalf("expected decode failure")
			}
			var malformed *ir.MalformedIRError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedIRError, got %T: %v", err, err)
			}
		})
	}
}

func TestDecodeUnknownKindFallsBack(t *testing.T) {
	data := []byte(`{
  "name": "x",
  "style": {},
  "screens": {"home": {"type": "holographic_panel", "id": "root"}}
}`)

	template, err := ir.Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := template.Screens["home"].Kind; got != ir.KindUnknown {
		t.Fatalf("expected unknown kind fallback, got %q", got)
	}
}

func TestFontSpecWireForms(t *testing.T) {
	bare, err := json.Marshal(ir.FontSpec{Family: "Roboto, sans-serif"})
	if err != nil {
		t.Fatalf("marshal bare: %v", err)
	}
	if string(bare) != `"Roboto, sans-serif"` {
		t.Fatalf("bare family should encode as a string, got %s", bare)
	}

	sized, err := json.Marshal(ir.FontSpec{Size: "32px", Weight: "bold"})
	if err != nil {
		t.Fatalf("marshal sized: %v", err)
	}
	if string(sized) != `{"size":"32px","weight":"bold"}` {
		t.Fatalf("unexpected sized encoding: %s", sized)
	}

	var fromString ir.FontSpec
	if err := json.Unmarshal([]byte(`"Inter"`), &fromString); err != nil {
		t.Fatalf("unmarshal string form: %v", err)
	}
	if fromString.Family != "Inter" {
		t.Fatalf("expected family Inter, got %+v", fromString)
	}

	var fromObject ir.FontSpec
	if err := json.Unmarshal([]byte(`{"size":"14px","weight":"medium","transform":"uppercase"}`), &fromObject); err != nil {
		t.Fatalf("unmarshal object form: %v", err)
	}
	want := ir.FontSpec{Size: "14px", Weight: "medium", Transform: "uppercase"}
	if diff := cmp.Diff(want, fromObject); diff != "" {
		t.Fatalf("object form mismatch (-want +got):\n%s", diff)
	}
}
