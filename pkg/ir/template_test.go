package ir_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"uilift/pkg/ir"
)

func TestValidateRejectsDanglingNavigation(t *testing.T) {
	template := sampleTemplate()
	template.Navigation["home"] = append(template.Navigation["home"], "checkout")

	err := template.Validate()
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	var verr *ir.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if verr.Field != "navigation.home" {
		t.Fatalf("unexpected field: %s", verr.Field)
	}
}

func TestValidateAcceptsLinkedScreens(t *testing.T) {
	if err := sampleTemplate().Validate(); err != nil {
		t.Fatalf("expected valid template, got %v", err)
	}
}

func TestScreenNamesSorted(t *testing.T) {
	template := sampleTemplate()
	want := []string{"contact", "home"}
	if diff := cmp.Diff(want, template.ScreenNames()); diff != "" {
		t.Fatalf("screen names mismatch (-want +got):\n%s", diff)
	}
}

func TestNodeCountCoversAllScreens(t *testing.T) {
	template := sampleTemplate()
	// home: root + hero + cta + logo; contact: root + field.
	if got := template.NodeCount(); got != 6 {
		t.Fatalf("expected 6 nodes, got %d", got)
	}
}

func TestDefaultStyleCoversRequiredColors(t *testing.T) {
	style := ir.DefaultStyle()
	for _, key := range ir.RequiredColorKeys() {
		if style.Colors[key] == "" {
			t.Fatalf("default style is missing color %q", key)
		}
	}
}

func TestWalkVisitsStoredOrder(t *testing.T) {
	root := ir.NewNode(ir.KindLayout, "root")
	first := ir.NewNode(ir.KindButton, "first")
	second := ir.NewNode(ir.KindLabel, "second")
	nested := ir.NewNode(ir.KindImage, "nested")
	first.AddChild(nested)
	root.AddChild(first)
	root.AddChild(second)

	var order []string
	root.Walk(func(n *ir.Node) { order = append(order, n.ID) })

	want := []string{"root", "first", "nested", "second"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Fatalf("walk order mismatch (-want +got):\n%s", diff)
	}
}
