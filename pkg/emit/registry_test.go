package emit_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"uilift/pkg/emit"
	"uilift/pkg/ir"
)

type namedEmitter struct {
	name string
}

func (e *namedEmitter) Name() string { return e.name }

func (e *namedEmitter) Plan(*ir.Template) (*emit.Plan, error) {
	return emit.NewPlan(e.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := emit.NewRegistry()
	if err := registry.Register(&namedEmitter{name: "static-web"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	emitter, err := registry.Get("static-web")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if emitter.Name() != "static-web" {
		t.Fatalf("unexpected emitter name: %q", emitter.Name())
	}
	if !registry.Has("static-web") {
		t.Fatal("Has should report registered target")
	}
	if registry.Has("mobile-native") {
		t.Fatal("Has should not report unregistered target")
	}
}

func TestRegistryRejectsDuplicatesAndInvalid(t *testing.T) {
	registry := emit.NewRegistry()
	if err := registry.Register(&namedEmitter{name: "static-web"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := registry.Register(&namedEmitter{name: "static-web"}); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatal("expected nil emitter to fail")
	}
	if err := registry.Register(&namedEmitter{name: ""}); err == nil {
		t.Fatal("expected empty name to fail")
	}
}

func TestRegistryGetMissReportsKnownTargets(t *testing.T) {
	registry := emit.NewRegistry()
	registry.MustRegister(&namedEmitter{name: "static-web"})
	registry.MustRegister(&namedEmitter{name: "mobile-native"})

	_, err := registry.Get("terminal-ui")
	if err == nil {
		t.Fatal("expected error for unknown target")
	}
	var unsupported *emit.UnsupportedTargetError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedTargetError, got %T: %v", err, err)
	}
	if unsupported.Target != "terminal-ui" {
		t.Fatalf("unexpected target: %q", unsupported.Target)
	}
	if diff := cmp.Diff([]string{"mobile-native", "static-web"}, unsupported.Known); diff != "" {
		t.Fatalf("known targets mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryListSorted(t *testing.T) {
	registry := emit.NewRegistry()
	for _, name := range []string{"static-web", "component-web", "mobile-native"} {
		registry.MustRegister(&namedEmitter{name: name})
	}
	want := []string{"component-web", "mobile-native", "static-web"}
	if diff := cmp.Diff(want, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryMustGetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown target")
		}
	}()
	emit.NewRegistry().MustGet("missing")
}
