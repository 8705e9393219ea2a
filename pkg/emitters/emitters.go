// Package emitters wires every built-in back-end into a ready registry.
package emitters

import (
	"uilift/pkg/emit"
	"uilift/pkg/emitters/android"
	"uilift/pkg/emitters/flutter"
	"uilift/pkg/emitters/react"
	"uilift/pkg/emitters/web"
	"uilift/pkg/emitters/wpf"
)

// NewRegistry returns a registry holding all built-in target emitters.
func NewRegistry() *emit.Registry {
	registry := emit.NewRegistry()
	registry.MustRegister(android.New())
	registry.MustRegister(flutter.New())
	registry.MustRegister(react.New())
	registry.MustRegister(web.New())
	registry.MustRegister(wpf.New())
	return registry
}

// Targets returns the ids of all built-in targets, sorted.
func Targets() []string {
	return NewRegistry().List()
}
