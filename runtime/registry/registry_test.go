package registry

import (
	"context"
	"testing"
)

type widget struct{ label string }

func TestRegistryBuildRoundTrip(t *testing.T) {
	r := New[*widget, int]()
	MustRegister(r, Key{Kind: "widget", Name: "basic"}, BuilderFunc[*widget, int](
		func(ctx context.Context, name string, spec int) (*widget, error) {
			return &widget{label: name}, nil
		}))

	w, err := r.Build(context.Background(), Key{Kind: "widget", Name: "basic"}, "w1", 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if w.label != "w1" {
		t.Fatalf("label = %q, want w1", w.label)
	}
}

func TestRegistryUnknownKey(t *testing.T) {
	r := New[*widget, int]()
	if _, err := r.Build(context.Background(), Key{Kind: "widget", Name: "missing"}, "x", 0); err == nil {
		t.Fatal("expected error for unregistered key")
	}
}

func TestRegistryDuplicateRegistration(t *testing.T) {
	r := New[*widget, int]()
	b := BuilderFunc[*widget, int](func(ctx context.Context, name string, spec int) (*widget, error) {
		return &widget{}, nil
	})
	if err := r.Register(Key{Kind: "widget", Name: "a"}, b); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if err := r.Register(Key{Kind: "widget", Name: "a"}, b); err == nil {
		t.Fatal("expected error on duplicate registration")
	}
}

func TestRegistryCaseFoldLower(t *testing.T) {
	r := New[*widget, int](WithCaseFoldLower())
	MustRegister(r, Key{Kind: "Widget", Name: "Basic"}, BuilderFunc[*widget, int](
		func(ctx context.Context, name string, spec int) (*widget, error) {
			return &widget{label: name}, nil
		}))
	if _, err := r.Build(context.Background(), Key{Kind: "widget", Name: "basic"}, "x", 0); err != nil {
		t.Fatalf("Build with folded key: %v", err)
	}
}

func TestRegistrySealBlocksRegistration(t *testing.T) {
	r := New[*widget, int]()
	r.Seal()
	b := BuilderFunc[*widget, int](func(ctx context.Context, name string, spec int) (*widget, error) {
		return &widget{}, nil
	})
	if err := r.Register(Key{Kind: "widget", Name: "a"}, b); err == nil {
		t.Fatal("expected error registering into sealed registry")
	}
}
