package ext

import (
	"errors"
	"sync"
	"testing"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	registry := NewRegistry()
	if err := registry.Register(songDescriptor, func() Extension { return newSong() }); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if err := registry.Register(filmDescriptor, func() Extension { return newFilm() }); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	return registry
}

func TestRegistryMatch(t *testing.T) {
	registry := newTestRegistry(t)

	d, ok := registry.Match("urn:example:song")
	if !ok {
		t.Fatal("Expected match for registered namespace")
	}
	if d.Prefix != "song" {
		t.Errorf("Expected prefix 'song', got: %s", d.Prefix)
	}

	if _, ok := registry.Match("urn:example:unknown"); ok {
		t.Error("Expected no match for unregistered namespace")
	}
	if registry.Has("urn:example:unknown") {
		t.Error("Expected Has to be false for unregistered namespace")
	}
}

func TestRegistryNew(t *testing.T) {
	registry := newTestRegistry(t)

	instance, ok := registry.New("urn:example:film")
	if !ok {
		t.Fatal("Expected instance for registered namespace")
	}
	if _, isFilm := instance.(*filmExtension); !isFilm {
		t.Errorf("Expected *filmExtension, got: %T", instance)
	}

	second, _ := registry.New("urn:example:film")
	if instance == second {
		t.Error("Expected New to return fresh instances")
	}

	if _, ok := registry.New("urn:example:unknown"); ok {
		t.Error("Expected no instance for unregistered namespace")
	}
}

func TestRegistryDuplicateNamespaceKeepsFirst(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(songDescriptor, func() Extension { return newSong() }); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	conflicting := filmDescriptor
	conflicting.Namespace = songDescriptor.Namespace
	err := registry.Register(conflicting, func() Extension { return newFilm() })
	if !errors.Is(err, ErrDuplicateNamespace) {
		t.Fatalf("Expected ErrDuplicateNamespace, got: %v", err)
	}

	d, ok := registry.Match(songDescriptor.Namespace)
	if !ok || d.Name != "Song" {
		t.Errorf("Expected the first registration to be kept, got: %+v", d)
	}
}

func TestRegistryRejectsInvalidRegistrations(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(Descriptor{}, func() Extension { return newSong() }); err == nil {
		t.Error("Expected error for empty namespace, got nil")
	}
	if err := registry.Register(songDescriptor, nil); err == nil {
		t.Error("Expected error for nil factory, got nil")
	}
}

func TestRegistryDescriptorsOrder(t *testing.T) {
	registry := newTestRegistry(t)

	descriptors := registry.Descriptors()
	if len(descriptors) != 2 {
		t.Fatalf("Expected 2 descriptors, got %d", len(descriptors))
	}
	if descriptors[0].Name != "Song" || descriptors[1].Name != "Film" {
		t.Errorf("Expected registration order, got: %s, %s", descriptors[0].Name, descriptors[1].Name)
	}
}

func TestRegistryConcurrentReads(t *testing.T) {
	registry := newTestRegistry(t)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if _, ok := registry.Match("urn:example:song"); !ok {
					t.Error("Expected match during concurrent reads")
					return
				}
				if _, ok := registry.New("urn:example:film"); !ok {
					t.Error("Expected instance during concurrent reads")
					return
				}
				registry.Descriptors()
			}
		}()
	}
	wg.Wait()
}

func TestMatchByType(t *testing.T) {
	match := MatchByType[*songExtension]()

	if !match(&songExtension{}) {
		t.Error("Expected match for the target type")
	}
	if match(&filmExtension{}) {
		t.Error("Expected no match for a structurally similar type")
	}
}
