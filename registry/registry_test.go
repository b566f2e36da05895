package registry

import (
	"testing"

	"github.com/TheLukeGuy/minestodon/text"
)

func TestRegisterAssignsDenseIDs(t *testing.T) {
	var r Registry[int]
	r.Init()
	r.Register(text.MustIdentifier("minecraft:a"), 1)
	r.Register(text.MustIdentifier("minecraft:b"), 2)
	r.Register(text.MustIdentifier("minecraft:c"), 3)

	entries := r.Entries()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	for i, e := range entries {
		if e.ID != int32(i) {
			t.Fatalf("entry %d has id %d, want %d", i, e.ID, i)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on duplicate registration")
		}
	}()
	var r Registry[int]
	r.Init()
	r.Register(text.MustIdentifier("minecraft:a"), 1)
	r.Register(text.MustIdentifier("minecraft:a"), 2)
}

func TestInitTwicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on double Init")
		}
	}()
	var r Registry[int]
	r.Init()
	r.Init()
}

func TestRegisterBeforeInitPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on Register before Init")
		}
	}()
	var r Registry[int]
	r.Register(text.MustIdentifier("minecraft:a"), 1)
}

func TestInitAllPopulatesWorldRegistries(t *testing.T) {
	InitAll()

	if Biomes.Len() != 1 {
		t.Fatalf("got %d biomes, want 1", Biomes.Len())
	}
	if DimensionTypes.Len() != 1 {
		t.Fatalf("got %d dimension types, want 1", DimensionTypes.Len())
	}
	if ChatTypes.Len() != 0 {
		t.Fatalf("got %d chat types, want 0", ChatTypes.Len())
	}
}
