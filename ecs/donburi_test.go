package ecs

import (
	"testing"

	"github.com/phanxgames/grove"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []grove.SceneEvent
	SceneEventType.Subscribe(world, func(w donburi.World, e grove.SceneEvent) {
		received = append(received, e)
	})

	store.EmitEvent(grove.SceneEvent{Type: grove.EventObjectAttached, ObjectID: 42, OwnerID: 7})
	store.EmitEvent(grove.SceneEvent{Type: grove.EventGeometryDetached, GeometryID: 9, OwnerID: 42})

	// Events are queued; process them.
	SceneEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != grove.EventObjectAttached || e.ObjectID != 42 || e.OwnerID != 7 {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Type != grove.EventGeometryDetached || e.GeometryID != 9 {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiStore_SceneMutations(t *testing.T) {
	world := donburi.NewWorld()
	scene := grove.NewScene()
	scene.SetEntityStore(NewDonburiStore(world))

	var types []grove.EventType
	SceneEventType.Subscribe(world, func(w donburi.World, e grove.SceneEvent) {
		types = append(types, e.Type)
	})

	a := scene.NewObject("a")
	a.AddGeometry(grove.NewQuad("q", 1, 1))
	a.Dispose()
	events.ProcessAllEvents(world)

	want := []grove.EventType{
		grove.EventObjectAttached,
		grove.EventGeometryAttached,
		grove.EventObjectDisposed,
	}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	world := donburi.NewWorld()
	var store grove.EntityStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}
