package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testBodyComponent struct {
	X, Z float64
}

type testTagComponent struct {
	Tag string
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// ID从1开始，0 保留给 NoEntity
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id1 == NoEntity || id2 == NoEntity {
		t.Error("Created entity must never equal NoEntity")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testBodyComponent{X: 1.5, Z: -2})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testBodyComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	body := comp.(*testBodyComponent)
	if body.X != 1.5 || body.Z != -2 {
		t.Errorf("Component data mismatch, expected (1.5, -2), got (%f, %f)", body.X, body.Z)
	}
}

func TestGenericGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testTagComponent{Tag: "Ball"})

	tag, ok := GetComponent[*testTagComponent](em, id)
	if !ok {
		t.Fatal("Expected generic lookup to find the component")
	}
	if tag.Tag != "Ball" {
		t.Errorf("Expected tag Ball, got %q", tag.Tag)
	}

	if _, ok := GetComponent[*testBodyComponent](em, id); ok {
		t.Error("Expected missing component lookup to fail")
	}
	if !HasComponent[*testTagComponent](em, id) {
		t.Error("Expected HasComponent to report the tag component")
	}

	// 不存在的实体
	if _, ok := GetComponent[*testTagComponent](em, 999); ok {
		t.Error("Expected lookup on unknown entity to fail")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testBodyComponent{})

	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.Exists(id) {
		t.Error("Entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.HasComponent(id, reflect.TypeOf(&testBodyComponent{})) {
		t.Error("Components should be removed after cleanup")
	}
}

func TestGetEntitiesWithIsSorted(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0, 20)
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testBodyComponent{})
		if i%2 == 0 {
			em.AddComponent(id, &testTagComponent{})
		}
		ids = append(ids, id)
	}

	all := em.GetEntitiesWith(TypeOf[*testBodyComponent]())
	if len(all) != 20 {
		t.Fatalf("Expected 20 entities, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1] >= all[i] {
			t.Fatalf("Expected ascending IDs, got %v", all)
		}
	}

	tagged := em.GetEntitiesWith(TypeOf[*testBodyComponent](), TypeOf[*testTagComponent]())
	if len(tagged) != 10 {
		t.Errorf("Expected 10 entities with both components, got %d", len(tagged))
	}
	if len(tagged) > 0 && tagged[0] != ids[0] {
		t.Errorf("Expected first tagged entity %d, got %d", ids[0], tagged[0])
	}
}

func TestRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testBodyComponent{})
	em.AddComponent(id, &testTagComponent{})

	em.RemoveComponent(id, TypeOf[*testTagComponent]())

	if HasComponent[*testTagComponent](em, id) {
		t.Error("Tag component should be removed")
	}
	if !HasComponent[*testBodyComponent](em, id) {
		t.Error("Body component should remain")
	}
	if em.EntityCount() != 1 {
		t.Errorf("Expected 1 entity, got %d", em.EntityCount())
	}
}

func TestGenericQueries(t *testing.T) {
	em := NewEntityManager()
	a := em.CreateEntity()
	b := em.CreateEntity()
	AddComponent(em, a, &testBodyComponent{})
	AddComponent(em, a, &testTagComponent{Tag: "Zone"})
	AddComponent(em, b, &testBodyComponent{})

	if got := GetEntitiesWith1[*testBodyComponent](em); len(got) != 2 {
		t.Errorf("Expected 2 entities with body, got %d", len(got))
	}
	got := GetEntitiesWith2[*testBodyComponent, *testTagComponent](em)
	if len(got) != 1 || got[0] != a {
		t.Errorf("Expected only entity %d, got %v", a, got)
	}
}
