package systems

import (
	"testing"

	"github.com/gonewx/forklift/pkg/components"
	"github.com/gonewx/forklift/pkg/ecs"
)

func TestLifetimeUpdate(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: 1.0})

	system.Update(0.25)

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if lifetime.CurrentLifetime != 0.25 {
		t.Errorf("Expected CurrentLifetime=0.25, got %f", lifetime.CurrentLifetime)
	}
	if lifetime.Progress() != 0.25 {
		t.Errorf("Expected progress 0.25, got %f", lifetime.Progress())
	}
	if lifetime.IsExpired {
		t.Error("Entity should not be expired yet")
	}
}

func TestLifetimeExpiration(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: 0.5})

	system.Update(0.75)

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !lifetime.IsExpired {
		t.Error("Entity should be expired")
	}
	if lifetime.Progress() != 1 {
		t.Errorf("Expected progress clamped to 1, got %f", lifetime.Progress())
	}

	// 过期后再次更新不应重复累计
	system.Update(0.75)
	if lifetime.CurrentLifetime != 0.75 {
		t.Errorf("Expected lifetime frozen at 0.75, got %f", lifetime.CurrentLifetime)
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Expired entity should be removed after cleanup")
	}
}

func TestLifetimeIgnoresOtherEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.TagComponent{Tag: components.TagBall})

	system.Update(10)
	em.RemoveMarkedEntities()

	if !em.Exists(id) {
		t.Error("Entity without LifetimeComponent should survive")
	}
}
