package ecs

import "testing"

// 测试组件类型定义
type testWindowComponent struct {
	Title string
}

type testMarkerComponent struct{}

type testHandle interface {
	Name() string
}

type namedHandle string

func (h namedHandle) Name() string { return string(h) }

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
	if em.EntityCount() != 2 {
		t.Errorf("EntityCount: got %d, want 2", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if !AddComponent(em, id, &testWindowComponent{Title: "main"}) {
		t.Fatal("AddComponent should succeed on a live entity")
	}

	win, ok := GetComponent[*testWindowComponent](em, id)
	if !ok {
		t.Fatal("Component should be found")
	}
	if win.Title != "main" {
		t.Errorf("Title: got %q, want %q", win.Title, "main")
	}

	// 组件以指针存储，修改对后续查询可见
	win.Title = "renamed"
	again, _ := GetComponent[*testWindowComponent](em, id)
	if again.Title != "renamed" {
		t.Errorf("Title after mutation: got %q, want %q", again.Title, "renamed")
	}
}

func TestAddComponentToMissingEntity(t *testing.T) {
	em := NewEntityManager()

	if AddComponent(em, EntityID(42), &testWindowComponent{}) {
		t.Error("AddComponent should fail for an entity that was never created")
	}
	if HasComponent[*testWindowComponent](em, EntityID(42)) {
		t.Error("Missing entity should not report components")
	}
}

func TestInterfaceKeyedComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 以接口类型为键存储，查询时不依赖具体实现类型
	AddComponent[testHandle](em, id, namedHandle("primary"))

	h, ok := GetComponent[testHandle](em, id)
	if !ok {
		t.Fatal("interface-keyed component should be found")
	}
	if h.Name() != "primary" {
		t.Errorf("Name: got %q, want %q", h.Name(), "primary")
	}

	if HasComponent[namedHandle](em, id) {
		t.Error("concrete type key should not match an interface-keyed component")
	}
}

func TestHasAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	if HasComponent[*testMarkerComponent](em, id) {
		t.Error("Should not have component before adding")
	}

	AddComponent(em, id, &testMarkerComponent{})
	if !HasComponent[*testMarkerComponent](em, id) {
		t.Error("Should have component after adding")
	}

	RemoveComponent[*testMarkerComponent](em, id)
	if HasComponent[*testMarkerComponent](em, id) {
		t.Error("Should not have component after removal")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testWindowComponent{})

	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !HasComponent[*testWindowComponent](em, id) {
		t.Error("Entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if HasComponent[*testWindowComponent](em, id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.EntityCount() != 0 {
		t.Errorf("EntityCount: got %d, want 0", em.EntityCount())
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	AddComponent(em, id1, &testWindowComponent{})
	AddComponent(em, id1, &testMarkerComponent{})

	id2 := em.CreateEntity()
	AddComponent(em, id2, &testWindowComponent{})

	id3 := em.CreateEntity()
	AddComponent(em, id3, &testMarkerComponent{})

	both := GetEntitiesWith2[*testWindowComponent, *testMarkerComponent](em)
	if len(both) != 1 || both[0] != id1 {
		t.Errorf("Expected only id1 with both components, got %v", both)
	}

	windows := GetEntitiesWith1[*testWindowComponent](em)
	if len(windows) != 2 {
		t.Fatalf("Expected 2 entities with window component, got %d", len(windows))
	}

	// 查询结果按ID升序
	if windows[0] != id1 || windows[1] != id2 {
		t.Errorf("Expected [%d %d], got %v", id1, id2, windows)
	}
}
