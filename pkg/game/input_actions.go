package game

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
)

// ListenerID 动作回调的句柄，用于移除回调
type ListenerID int

// ActionContext 动作回调参数
type ActionContext struct {
	Action string
	Value  mgl64.Vec2 // 按钮类动作为 (1, 0)
}

// ActionCallback 动作回调
type ActionCallback func(ctx ActionContext)

type actionListener struct {
	id ListenerID
	cb ActionCallback
}

// Action 逻辑输入动作（Move / Zoom / Grab / Continue）
//
// 状态：
//   - 未启用时 Perform/Cancel 被忽略
//   - Perform 后进入"进行中"，Cancel 或 Disable 时触发 canceled 回调并清零
type Action struct {
	name       string
	enabled    bool
	inProgress bool
	value      mgl64.Vec2

	performed []actionListener
	canceled  []actionListener
	owner     *ActionMap
}

// Name 动作名称
func (a *Action) Name() string { return a.name }

// Enabled 动作是否启用
func (a *Action) Enabled() bool { return a.enabled }

// Value 当前值（进行中时有效，否则为零）
func (a *Action) Value() mgl64.Vec2 { return a.value }

// Enable 启用动作
func (a *Action) Enable() {
	a.enabled = true
}

// Disable 禁用动作；进行中的动作会先触发 canceled
func (a *Action) Disable() {
	if !a.enabled {
		return
	}
	a.Cancel()
	a.enabled = false
}

// OnPerformed 注册 performed 回调
func (a *Action) OnPerformed(cb ActionCallback) ListenerID {
	id := a.owner.nextListenerID()
	a.performed = append(a.performed, actionListener{id: id, cb: cb})
	return id
}

// OnCanceled 注册 canceled 回调
func (a *Action) OnCanceled(cb ActionCallback) ListenerID {
	id := a.owner.nextListenerID()
	a.canceled = append(a.canceled, actionListener{id: id, cb: cb})
	return id
}

// RemoveListener 移除回调（performed 或 canceled），未找到时忽略
func (a *Action) RemoveListener(id ListenerID) {
	a.performed = removeListener(a.performed, id)
	a.canceled = removeListener(a.canceled, id)
}

// ListenerCount 当前注册的回调数量
func (a *Action) ListenerCount() int {
	return len(a.performed) + len(a.canceled)
}

// Perform 触发动作（由输入系统调用）
func (a *Action) Perform(value mgl64.Vec2) {
	if !a.enabled {
		return
	}
	a.inProgress = true
	a.value = value
	a.dispatch(a.performed, value)
}

// Cancel 结束进行中的动作（如方向键全部松开）
func (a *Action) Cancel() {
	if !a.enabled || !a.inProgress {
		return
	}
	a.inProgress = false
	a.value = mgl64.Vec2{}
	a.dispatch(a.canceled, mgl64.Vec2{})
}

func (a *Action) dispatch(listeners []actionListener, value mgl64.Vec2) {
	// 回调中可能移除自身，先复制
	snapshot := append([]actionListener(nil), listeners...)
	ctx := ActionContext{Action: a.name, Value: value}
	for _, l := range snapshot {
		l.cb(ctx)
	}
}

func removeListener(listeners []actionListener, id ListenerID) []actionListener {
	for i, l := range listeners {
		if l.id == id {
			return append(listeners[:i], listeners[i+1:]...)
		}
	}
	return listeners
}

// ActionMap 输入动作表
// 所有动作只在游戏主循环中访问，不做并发保护
type ActionMap struct {
	actions    map[string]*Action
	order      []string
	listenerID ListenerID
}

// NewActionMap 创建动作表，动作默认未启用
func NewActionMap(names ...string) *ActionMap {
	m := &ActionMap{actions: make(map[string]*Action, len(names))}
	for _, name := range names {
		m.add(name)
	}
	return m
}

func (m *ActionMap) add(name string) *Action {
	if a, ok := m.actions[name]; ok {
		return a
	}
	a := &Action{name: name, owner: m}
	m.actions[name] = a
	m.order = append(m.order, name)
	return a
}

func (m *ActionMap) nextListenerID() ListenerID {
	m.listenerID++
	return m.listenerID
}

// FindAction 按名称查找动作，不存在时返回 nil
func (m *ActionMap) FindAction(name string) *Action {
	if m == nil {
		return nil
	}
	return m.actions[name]
}

// DisableAll 禁用所有已启用的动作（结算时冻结输入）
func (m *ActionMap) DisableAll() {
	count := 0
	for _, name := range m.order {
		a := m.actions[name]
		if a.enabled {
			a.Disable()
			count++
		}
	}
	log.Printf("[ActionMap] 已禁用 %d 个动作", count)
}

// EnabledActions 返回当前启用的动作名称（按注册顺序）
func (m *ActionMap) EnabledActions() []string {
	names := make([]string, 0, len(m.order))
	for _, name := range m.order {
		if m.actions[name].enabled {
			names = append(names, name)
		}
	}
	return names
}
