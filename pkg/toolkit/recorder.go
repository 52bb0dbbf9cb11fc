// Package toolkit 提供 rocket 文档工具包的进程内实现
//
// Recorder 不做任何渲染，只记录加载过的文档、光标、HUD 单元和文档动作，
// 并维护文档的可见/焦点状态。桌面调试程序用它驱动调试叠加层，
// 测试用它检查 UI 层发出的调用。
package toolkit

import (
	"log"
	"sort"
)

// Action 一次文档动作
type Action struct {
	ID   string
	Verb string
}

// Recorder 记录式工具包
type Recorder struct {
	initialized bool
	cursor      string
	documents   []string
	units       []string
	huds        [][]string
	actions     []Action
	events      []string

	visible map[string]bool
	focused string

	elementTag string
	attributes map[string]string
}

// NewRecorder 创建记录式工具包
func NewRecorder() *Recorder {
	return &Recorder{
		visible:    make(map[string]bool),
		attributes: make(map[string]string),
	}
}

// Init 重置全部状态
func (r *Recorder) Init() {
	*r = Recorder{
		initialized: true,
		visible:     make(map[string]bool),
		attributes:  make(map[string]string),
		events:      r.events,
	}
	log.Printf("[Toolkit] Initialized")
}

// LoadCursor 记录光标文档
func (r *Recorder) LoadCursor(path string) {
	r.cursor = path
}

// LoadDocument 记录文档并返回句柄（从 1 开始）
func (r *Recorder) LoadDocument(path string) int {
	r.documents = append(r.documents, path)
	return len(r.documents)
}

// LoadUnit 记录 HUD 单元
func (r *Recorder) LoadUnit(name string) {
	r.units = append(r.units, name)
}

// InitializeHuds 分配 count 个空 HUD 桶，原有内容全部丢弃
func (r *Recorder) InitializeHuds(count int) {
	r.huds = make([][]string, count)
}

// ClearHud 清空一个 HUD 桶，越界时忽略
func (r *Recorder) ClearHud(bucket int) {
	if bucket < 0 || bucket >= len(r.huds) {
		log.Printf("[Toolkit] Warning: ClearHud on invalid bucket %d", bucket)
		return
	}
	r.huds[bucket] = nil
}

// AddUnitToHud 向 HUD 桶追加单元，越界时忽略
func (r *Recorder) AddUnitToHud(bucket int, name string) {
	if bucket < 0 || bucket >= len(r.huds) {
		log.Printf("[Toolkit] Warning: AddUnitToHud on invalid bucket %d", bucket)
		return
	}
	r.huds[bucket] = append(r.huds[bucket], name)
}

// DocumentAction 执行文档动作并更新可见/焦点状态
//
//   - open / show: 文档可见并获得焦点
//   - close / hide: 文档不可见
//   - blurall: 所有文档失去焦点
func (r *Recorder) DocumentAction(id, verb string) {
	r.actions = append(r.actions, Action{ID: id, Verb: verb})

	switch verb {
	case "open", "show":
		r.visible[id] = true
		r.focused = id
	case "close", "hide":
		delete(r.visible, id)
		if r.focused == id {
			r.focused = ""
		}
	case "blurall":
		r.focused = ""
	default:
		log.Printf("[Toolkit] Warning: unknown document action %q on %q", verb, id)
	}
}

// SetElement 设置当前事件元素的标签和属性（调试和测试用）
func (r *Recorder) SetElement(tag string, attributes map[string]string) {
	r.elementTag = tag
	r.attributes = make(map[string]string, len(attributes))
	for k, v := range attributes {
		r.attributes[k] = v
	}
}

// GetElementTag 当前事件元素的标签
func (r *Recorder) GetElementTag() string {
	return r.elementTag
}

// GetAttribute 当前事件元素的属性
func (r *Recorder) GetAttribute(name string) string {
	return r.attributes[name]
}

// QuakeToRML 颜色码转换
func (r *Recorder) QuakeToRML(in string) string {
	return QuakeToRML(in)
}

// PushEvent 把一条 UI 命令放入事件队列
func (r *Recorder) PushEvent(cmd string) {
	r.events = append(r.events, cmd)
}

// GetEvent 取出队首事件
func (r *Recorder) GetEvent() (string, bool) {
	if len(r.events) == 0 {
		return "", false
	}
	ev := r.events[0]
	r.events = r.events[1:]
	return ev, true
}

// Initialized 是否已调用 Init
func (r *Recorder) Initialized() bool {
	return r.initialized
}

// Cursor 已加载的光标文档
func (r *Recorder) Cursor() string {
	return r.cursor
}

// Documents 按加载顺序返回文档路径
func (r *Recorder) Documents() []string {
	return append([]string(nil), r.documents...)
}

// Units 按加载顺序返回 HUD 单元
func (r *Recorder) Units() []string {
	return append([]string(nil), r.units...)
}

// Hud 返回一个 HUD 桶的内容
func (r *Recorder) Hud(bucket int) []string {
	if bucket < 0 || bucket >= len(r.huds) {
		return nil
	}
	return append([]string(nil), r.huds[bucket]...)
}

// HudCount HUD 桶数量
func (r *Recorder) HudCount() int {
	return len(r.huds)
}

// Actions 按顺序返回全部文档动作
func (r *Recorder) Actions() []Action {
	return append([]Action(nil), r.actions...)
}

// Visible 文档是否可见
func (r *Recorder) Visible(id string) bool {
	return r.visible[id]
}

// VisibleDocuments 返回可见文档 ID（排序后）
func (r *Recorder) VisibleDocuments() []string {
	ids := make([]string, 0, len(r.visible))
	for id := range r.visible {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Focused 当前拥有焦点的文档，没有时为空
func (r *Recorder) Focused() string {
	return r.focused
}
