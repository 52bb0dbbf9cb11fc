package game

import (
	"fmt"
	"log"
	"sort"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// CvarFlags 控制台变量标志
type CvarFlags int

const (
	// CvarArchive 值会被持久化，下次启动时恢复
	CvarArchive CvarFlags = 1 << iota
	// CvarReadOnly 只能在注册时设置
	CvarReadOnly
)

// CvarDef 控制台变量定义（注册表中的一行）
type CvarDef struct {
	Name    string
	Default string
	Flags   CvarFlags
}

// Cvar 已注册的控制台变量
type Cvar struct {
	Name    string
	Default string
	Flags   CvarFlags
	value   string
}

// String 返回当前值
func (c *Cvar) String() string {
	return c.value
}

// archivedCvars 持久化格式
type archivedCvars struct {
	Cvars map[string]string `yaml:"cvars"`
}

// CvarManager 控制台变量管理器
// 负责变量注册、读写，以及带 CvarArchive 标志变量的持久化
type CvarManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	cvars        map[string]*Cvar
	archived     map[string]string // 从存储加载的值，注册时用来覆盖默认值
}

// 存储路径常量
const (
	cvarsObject   = "cvars"
	cvarsProperty = "archive"
)

// NewCvarManager 创建控制台变量管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存）
//
// 返回：
//   - *CvarManager: 管理器实例
//   - error: 保留给调用方判断，加载失败只记录警告并使用默认值
func NewCvarManager(gdataManager *gdata.Manager) (*CvarManager, error) {
	cm := &CvarManager{
		gdataManager: gdataManager,
		cvars:        make(map[string]*Cvar),
		archived:     make(map[string]string),
	}

	if err := cm.Load(); err != nil {
		log.Printf("[CvarManager] Warning: Failed to load archived cvars: %v (using defaults)", err)
	}

	return cm, nil
}

// Load 从 gdata 加载已持久化的变量值
// 已注册的 archive 变量会立即更新为加载到的值
func (cm *CvarManager) Load() error {
	cm.archived = make(map[string]string)

	if cm.gdataManager == nil {
		return nil
	}
	if !cm.gdataManager.ObjectPropExists(cvarsObject, cvarsProperty) {
		return nil
	}

	data, err := cm.gdataManager.LoadObjectProp(cvarsObject, cvarsProperty)
	if err != nil {
		return fmt.Errorf("failed to load cvars: %w", err)
	}

	var stored archivedCvars
	if err := yaml.Unmarshal(data, &stored); err != nil {
		return fmt.Errorf("failed to unmarshal cvars: %w", err)
	}
	for name, value := range stored.Cvars {
		cm.archived[name] = value
	}

	for name, cv := range cm.cvars {
		if value, ok := cm.archived[name]; ok && cv.Flags&CvarArchive != 0 {
			cv.value = value
		}
	}

	log.Printf("[CvarManager] Loaded %d archived cvars", len(cm.archived))
	return nil
}

// Save 把所有 CvarArchive 变量写入 gdata
// gdataManager 为 nil 时直接返回 nil
func (cm *CvarManager) Save() error {
	if cm.gdataManager == nil {
		return nil
	}

	stored := archivedCvars{Cvars: make(map[string]string)}
	for name, value := range cm.archived {
		stored.Cvars[name] = value
	}
	for name, cv := range cm.cvars {
		if cv.Flags&CvarArchive != 0 {
			stored.Cvars[name] = cv.value
		}
	}

	data, err := yaml.Marshal(&stored)
	if err != nil {
		return fmt.Errorf("failed to marshal cvars: %w", err)
	}
	if err := cm.gdataManager.SaveObjectProp(cvarsObject, cvarsProperty, data); err != nil {
		return fmt.Errorf("failed to save cvars: %w", err)
	}

	log.Printf("[CvarManager] Saved %d archived cvars", len(stored.Cvars))
	return nil
}

// Register 注册一个变量
//
// 重复注册同名变量时保留当前值并合并标志。带 CvarArchive 标志且存储中
// 有值的变量使用存储值，否则使用默认值。
func (cm *CvarManager) Register(def CvarDef) *Cvar {
	if cv, ok := cm.cvars[def.Name]; ok {
		cv.Flags |= def.Flags
		if cv.Default == "" {
			cv.Default = def.Default
		}
		return cv
	}

	cv := &Cvar{
		Name:    def.Name,
		Default: def.Default,
		Flags:   def.Flags,
		value:   def.Default,
	}
	if value, ok := cm.archived[def.Name]; ok && def.Flags&CvarArchive != 0 {
		cv.value = value
	}
	cm.cvars[def.Name] = cv
	return cv
}

// RegisterTable 按顺序注册一组变量
func (cm *CvarManager) RegisterTable(table []CvarDef) []*Cvar {
	cvars := make([]*Cvar, 0, len(table))
	for _, def := range table {
		cvars = append(cvars, cm.Register(def))
	}
	return cvars
}

// Find 查找变量，不存在返回 nil
func (cm *CvarManager) Find(name string) *Cvar {
	return cm.cvars[name]
}

// VariableString 返回变量值，不存在返回空字符串
func (cm *CvarManager) VariableString(name string) string {
	if cv, ok := cm.cvars[name]; ok {
		return cv.value
	}
	return ""
}

// Set 设置变量值，未注册的变量以无标志方式创建
// 注意：仅修改内存中的值，需调用 Save() 持久化
func (cm *CvarManager) Set(name, value string) error {
	cv, ok := cm.cvars[name]
	if !ok {
		cm.Register(CvarDef{Name: name, Default: value})
		return nil
	}
	if cv.Flags&CvarReadOnly != 0 {
		return fmt.Errorf("cvar %s is read only", name)
	}
	cv.value = value
	return nil
}

// Reset 恢复默认值
func (cm *CvarManager) Reset(name string) {
	if cv, ok := cm.cvars[name]; ok {
		cv.value = cv.Default
	}
}

// Names 返回已注册变量名（排序后）
func (cm *CvarManager) Names() []string {
	names := make([]string, 0, len(cm.cvars))
	for name := range cm.cvars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
