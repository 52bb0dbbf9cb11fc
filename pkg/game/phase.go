package game

// ConnectionPhase 客户端网络连接阶段，由网络层维护，这里只读
type ConnectionPhase int

const (
	ConnUninitialized ConnectionPhase = iota
	ConnDisconnected
	ConnConnecting
	ConnChallenging
	ConnConnected
	ConnLoading
	ConnPrimed
	ConnActive
)

func (c ConnectionPhase) String() string {
	switch c {
	case ConnUninitialized:
		return "uninitialized"
	case ConnDisconnected:
		return "disconnected"
	case ConnConnecting:
		return "connecting"
	case ConnChallenging:
		return "challenging"
	case ConnConnected:
		return "connected"
	case ConnLoading:
		return "loading"
	case ConnPrimed:
		return "primed"
	case ConnActive:
		return "active"
	}
	return "unknown"
}

// UiPhase UI 自身的阶段，声明顺序即比较顺序
type UiPhase int

const (
	UiIdle UiPhase = iota
	UiRetrievingServers
	UiBuildingServerInfo
	UiConnecting
	UiLoading
	UiPlaying
)

func (p UiPhase) String() string {
	switch p {
	case UiIdle:
		return "idle"
	case UiRetrievingServers:
		return "retrieving-servers"
	case UiBuildingServerInfo:
		return "building-server-info"
	case UiConnecting:
		return "connecting"
	case UiLoading:
		return "loading"
	case UiPlaying:
		return "playing"
	}
	return "unknown"
}

// NextUiPhase 连接阶段变化时计算新的 UI 阶段
//
// 断线时只有已经越过 building-server-info 的阶段（连接、加载、游戏中）
// 才回到 idle，浏览服务器列表的阶段保持不变。
// 断线不会打断正在进行的服务器浏览，这是客户端的既有行为，比较方向不要反过来。
func NextUiPhase(current UiPhase, conn ConnectionPhase) UiPhase {
	switch conn {
	case ConnDisconnected:
		if current > UiBuildingServerInfo {
			return UiIdle
		}
		return current
	case ConnConnecting, ConnChallenging, ConnConnected:
		return UiConnecting
	case ConnLoading, ConnPrimed:
		return UiLoading
	default:
		return UiPlaying
	}
}
