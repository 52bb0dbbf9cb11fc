package serverlist

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/decker502/rocketui/pkg/config"
)

// DefaultQueryTimeout 单次查询的超时时间
const DefaultQueryTimeout = 5 * time.Second

type queryResult struct {
	servers []Server
	err     error
}

// Browser 服务器浏览器
//
// UpdateVisiblePings、BuildServerInfo 和 CleanUpServerList 只在 UI 线程上调用；
// 查询本身在后台 goroutine 中执行，结果通过 channel 交回。
type Browser struct {
	querier Querier
	format  func(string) string
	timeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	inflight map[config.NetSource]chan queryResult
	wg       sync.WaitGroup

	servers map[config.NetSource][]Server
	current config.NetSource
	rows    []Row
}

// NewBrowser 创建服务器浏览器
// format 用于转换服务器名称（通常是 QuakeToRML），为 nil 时保持原样
func NewBrowser(q Querier, format func(string) string) *Browser {
	if format == nil {
		format = func(s string) string { return s }
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Browser{
		querier:  q,
		format:   format,
		timeout:  DefaultQueryTimeout,
		ctx:      ctx,
		cancel:   cancel,
		inflight: make(map[config.NetSource]chan queryResult),
		servers:  make(map[config.NetSource][]Server),
		current:  config.NetSourceGlobal,
	}
}

// SetTimeout 修改单次查询超时
func (b *Browser) SetTimeout(d time.Duration) {
	b.timeout = d
}

// UpdateVisiblePings 推进 src 的查询
//
// 没有进行中的查询时发起一次并返回 true；查询未完成时返回 true；
// 查询完成（成功或失败）时保存结果并返回 false。
func (b *Browser) UpdateVisiblePings(src config.NetSource) bool {
	b.current = src

	ch, ok := b.inflight[src]
	if !ok {
		if b.ctx.Err() != nil {
			return false
		}
		ch = make(chan queryResult, 1)
		b.inflight[src] = ch
		b.wg.Add(1)
		go b.query(src, ch)
		return true
	}

	select {
	case res := <-ch:
		delete(b.inflight, src)
		if res.err != nil {
			log.Printf("[ServerList] Warning: query %s failed: %v", src, res.err)
			return false
		}
		b.servers[src] = res.servers
		log.Printf("[ServerList] %s: %d servers", src, len(res.servers))
		return false
	default:
		return true
	}
}

func (b *Browser) query(src config.NetSource, ch chan<- queryResult) {
	defer b.wg.Done()

	ctx, cancel := context.WithTimeout(b.ctx, b.timeout)
	defer cancel()

	servers, err := b.querier.Query(ctx, src)
	ch <- queryResult{servers: servers, err: err}
}

// BuildServerInfo 根据当前来源的服务器生成列表行，按 ping 升序、名称升序排列
func (b *Browser) BuildServerInfo() {
	servers := b.servers[b.current]
	rows := make([]Row, 0, len(servers))
	for _, s := range servers {
		rows = append(rows, Row{
			Host:    s.Host,
			Name:    b.format(s.Name),
			Map:     s.Map,
			Players: fmt.Sprintf("%d/%d", s.Players, s.MaxPlayers),
			Ping:    s.Ping,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Ping != rows[j].Ping {
			return rows[i].Ping < rows[j].Ping
		}
		return rows[i].Name < rows[j].Name
	})
	b.rows = rows
}

// CleanUpServerList 清除服务器列表
// filter 为空时清除全部来源，否则只清除该名称对应的来源
func (b *Browser) CleanUpServerList(filter string) {
	if strings.TrimSpace(filter) == "" {
		b.servers = make(map[config.NetSource][]Server)
		b.rows = nil
		return
	}

	src := config.StringToNetSource(filter)
	delete(b.servers, src)
	if src == b.current {
		b.rows = nil
	}
}

// Servers 返回 src 最近一次查询的结果
func (b *Browser) Servers(src config.NetSource) []Server {
	return append([]Server(nil), b.servers[src]...)
}

// Rows 返回最近一次 BuildServerInfo 生成的行
func (b *Browser) Rows() []Row {
	return append([]Row(nil), b.rows...)
}

// Pending 是否有进行中的查询
func (b *Browser) Pending() bool {
	return len(b.inflight) > 0
}

// Close 取消进行中的查询并等待后台 goroutine 退出
func (b *Browser) Close() {
	b.cancel()
	b.wg.Wait()
}
