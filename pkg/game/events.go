package game

import (
	"fmt"
	"log"
	"strings"

	"github.com/decker502/rocketui/internal/manifest"
	"github.com/decker502/rocketui/pkg/config"
)

// maxEventsPerFrame 单帧最多处理的 UI 事件数，剩余事件留到下一帧
const maxEventsPerFrame = 64

// CommandHandler UI 命令处理函数，args 不含命令名
type CommandHandler func(r *Rocket, args []string) error

// Command 已注册的 UI 命令
type Command struct {
	Category config.ElementCategory
	Handler  CommandHandler
}

// RegisterCommand 注册 UI 命令，同名命令会被覆盖
// 命令名不区分大小写
func (r *Rocket) RegisterCommand(name string, category config.ElementCategory, handler CommandHandler) {
	r.commands[strings.ToLower(name)] = Command{Category: category, Handler: handler}
}

// ProcessEvents 取出工具包排队的 UI 事件并分发
//
// 未知命令和门控不允许的命令被丢弃，处理函数返回的错误只记录日志。
func (r *Rocket) ProcessEvents() {
	for i := 0; i < maxEventsPerFrame; i++ {
		line, ok := r.toolkit.GetEvent()
		if !ok {
			return
		}
		if err := r.ExecuteCommand(line); err != nil {
			log.Printf("[Rocket] Warning: %v", err)
		}
	}
}

// ExecuteCommand 解析并执行一条命令行
// 参数按清单分词规则切分，支持双引号
func (r *Rocket) ExecuteCommand(line string) error {
	tokens := manifest.NewLexer([]byte(line)).Tokens()
	if len(tokens) == 0 {
		return nil
	}

	name := strings.ToLower(tokens[0].Literal)
	cmd, ok := r.commands[name]
	if !ok {
		return fmt.Errorf("unknown UI command %q", name)
	}
	if !r.IsCommandAllowed(cmd.Category) {
		log.Printf("[Rocket] Command %q not allowed (%v) in phase %v", name, cmd.Category, r.uiPhase)
		return nil
	}

	args := make([]string, 0, len(tokens)-1)
	for _, tok := range tokens[1:] {
		args = append(args, tok.Literal)
	}

	if err := cmd.Handler(r, args); err != nil {
		return fmt.Errorf("command %q: %w", name, err)
	}
	return nil
}

func (r *Rocket) registerBuiltinCommands() {
	for _, verb := range []string{"open", "show", "close"} {
		r.RegisterCommand(verb, config.ElementAll, func(r *Rocket, args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("usage: %s <document id>", verb)
			}
			r.toolkit.DocumentAction(args[0], verb)
			return nil
		})
	}

	r.RegisterCommand("blurall", config.ElementAll, func(r *Rocket, args []string) error {
		r.toolkit.DocumentAction("", "blurall")
		return nil
	})

	r.RegisterCommand("retrieve_servers", config.ElementAll, func(r *Rocket, args []string) error {
		src := ""
		if len(args) > 0 {
			src = args[0]
		}
		r.RetrieveServers(config.StringToNetSource(src))
		return nil
	})

	r.RegisterCommand("build_server_info", config.ElementAll, func(r *Rocket, args []string) error {
		r.BuildServerInfo()
		return nil
	})

	r.RegisterCommand("reload_huds", config.ElementGame, func(r *Rocket, args []string) error {
		return r.LoadHuds()
	})
}
