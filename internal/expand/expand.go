// Package expand 将切分后的参数记录与文件系统通配符匹配能力组合为
// 惰性的参数展开序列。
//
// 展开是单线程、拉取驱动的：只有消费者请求下一个值时才会切分下一个
// 参数或读取文件系统。序列不是文件系统快照，迭代期间其他进程的并发
// 修改可能影响后续结果，这是接受的弱一致性语义。
package expand

import (
	"iter"

	"github.com/purpose168/wildargs-cn/internal/cmdline"
)

// Matcher 是可注入的文件系统通配符匹配能力。
//
// Glob 编译 pattern 并返回惰性的匹配序列；模式语法无效时返回非 nil
// 错误且不访问文件系统。序列产出 (路径, nil) 或 ("", 错误) 条目，
// 单个条目的读取错误不应中止整个序列，由消费者跳过。
type Matcher interface {
	Glob(pattern string) (iter.Seq2[string, error], error)
}

// Logger 接口用于可选的日志记录。*slog.Logger 满足该接口。
type Logger interface {
	Debug(msg string, args ...any)
}

// noopLogger 是一个不执行任何操作的日志记录器。
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}

// Options 用于配置展开行为的选项。
type Options struct {
	// Matcher 提供文件系统匹配能力；为 nil 时不做任何展开，
	// 所有参数按字面值传递。
	Matcher Matcher
	// Logger 记录展开过程中的回退决策；为 nil 时不记录。
	Logger Logger
}

// Value 是展开序列的一个元素：一个匹配到的文件系统路径，
// 或者一条按字面值传递的参数。
type Value struct {
	path    string
	arg     cmdline.Arg
	matched bool
}

// Matched 报告该值是否来自文件系统匹配。
func (v Value) Matched() bool {
	return v.matched
}

// String 返回该值的字符串形式。
// 字面值参数包含无效 UTF-16 时返回错误；匹配到的路径不会失败。
func (v Value) String() (string, error) {
	if v.matched {
		return v.path, nil
	}
	return v.arg.Text()
}

// StringLossy 返回该值的字符串形式，无效码元替换为 U+FFFD。
func (v Value) StringLossy() string {
	if v.matched {
		return v.path
	}
	return v.arg.TextLossy()
}

// Expand 将原始命令行缓冲区展开为参数值序列。
//
// 每条参数先按 pattern 尝试文件系统匹配：模式无效或没有任何匹配时，
// 整条参数以 text 字面值的形式产出一次；否则依次产出每个匹配到的
// 路径，读取出错的条目被跳过。序列只能消费一次；中途停止消费会释放
// 进行中的目录枚举资源。
func Expand(line []uint16, opts *Options) iter.Seq[Value] {
	if opts == nil {
		opts = &Options{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = noopLogger{}
	}
	return func(yield func(Value) bool) {
		args := cmdline.NewArgs(line)
		for {
			arg, ok := args.Next()
			if !ok {
				return
			}
			if opts.Matcher == nil {
				if !yield(Value{arg: arg}) {
					return
				}
				continue
			}
			pattern := arg.Pattern()
			matches, err := opts.Matcher.Glob(pattern)
			if err != nil {
				// 无效的模式按字面值传递，不访问文件系统
				logger.Debug("通配符模式无效，按字面值传递", "pattern", pattern, "err", err)
				if !yield(Value{arg: arg}) {
					return
				}
				continue
			}
			if !yieldMatches(yield, matches, arg, logger) {
				return
			}
		}
	}
}

// yieldMatches 产出一个匹配序列中的全部有效路径；一个都没有时退回
// 字面值。返回 false 表示消费者停止了拉取。
func yieldMatches(yield func(Value) bool, matches iter.Seq2[string, error], arg cmdline.Arg, logger Logger) bool {
	next, stop := iter.Pull2(matches)
	defer stop()

	// 必须先确认至少存在一个匹配，才能决定是流式产出还是字面回退
	path, ok := firstNonError(next)
	if !ok {
		logger.Debug("模式没有匹配到任何文件，按字面值传递", "pattern", arg.Pattern())
		return yield(Value{arg: arg})
	}
	for {
		if !yield(Value{path: path, matched: true}) {
			return false
		}
		path, ok = firstNonError(next)
		if !ok {
			return true
		}
	}
}

// firstNonError 拉取下一个有效条目，跳过读取出错的条目。
func firstNonError(next func() (string, error, bool)) (string, bool) {
	for {
		path, err, ok := next()
		if !ok {
			return "", false
		}
		if err != nil {
			continue
		}
		return path, true
	}
}
