// Package globext 基于真实文件系统实现通配符匹配能力。
//
// 模式语法由 doublestar 提供（`*`、`?`、`[a-z]`/`[!a-z]` 区间，以及
// 递归的 `**`）。匹配是惰性的：只有消费者拉取时才会继续枚举目录。
// 与 Windows 原生行为不同，匹配对大小写敏感，这与被替代的参考实现
// 保持一致。
package globext

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charlievieth/fastwalk"

	"github.com/purpose168/wildargs-cn/internal/filepathext"
)

// errStopWalk 用于在消费者停止拉取时终止进行中的遍历。
var errStopWalk = errors.New("globext: 停止遍历")

// OS 在真实文件系统上实现通配符匹配，可直接用作 expand.Matcher。
// 零值可用，相对模式基于当前工作目录解析。
type OS struct {
	// Root 指定相对模式的基准目录；为空时使用当前工作目录。
	Root string
}

// Glob 编译 pattern 并返回惰性的匹配序列。
// 模式语法无效时返回包装了 doublestar.ErrBadPattern 的错误，
// 此时不会访问文件系统。
func (m OS) Glob(pattern string) (iter.Seq2[string, error], error) {
	// 将模式规范化为正斜杠（在 Windows 上），反斜杠分隔的路径同样可用
	pattern = filepath.ToSlash(pattern)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", doublestar.ErrBadPattern, pattern)
	}

	// 把模式中不含通配符的前缀目录拆出来，枚举只从这里开始
	base, pat := doublestar.SplitPattern(pattern)
	dir := base
	if !filepathext.SmartIsAbs(dir) {
		dir = filepathext.SmartJoin(m.Root, base)
	}

	if strings.Contains(pat, "**") {
		return m.walkSeq(dir, base, pat), nil
	}
	return m.globSeq(dir, base, pat), nil
}

// globSeq 用 doublestar.GlobWalk 惰性枚举匹配项。
// 回调是顺序调用的，匹配项直接产出；读取失败的目录被 doublestar
// 静默跳过，与"不可读条目按不存在处理"的语义一致。
func (m OS) globSeq(dir, base, pat string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := doublestar.GlobWalk(os.DirFS(dir), pat, func(p string, d fs.DirEntry) error {
			if !yield(filepathext.SmartJoin(base, filepath.FromSlash(p)), nil) {
				return errStopWalk
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStopWalk) {
			yield("", err)
		}
	}
}

// walkEntry 是遍历过程中产出的一个条目：匹配到的路径或一次读取错误。
type walkEntry struct {
	path string
	err  error
}

// walkSeq 用 fastwalk 流式遍历目录树并逐项匹配，用于包含 `**` 的
// 模式。遍历在单独的 goroutine 中进行，消费者停止拉取时通过 done
// 通道终止遍历并释放资源。
func (m OS) walkSeq(dir, base, pat string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		entries := make(chan walkEntry)
		done := make(chan struct{})
		go func() {
			defer close(entries)
			conf := fastwalk.Config{
				Follow:     true,
				ToSlash:    fastwalk.DefaultToSlash(),
				Sort:       fastwalk.SortLexical,
				NumWorkers: 1, // 保持确定性的遍历顺序
			}
			_ = fastwalk.Walk(&conf, dir, func(path string, d fs.DirEntry, err error) error {
				select {
				case <-done:
					return filepath.SkipAll
				default:
				}
				if err != nil {
					// 不可读的条目作为错误项转发，由上游跳过
					return send(entries, done, walkEntry{err: err})
				}
				rel, rerr := filepath.Rel(dir, path)
				if rerr != nil || rel == "." {
					return nil
				}
				rel = filepath.ToSlash(rel)
				matched, merr := doublestar.Match(pat, rel)
				if merr != nil || !matched {
					return nil
				}
				return send(entries, done, walkEntry{
					path: filepathext.SmartJoin(base, filepath.FromSlash(rel)),
				})
			})
		}()
		defer close(done)
		for e := range entries {
			if !yield(e.path, e.err) {
				return
			}
		}
	}
}

// send 将条目交给消费者，消费者已经离开时转为终止遍历。
func send(entries chan<- walkEntry, done <-chan struct{}, e walkEntry) error {
	select {
	case entries <- e:
		return nil
	case <-done:
		return filepath.SkipAll
	}
}
