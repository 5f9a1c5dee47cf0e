// Package cmdline 实现 Windows 原生命令行的切分。
//
// 切分规则与 CommandLineToArgvW 兼容：双引号界定参数、反斜杠仅在紧邻
// 引号时具有转义意义、引号区域内的双写引号产生一个字面引号。输入是
// GetCommandLineW 风格的 16 位码元缓冲区，输出通过 [Sink] 逐码元交给
// 调用方累积，因此同一次扫描可以同时构建多种渲染（见 [Arg]）。
//
// 切分是全函数：任何输入（未闭合的引号、悬空的反斜杠）都会得到确定的
// 参数序列，不存在错误路径。
package cmdline

import "iter"

const (
	space     uint16 = ' '
	tab       uint16 = '\t'
	quote     uint16 = '"'
	backslash uint16 = '\\'
)

// Sink 接收被放入当前参数的每一个码元。
//
// quoted 表示该码元产生时是否处于引号区域内，后续的通配符转义依赖
// 这个标志。每个进入参数值的码元恰好触发一次 Emit 调用。
type Sink interface {
	Emit(c uint16, quoted bool)
}

// NextArg 从 line 中切分出下一个参数，将其内容逐码元写入 sink，
// 并返回尚未消费的剩余缓冲区。
//
// 跳过前导分隔符后缓冲区为空时返回 ok=false，表示没有更多参数。
// 游标只会向前推进，不会回退。
func NextArg(line []uint16, sink Sink) (rest []uint16, ok bool) {
	i := 0
	for i < len(line) && (line[i] == space || line[i] == tab) {
		i++
	}
	if i == len(line) {
		return line[i:], false
	}

	quoted := false
	for i < len(line) {
		switch c := line[i]; {
		case c == backslash:
			// 反斜杠只有紧邻引号时才有转义意义：
			// n 个反斜杠 + 引号 => n/2 个字面反斜杠，n 为奇数时引号是数据，
			// n 为偶数时引号按收尾引号处理。其余情况反斜杠原样输出。
			n := 0
			for i < len(line) && line[i] == backslash {
				n++
				i++
			}
			if i < len(line) && line[i] == quote {
				i++
				for range n / 2 {
					sink.Emit(backslash, quoted)
				}
				if n%2 == 1 {
					sink.Emit(quote, quoted)
				} else {
					quoted, i = closeQuote(line, i, sink)
				}
			} else {
				for range n {
					sink.Emit(backslash, quoted)
				}
			}
		case c == quote:
			i++
			if quoted {
				quoted, i = closeQuote(line, i, sink)
			} else {
				quoted = true
			}
		case (c == space || c == tab) && !quoted:
			return line[i+1:], true
		default:
			sink.Emit(c, quoted)
			i++
		}
	}
	// 未闭合的引号不是错误，参数随缓冲区一起结束
	return line[len(line):], true
}

// closeQuote 处理一个起收尾作用的引号：离开引号区域，并在紧随其后
// 还有一个引号时输出一个字面引号（引号转义引号）。
func closeQuote(line []uint16, i int, sink Sink) (quoted bool, rest int) {
	if i < len(line) && line[i] == quote {
		sink.Emit(quote, false)
		i++
	}
	return false, i
}

// Args 是基于原始命令行缓冲区的惰性参数序列。
// 序列只能向前消费，不可重置；缓冲区本身不会被修改，只会被切片。
type Args struct {
	line []uint16
}

// NewArgs 基于原始命令行缓冲区创建参数序列。
// 缓冲区应包含完整的命令行，程序路径是其中的第一个参数。
func NewArgs(line []uint16) *Args {
	return &Args{line: line}
}

// Next 返回下一条参数记录，没有更多参数时返回 ok=false。
func (a *Args) Next() (arg Arg, ok bool) {
	a.line, ok = NextArg(a.line, &arg)
	if !ok {
		return Arg{}, false
	}
	return arg, true
}

// Seq 以迭代器形式产出剩余的参数记录。
func (a *Args) Seq() iter.Seq[Arg] {
	return func(yield func(Arg) bool) {
		for {
			arg, ok := a.Next()
			if !ok {
				return
			}
			if !yield(arg) {
				return
			}
		}
	}
}
