package cmdline

import "github.com/purpose168/wildargs-cn/internal/utf16ext"

// Arg 是一条参数记录，由同一次切分同步构建出的两种渲染组成：
//
//   - pattern：引号区域内出现的通配符元字符（? * [ ]）被包装为单字符
//     括号类（如 [*]），可以安全地交给文件系统匹配；
//   - text：未经包装的字面值，在不展开或展开失败时使用。
//
// 两个累积器的"逻辑字符数"始终一致，pattern 只是可能包含更多原始码元。
// Arg 同时实现 [Sink]，由 [NextArg] 在切分过程中逐码元填充。
type Arg struct {
	pattern []uint16
	text    []uint16
}

// Emit 实现 [Sink]。引号区域内的通配符元字符在 pattern 中被括号转义，
// text 始终追加原始码元。
func (a *Arg) Emit(c uint16, quoted bool) {
	if quoted {
		switch c {
		case '?', '*', '[', ']':
			a.pattern = append(a.pattern, '[', c, ']')
			a.text = append(a.text, c)
			return
		}
	}
	a.pattern = append(a.pattern, c)
	a.text = append(a.text, c)
}

// Pattern 返回通配符转义后的渲染。
// 解码是宽松的：模式只用于文件系统匹配，匹配不到时会退回 text。
func (a Arg) Pattern() string {
	return utf16ext.DecodeLossy(a.pattern)
}

// Text 返回参数的字面值。
// 参数包含未配对的代理项时返回错误，需要宽松行为的调用方应使用
// [Arg.TextLossy] 或 [Arg.TextUTF16]。
func (a Arg) Text() (string, error) {
	return utf16ext.DecodeStrict(a.text)
}

// TextLossy 返回参数的字面值，无效码元替换为 U+FFFD。
func (a Arg) TextLossy() string {
	return utf16ext.DecodeLossy(a.text)
}

// TextUTF16 返回参数字面值的原始码元。
func (a Arg) TextUTF16() []uint16 {
	return a.text
}
