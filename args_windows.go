//go:build windows

package wildargs

import (
	"fmt"
	"iter"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/purpose168/wildargs-cn/internal/expand"
	"github.com/purpose168/wildargs-cn/internal/globext"
)

// rawCommandLine 返回 GetCommandLineW 提供的原始命令行缓冲区，
// 不含结尾的 NUL。操作系统没有提供命令行时返回 ok=false。
func rawCommandLine() (line []uint16, ok bool) {
	p := windows.GetCommandLine()
	if p == nil {
		return nil, false
	}
	n := 0
	for ptr := unsafe.Pointer(p); *(*uint16)(ptr) != 0; ptr = unsafe.Add(ptr, unsafe.Sizeof(uint16(0))) {
		n++
	}
	return unsafe.Slice(p, n), true
}

// expanded 把原始缓冲区接上切分与展开链。
// 缓冲区不可用按零参数处理，不是错误。
func expanded() iter.Seq[expand.Value] {
	line, ok := rawCommandLine()
	if !ok {
		return func(yield func(expand.Value) bool) {}
	}
	return expand.Expand(line, &expand.Options{Matcher: globext.OS{}})
}

func args() iter.Seq[string] {
	return func(yield func(string) bool) {
		for v := range expanded() {
			s, err := v.String()
			if err != nil {
				panic(fmt.Sprintf("wildargs: 命令行参数不是有效的 UTF-16: %v", err))
			}
			if !yield(s) {
				return
			}
		}
	}
}

func argsLossy() iter.Seq[string] {
	return func(yield func(string) bool) {
		for v := range expanded() {
			if !yield(v.StringLossy()) {
				return
			}
		}
	}
}
