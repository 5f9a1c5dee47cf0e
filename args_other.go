//go:build !windows

package wildargs

import (
	"iter"
	"os"
	"slices"
)

// 非 Windows 平台上 shell 已经完成了展开，直接透传 os.Args，
// 不做任何切分和匹配。

func args() iter.Seq[string] {
	return slices.Values(os.Args)
}

func argsLossy() iter.Seq[string] {
	return slices.Values(os.Args)
}
