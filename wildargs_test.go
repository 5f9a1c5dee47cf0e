package wildargs

import (
	"os"
	"runtime"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArgs(t *testing.T) {
	t.Run("至少包含程序自身的路径", func(t *testing.T) {
		got := slices.Collect(Args())
		require.NotEmpty(t, got)
	})

	t.Run("宽松序列与严格序列一致", func(t *testing.T) {
		// 测试进程的参数都是有效的 UTF-16
		require.Equal(t, slices.Collect(Args()), slices.Collect(ArgsLossy()))
	})
}

func TestArgsPassthrough(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Windows 上的序列来自模拟展开，不与 os.Args 对比")
	}
	t.Run("非 Windows 平台透传 os.Args", func(t *testing.T) {
		require.Equal(t, os.Args, slices.Collect(Args()))
	})
}
