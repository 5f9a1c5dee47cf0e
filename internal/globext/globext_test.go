package globext

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// writeTree 在临时目录中创建测试用的文件树。
func writeTree(t *testing.T, files ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
	return dir
}

// collect 收集一个匹配序列的全部有效路径，读取出错的条目被跳过。
func collect(t *testing.T, m OS, pattern string) []string {
	t.Helper()
	seq, err := m.Glob(pattern)
	require.NoError(t, err)
	var out []string
	for p, err := range seq {
		if err != nil {
			continue
		}
		out = append(out, p)
	}
	return out
}

func TestGlob(t *testing.T) {
	dir := writeTree(t, "a.txt", "b.txt", "c.md", "sub/c.txt", "sub/deep/d.txt")
	m := OS{Root: dir}

	t.Run("星号匹配当前目录的文件", func(t *testing.T) {
		require.Equal(t, []string{"a.txt", "b.txt"}, collect(t, m, "*.txt"))
	})

	t.Run("问号匹配单个字符", func(t *testing.T) {
		require.Equal(t, []string{"a.txt", "b.txt"}, collect(t, m, "?.txt"))
	})

	t.Run("括号区间匹配", func(t *testing.T) {
		require.Equal(t, []string{"a.txt", "b.txt"}, collect(t, m, "[a-b].txt"))
	})

	t.Run("子目录中的模式保留目录前缀", func(t *testing.T) {
		require.Equal(t, []string{filepath.Join("sub", "c.txt")}, collect(t, m, "sub/*.txt"))
	})

	t.Run("没有匹配时序列为空", func(t *testing.T) {
		require.Empty(t, collect(t, m, "*.zzz"))
	})

	t.Run("无效的模式返回错误且不访问文件系统", func(t *testing.T) {
		_, err := m.Glob("[a-")
		require.ErrorIs(t, err, doublestar.ErrBadPattern)
	})

	t.Run("绝对模式产出绝对路径", func(t *testing.T) {
		pattern := filepath.Join(dir, "*.md")
		require.Equal(t, []string{filepath.Join(dir, "c.md")}, collect(t, OS{}, pattern))
	})
}

func TestGlobEscapedMeta(t *testing.T) {
	t.Run("括号类中的星号按字面匹配", func(t *testing.T) {
		dir := writeTree(t, "*", "x")
		// 引号内的 * 经过转义后形如 [*]，只应匹配名字就是 * 的文件
		require.Equal(t, []string{"*"}, collect(t, OS{Root: dir}, "[*]"))
	})
}

func TestGlobStar(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := writeTree(t, "a.txt", "b.txt", "c.md", "sub/c.txt", "sub/deep/d.txt")
	m := OS{Root: dir}

	t.Run("两个星号递归匹配整棵目录树", func(t *testing.T) {
		require.Equal(t, []string{
			"a.txt",
			"b.txt",
			filepath.Join("sub", "c.txt"),
			filepath.Join("sub", "deep", "d.txt"),
		}, collect(t, m, "**/*.txt"))
	})

	t.Run("中途停止拉取不泄漏遍历资源", func(t *testing.T) {
		seq, err := m.Glob("**/*.txt")
		require.NoError(t, err)
		for p, err := range seq {
			require.NoError(t, err)
			require.Equal(t, "a.txt", p)
			break
		}
	})
}
