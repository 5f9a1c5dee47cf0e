// Package filepathext 提供路径处理相关的扩展功能。
package filepathext

import (
	"path/filepath"
	"runtime"
	"strings"
)

// SmartJoin 智能连接两个路径：第二个路径是绝对路径时直接返回它，
// 否则使用 filepath.Join 将两个路径连接起来。
func SmartJoin(one, two string) string {
	if SmartIsAbs(two) {
		return two
	}
	return filepath.Join(one, two)
}

// SmartIsAbs 智能检查路径是否为绝对路径，同时考虑操作系统特定的
// 路径格式和 Unix 风格路径。在 Windows 上除系统原生的绝对路径外，
// 以 "/" 开头的 Unix 风格路径也视为绝对路径。
func SmartIsAbs(path string) bool {
	switch runtime.GOOS {
	case "windows":
		return filepath.IsAbs(path) || strings.HasPrefix(filepath.ToSlash(path), "/")
	default:
		return filepath.IsAbs(path)
	}
}
