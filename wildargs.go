package wildargs

import "iter"

// Args 返回经过通配符展开的命令行参数序列，os.Args 的替代品。
//
// 非 Windows 平台上 shell 已经完成了展开，序列就是 os.Args 本身。
// Windows 上展开由本包模拟，参数被惰性解析，迭代过程中会访问文件
// 系统。序列应当只消费一次。
//
// 某个参数（或其通配符展开结果）不是有效的 UTF-16 时 Args 会 panic，
// 与它所替代的标准访问器同样严格；需要宽松行为的调用方应使用
// [ArgsLossy]。
func Args() iter.Seq[string] {
	return args()
}

// ArgsLossy 返回经过通配符展开的命令行参数序列，无效的码元替换为
// U+FFFD。它不会失败，适合展示、日志等不要求无损还原的场景。
func ArgsLossy() iter.Seq[string] {
	return argsLossy()
}
