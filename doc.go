// Package wildargs 在 Windows 上模拟通配符参数展开，在其他平台上是
// 透传。
//
// Unix shell 会在启动进程之前展开 `a*`、`file.???` 这样的命令行参数，
// Windows 的 cmd.exe 则把这件事留给应用程序自己。本包在 Windows 上
// 模拟这种展开：用 [Args] 代替 os.Args 即可。
//
// 通配符语法限于 `*`、`?` 和 `[a-z]`/`[!a-z]` 区间；引号内的通配符
// （如 "*"）不会被展开。引号参数的解析精确遵循 Windows 原生语法
// （具体为 CommandLineToArgvW），包括它所有的怪异行为。
//
// 使用示例：
//
//  1. 代替 os.Args 遍历参数:
//
//     for arg := range wildargs.Args() {
//     fmt.Println(arg)
//     }
//
//  2. 交给 flag 之类的解析器（它们需要切片）:
//
//     args := slices.Collect(wildargs.Args())
//     flagSet.Parse(args[1:])
//
// 展开是惰性的：迭代器一边解析参数一边访问文件系统，因此可以处理
// 可能非常庞大的文件名列表，但它不是原子快照（需要快照就先
// slices.Collect）。
package wildargs
