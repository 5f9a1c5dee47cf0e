// Package cmd 实现 wildargs 命令行工具。
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	wildargs "github.com/purpose168/wildargs-cn"
	"github.com/purpose168/wildargs-cn/internal/log"
	"github.com/purpose168/wildargs-cn/internal/version"
)

func init() {
	rootCmd.PersistentFlags().StringP("data-dir", "D", "", "自定义 wildargs 数据目录")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "调试")
	rootCmd.Flags().BoolP("lossy", "l", false, "宽松转换，无效码元替换为 U+FFFD")
	rootCmd.Flags().BoolP("null", "0", false, "参数之间用 NUL 而不是换行分隔")

	rootCmd.AddCommand(
		parseCmd,
		logsCmd,
	)
}

var rootCmd = &cobra.Command{
	Use:   "wildargs",
	Short: "打印经过通配符展开的自身参数",
	Long: heredoc.Doc(`
		wildargs 把自己收到的命令行按 Windows 原生规则重新切分，对每个
		参数执行通配符展开，然后逐行打印结果。

		在 Windows 之外的平台上 shell 已经完成了展开，输出就是进程收到
		的参数本身。注意命令行中的标志（如 -0）也是命令行的一部分，
		在 Windows 上同样会出现在输出里。
	`),
	Example: heredoc.Doc(`
		# 展开当前目录下的所有 .txt 文件
		wildargs *.txt

		# 引号内的通配符不展开
		wildargs "*.txt"

		# 参数之间用 NUL 分隔，便于交给 xargs -0
		wildargs -0 *.log
	`),
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		lossy, _ := cmd.Flags().GetBool("lossy")
		withNull, _ := cmd.Flags().GetBool("null")
		sep := "\n"
		if withNull {
			sep = "\x00"
		}

		seq := wildargs.Args
		if lossy {
			seq = wildargs.ArgsLossy
		}
		out := cmd.OutOrStdout()
		first := true
		for arg := range seq() {
			if first {
				// 第一个参数是程序自身的路径
				first = false
				continue
			}
			fmt.Fprintf(out, "%s%s", arg, sep)
		}
		return nil
	},
}

func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

// dataDir 返回工具的数据目录，优先使用 --data-dir。
func dataDir(cmd *cobra.Command) (string, error) {
	dir, err := cmd.Flags().GetString("data-dir")
	if err != nil {
		return "", fmt.Errorf("获取数据目录失败: %v", err)
	}
	if dir != "" {
		return dir, nil
	}
	cache, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("获取用户缓存目录失败: %v", err)
	}
	return filepath.Join(cache, "wildargs"), nil
}

// logFilePath 返回工具的日志文件路径。
func logFilePath(cmd *cobra.Command) (string, error) {
	dir, err := dataDir(cmd)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs", "wildargs.log"), nil
}

// setupLogging 初始化日志系统，--debug 时启用调试级别。
func setupLogging(cmd *cobra.Command) error {
	debug, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return fmt.Errorf("获取 debug 标志失败: %v", err)
	}
	logFile, err := logFilePath(cmd)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return fmt.Errorf("创建日志目录失败: %v", err)
	}
	log.Setup(logFile, debug)
	return nil
}
