package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/purpose168/wildargs-cn/internal/cmdline"
	"github.com/purpose168/wildargs-cn/internal/expand"
	"github.com/purpose168/wildargs-cn/internal/globext"
	"github.com/purpose168/wildargs-cn/internal/utf16ext"
)

var parseCmd = &cobra.Command{
	Use:   "parse [命令行]",
	Short: "按 Windows 原生规则切分一条原始命令行",
	Long: heredoc.Doc(`
		把给定的文本当作一条完整的 Windows 命令行（CommandLineToArgvW
		语义）进行切分，逐条打印每个参数的两种渲染：pattern 是通配符
		转义后的形式，text 是真实的字面值。

		加上 --expand 后进一步对切分结果执行通配符展开，打印最终的
		参数序列。任何平台上都可以使用，便于调试引号和转义行为。
	`),
	Example: heredoc.Doc(`
		# 观察引号转义的效果
		wildargs parse '"quo""ted?"'

		# 对切分结果执行展开
		wildargs parse --expand '*.txt "*.txt"'
	`),
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		line := utf16ext.Encode(strings.Join(args, " "))
		out := cmd.OutOrStdout()

		doExpand, err := cmd.Flags().GetBool("expand")
		if err != nil {
			return fmt.Errorf("获取 expand 标志失败: %v", err)
		}
		if !doExpand {
			i := 0
			for arg := range cmdline.NewArgs(line).Seq() {
				fmt.Fprintf(out, "%d\tpattern=%s\ttext=%s\n", i, arg.Pattern(), arg.TextLossy())
				i++
			}
			return nil
		}

		opts := &expand.Options{
			Matcher: globext.OS{},
			Logger:  slog.Default(),
		}
		for v := range expand.Expand(line, opts) {
			fmt.Fprintln(out, v.StringLossy())
		}
		return nil
	},
}

func init() {
	parseCmd.Flags().BoolP("expand", "e", false, "对切分结果执行通配符展开")
}
