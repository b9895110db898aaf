package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"syl-localecheck/internal/check"
	"syl-localecheck/internal/config"
	"syl-localecheck/internal/output"
)

type rootFlags struct {
	Source          string
	Dir             string
	Ignore          []string
	KeywordPrefixes []string
	Config          string
	Format          string
	Jobs            int
	ShowVersion     bool
}

func Execute() int {
	root := NewRootCmd(os.Stdout, os.Stderr)
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		var ee *ExitError
		if errors.As(err, &ee) {
			if ee.Msg != "" {
				fmt.Fprintln(os.Stderr, ee.Msg)
			}
			return ee.Code
		}
		fmt.Fprintln(os.Stderr, err.Error())
		return ExitFail
	}
	return ExitOK
}

func NewRootCmd(stdout, _ io.Writer) *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           "syl-localecheck",
		Short:         "校验翻译文件是否保留了源文件的占位符",
		Long:          rootLongHelp(),
		Example:       rootExampleHelp(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.ShowVersion {
				printVersion(stdout)
				return nil
			}
			return runCheck(cmd, stdout, flags)
		},
	}
	root.CompletionOptions.HiddenDefaultCmd = true

	root.Flags().StringVarP(&flags.Source, "source", "s", "", "源文件名（默认按 zh-cn.json 及其变体探测）")
	root.Flags().StringVarP(&flags.Dir, "dir", "d", ".", "扫描目录（单层，不递归）")
	root.Flags().StringSliceVar(&flags.Ignore, "ignore", nil, "额外忽略的文件名，支持 glob，可重复或逗号分隔")
	root.Flags().StringSliceVar(&flags.KeywordPrefixes, "keyword-prefix", nil, "裸编号占位符前缀（如 arg），可重复或逗号分隔")
	root.Flags().StringVar(&flags.Config, "config", "", "YAML 配置文件路径（可选）")
	root.Flags().StringVar(&flags.Format, "format", "text", "输出格式：text/ndjson/json")
	root.Flags().IntVar(&flags.Jobs, "jobs", check.DefaultJobs(), "并发任务数（默认 min(8, CPU核数)）")
	root.Flags().BoolVarP(&flags.ShowVersion, "version", "v", false, "显示版本信息")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "显示版本信息",
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(stdout)
		},
	}
	root.AddCommand(versionCmd)
	return root
}

// runCheck 合并三级配置（参数 > 环境变量 > 配置文件）后执行检查并输出。
func runCheck(cmd *cobra.Command, stdout io.Writer, flags *rootFlags) error {
	if err := output.ValidateFormat(flags.Format); err != nil {
		return &ExitError{Code: ExitFail, Msg: err.Error()}
	}

	var fileCfg config.Config
	if flags.Config != "" {
		loaded, err := config.Load(flags.Config)
		if err != nil {
			return &ExitError{Code: ExitFail, Msg: err.Error()}
		}
		fileCfg = loaded
	}
	envCfg, _ := config.LoadFromEnv(config.EnvPrefix)

	source := firstNonEmpty(flags.Source, envCfg.Source, fileCfg.Source)
	dir := fileCfg.Dir
	if envCfg.Dir != "" {
		dir = envCfg.Dir
	}
	if cmd.Flags().Changed("dir") || dir == "" {
		dir = flags.Dir
	}
	ignore := pickList(cmd.Flags().Changed("ignore"), flags.Ignore, envCfg.Ignore, fileCfg.Ignore)
	prefixes := pickList(cmd.Flags().Changed("keyword-prefix"), flags.KeywordPrefixes, envCfg.KeywordPrefixes, fileCfg.KeywordPrefixes)

	rep, err := check.Run(check.Options{
		Dir:             dir,
		Source:          source,
		Ignore:          ignore,
		KeywordPrefixes: prefixes,
		Jobs:            flags.Jobs,
	})
	if err != nil {
		var fe *check.FatalErr
		if errors.As(err, &fe) {
			return &ExitError{Code: ExitFail, Msg: fmt.Sprintf("%s\n建议：%s", fe.Msg, fe.Hint())}
		}
		return &ExitError{Code: ExitFail, Msg: err.Error()}
	}

	if flags.Format == "text" {
		if !output.Render(stdout, rep) {
			return &ExitError{Code: ExitFail}
		}
		return nil
	}
	events := output.Events(rep, "syl-localecheck", Version)
	if werr := output.Write(stdout, flags.Format, events); werr != nil {
		return &ExitError{Code: ExitFail, Msg: fmt.Sprintf("输出结果失败：%v", werr)}
	}
	if !rep.OK {
		return &ExitError{Code: ExitFail}
	}
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func pickList(flagChanged bool, flagVal, envVal, fileVal []string) []string {
	if flagChanged {
		return flagVal
	}
	if len(envVal) > 0 {
		return envVal
	}
	return fileVal
}
