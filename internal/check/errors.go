package check

// FatalErr 表示终止整轮检查的错误，不产出任何部分报告。
type FatalErr struct {
	Code string
	Msg  string
}

func (e *FatalErr) Error() string { return e.Msg }

// Hint 给出下一步建议，供 CLI 附在错误信息后输出。
func (e *FatalErr) Hint() string {
	switch e.Code {
	case "source_not_found":
		return "确认 --source 指定的文件存在于扫描目录，或去掉该参数改用默认源文件"
	case "source_unresolved":
		return "在扫描目录放一个 zh-cn.json 作为源文件，或用 --source 显式指定"
	case "source_parse_failed", "target_parse_failed":
		return "先修复该文件的 JSON 语法（可用 jq . 文件名 定位），再重新执行"
	case "dir_unreadable":
		return "检查 --dir 路径是否正确、是否有读取权限"
	default:
		return "根据错误信息修正输入后重试"
	}
}
