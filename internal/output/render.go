package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"syl-localecheck/internal/check"
)

// 每个文件最多展示的警告条数，超出部分折叠成一条省略标记。
const warningSample = 5

// Render 输出人类可读的检查报告，返回整体是否通过。
func Render(w io.Writer, rep *check.Report) bool {
	fmt.Fprintf(w, "源文件：%s\n", rep.Source)
	fmt.Fprintf(w, "已检查 %d 个文件\n", len(rep.Checked))

	for _, f := range rep.Failures {
		fmt.Fprintf(w, "\n❌ %s%s：%d 个键占位符不一致\n", f.File, languageLabel(f.File), len(f.Errors))
		for _, e := range f.Errors {
			fmt.Fprintf(w, "  [%s]\n", e.Key)
			if len(e.Diff.Missing) > 0 {
				fmt.Fprintf(w, "    缺少：%s\n", strings.Join(e.Diff.Missing, "、"))
			}
			if len(e.Diff.Extra) > 0 {
				fmt.Fprintf(w, "    多余：%s\n", strings.Join(e.Diff.Extra, "、"))
			}
			for _, cm := range e.Diff.CountMismatch {
				fmt.Fprintf(w, "    次数不一致：%s（期望 %d，实际 %d）\n", cm.Token, cm.Expected, cm.Actual)
			}
			fmt.Fprintf(w, "    期望：%s\n", joinOrNone(e.Expected))
			fmt.Fprintf(w, "    实际：%s\n", joinOrNone(e.Actual))
		}
		renderWarnings(w, f.Warnings)
	}

	for _, f := range rep.WarningsOnly {
		fmt.Fprintf(w, "\n⚠️ %s%s：仅警告\n", f.File, languageLabel(f.File))
		renderWarnings(w, f.Warnings)
	}

	fmt.Fprintln(w)
	if rep.OK {
		if len(rep.WarningsOnly) > 0 {
			fmt.Fprintf(w, "✅ 占位符检查通过（%d 个文件带警告）\n", len(rep.WarningsOnly))
		} else {
			fmt.Fprintln(w, "✅ 占位符检查通过")
		}
	} else {
		fmt.Fprintf(w, "❌ %d 个文件存在占位符不一致\n", len(rep.Failures))
	}
	return rep.OK
}

func renderWarnings(w io.Writer, warnings []check.KeyWarning) {
	if len(warnings) == 0 {
		return
	}
	sorted := make([]check.KeyWarning, len(warnings))
	copy(sorted, warnings)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	shown := sorted
	if len(shown) > warningSample {
		shown = shown[:warningSample]
	}
	width := 0
	for _, wn := range shown {
		if n := runewidth.StringWidth(wn.Key); n > width {
			width = n
		}
	}
	fmt.Fprintf(w, "  警告 %d 条：\n", len(sorted))
	for _, wn := range shown {
		pad := strings.Repeat(" ", width-runewidth.StringWidth(wn.Key))
		fmt.Fprintf(w, "    - %s%s  %s\n", wn.Key, pad, warningText(wn))
	}
	if len(sorted) > warningSample {
		fmt.Fprintf(w, "    ……（共 %d 条）\n", len(sorted))
	}
}

func warningText(wn check.KeyWarning) string {
	switch wn.Kind {
	case check.WarnMissingKey:
		return "目标缺少该键"
	case check.WarnNonString:
		return fmt.Sprintf("值不是字符串（%s）", wn.TypeName)
	default:
		return string(wn.Kind)
	}
}

func joinOrNone(tokens []string) string {
	if len(tokens) == 0 {
		return "（无）"
	}
	return strings.Join(tokens, "、")
}

// languageLabel 尝试把文件名词干解析为 BCP-47 语言标签，
// 成功时返回「（简体中文名）」标注，失败返回空串。
func languageLabel(file string) string {
	stem := strings.TrimSuffix(file, ".json")
	tag, err := language.Parse(strings.ReplaceAll(stem, "_", "-"))
	if err != nil {
		return ""
	}
	name := display.Languages(language.SimplifiedChinese).Name(tag)
	if name == "" {
		return ""
	}
	return fmt.Sprintf("（%s）", name)
}
