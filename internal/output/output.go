package output

import (
	"encoding/json"
	"fmt"
	"io"

	"syl-localecheck/internal/check"
)

func ValidateFormat(v string) error {
	if v != "text" && v != "ndjson" && v != "json" {
		return fmt.Errorf("不支持的输出格式：%s（仅支持 text/ndjson/json）", v)
	}
	return nil
}

// Write 以机器可读格式输出事件流。
func Write(w io.Writer, format string, events []map[string]any) error {
	switch format {
	case "ndjson":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		for _, e := range events {
			if err := enc.Encode(e); err != nil {
				return err
			}
		}
		return nil
	case "json":
		obj := map[string]any{"events": events}
		b, err := json.MarshalIndent(obj, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	default:
		return fmt.Errorf("不支持的输出格式：%s", format)
	}
}

// Events 把报告展开成事件列表：meta、逐键 mismatch/warning、
// 干净文件的 file_ok，最后是 summary。
func Events(rep *check.Report, tool, version string) []map[string]any {
	events := []map[string]any{{
		"type":        "meta",
		"tool":        tool,
		"version":     version,
		"source":      rep.Source,
		"total_files": len(rep.Checked),
	}}

	dirty := map[string]struct{}{}
	mismatches := 0
	warnings := 0
	emit := func(outcomes []check.FileOutcome) {
		for _, f := range outcomes {
			dirty[f.File] = struct{}{}
			for _, e := range f.Errors {
				mismatches++
				events = append(events, map[string]any{
					"type":           "mismatch",
					"path":           f.File,
					"key":            e.Key,
					"missing":        e.Diff.Missing,
					"extra":          e.Diff.Extra,
					"count_mismatch": e.Diff.CountMismatch,
					"expected":       e.Expected,
					"actual":         e.Actual,
				})
			}
			for _, wn := range f.Warnings {
				warnings++
				ev := map[string]any{
					"type": "warning",
					"path": f.File,
					"key":  wn.Key,
					"kind": string(wn.Kind),
				}
				if wn.Kind == check.WarnNonString {
					ev["value_type"] = wn.TypeName
				}
				events = append(events, ev)
			}
		}
	}
	emit(rep.Failures)
	emit(rep.WarningsOnly)

	for _, name := range rep.Checked {
		if _, ok := dirty[name]; ok {
			continue
		}
		events = append(events, map[string]any{"type": "file_ok", "path": name})
	}

	exitCode := 0
	if !rep.OK {
		exitCode = 1
	}
	events = append(events, map[string]any{
		"type":           "summary",
		"ok":             rep.OK,
		"source":         rep.Source,
		"total_files":    len(rep.Checked),
		"failure_files":  len(rep.Failures),
		"warning_files":  len(rep.WarningsOnly),
		"mismatch_count": mismatches,
		"warning_count":  warnings,
		"exit_code":      exitCode,
	})
	return events
}
