package check

import (
	"syl-localecheck/internal/locale"
	"syl-localecheck/internal/placeholder"
)

// compareFile 按源文件键顺序逐键检查一个目标文件。
// 缺键与非字符串值降级为警告，不做占位符对比；
// 目标文件独有的键不在检查范围内。
func compareFile(table *SourceTable, doc *locale.Document, tk *placeholder.Tokenizer, file string) FileOutcome {
	out := FileOutcome{File: file}
	for _, key := range table.Keys {
		v, ok := doc.Lookup(key)
		if !ok {
			out.Warnings = append(out.Warnings, KeyWarning{Key: key, Kind: WarnMissingKey})
			continue
		}
		s, isStr := v.(string)
		if !isStr {
			out.Warnings = append(out.Warnings, KeyWarning{Key: key, Kind: WarnNonString, TypeName: locale.TypeName(v)})
			continue
		}
		src := table.Sets[key]
		got := tk.Extract(s)
		d := placeholder.Compare(src, got)
		if d.Clean() {
			continue
		}
		out.Errors = append(out.Errors, KeyError{
			Key:      key,
			Diff:     d,
			Expected: src.Display(),
			Actual:   got.Display(),
		})
	}
	return out
}
