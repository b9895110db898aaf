package check

import (
	"syl-localecheck/internal/locale"
	"syl-localecheck/internal/placeholder"
)

// SourceTable 是源文件每个键对应的占位符多重集。
// 构建后只读，所有目标文件共享同一份。
type SourceTable struct {
	Keys []string
	Sets map[string]placeholder.Multiset
}

func BuildTable(doc *locale.Document, tk *placeholder.Tokenizer) *SourceTable {
	t := &SourceTable{
		Keys: make([]string, 0, len(doc.Keys)),
		Sets: make(map[string]placeholder.Multiset, len(doc.Keys)),
	}
	for _, key := range doc.Keys {
		// 非字符串值没有占位符要求，提取结果为空集
		s, _ := doc.Values[key].(string)
		t.Keys = append(t.Keys, key)
		t.Sets[key] = tk.Extract(s)
	}
	return t
}
