package locale

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Document 是一个翻译文件的顶层键值表。
// Keys 保留文件中的书写顺序；重复键以后值为准、保留首次出现的位置。
type Document struct {
	Keys   []string
	Values map[string]any
}

func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取文件失败：%w", err)
	}
	return Parse(data)
}

// Parse 解析顶层 JSON 对象。用 token 流解码以保留键顺序，
// 值本身仍交给标准反序列化。
func Parse(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("JSON 解析失败：%w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("JSON 顶层必须是对象")
	}
	doc := &Document{Values: map[string]any{}}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("JSON 解析失败：%w", err)
		}
		key := keyTok.(string)
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("JSON 解析失败：%w", err)
		}
		if _, seen := doc.Values[key]; !seen {
			doc.Keys = append(doc.Keys, key)
		}
		doc.Values[key] = v
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("JSON 解析失败：%w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("JSON 顶层存在多余内容")
	}
	return doc, nil
}

func (d *Document) Lookup(key string) (any, bool) {
	v, ok := d.Values[key]
	return v, ok
}

// TypeName 返回反序列化后值对应的 JSON 类型名。
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
