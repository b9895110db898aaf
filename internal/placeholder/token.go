package placeholder

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Multiset 记录每个占位符出现的次数，键不存在即次数为 0。
type Multiset map[string]int

func (m Multiset) Add(token string) {
	m[token]++
}

// Tokens 返回字典序排序后的全部占位符。
func (m Multiset) Tokens() []string {
	out := make([]string, 0, len(m))
	for tok := range m {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// Display 按字典序输出展示用列表，次数大于 1 时追加 (xN)。
func (m Multiset) Display() []string {
	out := make([]string, 0, len(m))
	for _, tok := range m.Tokens() {
		if n := m[tok]; n > 1 {
			out = append(out, fmt.Sprintf("%s (x%d)", tok, n))
		} else {
			out = append(out, tok)
		}
	}
	return out
}

var braceExpr = regexp.MustCompile(`\{[^{}]+\}`)

// Tokenizer 从翻译文本中提取占位符。关键字前缀模式在构造时编译一次，
// 同一次运行里对所有文件复用。
type Tokenizer struct {
	prefixExprs []*regexp.Regexp
}

func NewTokenizer(prefixes []string) *Tokenizer {
	t := &Tokenizer{}
	for _, p := range prefixes {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		t.prefixExprs = append(t.prefixExprs, regexp.MustCompile(regexp.QuoteMeta(p)+`[0-9]+`))
	}
	return t
}

// Extract 提取一段文本里的全部占位符。
//
// 主模式匹配 {xxx}，并排除三类写法：
//   - 反斜杠转义的字面量大括号 \{xxx}
//   - 双开括号 {{xxx}
//   - 双闭括号 {xxx}}
//
// 次模式在配置了关键字前缀时启用，匹配「前缀+数字」的裸占位符（如 arg0）；
// 两侧都紧贴大括号的匹配视为主模式已计入，跳过以免重复计数。
func (t *Tokenizer) Extract(s string) Multiset {
	ms := Multiset{}
	for _, idx := range braceExpr.FindAllStringIndex(s, -1) {
		start, end := idx[0], idx[1]
		if start > 0 && (s[start-1] == '\\' || s[start-1] == '{') {
			continue
		}
		if end < len(s) && s[end] == '}' {
			continue
		}
		tok := strings.TrimSpace(s[start+1 : end-1])
		if tok == "" {
			continue
		}
		ms.Add(tok)
	}
	for _, re := range t.prefixExprs {
		for _, idx := range re.FindAllStringIndex(s, -1) {
			start, end := idx[0], idx[1]
			if start > 0 && s[start-1] == '{' && end < len(s) && s[end] == '}' {
				continue
			}
			ms.Add(s[start:end])
		}
	}
	return ms
}
