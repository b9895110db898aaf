package placeholder

// CountMismatch 表示两侧都存在但次数不同的占位符。
type CountMismatch struct {
	Token    string `json:"token"`
	Expected int    `json:"expected"`
	Actual   int    `json:"actual"`
}

// Diff 是源与目标占位符多重集的三类差异。
type Diff struct {
	Missing       []string        `json:"missing,omitempty"`
	Extra         []string        `json:"extra,omitempty"`
	CountMismatch []CountMismatch `json:"count_mismatch,omitempty"`
}

func (d Diff) Clean() bool {
	return len(d.Missing) == 0 && len(d.Extra) == 0 && len(d.CountMismatch) == 0
}

// Compare 以源多重集为基准对比目标多重集。
// 输出按占位符字典序排列，保证同样输入得到同样结果。
func Compare(source, target Multiset) Diff {
	var d Diff
	for _, tok := range source.Tokens() {
		got, ok := target[tok]
		if !ok {
			d.Missing = append(d.Missing, tok)
			continue
		}
		if want := source[tok]; got != want {
			d.CountMismatch = append(d.CountMismatch, CountMismatch{Token: tok, Expected: want, Actual: got})
		}
	}
	for _, tok := range target.Tokens() {
		if _, ok := source[tok]; !ok {
			d.Extra = append(d.Extra, tok)
		}
	}
	return d
}
