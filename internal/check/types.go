package check

import "syl-localecheck/internal/placeholder"

type WarningKind string

const (
	WarnMissingKey WarningKind = "missing-key"
	WarnNonString  WarningKind = "non-string"
)

type Options struct {
	Dir             string
	Source          string
	Ignore          []string
	KeywordPrefixes []string
	Jobs            int
}

// KeyError 是一个键上的占位符不一致错误。
// Expected/Actual 是排好序的展示列表，次数大于 1 的条目带 (xN) 后缀。
type KeyError struct {
	Key      string
	Diff     placeholder.Diff
	Expected []string
	Actual   []string
}

// KeyWarning 是不参与对比的键级问题：目标缺键，或值不是字符串。
type KeyWarning struct {
	Key      string
	Kind     WarningKind
	TypeName string
}

type FileOutcome struct {
	File     string
	Errors   []KeyError
	Warnings []KeyWarning
}

// Report 是一次运行的完整结果。OK 只看错误，不看警告。
type Report struct {
	OK           bool
	Source       string
	Checked      []string
	Failures     []FileOutcome
	WarningsOnly []FileOutcome
}
