package check

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"syl-localecheck/internal/locale"
	"syl-localecheck/internal/placeholder"
)

type fileResult struct {
	File    string
	Outcome FileOutcome
	Err     error
}

func DefaultJobs() int {
	n := runtime.NumCPU()
	if n > 8 {
		return 8
	}
	if n < 1 {
		return 1
	}
	return n
}

// Run 执行一次完整检查：解析源文件、发现目标文件、逐文件对比占位符，
// 汇总成 Report。目标文件之间互不影响，用固定大小的工作池并发处理，
// 结果按文件名字典序回装，保证输出确定。
func Run(opts Options) (*Report, error) {
	if opts.Jobs <= 0 {
		opts.Jobs = DefaultJobs()
	}
	if strings.TrimSpace(opts.Dir) == "" {
		opts.Dir = "."
	}

	source, err := locale.ResolveSource(opts.Dir, opts.Source)
	if err != nil {
		code := "source_unresolved"
		if strings.TrimSpace(opts.Source) != "" {
			code = "source_not_found"
		}
		return nil, &FatalErr{Code: code, Msg: err.Error()}
	}
	srcDoc, err := locale.Load(filepath.Join(opts.Dir, source))
	if err != nil {
		return nil, &FatalErr{Code: "source_parse_failed", Msg: fmt.Sprintf("源文件 %s：%v", source, err)}
	}

	tk := placeholder.NewTokenizer(opts.KeywordPrefixes)
	table := BuildTable(srcDoc, tk)

	ignore := make([]string, 0, len(locale.BuiltinIgnores)+len(opts.Ignore))
	ignore = append(ignore, locale.BuiltinIgnores...)
	ignore = append(ignore, opts.Ignore...)
	targets, err := locale.DiscoverTargets(opts.Dir, source, ignore)
	if err != nil {
		return nil, &FatalErr{Code: "dir_unreadable", Msg: err.Error()}
	}

	rep := &Report{Source: source, Checked: targets}
	if len(targets) == 0 {
		rep.OK = true
		return rep, nil
	}

	jobs := opts.Jobs
	if jobs > len(targets) {
		jobs = len(targets)
	}
	in := make(chan string)
	out := make(chan fileResult, len(targets))
	wg := sync.WaitGroup{}

	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range in {
				doc, err := locale.Load(filepath.Join(opts.Dir, name))
				if err != nil {
					out <- fileResult{File: name, Err: err}
					continue
				}
				out <- fileResult{File: name, Outcome: compareFile(table, doc, tk, name)}
			}
		}()
	}
	for _, name := range targets {
		in <- name
	}
	close(in)
	wg.Wait()
	close(out)

	byFile := make(map[string]fileResult, len(targets))
	for fr := range out {
		byFile[fr.File] = fr
	}

	for _, name := range targets {
		fr := byFile[name]
		if fr.Err != nil {
			return nil, &FatalErr{Code: "target_parse_failed", Msg: fmt.Sprintf("目标文件 %s：%v", name, fr.Err)}
		}
		switch {
		case len(fr.Outcome.Errors) > 0:
			rep.Failures = append(rep.Failures, fr.Outcome)
		case len(fr.Outcome.Warnings) > 0:
			rep.WarningsOnly = append(rep.WarningsOnly, fr.Outcome)
		}
	}
	rep.OK = len(rep.Failures) == 0
	return rep, nil
}
