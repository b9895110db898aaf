package locale

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultSourceCandidates 是未指定 --source 时按顺序探测的源文件名。
var DefaultSourceCandidates = []string{
	"zh-cn.json",
	"zh-CN.json",
	"zh_cn.json",
	"zh_CN.json",
	"zh.json",
}

// BuiltinIgnores 是固定忽略的包管理元数据文件。
var BuiltinIgnores = []string{
	"package.json",
	"package-lock.json",
	"npm-shrinkwrap.json",
	"composer.json",
	"bower.json",
}

// ResolveSource 确定源文件名。显式指定时必须存在，
// 否则按 DefaultSourceCandidates 顺序取第一个存在的。
func ResolveSource(dir, explicit string) (string, error) {
	if strings.TrimSpace(explicit) != "" {
		if !isRegularFile(filepath.Join(dir, explicit)) {
			return "", fmt.Errorf("源文件不存在：%s", filepath.Join(dir, explicit))
		}
		return explicit, nil
	}
	for _, name := range DefaultSourceCandidates {
		if isRegularFile(filepath.Join(dir, name)) {
			return name, nil
		}
	}
	return "", fmt.Errorf("目录 %s 下未找到源文件，已尝试：%s", dir, strings.Join(DefaultSourceCandidates, "、"))
}

// DiscoverTargets 列出待检查的目标文件名（已按字典序排序）。
// 仅收集普通文件且扩展名恰为 .json（区分大小写）的目录项；
// 源文件与 ignore 列表中的名字被排除，ignore 支持 doublestar 通配。
func DiscoverTargets(dir, source string, ignore []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("读取目录失败：%w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		if name == source || matchIgnore(name, ignore) {
			continue
		}
		files = append(files, name)
	}
	sort.Strings(files)
	return files, nil
}

func matchIgnore(name string, patterns []string) bool {
	for _, p := range patterns {
		if p == name {
			return true
		}
		if ok, err := doublestar.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
