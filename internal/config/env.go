package config

import (
	"os"
	"strings"
)

const EnvPrefix = "SYL_LC_"

// LoadFromEnv 从 SYL_LC_* 环境变量读取配置。
// 例如：SYL_LC_SOURCE=zh-cn.json, SYL_LC_KEYWORD_PREFIXES=arg,param
// 第二个返回值表示是否有任一变量被设置。
func LoadFromEnv(prefix string) (Config, bool) {
	cfg := Config{}
	has := false

	setString := func(key string, dst *string) {
		v, ok := os.LookupEnv(prefix + key)
		if !ok {
			return
		}
		has = true
		*dst = strings.TrimSpace(v)
	}
	setList := func(key string, dst *[]string) {
		v, ok := os.LookupEnv(prefix + key)
		if !ok {
			return
		}
		has = true
		*dst = SplitCSV(v)
	}

	setString("SOURCE", &cfg.Source)
	setString("DIR", &cfg.Dir)
	setList("IGNORE", &cfg.Ignore)
	setList("KEYWORD_PREFIXES", &cfg.KeywordPrefixes)

	return cfg, has
}

// SplitCSV 拆分逗号分隔列表，去掉空白项。
func SplitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.TrimSpace(p)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
