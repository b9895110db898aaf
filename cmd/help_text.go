package cmd

import "strings"

func rootLongHelp() string {
	return strings.TrimSpace(`
校验翻译文件占位符一致性的 CLI。

做什么：
- 以源语言文件（默认 zh-cn.json）为基准
- 检查目录下其余 .json 翻译文件是否保留了同样的占位符、同样的次数
- 缺键 / 值不是字符串 → 警告（不影响退出码）
- 占位符缺少 / 多余 / 次数不一致 → 错误（退出码 1）

占位符识别规则：
- 主形式：{name}（大括号内不允许再嵌套大括号）
- \{name}、{{name}、{name}} 视为字面量写法，不算占位符
- 大括号内两侧空白会被去掉，{ } 不算占位符
- 关键字前缀形式：--keyword-prefix arg 时，arg0 / arg12 也算占位符
  （{arg0} 已由主形式计入，不会重复计数）

扫描范围：
- 仅扫描 --dir 指定的单层目录（默认当前目录）
- 仅处理扩展名恰为 .json 的普通文件（区分大小写）
- 固定忽略：package.json / package-lock.json / npm-shrinkwrap.json /
  composer.json / bower.json
- --ignore 可追加忽略项，支持 glob（如 backup-*.json）

源文件解析顺序（未传 --source 时）：
zh-cn.json → zh-CN.json → zh_cn.json → zh_CN.json → zh.json

配置来源优先级：命令行参数 > SYL_LC_* 环境变量 > --config 配置文件

输出格式（--format）：
- text：人类可读报告（默认）
- ndjson / json：事件流（meta / mismatch / warning / file_ok / summary）

退出码：
- 0 全部通过（允许有警告）
- 1 存在占位符不一致，或参数 / 源文件 / JSON 解析等任何错误
`)
}

func rootExampleHelp() string {
	return strings.TrimSpace(`
  # 检查当前目录，源文件取默认 zh-cn.json
  syl-localecheck

  # 指定目录与源文件
  syl-localecheck --dir ./locales --source en.json

  # 忽略部分文件（可重复传，也可逗号分隔）
  syl-localecheck --dir ./locales --ignore draft.json --ignore "backup-*.json"

  # 识别 arg0 / arg1 这类裸编号占位符
  syl-localecheck --dir ./locales --keyword-prefix arg,param

  # 纯环境变量
  SYL_LC_DIR=./locales SYL_LC_KEYWORD_PREFIXES=arg syl-localecheck

  # 机器可读输出
  syl-localecheck --dir ./locales --format ndjson
`)
}
