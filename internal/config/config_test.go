package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("LC_SOURCE", "zh-cn.json")
	src := "source: ${LC_SOURCE}\ndir: ${LC_DIR:-./locales}\n"
	got, err := expandEnv(src)
	if err != nil {
		t.Fatalf("expand env failed: %v", err)
	}
	if got == src {
		t.Fatalf("expected expanded output")
	}
}

func TestExpandEnvUnsetNoDefault(t *testing.T) {
	if _, err := expandEnv("dir: ${SURELY_NOT_SET_ANYWHERE_42}"); err == nil {
		t.Fatalf("expected error for unset variable")
	}
}

func TestLoad(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "c.yaml")
	body := "source: zh-cn.json\ndir: ./locales\nignore:\n  - draft.json\nkeyword_prefixes:\n  - arg\n  - param\n"
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Source != "zh-cn.json" || cfg.Dir != "./locales" {
		t.Fatalf("unexpected config: %#v", cfg)
	}
	if !reflect.DeepEqual(cfg.KeywordPrefixes, []string{"arg", "param"}) {
		t.Fatalf("unexpected prefixes: %#v", cfg.KeywordPrefixes)
	}
}

func TestLoadUnknownField(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, "c.yaml")
	if err := os.WriteFile(p, []byte("unknown_field: 1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(p); err == nil {
		t.Fatalf("expected unknown field error")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error")
	}
}
