package locale

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(`{}`), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestResolveSourceExplicit(t *testing.T) {
	tmp := t.TempDir()
	writeFiles(t, tmp, "base.json")
	got, err := ResolveSource(tmp, "base.json")
	if err != nil || got != "base.json" {
		t.Fatalf("unexpected: %q %v", got, err)
	}
}

func TestResolveSourceExplicitMissing(t *testing.T) {
	if _, err := ResolveSource(t.TempDir(), "nope.json"); err == nil {
		t.Fatalf("expected error for missing explicit source")
	}
}

func TestResolveSourceDefaultOrder(t *testing.T) {
	tmp := t.TempDir()
	writeFiles(t, tmp, "zh_CN.json", "zh.json")
	got, err := ResolveSource(tmp, "")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if got != "zh_CN.json" {
		t.Fatalf("expected first existing candidate, got %q", got)
	}
}

func TestResolveSourceNoCandidate(t *testing.T) {
	tmp := t.TempDir()
	writeFiles(t, tmp, "en.json")
	_, err := ResolveSource(tmp, "")
	if err == nil {
		t.Fatalf("expected error")
	}
	// 报错需列出全部探测过的候选名
	for _, name := range DefaultSourceCandidates {
		if !strings.Contains(err.Error(), name) {
			t.Fatalf("error should mention %s: %v", name, err)
		}
	}
}

func TestDiscoverTargets(t *testing.T) {
	tmp := t.TempDir()
	writeFiles(t, tmp, "zh-cn.json", "en.json", "fr.json", "package.json", "notes.txt", "UPPER.JSON", "backup-1.json")
	if err := os.Mkdir(filepath.Join(tmp, "sub.json"), 0o755); err != nil {
		t.Fatal(err)
	}
	got, err := DiscoverTargets(tmp, "zh-cn.json", append(BuiltinIgnores, "backup-*.json"))
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"en.json", "fr.json"}) {
		t.Fatalf("unexpected targets: %#v", got)
	}
}

func TestDiscoverTargetsBadDir(t *testing.T) {
	if _, err := DiscoverTargets(filepath.Join(t.TempDir(), "missing"), "zh-cn.json", nil); err == nil {
		t.Fatalf("expected error")
	}
}
