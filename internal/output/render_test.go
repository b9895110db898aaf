package output

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"syl-localecheck/internal/check"
	"syl-localecheck/internal/placeholder"
)

func TestRenderFailure(t *testing.T) {
	buf := &bytes.Buffer{}
	ok := Render(buf, sampleReport())
	if ok {
		t.Fatalf("expected not ok")
	}
	out := buf.String()
	for _, want := range []string{
		"源文件：zh-cn.json",
		"已检查 3 个文件",
		"fr.json",
		"[greet]",
		"缺少：name",
		"多余：nom",
		"期望：name",
		"实际：nom",
		"ja.json",
		"目标缺少该键",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderOK(t *testing.T) {
	buf := &bytes.Buffer{}
	rep := &check.Report{OK: true, Source: "zh-cn.json", Checked: []string{"en.json"}}
	if !Render(buf, rep) {
		t.Fatalf("expected ok")
	}
	if !strings.Contains(buf.String(), "占位符检查通过") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}

func TestRenderCountMismatch(t *testing.T) {
	rep := sampleReport()
	rep.Failures[0].Errors[0].Diff.CountMismatch = []placeholder.CountMismatch{
		{Token: "n", Expected: 2, Actual: 1},
	}
	buf := &bytes.Buffer{}
	Render(buf, rep)
	if !strings.Contains(buf.String(), "次数不一致：n（期望 2，实际 1）") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}

func TestRenderWarningTruncation(t *testing.T) {
	var warnings []check.KeyWarning
	for i := 0; i < 8; i++ {
		warnings = append(warnings, check.KeyWarning{Key: fmt.Sprintf("key%02d", i), Kind: check.WarnMissingKey})
	}
	rep := &check.Report{
		OK:           true,
		Source:       "zh-cn.json",
		Checked:      []string{"ko.json"},
		WarningsOnly: []check.FileOutcome{{File: "ko.json", Warnings: warnings}},
	}
	buf := &bytes.Buffer{}
	Render(buf, rep)
	out := buf.String()
	if !strings.Contains(out, "警告 8 条") {
		t.Fatalf("missing warning count:\n%s", out)
	}
	if !strings.Contains(out, "key04") || strings.Contains(out, "key05") {
		t.Fatalf("expected first 5 warnings only:\n%s", out)
	}
	if !strings.Contains(out, "……（共 8 条）") {
		t.Fatalf("missing truncation marker:\n%s", out)
	}
}

func TestRenderNonStringWarning(t *testing.T) {
	rep := &check.Report{
		OK:      true,
		Source:  "zh-cn.json",
		Checked: []string{"de.json"},
		WarningsOnly: []check.FileOutcome{{
			File:     "de.json",
			Warnings: []check.KeyWarning{{Key: "x", Kind: check.WarnNonString, TypeName: "number"}},
		}},
	}
	buf := &bytes.Buffer{}
	Render(buf, rep)
	if !strings.Contains(buf.String(), "值不是字符串（number）") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}

func TestLanguageLabel(t *testing.T) {
	if got := languageLabel("en.json"); got == "" {
		t.Fatalf("expected label for en.json")
	}
	if got := languageLabel("not-a-lang-tag!!.json"); got != "" {
		t.Fatalf("expected empty label, got %q", got)
	}
}
