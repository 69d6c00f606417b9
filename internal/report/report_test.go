package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"digitchain/internal/search"
)

func sample() *Report {
	return &Report{
		Digits: []int{1, 2, 3, 4},
		N:      3,
		Expressions: []Entry{
			{1, "((1 + 2) + 3) - 4"},
			{2, "(1 * 2) * (4 - 3)"},
			{3, "(4 * (1 + 3)) / 2 - 5"},
		},
		DistinctTargets: 7,
		MaxTarget:       36,
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample(), Text, nil); err != nil {
		t.Fatal(err)
	}
	want := "Set of 4 digits producing longest consecutive chain of arithmetic expressions targets:\n" +
		"  digits = 1 < 2 < 3 < 4\n" +
		"Greatest consecutive value reached (1 to `n`):\n" +
		"  n = 3\n" +
		"Expressions producing targets:\n" +
		"   1 = ((1 + 2) + 3) - 4\n" +
		"   2 = (1 * 2) * (4 - 3)\n" +
		"   3 = (4 * (1 + 3)) / 2 - 5\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("text report mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteTextWideTargetsAndLeaders(t *testing.T) {
	r := &Report{Digits: []int{1, 2, 5, 8}, N: 12}
	for i := 1; i <= 12; i++ {
		r.Expressions = append(r.Expressions, Entry{i, "x"})
	}
	r.Leaders = []Leader{{"1258", 51}, {"1236", 28}}
	var buf bytes.Buffer
	if err := Write(&buf, r, Text, &Theme{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, line := range []string{"   9 = x\n", "  10 = x\n", "Best digit sets:\n  1258  n = 51\n  1236  n = 28\n"} {
		if !strings.Contains(out, line) {
			t.Errorf("report missing %q:\n%s", line, out)
		}
	}
}

func TestWriteTextStyled(t *testing.T) {
	var buf bytes.Buffer
	th := NewTheme(&buf, ColorAlways)
	if !th.Enabled() {
		t.Fatal("ColorAlways theme is disabled")
	}
	if err := Write(&buf, sample(), Text, th); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("styled report has no escape sequences:\n%q", out)
	}
	if !strings.Contains(out, "   2 = (1 * 2) * (4 - 3)\n") {
		t.Errorf("styled report lost expression lines:\n%q", out)
	}
}

func TestNewThemeAutoNonTerminal(t *testing.T) {
	if NewTheme(&bytes.Buffer{}, ColorAuto).Enabled() {
		t.Error("auto theme enabled for a buffer")
	}
	if NewTheme(&bytes.Buffer{}, ColorNever).Enabled() {
		t.Error("never theme enabled")
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample(), JSON, nil); err != nil {
		t.Fatal(err)
	}
	var got Report
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if diff := cmp.Diff(sample(), &got); diff != "" {
		t.Errorf("json report mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(buf.String(), `"distinct_targets": 7`) {
		t.Errorf("json missing distinct_targets:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "leaders") {
		t.Errorf("empty leaders should be omitted:\n%s", buf.String())
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sample(), YAML, nil); err != nil {
		t.Fatal(err)
	}
	var got Report
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if diff := cmp.Diff(sample(), &got); diff != "" {
		t.Errorf("yaml report mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(buf.String(), "max_target: 36\n") {
		t.Errorf("yaml missing max_target:\n%s", buf.String())
	}
}

func TestParseFormatAndColorMode(t *testing.T) {
	if f, err := ParseFormat("YAML"); err != nil || f != YAML {
		t.Errorf("ParseFormat(YAML) = %q, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) succeeded")
	}
	if m, err := ParseColorMode("Never"); err != nil || m != ColorNever {
		t.Errorf("ParseColorMode(Never) = %q, %v", m, err)
	}
	if _, err := ParseColorMode("sometimes"); err == nil {
		t.Error("ParseColorMode(sometimes) succeeded")
	}
}

func TestFromOutcome(t *testing.T) {
	o := search.Enumerate(search.Digits{1, 2, 3, 4})
	r := FromOutcome(o)
	if r.N != 28 || len(r.Expressions) != 28 {
		t.Fatalf("N = %d with %d expressions, want 28", r.N, len(r.Expressions))
	}
	if r.DistinctTargets != 31 || r.MaxTarget != 36 {
		t.Errorf("distinct = %d max = %d, want 31 and 36", r.DistinctTargets, r.MaxTarget)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4}, r.Digits); diff != "" {
		t.Errorf("digits (-want +got):\n%s", diff)
	}
	for _, e := range r.Expressions {
		if err := search.Verify(o.Digits, e.Target, e.Expression); err != nil {
			t.Error(err)
		}
	}
}

func TestFromResultLeaders(t *testing.T) {
	res := &search.Result{
		Digits: search.Digits{1, 2, 3, 4},
		Outcomes: []*search.Outcome{
			{Digits: search.Digits{1, 2, 3, 4}, Targets: search.Table{1: "a", 2: "b"}},
			{Digits: search.Digits{1, 2, 3, 5}, Targets: search.Table{1: "c"}},
		},
	}
	res.N = 2
	r := FromResult(res, 5)
	want := []Leader{{"1234", 2}, {"1235", 1}}
	if diff := cmp.Diff(want, r.Leaders); diff != "" {
		t.Errorf("leaders (-want +got):\n%s", diff)
	}
	if r.N != 2 || r.Expressions[1].Expression != "b" {
		t.Errorf("unexpected report %+v", r)
	}
	if got := FromResult(res, 0).Leaders; got != nil {
		t.Errorf("leaders without top = %v", got)
	}
}
