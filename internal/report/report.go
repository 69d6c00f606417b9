// Package report renders search results as text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"digitchain/internal/search"
)

// Format selects the report encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON, YAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown report format %q: must be text, json or yaml", s)
}

// Entry is one line of the chain: the target and the expression producing it.
type Entry struct {
	Target     int    `json:"target" yaml:"target"`
	Expression string `json:"expression" yaml:"expression"`
}

// Leader summarizes one digit set in the ranking.
type Leader struct {
	Digits string `json:"digits" yaml:"digits"`
	N      int    `json:"n" yaml:"n"`
}

// Report is the data printed at the end of a run.
type Report struct {
	Digits          []int    `json:"digits" yaml:"digits"`
	N               int      `json:"n" yaml:"n"`
	Expressions     []Entry  `json:"expressions" yaml:"expressions"`
	DistinctTargets int      `json:"distinct_targets" yaml:"distinct_targets"`
	MaxTarget       int      `json:"max_target" yaml:"max_target"`
	Leaders         []Leader `json:"leaders,omitempty" yaml:"leaders,omitempty"`
}

// FromOutcome builds a report for a single digit set.
func FromOutcome(o *search.Outcome) *Report {
	r := &Report{
		Digits:          append([]int(nil), o.Digits[:]...),
		N:               o.RunLength(),
		DistinctTargets: o.Distinct(),
		MaxTarget:       o.Max(),
	}
	for i, e := range o.Chain() {
		r.Expressions = append(r.Expressions, Entry{Target: i + 1, Expression: e})
	}
	return r
}

// FromResult builds a report for the winner of a search, listing the top
// leaders when top > 0.
func FromResult(res *search.Result, top int) *Report {
	var r *Report
	if best := res.Best(); best != nil {
		r = FromOutcome(best)
	} else {
		r = &Report{}
	}
	if top > 0 {
		for _, o := range res.Leaders(top) {
			r.Leaders = append(r.Leaders, Leader{Digits: o.Digits.Key(), N: o.RunLength()})
		}
	}
	return r
}

// Write encodes r to w in the given format. th styles text output and may be
// nil.
func Write(w io.Writer, r *Report, f Format, th *Theme) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case Text, "":
		return writeText(w, r, th)
	}
	return fmt.Errorf("unknown report format %q", f)
}

func writeText(w io.Writer, r *Report, th *Theme) error {
	digits := make([]string, len(r.Digits))
	for i, d := range r.Digits {
		digits[i] = fmt.Sprint(d)
	}

	var sb strings.Builder
	sb.WriteString(th.heading("Set of 4 digits producing longest consecutive chain of arithmetic expressions targets:"))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "  digits = %s\n", th.value(strings.Join(digits, " < ")))
	sb.WriteString(th.heading("Greatest consecutive value reached (1 to `n`):"))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "  n = %s\n", th.value(fmt.Sprint(r.N)))
	sb.WriteString(th.heading("Expressions producing targets:"))
	sb.WriteString("\n")
	for _, e := range r.Expressions {
		fmt.Fprintf(&sb, "  %2d = %s\n", e.Target, e.Expression)
	}
	if len(r.Leaders) > 0 {
		sb.WriteString(th.heading("Best digit sets:"))
		sb.WriteString("\n")
		for _, l := range r.Leaders {
			fmt.Fprintf(&sb, "  %s  n = %d\n", l.Digits, l.N)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
