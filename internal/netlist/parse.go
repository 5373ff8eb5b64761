// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package netlist

import (
	"io"
	"strings"
)

// Parse reads a netlist source and returns the populated model together
// with any diagnostics collected along the way (§7 kind 1). The returned
// error is non-nil only for an I/O failure reading r itself; a malformed
// netlist line is reported as a Diagnostic and parsing continues with the
// next line, per §10.
func Parse(r io.Reader) (*Netlist, []Diagnostic, error) {
	nl := &Netlist{}
	var diags []Diagnostic
	sc := NewScanner(r)
	for {
		toks, lineNo, ok := sc.Next()
		if !ok {
			break
		}
		switch strings.ToLower(toks[0].Text) {
		case "input":
			nl.Inputs = append(nl.Inputs, identifiers(toks[1:])...)
		case "output":
			nl.Outputs = append(nl.Outputs, identifiers(toks[1:])...)
		case "wire", "reg":
			nl.Wires = append(nl.Wires, identifiers(toks[1:])...)
		default:
			if g, ok := parseGate(toks, lineNo); ok {
				nl.Gates = append(nl.Gates, g)
			} else {
				diags = append(diags, Diagnostic{
					Kind: MalformedLine,
					Line: lineNo,
					Text: rawText(toks),
				})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nl, diags, err
	}
	return nl, diags, nil
}

// identifiers filters a declaration's remaining tokens down to the
// comma-separated identifier list, dropping punctuation (§6 "Trailing ';'
// on declarations is ignored").
func identifiers(toks []Token) []string {
	var ids []string
	for _, t := range toks {
		switch t.Text {
		case ",", ";":
			continue
		}
		ids = append(ids, t.Text)
	}
	return ids
}

// parseGate recognizes the "TYPE (out, in1, in2, ...)" shape (§6), with an
// optional instance name between TYPE and "(" ("and g1 (y, a, b)"), which
// is skipped. Unlike the reference VerilogParser in original_source/robdd.cpp
// — whose parseGate bails out immediately on finding a "(" and never reaches
// its own signal-splitting loop — this actually extracts the output and
// input signal names.
func parseGate(toks []Token, lineNo int) (Gate, bool) {
	open := 1
	if len(toks) > 2 && !isPunct(toks[1].Text[0]) && toks[2].Text == "(" {
		open = 2
	}
	if len(toks) < open+3 || toks[open].Text != "(" {
		return Gate{}, false
	}
	closeIdx := -1
	for i := open + 1; i < len(toks); i++ {
		if toks[i].Text == ")" {
			closeIdx = i
			break
		}
	}
	if closeIdx == -1 {
		return Gate{}, false
	}
	ids := identifiers(toks[open+1 : closeIdx])
	if len(ids) == 0 {
		return Gate{}, false
	}
	return Gate{
		Type:   toks[0].Text,
		Output: ids[0],
		Inputs: ids[1:],
		Line:   lineNo,
	}, true
}

func rawText(toks []Token) string {
	parts := make([]string, len(toks))
	for i, t := range toks {
		parts[i] = t.Text
	}
	return strings.Join(parts, " ")
}
