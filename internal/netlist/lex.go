// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package netlist

import (
	"bufio"
	"io"
	"strings"
)

// Token is a lexical unit produced while scanning one line of netlist
// source: a keyword, identifier, gate-type keyword, or a piece of
// punctuation (",", "(", ")", ";"). It carries the source line number so
// diagnostics can point back at the offending line (§3 "Token").
type Token struct {
	Text string
	Line int
}

const endmoduleKeyword = "endmodule"

// isPunct reports whether r is one of the punctuation runes the format
// uses to separate identifiers (§6).
func isPunct(r byte) bool {
	switch r {
	case ',', '(', ')', ';':
		return true
	}
	return false
}

// tokenize splits one already comment-stripped, trimmed line into tokens,
// keeping punctuation as single-character tokens of its own and collapsing
// runs of whitespace between identifiers.
func tokenize(line string, lineNo int) []Token {
	var toks []Token
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, Token{Text: cur.String(), Line: lineNo})
			cur.Reset()
		}
	}
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == ' ' || c == '\t':
			flush()
		case isPunct(c):
			flush()
			toks = append(toks, Token{Text: string(c), Line: lineNo})
		default:
			cur.WriteByte(c)
		}
	}
	flush()
	return toks
}

// Scanner yields one tokenized, comment-stripped, non-empty line at a time
// from a netlist source, stopping at the line containing "endmodule" (§6).
// This plays the role the teacher's bufio-based readers play in stdio.go,
// generalized from printing to reading.
type Scanner struct {
	s    *bufio.Scanner
	line int
	done bool
}

// NewScanner wraps r for line-oriented scanning.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{s: bufio.NewScanner(r)}
}

// Next returns the tokens for the next meaningful line, or ok=false once
// the source is exhausted or an "endmodule" line has been consumed.
func (sc *Scanner) Next() (toks []Token, lineNo int, ok bool) {
	if sc.done {
		return nil, 0, false
	}
	for sc.s.Scan() {
		sc.line++
		raw := sc.s.Text()
		if idx := strings.Index(raw, "//"); idx >= 0 {
			raw = raw[:idx]
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		toks := tokenize(raw, sc.line)
		for _, t := range toks {
			if t.Text == endmoduleKeyword {
				sc.done = true
				return nil, 0, false
			}
		}
		return toks, sc.line, true
	}
	sc.done = true
	return nil, 0, false
}

// Err reports any error encountered by the underlying reader, other than
// io.EOF.
func (sc *Scanner) Err() error {
	return sc.s.Err()
}
