// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package netlist lexes and parses the line-oriented textual netlist
// format described in §6, and holds the resulting in-memory model (§3,
// §4.3). It is the Go-native, completed replacement for the reference
// VerilogParser sketched in original_source/robdd.cpp: the same
// comment-stripping, comma-splitting structure, but with gate parsing
// actually implemented (the reference's parseGate never finishes splitting
// its signal list, and its early `if (parentPos != npos) return;` guard
// means no gate line in the reference is ever parsed at all).
package netlist

// Gate is a triple (type, output, inputs) as declared in the netlist
// source (§3). Type is stored case-preserved, as written; matching against
// the recognized gate types is case-insensitive and happens in the
// compiler (internal/compile), not here.
type Gate struct {
	Type    string
	Output  string
	Inputs  []string
	Line    int
}

// Netlist is the passive record the parser produces: input list, output
// list, gate list (§3, §4.3). Wire and Reg declarations have no semantic
// effect beyond existence (§6) but are kept so diagnostics and future
// tooling can report on unused or undeclared signals.
type Netlist struct {
	Inputs  []string
	Outputs []string
	Wires   []string
	Gates   []Gate
}
