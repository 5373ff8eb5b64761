// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package compile evaluates a parsed netlist against a BDD kernel and
// variable order, binding each gate's output to a node (§4.4). It plays the
// role the teacher library leaves entirely to a caller — hkernel.go only
// ever combines nodes the caller already built — generalized here into the
// one thing this rewrite's domain actually needs: folding a circuit's gates
// through Apply/Not in dependency order.
package compile

import (
	"github.com/sirupsen/logrus"

	"github.com/dalzilio/robddc/internal/bdd"
	"github.com/dalzilio/robddc/internal/netlist"
	"github.com/dalzilio/robddc/internal/order"
)

// Result is the outcome of compiling one netlist: every signal's binding
// and the chosen root (the first declared output, §4.4 step 4). Compile-time
// diagnostics (unknown gate types, missing signals, cycles) are logged
// directly through log rather than accumulated here, since §7 routes every
// non-fatal diagnostic to the structured logger.
type Result struct {
	Signals map[string]bdd.Node
	Root    bdd.Node
}

// Compile binds every input to a fresh variable node at its position in ord,
// then evaluates nl's gates in dependency order, folding multi-input gates
// left to right with Apply and unary "not" gates with Not (§4.4 steps 1-3).
func Compile(k *bdd.Kernel, ord *order.Order, nl *netlist.Netlist, log logrus.FieldLogger) Result {
	signals := make(map[string]bdd.Node, len(nl.Inputs)+len(nl.Gates))
	for _, in := range nl.Inputs {
		level, ok := ord.IndexOf(in)
		if !ok {
			// Not declared in the order: this can only happen if the
			// driver's committed order and the netlist's input list have
			// drifted apart, which the rebuild orchestrator prevents by
			// construction (§4.5 step 4).
			level = ord.Len()
		}
		signals[in] = k.MakeNode(int32(level), bdd.False, bdd.True)
	}

	pending := append([]netlist.Gate(nil), nl.Gates...)
	for len(pending) > 0 {
		var next []netlist.Gate
		progress := false
		for _, g := range pending {
			if _, done := signals[g.Output]; done {
				continue
			}
			if !allBound(signals, g.Inputs) {
				next = append(next, g)
				continue
			}
			signals[g.Output] = evalGate(k, g, signals, log)
			progress = true
		}
		if !progress && len(next) > 0 {
			// A full scan made no progress: either a combinational cycle or
			// a signal that is never produced. Best-effort recovery (§4.4
			// step 3, §7 kind 4, §9): evaluate the remaining gates anyway,
			// substituting ⊥ for anything still unbound.
			for _, g := range next {
				log.WithField("gate", g.Output).
					WithField("line", g.Line).
					Warn("netlist cycle or unresolved dependency; evaluating with best-effort bindings")
				signals[g.Output] = evalGate(k, g, signals, log)
			}
			next = nil
		}
		pending = next
	}

	var root bdd.Node
	if len(nl.Outputs) > 0 {
		root = signals[nl.Outputs[0]]
	} else {
		// Empty output list (§7 kind 5): the root is ⊥.
		root = bdd.False
	}

	return Result{Signals: signals, Root: root}
}

func allBound(signals map[string]bdd.Node, inputs []string) bool {
	for _, in := range inputs {
		if _, ok := signals[in]; !ok {
			return false
		}
	}
	return true
}

func evalGate(k *bdd.Kernel, g netlist.Gate, signals map[string]bdd.Node, log logrus.FieldLogger) bdd.Node {
	bound := func(name string) bdd.Node {
		n, ok := signals[name]
		if !ok {
			log.WithField("signal", name).
				WithField("gate", g.Output).
				WithField("line", g.Line).
				Warn("missing input signal; substituting the false terminal")
			return bdd.False
		}
		return n
	}

	switch lower(g.Type) {
	case "not":
		if len(g.Inputs) == 0 {
			return bdd.False
		}
		return k.Not(bound(g.Inputs[0]))
	default:
		op, ok := bdd.OperatorByName(g.Type)
		if !ok {
			log.WithField("type", g.Type).
				WithField("gate", g.Output).
				WithField("line", g.Line).
				Warn("unknown gate type; substituting the false terminal")
			return bdd.False
		}
		if len(g.Inputs) == 0 {
			return bdd.False
		}
		res := bound(g.Inputs[0])
		for _, in := range g.Inputs[1:] {
			res = k.Apply(res, bound(in), op)
		}
		return res
	}
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}
