// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "testing"

// ithvar builds the trivial BDD for variable at level lvl: low=False,
// high=True. This is the same shape the circuit compiler builds for every
// netlist input (§4.4 step 1).
func ithvar(k *Kernel, lvl int32) Node {
	return k.MakeNode(lvl, False, True)
}

func TestMakeNodeReduction(t *testing.T) {
	k := NewKernel()
	// (R1): a node with equal low and high children collapses to the child.
	if n := k.MakeNode(0, True, True); n != True {
		t.Errorf("MakeNode(0, True, True) = %d, want True", n)
	}
	// (R2): two calls with the same (level, low, high) return the same
	// identity.
	a1 := ithvar(k, 0)
	a2 := ithvar(k, 0)
	if a1 != a2 {
		t.Errorf("MakeNode hash-consing failed: got %d and %d for identical triples", a1, a2)
	}
}

func TestOrderingInvariant(t *testing.T) {
	k := NewKernel()
	a := ithvar(k, 0)
	b := ithvar(k, 1)
	n := k.MakeNode(0, False, b)
	if k.IsTerminal(k.High(n)) {
		t.Fatalf("expected an internal high child")
	}
	if k.Level(k.High(n)) <= k.Level(n) {
		t.Errorf("ordering invariant violated: child level %d <= parent level %d", k.Level(k.High(n)), k.Level(n))
	}
	_ = a
}

func TestNotInvolution(t *testing.T) {
	k := NewKernel()
	a := ithvar(k, 0)
	b := ithvar(k, 1)
	f := k.Apply(a, b, XOR)
	if got := k.Not(k.Not(f)); got != f {
		t.Errorf("Not(Not(f)) = %d, want %d", got, f)
	}
}

// TestCanonicity checks the scenario described in §8: xor(a,b) and
// or(and(a, not b), and(not a, b)) must share a root under the same order.
func TestCanonicity(t *testing.T) {
	k := NewKernel()
	a := ithvar(k, 0)
	b := ithvar(k, 1)

	direct := k.Apply(a, b, XOR)

	notB := k.Not(b)
	notA := k.Not(a)
	lhs := k.Apply(a, notB, AND)
	rhs := k.Apply(notA, b, AND)
	expanded := k.Apply(lhs, rhs, OR)

	if direct != expanded {
		t.Errorf("xor(a,b) = %d, but expanded form = %d; expected shared root", direct, expanded)
	}
}

// TestOperatorSemantics is exhaustive over all 4 assignments to two
// variables, for each recognized operator (§8).
func TestOperatorSemantics(t *testing.T) {
	k := NewKernel()
	a := ithvar(k, 0)
	b := ithvar(k, 1)

	ops := []Operator{AND, OR, XOR, NAND, NOR}
	for _, op := range ops {
		f := k.Apply(a, b, op)
		for av := 0; av < 2; av++ {
			for bv := 0; bv < 2; bv++ {
				got := evalNode(k, f, map[int32]bool{0: av == 1, 1: bv == 1})
				want := op.eval(av == 1, bv == 1)
				if got != want {
					t.Errorf("%s(%v,%v) = %v, want %v", op, av == 1, bv == 1, got, want)
				}
			}
		}
	}
}

// evalNode descends low/high according to assignment, per the descending
// evaluation procedure in §8.
func evalNode(k *Kernel, n Node, assignment map[int32]bool) bool {
	for !k.IsTerminal(n) {
		if assignment[k.Level(n)] {
			n = k.High(n)
		} else {
			n = k.Low(n)
		}
	}
	return k.Value(n)
}

func TestConstantFold(t *testing.T) {
	k := NewKernel()
	a := ithvar(k, 0)
	if got := k.Apply(a, a, XOR); got != False {
		t.Errorf("xor(a,a) = %d, want False", got)
	}
}

func TestApplyMemoization(t *testing.T) {
	k := NewKernel()
	a := ithvar(k, 0)
	b := ithvar(k, 1)
	first := k.Apply(a, b, AND)
	sizeAfterFirst := k.Size()
	second := k.Apply(a, b, AND)
	if first != second {
		t.Fatalf("Apply is not deterministic: %d != %d", first, second)
	}
	if k.Size() != sizeAfterFirst {
		t.Errorf("repeated Apply grew the node table: %d -> %d", sizeAfterFirst, k.Size())
	}
}

func TestResetMintsFreshTerminals(t *testing.T) {
	k := NewKernel()
	a := ithvar(k, 0)
	_ = a
	sizeBefore := k.Size()
	k.Reset()
	if k.Size() != 2 {
		t.Errorf("Size() after Reset = %d, want 2", k.Size())
	}
	if sizeBefore < 2 {
		t.Fatalf("sanity: expected at least 2 nodes before reset")
	}
}
