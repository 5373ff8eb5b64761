// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package order maintains the total order over circuit variables used to
// decide which variable a BDD node branches on. It plays the role the
// teacher library gives to the pair varset/level2var in varnum.go, except
// that here the order is its own value, mutated independently of the BDD
// kernel by the sifting driver rather than fixed once at SetVarnum time.
package order

import "fmt"

// Order is an ordered sequence of variables together with a reverse lookup
// from variable name to its position (its "index" or "level" in the BDD
// kernel's vocabulary).
type Order struct {
	vars  []string
	index map[string]int
}

// New builds an Order from a sequence of variable names, in the order
// given. Names are expected to be unique; New does not check, and the
// netlist parser does not de-duplicate declarations, so a repeated name
// keeps both slots and IndexOf reports its last position.
func New(vars []string) *Order {
	o := &Order{
		vars: append([]string(nil), vars...),
	}
	o.reindex()
	return o
}

func (o *Order) reindex() {
	o.index = make(map[string]int, len(o.vars))
	for i, v := range o.vars {
		o.index[v] = i
	}
}

// Len returns the number of variables in the order.
func (o *Order) Len() int {
	return len(o.vars)
}

// VarAt returns the variable at position i.
func (o *Order) VarAt(i int) string {
	return o.vars[i]
}

// IndexOf returns the position of v in the order, and false if v is not a
// known variable.
func (o *Order) IndexOf(v string) (int, bool) {
	i, ok := o.index[v]
	return i, ok
}

// Swap exchanges the variables at positions i and j and rebuilds the
// reverse index. Every mutation of the order must go through a method on
// Order precisely so that the index can never drift out of sync with vars,
// per the invariant this component is responsible for (§4.2).
func (o *Order) Swap(i, j int) {
	o.vars[i], o.vars[j] = o.vars[j], o.vars[i]
	o.reindex()
}

// Snapshot returns a copy of the current variable sequence, suitable for
// a later call to Restore.
func (o *Order) Snapshot() []string {
	return append([]string(nil), o.vars...)
}

// Restore replaces the variable sequence wholesale (e.g. to undo an
// exploratory sequence of Swaps) and rebuilds the reverse index.
func (o *Order) Restore(vars []string) {
	o.vars = append([]string(nil), vars...)
	o.reindex()
}

// MoveTo removes v from its current position and reinserts it at pos,
// shifting the intervening variables, then rebuilds the reverse index.
// Used by the sifting driver to commit the best position found for a
// variable (§4.6 step 5).
func (o *Order) MoveTo(v string, pos int) error {
	from, ok := o.index[v]
	if !ok {
		return fmt.Errorf("order: unknown variable %q", v)
	}
	if pos < 0 || pos >= len(o.vars) {
		return fmt.Errorf("order: position %d out of range [0,%d)", pos, len(o.vars))
	}
	vars := o.vars
	vars = append(vars[:from], vars[from+1:]...)
	tail := append([]string{v}, vars[pos:]...)
	vars = append(vars[:pos], tail...)
	o.vars = vars
	o.reindex()
	return nil
}

// String renders the order as a comma-separated list, for diagnostics.
func (o *Order) String() string {
	s := ""
	for i, v := range o.vars {
		if i > 0 {
			s += ","
		}
		s += v
	}
	return s
}
