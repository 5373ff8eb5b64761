// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package printer renders a BDD as a depth-first, glyph-drawn tree (§6, §11).
// Grounded in the teacher's stdio.go printing family — PrintSet, PrintDot,
// PrintAut all write to an io.Writer and delegate to a private recursive
// helper — but implementing this format's own preorder/glyph contract
// rather than the teacher's tabwriter, DOT, or AUT output shapes.
package printer

import (
	"fmt"
	"io"

	"github.com/dalzilio/robddc/internal/bdd"
	"github.com/dalzilio/robddc/internal/order"
)

// Print writes the BDD rooted at n to w as a preorder tree: low before
// high, branch-drawn with "├── " for a non-last sibling and "└── " for the
// last, indentation continued with "│   " under a non-last parent and
// "    " under a last parent. Internal nodes print the order's variable
// name for their level; terminals print "0" or "1".
func Print(w io.Writer, k *bdd.Kernel, n bdd.Node, ord *order.Order) {
	label(w, k, n, ord)
	fmt.Fprintln(w)
	printChildren(w, k, n, ord, "")
}

func printChildren(w io.Writer, k *bdd.Kernel, n bdd.Node, ord *order.Order, prefix string) {
	if k.IsTerminal(n) {
		return
	}
	low, high := k.Low(n), k.High(n)
	printChild(w, k, low, ord, prefix, false)
	printChild(w, k, high, ord, prefix, true)
}

func printChild(w io.Writer, k *bdd.Kernel, n bdd.Node, ord *order.Order, prefix string, last bool) {
	branch, next := "├── ", prefix+"│   "
	if last {
		branch, next = "└── ", prefix+"    "
	}
	fmt.Fprint(w, prefix, branch)
	label(w, k, n, ord)
	fmt.Fprintln(w)
	printChildren(w, k, n, ord, next)
}

func label(w io.Writer, k *bdd.Kernel, n bdd.Node, ord *order.Order) {
	if k.IsTerminal(n) {
		if k.Value(n) {
			fmt.Fprint(w, "1")
		} else {
			fmt.Fprint(w, "0")
		}
		return
	}
	fmt.Fprint(w, ord.VarAt(int(k.Level(n))))
}
