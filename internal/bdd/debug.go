// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build debug

package bdd

// checkOrdering enforces the MakeNode precondition (§4.1, §7 kind 6): every
// non-terminal child must have a level strictly greater than the level of
// the node being built. This is an internal invariant violation, not a
// user error, so — following the teacher's own +build debug convention in
// debug.go — it only panics in binaries built with the debug tag; a
// production build trusts its own callers (the compiler and sifting
// driver), since they are the only callers and both already respect the
// precondition by construction.
func checkOrdering(k *Kernel, level int32, low, high Node) {
	if !k.IsTerminal(low) && k.Level(low) <= level {
		panic("bdd: MakeNode precondition violated by low child")
	}
	if !k.IsTerminal(high) && k.Level(high) <= level {
		panic("bdd: MakeNode precondition violated by high child")
	}
}
