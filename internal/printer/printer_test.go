// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dalzilio/robddc/internal/bdd"
	"github.com/dalzilio/robddc/internal/order"
)

func TestPrintThreeLevelTreeMatchesGoldenGlyphs(t *testing.T) {
	k := bdd.NewKernel()
	ord := order.New([]string{"a", "b"})
	b := k.MakeNode(1, bdd.False, bdd.True)
	root := k.MakeNode(0, bdd.False, b)

	var buf strings.Builder
	Print(&buf, k, root, ord)

	want := "a\n├── 0\n└── b\n    ├── 0\n    └── 1\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintTerminalRoot(t *testing.T) {
	k := bdd.NewKernel()
	ord := order.New(nil)

	var buf strings.Builder
	Print(&buf, k, bdd.False, ord)
	require.Equal(t, "0\n", buf.String())
}
