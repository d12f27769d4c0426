package core

import (
	"strings"
	"testing"
)

func TestParameterSnapshot(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Grid", Params: []Parameter{IntParam("size", "Size", 16), IntParam("seed", "Seed", -3)}},
		{Name: "Fill", Params: []Parameter{FloatParam("fill_chance", "Fill chance", 0.25)}},
	}}

	m := snap.Map()
	if m["size"] != "16" || m["seed"] != "-3" || m["fill_chance"] != "0.25" {
		t.Fatalf("unexpected map %v", m)
	}

	var sb strings.Builder
	n, err := snap.WriteTo(&sb)
	if err != nil {
		t.Fatal(err)
	}
	want := "Grid:\n  size=16\n  seed=-3\nFill:\n  fill_chance=0.25\n"
	if sb.String() != want {
		t.Fatalf("WriteTo wrote %q, expected %q", sb.String(), want)
	}
	if n != int64(len(want)) {
		t.Fatalf("WriteTo reported %d bytes, expected %d", n, len(want))
	}
}
