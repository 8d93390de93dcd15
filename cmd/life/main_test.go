package main

import (
	"bytes"
	"strings"
	"testing"

	"mad-life/pkg/sims/life"
)

func TestRunPrintsEachGeneration(t *testing.T) {
	u, err := life.NewWithConfig(life.Config{Width: 5, Height: 5, Mode: "blinker"})
	if err != nil {
		t.Fatalf("new universe: %v", err)
	}
	var buf bytes.Buffer
	run(&buf, u, 2, nil)

	out := buf.String()
	for _, want := range []string{"generation 0, population 3", "generation 1, population 3", "generation 2, population 3"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "generation 3") {
		t.Fatal("run went past the requested generations")
	}
	if !strings.Contains(out, "◻◻◻◼◻\n◻◻◻◼◻\n◻◻◻◼◻\n") {
		t.Fatalf("expected a vertical blinker in the output:\n%s", out)
	}
}
