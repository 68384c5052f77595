package main

import (
	"strings"
	"testing"

	"github.com/jamiedatty/London-Control-Sim-Parser/navlist"
)

func TestResultMessage(t *testing.T) {
	msg := resultMessage("/tmp/UK.sct", "/tmp/UK_parsed.txt", navlist.Stats{VORs: 2, NDBs: 1, Fixes: 5, Airports: 3})

	for _, exp := range []string{
		"Successfully parsed UK.sct!",
		"- VORs: 2\n",
		"- Fixes: 5\n",
		"- Total: 11 navigation points",
		"Output saved to:\n/tmp/UK_parsed.txt",
	} {
		if !strings.Contains(msg, exp) {
			t.Errorf("message does not contain %q:\n%s", exp, msg)
		}
	}
}
