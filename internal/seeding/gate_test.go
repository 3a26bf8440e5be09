package seeding

import (
	"bytes"
	"strings"
	"testing"
)

func TestGateConfirm(t *testing.T) {
	tests := []struct {
		name       string
		auto       bool
		input      string
		want       GateState
		wantPrompt bool
	}{
		{name: "autoApproves", auto: true, input: "", want: Approved, wantPrompt: false},
		{name: "lowerY", input: "y\n", want: Approved, wantPrompt: true},
		{name: "upperY", input: "Y\n", want: Approved, wantPrompt: true},
		{name: "windowsNewline", input: "y\r\n", want: Approved, wantPrompt: true},
		{name: "noTrailingNewline", input: "y", want: Approved, wantPrompt: true},
		{name: "no", input: "n\n", want: PendingConfirmation, wantPrompt: true},
		{name: "yesWordRejected", input: "yes\n", want: PendingConfirmation, wantPrompt: true},
		{name: "paddedRejected", input: " y\n", want: PendingConfirmation, wantPrompt: true},
		{name: "emptyLine", input: "\n", want: PendingConfirmation, wantPrompt: true},
		{name: "eof", input: "", want: PendingConfirmation, wantPrompt: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			g := NewGate(tt.auto, strings.NewReader(tt.input), &out)

			if got := g.Confirm(); got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
			if g.State() != tt.want {
				t.Errorf("State() = %v, want %v", g.State(), tt.want)
			}
			prompted := strings.Contains(out.String(), "Proceed? (y/n)")
			if prompted != tt.wantPrompt {
				t.Errorf("prompted = %v, want %v (output %q)", prompted, tt.wantPrompt, out.String())
			}
		})
	}
}

func TestGateWithoutInputStaysPending(t *testing.T) {
	g := NewGate(false, nil, nil)
	if got := g.Confirm(); got != PendingConfirmation {
		t.Errorf("Confirm() = %v, want %v", got, PendingConfirmation)
	}
}

func TestGateStateString(t *testing.T) {
	if PendingConfirmation.String() != "pending_confirmation" {
		t.Errorf("PendingConfirmation.String() = %q", PendingConfirmation.String())
	}
	if Approved.String() != "approved" {
		t.Errorf("Approved.String() = %q", Approved.String())
	}
}
