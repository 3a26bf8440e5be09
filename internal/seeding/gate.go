package seeding

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// GateState is the state of the confirmation gate.
type GateState int

const (
	// PendingConfirmation is the initial state. A run that ends here inserts nothing.
	PendingConfirmation GateState = iota
	// Approved allows the batch insert.
	Approved
)

func (s GateState) String() string {
	switch s {
	case Approved:
		return "approved"
	default:
		return "pending_confirmation"
	}
}

// Gate decides whether a planned batch may be written. With auto set it
// approves without asking; otherwise it prompts on out and reads one answer
// from in, approving only on "y" or "Y".
type Gate struct {
	auto  bool
	in    *bufio.Reader
	out   io.Writer
	state GateState
}

func NewGate(auto bool, in io.Reader, out io.Writer) *Gate {
	g := &Gate{auto: auto, out: out}
	if in != nil {
		g.in = bufio.NewReader(in)
	}
	if g.out == nil {
		g.out = io.Discard
	}
	return g
}

// State returns the current state.
func (g *Gate) State() GateState {
	return g.state
}

// Confirm runs the gate and returns the resulting state.
func (g *Gate) Confirm() GateState {
	if g.state == Approved {
		return g.state
	}
	if g.auto {
		g.state = Approved
		return g.state
	}
	if g.in == nil {
		return g.state
	}

	fmt.Fprint(g.out, "\nReady to insert the lookup values. Proceed? (y/n): ")
	line, err := g.in.ReadString('\n')
	if err != nil && line == "" {
		return g.state
	}

	answer := strings.TrimRight(line, "\r\n")
	if strings.EqualFold(answer, "y") {
		g.state = Approved
	}
	return g.state
}
