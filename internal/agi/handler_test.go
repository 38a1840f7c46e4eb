package agi

import (
	"bytes"
	"strings"
	"testing"

	"pbx-dialplan/internal/dialplan"
)

// runCall drives a full AGI conversation over in-memory buffers. The reader
// is seeded with enough "200 result=1" lines to answer every command.
func runCall(t *testing.T, args ...string) []string {
	t.Helper()

	var in strings.Builder
	in.WriteString("agi_network: yes\n")
	in.WriteString("agi_channel: SIP/test-0001\n")
	for i, a := range args {
		in.WriteString("agi_arg_" + string(rune('1'+i)) + ": " + a + "\n")
	}
	in.WriteString("\n")
	in.WriteString(strings.Repeat("200 result=1\n", 8))

	var out bytes.Buffer
	s, err := NewSession(strings.NewReader(in.String()), &out)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	h := &Handler{Resolver: dialplan.NewResolver(nil, false)}
	if err := h.Handle(s); err != nil {
		t.Fatalf("handle: %v", err)
	}

	var lines []string
	for _, l := range strings.Split(out.String(), "\n") {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func TestHandle_InboundDID(t *testing.T) {
	lines := runCall(t, "79235254061", "inbound", "")
	want := []string{
		`SET VARIABLE ROUTE_STATUS "SUCCESS"`,
		`SET VARIABLE IS_INTERNAL_DEST "TRUE"`,
		`SET VARIABLE TARGET_EXT "502"`,
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d commands: %v", len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("command %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestHandle_OutboundExternal(t *testing.T) {
	lines := runCall(t, "8 (495) 123-45-67", "outbound", "501")
	want := []string{
		`SET VARIABLE ROUTE_STATUS "SUCCESS"`,
		`SET VARIABLE IS_INTERNAL_DEST "FALSE"`,
		`SET VARIABLE OUT_NUMBER "74951234567"`,
		`SET VARIABLE DIAL_TRUNK "79235253998"`,
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d commands: %v", len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("command %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestHandle_UnmappedShortCode(t *testing.T) {
	lines := runCall(t, "999", "outbound", "501")
	want := []string{
		`SET VARIABLE ROUTE_STATUS "FAILED"`,
		`SET VARIABLE IS_INTERNAL_DEST "FALSE"`,
		`SET VARIABLE ROUTE_FAIL_REASON "short_code_not_mapped"`,
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d commands: %v", len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("command %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestHandle_UnknownDirectionRejectedAtBoundary(t *testing.T) {
	lines := runCall(t, "104", "sideways", "501")
	if lines[0] != `SET VARIABLE ROUTE_STATUS "FAILED"` {
		t.Fatalf("expected FAILED status, got %v", lines)
	}
	found := false
	for _, l := range lines {
		if l == `SET VARIABLE ROUTE_FAIL_REASON "unknown_direction"` {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected unknown_direction reason, got %v", lines)
	}
}

func TestHandle_FallsBackToChannelEnv(t *testing.T) {
	in := "agi_network: yes\n" +
		"agi_callerid: 501\n" +
		"agi_extension: 89235254706\n" +
		"agi_arg_1: \n" +
		"agi_arg_2: outbound\n" +
		"\n" +
		strings.Repeat("200 result=1\n", 8)

	var out bytes.Buffer
	s, err := NewSession(strings.NewReader(in), &out)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	h := &Handler{Resolver: dialplan.NewResolver(nil, false)}
	if err := h.Handle(s); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if !strings.Contains(out.String(), `SET VARIABLE TARGET_EXT "508"`) {
		t.Fatalf("expected env fallback to route 89235254706 to 508, got:\n%s", out.String())
	}
}
