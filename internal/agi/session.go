// Package agi implements the Asterisk Gateway Interface boundary: reading the
// per-call environment block and arguments, and writing dialplan commands.
// No routing logic lives here.
package agi

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const envPrefix = "agi_"

// Session is one AGI conversation. Asterisk sends a block of
// "agi_name: value" headers terminated by a blank line, then answers each
// command we write with a "200 result=..." line.
type Session struct {
	scanner *bufio.Scanner
	w       io.Writer

	env  map[string]string
	args []string
}

// NewSession reads the AGI environment block from r and returns a session
// ready to issue commands on w.
func NewSession(r io.Reader, w io.Writer) (*Session, error) {
	s := &Session{
		scanner: bufio.NewScanner(r),
		w:       w,
		env:     make(map[string]string),
	}
	if err := s.readEnv(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) readEnv() error {
	for s.scanner.Scan() {
		line := strings.TrimRight(s.scanner.Text(), "\r")

		// Blank line ends the environment block.
		if line == "" {
			return nil
		}

		idx := strings.Index(line, ": ")
		if idx < 0 {
			continue
		}
		key := strings.TrimPrefix(line[:idx], envPrefix)
		value := line[idx+2:]
		s.env[key] = value

		if strings.HasPrefix(key, "arg_") {
			if n, err := strconv.Atoi(key[len("arg_"):]); err == nil && n == len(s.args)+1 {
				s.args = append(s.args, value)
			}
		}
	}
	if err := s.scanner.Err(); err != nil {
		return fmt.Errorf("reading agi environment: %w", err)
	}
	return fmt.Errorf("agi environment truncated before blank line")
}

// Env returns an environment value by key, without the agi_ prefix
// (e.g. "extension", "callerid", "channel").
func (s *Session) Env(key string) string { return s.env[key] }

// Arg returns the nth script argument (1-based), or "" when absent.
func (s *Session) Arg(n int) string {
	if n < 1 || n > len(s.args) {
		return ""
	}
	return s.args[n-1]
}

// SetVariable sets a channel variable in the Asterisk dialplan.
func (s *Session) SetVariable(name, value string) error {
	return s.command(fmt.Sprintf("SET VARIABLE %s %s", name, quote(value)))
}

// Verbose writes a message to the Asterisk console at the given level.
func (s *Session) Verbose(msg string, level int) error {
	return s.command(fmt.Sprintf("VERBOSE %s %d", quote(msg), level))
}

// command writes one AGI command line and consumes the response, failing on
// anything but code 200.
func (s *Session) command(line string) error {
	if _, err := fmt.Fprintf(s.w, "%s\n", line); err != nil {
		return fmt.Errorf("writing agi command: %w", err)
	}

	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return fmt.Errorf("reading agi response: %w", err)
		}
		return fmt.Errorf("agi stream closed before response")
	}
	resp := strings.TrimRight(s.scanner.Text(), "\r")

	code, _, _ := strings.Cut(resp, " ")
	if code != "200" {
		return fmt.Errorf("agi command failed: %q", resp)
	}
	return nil
}

func quote(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `\"`) + `"`
}
