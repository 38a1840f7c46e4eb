package agi

import (
	"log/slog"
	"strconv"

	"pbx-dialplan/internal/dialplan"
)

// Channel variables consumed by the Asterisk dialplan after this script runs.
const (
	varRouteStatus    = "ROUTE_STATUS"
	varIsInternalDest = "IS_INTERNAL_DEST"
	varTargetExt      = "TARGET_EXT"
	varOutNumber      = "OUT_NUMBER"
	varDialTrunk      = "DIAL_TRUNK"
	varFailReason     = "ROUTE_FAIL_REASON"
)

// Handler converts one AGI session into a resolver request and writes the
// outcome back as channel variables.
//
// Script arguments: 1 = dialed digits, 2 = direction (inbound|outbound),
// 3 = caller extension. Missing arguments fall back to the agi_extension and
// agi_callerid environment values.
type Handler struct {
	Resolver *dialplan.Resolver
	Log      *slog.Logger
}

func (h *Handler) Handle(s *Session) error {
	log := h.Log
	if log == nil {
		log = slog.Default()
	}

	dialed := s.Arg(1)
	if dialed == "" {
		dialed = s.Env("extension")
	}
	callerRaw := s.Arg(3)
	if callerRaw == "" {
		callerRaw = s.Env("callerid")
	}

	var out dialplan.Outcome
	dir, ok := dialplan.ParseDirection(s.Arg(2))
	if !ok {
		// Rejected at the boundary; the engine never sees the call.
		log.Warn("unknown call direction", "direction", s.Arg(2))
		out = dialplan.BuildOutcome(nil, "", dialplan.FailureUnknownDirection)
	} else {
		out = h.Resolver.Resolve(dialplan.Request{
			Direction: dir,
			Dialed:    dialed,
			CallerExt: parseCallerExt(callerRaw),
		})
	}

	log.Info("call resolved",
		"dialed", dialed,
		"direction", s.Arg(2),
		"caller", callerRaw,
		"success", out.Success,
		"internal", out.InternalDest,
		"fail_reason", string(out.Failure),
	)
	return h.respond(s, out)
}

func (h *Handler) respond(s *Session, out dialplan.Outcome) error {
	status := "FAILED"
	if out.Success {
		status = "SUCCESS"
	}
	if err := s.SetVariable(varRouteStatus, status); err != nil {
		return err
	}
	if err := s.SetVariable(varIsInternalDest, boolVar(out.InternalDest)); err != nil {
		return err
	}

	switch tgt := out.Target.(type) {
	case dialplan.Internal:
		if err := s.SetVariable(varTargetExt, strconv.Itoa(int(tgt.Ext))); err != nil {
			return err
		}
	case dialplan.External:
		if err := s.SetVariable(varOutNumber, string(tgt.Number)); err != nil {
			return err
		}
		if out.Trunk != "" {
			if err := s.SetVariable(varDialTrunk, string(out.Trunk)); err != nil {
				return err
			}
		}
	}

	if out.Failure != "" {
		if err := s.SetVariable(varFailReason, string(out.Failure)); err != nil {
			return err
		}
	}
	return nil
}

// parseCallerExt parses the caller identifier; zero means unknown, which the
// resolver treats as "no trunk mapping".
func parseCallerExt(raw string) dialplan.Extension {
	digits, ok := dialplan.SanitizeDigits(raw)
	if !ok {
		return 0
	}
	n, err := strconv.ParseUint(string(digits), 10, 16)
	if err != nil {
		return 0
	}
	return dialplan.Extension(n)
}

func boolVar(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
