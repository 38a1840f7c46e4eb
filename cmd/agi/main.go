// The dialplan AGI script. Asterisk starts one process per call attempt;
// stdin carries the AGI environment, stdout carries our commands, and logs
// go to stderr.
package main

import (
	"os"

	"github.com/google/uuid"

	"pbx-dialplan/internal/agi"
	"pbx-dialplan/internal/config"
	"pbx-dialplan/internal/dialplan"
	"pbx-dialplan/pkg/logger"
)

func main() {
	log := logger.NewStderr(os.Getenv("APP_ENV")).With("call_id", uuid.NewString())

	cfg, err := config.LoadRoute()
	if err != nil {
		log.Error("config load failed", "err", err)
		os.Exit(1)
	}

	session, err := agi.NewSession(os.Stdin, os.Stdout)
	if err != nil {
		log.Error("agi handshake failed", "err", err)
		os.Exit(1)
	}
	log = log.With("channel", session.Env("channel"))

	h := &agi.Handler{
		Resolver: dialplan.NewResolver(dialplan.Default(), cfg.RequireTrunk),
		Log:      log,
	}
	if err := h.Handle(session); err != nil {
		log.Error("call handling failed", "err", err)
		os.Exit(1)
	}
}
