package dialplan

// RouteTarget is the routing decision variant: a call terminates either on an
// internal extension or on an external number. The sealed interface keeps the
// two mutually exclusive; an Outcome carries at most one target.
type RouteTarget interface {
	isRouteTarget()
}

// Internal routes the call to a station on this PBX.
type Internal struct {
	Ext Extension
}

// External routes the call out to the public network.
type External struct {
	Number NationalNumber
}

func (Internal) isRouteTarget() {}
func (External) isRouteTarget() {}

// FailureReason tags a failed resolution. Intended for dialplan variables and
// logs; the protocol layer decides how to surface it.
type FailureReason string

const (
	FailureInvalidFormat      FailureReason = "invalid_format"
	FailureUnknownInbound     FailureReason = "unknown_inbound_destination"
	FailureShortCodeNotMapped FailureReason = "short_code_not_mapped"
	FailureNoTrunkAvailable   FailureReason = "no_trunk_available"
	FailureUnknownDirection   FailureReason = "unknown_direction"
)

// Outcome is the immutable result of one resolution.
//
// Invariants, enforced by BuildOutcome:
//   - Success is true iff Target is non-nil
//   - InternalDest is true iff Target is Internal
//   - Trunk is set only on External outcomes
//   - Failure is set only when Target is nil
type Outcome struct {
	Success      bool
	InternalDest bool

	Target RouteTarget
	Trunk  NationalNumber

	Failure FailureReason
}

// BuildOutcome assembles an Outcome with flags derived solely from the target
// variant. Pure, no I/O.
func BuildOutcome(target RouteTarget, trunk NationalNumber, failure FailureReason) Outcome {
	switch target.(type) {
	case Internal:
		return Outcome{Success: true, InternalDest: true, Target: target}
	case External:
		return Outcome{Success: true, Target: target, Trunk: trunk}
	default:
		return Outcome{Failure: failure}
	}
}
