package dialplan

// Direction distinguishes calls arriving from the public network from calls
// placed by internal stations.
type Direction string

const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
)

// ParseDirection validates a direction token from the protocol boundary.
func ParseDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case DirectionInbound, DirectionOutbound:
		return Direction(s), true
	default:
		return "", false
	}
}

// Request carries one call attempt into the resolver.
type Request struct {
	Direction Direction

	// Dialed is the raw dial string; sanitization happens inside Resolve.
	Dialed string

	// CallerExt is the calling station, zero when unknown. Only consulted to
	// pick an outbound trunk for external calls.
	CallerExt Extension
}

// Resolver turns one call attempt into a routing Outcome.
//
// Resolution is a pure computation over the tables. No side effects, no
// retries: the same request always produces the same outcome.
type Resolver struct {
	tables *Tables

	// RequireTrunk controls the policy for external calls whose caller has no
	// trunk mapping: false lets the call proceed without a trunk hint, true
	// fails it with no_trunk_available. One flag, applied uniformly.
	RequireTrunk bool
}

// NewResolver builds a resolver over the given tables. A nil tables argument
// falls back to the compiled-in defaults.
func NewResolver(tables *Tables, requireTrunk bool) *Resolver {
	if tables == nil {
		tables = Default()
	}
	return &Resolver{tables: tables, RequireTrunk: requireTrunk}
}

// Tables exposes the resolver's routing tables for diagnostic read-only use.
func (r *Resolver) Tables() *Tables { return r.tables }

// Resolve sanitizes the dialed input and routes it according to direction.
func (r *Resolver) Resolve(req Request) Outcome {
	digits, ok := SanitizeDigits(req.Dialed)
	if !ok {
		return BuildOutcome(nil, "", FailureInvalidFormat)
	}

	switch req.Direction {
	case DirectionInbound:
		return r.resolveInbound(digits)
	case DirectionOutbound:
		return r.resolveOutbound(digits, req.CallerExt)
	default:
		return BuildOutcome(nil, "", FailureUnknownDirection)
	}
}

// resolveInbound looks the ingress number up directly. The carrier already
// delivers it in canonical form, so no normalization is applied. Inbound
// calls are never forwarded externally.
func (r *Resolver) resolveInbound(digits DigitString) Outcome {
	ext, ok := r.tables.LookupExtension(NationalNumber(digits))
	if !ok {
		return BuildOutcome(nil, "", FailureUnknownInbound)
	}
	return BuildOutcome(Internal{Ext: ext}, "", "")
}

func (r *Resolver) resolveOutbound(digits DigitString, caller Extension) Outcome {
	num, ok := Normalize(digits)
	if !ok {
		return BuildOutcome(nil, "", FailureInvalidFormat)
	}

	// Any table hit terminates internally, regardless of how the number was
	// dialed (short code, city number, or full DID).
	if ext, ok := r.tables.LookupExtension(num); ok {
		return BuildOutcome(Internal{Ext: ext}, "", "")
	}

	// A short code that matched nothing is not a dialable public destination.
	if len(num) == shortCodeLen {
		return BuildOutcome(nil, "", FailureShortCodeNotMapped)
	}

	trunk, ok := r.tables.LookupTrunk(caller)
	if !ok && r.RequireTrunk {
		return BuildOutcome(nil, "", FailureNoTrunkAvailable)
	}
	return BuildOutcome(External{Number: num}, trunk, "")
}
