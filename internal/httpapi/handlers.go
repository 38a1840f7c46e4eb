package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pbx-dialplan/internal/auth"
	"pbx-dialplan/internal/dialplan"
	"pbx-dialplan/pkg/logger"
)

// Handlers groups HTTP handlers for dependency injection.
// Keep these thin: parse/validate input, call the engine, return JSON.
// The API is a dry-run surface; it never places calls or mutates tables.
type Handlers struct {
	Auth     *auth.Manager
	Resolver *dialplan.Resolver
}

// --- Tokens ---

type tokenRequest struct {
	OperatorID string `json:"operator_id" binding:"required"`
	Role       string `json:"role" binding:"required"`
}

// IssueToken issues an operator JWT.
//
// NOTE: This is an internal tooling endpoint; credential validation is
// expected to happen upstream (the service runs on a trusted ops network).
func (h Handlers) IssueToken(c *gin.Context) {
	if h.Auth == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "auth not configured"})
		return
	}
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "operator_id and role required"})
		return
	}
	tok, err := h.Auth.Issue(time.Now(), req.OperatorID, req.Role)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "token issuance failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": tok})
}

// --- Resolution ---

type resolveRequest struct {
	Dialed    string `json:"dialed" binding:"required"`
	Direction string `json:"direction" binding:"required"`
	CallerExt uint16 `json:"caller_ext"`
}

// resolveResponse mirrors the channel variables the AGI script sets, so an
// operator sees exactly what a live call would get.
type resolveResponse struct {
	Success      bool   `json:"success"`
	InternalDest bool   `json:"internal_dest"`
	TargetExt    uint16 `json:"target_ext,omitempty"`
	OutNumber    string `json:"out_number,omitempty"`
	DialTrunk    string `json:"dial_trunk,omitempty"`
	FailReason   string `json:"fail_reason,omitempty"`
}

func (h Handlers) Resolve(c *gin.Context) {
	log := logger.FromGin(c)

	if h.Resolver == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "resolver not configured"})
		return
	}
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "dialed and direction required"})
		return
	}

	dir, ok := dialplan.ParseDirection(req.Direction)
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "direction must be inbound or outbound"})
		return
	}

	out := h.Resolver.Resolve(dialplan.Request{
		Direction: dir,
		Dialed:    req.Dialed,
		CallerExt: dialplan.Extension(req.CallerExt),
	})
	log.Info("dry-run resolve",
		"dialed", req.Dialed,
		"direction", req.Direction,
		"success", out.Success,
		"fail_reason", string(out.Failure),
	)
	c.JSON(http.StatusOK, toResolveResponse(out))
}

func toResolveResponse(out dialplan.Outcome) resolveResponse {
	resp := resolveResponse{
		Success:      out.Success,
		InternalDest: out.InternalDest,
		FailReason:   string(out.Failure),
	}
	switch tgt := out.Target.(type) {
	case dialplan.Internal:
		resp.TargetExt = uint16(tgt.Ext)
	case dialplan.External:
		resp.OutNumber = string(tgt.Number)
		resp.DialTrunk = string(out.Trunk)
	}
	return resp
}

// --- Tables ---

// ListExtensions dumps the extension table: trunk and mapped numbers per
// extension. Admin only.
func (h Handlers) ListExtensions(c *gin.Context) {
	if h.Resolver == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "resolver not configured"})
		return
	}
	entries := h.Resolver.Tables().Entries()
	c.JSON(http.StatusOK, gin.H{"extensions": entries, "count": len(entries)})
}
