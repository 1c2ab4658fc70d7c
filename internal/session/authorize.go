package session

import (
	"context"
	"slices"

	"github.com/sdixit/rollcall/internal/netid"
)

// Allowlist fetches the authorized BSSID set from the attendance
// service. Implemented by *portal.Client.
type Allowlist interface {
	FetchAuthorizedBSSIDs(ctx context.Context) ([]string, error)
}

// NetworkAuthorizer implements the marking authorization rules:
//
//   - no wireless network present: authorized. Absent network
//     detection must not block marking, so the check fails open here.
//   - network present: the observed BSSID must be on the service's
//     allow-list. Any transport failure fails closed.
type NetworkAuthorizer struct {
	Prober    netid.Prober
	Allowlist Allowlist
}

// Check reports whether marking may proceed on the current network.
// The caller bounds ctx; a timeout counts as a transport failure.
func (a *NetworkAuthorizer) Check(ctx context.Context) bool {
	if a == nil || a.Prober == nil {
		return false
	}
	if _, connected := a.Prober.Present(); !connected {
		return true
	}
	if a.Allowlist == nil {
		return false
	}
	authorized, err := a.Allowlist.FetchAuthorizedBSSIDs(ctx)
	if err != nil {
		return false
	}
	bssid := a.Prober.BSSID()
	if bssid == "" {
		return false
	}
	return slices.Contains(authorized, bssid)
}
