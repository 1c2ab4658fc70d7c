package session

import (
	"context"
	"errors"
	"testing"
)

type fakeProber struct {
	ssid  string
	bssid string
}

func (f fakeProber) Present() (string, bool) { return f.ssid, f.ssid != "" }
func (f fakeProber) BSSID() string           { return f.bssid }

type fakeAllowlist struct {
	bssids []string
	err    error
}

func (f fakeAllowlist) FetchAuthorizedBSSIDs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.bssids, f.err
}

func TestNetworkAuthorizer_NoNetworkIsAuthorized(t *testing.T) {
	a := &NetworkAuthorizer{
		Prober:    fakeProber{},
		Allowlist: fakeAllowlist{err: errors.New("unreachable")},
	}
	if !a.Check(context.Background()) {
		t.Fatal("Check = false with no network present, want true")
	}
}

func TestNetworkAuthorizer_MemberBSSID(t *testing.T) {
	a := &NetworkAuthorizer{
		Prober:    fakeProber{ssid: "CampusNet", bssid: "a4:56:02:9c:11:fe"},
		Allowlist: fakeAllowlist{bssids: []string{"00:11:22:33:44:55", "a4:56:02:9c:11:fe"}},
	}
	if !a.Check(context.Background()) {
		t.Fatal("Check = false for allow-listed BSSID, want true")
	}
}

func TestNetworkAuthorizer_NonMemberBSSID(t *testing.T) {
	a := &NetworkAuthorizer{
		Prober:    fakeProber{ssid: "HomeNet", bssid: "de:ad:be:ef:00:01"},
		Allowlist: fakeAllowlist{bssids: []string{"a4:56:02:9c:11:fe"}},
	}
	if a.Check(context.Background()) {
		t.Fatal("Check = true for unknown BSSID, want false")
	}
}

func TestNetworkAuthorizer_TransportFailureFailsClosed(t *testing.T) {
	a := &NetworkAuthorizer{
		Prober:    fakeProber{ssid: "CampusNet", bssid: "a4:56:02:9c:11:fe"},
		Allowlist: fakeAllowlist{err: errors.New("timeout")},
	}
	if a.Check(context.Background()) {
		t.Fatal("Check = true on transport failure, want false")
	}
}

func TestNetworkAuthorizer_CancelledContextFailsClosed(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := &NetworkAuthorizer{
		Prober:    fakeProber{ssid: "CampusNet", bssid: "a4:56:02:9c:11:fe"},
		Allowlist: fakeAllowlist{bssids: []string{"a4:56:02:9c:11:fe"}},
	}
	if a.Check(ctx) {
		t.Fatal("Check = true with expired context, want false")
	}
}

func TestNetworkAuthorizer_MissingBSSIDFailsClosed(t *testing.T) {
	a := &NetworkAuthorizer{
		Prober:    fakeProber{ssid: "CampusNet"},
		Allowlist: fakeAllowlist{bssids: []string{"a4:56:02:9c:11:fe"}},
	}
	if a.Check(context.Background()) {
		t.Fatal("Check = true with unreadable BSSID, want false")
	}
}
