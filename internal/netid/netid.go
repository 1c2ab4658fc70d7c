package netid

import (
	"os/exec"
	"regexp"
	"runtime"
	"strings"
)

// Prober reports the state of the local wireless interface.
type Prober interface {
	// Present reports whether a wireless network is connected and
	// returns its SSID when it is.
	Present() (ssid string, ok bool)
	// BSSID returns the access point identifier of the current
	// network, or empty when unknown.
	BSSID() string
}

var bssidPattern = regexp.MustCompile(`^([0-9a-f]{2}:){5}[0-9a-f]{2}$`)

// ValidBSSID reports whether value is a well-formed lowercase BSSID.
func ValidBSSID(value string) bool {
	return bssidPattern.MatchString(value)
}

// NewProber returns the prober for the current platform. Platforms
// without a known wireless tool get a prober that reports no network,
// which the authorization rules treat as non-blocking.
func NewProber() Prober {
	switch runtime.GOOS {
	case "windows":
		return netshProber{}
	case "linux":
		return iwgetidProber{}
	default:
		return noProber{}
	}
}

type noProber struct{}

func (noProber) Present() (string, bool) { return "", false }
func (noProber) BSSID() string           { return "" }

// netshProber shells out to netsh on Windows.
type netshProber struct{}

func (netshProber) Present() (string, bool) {
	out, err := exec.Command("netsh", "wlan", "show", "interfaces").Output()
	if err != nil {
		return "", false
	}
	return parseNetshSSID(string(out))
}

func (netshProber) BSSID() string {
	out, err := exec.Command("netsh", "wlan", "show", "interfaces").Output()
	if err != nil {
		return ""
	}
	return parseNetshBSSID(string(out))
}

// parseNetshSSID extracts the SSID from `netsh wlan show interfaces`
// output. The SSID line must not be the BSSID line, which also
// contains "SSID".
func parseNetshSSID(output string) (string, bool) {
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, "SSID") && !strings.Contains(line, "BSSID") {
			_, value, found := strings.Cut(line, ":")
			ssid := strings.TrimSpace(value)
			if found && ssid != "" {
				return ssid, true
			}
		}
	}
	return "", false
}

func parseNetshBSSID(output string) string {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, "BSSID") {
			continue
		}
		_, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		bssid := strings.ToLower(strings.TrimSpace(value))
		if ValidBSSID(bssid) {
			return bssid
		}
	}
	return ""
}

// iwgetidProber shells out to iwgetid on Linux.
type iwgetidProber struct{}

func (iwgetidProber) Present() (string, bool) {
	out, err := exec.Command("iwgetid", "-r").Output()
	if err != nil {
		return "", false
	}
	ssid := strings.TrimSpace(string(out))
	return ssid, ssid != ""
}

func (iwgetidProber) BSSID() string {
	out, err := exec.Command("iwgetid", "-ar").Output()
	if err != nil {
		return ""
	}
	bssid := strings.ToLower(strings.TrimSpace(string(out)))
	if ValidBSSID(bssid) {
		return bssid
	}
	return ""
}
