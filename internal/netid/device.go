package netid

import (
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/google/uuid"
)

// DeviceID returns a stable identifier for this machine. When the
// platform probe fails a random UUID is generated so two unidentified
// devices never collide on the server.
func DeviceID() string {
	if id := probeDeviceID(); id != "" {
		return id
	}
	return uuid.NewString()
}

func probeDeviceID() string {
	switch runtime.GOOS {
	case "windows":
		out, err := exec.Command("wmic", "csproduct", "get", "uuid").Output()
		if err != nil {
			return ""
		}
		return parseWmicUUID(string(out))
	default:
		raw, err := os.ReadFile("/etc/machine-id")
		if err != nil {
			return ""
		}
		return strings.TrimSpace(string(raw))
	}
}

// parseWmicUUID extracts the value row from `wmic csproduct get uuid`
// output (a "UUID" header line followed by the identifier).
func parseWmicUUID(output string) string {
	lines := strings.Split(output, "\n")
	if len(lines) < 2 {
		return ""
	}
	return strings.TrimSpace(lines[1])
}
