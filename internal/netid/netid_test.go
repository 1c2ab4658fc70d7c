package netid

import "testing"

const netshSample = `
There is 1 interface on the system:

    Name                   : Wi-Fi
    Description            : Intel(R) Wireless-AC 9560
    State                  : connected
    SSID                   : CampusNet
    BSSID                  : A4:56:02:9C:11:FE
    Radio type             : 802.11ac
    Authentication         : WPA2-Personal
`

func TestParseNetshSSID(t *testing.T) {
	ssid, ok := parseNetshSSID(netshSample)
	if !ok || ssid != "CampusNet" {
		t.Fatalf("parseNetshSSID = %q, %v; want CampusNet, true", ssid, ok)
	}
}

func TestParseNetshSSID_Disconnected(t *testing.T) {
	output := "    Name : Wi-Fi\n    State : disconnected\n"
	if ssid, ok := parseNetshSSID(output); ok {
		t.Fatalf("parseNetshSSID = %q, true; want no network", ssid)
	}
}

func TestParseNetshBSSID(t *testing.T) {
	got := parseNetshBSSID(netshSample)
	if got != "a4:56:02:9c:11:fe" {
		t.Fatalf("parseNetshBSSID = %q, want a4:56:02:9c:11:fe", got)
	}
}

func TestParseNetshBSSID_Missing(t *testing.T) {
	if got := parseNetshBSSID("    SSID : CampusNet\n"); got != "" {
		t.Fatalf("parseNetshBSSID = %q, want empty", got)
	}
}

func TestValidBSSID(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"a4:56:02:9c:11:fe", true},
		{"A4:56:02:9C:11:FE", false}, // must already be lowercased
		{"a4:56:02:9c:11", false},
		{"not-a-bssid", false},
		{"", false},
		{"a4:56:02:9c:11:fe:00", false},
	}
	for _, tt := range tests {
		if got := ValidBSSID(tt.value); got != tt.want {
			t.Errorf("ValidBSSID(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestParseWmicUUID(t *testing.T) {
	output := "UUID\r\n4C4C4544-0042-3510-8051-B5C04F564C32\r\n\r\n"
	got := parseWmicUUID(output)
	if got != "4C4C4544-0042-3510-8051-B5C04F564C32" {
		t.Fatalf("parseWmicUUID = %q", got)
	}
}

func TestParseWmicUUID_Empty(t *testing.T) {
	if got := parseWmicUUID("UUID"); got != "" {
		t.Fatalf("parseWmicUUID = %q, want empty", got)
	}
}

func TestDeviceID_NeverEmpty(t *testing.T) {
	if DeviceID() == "" {
		t.Fatal("DeviceID returned empty string")
	}
}
