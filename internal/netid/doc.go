// Package netid probes the local machine for the identifiers the
// attendance service cares about: the connected wireless network
// (SSID and BSSID) and a per-device id. Probing shells out to
// platform tools, so parsing is kept separate and testable.
package netid
