// Package app is the composition root for rollcall.
//
// Run wires configuration, the portal client, the local network
// probes, the session controller and the snapshot store together,
// starts the background pollers and the one second controller ticker,
// and hands everything to the UI.
//
// # Polling behavior
//
// Each background task runs on its own cadence (session 30s, rings
// 10s, WiFi 5s, timetable/attendance hourly, ping heartbeat 30s).
// A failing task logs the error, doubles its wait up to a cap, and
// resets on the next success; the store's consecutive-failure counter
// drives the UI's offline indicator. Failures never abort the
// process.
//
// # Error handling
//
// Fatal errors (returned from Run): unreadable config, missing
// student id, client construction, a rejected login. Everything after
// startup degrades to a retry on the next cycle.
package app
