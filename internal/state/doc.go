// Package state provides the shared snapshot store between the
// background pollers and the UI. Pollers write their slice of the
// snapshot at their own cadence; the UI reads independent copies at
// its refresh rate, so a slow remote call never blocks rendering.
package state
