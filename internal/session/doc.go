// Package session implements the attendance marking state machine.
//
// # States
//
//	Idle ──session opens──▶ Waiting ──start + authorized──▶ Counting
//	Counting ──auth lost──▶ Paused ──auth back──▶ Counting
//	Counting ──remaining 0──▶ Completed
//	Waiting/Completed ──session closes──▶ Idle
//
// The countdown runs 120 seconds at a one second cadence. It only
// decrements while counting on an authorized network, freezes while
// paused, and clamps at zero; Completed is terminal until a new
// session opens and the student starts again. A session closing never
// aborts a mark in progress.
//
// Two events reach the remote service: present when marking starts,
// left on each pause entry. Both are bounded by a timeout and their
// failure is dropped; resuming from a pause emits nothing.
//
// The controller owns its state exclusively. Pollers feed it through
// HandleSession, the scheduler drives Tick, and the presentation
// layer observes every tick and transition through the Notifier.
package session
