// Package ui implements the rollcall terminal interface with Bubble
// Tea.
//
// The model re-reads the snapshot store once per second and renders
// one of three views: attendance (session banner, countdown, ring
// alert), timetable, and calendar. Marking runs as a command so a
// slow authorization check never blocks rendering; its result comes
// back as a message and surfaces as a notice.
package ui
