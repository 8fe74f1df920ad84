// Package cli implements the interactive terminal surface of the Autoscribe
// client: a read-eval-print loop that drives the auth flow, spoken
// announcements rendered as text lines, toast notifications, and the
// accessibility toggles (font size, high contrast).
//
// The REPL dispatches single-word commands; forms are filled through
// sequential prompts. See runREPL for the command set.
package cli
