// Package main hosts the subrip CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into library
// calls: inspecting subtitle files, retiming them by offset or frame rate,
// slicing time windows, renumbering, and re-encoding. It centralizes
// configuration resolution and structured logging setup so subcommands can
// focus on user experience instead of wiring.
//
// Keep this package lean: subtitle behavior belongs in the root library,
// surfaced here through dedicated commands and flags.
package main
