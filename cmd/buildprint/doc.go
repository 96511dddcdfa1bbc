// Package main hosts the buildprint CLI entrypoint and command graph.
//
// Running buildprint with no subcommand computes the theme's build
// fingerprint and writes it to the sentinel record. The check subcommand
// compares the record against the current inputs, and inputs lists the
// ordered files that feed the fingerprint.
//
// Keep this package lean: the fingerprint, sentinel, and guardrail packages
// own the behavior; commands here resolve configuration, print status, and
// map failures to the process exit code.
package main
