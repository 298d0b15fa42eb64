// Package tools provides host process helpers shared by the launcher.
//
// Ownership boundary:
// - child process start with inherited standard streams
//
// - optional background reaping for long-lived callers
package tools
