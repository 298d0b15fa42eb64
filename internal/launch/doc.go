// Package launch turns (username, version) into a started game runtime.
//
// Ownership boundary:
// - library path resolution
//
// - classpath and argument vector assembly
//
// - platform flag and executable selection
//
// - child process start
//
// Pipeline order:
// - prepare -> fetch -> resolve -> assemble -> spawn
//
// - every failure before spawn leaves no child behind.
//
// - a started child is never waited on, reaped or killed here.
//
// Offline identity: the nil UUID and access token "0" are placeholders for
// an unauthenticated session, not credentials.
package launch
