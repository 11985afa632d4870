// Package topology reads and writes the flat topology file: one link per
// line, three whitespace-separated fields "routerA routerB cost".
//
// There is no header, comment syntax or escaping. Blank lines are ignored.
// A line with the wrong field count, a non-integer or negative cost, or two
// identical endpoints is skipped whole and reported as a *LineError; nothing
// from it leaks into the next line.
//
// EnsureFile writes Sample() when the file is absent, which is how a fresh
// installation bootstraps its network.
package topology
