// Package console is a terminal renderer of the content-type localization
// toggle. It drives the same confirmation machine as the HTTP admin from a
// bubbletea event loop.
package console
