// Package cli is the interactive terminal front end of the snooze client.
//
// The App owns the single mutable session state for the running process: the
// current user (nil while anonymous), the last fetched story catalog, and the
// active view region. Command handlers are the only writers; rendering is a
// pure function of that state, so favorite markers are recomputed from the
// user's confirmed favorite set on every draw and never toggled on their own.
package cli
