// Package watch reloads record fixtures when they change on disk.
//
// A Watcher reports debounced changes of one file. Sync applies a reloaded
// fixture to a collection through its ordinary mutators, so listeners bound
// to the collection see add, replace and remove events instead of a reset.
package watch
