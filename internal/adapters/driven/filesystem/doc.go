// Package filesystem provides study file access on the local disk.
//
// Adapters:
//   - Reader: reads a study file, mapping a missing file to domain.ErrFileNotFound
//   - Watcher: fsnotify-based change notifications for a single file
package filesystem
