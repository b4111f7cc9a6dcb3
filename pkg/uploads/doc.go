// Package uploads stores uploaded image files on disk and serves directory
// listings from an in-memory index kept current by an fsnotify watcher, so
// listing does not hit the filesystem on every request.
//
// Files are referenced by generated name only; names with path separators
// are rejected to keep requests inside the uploads directory.
package uploads
