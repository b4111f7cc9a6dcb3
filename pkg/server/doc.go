// Package server wires the HTTP router, stores and middleware together.
// Route handlers live in the endpoints subpackage and are registered
// against a Server instance.
package server
