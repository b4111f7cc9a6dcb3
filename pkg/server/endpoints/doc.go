// Package endpoints contains the HTTP route handlers. Each file registers
// one resource's routes against a server.Server via a RegisterXEndpoints
// function; RegisterAll pulls them together.
package endpoints
