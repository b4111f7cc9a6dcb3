// Package store defines the persistence interfaces consumed by the HTTP
// endpoints, together with the error sentinels handlers map to statuses.
//
// Implementations live in the gorm subpackage; tests substitute
// testify/mock implementations.
package store
