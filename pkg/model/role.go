package model

//go:generate go run github.com/dmarkham/enumer -type Role -trimprefix Role -transform upper -json -sql -output role.gen.go

// Role is the coarse access level attached to a user account.
// It is stored as text (CLIENT, ADMIN) in the users table.
type Role int

const (
	RoleClient Role = iota
	RoleAdmin
)
