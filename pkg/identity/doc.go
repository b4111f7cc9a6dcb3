// Package identity carries the authenticated principal through the request
// context.
//
// A Principal is derived from verified token claims and attached to the
// context by the authentication middleware; handlers retrieve it with Get.
// The role embedded in the token is trusted for the token's lifetime: a role
// change in the datastore is not reflected until the user logs in again.
package identity
