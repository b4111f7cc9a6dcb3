// Package authn implements the credential and session authority: bcrypt
// password hashing and verification, and HMAC-signed session tokens
// embedding the principal's id and role.
//
// Tokens are stateless. Verification recomputes the signature against the
// process-wide secret; there is no revocation list, and logout is purely
// client-side. Every issued token carries an expiry.
package authn
