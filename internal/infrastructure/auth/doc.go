// Package auth implements password hashing, bearer token signing and the
// revoked-token denylist used by the authentication service.
package auth
