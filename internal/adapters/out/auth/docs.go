// Package auth issues and verifies HS256 session tokens and hashes passwords with
// bcrypt.
//
// A session token carries the user id as sub, plus email, name, a random jti, iss,
// aud, iat and exp. Verification accepts HS256 only, checks issuer and audience,
// requires exp and tolerates two minutes of clock skew.
package auth
