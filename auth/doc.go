/*
Package auth gates admin operations behind the poll's password.

A successful Login issues a random bearer token that the client sends as
X-Admin-Token on admin endpoints. Tokens are held in process memory with
no expiry; Logout revokes one explicitly. Password comparison is constant
time.

	gate := auth.NewGate()
	token, err := gate.Login(entered, doc.Password)
	if gate.Authorized(token) { ... }
*/
package auth
