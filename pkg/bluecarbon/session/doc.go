// Package session gates screen navigation on authentication state.
//
// A Gate owns one Session and one router. Signed-out sessions always sit on the
// app's entry screen no matter what is requested. Login grants a role and lands
// on that role's home screen; Logout is the only way back to the entry screen.
// Requests for screens the role may not reach are redirected home and leave a
// Notice for the next render.
package session
