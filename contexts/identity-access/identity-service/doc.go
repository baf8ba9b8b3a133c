// Package identityservice tracks the signed-in user. Sign-in is
// passwordless and local: any name and email produce a session, with the
// avatar derived from the name.
package identityservice
