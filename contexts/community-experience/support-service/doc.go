// Package supportservice covers the help surface: the contact-form inbox
// operators read, and the canned support bot that answers common questions
// without a human in the loop.
package supportservice
