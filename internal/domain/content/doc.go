// Package content models the public website sections managed from the
// admin panel: blog, careers, centers, team members and contact messages.
package content
