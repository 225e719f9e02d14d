// Package connector stores encoded media files. The local connector writes
// into the directory the API serves at the public uploads path.
package connector
