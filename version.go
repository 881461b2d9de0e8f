// Package barrelint holds shared metadata for the barrelint tool.
package barrelint

// Version is the current barrelint release.
const Version = "0.3.0"
