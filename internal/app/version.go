// Package app holds application-level metadata.
package app

// Version is the zd version, overridden at build time:
//
//	go build -ldflags "-X github.com/dialog-tools/zenity/internal/app.Version=v1.2.3"
var Version = "dev"
