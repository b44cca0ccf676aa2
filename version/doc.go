// Package version reports the library version and builds the User-Agent
// every request identifies itself with.
//
// The version is read from the importing binary's build info. It can be
// pinned at compile time:
//
//	go build -ldflags "-X github.com/kbukum/mws/version.Version=1.0.0"
package version
