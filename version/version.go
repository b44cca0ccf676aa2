package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// ModulePath is this library's module path.
const ModulePath = "github.com/kbukum/mws"

// Product is the product token of the User-Agent.
const Product = "mws-go"

// Version is set at build time using -ldflags. When empty it is resolved
// from build info.
var Version = ""

// Info represents version information.
type Info struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetVersionInfo returns the library version and runtime details.
func GetVersionInfo() *Info {
	info := &Info{
		Version:   Version,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if info.Version == "" {
		info.Version = moduleVersion()
	}
	return info
}

// moduleVersion looks the library up among the binary's dependencies, or as
// the main module when running its own tests.
func moduleVersion() string {
	bi, ok := readBuildInfo()
	if !ok {
		return "dev"
	}
	if bi.Main.Path == ModulePath && isTagged(bi.Main.Version) {
		return strings.TrimPrefix(bi.Main.Version, "v")
	}
	for _, dep := range bi.Deps {
		if dep.Path != ModulePath {
			continue
		}
		if dep.Replace != nil {
			dep = dep.Replace
		}
		if isTagged(dep.Version) {
			return strings.TrimPrefix(dep.Version, "v")
		}
	}
	return "dev"
}

func isTagged(v string) bool {
	return v != "" && v != "(devel)"
}

// UserAgent returns "mws-go/<version> (Language=Go; Platform=<os>/<arch>)".
// appID, when set, is prepended as its own product token.
func UserAgent(appID string) string {
	info := GetVersionInfo()
	ua := fmt.Sprintf("%s/%s (Language=Go; Platform=%s)", Product, info.Version, info.Platform)
	if appID != "" {
		ua = appID + " " + ua
	}
	return ua
}
