// Package version exposes the build version of stocks-mcp.
package version

import "runtime/debug"

// Version is overridden at build time with
// -ldflags "-X github.com/stocksmcp/stocks-mcp/pkg/version.Version=v1.2.3"
var Version = ""

const devVersion = "dev"

// GetVersion returns the version string of the binary.
// An explicit -ldflags value wins, then the module version recorded by the go toolchain.
func GetVersion() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return devVersion
}
