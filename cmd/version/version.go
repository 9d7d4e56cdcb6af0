package version

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/manjeettahkur/smartcar-go/cmd/root"
)

// Build information. Populated at build-time via ldflags, with the module
// build info as a fallback for `go install` builds.
var (
	Version = "dev"
	Commit  = "unknown"
)

var verbose bool

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("smartcar %s (%s)\n", resolveVersion(), Commit)
		if verbose {
			fmt.Printf("  Go version: %s\n", runtime.Version())
			fmt.Printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		}
	},
}

// resolveVersion prefers the ldflags value and falls back to the version
// recorded in the binary's module build info.
func resolveVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

func init() {
	VersionCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "include Go version and platform")

	root.RootCmd.AddCommand(VersionCmd)
}
