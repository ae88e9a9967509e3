package ft8token

import (
	"fmt"
	"runtime/debug"
	"strconv"
)

// Set at build time via `-ldflags "-X 'github.com/doismellburning/ft8token/src.FT8TOKEN_VERSION=X'"`
var FT8TOKEN_VERSION string

func getBuildSettingOrDefault(bi *debug.BuildInfo, key string, defaultValue string) string {
	if bi == nil {
		return defaultValue
	}

	for _, bs := range bi.Settings {
		if bs.Key == key {
			return bs.Value
		}
	}

	return defaultValue
}

func printVersion(verbose bool) {
	var buildInfo, _ = debug.ReadBuildInfo()

	var buildTimeStr = getBuildSettingOrDefault(buildInfo, "vcs.time", "UNKNOWN")

	var (
		buildCommit               = getBuildSettingOrDefault(buildInfo, "vcs.revision", "UNKNOWN")
		buildDirtyStr             = getBuildSettingOrDefault(buildInfo, "vcs.modified", "INVALID")
		buildDirty, buildDirtyErr = strconv.ParseBool(buildDirtyStr)
	)

	if buildDirty {
		buildCommit += "-DIRTY"
	} else if buildDirtyErr != nil {
		logger.Debug("Error parsing vcs.modified", "value", buildDirtyStr, "err", buildDirtyErr)

		buildCommit += "-UNKNOWNDIRTY"
	}

	var version = FT8TOKEN_VERSION
	if version == "" {
		version = "!UNKNOWN!"
	}

	fmt.Printf("ft8token - Version %s (revision %s, built at %s)\n", version, buildCommit, buildTimeStr)

	if verbose {
		fmt.Printf("\nBuildInfo: %+v\n", buildInfo)
	}
}
