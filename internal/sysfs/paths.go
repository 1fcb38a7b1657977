package sysfs

import (
	"fmt"
	"os"
	"strings"
)

// Stock locations relative to the sysfs root. Each list is scanned in order
// and the first path that exists wins.
var (
	Paths_SocID = []string{
		"devices/soc0/soc_id",
		"devices/system/soc/soc0/id",
	}
	Paths_CPU = "devices/system/cpu"

	Paths_CPUFreq_Governor = "cpufreq/scaling_governor"
	Paths_CPUFreq_Min      = "cpufreq/scaling_min_freq"
)

// GovernorPath returns the scaling_governor node of a logical CPU.
func GovernorPath(root string, cpu int) string {
	return pathJoin(root, Paths_CPU, fmt.Sprintf("cpu%d", cpu), Paths_CPUFreq_Governor)
}

// ScalingMinFreqPath returns the scaling_min_freq node of a logical CPU.
func ScalingMinFreqPath(root string, cpu int) string {
	return pathJoin(root, Paths_CPU, fmt.Sprintf("cpu%d", cpu), Paths_CPUFreq_Min)
}

func pathJoin(parts ...string) string {
	path := ""
	for i := 0; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		if path != "" && !strings.HasSuffix(path, "/") {
			path += "/"
		}
		path += parts[i]
	}
	return path
}

func pathValid(path string) bool {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false
	}
	return true
}

// pathLoop returns the first of paths that exists under prefix.
// Paths MUST NOT be rooted when a prefix is given.
func pathLoop(paths []string, prefix string) string {
	for i := 0; i < len(paths); i++ {
		path := pathJoin(prefix, paths[i])
		if pathValid(path) {
			return path
		}
	}
	return ""
}
