package block

import "golang.org/x/sys/cpu"

// wideCombineFast is set once at init and selects the unrolled combine path
// for Block128/Block256. Both the fast and the fallback path are plain Go —
// this only changes which straight-line shape the compiler gets to see.
// The gate is an x/sys/cpu probe: AVX2 on x86 or ASIMD on arm64.
var wideCombineFast bool

func init() {
	detectCapabilities()
}

func detectCapabilities() {
	wideCombineFast = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD
}

// Capabilities reports which combine path the wide block types selected.
// It is purely informational: both paths are semantically identical.
type Capabilities struct {
	WideCombineFast bool
}

// DetectedCapabilities returns the capability flags detected at init time.
func DetectedCapabilities() Capabilities {
	return Capabilities{WideCombineFast: wideCombineFast}
}
