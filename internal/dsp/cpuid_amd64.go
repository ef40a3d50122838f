//go:build amd64

package dsp

import "golang.org/x/sys/cpu"

// hasAVX2 is resolved during variable initialisation, before any package
// init() runs, so the dispatch init() in dsp_amd64.go can rely on it.
// x/sys/cpu accounts for OS support of YMM state saving (OSXSAVE).
var hasAVX2 = cpu.X86.HasAVX2

// HasAVX2 returns true if the CPU supports AVX2 and the OS has enabled
// YMM state saving.
func HasAVX2() bool {
	return hasAVX2
}
