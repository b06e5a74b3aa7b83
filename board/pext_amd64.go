//go:build amd64

package board

import "golang.org/x/sys/cpu"

// Single-instruction PEXT/PDEP wrappers, implemented in pext_amd64.s.
func pextAsm(x, mask uint64) uint64
func pdepAsm(x, mask uint64) uint64

func hasFastPext() bool {
	return cpu.X86.HasBMI2
}

func enableFastPext() {
	pextFn, pdepFn = pextAsm, pdepAsm
}
