//go:build amd64

package board

import "testing"

func TestHardwarePextMatchesSoft(t *testing.T) {
	if !hasFastPext() {
		t.Skip("no BMI2 on this CPU")
	}
	rng := newPRNG(0xB141)
	for i := 0; i < 10000; i++ {
		x, mask := rng.next(), rng.next()
		if pextAsm(x, mask) != pextSoft(x, mask) {
			t.Fatalf("pext mismatch for x=%#x mask=%#x", x, mask)
		}
		if pdepAsm(x, mask) != pdepSoft(x, mask) {
			t.Fatalf("pdep mismatch for x=%#x mask=%#x", x, mask)
		}
	}
}
