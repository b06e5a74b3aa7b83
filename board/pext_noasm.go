//go:build !amd64

package board

func hasFastPext() bool { return false }

func enableFastPext() {}
