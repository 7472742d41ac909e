package trap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riginding/dora/internal/trap"
)

func TestPlatformPredicatesAreMutuallyExclusiveOverOS(t *testing.T) {
	cases := []trap.Platform{
		{OS: "linux", Arch: "amd64"},
		{OS: "darwin", Arch: "arm64"},
		{OS: "windows", Arch: "amd64"},
	}
	for _, p := range cases {
		n := 0
		for _, b := range []bool{p.IsLinux(), p.IsDarwin(), p.IsWindows()} {
			if b {
				n++
			}
		}
		assert.Equal(t, 1, n, "%+v", p)
	}
}

func TestPlatformSupported(t *testing.T) {
	assert.True(t, trap.Platform{OS: "linux", Arch: "amd64"}.Supported())
	assert.True(t, trap.Platform{OS: "darwin", Arch: "arm64"}.Supported())
	assert.False(t, trap.Platform{OS: "windows", Arch: "amd64"}.Supported())
	assert.False(t, trap.Platform{OS: "linux", Arch: "riscv64"}.Supported())
}

func TestHostMatchesRuntimePosix(t *testing.T) {
	h := trap.Host()
	assert.Equal(t, h.OS != "windows", h.IsPosix())
}
