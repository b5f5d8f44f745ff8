package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withVersion(t *testing.T, v, commit string) {
	t.Helper()
	oldVersion, oldCommit := Version, GitCommit
	Version, GitCommit = v, commit
	t.Cleanup(func() {
		Version, GitCommit = oldVersion, oldCommit
	})
}

func TestGetVersionNormalizes(t *testing.T) {
	withVersion(t, "v1.4.0", "unknown")
	assert.Equal(t, "1.4.0", GetVersion())
}

func TestGetVersionPrerelease(t *testing.T) {
	withVersion(t, "2.0.0-rc.1", "unknown")
	assert.Equal(t, "2.0.0-rc.1", GetVersion())
}

func TestGetVersionKeepsNonSemver(t *testing.T) {
	withVersion(t, "nightly", "unknown")
	assert.Equal(t, "nightly", GetVersion())
}

func TestGetShortVersion(t *testing.T) {
	withVersion(t, "1.2.3", "0123456789abcdef")
	assert.Equal(t, "1.2.3 (0123456)", GetShortVersion())
}

func TestParse(t *testing.T) {
	sv, err := Parse(" v3.1.0 ")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), sv.Major())

	_, err = Parse("not-a-version")
	assert.Error(t, err)
}

func TestGetBuildInfo(t *testing.T) {
	withVersion(t, "1.0.0", "abcdef1234")
	info := GetBuildInfo()
	assert.Equal(t, "1.0.0", info.Version)
	assert.Equal(t, "abcdef1234", info.GitCommit)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}
