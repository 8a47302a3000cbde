package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withVersion(t *testing.T, version, commit, buildTime string) {
	t.Helper()
	oldV, oldC, oldB := Version, Commit, BuildTime
	Version, Commit, BuildTime = version, commit, buildTime
	t.Cleanup(func() { Version, Commit, BuildTime = oldV, oldC, oldB })
}

func TestFormatVersion(t *testing.T) {
	withVersion(t, "1.2.3", "abc1234", "2025-10-23T10:20:30Z")
	assert.Equal(t, "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)", FormatVersion())

	BuildTime = ""
	assert.Equal(t, "1.2.3 (commit: abc1234)", FormatVersion())

	Commit = ""
	assert.Equal(t, "1.2.3 (development)", FormatVersion())

	Version = ""
	assert.Equal(t, "0.0.0-dev (development)", FormatVersion())
}

func TestApplySettings(t *testing.T) {
	withVersion(t, "0.0.0-dev", "", "")

	applySettings([]debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.time", Value: "2025-10-23T10:20:30+02:00"},
		{Key: "vcs.tag", Value: "v2.0.1"},
		{Key: "vcs.modified", Value: "true"},
	})

	assert.Equal(t, "0123456", Commit)
	assert.Equal(t, "2025-10-23T08:20:30Z", BuildTime)
	assert.Equal(t, "2.0.1-dirty", Version)
}
