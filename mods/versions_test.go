package mods

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	versionString = "v0.3.1-rc1"
	versionGitSHA = "11f32f31"
	buildTimestamp = "2026/08/10T11:22"
	goVersionString = "1.25.5"

	ver := GetVersion()
	require.NotNil(t, ver)
	require.Equal(t, 0, ver.Major)
	require.Equal(t, 3, ver.Minor)
	require.Equal(t, 1, ver.Patch)
	require.Equal(t, "11f32f31", ver.GitSHA)
	require.Equal(t, "V0.3.1-RC1", DisplayVersion())
	require.Equal(t, "V0.3.1-RC1 (11f32f31 2026/08/10T11:22)", VersionString())
	require.Equal(t, "1.25.5", BuildCompiler())
	require.Equal(t, "2026/08/10T11:22", BuildTimestamp())
}
