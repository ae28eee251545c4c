package allowdirs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armatrix/opencode-allowdirs/hook"
)

func TestHandlePermission_AllowsConfiguredDirectory(t *testing.T) {
	r := newTestResolver(t, `{"allowedDirectories": ["/w/projects"]}`)
	p := NewPlugin(r)

	result, err := p.HandlePermission(context.Background(), &hook.Request{
		ID:       "req-1",
		Type:     hook.TypeExternalDirectory,
		Metadata: map[string]any{hook.MetadataParentDir: "/w/projects/app"},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, hook.StatusAllow, result.Status)
}

func TestHandlePermission_DefersOutsidePath(t *testing.T) {
	r := newTestResolver(t, `{"allowedDirectories": ["/w/projects"]}`)
	p := NewPlugin(r)

	result, err := p.HandlePermission(context.Background(), &hook.Request{
		Type:     hook.TypeExternalDirectory,
		Metadata: map[string]any{hook.MetadataParentDir: "/w/other"},
	})
	require.NoError(t, err)
	assert.Nil(t, result, "no opinion: host default prompt flow applies")
}

func TestHandlePermission_IgnoresOtherRequestTypes(t *testing.T) {
	r := newTestResolver(t, `{"allowedDirectories": ["/w/projects"]}`)
	p := NewPlugin(r)

	result, err := p.HandlePermission(context.Background(), &hook.Request{
		Type:     "bash",
		Metadata: map[string]any{hook.MetadataParentDir: "/w/projects/app"},
	})
	require.NoError(t, err)
	assert.Nil(t, result, "only external_directory requests are acted on")
}

func TestHandlePermission_FilePathFallback(t *testing.T) {
	r := newTestResolver(t, `{"allowedDirectories": ["/w/projects"]}`)
	p := NewPlugin(r)

	result, err := p.HandlePermission(context.Background(), &hook.Request{
		Type:     hook.TypeExternalDirectory,
		Metadata: map[string]any{hook.MetadataFilePath: "/w/projects/app/file.ts"},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, hook.StatusAllow, result.Status)
}

func TestHandlePermission_MissingTargetPath(t *testing.T) {
	r := newTestResolver(t, `{"allowedDirectories": ["/w/projects"]}`)
	p := NewPlugin(r)

	result, err := p.HandlePermission(context.Background(), &hook.Request{
		Type: hook.TypeExternalDirectory,
	})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestHandlePermission_NonStringMetadata(t *testing.T) {
	r := newTestResolver(t, `{"allowedDirectories": ["/w/projects"]}`)
	p := NewPlugin(r)

	result, err := p.HandlePermission(context.Background(), &hook.Request{
		Type:     hook.TypeExternalDirectory,
		Metadata: map[string]any{hook.MetadataParentDir: 42},
	})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestHandlePermission_NilRequest(t *testing.T) {
	r := newTestResolver(t, `{"allowedDirectories": ["/w/projects"]}`)
	p := NewPlugin(r)

	result, err := p.HandlePermission(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestHandlePermission_EmptyAllowlistDefersEverything(t *testing.T) {
	r := newTestResolver(t, `{}`)
	p := NewPlugin(r)

	result, err := p.HandlePermission(context.Background(), &hook.Request{
		Type:     hook.TypeExternalDirectory,
		Metadata: map[string]any{hook.MetadataParentDir: "/anywhere"},
	})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestHandlePermission_NoConfigFilesAnywhere(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	workspace := t.TempDir()
	p := NewPlugin(NewResolver(workspace, workspace))

	result, err := p.HandlePermission(context.Background(), &hook.Request{
		Type:     hook.TypeExternalDirectory,
		Metadata: map[string]any{hook.MetadataParentDir: "/anywhere"},
	})
	require.NoError(t, err)
	assert.Nil(t, result, "empty merged set auto-approves nothing")
}

func TestDecide_CoreBoundary(t *testing.T) {
	r := newTestResolver(t, `{"allowedDirectories": ["/w/projects"]}`)
	p := NewPlugin(r)

	assert.Equal(t, Allow, p.Decide(hook.TypeExternalDirectory, "/w/projects/app"))
	assert.Equal(t, Defer, p.Decide(hook.TypeExternalDirectory, "/w/other"))
	assert.Equal(t, Defer, p.Decide(hook.TypeExternalDirectory, ""))
	assert.Equal(t, Defer, p.Decide("edit", "/w/projects/app"))
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "allow", Allow.String())
	assert.Equal(t, "defer", Defer.String())
}
