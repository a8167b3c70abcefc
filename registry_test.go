package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := NewRegistry(filepath.Join("testdata", "gl.xml"), "gl", testLogger())
	require.NoError(t, err)
	return reg
}

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "registry.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRegistrySignature(t *testing.T) {
	reg := loadTestRegistry(t)

	ret, params, ok := reg.Signature("glFoo")
	require.True(t, ok)
	assert.Equal(t, "void", ret)
	require.Len(t, params, 1)
	assert.Equal(t, Param{Type: "GLint", Name: "x"}, params[0])

	_, _, ok = reg.Signature("glNotACommand")
	assert.False(t, ok)
}

func TestRegistrySignatureMetadata(t *testing.T) {
	reg := loadTestRegistry(t)

	ret, params, ok := reg.Signature("glGetFloatv")
	require.True(t, ok)
	assert.Equal(t, "void", ret)
	require.Len(t, params, 2)
	assert.Equal(t, Param{Type: "GLenum", Name: "pname", Group: "GetPName"}, params[0])
	assert.Equal(t, Param{Type: "GLfloat *", Name: "data", Len: "COMPSIZE(pname)"}, params[1])
}

func TestRegistryNonVoidReturn(t *testing.T) {
	reg := loadTestRegistry(t)

	ret, params, ok := reg.Signature("glCreateShader")
	require.True(t, ok)
	assert.Equal(t, "GLuint", ret)
	require.Len(t, params, 1)
	assert.Equal(t, "ShaderType", params[0].Group)
}

func TestResolveAlias(t *testing.T) {
	reg := loadTestRegistry(t)

	assert.Equal(t, "glBindBuffer", reg.ResolveAlias("glBindBufferARB"))
	assert.Equal(t, "glBindBuffer", reg.ResolveAlias("glBindBuffer"))
	assert.Equal(t, "glNeverHeardOf", reg.ResolveAlias("glNeverHeardOf"))
}

func TestResolveAliasCycleTerminates(t *testing.T) {
	path := writeRegistry(t, `<registry>
    <commands>
        <command alias="glB"><proto>void <name>glA</name></proto></command>
        <command alias="glA"><proto>void <name>glB</name></proto></command>
        <command alias="glSelf"><proto>void <name>glSelf</name></proto></command>
    </commands>
</registry>`)
	reg, err := NewRegistry(path, "gl", testLogger())
	require.NoError(t, err)

	got := reg.ResolveAlias("glA")
	assert.Contains(t, []string{"glA", "glB"}, got)
	assert.Equal(t, "glSelf", reg.ResolveAlias("glSelf"))
}

func TestSignatureCanonical(t *testing.T) {
	reg := loadTestRegistry(t)

	ret, params, canon, ok := reg.SignatureCanonical("glBindBufferARB")
	require.True(t, ok)
	assert.Equal(t, "glBindBuffer", canon)
	assert.Equal(t, "void", ret)
	require.Len(t, params, 2)
	assert.Equal(t, "target", params[0].Name)

	_, _, _, ok = reg.SignatureCanonical("glNotACommand")
	assert.False(t, ok)
}

func TestVersionKeepsLowest(t *testing.T) {
	reg := loadTestRegistry(t)

	// glBindBuffer is required by both 1.5 and 3.0.
	version, _ := reg.VersionOrExtensions("glBindBuffer")
	assert.Equal(t, "1.5", version)
}

func TestVersionOrExtensionsAliasUnion(t *testing.T) {
	reg := loadTestRegistry(t)

	version, exts := reg.VersionOrExtensions("glBindBufferARB")
	assert.Equal(t, "1.5", version)
	assert.Equal(t, []string{"GL_ARB_vertex_buffer_object"}, exts)

	version, exts = reg.VersionOrExtensions("glFoo")
	assert.Equal(t, "4.0", version)
	assert.Empty(t, exts)
}

func TestFeatureAPIFilter(t *testing.T) {
	reg, err := NewRegistry(filepath.Join("testdata", "gl.xml"), "gles2", testLogger())
	require.NoError(t, err)

	version, _ := reg.VersionOrExtensions("glBindBuffer")
	assert.Equal(t, "2.0", version)
	version, _ = reg.VersionOrExtensions("glFoo")
	assert.Equal(t, "", version)
}

func TestVersionLess(t *testing.T) {
	assert.True(t, versionLess("1.0", "3.3"))
	assert.False(t, versionLess("3.3", "1.0"))
	assert.False(t, versionLess("1.0", "1.0"))
	assert.True(t, versionLess("1.0", "1.0.1"))
	assert.True(t, versionLess("1.9", "1.10"))
	// Non-comparable versions never displace an existing value.
	assert.False(t, versionLess("4.x", "1.0"))
	assert.False(t, versionLess("1.0", "4.x"))
}
