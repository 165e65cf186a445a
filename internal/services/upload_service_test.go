package services

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartFile(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestUploadSaveAndDelete(t *testing.T) {
	root := t.TempDir()
	svc := NewUploadService(root, 2*1024*1024)

	path, err := svc.Save(multipartFile(t, "photo.PNG", []byte("fake-png")), "projects")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/uploads/projects/"))
	assert.True(t, strings.HasSuffix(path, ".png"))

	onDisk := filepath.Join(root, strings.TrimPrefix(path, "/uploads/"))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-png"), data)

	require.NoError(t, svc.Delete(path))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))
}

func TestUploadRejectsDisallowedExtension(t *testing.T) {
	svc := NewUploadService(t.TempDir(), 2*1024*1024)

	_, err := svc.Save(multipartFile(t, "evil.exe", []byte("mz")), "projects")
	assert.Error(t, err)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	svc := NewUploadService(t.TempDir(), 4)

	_, err := svc.Save(multipartFile(t, "big.png", []byte("too large")), "projects")
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestUploadFolderCannotEscapeRoot(t *testing.T) {
	root := t.TempDir()
	svc := NewUploadService(root, 2*1024*1024)

	path, err := svc.Save(multipartFile(t, "a.png", []byte("x")), "../../etc")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/uploads/etc/"))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "etc", entries[0].Name())
}

func TestUploadDeleteRejectsTraversal(t *testing.T) {
	svc := NewUploadService(t.TempDir(), 2*1024*1024)

	assert.Error(t, svc.Delete("/uploads/../secret.txt"))
}
