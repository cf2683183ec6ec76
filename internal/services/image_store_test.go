package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadRequest(t *testing.T, filename string) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("image bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/create/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	file, header, err := req.FormFile("image")
	require.NoError(t, err)
	return file, header
}

func TestImageStoreSave(t *testing.T) {
	root := t.TempDir()
	store := NewImageStore(root)

	file, header := uploadRequest(t, "picture.png")
	defer file.Close()

	rel, err := store.Save(file, header)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rel, "posts"+string(filepath.Separator)))
	assert.True(t, strings.HasSuffix(rel, ".png"))

	data, err := os.ReadFile(filepath.Join(root, rel))
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(data))
}

func TestImageStoreRejectsUnknownExtension(t *testing.T) {
	store := NewImageStore(t.TempDir())

	file, header := uploadRequest(t, "payload.exe")
	defer file.Close()

	_, err := store.Save(file, header)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "image")
}
