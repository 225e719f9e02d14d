package testutil

import (
	"bytes"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

// FormFile is one file part of a multipart test form.
type FormFile struct {
	Name    string
	Content []byte
}

// CreateFilesBody writes files under the "files" field plus extra text
// fields. It returns the body and its content type.
func CreateFilesBody(t *testing.T, files []FormFile, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, f := range files {
		part, err := writer.CreateFormFile("files", f.Name)
		require.NoError(t, err)
		_, err = part.Write(f.Content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

// CreateFilesForm parses the body built by CreateFilesBody into a form, the
// way gin hands it to a handler.
func CreateFilesForm(t *testing.T, files ...FormFile) *multipart.Form {
	t.Helper()

	body, contentType := CreateFilesBody(t, files, nil)
	_, params, err := parseBoundary(contentType)
	require.NoError(t, err)

	form, err := multipart.NewReader(body, params).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form
}

// CreateEmptyForm returns a form without file parts.
func CreateEmptyForm() *multipart.Form {
	return &multipart.Form{
		Value: map[string][]string{},
		File:  map[string][]*multipart.FileHeader{},
	}
}

func parseBoundary(contentType string) (string, string, error) {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", "", err
	}
	return mediaType, params["boundary"], nil
}
