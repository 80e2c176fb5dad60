package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	id := uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")
	at := time.Unix(1700000000, 0)

	assert.Equal(t, "service_0f8fad5b_1700000000.png", ObjectKey("Photo.PNG", id, at))
	assert.Equal(t, "service_0f8fad5b_1700000000", ObjectKey("noext", id, at))
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		"a.jpg":  "image/jpeg",
		"a.JPEG": "image/jpeg",
		"a.png":  "image/png",
		"a.gif":  "image/gif",
		"a.webp": "image/webp",
		"a.pdf":  "application/octet-stream",
	}
	for name, want := range tests {
		assert.Equal(t, want, ContentType(name), name)
	}
}

func TestGetFileURL_PresignsOffline(t *testing.T) {
	// presign считается локально и сервер не нужен
	client, err := newOffline("localhost:9000", "images")
	require.NoError(t, err)

	url, err := client.GetFileURL(context.Background(), "service_1.png", time.Hour)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:9000/images/service_1.png?"), url)
	assert.Contains(t, url, "X-Amz-Signature=")
}
