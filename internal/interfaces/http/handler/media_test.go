package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dicky/portfolio/internal/application/media"
	"github.com/dicky/portfolio/internal/infrastructure/storage"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func mediaRouter(t *testing.T, maxSize int64) (*gin.Engine, string) {
	t.Helper()
	root := t.TempDir()
	store, err := storage.NewLocalObjectStorage(root, "https://example.test/uploads")
	require.NoError(t, err)
	h := NewMediaHandler(media.NewService(store, maxSize, nil))
	r := newEngine()
	r.POST("/media", h.Upload)
	r.DELETE("/media", h.Delete)
	return r, root
}

func multipartUpload(t *testing.T, folder, filename, contentType string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if folder != "" {
		require.NoError(t, mw.WriteField("folder", folder))
	}
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	if contentType != "" {
		hdr.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/media", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestMediaHandler_UploadAndDelete(t *testing.T) {
	r, root := mediaRouter(t, 1<<20)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartUpload(t, "projects", "shot.png", "image/png", pngHeader))

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := w.Body.String()
	key := gjson.Get(body, "data.key").String()
	assert.True(t, strings.HasPrefix(key, "media/projects/"), key)
	assert.True(t, strings.HasSuffix(key, ".png"), key)
	assert.Equal(t, "https://example.test/uploads/"+key, gjson.Get(body, "data.url").String())
	assert.Equal(t, int64(len(pngHeader)), gjson.Get(body, "data.size").Int())

	stored, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, stored)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/media?key="+key, nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(key)))
	assert.True(t, os.IsNotExist(err))
}

func TestMediaHandler_DetectsContentType(t *testing.T) {
	r, _ := mediaRouter(t, 1<<20)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartUpload(t, "", "shot", "application/octet-stream", pngHeader))

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "image/png", gjson.Get(w.Body.String(), "data.content_type").String())
	assert.True(t, strings.HasPrefix(gjson.Get(w.Body.String(), "data.key").String(), "media/misc/"))
}

func TestMediaHandler_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		maxSize    int64
		req        func(t *testing.T) *http.Request
		wantStatus int
		wantCode   string
	}{
		{
			name:    "too large",
			maxSize: 4,
			req: func(t *testing.T) *http.Request {
				return multipartUpload(t, "", "big.png", "image/png", pngHeader)
			},
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "ERR_PAYLOAD_TOO_LARGE",
		},
		{
			name:    "unsupported type",
			maxSize: 1 << 20,
			req: func(t *testing.T) *http.Request {
				return multipartUpload(t, "", "cv.pdf", "application/pdf", []byte("%PDF-1.7"))
			},
			wantStatus: http.StatusUnsupportedMediaType,
			wantCode:   "ERR_UNSUPPORTED_MEDIA_TYPE",
		},
		{
			name:    "missing file",
			maxSize: 1 << 20,
			req: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/media", nil)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "ERR_BAD_REQUEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := mediaRouter(t, tt.maxSize)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, tt.req(t))
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, gjson.Get(w.Body.String(), "error.code").String())
		})
	}
}

func TestMediaHandler_DeleteRejectsForeignKeys(t *testing.T) {
	r, _ := mediaRouter(t, 1<<20)

	for _, target := range []string{"/media", "/media?key=config.toml", "/media?key=media/../secret"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, target, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}
