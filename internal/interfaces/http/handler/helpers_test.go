package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	appportfolio "github.com/dicky/portfolio/internal/application/portfolio"
	"github.com/dicky/portfolio/internal/infrastructure/persistence"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newContentService backs a ContentService with an in-memory SQLite schema
func newContentService(t *testing.T) *appportfolio.ContentService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(persistence.AllModels()...))

	return appportfolio.NewContentService(appportfolio.Repositories{
		Projects: persistence.NewGormProjectRepository(db),
		Journey:  persistence.NewGormJourneyRepository(db),
		Services: persistence.NewGormServicePackageRepository(db),
		Socials:  persistence.NewGormSocialLinkRepository(db),
		Posts:    persistence.NewGormPostRepository(db),
	}, nil, nil)
}

func ptr[T any](v T) *T { return &v }

func doJSON(t *testing.T, r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newEngine() *gin.Engine {
	return gin.New()
}
