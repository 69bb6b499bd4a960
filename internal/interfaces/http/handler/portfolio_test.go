package handler

import (
	"context"
	"net/http"
	"testing"

	appportfolio "github.com/dicky/portfolio/internal/application/portfolio"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func publicRouter(content *appportfolio.ContentService) *gin.Engine {
	h := NewPortfolioHandler(content)
	r := newEngine()
	r.GET("/projects", h.ListProjects)
	r.GET("/projects/:id", h.GetProject)
	r.GET("/journey", h.ListJourney)
	r.GET("/services", h.ListServices)
	r.GET("/socials", h.ListSocials)
	r.GET("/posts", h.ListPosts)
	r.GET("/posts/:slug", h.GetPost)
	return r
}

func TestPortfolioHandler_Projects(t *testing.T) {
	content := newContentService(t)
	ctx := context.Background()
	plain, err := content.CreateProject(ctx, appportfolio.ProjectInput{Title: ptr("Kasir Online")})
	require.NoError(t, err)
	featured, err := content.CreateProject(ctx, appportfolio.ProjectInput{
		Title:    ptr("Inventory API"),
		Featured: ptr(true),
		TechStack: &[]appportfolio.TechTagInput{
			{Name: "Go", Color: "#00ADD8"},
		},
	})
	require.NoError(t, err)
	r := publicRouter(content)

	w := doJSON(t, r, http.MethodGet, "/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, int64(2), gjson.Get(body, "meta.total").Int())
	assert.Equal(t, featured.ID.String(), gjson.Get(body, "data.0.id").String())
	assert.Equal(t, "Go", gjson.Get(body, "data.0.tech_stack.0.name").String())
	assert.Equal(t, plain.ID.String(), gjson.Get(body, "data.1.id").String())

	w = doJSON(t, r, http.MethodGet, "/projects/"+plain.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Kasir Online", gjson.Get(w.Body.String(), "data.title").String())

	w = doJSON(t, r, http.MethodGet, "/projects/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ERR_NOT_FOUND", gjson.Get(w.Body.String(), "error.code").String())

	w = doJSON(t, r, http.MethodGet, "/projects/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPortfolioHandler_EmptyListsAreArrays(t *testing.T) {
	r := publicRouter(newContentService(t))

	for _, path := range []string{"/projects", "/journey", "/services", "/socials", "/posts"} {
		w := doJSON(t, r, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		data := gjson.Get(w.Body.String(), "data")
		assert.True(t, data.IsArray(), path)
		assert.Empty(t, data.Array(), path)
	}
}

func TestPortfolioHandler_SocialsHideInactive(t *testing.T) {
	content := newContentService(t)
	ctx := context.Background()
	_, err := content.CreateSocial(ctx, appportfolio.SocialLinkInput{
		Platform: ptr("GitHub"), URL: ptr("https://github.com/dicky"), Active: ptr(true),
	})
	require.NoError(t, err)
	_, err = content.CreateSocial(ctx, appportfolio.SocialLinkInput{
		Platform: ptr("MySpace"), URL: ptr("https://myspace.com/dicky"), Active: ptr(false),
	})
	require.NoError(t, err)

	w := doJSON(t, publicRouter(content), http.MethodGet, "/socials", nil)

	require.Equal(t, http.StatusOK, w.Code)
	platforms := gjson.Get(w.Body.String(), "data.#.platform").Array()
	require.Len(t, platforms, 1)
	assert.Equal(t, "GitHub", platforms[0].String())
}

func TestPortfolioHandler_Posts(t *testing.T) {
	content := newContentService(t)
	ctx := context.Background()
	_, err := content.CreatePost(ctx, appportfolio.PostInput{
		Slug: ptr("hello-go"), Title: ptr("Hello Go"), Content: ptr("## Intro\nbody"), Published: ptr(true),
	})
	require.NoError(t, err)
	_, err = content.CreatePost(ctx, appportfolio.PostInput{
		Slug: ptr("draft"), Title: ptr("Draft"), Content: ptr("wip"),
	})
	require.NoError(t, err)
	r := publicRouter(content)

	w := doJSON(t, r, http.MethodGet, "/posts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), gjson.Get(w.Body.String(), "meta.total").Int())
	assert.Equal(t, "hello-go", gjson.Get(w.Body.String(), "data.0.slug").String())
	assert.False(t, gjson.Get(w.Body.String(), "data.0.content").Exists())

	w = doJSON(t, r, http.MethodGet, "/posts/hello-go", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "## Intro\nbody", gjson.Get(w.Body.String(), "data.content").String())

	w = doJSON(t, r, http.MethodGet, "/posts/draft", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
