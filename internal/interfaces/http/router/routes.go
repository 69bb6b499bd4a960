package router

import (
	"net/http"

	_ "github.com/dicky/portfolio/docs" // registers the OpenAPI document
	"github.com/dicky/portfolio/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers are the endpoints mounted by Mount
type Handlers struct {
	Portfolio *handler.PortfolioHandler
	Admin     *handler.AdminHandler
	Media     *handler.MediaHandler
	Chat      *handler.ChatHandler
	SEO       *handler.SEOHandler
	System    *handler.SystemHandler
}

// Guards are the route-specific middleware. Nil guards are skipped, except
// AdminAuth: without it the admin routes are not mounted at all.
type Guards struct {
	AdminAuth gin.HandlerFunc
	ChatLimit gin.HandlerFunc
	Metrics   http.Handler
	// Docs guards /swagger; without it the documentation is not mounted
	Docs gin.HandlerFunc
}

// APIBase is the prefix of every JSON endpoint
const APIBase = "/api/v1"

// Mount registers the root endpoints and the /api/v1 tree on engine and
// returns the API route table.
func Mount(engine *gin.Engine, h Handlers, g Guards) []Route {
	engine.GET("/health", h.System.Health)
	engine.GET("/sitemap.xml", h.SEO.Sitemap)
	engine.GET("/robots.txt", h.SEO.Robots)
	if g.Metrics != nil {
		engine.GET("/metrics", gin.WrapH(g.Metrics))
	}
	if g.Docs != nil {
		engine.GET("/swagger/*any", g.Docs, ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r := NewRouter(engine, APIBase).Register(
		contentRoutes(h.Portfolio),
		NewGroup("chat", "/chat").
			POST("", g.ChatLimit, h.Chat.Stream).
			POST("/render", h.Chat.Render),
		NewGroup("system", "/system").
			GET("/ping", h.System.Ping).
			GET("/info", h.System.GetSystemInfo),
	)
	if g.AdminAuth != nil {
		r.Register(adminRoutes(h.Admin, h.Media).Use(g.AdminAuth))
	}
	return r.Setup()
}

func contentRoutes(h *handler.PortfolioHandler) *Group {
	return NewGroup("content", "").
		GET("/projects", h.ListProjects).
		GET("/projects/:id", h.GetProject).
		GET("/journey", h.ListJourney).
		GET("/services", h.ListServices).
		GET("/socials", h.ListSocials).
		GET("/posts", h.ListPosts).
		GET("/posts/:slug", h.GetPost)
}

func adminRoutes(h *handler.AdminHandler, media *handler.MediaHandler) *Group {
	admin := NewGroup("admin", "/admin")

	admin.Child("projects", "/projects").
		POST("", h.CreateProject).
		PUT("/:id", h.UpdateProject).
		DELETE("/:id", h.DeleteProject)

	admin.Child("journey", "/journey").
		POST("", h.CreateJourney).
		PUT("/:id", h.UpdateJourney).
		DELETE("/:id", h.DeleteJourney)

	admin.Child("services", "/services").
		POST("", h.CreateService).
		PUT("/:id", h.UpdateService).
		DELETE("/:id", h.DeleteService)

	admin.Child("socials", "/socials").
		GET("", h.ListSocials).
		POST("", h.CreateSocial).
		PUT("/:id", h.UpdateSocial).
		DELETE("/:id", h.DeleteSocial)

	admin.Child("posts", "/posts").
		GET("", h.ListPosts).
		GET("/:id", h.GetPost).
		POST("", h.CreatePost).
		PUT("/:id", h.UpdatePost).
		DELETE("/:id", h.DeletePost)

	admin.Child("media", "/media").
		POST("", media.Upload).
		DELETE("", media.Delete)

	return admin
}
