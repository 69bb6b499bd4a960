package handler

import (
	appportfolio "github.com/dicky/portfolio/internal/application/portfolio"
	"github.com/gin-gonic/gin"
)

// PortfolioHandler serves the public, read-only portfolio content
type PortfolioHandler struct {
	BaseHandler
	content *appportfolio.ContentService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(content *appportfolio.ContentService) *PortfolioHandler {
	return &PortfolioHandler{content: content}
}

// ListProjects lists every project, featured first
//
// @ID           listProjects
// @Summary      List projects
// @Tags         content
// @Produce      json
// @Success      200 {object} dto.Response{data=[]appportfolio.ProjectResponse,meta=dto.Meta}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /projects [get]
func (h *PortfolioHandler) ListProjects(c *gin.Context) {
	items, err := h.content.ListProjects(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.List(c, items, len(items))
}

// GetProject returns one project with its case study
//
// @ID           getProject
// @Summary      Get a project
// @Tags         content
// @Produce      json
// @Param        id    path  string  true  "Resource ID (UUID)"
// @Success      200 {object} dto.Response{data=appportfolio.ProjectResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /projects/{id} [get]
func (h *PortfolioHandler) GetProject(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	item, err := h.content.GetProject(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// ListJourney lists the career timeline
//
// @ID           listJourney
// @Summary      List the career timeline
// @Tags         content
// @Produce      json
// @Success      200 {object} dto.Response{data=[]appportfolio.JourneyResponse,meta=dto.Meta}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /journey [get]
func (h *PortfolioHandler) ListJourney(c *gin.Context) {
	items, err := h.content.ListJourney(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.List(c, items, len(items))
}

// ListServices lists the service packages
//
// @ID           listServices
// @Summary      List service packages
// @Tags         content
// @Produce      json
// @Success      200 {object} dto.Response{data=[]appportfolio.ServicePackageResponse,meta=dto.Meta}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /services [get]
func (h *PortfolioHandler) ListServices(c *gin.Context) {
	items, err := h.content.ListServices(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.List(c, items, len(items))
}

// ListSocials lists the active social links
//
// @ID           listSocials
// @Summary      List active social links
// @Tags         content
// @Produce      json
// @Success      200 {object} dto.Response{data=[]appportfolio.SocialLinkResponse,meta=dto.Meta}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /socials [get]
func (h *PortfolioHandler) ListSocials(c *gin.Context) {
	items, err := h.content.ListSocials(c.Request.Context(), false)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.List(c, items, len(items))
}

// ListPosts lists published posts without their bodies
//
// @ID           listPosts
// @Summary      List published posts
// @Tags         content
// @Produce      json
// @Success      200 {object} dto.Response{data=[]appportfolio.PostResponse,meta=dto.Meta}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /posts [get]
func (h *PortfolioHandler) ListPosts(c *gin.Context) {
	items, err := h.content.ListPublishedPosts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.List(c, items, len(items))
}

// GetPost returns a published post by slug
//
// @ID           getPostBySlug
// @Summary      Get a published post
// @Tags         content
// @Produce      json
// @Param        slug  path  string  true  "Post slug"
// @Success      200 {object} dto.Response{data=appportfolio.PostResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /posts/{slug} [get]
func (h *PortfolioHandler) GetPost(c *gin.Context) {
	item, err := h.content.GetPublishedPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}
