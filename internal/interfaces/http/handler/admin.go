package handler

import (
	"context"

	appportfolio "github.com/dicky/portfolio/internal/application/portfolio"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler manages portfolio content behind admin authentication
type AdminHandler struct {
	BaseHandler
	content *appportfolio.ContentService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(content *appportfolio.ContentService) *AdminHandler {
	return &AdminHandler{content: content}
}

func createWith[In any, Out any](h *AdminHandler, c *gin.Context, create func(context.Context, In) (*Out, error)) {
	var in In
	if !h.BindJSON(c, &in) {
		return
	}
	out, err := create(c.Request.Context(), in)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, out)
}

func updateWith[In any, Out any](h *AdminHandler, c *gin.Context, update func(context.Context, uuid.UUID, In) (*Out, error)) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	var in In
	if !h.BindJSON(c, &in) {
		return
	}
	out, err := update(c.Request.Context(), id, in)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, out)
}

func (h *AdminHandler) deleteWith(c *gin.Context, del func(context.Context, uuid.UUID) error) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	if err := del(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Projects

// CreateProject godoc
//
// @ID           adminCreateProject
// @Summary      Create a project
// @Tags         admin-projects
// @Accept       json
// @Produce      json
// @Param        request  body  appportfolio.ProjectInput  true  "Fields to set"
// @Success      201 {object} dto.Response{data=appportfolio.ProjectResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/projects [post]
func (h *AdminHandler) CreateProject(c *gin.Context) { createWith(h, c, h.content.CreateProject) }

// UpdateProject godoc
//
// @ID           adminUpdateProject
// @Summary      Update a project
// @Description  Only the fields present in the body are changed
// @Tags         admin-projects
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Resource ID (UUID)"
// @Param        request  body  appportfolio.ProjectInput  true  "Fields to set"
// @Success      200 {object} dto.Response{data=appportfolio.ProjectResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/projects/{id} [put]
func (h *AdminHandler) UpdateProject(c *gin.Context) { updateWith(h, c, h.content.UpdateProject) }

// DeleteProject godoc
//
// @ID           adminDeleteProject
// @Summary      Delete a project
// @Tags         admin-projects
// @Produce      json
// @Param        id    path  string  true  "Resource ID (UUID)"
// @Success      204
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/projects/{id} [delete]
func (h *AdminHandler) DeleteProject(c *gin.Context) { h.deleteWith(c, h.content.DeleteProject) }

// Journey

// CreateJourney godoc
//
// @ID           adminCreateJourney
// @Summary      Create a journey item
// @Tags         admin-journey
// @Accept       json
// @Produce      json
// @Param        request  body  appportfolio.JourneyInput  true  "Fields to set"
// @Success      201 {object} dto.Response{data=appportfolio.JourneyResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/journey [post]
func (h *AdminHandler) CreateJourney(c *gin.Context) { createWith(h, c, h.content.CreateJourney) }

// UpdateJourney godoc
//
// @ID           adminUpdateJourney
// @Summary      Update a journey item
// @Description  Only the fields present in the body are changed
// @Tags         admin-journey
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Resource ID (UUID)"
// @Param        request  body  appportfolio.JourneyInput  true  "Fields to set"
// @Success      200 {object} dto.Response{data=appportfolio.JourneyResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/journey/{id} [put]
func (h *AdminHandler) UpdateJourney(c *gin.Context) { updateWith(h, c, h.content.UpdateJourney) }

// DeleteJourney godoc
//
// @ID           adminDeleteJourney
// @Summary      Delete a journey item
// @Tags         admin-journey
// @Produce      json
// @Param        id    path  string  true  "Resource ID (UUID)"
// @Success      204
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/journey/{id} [delete]
func (h *AdminHandler) DeleteJourney(c *gin.Context) { h.deleteWith(c, h.content.DeleteJourney) }

// Service packages

// CreateService godoc
//
// @ID           adminCreateService
// @Summary      Create a service package
// @Tags         admin-services
// @Accept       json
// @Produce      json
// @Param        request  body  appportfolio.ServicePackageInput  true  "Fields to set"
// @Success      201 {object} dto.Response{data=appportfolio.ServicePackageResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/services [post]
func (h *AdminHandler) CreateService(c *gin.Context) { createWith(h, c, h.content.CreateService) }

// UpdateService godoc
//
// @ID           adminUpdateService
// @Summary      Update a service package
// @Description  Only the fields present in the body are changed
// @Tags         admin-services
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Resource ID (UUID)"
// @Param        request  body  appportfolio.ServicePackageInput  true  "Fields to set"
// @Success      200 {object} dto.Response{data=appportfolio.ServicePackageResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/services/{id} [put]
func (h *AdminHandler) UpdateService(c *gin.Context) { updateWith(h, c, h.content.UpdateService) }

// DeleteService godoc
//
// @ID           adminDeleteService
// @Summary      Delete a service package
// @Tags         admin-services
// @Produce      json
// @Param        id    path  string  true  "Resource ID (UUID)"
// @Success      204
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/services/{id} [delete]
func (h *AdminHandler) DeleteService(c *gin.Context) { h.deleteWith(c, h.content.DeleteService) }

// Social links

// ListSocials lists every social link including inactive ones
//
// @ID           adminListSocials
// @Summary      List all social links
// @Tags         admin-socials
// @Produce      json
// @Success      200 {object} dto.Response{data=[]appportfolio.SocialLinkResponse,meta=dto.Meta}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/socials [get]
func (h *AdminHandler) ListSocials(c *gin.Context) {
	items, err := h.content.ListSocials(c.Request.Context(), true)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.List(c, items, len(items))
}

// CreateSocial godoc
//
// @ID           adminCreateSocial
// @Summary      Create a social link
// @Tags         admin-socials
// @Accept       json
// @Produce      json
// @Param        request  body  appportfolio.SocialLinkInput  true  "Fields to set"
// @Success      201 {object} dto.Response{data=appportfolio.SocialLinkResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/socials [post]
func (h *AdminHandler) CreateSocial(c *gin.Context) { createWith(h, c, h.content.CreateSocial) }

// UpdateSocial godoc
//
// @ID           adminUpdateSocial
// @Summary      Update a social link
// @Description  Only the fields present in the body are changed
// @Tags         admin-socials
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Resource ID (UUID)"
// @Param        request  body  appportfolio.SocialLinkInput  true  "Fields to set"
// @Success      200 {object} dto.Response{data=appportfolio.SocialLinkResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/socials/{id} [put]
func (h *AdminHandler) UpdateSocial(c *gin.Context) { updateWith(h, c, h.content.UpdateSocial) }

// DeleteSocial godoc
//
// @ID           adminDeleteSocial
// @Summary      Delete a social link
// @Tags         admin-socials
// @Produce      json
// @Param        id    path  string  true  "Resource ID (UUID)"
// @Success      204
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/socials/{id} [delete]
func (h *AdminHandler) DeleteSocial(c *gin.Context) { h.deleteWith(c, h.content.DeleteSocial) }

// Posts

// ListPosts lists every post including drafts
//
// @ID           adminListPosts
// @Summary      List all posts
// @Description  Drafts included
// @Tags         admin-posts
// @Produce      json
// @Success      200 {object} dto.Response{data=[]appportfolio.PostResponse,meta=dto.Meta}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/posts [get]
func (h *AdminHandler) ListPosts(c *gin.Context) {
	items, err := h.content.ListAllPosts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.List(c, items, len(items))
}

// GetPost returns any post by ID, drafts included
//
// @ID           adminGetPost
// @Summary      Get any post
// @Tags         admin-posts
// @Produce      json
// @Param        id    path  string  true  "Resource ID (UUID)"
// @Success      200 {object} dto.Response{data=appportfolio.PostResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/posts/{id} [get]
func (h *AdminHandler) GetPost(c *gin.Context) {
	id, ok := h.ParseID(c)
	if !ok {
		return
	}
	item, err := h.content.GetPost(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// CreatePost godoc
//
// @ID           adminCreatePost
// @Summary      Create a post
// @Tags         admin-posts
// @Accept       json
// @Produce      json
// @Param        request  body  appportfolio.PostInput  true  "Fields to set"
// @Success      201 {object} dto.Response{data=appportfolio.PostResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/posts [post]
func (h *AdminHandler) CreatePost(c *gin.Context) { createWith(h, c, h.content.CreatePost) }

// UpdatePost godoc
//
// @ID           adminUpdatePost
// @Summary      Update a post
// @Description  Only the fields present in the body are changed
// @Tags         admin-posts
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Resource ID (UUID)"
// @Param        request  body  appportfolio.PostInput  true  "Fields to set"
// @Success      200 {object} dto.Response{data=appportfolio.PostResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/posts/{id} [put]
func (h *AdminHandler) UpdatePost(c *gin.Context) { updateWith(h, c, h.content.UpdatePost) }

// DeletePost godoc
//
// @ID           adminDeletePost
// @Summary      Delete a post
// @Tags         admin-posts
// @Produce      json
// @Param        id    path  string  true  "Resource ID (UUID)"
// @Success      204
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/posts/{id} [delete]
func (h *AdminHandler) DeletePost(c *gin.Context) { h.deleteWith(c, h.content.DeletePost) }
