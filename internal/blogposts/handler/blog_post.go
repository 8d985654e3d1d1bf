package handler

import (
	"net/http"

	"jumatrek/internal/auth"
	"jumatrek/internal/blogposts/service"
	httputil "jumatrek/pkg/http"
	"jumatrek/pkg/logger"
	"jumatrek/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BlogPostHandler struct {
	service service.BlogPostService
	gate    *auth.Gate
	log     *logger.Logger
}

func NewBlogPostHandler(service service.BlogPostService, gate *auth.Gate, log *logger.Logger) *BlogPostHandler {
	return &BlogPostHandler{
		service: service,
		gate:    gate,
		log:     log,
	}
}

func (h *BlogPostHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/blog-posts", h.List)
	router.GET("/api/blog-posts/:id", h.GetByID)
	router.POST("/api/blog-posts", h.gate.Require(h.Create))
	router.PUT("/api/blog-posts/:id", h.gate.Require(h.Update))
	router.DELETE("/api/blog-posts/:id", h.gate.Require(h.Delete))
}

func (h *BlogPostHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	posts, err := h.service.List(r.Context(), model.BlogPostFilter{
		Tag:    httputil.QueryString(r, "tag"),
		Search: httputil.QueryString(r, "search"),
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteOK(w, posts)
}

func (h *BlogPostHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	post, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteOK(w, post)
}

func (h *BlogPostHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var post model.BlogPost
	if err := httputil.DecodeJSON(r, &post); err != nil {
		httputil.WriteError(w, err)
		return
	}

	id, err := h.service.Create(r.Context(), &post)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteCreated(w, httputil.IDResponse{ID: id})
}

func (h *BlogPostHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var post model.BlogPost
	if err := httputil.DecodeJSON(r, &post); err != nil {
		httputil.WriteError(w, err)
		return
	}

	updated, err := h.service.Update(r.Context(), ps.ByName("id"), &post)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteOK(w, updated)
}

func (h *BlogPostHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteOK(w, httputil.IDResponse{ID: id})
}
