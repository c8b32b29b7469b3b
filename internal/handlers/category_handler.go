package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"lexiflow/internal/middleware"
	"lexiflow/internal/model"
	"lexiflow/internal/service"
	"lexiflow/internal/webutil"
)

const CategoriesPath = "/api/v1/categories"

type CategoryHandler struct {
	service service.CategoryService
	logger  *slog.Logger
}

func NewCategoryHandler(s service.CategoryService, logger *slog.Logger) *CategoryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryHandler{service: s, logger: logger}
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListCategories"))

	includeInactive, err := webutil.QueryBool(r, "includeInactive", false)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	categories, err := h.service.GetAll(r.Context(), includeInactive)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, webutil.OK("Categories retrieved successfully", categories), logger)
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCategory"))

	categoryID, err := webutil.PathID(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	category, err := h.service.GetByID(r.Context(), categoryID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, webutil.OK("Category retrieved successfully", category), logger)
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateCategory"))

	actorID, err := middleware.ResolveActorID(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.Int("actor_id", actorID))

	var req model.CreateCategoryRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	category, err := h.service.Create(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Category created", slog.Int("category_id", category.CategoryID))
	w.Header().Set("Location", fmt.Sprintf("%s/%d", CategoriesPath, category.CategoryID))
	webutil.RespondWithJSON(w, http.StatusCreated, webutil.OK("Category created successfully", category), logger)
}
