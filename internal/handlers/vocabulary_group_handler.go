// internal/handlers/vocabulary_group_handler.go
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

// VocabularyGroupsPath はグループリソースのベースパスです (Location ヘッダーにも使用)。
const VocabularyGroupsPath = "/api/v1/vocabulary-groups"

type VocabularyGroupHandler struct {
	service service.VocabularyGroupService
	logger  *slog.Logger
}

func NewVocabularyGroupHandler(s service.VocabularyGroupService, logger *slog.Logger) *VocabularyGroupHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &VocabularyGroupHandler{
		service: s,
		logger:  logger,
	}
}

// ListGroups はグループ一覧を返します。?includeInactive=&categoryId= で絞り込み
func (h *VocabularyGroupHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListGroups"))

	includeInactive, err := webutil.QueryBool(r, "includeInactive", false)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	filter := model.VocabularyGroupFilter{IncludeInactive: includeInactive}

	categoryID, ok, err := webutil.QueryInt(r, "categoryId")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if ok {
		filter.CategoryID = &categoryID
	}

	groups, err := h.service.GetAll(r.Context(), filter)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vocabulary groups listed", slog.Int("count", len(groups)))
	webutil.RespondWithJSON(w, http.StatusOK, webutil.OK("Vocabulary groups retrieved successfully", groups), logger)
}

func (h *VocabularyGroupHandler) GetGroup(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetGroup"))

	groupID, err := webutil.PathID(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.Int("group_id", groupID))

	group, err := h.service.GetByID(r.Context(), groupID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, webutil.OK("Vocabulary group retrieved successfully", group), logger)
}

func (h *VocabularyGroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateGroup"))

	actorID, err := middleware.ResolveActorID(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.Int("actor_id", actorID))

	var req model.CreateVocabularyGroupRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	group, err := h.service.Create(r.Context(), &req, actorID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Vocabulary group created", slog.Int("group_id", group.GroupID))
	w.Header().Set("Location", fmt.Sprintf("%s/%d", VocabularyGroupsPath, group.GroupID))
	webutil.RespondWithJSON(w, http.StatusCreated, webutil.OK("Vocabulary group created successfully", group), logger)
}

func (h *VocabularyGroupHandler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateGroup"))

	actorID, err := middleware.ResolveActorID(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	groupID, err := webutil.PathID(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.Int("actor_id", actorID), slog.Int("group_id", groupID))

	var req model.UpdateVocabularyGroupRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	group, err := h.service.Update(r.Context(), groupID, &req, actorID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, webutil.OK("Vocabulary group updated successfully", group), logger)
}

func (h *VocabularyGroupHandler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteGroup"))

	actorID, err := middleware.ResolveActorID(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	groupID, err := webutil.PathID(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.Int("actor_id", actorID), slog.Int("group_id", groupID))

	deleted, err := h.service.Delete(r.Context(), groupID, actorID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if !deleted {
		webutil.HandleError(w, logger, model.NewAppError("GROUP_NOT_FOUND", "Vocabulary group not found", "", model.ErrNotFound))
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, webutil.Message("Vocabulary group deleted successfully"), logger)
}

// ListVocabularies はグループ内の語彙をページ単位で返します。?page=&pageSize=
func (h *VocabularyGroupHandler) ListVocabularies(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ListVocabularies"))

	groupID, err := webutil.PathID(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	page, _, err := webutil.QueryInt(r, "page")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	pageSize, _, err := webutil.QueryInt(r, "pageSize")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	// 未指定 (0) の補正はサービス側で行う
	result, err := h.service.GetVocabularies(r.Context(), groupID, page, pageSize)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, webutil.NewPagedEnvelope("Vocabularies retrieved successfully", result), logger)
}

func (h *VocabularyGroupHandler) AddVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "AddVocabulary"))

	actorID, err := middleware.ResolveActorID(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	groupID, err := webutil.PathID(r, "id")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.Int("actor_id", actorID), slog.Int("group_id", groupID))

	var req model.CreateVocabularyRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if err := webutil.ValidateStruct(req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	vocabulary, err := h.service.AddVocabulary(r.Context(), groupID, &req, actorID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, webutil.OK("Vocabulary added successfully", vocabulary), logger)
}
