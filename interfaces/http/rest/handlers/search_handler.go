package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/OKNG/wikipedia-solver/application/search"
	"github.com/OKNG/wikipedia-solver/pkg/common"
	apperrors "github.com/OKNG/wikipedia-solver/pkg/errors"
	"github.com/OKNG/wikipedia-solver/pkg/utils"
)

const maxRequestBytes = 4 << 10

// SearchHandler handles path-search HTTP requests
type SearchHandler struct {
	orchestrator *search.Orchestrator
	logger       *zap.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(orchestrator *search.Orchestrator, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		orchestrator: orchestrator,
		logger:       logger,
	}
}

// SearchRequest represents the request body for a path search
type SearchRequest struct {
	Start string `json:"start" validate:"required,min=1,max=300"`
	End   string `json:"end" validate:"required,min=1,max=300"`
}

// SearchResponse represents a completed search
type SearchResponse struct {
	Path    []string `json:"path"`
	Degrees int      `json:"degrees"`
	Message string   `json:"message,omitempty"`
}

// Search handles POST /search
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := common.ParseJSONBody(r, &req, maxRequestBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, string(apperrors.ErrorTypeValidation), "Invalid request body: "+err.Error())
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, string(apperrors.ErrorTypeValidation), err.Error())
		return
	}

	searchID := uuid.New().String()
	h.logger.Info("Search requested",
		zap.String("searchID", searchID),
		zap.String("start", req.Start),
		zap.String("end", req.End),
	)

	result, err := h.orchestrator.Search(r.Context(), req.Start, req.End)
	if err != nil {
		h.respondSearchError(w, r, searchID, err)
		return
	}

	payload := SearchResponse{
		Path:    result.Path,
		Message: result.Message,
	}
	if result.Status == search.StatusFound {
		payload.Degrees = len(result.Path) - 1
	}

	common.RespondWithMeta(w, http.StatusOK, payload, &common.MetaInfo{
		RequestID: middleware.GetReqID(r.Context()),
		SearchID:  searchID,
	})
}

// respondSearchError translates orchestration failures into HTTP responses.
// This is the only layer mapping the error taxonomy to status codes.
func (h *SearchHandler) respondSearchError(w http.ResponseWriter, r *http.Request, searchID string, err error) {
	if appErr := apperrors.GetAppError(err); appErr != nil {
		switch appErr.Type {
		case apperrors.ErrorTypeValidation:
			common.RespondError(w, appErr.HTTPStatus, string(appErr.Type), appErr.Message)
			return
		case apperrors.ErrorTypeTimeout:
			common.RespondError(w, appErr.HTTPStatus, string(appErr.Type), appErr.Message)
			return
		}
	}

	h.logger.Error("Search failed",
		zap.String("searchID", searchID),
		zap.String("requestID", middleware.GetReqID(r.Context())),
		zap.Error(err),
	)
	common.RespondError(w, http.StatusInternalServerError, string(apperrors.ErrorTypeInternal), "Search failed")
}
