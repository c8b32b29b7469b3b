// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"lexiflow/internal/model"

	"github.com/go-playground/validator/v10"
)

// GenericErrorMessage は内部エラー時にクライアントへ返す唯一のメッセージです。
const GenericErrorMessage = "An unexpected error occurred"

// Envelope は全エンドポイント共通のレスポンス形式です。
// Success が false の場合 Data は必ず nil になります。
type Envelope[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *T       `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// PagedEnvelope はページング付き一覧のレスポンス形式です。
type PagedEnvelope[T any] struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Items       []T    `json:"items"`
	Page        int    `json:"page"`
	PageSize    int    `json:"page_size"`
	TotalCount  int64  `json:"total_count"`
	TotalPages  int    `json:"total_pages"`
	HasPrevious bool   `json:"has_previous"`
	HasNext     bool   `json:"has_next"`
}

func OK[T any](message string, data T) Envelope[T] {
	return Envelope[T]{Success: true, Message: message, Data: &data}
}

// Message はペイロードを持たない成功レスポンスです (削除など)。
func Message(message string) Envelope[struct{}] {
	return Envelope[struct{}]{Success: true, Message: message}
}

func Failure(message string, details ...string) Envelope[struct{}] {
	return Envelope[struct{}]{Success: false, Message: message, Errors: details}
}

func NewPagedEnvelope[T any](message string, page *model.Page[T]) PagedEnvelope[T] {
	items := page.Items
	if items == nil {
		items = []T{}
	}
	return PagedEnvelope[T]{
		Success:     true,
		Message:     message,
		Items:       items,
		Page:        page.Page,
		PageSize:    page.PageSize,
		TotalCount:  page.TotalCount,
		TotalPages:  page.TotalPages,
		HasPrevious: page.HasPrevious(),
		HasNext:     page.HasNext(),
	}
}

// HandleError はエラーを解釈し、適切なステータスコードと失敗エンベロープを返します。
// エラーからHTTPへの変換はここだけで行います。
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if logger == nil {
		logger = slog.Default()
	}
	statusCode := MapErrorToStatusCode(err)

	if statusCode == http.StatusInternalServerError {
		// 詳細はサーバーログのみに出す
		logger.Error("Unhandled error", slog.Any("error", err))
		RespondWithJSON(w, statusCode, Failure(GenericErrorMessage), logger)
		return
	}

	message := defaultMessage(statusCode)
	var details []string
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
		details = appErr.Details
	}

	if statusCode == http.StatusNotFound {
		logger.Info("Request resulted in not found", slog.String("reason", err.Error()))
	} else {
		logger.Warn("Request rejected", slog.Int("status", statusCode), slog.String("reason", err.Error()))
	}
	RespondWithJSON(w, statusCode, Failure(message, details...), logger)
}

// MapErrorToStatusCode はアプリケーションエラーをHTTPステータスコードにマッピングします
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConcurrencyConflict), errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		// ハンドリングされていないエラーは内部サーバーエラーとして扱う
		return http.StatusInternalServerError
	}
}

func defaultMessage(statusCode int) string {
	switch statusCode {
	case http.StatusNotFound:
		return "Resource not found"
	case http.StatusBadRequest:
		return "Invalid request"
	case http.StatusConflict:
		return "The resource has been modified by another user. Please refresh and try again."
	case http.StatusUnauthorized:
		return "Authentication required"
	default:
		return GenericErrorMessage
	}
}

// RespondWithJSON はJSONレスポンスを返します
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"message":"` + GenericErrorMessage + `"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// NewValidationErrorResponse はバリデーションエラーを翻訳済みメッセージ付きの AppError に変換します。
func NewValidationErrorResponse(errs validator.ValidationErrors) *model.AppError {
	details := make([]string, 0, len(errs))
	field := ""
	for i, fe := range errs {
		if i == 0 {
			field = fe.Field()
		}
		details = append(details, fe.Translate(Trans))
	}
	appErr := model.NewAppError("VALIDATION_ERROR", "Validation failed", field, model.ErrInvalidInput)
	appErr.Details = details
	return appErr
}
