package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"lexiflow/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// DecodeJSONBody はリクエストボディをデコードします
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "Request body is required", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return model.NewAppError("INVALID_REQUEST_BODY", "Request body is not valid JSON for this endpoint", "",
			fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
	}
	return nil
}

// ValidateStruct は validator を実行し、失敗時は翻訳済みの AppError を返します。
func ValidateStruct(v interface{}) error {
	err := Validator.Struct(v)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return NewValidationErrorResponse(validationErrors)
	}
	// バリデーションライブラリ自体のエラーなど、予期せぬエラー
	return fmt.Errorf("webutil.ValidateStruct: %w", err)
}

// PathID はURLパラメータを正の整数IDとして取得します。
func PathID(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, model.NewAppError("INVALID_URL_PARAM", fmt.Sprintf("%s must be a positive integer", name), name, model.ErrInvalidInput)
	}
	return id, nil
}

// QueryInt は整数のクエリパラメータを取得します。未指定なら ok=false。
func QueryInt(r *http.Request, name string) (value int, ok bool, err error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false, nil
	}
	value, err = strconv.Atoi(raw)
	if err != nil {
		return 0, false, model.NewAppError("INVALID_QUERY_PARAM", fmt.Sprintf("%s must be an integer", name), name, model.ErrInvalidInput)
	}
	return value, true, nil
}

// QueryBool は真偽値のクエリパラメータを取得します。未指定なら def を返します。
func QueryBool(r *http.Request, name string, def bool) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, model.NewAppError("INVALID_QUERY_PARAM", fmt.Sprintf("%s must be true or false", name), name, model.ErrInvalidInput)
	}
	return value, nil
}
