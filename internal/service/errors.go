package service

import (
	"errors"
	"fmt"

	"go_4_vocab_progress/internal/model"
)

// storeUnavailable は永続化の失敗を ErrStoreUnavailable として返します (原因は保持する)
func storeUnavailable(message string, err error) *model.AppError {
	return model.NewAppError("STORE_UNAVAILABLE", message, "", fmt.Errorf("%w: %w", model.ErrStoreUnavailable, err))
}

// txError はトランザクションが返したエラーを整えます。
// AppError はそのまま、それ以外 (BEGIN/COMMIT の失敗など) は ErrStoreUnavailable 扱い。
func txError(message string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return storeUnavailable(message, err)
}
