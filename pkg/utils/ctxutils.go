package utils

import (
	"context"

	"github.com/maitriparekhcs2848/GearGuard/pkg/contextkeys"
	apperrors "github.com/maitriparekhcs2848/GearGuard/pkg/errors"
)

func GetUserIDFromCtx(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(string)
	if !ok || userID == "" {
		return "", apperrors.ErrUserNotFound
	}
	return userID, nil
}
