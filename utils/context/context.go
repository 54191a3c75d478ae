package context

import (
	"context"

	"github.com/muhammadheryan/micromarket/constant"
	"github.com/muhammadheryan/micromarket/model"
)

// WithUser embeds the session profile for downstream handlers.
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, constant.UserKey, user)
}

func GetUser(ctx context.Context) (*model.User, bool) {
	v := ctx.Value(constant.UserKey)
	if v == nil {
		return nil, false
	}
	u, ok := v.(*model.User)
	return u, ok && u != nil
}
