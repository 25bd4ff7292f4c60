package coffeeshop

import (
	"errors"

	"github.com/dmitrymomot/coffeeshops/handler"
	"github.com/dmitrymomot/coffeeshops/pkg/session"
)

type ProfileRequest struct {
	Description string `form:"description"`
}

func (s *Service) profile(ctx handler.Context, _ emptyRequest) handler.Response {
	username, ok := session.UsernameFromContext(ctx)
	if !ok {
		return handler.Redirect("/login")
	}

	var description string
	profile, err := s.storage.GetProfile(ctx, username)
	switch {
	case err == nil:
		description = profile.Description
	case !errors.Is(err, ErrNotFound):
		return storeError("get profile", err)
	}

	return handler.Templ(s.views.Profile(ProfilePageParams{
		Page:        s.page(ctx),
		Description: description,
	}))
}

func (s *Service) updateProfile(ctx handler.Context, req ProfileRequest) handler.Response {
	username, ok := session.UsernameFromContext(ctx)
	if !ok {
		return handler.Redirect("/login")
	}
	if err := s.storage.UpsertProfile(ctx, username, req.Description); err != nil {
		return storeError("update profile", err)
	}
	return handler.Redirect("/profile")
}
