package coffeeshop

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/coffeeshops/handler"
)

type emptyRequest struct{}

type ShopRequest struct {
	ID string `path:"id"`
}

type UserRequest struct {
	Username string `path:"username"`
}

type SearchRequest struct {
	Query string `query:"query"`
}

func (s *Service) index(ctx handler.Context, _ emptyRequest) handler.Response {
	shops, err := s.storage.ListShops(ctx)
	if err != nil {
		return storeError("list shops", err)
	}
	return handler.Templ(s.views.Index(IndexPageParams{
		Page:  s.page(ctx),
		Shops: s.cards(shops),
	}))
}

func (s *Service) shop(ctx handler.Context, req ShopRequest) handler.Response {
	shop, err := s.storage.GetShop(ctx, req.ID)
	if err != nil {
		return storeError("get shop", err)
	}
	reviews, err := s.storage.ListReviewsByShop(ctx, shop.ID)
	if err != nil {
		return storeError("list shop reviews", err)
	}
	return handler.Templ(s.views.Shop(ShopPageParams{
		Page:    s.page(ctx),
		Shop:    s.card(*shop),
		Reviews: reviews,
	}))
}

func (s *Service) user(ctx handler.Context, req UserRequest) handler.Response {
	var description string
	profile, err := s.storage.GetProfile(ctx, req.Username)
	switch {
	case err == nil:
		description = profile.Description
	case !errors.Is(err, ErrNotFound):
		return storeError("get profile", err)
	}

	reviews, err := s.storage.ListReviewsByUser(ctx, req.Username)
	if err != nil {
		return storeError("list user reviews", err)
	}
	return handler.Templ(s.views.User(UserPageParams{
		Page:        s.page(ctx),
		User:        req.Username,
		Description: description,
		Reviews:     reviews,
	}))
}

func (s *Service) searchForm(ctx handler.Context, _ emptyRequest) handler.Response {
	return handler.Templ(s.views.SearchForm(SearchFormPageParams{Page: s.page(ctx)}))
}

// searchResults runs the shop and user searches independently. The query is a
// regular expression; an invalid one fails in the store.
func (s *Service) searchResults(ctx handler.Context, req SearchRequest) handler.Response {
	shops, err := s.storage.SearchShops(ctx, req.Query)
	if err != nil {
		return storeError("search shops", err)
	}
	usernames, err := s.storage.SearchUsernames(ctx, req.Query)
	if err != nil {
		return storeError("search users", err)
	}
	return handler.Templ(s.views.SearchResults(SearchResultsPageParams{
		Page:      s.page(ctx),
		Query:     req.Query,
		Shops:     s.cards(shops),
		Usernames: usernames,
	}))
}

// storeError turns a missing or malformed id into a 404; anything else is a 500.
func storeError(op string, err error) handler.Response {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidID) {
		return handler.Error(errors.Join(handler.ErrNotFound, err))
	}
	return handler.Error(fmt.Errorf("%s: %w", op, err))
}
