package coffeeshop

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/coffeeshops/handler"
	"github.com/dmitrymomot/coffeeshops/pkg/logger"
	"github.com/dmitrymomot/coffeeshops/pkg/session"
)

// UnknownShopName labels reviews whose shop no longer exists.
const UnknownShopName = "Unknown"

var errUnknownShop = handler.NewHTTPError(http.StatusUnprocessableEntity, "Unknown coffee shop")

type CreateReviewRequest struct {
	CoffeeShopID string `form:"coffeeshop_id"`
	Rating       string `form:"rating"`
	Comment      string `form:"comment"`
}

type EditReviewRequest struct {
	ID      string `path:"id"`
	Rating  string `form:"editRating"`
	Comment string `form:"editComment"`
}

// createReview stores the review under the session username, empty for anonymous visitors.
func (s *Service) createReview(ctx handler.Context, req CreateReviewRequest) handler.Response {
	if s.cfg.ValidateReferences {
		_, err := s.storage.GetShop(ctx, req.CoffeeShopID)
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidID) {
			return handler.Error(errors.Join(errUnknownShop, err))
		}
		if err != nil {
			return storeError("get shop", err)
		}
	}

	username, _ := session.UsernameFromContext(ctx)
	review := &Review{
		CoffeeShopID: req.CoffeeShopID,
		Rating:       ParseRating(req.Rating),
		Comment:      req.Comment,
		Username:     username,
	}
	if err := s.storage.CreateReview(ctx, review); err != nil {
		return storeError("create review", err)
	}

	s.log.InfoContext(ctx, "review created",
		logger.ReviewID(review.ID),
		logger.ShopID(review.CoffeeShopID),
		logger.Username(username),
	)
	return handler.Redirect("/review-success")
}

func (s *Service) editReview(ctx handler.Context, req EditReviewRequest) handler.Response {
	if s.cfg.RequireAuthForReviews {
		review, err := s.storage.GetReview(ctx, req.ID)
		if err != nil {
			return storeError("get review", err)
		}
		if username, _ := session.UsernameFromContext(ctx); review.Username != username {
			return handler.Error(handler.ErrForbidden)
		}
	}

	if err := s.storage.UpdateReview(ctx, req.ID, ParseRating(req.Rating), req.Comment); err != nil {
		return storeError("update review", err)
	}
	s.log.InfoContext(ctx, "review updated", logger.ReviewID(req.ID))
	return handler.Redirect("/make")
}

func (s *Service) reviewSuccess(ctx handler.Context, _ emptyRequest) handler.Response {
	return handler.Templ(s.views.ReviewSuccess(ReviewSuccessPageParams{Page: s.page(ctx)}))
}

// makePage lists every shop and every review, each review labelled with its shop's name.
func (s *Service) makePage(ctx handler.Context, _ emptyRequest) handler.Response {
	shops, err := s.storage.ListShops(ctx)
	if err != nil {
		return storeError("list shops", err)
	}
	reviews, err := s.storage.ListReviews(ctx)
	if err != nil {
		return storeError("list reviews", err)
	}

	return handler.Templ(s.views.Make(MakePageParams{
		Page:    s.page(ctx),
		Shops:   shops,
		Reviews: withShopNames(reviews, shops),
	}))
}

func withShopNames(reviews []Review, shops []CoffeeShop) []ReviewWithShop {
	names := make(map[string]string, len(shops))
	for _, shop := range shops {
		names[shop.ID] = shop.Name
	}

	out := make([]ReviewWithShop, 0, len(reviews))
	for _, review := range reviews {
		name, ok := names[review.CoffeeShopID]
		if !ok {
			name = UnknownShopName
		}
		out = append(out, ReviewWithShop{Review: review, CoffeeShopName: name})
	}
	return out
}
