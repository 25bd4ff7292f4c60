package coffeeshop

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/coffeeshops/handler"
	"github.com/dmitrymomot/coffeeshops/pkg/auth"
	"github.com/dmitrymomot/coffeeshops/pkg/binder"
	"github.com/dmitrymomot/coffeeshops/pkg/cookie"
	"github.com/dmitrymomot/coffeeshops/pkg/httpserver"
	"github.com/dmitrymomot/coffeeshops/pkg/logger"
	"github.com/dmitrymomot/coffeeshops/pkg/session"
)

const flashNotice = "notice"

// Service serves the coffee shop site.
type Service struct {
	cfg          Config
	storage      Storage
	passwordAuth auth.PasswordAuthenticator
	sessionMgr   *session.Manager
	views        *Views
	errorHandler handler.ErrorHandler[handler.Context]

	cookieMgr *cookie.Manager
	images    ImageMap
	log       *slog.Logger
	readiness []func(context.Context) error
}

// Option configures optional Service dependencies.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithImages replaces the built-in image map.
func WithImages(images ImageMap) Option {
	return func(s *Service) {
		if images != nil {
			s.images = images
		}
	}
}

// WithFlash enables one-time notices (e.g. after signup) stored in signed cookies.
func WithFlash(cookieMgr *cookie.Manager) Option {
	return func(s *Service) {
		s.cookieMgr = cookieMgr
	}
}

// WithReadinessChecks adds dependency checks to /readyz.
func WithReadinessChecks(checks ...func(context.Context) error) Option {
	return func(s *Service) {
		s.readiness = append(s.readiness, checks...)
	}
}

func NewService(
	cfg Config,
	storage Storage,
	passwordAuth auth.PasswordAuthenticator,
	sessionMgr *session.Manager,
	views *Views,
	errorHandler handler.ErrorHandler[handler.Context],
	opts ...Option,
) *Service {
	s := &Service{
		cfg:          cfg,
		storage:      storage,
		passwordAuth: passwordAuth,
		sessionMgr:   sessionMgr,
		views:        views,
		errorHandler: errorHandler,
		images:       DefaultImageMap(),
		log:          logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("coffeeshop"))
	return s
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", httpserver.HealthCheckHandler(s.log))
	r.Get("/readyz", httpserver.HealthCheckHandler(s.log, s.readiness...))
	if s.cfg.StaticDir != "" {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(s.cfg.StaticDir))))
	}

	r.Group(func(r chi.Router) {
		r.Use(s.sessionMgr.Middleware)

		r.Get("/", wrap(s, s.index))
		r.Get("/coffeeshop/{id}", wrap(s, s.shop))
		r.Get("/user/{username}", wrap(s, s.user))
		r.Get("/search", wrap(s, s.searchForm))
		r.Get("/search-results", wrap(s, s.searchResults))

		r.Get("/login", wrap(s, s.loginPage))
		r.Post("/login", wrap(s, s.login))
		r.Get("/signup", wrap(s, s.signupPage))
		r.Post("/signup", wrap(s, s.signup))
		r.Get("/signup-failed", wrap(s, s.signupFailedPage))
		r.Get("/logout", wrap(s, s.logout))

		r.Post("/reviews", wrap(s, s.createReview, reviewGate[CreateReviewRequest](s)...))
		r.Post("/reviews/{id}/edit", wrap(s, s.editReview, reviewGate[EditReviewRequest](s)...))
		r.Get("/review-success", wrap(s, s.reviewSuccess))

		r.Group(func(r chi.Router) {
			r.Use(s.sessionMgr.RequireAuth)

			r.Get("/profile", wrap(s, s.profile))
			r.Post("/profile", wrap(s, s.updateProfile))
			r.Get("/make", wrap(s, s.makePage))
		})
	})

	return r
}

// wrap binds path, query and form values into R and routes failures to the
// service error handler.
func wrap[R any](s *Service, h handler.HandlerFunc[handler.Context, R], decorators ...handler.Decorator[handler.Context, R]) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[handler.Context, R](
			binder.Path(chi.URLParam),
			binder.Query(),
			binder.Form(),
		),
		handler.WithErrorHandler[handler.Context, R](s.errorHandler),
		handler.WithDecorators[handler.Context, R](decorators...),
	)
}

// reviewGate returns the decorators applied to review writes.
func reviewGate[R any](s *Service) []handler.Decorator[handler.Context, R] {
	if !s.cfg.RequireAuthForReviews {
		return nil
	}
	return []handler.Decorator[handler.Context, R]{requireLogin[R]}
}

// requireLogin sends anonymous callers to the login page.
func requireLogin[R any](next handler.HandlerFunc[handler.Context, R]) handler.HandlerFunc[handler.Context, R] {
	return func(ctx handler.Context, req R) handler.Response {
		if _, ok := session.UsernameFromContext(ctx); !ok {
			return handler.Redirect("/login")
		}
		return next(ctx, req)
	}
}

func (s *Service) page(ctx context.Context) Page {
	username, ok := session.UsernameFromContext(ctx)
	return Page{LoggedIn: ok, Username: username}
}

func (s *Service) card(shop CoffeeShop) ShopCard {
	return ShopCard{CoffeeShop: shop, Image: s.images.ImageFilename(shop.Name)}
}

func (s *Service) cards(shops []CoffeeShop) []ShopCard {
	cards := make([]ShopCard, 0, len(shops))
	for _, shop := range shops {
		cards = append(cards, s.card(shop))
	}
	return cards
}
