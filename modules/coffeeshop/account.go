package coffeeshop

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/coffeeshops/handler"
	"github.com/dmitrymomot/coffeeshops/pkg/auth"
	"github.com/dmitrymomot/coffeeshops/pkg/logger"
)

const (
	msgInvalidCredentials = "Invalid username or password"
	msgUsernameTaken      = "Username is already taken"
	msgMissingFields      = "Username and password are required"
	msgSignedUp           = "Account created. You can log in now."
)

type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

type SignupRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (s *Service) loginPage(ctx handler.Context, _ emptyRequest) handler.Response {
	params := LoginPageParams{Page: s.page(ctx)}
	if s.cookieMgr != nil {
		params.Notice = s.cookieMgr.GetFlash(ctx.ResponseWriter(), ctx.Request(), flashNotice)
	}
	return handler.Templ(s.views.Login(params))
}

// login never tells an unknown username apart from a wrong password.
func (s *Service) login(ctx handler.Context, req LoginRequest) handler.Response {
	err := s.passwordAuth.Authenticate(ctx, req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		s.log.InfoContext(ctx, "login failed", logger.Username(req.Username), logger.Event("login_failed"))
		return handler.TemplStatus(http.StatusUnauthorized, s.views.Login(LoginPageParams{
			Page:  s.page(ctx),
			Login: req.Username,
			Error: msgInvalidCredentials,
		}))
	}
	if err != nil {
		return handler.Error(err)
	}

	if _, err := s.sessionMgr.Authenticate(ctx, ctx.ResponseWriter(), ctx.Request(), req.Username); err != nil {
		return handler.Error(err)
	}
	s.log.InfoContext(ctx, "user logged in", logger.Username(req.Username), logger.Event("login"))
	return handler.Redirect("/")
}

func (s *Service) signupPage(ctx handler.Context, _ emptyRequest) handler.Response {
	return handler.Templ(s.views.Signup(SignupPageParams{Page: s.page(ctx)}))
}

func (s *Service) signupFailedPage(ctx handler.Context, _ emptyRequest) handler.Response {
	return handler.Templ(s.views.SignupFailed(SignupFailedPageParams{Page: s.page(ctx)}))
}

func (s *Service) signup(ctx handler.Context, req SignupRequest) handler.Response {
	err := s.passwordAuth.Register(ctx, req.Username, req.Password)
	switch {
	case errors.Is(err, auth.ErrUsernameRequired), errors.Is(err, auth.ErrPasswordRequired):
		return s.signupFailed(ctx, http.StatusUnprocessableEntity, msgMissingFields)
	case errors.Is(err, ErrUsernameTaken):
		return s.signupFailed(ctx, http.StatusConflict, msgUsernameTaken)
	case err != nil:
		return handler.Error(err)
	}

	s.log.InfoContext(ctx, "user signed up", logger.Username(req.Username), logger.Event("signup"))
	if s.cookieMgr != nil {
		s.cookieMgr.SetFlash(ctx.ResponseWriter(), flashNotice, msgSignedUp)
	}
	return handler.Redirect("/login")
}

func (s *Service) signupFailed(ctx handler.Context, status int, msg string) handler.Response {
	return handler.TemplStatus(status, s.views.SignupFailed(SignupFailedPageParams{
		Page:  s.page(ctx),
		Error: msg,
	}))
}

func (s *Service) logout(ctx handler.Context, _ emptyRequest) handler.Response {
	if err := s.sessionMgr.Destroy(ctx, ctx.ResponseWriter(), ctx.Request()); err != nil {
		s.log.WarnContext(ctx, "failed to destroy session", logger.Error(err))
	}
	return handler.Redirect("/")
}
