package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/coffeeshops/pkg/logger"
)

// ErrorPageParams contains data for rendering error pages
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	LoggedIn   bool
	Username   string
}

// ErrorHandlerConfig configures the default error handler
type ErrorHandlerConfig struct {
	// ErrorPage renders the full error page
	ErrorPage func(ErrorPageParams) templ.Component

	// Username returns the logged-in visitor's name, or "" for anonymous
	// visitors. The page layout uses it for the navigation.
	Username func(r *http.Request) string

	// Target is the selector patched for DataStar requests (default: "main")
	Target string
}

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Message    string
	LogLevel   slog.Level
}

// classifyError maps err to a status code and a user-facing message.
// Anything that is not an HTTPError is an internal error with a generic message.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: ErrInternalServerError.Code,
		Message:    ErrInternalServerError.Message,
		LogLevel:   slog.LevelError,
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Message
	}
	if info.StatusCode < http.StatusInternalServerError {
		info.LogLevel = slog.LevelWarn
	}
	return info
}

// NewErrorHandler creates the error handler shared by every route.
// It logs the error with the request id and renders ErrorPage with the
// classified status. DataStar requests get the page patched into Target.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if cfg.Target == "" {
		cfg.Target = "main"
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		w := ctx.ResponseWriter()
		requestID := middleware.GetReqID(r.Context())
		info := classifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if cfg.ErrorPage == nil {
			http.Error(w, info.Message, info.StatusCode)
			return
		}

		params := ErrorPageParams{
			Error:      info.Message,
			StatusCode: info.StatusCode,
			RequestID:  requestID,
		}
		if cfg.Username != nil {
			params.Username = cfg.Username(r)
			params.LoggedIn = params.Username != ""
		}

		if IsDataStar(r) {
			if renderErr := datastar.NewSSE(w, r).PatchElementTempl(cfg.ErrorPage(params), datastar.WithSelector(cfg.Target)); renderErr != nil {
				log.ErrorContext(r.Context(), "failed to patch error page", logger.Error(renderErr), logger.Event("render_error_page"))
			}
			return
		}

		if renderErr := TemplStatus(info.StatusCode, cfg.ErrorPage(params)).Render(w, r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error page", logger.Error(renderErr), logger.Event("render_error_page"))
		}
	}
}
