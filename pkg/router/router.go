package router

import (
	"context"
	"net/http"

	"github.com/fanpassport/backend/config"
	"github.com/fanpassport/backend/pkg/logger"
	"github.com/fanpassport/backend/pkg/xcontext"
	"github.com/rs/cors"
)

// HandlerFunc is the signature of every endpoint. The request is already
// bound from the query string or the json body when the handler runs.
type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. It can enrich the context; a
// returned error aborts the request.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response is written, no matter whether the
// request succeeded.
type CloserFunc func(ctx context.Context)

type Router struct {
	mux *http.ServeMux
	cfg config.Configs
	log logger.Logger

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

func New(cfg config.Configs, log logger.Logger) *Router {
	return &Router{mux: http.NewServeMux(), cfg: cfg, log: log}
}

// Branch returns a router sharing the same mux but with an independent
// middleware chain. Endpoints registered on the branch keep the middlewares
// of the moment they are registered.
func (r *Router) Branch() *Router {
	return &Router{
		mux:     r.mux,
		cfg:     r.cfg,
		log:     r.log,
		befores: append([]MiddlewareFunc{}, r.befores...),
		afters:  append([]MiddlewareFunc{}, r.afters...),
		closers: append([]CloserFunc{}, r.closers...),
	}
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) After(middleware MiddlewareFunc) {
	r.afters = append(r.afters, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func (r *Router) Handler() http.Handler {
	if len(r.cfg.ApiServer.AllowCORS) > 0 {
		c := cors.New(cors.Options{
			AllowedOrigins:   r.cfg.ApiServer.AllowCORS,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
		})
		return c.Handler(r.mux)
	}

	return r.mux
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodPost, handler))
}

func wrapHandler[Request, Response any](
	r *Router, method string, handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	befores := append([]MiddlewareFunc{}, r.befores...)
	afters := append([]MiddlewareFunc{}, r.afters...)
	closers := append([]CloserFunc{}, r.closers...)

	return func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		ctx = xcontext.WithConfigs(ctx, r.cfg)
		ctx = xcontext.WithLogger(ctx, r.log)
		ctx = xcontext.WithHTTPRequest(ctx, req)
		ctx = xcontext.WithHTTPWriter(ctx, w)
		ctx = xcontext.WithErrorSlot(ctx)

		defer func() {
			for _, closer := range closers {
				closer(ctx)
			}
		}()

		if req.Method != method {
			writeError(ctx, errorMethodNotAllowed)
			return
		}

		for _, middleware := range befores {
			newCtx, err := middleware(ctx)
			if err != nil {
				writeError(ctx, err)
				return
			}

			ctx = newCtx
		}

		var body Request
		if err := bindRequest(ctx, method, &body); err != nil {
			writeError(ctx, err)
			return
		}

		resp, err := handler(ctx, &body)
		if err != nil {
			writeError(ctx, err)
			return
		}

		for _, middleware := range afters {
			newCtx, err := middleware(ctx)
			if err != nil {
				writeError(ctx, err)
				return
			}

			ctx = newCtx
		}

		writeSuccess(ctx, resp)
	}
}
