package main

import (
	"context"
	"net"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/ansh7432/MoodScope-Backend/config"
	"github.com/ansh7432/MoodScope-Backend/database"
	"github.com/ansh7432/MoodScope-Backend/handler/analyze"
	"github.com/ansh7432/MoodScope-Backend/handler/health"
	"github.com/ansh7432/MoodScope-Backend/handler/history"
	"github.com/ansh7432/MoodScope-Backend/logger"
	"github.com/ansh7432/MoodScope-Backend/spotify"
)

// Route is an http.Handler that knows the mux pattern
// under which it will be registered.
type Route interface {
	http.Handler

	// Pattern reports the path at which this is registered.
	Pattern() string
}

//	@title			MoodScope
//	@version		1.0
//	@description	Playlist mood analysis API

// @host		localhost:8080
// @BasePath	/
func main() {
	// Local development reads credentials from a .env file; in
	// production the variables are already in the environment.
	_ = godotenv.Load()

	fx.New(
		fx.Provide(
			NewHTTPServer,
			fx.Annotate(NewServeMux, fx.ParamTags(`group:"routes"`)),

			AsRoute(health.NewHealthHandler),
			AsRoute(analyze.NewAnalyzeHandler),
			AsRoute(analyze.NewDemoHandler),
			AsRoute(history.NewHistoryHandler),

			config.Options,
			logger.Options,
			database.Options,
			database.StoreOptions,
			spotify.Options,
			spotify.FetcherOptions,
		),
		fx.Invoke(func(*http.Server) {}),
	).Run()
}

func NewHTTPServer(
	lc fx.Lifecycle,
	log *zap.SugaredLogger,
	cfg config.Config,
	mux *http.ServeMux,
) *http.Server {
	handler := corsMiddleware(jsonMiddleware(mux))

	srv := &http.Server{Addr: cfg.ListenAddr, Handler: handler}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Infow("Starting HTTP server", "addr", srv.Addr)
			go srv.Serve(ln)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return srv
}

// NewServeMux registers every provided route on a fresh mux.
func NewServeMux(routes []Route) *http.ServeMux {
	mux := http.NewServeMux()
	for _, route := range routes {
		mux.Handle(route.Pattern(), route)
	}
	return mux
}

// AsRoute annotates the given constructor to state that
// it provides a route to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// corsMiddleware allows the browser frontend to call the API from a
// different origin.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
