package web

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dasdy/tabstyle/logging"
	"github.com/dasdy/tabstyle/web/routes"
)

var logCtx = logging.PackageCtx("web")

func disableCacheInDevMode(dev bool, next http.Handler) http.Handler {
	if !dev {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

func BuildServer(handler *routes.ServerHandler, dev bool) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/", disableCacheInDevMode(dev, http.HandlerFunc(handler.TableHandle)))

	return mux
}

func StartServer(port int, handler *routes.ServerHandler, dev bool) error {
	slog.InfoContext(logCtx, "Running interface", "port", port)

	err := http.ListenAndServe(fmt.Sprintf(":%d", port), BuildServer(handler, dev))
	if err != nil {
		return fmt.Errorf("could not run server: %w", err)
	}

	return nil
}
