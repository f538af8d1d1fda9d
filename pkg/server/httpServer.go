package server

import (
	"net/http"

	"github.com/NYTimes/gziphandler"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/campusgrid/schedule-api/pkg/application"
)

func NewHTTPServer(app *application.Application, allowedOrigins []string) *HTTPServer {
	return &HTTPServer{
		Controllers:    app.Controllers(),
		Middlewares:    app.Middleware(),
		AllowedOrigins: allowedOrigins,
	}
}

type HTTPServer struct {
	Controllers    []application.Controller
	Middlewares    []mux.MiddlewareFunc
	AllowedOrigins []string
}

func (s *HTTPServer) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.Middlewares...)
	for _, controller := range s.Controllers {
		controller.Register(r)
	}
	return r
}

func (s *HTTPServer) Handler() http.Handler {
	var handler http.Handler = s.Router()
	if len(s.AllowedOrigins) > 0 {
		handler = cors.New(cors.Options{
			AllowedOrigins: s.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
		}).Handler(handler)
	}
	return gziphandler.GzipHandler(handler)
}

func (s *HTTPServer) Start(socketAddress string) error {
	return http.ListenAndServe(socketAddress, s.Handler())
}
