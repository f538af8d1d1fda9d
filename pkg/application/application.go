package application

import (
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Controller is a self-registering group of HTTP routes.
type Controller interface {
	// Key uniquely identifies the controller, usually its route prefix.
	Key() string
	Register(r *mux.Router)
}

type ApplicationOptions struct {
	Pool   *pgxpool.Pool
	Redis  *redis.Client
	Logger *logrus.Logger
}

func New(opts *ApplicationOptions) *Application {
	return &Application{
		pool:   opts.Pool,
		redis:  opts.Redis,
		logger: opts.Logger,
	}
}

// Application holds process-wide resources and the controller/middleware sets
// assembled at startup. It is built once in cmd/server and passed by
// reference; nothing here is registered through package-level state.
type Application struct {
	pool        *pgxpool.Pool
	redis       *redis.Client
	logger      *logrus.Logger
	controllers []Controller
	middleware  []mux.MiddlewareFunc
}

func (a *Application) Pool() *pgxpool.Pool    { return a.pool }
func (a *Application) Redis() *redis.Client   { return a.redis }
func (a *Application) Logger() *logrus.Logger { return a.logger }

func (a *Application) RegisterControllers(controllers ...Controller) {
	a.controllers = append(a.controllers, controllers...)
}

func (a *Application) RegisterMiddleware(middleware ...mux.MiddlewareFunc) {
	a.middleware = append(a.middleware, middleware...)
}

func (a *Application) Controllers() []Controller {
	return a.controllers
}

func (a *Application) Middleware() []mux.MiddlewareFunc {
	return a.middleware
}
