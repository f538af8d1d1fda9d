package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/campusgrid/schedule-api/pkg/httpapi"
)

type HealthController struct {
	pool  *pgxpool.Pool
	redis *redis.Client
}

func NewHealthController(pool *pgxpool.Pool, redis *redis.Client) *HealthController {
	return &HealthController{pool: pool, redis: redis}
}

func (c *HealthController) Key() string {
	return "/health"
}

func (c *HealthController) Register(r *mux.Router) {
	r.HandleFunc("/health", c.Health).Methods(http.MethodGet)
}

type healthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

// Health reports per-dependency state. Cache being down degrades the
// response body but not the overall status: the API still serves from
// storage without Redis.
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	status := healthStatus{Status: "ok", Database: "ok", Cache: "ok"}
	code := http.StatusOK

	if err := c.pool.Ping(ctx); err != nil {
		status.Status = "degraded"
		status.Database = "unavailable"
		code = http.StatusServiceUnavailable
	}
	if err := c.redis.Ping(ctx).Err(); err != nil {
		status.Cache = "unavailable"
	}

	_ = httpapi.WriteJSON(w, code, status)
}
