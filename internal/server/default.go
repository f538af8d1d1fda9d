package server

import (
	"github.com/gorilla/mux"

	"github.com/campusgrid/schedule-api/internal/tools"
	directorypersistence "github.com/campusgrid/schedule-api/modules/directory/infrastructure/persistence"
	directorycontrollers "github.com/campusgrid/schedule-api/modules/directory/presentation/controllers"
	directoryservices "github.com/campusgrid/schedule-api/modules/directory/services"
	eventpersistence "github.com/campusgrid/schedule-api/modules/events/infrastructure/persistence"
	eventcontrollers "github.com/campusgrid/schedule-api/modules/events/presentation/controllers"
	eventservices "github.com/campusgrid/schedule-api/modules/events/services"
	roompersistence "github.com/campusgrid/schedule-api/modules/rooms/infrastructure/persistence"
	roomcontrollers "github.com/campusgrid/schedule-api/modules/rooms/presentation/controllers"
	roomservices "github.com/campusgrid/schedule-api/modules/rooms/services"
	"github.com/campusgrid/schedule-api/modules/schedule/infrastructure/cache"
	schedulepersistence "github.com/campusgrid/schedule-api/modules/schedule/infrastructure/persistence"
	schedulecontrollers "github.com/campusgrid/schedule-api/modules/schedule/presentation/controllers"
	scheduleservices "github.com/campusgrid/schedule-api/modules/schedule/services"
	"github.com/campusgrid/schedule-api/pkg/application"
	"github.com/campusgrid/schedule-api/pkg/configuration"
	"github.com/campusgrid/schedule-api/pkg/metrics"
	"github.com/campusgrid/schedule-api/pkg/middleware"
	"github.com/campusgrid/schedule-api/pkg/server"
	"github.com/campusgrid/schedule-api/pkg/toolcall"
)

// Default assembles the production server: middleware stack, repositories,
// services, controllers and the tool-call registry, all hanging off the
// resources the application carries.
func Default(app *application.Application, conf *configuration.Configuration) (*server.HTTPServer, error) {
	app.RegisterMiddleware(
		[]mux.MiddlewareFunc{
			middleware.WithLogger(app.Logger()),
			middleware.ProvidePool(app.Pool()),
		}...,
	)

	gateway := cache.NewRedisGateway(app.Redis(), app.Logger())

	employeeRepo := schedulepersistence.NewEmployeeRepository()
	scheduleRepo := schedulepersistence.NewScheduleRepository()
	systemRepo := schedulepersistence.NewSystemRepository()
	directoryRepo := directorypersistence.NewDirectoryRepository()
	roomsRepo := roompersistence.NewRoomsRepository()
	eventsRepo := eventpersistence.NewEventRepository()

	scheduleService := scheduleservices.NewScheduleService(
		scheduleRepo, employeeRepo, gateway, conf.Redis.ScheduleTTL,
	)
	systemService := scheduleservices.NewSystemService(
		systemRepo, gateway, conf.Redis.CurrentWeekTTL,
	)
	directoryService := directoryservices.NewDirectoryService(directoryRepo, employeeRepo)
	roomsService := roomservices.NewRoomsService(roomsRepo)
	eventsService := eventservices.NewEventService(eventsRepo)

	registry, err := tools.NewRegistry(
		scheduleService, systemService, directoryService, roomsService, eventsService,
	)
	if err != nil {
		return nil, err
	}

	app.RegisterControllers(
		schedulecontrollers.NewScheduleAPIController(scheduleService, systemService),
		directorycontrollers.NewDirectoryAPIController(directoryService),
		roomcontrollers.NewRoomsAPIController(roomsService),
		eventcontrollers.NewEventsAPIController(eventsService),
		toolcall.NewController(registry),
		NewHealthController(app.Pool(), app.Redis()),
	)
	if conf.Prometheus.Enabled {
		app.RegisterControllers(metrics.NewPrometheusController(conf.Prometheus.Path))
	}

	return server.NewHTTPServer(app, conf.Origins()), nil
}
