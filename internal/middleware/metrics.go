package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// EntityWrites counts successful mutating operations by entity and operation.
var EntityWrites = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "inkwell_entity_writes_total",
	Help: "Total number of successful create/update/delete operations",
}, []string{"entity", "operation"})

// DatabaseResets counts executions of the database reset path.
var DatabaseResets = promauto.NewCounter(prometheus.CounterOpts{
	Name: "inkwell_database_resets_total",
	Help: "Total number of database resets",
})

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the request-instrumentation handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
