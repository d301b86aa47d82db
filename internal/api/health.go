// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package api

import (
	"net/http"

	"github.com/urugowoc/urugo/internal/platform/constants"
	"github.com/urugowoc/urugo/internal/platform/postgres"
	"github.com/urugowoc/urugo/internal/platform/redis"
	"github.com/urugowoc/urugo/internal/platform/respond"
)

// health reports that the process is alive. It has no dependencies, so load
// balancers can distinguish a crashed process from degraded backends.
func (s *Server) health(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{
		constants.FieldStatus: "ok",
		"name":                constants.AppName,
		"version":             constants.AppVersion,
	})
}

// ready reports whether the backing stores are reachable. A failing check
// returns 503 so orchestrators stop routing traffic here.
func (s *Server) ready(writer http.ResponseWriter, request *http.Request) {
	checks := map[string]string{
		"postgres": "ok",
		"redis":    "ok",
	}
	healthy := true

	if err := postgres.Ping(request.Context(), s.pool); err != nil {
		checks["postgres"] = err.Error()
		healthy = false
	}
	if err := redis.Ping(request.Context(), s.redis); err != nil {
		checks["redis"] = err.Error()
		healthy = false
	}

	if !healthy {
		respond.JSON(writer, http.StatusServiceUnavailable, map[string]any{
			constants.FieldStatus: "degraded",
			"checks":              checks,
		})
		return
	}

	respond.OK(writer, map[string]any{
		constants.FieldStatus: "ok",
		"checks":              checks,
	})
}
