package main

import "net/http"

// servedSchemas lists the record schemas mounted under /v1.
var servedSchemas = []string{"roster", "ownership"}

func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	app.respond(w, r, http.StatusOK, envelope{
		"status":  "available",
		"schemas": servedSchemas,
		"system_info": map[string]any{
			"environment":  app.config.Environment,
			"version":      app.config.Version,
			"rate_limited": app.config.Limiter.Enabled,
		},
	}, nil)
}
