// Package handler is the entry point for serverless deployments that
// route requests to an exported Handler function.
package handler

import (
	"net/http"

	"github.com/youruser/yeardots/internal/edge"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	edge.Handler(w, r)
}
