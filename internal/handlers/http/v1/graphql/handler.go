// Package graphql exposes a read-only query surface over posts and
// comments. Mutations stay on the authenticated REST routes.
package graphql

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"

	"blogger/internal/service"
)

type gqlHandler struct {
	svc *service.Content

	schema graphql.Schema
}

func New(svc *service.Content) (*gqlHandler, error) {
	gh := &gqlHandler{
		svc: svc,
	}

	if err := gh.initSchema(); err != nil {
		return nil, err
	}

	return gh, nil
}

type gqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

func (gh *gqlHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req gqlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Query == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "query is required"})
		return
	}

	res := graphql.Do(graphql.Params{
		Context:        r.Context(),
		Schema:         gh.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
	})
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
