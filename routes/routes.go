package routes

import (
	"net/http"

	"github.com/gorilla/mux"
)

const (
	TargetHistoriesPath         = "/v1/policies/{policy}/target_histories"
	GetTargetHistoriesRouteName = "GetTargetHistories"

	TargetPath            = "/v1/policies/{policy}/target"
	UpdateTargetRouteName = "UpdateTarget"
)

// TargetSetterRoutes returns a fresh router so that middleware added by one
// server does not leak into another.
func TargetSetterRoutes() *mux.Router {
	r := mux.NewRouter()
	r.Path(TargetHistoriesPath).Methods(http.MethodGet).Name(GetTargetHistoriesRouteName)
	r.Path(TargetPath).Methods(http.MethodPost).Name(UpdateTargetRouteName)
	return r
}
