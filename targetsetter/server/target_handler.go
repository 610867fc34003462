package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/ecs-queue-autoscaler/autoscaler/db"
	"github.com/ecs-queue-autoscaler/autoscaler/helpers/handlers"
	"github.com/ecs-queue-autoscaler/autoscaler/models"
	"github.com/ecs-queue-autoscaler/autoscaler/targetsetter"

	"code.cloudfoundry.org/lager/v3"
)

type TargetRunner interface {
	Run(ctx context.Context) (*models.TargetDecision, error)
	PolicyName() string
}

type TargetHandler struct {
	logger    lager.Logger
	historyDB db.TargetHistoryDB
	runner    TargetRunner
}

func NewTargetHandler(logger lager.Logger, historyDB db.TargetHistoryDB, runner TargetRunner) *TargetHandler {
	return &TargetHandler{
		logger:    logger.Session("target-handler"),
		historyDB: historyDB,
		runner:    runner,
	}
}

func badRequest(w http.ResponseWriter, message string) {
	handlers.WriteJSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
		Code:    "Bad-Request",
		Message: message,
	})
}

func (h *TargetHandler) GetTargetHistories(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	policyName := vars["policy"]
	logger := h.logger.Session("get-target-histories", lager.Data{"policy": policyName})

	if h.historyDB == nil {
		handlers.WriteJSONResponse(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "Not-Found",
			Message: "target history is not enabled",
		})
		return
	}

	query := r.URL.Query()
	logger.Debug("handling", lager.Data{"query": query})

	start := int64(0)
	end := int64(-1)
	order := db.DESC
	limit := 0

	intParam := func(name string, target *int64) bool {
		values := query[name]
		if len(values) == 0 {
			return true
		}
		if len(values) > 1 {
			logger.Info("failed-to-get-"+name, lager.Data{name: values})
			badRequest(w, fmt.Sprintf("Incorrect %s parameter in query string", name))
			return false
		}
		v, err := strconv.ParseInt(values[0], 10, 64)
		if err != nil {
			logger.Info("failed-to-parse-"+name, lager.Data{name: values, "error": err.Error()})
			badRequest(w, fmt.Sprintf("Error parsing %s", name))
			return false
		}
		*target = v
		return true
	}

	if !intParam("start", &start) || !intParam("end", &end) {
		return
	}
	limit64 := int64(limit)
	if !intParam("limit", &limit64) {
		return
	}
	if limit64 < 0 {
		badRequest(w, "limit must not be negative")
		return
	}
	limit = int(limit64)

	if orderParam := query["order"]; len(orderParam) == 1 {
		switch strings.ToUpper(orderParam[0]) {
		case db.DESCSTR:
			order = db.DESC
		case db.ASCSTR:
			order = db.ASC
		default:
			badRequest(w, fmt.Sprintf("Incorrect order parameter in query string, the value can only be %s or %s", db.ASCSTR, db.DESCSTR))
			return
		}
	} else if len(orderParam) > 1 {
		badRequest(w, "Incorrect order parameter in query string")
		return
	}

	histories, err := h.historyDB.RetrieveTargetHistories(r.Context(), policyName, start, end, order, limit)
	if err != nil {
		logger.Error("failed-to-retrieve-histories", err, lager.Data{"start": start, "end": end, "order": order, "limit": limit})
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Internal-Server-Error",
			Message: "Error getting target histories from database",
		})
		return
	}
	handlers.WriteJSONResponse(w, http.StatusOK, histories)
}

// UpdateTarget runs the target setter immediately.
func (h *TargetHandler) UpdateTarget(w http.ResponseWriter, r *http.Request, vars map[string]string) {
	policyName := vars["policy"]
	logger := h.logger.Session("update-target", lager.Data{"policy": policyName})

	if policyName != h.runner.PolicyName() {
		handlers.WriteJSONResponse(w, http.StatusNotFound, models.ErrorResponse{
			Code:    "Not-Found",
			Message: fmt.Sprintf("policy %s is not managed by this target setter", policyName),
		})
		return
	}

	decision, err := h.runner.Run(r.Context())
	switch {
	case errors.Is(err, targetsetter.ErrRunInProgress):
		logger.Info("run-in-progress")
		handlers.WriteJSONResponse(w, http.StatusConflict, models.ErrorResponse{
			Code:    "Conflict",
			Message: err.Error(),
		})
	case err != nil:
		logger.Error("failed-to-update-target", err)
		handlers.WriteJSONResponse(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "Internal-Server-Error",
			Message: err.Error(),
		})
	default:
		logger.Info("updated-target", lager.Data{"decision": decision})
		handlers.WriteJSONResponse(w, http.StatusOK, decision)
	}
}
