package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	skillrankErrors "skillrank/internal/errors"
	"skillrank/internal/observability"
	"skillrank/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createSelectHandler wraps the skill selection handler with observability
func (s *Server) createSelectHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		ctx := r.Context()
		tracer := om.Tracer("skillrank.api")
		ctx, span := tracer.Start(ctx, "api.select_skills")
		defer span.End()

		// Parse request
		var req types.SelectSkillsRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		// Validation
		if strings.TrimSpace(req.JobRole) == "" {
			err := skillrankErrors.NewValidationError(skillrankErrors.ErrCodeInvalidRequest,
				"job_role field is required", nil)
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job role", "job_role field is required", http.StatusBadRequest)
			return
		}

		skillsIn := len(req.Technology) + len(req.Programming) + len(req.Concepts)
		span.SetAttributes(
			attribute.String("request.job_role", req.JobRole),
			attribute.Int("request.skills_in", skillsIn),
			attribute.String("operation", "select_skills"),
		)

		method := req.Method
		if method == "" {
			method = s.Selector.Defaults().Method
		}

		// Track the selection with observability metrics
		var result types.SelectSkillsResponse
		err := om.GetMetrics().TrackSelection(ctx, strings.ToLower(method), skillsIn, func(ctx context.Context) error {
			var selErr error
			result, selErr = s.Selector.SelectSkills(req)
			return selErr
		})

		if err != nil {
			span.RecordError(err)
			var appErr *skillrankErrors.AppError
			if errors.As(err, &appErr) && appErr.Type == skillrankErrors.ErrorTypeValidation {
				span.SetAttributes(attribute.String("error.type", "validation"))
				writeErrorResponse(w, "Invalid request", appErr.Message, http.StatusBadRequest)
				return
			}
			span.SetAttributes(attribute.String("error.type", "internal"))
			writeErrorResponse(w, "Failed to select skills", err.Error(), http.StatusInternalServerError)
			return
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.technology_count", len(result.Technology)),
			attribute.Int("response.programming_count", len(result.Programming)),
			attribute.Int("response.concepts_count", len(result.Concepts)),
		)

		w.Header().Set("Content-Type", "application/json")
		if encErr := json.NewEncoder(w).Encode(result); encErr != nil {
			s.Logger.LogError(encErr, "Failed to encode selection response")
		}
	}
}
