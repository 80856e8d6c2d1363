// Package selector orchestrates one skill selection request: it resolves
// per-request overrides against configured defaults, classifies the job role
// once, and runs the ranker independently over the three fixed categories.
package selector

import (
	"fmt"
	"strings"
	"time"

	"skillrank/internal/config"
	"skillrank/internal/errors"
	"skillrank/internal/metrics"
	"skillrank/internal/scoring"
	"skillrank/internal/types"
)

// Service performs skill selection against the process-wide scoring tables.
// It is safe for concurrent use; the only mutable state it touches is the
// metrics recorder.
type Service struct {
	cfg      *config.Config
	logger   *errors.Logger
	recorder *metrics.Recorder
}

// New creates a selection service. The recorder may be nil (CLI usage).
func New(cfg *config.Config, logger *errors.Logger, recorder *metrics.Recorder) *Service {
	return &Service{cfg: cfg, logger: logger, recorder: recorder}
}

// SelectSkills scores and ranks the request's skill lists and returns the
// top skills per category. The only error condition is an unsupported
// scoring method; every other anomaly (unknown role, unmatched skills,
// empty lists) is a normal outcome producing empty or shorter results.
func (s *Service) SelectSkills(req types.SelectSkillsRequest) (types.SelectSkillsResponse, error) {
	method := strings.ToLower(s.cfg.Scoring.Method)
	if req.Method != "" {
		method = strings.ToLower(req.Method)
	}
	topN := s.cfg.Scoring.TopN
	if req.TopN != nil {
		topN = *req.TopN
	}
	devMode := s.cfg.Scoring.DevMode
	if req.DevMode != nil {
		devMode = *req.DevMode
	}
	includeZero := s.cfg.Scoring.IncludeZero
	if req.IncludeZero != nil {
		includeZero = *req.IncludeZero
	}

	start := time.Now()
	if s.recorder != nil {
		s.recorder.IncRequest(method)
	}

	if method != config.MethodBaseline {
		// Embeddings/hybrid are reserved method names; fail clearly for now.
		if s.recorder != nil {
			s.recorder.IncError()
		}
		return types.SelectSkillsResponse{}, errors.NewValidationError(
			errors.ErrCodeUnsupportedMethod,
			fmt.Sprintf("unsupported scoring method: %s", method), nil).
			WithContext("method", method)
	}

	family := scoring.ClassifyRole(req.JobRole)

	inputs := map[scoring.Category][]string{
		scoring.CategoryTechnology:  req.Technology,
		scoring.CategoryProgramming: req.Programming,
		scoring.CategoryConcepts:    req.Concepts,
	}

	resp := types.SelectSkillsResponse{}
	var details map[string]types.CategoryDetails
	if devMode {
		details = make(map[string]types.CategoryDetails, len(scoring.Categories))
	}

	for _, cat := range scoring.Categories {
		selected, catDetails := scoring.Rank(inputs[cat], family, cat, topN, includeZero)
		switch cat {
		case scoring.CategoryTechnology:
			resp.Technology = selected
		case scoring.CategoryProgramming:
			resp.Programming = selected
		case scoring.CategoryConcepts:
			resp.Concepts = selected
		}
		if devMode {
			details[string(cat)] = catDetails
		}
	}
	resp.Details = details

	latency := time.Since(start)
	if s.recorder != nil {
		s.recorder.ObserveLatency(latency)
	}

	if s.logger != nil {
		s.logger.Info("select_skills",
			"event", "select_skills",
			"role", req.JobRole,
			"role_family", family,
			"method", method,
			"top_n", topN,
			"latency_ms", float64(latency.Nanoseconds())/1e6,
			"technology_count", len(resp.Technology),
			"programming_count", len(resp.Programming),
			"concepts_count", len(resp.Concepts))
	}

	return resp, nil
}

// Defaults reports the effective scoring defaults, used by the health
// endpoint.
func (s *Service) Defaults() config.ScoringConfig {
	return s.cfg.Scoring
}
