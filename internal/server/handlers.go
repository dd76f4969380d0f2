package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/freelanceguard/freelance-guard/internal/assess"
	"github.com/freelanceguard/freelance-guard/internal/knowledge"
	"github.com/freelanceguard/freelance-guard/internal/types"
)

// handleAnalyze runs a risk assessment on a client message
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Message too short. Please provide more details.")
		return
	}

	// Absent values default; present values must parse. Unknown
	// industries fall back to "other", unknown experience levels are a
	// caller error.
	industry := knowledge.DefaultIndustry
	if req.Industry != "" {
		industry = knowledge.ParseIndustry(req.Industry)
	}

	experience := knowledge.DefaultExperience
	if req.Experience != "" {
		parsed, err := knowledge.ParseExperience(req.Experience)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		experience = parsed
	}

	assessment, err := s.assessor.Assess(r.Context(), assess.EvaluationRequest{
		Message:     req.TrimmedMessage(),
		Industry:    industry,
		Experience:  experience,
		ProjectType: req.ProjectType,
	})
	if err != nil {
		var tooShort *assess.InputTooShortError
		if errors.As(err, &tooShort) {
			s.errorResponse(w, http.StatusBadRequest, "Message too short. Please provide more details.")
			return
		}
		// Internal detail (model text, parse errors) was already logged
		// by the service; callers get the generic message only.
		s.errorResponse(w, http.StatusInternalServerError, "Analysis failed. Please try again.")
		return
	}

	if s.verbose {
		log.Printf("Assessment complete: score=%d redFlags=%d greenFlags=%d verdict=%q",
			assessment.OverallScore, len(assessment.RedFlags), len(assessment.GreenFlags), assessment.Verdict)
	}

	s.jsonResponse(w, http.StatusOK, assessment)
}

// handleVerifyCode redeems a promotional code. Rejections are routine
// outcomes and share the 200 result shape; only transport and store
// failures get error statuses.
func (s *Server) handleVerifyCode(w http.ResponseWriter, r *http.Request) {
	var req types.RedeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, types.RedemptionResult{
			Valid:   false,
			Message: "Invalid request body",
		})
		return
	}
	if err := req.Validate(); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, types.RedemptionResult{
			Valid:   false,
			Message: "Code is required",
		})
		return
	}

	result, err := s.store.Redeem(r.Context(), req.Code)
	if err != nil {
		log.Printf("Code redemption failed (code=%s): %v", types.CanonicalCode(req.Code), err)
		s.jsonResponse(w, http.StatusInternalServerError, types.RedemptionResult{
			Valid:   false,
			Message: "Error validating code",
		})
		return
	}

	if s.verbose {
		log.Printf("Code redemption: code=%s valid=%t message=%q", types.CanonicalCode(req.Code), result.Valid, result.Message)
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
