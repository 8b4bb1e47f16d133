package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/skills-copilot/internal/dashboard"
	"github.com/jonathan/skills-copilot/internal/normalize"
	"github.com/jonathan/skills-copilot/internal/types"
	"github.com/jonathan/skills-copilot/internal/wizard"
)

// WizardStateResponse describes the wizard's current position and the
// catalogs the client needs to render the step.
type WizardStateResponse struct {
	Step        wizard.Step                 `json:"step"`
	CurrentRole string                      `json:"current_role"`
	TargetRole  string                      `json:"target_role"`
	Evaluation  *types.SelfEvaluation       `json:"evaluation"`
	CanAdvance  bool                        `json:"can_advance"`
	Roles       []string                    `json:"roles"`
	SkillAreas  []wizard.SkillArea          `json:"skill_areas"`
	Questions   []wizard.ExperienceQuestion `json:"questions"`
}

// SectionRequest selects a dashboard section.
type SectionRequest struct {
	Section dashboard.Section `json:"section"`
}

// SampleDataRequest toggles the sample-data override.
type SampleDataRequest struct {
	Enabled bool `json:"enabled"`
}

// RolesRequest sets the wizard's current and target roles.
type RolesRequest struct {
	CurrentRole string `json:"current_role"`
	TargetRole  string `json:"target_role"`
}

// RatingRequest records one skill self-rating.
type RatingRequest struct {
	Area   string `json:"area"`
	Rating int    `json:"rating"`
}

// AnswerRequest records one experience question answer.
type AnswerRequest struct {
	Question string `json:"question"`
	Choice   string `json:"choice"`
}

// NotesRequest sets the free-text evaluation notes.
type NotesRequest struct {
	Strengths string `json:"strengths"`
	Growth    string `json:"growth"`
}

// ForecastRequest names the scenario to project.
type ForecastRequest struct {
	Scenario string `json:"scenario"`
}

func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.controller.Snapshot())
}

func (s *Server) handleSelectSection(w http.ResponseWriter, r *http.Request) {
	var req SectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.controller.SelectSection(req.Section); err != nil {
		s.errorResponse(w, http.StatusConflict, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.controller.Snapshot())
}

func (s *Server) handleSampleData(w http.ResponseWriter, r *http.Request) {
	var req SampleDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	s.controller.SetSampleData(req.Enabled)
	s.jsonResponse(w, http.StatusOK, s.controller.Snapshot())
}

func (s *Server) handleWizardState(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.wizardState())
}

func (s *Server) handleWizardRoles(w http.ResponseWriter, r *http.Request) {
	var req RolesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.controller.SetRoles(req.CurrentRole, req.TargetRole); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.wizardState())
}

func (s *Server) handleWizardRating(w http.ResponseWriter, r *http.Request) {
	var req RatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.controller.RateSkill(req.Area, req.Rating); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.wizardState())
}

func (s *Server) handleWizardAnswer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.controller.AnswerQuestion(req.Question, req.Choice); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.wizardState())
}

func (s *Server) handleWizardNotes(w http.ResponseWriter, r *http.Request) {
	var req NotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	s.controller.SetNotes(req.Strengths, req.Growth)
	s.jsonResponse(w, http.StatusOK, s.wizardState())
}

func (s *Server) handleWizardAdvance(w http.ResponseWriter, _ *http.Request) {
	if err := s.controller.AdvanceWizard(); err != nil {
		s.errorResponse(w, http.StatusConflict, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.wizardState())
}

func (s *Server) handleWizardBack(w http.ResponseWriter, _ *http.Request) {
	s.controller.WizardBack()
	s.jsonResponse(w, http.StatusOK, s.wizardState())
}

func (s *Server) handleSubmitAssessment(w http.ResponseWriter, r *http.Request) {
	if err := s.controller.SubmitAssessment(r.Context()); err != nil {
		s.agentErrorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.controller.Snapshot())
}

func (s *Server) handleRefreshWorkforce(w http.ResponseWriter, r *http.Request) {
	if err := s.controller.RefreshWorkforce(r.Context()); err != nil {
		s.agentErrorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.controller.Snapshot())
}

func (s *Server) handleRunForecast(w http.ResponseWriter, r *http.Request) {
	var req ForecastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.controller.RunForecast(r.Context(), req.Scenario); err != nil {
		s.agentErrorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.controller.Snapshot())
}

func (s *Server) handleRefreshManager(w http.ResponseWriter, r *http.Request) {
	var req ForecastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.controller.RefreshManagerData(r.Context(), req.Scenario); err != nil {
		s.agentErrorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.controller.Snapshot())
}

func (s *Server) handleAgentStatuses(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.controller.AgentStatuses())
}

func (s *Server) handleListContent(w http.ResponseWriter, r *http.Request) {
	department := r.URL.Query().Get("department")
	contentType := types.ContentType(r.URL.Query().Get("type"))
	s.jsonResponse(w, http.StatusOK, s.controller.FilterContent(department, contentType))
}

func (s *Server) handleAddContent(w http.ResponseWriter, r *http.Request) {
	var form types.NewContentItem
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	item, err := s.controller.AddContent(form)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, item)
}

func (s *Server) handleRemoveContent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid content id")
		return
	}
	s.controller.RemoveContent(id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleContentSummary(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.controller.ContentSummary())
}

// agentErrorResponse maps controller errors from agent-backed
// operations onto HTTP statuses.
func (s *Server) agentErrorResponse(w http.ResponseWriter, err error) {
	var parseErr *normalize.ParseError
	switch {
	case errors.Is(err, dashboard.ErrAgentBusy):
		s.errorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, dashboard.ErrNoScenario):
		s.errorResponse(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &parseErr):
		s.errorResponse(w, http.StatusBadGateway, err.Error())
	default:
		s.errorResponse(w, http.StatusBadGateway, err.Error())
	}
}

func (s *Server) wizardState() WizardStateResponse {
	state := s.controller.WizardState()
	return WizardStateResponse{
		Step:        state.Step,
		CurrentRole: state.CurrentRole,
		TargetRole:  state.TargetRole,
		Evaluation:  state.Evaluation,
		CanAdvance:  state.CanAdvance,
		Roles:       wizard.Roles,
		SkillAreas:  wizard.SkillAreas,
		Questions:   wizard.ExperienceQuestions,
	}
}
