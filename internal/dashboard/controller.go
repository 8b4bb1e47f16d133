package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/skills-copilot/internal/agent"
	"github.com/jonathan/skills-copilot/internal/library"
	"github.com/jonathan/skills-copilot/internal/normalize"
	"github.com/jonathan/skills-copilot/internal/prompts"
	"github.com/jonathan/skills-copilot/internal/types"
	"github.com/jonathan/skills-copilot/internal/wizard"
)

// SlotState is the lifecycle state of one agent slot.
type SlotState string

// Slot states.
const (
	SlotIdle      SlotState = "idle"
	SlotBusy      SlotState = "busy"
	SlotSucceeded SlotState = "succeeded"
	SlotFailed    SlotState = "failed"
)

// AgentStatus is the externally visible state of one agent slot.
type AgentStatus struct {
	State  SlotState `json:"state"`
	Reason string    `json:"reason,omitempty"`
}

// ErrAgentBusy is returned when an action is re-invoked while its agent
// slot already has an outstanding call. The caller treats it as a no-op.
var ErrAgentBusy = errors.New("agent call already in progress")

// ErrNoScenario is returned when a forecast is requested with a blank
// scenario.
var ErrNoScenario = errors.New("forecast scenario must not be empty")

// Controller owns all session state and serializes every mutation under
// one mutex. The three agent slots are independent: they may be busy
// concurrently, but each slot admits only one outstanding call.
type Controller struct {
	mu      sync.Mutex
	invoker agent.Invoker

	slots map[string]AgentStatus

	assessment *types.AssessmentResult
	workforce  *types.WorkforceReport
	forecast   *types.ForecastResult

	wizard  *wizard.Wizard
	library *library.Library

	activeView    View
	activeSection Section
	sampleData    bool
}

// NewController creates a controller with an empty session.
func NewController(invoker agent.Invoker) *Controller {
	return &Controller{
		invoker: invoker,
		slots: map[string]AgentStatus{
			agent.AgentOrchestrator: {State: SlotIdle},
			agent.AgentWorkforce:    {State: SlotIdle},
			agent.AgentForecast:     {State: SlotIdle},
		},
		wizard:        wizard.New(),
		library:       library.New(),
		activeView:    ViewEmployee,
		activeSection: SectionAssessment,
	}
}

// WizardState is a consistent snapshot of the wizard taken under the
// controller lock.
type WizardState struct {
	Step        wizard.Step
	CurrentRole string
	TargetRole  string
	Evaluation  *types.SelfEvaluation
	CanAdvance  bool
}

// WizardState returns the wizard's current position and a copy of the
// collected evaluation.
func (c *Controller) WizardState() WizardState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return WizardState{
		Step:        c.wizard.Step(),
		CurrentRole: c.wizard.CurrentRole(),
		TargetRole:  c.wizard.TargetRole(),
		Evaluation:  c.wizard.Evaluation(),
		CanAdvance:  c.wizard.CanAdvance(),
	}
}

// SetRoles selects the wizard's role pair. Changing the pair after a
// completed assessment invalidates the stored analysis so stale results
// are never shown against the new roles.
func (c *Controller) SetRoles(currentRole, targetRole string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	wasComplete := c.wizard.Step() == wizard.StepComplete
	if err := c.wizard.SetRoles(currentRole, targetRole); err != nil {
		return err
	}
	if wasComplete && c.wizard.Step() == wizard.StepRoleSelection {
		c.assessment = nil
		c.resetGatedSectionLocked()
	}
	return nil
}

// RateSkill records a 1-5 self-rating for a skill area.
func (c *Controller) RateSkill(areaID string, rating int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.wizard.RateSkill(areaID, rating)
}

// AnswerQuestion records an experience question answer.
func (c *Controller) AnswerQuestion(questionID, choice string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.wizard.AnswerQuestion(questionID, choice)
}

// SetNotes sets the free-text evaluation notes.
func (c *Controller) SetNotes(strengths, growth string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.wizard.SetNotes(strengths, growth)
}

// AdvanceWizard moves the wizard one step forward. A failed guard
// returns an error and leaves all state unchanged.
func (c *Controller) AdvanceWizard() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.wizard.Advance() {
		return fmt.Errorf("cannot advance from step %q, required fields are missing", c.wizard.Step())
	}
	return nil
}

// WizardBack moves the wizard one step backward, keeping collected data.
func (c *Controller) WizardBack() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.wizard.Back()
}

// RequestMessage renders the wizard's collected inputs into the
// orchestrator request.
func (c *Controller) RequestMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.wizard.RequestMessage()
}

// resetGatedSectionLocked returns the dashboard to the assessment screen
// when the active section requires assessment data that is no longer
// present.
func (c *Controller) resetGatedSectionLocked() {
	info, ok := sectionInfo(c.activeSection)
	if ok && info.NeedsAssessment && !c.hasAssessmentLocked() {
		c.activeView = ViewEmployee
		c.activeSection = SectionAssessment
	}
}

// SelectSection switches the active section. Employee sections other
// than the assessment screen stay disabled until assessment data (live
// or sample) is available.
func (c *Controller) SelectSection(id Section) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	info, ok := sectionInfo(id)
	if !ok {
		return fmt.Errorf("unknown section %q", id)
	}
	if info.NeedsAssessment && !c.hasAssessmentLocked() {
		return fmt.Errorf("section %q requires a completed assessment", id)
	}
	c.activeView = info.View
	c.activeSection = id
	return nil
}

// SetSampleData sets the sample-data display override. The override
// never destroys live data: toggling off restores whatever was fetched.
func (c *Controller) SetSampleData(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sampleData = on
}

// SubmitAssessment renders the wizard's request, invokes the
// orchestrator agent, and stores the normalized assessment. The wizard
// must be at the review step; it advances to complete only on success so
// a failed call can be retried from review.
func (c *Controller) SubmitAssessment(ctx context.Context) error {
	c.mu.Lock()
	if c.wizard.Step() != wizard.StepReview {
		c.mu.Unlock()
		return fmt.Errorf("wizard is at step %q, expected review", c.wizard.Step())
	}
	message := c.wizard.RequestMessage()
	c.mu.Unlock()

	payload, err := runSlot(ctx, c, agent.AgentOrchestrator, message, normalize.Assessment,
		func(p *types.AssessmentResult) { c.assessment = p },
		func() { c.assessment = nil })
	if err != nil || payload == nil {
		// Failed calls leave the wizard at review for a retry; sample
		// mode suppresses the live call entirely.
		return err
	}

	c.mu.Lock()
	_, err = c.wizard.Submit()
	if err == nil {
		c.activeView = ViewEmployee
		c.activeSection = SectionRadar
	}
	c.mu.Unlock()
	return err
}

// RefreshWorkforce requests a fresh org-wide report from the
// workforce-intelligence agent.
func (c *Controller) RefreshWorkforce(ctx context.Context) error {
	message := prompts.MustRender("workforce-report", nil)
	_, err := runSlot(ctx, c, agent.AgentWorkforce, message, normalize.Workforce,
		func(p *types.WorkforceReport) { c.workforce = p },
		func() { c.workforce = nil })
	return err
}

// RunForecast requests a capability forecast for the given scenario.
// Blank scenarios are rejected before any slot state changes.
func (c *Controller) RunForecast(ctx context.Context, scenario string) error {
	scenario = strings.TrimSpace(scenario)
	if scenario == "" {
		return ErrNoScenario
	}

	message := prompts.MustRender("forecast-scenario", map[string]string{"Scenario": scenario})
	_, err := runSlot(ctx, c, agent.AgentForecast, message, normalize.Forecast,
		func(p *types.ForecastResult) { c.forecast = p },
		func() { c.forecast = nil })
	return err
}

// RefreshManagerData refreshes the two manager agents concurrently. The
// slots are independent, so the calls run in parallel; the first error
// is returned after both finish.
func (c *Controller) RefreshManagerData(ctx context.Context, scenario string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.RefreshWorkforce(ctx) })
	g.Go(func() error { return c.RunForecast(ctx, scenario) })
	return g.Wait()
}

// AddContent validates and stores a new library item.
func (c *Controller) AddContent(form types.NewContentItem) (types.ContentItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.library.Add(form)
}

// RemoveContent deletes a library item; unknown ids are a no-op.
func (c *Controller) RemoveContent(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.library.Remove(id)
}

// FilterContent lists library items matching the criteria.
func (c *Controller) FilterContent(department string, contentType types.ContentType) []types.ContentItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.library.Filter(department, contentType)
}

// ContentSummary returns the library's category partition.
func (c *Controller) ContentSummary() types.ContentSummary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.library.Summary()
}

// AgentStatuses returns a copy of the per-slot states.
func (c *Controller) AgentStatuses() map[string]AgentStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]AgentStatus, len(c.slots))
	for id, s := range c.slots {
		out[id] = s
	}
	return out
}

// runSlot executes one guarded agent call: claim the slot, invoke
// outside the lock, then either store the normalized payload and clear
// any previous error, or record the failure and discard the stale
// payload so it is never shown alongside an error banner. The
// sample-data override also suppresses live requests entirely.
func runSlot[T any](
	ctx context.Context,
	c *Controller,
	agentID, message string,
	normalizeFn func(any) (*T, error),
	store func(*T),
	discard func(),
) (*T, error) {
	c.mu.Lock()
	if c.sampleData {
		c.mu.Unlock()
		return nil, nil
	}
	if c.slots[agentID].State == SlotBusy {
		c.mu.Unlock()
		return nil, ErrAgentBusy
	}
	c.slots[agentID] = AgentStatus{State: SlotBusy}
	c.mu.Unlock()

	result := c.invoker.Invoke(ctx, message, agentID)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !result.Success {
		reason := result.Error
		if reason == "" {
			reason = "agent request failed"
		}
		c.slots[agentID] = AgentStatus{State: SlotFailed, Reason: reason}
		discard()
		return nil, fmt.Errorf("agent %s: %s", agentID, reason)
	}

	payload, err := normalizeFn(map[string]any{"response": result.Response})
	if err != nil {
		c.slots[agentID] = AgentStatus{State: SlotFailed, Reason: "failed to parse agent response"}
		discard()
		return nil, err
	}

	c.slots[agentID] = AgentStatus{State: SlotSucceeded}
	store(payload)
	return payload, nil
}

// hasAssessmentLocked reports whether assessment-gated sections may be
// shown. Sample mode counts as data present.
func (c *Controller) hasAssessmentLocked() bool {
	return c.sampleData || c.assessment != nil
}
