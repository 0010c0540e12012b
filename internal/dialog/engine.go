package dialog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/studionexa/dance-orchestrator/internal/leads"
	"github.com/studionexa/dance-orchestrator/internal/observability/metrics"
	"github.com/studionexa/dance-orchestrator/pkg/logging"
)

// Request is one inbound user message addressed to a conversation.
type Request struct {
	ConversationID string
	Tenant         string
	Text           string
	Scenario       string
}

// Debug mirrors the session transition of one turn for the simulator's
// inspector panel.
type Debug struct {
	Scenario    string `json:"scenario,omitempty"`
	Stage       string `json:"stage"`
	Intent      string `json:"intent"`
	Slots       Slots  `json:"slots"`
	StateBefore string `json:"state_before"`
	StateAfter  string `json:"state_after"`
	RuleUsed    string `json:"rule_used"`
}

// Result is the engine's answer for one turn.
type Result struct {
	Reply        string
	Intent       Intent
	QuickActions []string
	Slots        Slots
	Debug        Debug
	LeadStatus   string
	Version      string
}

// LeadStatusNew marks a turn that produced a lead.
const LeadStatusNew = "new_lead"

// Options wires the engine's collaborators. Everything but Store is
// optional; absent collaborators degrade to no-ops.
type Options struct {
	Store          SessionStore
	Emitter        *leads.Emitter
	Metrics        *metrics.Metrics
	Logger         *logging.Logger
	Events         *EventLogger
	Version        string
	QuickActions   bool
	RentLegacyFlow bool
	Now            func() time.Time
}

// Engine runs the message pipeline: global commands, session lookup, fact
// extraction, classification, stage routing, lead emission. Turns are
// processed strictly one at a time; the conversational model is synchronous
// and rule evaluation is deterministic given the session state.
type Engine struct {
	mu         sync.Mutex
	store      SessionStore
	emitter    *leads.Emitter
	metrics    *metrics.Metrics
	log        *logging.Logger
	events     *EventLogger
	version    string
	quickUI    bool
	rentLegacy bool
	now        func() time.Time
}

func NewEngine(opts Options) *Engine {
	log := opts.Logger
	if log == nil {
		log = logging.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	store := opts.Store
	if store == nil {
		store = NewMemoryStore()
	}
	return &Engine{
		store:      store,
		emitter:    opts.Emitter,
		metrics:    opts.Metrics,
		log:        log,
		events:     opts.Events,
		version:    opts.Version,
		quickUI:    opts.QuickActions,
		rentLegacy: opts.RentLegacyFlow,
		now:        now,
	}
}

// Process handles one message end to end and returns the reply envelope.
func (e *Engine) Process(ctx context.Context, req Request) (*Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	wallStart := time.Now()

	sess, err := e.store.Get(ctx, req.ConversationID)
	if err != nil {
		// a broken session backend must not take the bot down; the cost is
		// one conversation starting over
		e.log.Error("session load failed, starting fresh", "conversation_id", req.ConversationID, "error", err)
		sess = nil
	}
	if sess == nil {
		sess = NewSession(req.Tenant)
	}
	stateBefore := stateLabel(sess)

	raw := RewriteRelativeDates(req.Text, e.now())
	in := turnInput{Raw: raw, Norm: NormalizeText(raw), Facts: ExtractFacts(raw)}

	e.applyScenario(sess, req.Scenario)

	var res turnResult
	var intent Intent
	if cmd, ok := MatchCommand(req.Text); ok {
		e.metrics.ObserveCommand(string(cmd.Kind))
		res, intent = e.applyCommand(sess, cmd, in)
	} else {
		sess.Slots.SetPhone(in.Facts.Phone)
		res, intent = e.route(sess, in)
	}

	if err := e.store.Save(ctx, req.ConversationID, sess); err != nil {
		e.log.Error("session save failed", "conversation_id", req.ConversationID, "error", err)
	}

	leadStatus := ""
	if res.LeadReady {
		leadStatus = LeadStatusNew
		e.emitter.Emit(ctx, leads.New(leads.Lead{
			Tenant:         sess.Tenant,
			ConversationID: req.ConversationID,
			Scenario:       sess.Scenario,
			Intent:         string(intent),
			Phone:          sess.Slots.Phone,
			Age:            sess.Slots.Age,
			ForWhom:        sess.Slots.ForWhom,
			Interest:       sess.Slots.Interest,
			TimePref:       sess.Slots.TimePref,
			RentDate:       sess.Slots.RentDate,
			RentTime:       sess.Slots.RentTime,
			Format:         sess.Slots.Format,
			People:         sess.Slots.People,
		}))
	}

	actions := res.QuickActions
	if !e.quickUI {
		actions = nil
	}

	result := &Result{
		Reply:        res.Reply,
		Intent:       intent,
		QuickActions: actions,
		Slots:        sess.Slots,
		LeadStatus:   leadStatus,
		Version:      e.version,
		Debug: Debug{
			Scenario:    sess.Scenario,
			Stage:       string(sess.Stage),
			Intent:      string(intent),
			Slots:       sess.Slots,
			StateBefore: stateBefore,
			StateAfter:  stateLabel(sess),
			RuleUsed:    res.Rule,
		},
	}

	e.events.Record(ctx, TurnEvent{
		ConversationID: req.ConversationID,
		Tenant:         sess.Tenant,
		Text:           req.Text,
		Reply:          res.Reply,
		Scenario:       sess.Scenario,
		Intent:         string(intent),
		Stage:          string(sess.Stage),
		Slots:          sess.Slots,
		Rule:           res.Rule,
		LeadStatus:     leadStatus,
		At:             e.now().UTC(),
	})
	e.metrics.ObserveMessage(string(intent), string(sess.Stage))
	e.metrics.ObserveTurn(time.Since(wallStart))

	return result, nil
}

func stateLabel(sess *Session) string {
	return fmt.Sprintf("%s/%s", sess.Scenario, sess.Stage)
}

// applyScenario folds the request's scenario declaration into the session.
// A changed scenario resets the topic and locks the matching intent, except
// that an already sticky yoga dialogue keeps its lock.
func (e *Engine) applyScenario(sess *Session, scenario string) {
	scen := NormalizeScenario(scenario)
	if scen == "" || scen == sess.Scenario {
		return
	}
	if sess.ActiveIntent == IntentYoga {
		sess.Scenario = scen
		return
	}
	sess.ResetTopic()
	sess.Scenario = scen
	sess.ActiveIntent = scenarioIntent(scen)
}

func (e *Engine) applyCommand(sess *Session, cmd Command, in turnInput) (turnResult, Intent) {
	switch cmd.Kind {
	case CommandReset:
		sess.Reset()
		return turnResult{Reply: replyResetDone, Rule: "command.reset"}, IntentGeneral

	case CommandBack:
		sess.ResetTopic()
		sess.ActiveIntent = scenarioIntent(sess.Scenario)
		if sess.ActiveIntent == IntentNone {
			return turnResult{Reply: replyNeutral, Rule: "command.back"}, IntentGeneral
		}
		res := e.dispatch(sess, turnInput{})
		res.Rule = "command.back"
		return res, sess.ActiveIntent

	case CommandSchedule:
		return turnResult{Reply: scheduleReply(), Rule: "command.schedule"}, IntentSchedule

	case CommandEscalate:
		return turnResult{Reply: replyAdminHandoff, Rule: "command.escalate", LeadReady: true}, IntentEscalate

	case CommandScenario:
		sess.ResetTopic()
		sess.Scenario = cmd.Scenario
		sess.ActiveIntent = scenarioIntent(cmd.Scenario)
		res := e.dispatch(sess, in)
		return res, sess.ActiveIntent
	}
	return turnResult{Reply: replyNeutral, Rule: "command.unknown"}, IntentGeneral
}

// route handles ordinary dialogue: locked intents go straight to their
// machine, otherwise the classifier picks the topic.
func (e *Engine) route(sess *Session, in turnInput) (turnResult, Intent) {
	if sess.ActiveIntent == IntentNone && IsTrainerMention(in.Raw) {
		return handleTrainer(sess, in), IntentTrainer
	}
	if sess.ActiveIntent == IntentNone && IsYogaMention(in.Raw) {
		sess.ActiveIntent = IntentYoga
	}

	if sess.ActiveIntent != IntentNone {
		if sess.Stage == StageReady {
			cls := Classify(in.Raw)
			if isTopicIntent(cls.Intent) && cls.Intent != sess.ActiveIntent {
				// a finished conversation can open a new topic; the phone
				// slot carries over under its write-once invariant
				phone := sess.Slots.Phone
				sess.ResetTopic()
				sess.Slots.Phone = phone
				sess.ActiveIntent = cls.Intent
			} else {
				return turnResult{Reply: replyReady, Rule: "engine.already_ready"}, sess.ActiveIntent
			}
		}
		return e.dispatch(sess, in), sess.ActiveIntent
	}

	cls := Classify(in.Raw)
	switch cls.Intent {
	case IntentRent, IntentYoga, IntentTrial:
		sess.ActiveIntent = cls.Intent
		return e.dispatch(sess, in), cls.Intent
	case IntentOfferDance:
		return turnResult{Reply: replyOfferDance, Rule: "classifier.offer_dance"}, IntentOfferDance
	case IntentOffer:
		return turnResult{Reply: replyOffer, Rule: "classifier.offer"}, IntentOffer
	case IntentDance:
		return turnResult{Reply: replyOfferDance, Rule: "classifier.dance"}, IntentDance
	}
	return turnResult{Reply: replyNeutral, Rule: "classifier.general"}, IntentGeneral
}

func isTopicIntent(intent Intent) bool {
	switch intent {
	case IntentRent, IntentYoga, IntentTrial:
		return true
	}
	return false
}

func (e *Engine) dispatch(sess *Session, in turnInput) turnResult {
	switch sess.ActiveIntent {
	case IntentRent:
		return handleRent(sess, in, e.rentLegacy)
	case IntentYoga:
		return handleYoga(sess, in)
	case IntentKids:
		return handleKids(sess, in)
	case IntentTrial:
		return handleTrial(sess, in)
	case IntentTrainer:
		return handleTrainer(sess, in)
	}
	return turnResult{Reply: replyNeutral, Rule: "engine.no_machine"}
}
