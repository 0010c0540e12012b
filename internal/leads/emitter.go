package leads

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/studionexa/dance-orchestrator/internal/observability/metrics"
	"github.com/studionexa/dance-orchestrator/pkg/logging"
)

// Notifier delivers a new-lead notification to an external channel.
type Notifier interface {
	NotifyNewLead(ctx context.Context, lead Lead)
}

// Emitter fans a completed lead out to the JSONL log, the repository and the
// webhook notifier. Delivery failures are logged and swallowed: the user
// already got their confirmation, losing a turn over a sink error would be
// worse than losing the sink.
type Emitter struct {
	mu       sync.Mutex
	logPath  string
	repo     Repository
	notifier Notifier
	metrics  *metrics.Metrics
	log      *logging.Logger
}

func NewEmitter(logPath string, repo Repository, notifier Notifier, m *metrics.Metrics, log *logging.Logger) *Emitter {
	if log == nil {
		log = logging.Default()
	}
	return &Emitter{logPath: logPath, repo: repo, notifier: notifier, metrics: m, log: log}
}

// Emit records the lead everywhere it is wired to go.
func (e *Emitter) Emit(ctx context.Context, lead Lead) {
	if e == nil {
		return
	}
	e.appendJSONL(lead)

	if e.repo != nil {
		if err := e.repo.Insert(ctx, lead); err != nil {
			e.log.Error("lead repository insert failed", "lead_id", lead.ID, "error", err)
		}
	}

	e.metrics.ObserveLead(lead.Intent)

	if e.notifier != nil {
		// delivered before the turn completes; the timeout caps how long a
		// slow webhook can hold the conversation
		nctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		start := time.Now()
		e.notifier.NotifyNewLead(nctx, lead)
		e.metrics.ObserveWebhook(time.Since(start))
		cancel()
	}

	e.log.Info("lead emitted",
		"lead_id", lead.ID,
		"tenant", lead.Tenant,
		"intent", lead.Intent,
		"has_phone", lead.Phone != "",
	)
}

func (e *Emitter) appendJSONL(lead Lead) {
	if e.logPath == "" {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	f, err := os.OpenFile(e.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		e.log.Error("lead log open failed", "path", e.logPath, "error", err)
		return
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(lead); err != nil {
		e.log.Error("lead log write failed", "path", e.logPath, "error", err)
	}
}
