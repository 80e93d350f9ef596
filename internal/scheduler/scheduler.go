package scheduler

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"RSISentinel/internal/collector"
	"RSISentinel/internal/metrics"
	"RSISentinel/internal/model"
	"RSISentinel/internal/notifier"
	"RSISentinel/internal/recorder"
	"RSISentinel/internal/strategy"

	"github.com/robfig/cron/v3"
)

// Scheduler drives the fixed-cadence poll loop and the periodic summary.
// Each cycle is sequential: fetch, compute, classify, emit.
type Scheduler struct {
	Cron       *cron.Cron
	Collector  *collector.Collector
	Classifier *strategy.Classifier
	Notifiers  []notifier.Notifier
	Recorder   recorder.Recorder
	Metrics    *metrics.Metrics
	Ctx        context.Context

	mu       sync.Mutex
	lastEval *model.Evaluation
	polls    int64
	alerts   int64
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, cls *strategy.Classifier,
	notifiers []notifier.Notifier, rec recorder.Recorder, m *metrics.Metrics) *Scheduler {
	return &Scheduler{
		Cron:       cron.New(cron.WithSeconds()),
		Collector:  col,
		Classifier: cls,
		Notifiers:  notifiers,
		Recorder:   rec,
		Metrics:    m,
		Ctx:        ctx,
	}
}

// RegisterAll registers the poll task and the daily summary task.
func (s *Scheduler) RegisterAll(pollCron, summaryCron string) error {
	if _, err := s.Cron.AddFunc(pollCron, s.pollTask); err != nil {
		return fmt.Errorf("register poll task: %w", err)
	}
	if _, err := s.Cron.AddFunc(summaryCron, s.summaryTask); err != nil {
		return fmt.Errorf("register summary task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// PollNow executes one poll cycle immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) PollNow() {
	s.pollTask()
}

func (s *Scheduler) pollTask() {
	start := time.Now()
	s.Metrics.PollsTotal.Inc()

	ev, err := s.Collector.Snapshot(s.Ctx)
	s.Metrics.ObserveFetch(time.Since(start))
	if err != nil {
		s.Metrics.FetchErrors.Inc()
		log.Printf("[ERROR] poll cycle: %v", err)
		return
	}

	alert := s.Classifier.Evaluate(ev.Symbol, ev.RSI, ev.Price, ev.Time)
	if alert != nil {
		ev.Signal = alert.Kind
	}
	if !math.IsNaN(ev.RSI) {
		s.Metrics.LastRSI.Set(ev.RSI)
	}

	s.mu.Lock()
	s.lastEval = ev
	s.polls++
	if alert != nil {
		s.alerts++
	}
	s.mu.Unlock()

	if err := s.Recorder.RecordEvaluation(ev); err != nil {
		log.Printf("[ERROR] record evaluation: %v", err)
	}

	if alert == nil {
		return
	}

	log.Printf("[INFO] %s signal %s (RSI %.2f)", alert.Symbol, alert.Kind, alert.RSI)
	s.Metrics.AlertsTotal.WithLabelValues(string(alert.Kind)).Inc()
	s.trySend(notifier.FormatAlert(alert))
	if err := s.Recorder.RecordAlert(alert); err != nil {
		log.Printf("[ERROR] record alert: %v", err)
	}
}

func (s *Scheduler) summaryTask() {
	log.Println("[INFO] running summary task")
	s.mu.Lock()
	ev, polls, alerts := s.lastEval, s.polls, s.alerts
	s.mu.Unlock()

	s.trySend(notifier.FormatSummary(ev, polls, alerts))
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/rsi":
		s.pollTask()
		return s.statusReply()
	case "/status":
		return s.statusReply()
	case "/summary":
		s.mu.Lock()
		ev, polls, alerts := s.lastEval, s.polls, s.alerts
		s.mu.Unlock()
		return notifier.FormatSummary(ev, polls, alerts)
	default:
		return "Available commands:\n• /rsi — evaluate now\n• /status — latest evaluation\n• /summary — activity summary"
	}
}

func (s *Scheduler) statusReply() string {
	s.mu.Lock()
	ev := s.lastEval
	s.mu.Unlock()
	if ev == nil {
		return "No evaluation yet."
	}
	return notifier.FormatStatus(ev)
}

func (s *Scheduler) trySend(text string) {
	for _, n := range s.Notifiers {
		if err := n.Send(s.Ctx, text); err != nil {
			log.Printf("[ERROR] send via %s: %v", n.Name(), err)
		}
	}
}
