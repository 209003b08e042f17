package notify

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/javiermolinar/agenda/internal/event"
	"github.com/javiermolinar/agenda/internal/logging"
)

// Sink receives reminders for events that became due.
type Sink interface {
	Notify(ctx context.Context, e event.Event, message string) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, e event.Event, message string) error

// Notify calls f.
func (f SinkFunc) Notify(ctx context.Context, e event.Event, message string) error {
	return f(ctx, e, message)
}

// WriterSink writes one line per reminder.
type WriterSink struct {
	W   io.Writer
	Now func() time.Time
}

// Notify writes "[HH:MM] message" to the underlying writer.
func (s WriterSink) Notify(_ context.Context, _ event.Event, message string) error {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	_, err := fmt.Fprintf(s.W, "[%s] %s\n", now().Format("15:04"), message)
	return err
}

// Options configures a Notifier.
type Options struct {
	Logger *logging.Logger
	Now    func() time.Time
}

// Notifier re-reads the event list on every tick and hands newly due events
// to a sink, remembering which ids were already announced.
type Notifier struct {
	source event.Source
	sink   Sink
	log    *logging.Logger
	now    func() time.Time

	mu       sync.Mutex
	notified map[string]struct{}
}

// NewNotifier creates a Notifier reading from source and delivering to sink.
func NewNotifier(source event.Source, sink Sink, opts Options) *Notifier {
	n := &Notifier{
		source:   source,
		sink:     sink,
		log:      opts.Logger,
		now:      opts.Now,
		notified: make(map[string]struct{}),
	}
	if n.log == nil {
		n.log = logging.Discard()
	}
	if n.now == nil {
		n.now = time.Now
	}
	return n
}

// Tick loads the events, delivers reminders for the ones that are due and
// returns the events that were delivered. An event whose delivery fails is
// retried on the next tick.
func (n *Notifier) Tick(ctx context.Context) ([]event.Event, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	events, err := n.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading events: %w", err)
	}

	now := n.now()
	due := Upcoming(events, now, n.notifiedIDs())
	n.log.Debug("notification tick", "events", len(events), "due", len(due), "now", now.Format(time.RFC3339))

	delivered := make([]event.Event, 0, len(due))
	for _, e := range due {
		if err := n.sink.Notify(ctx, e, Message(e)); err != nil {
			n.log.Error("delivering reminder", "id", e.ID, "err", err)
			continue
		}
		n.notified[e.ID] = struct{}{}
		delivered = append(delivered, e)
		n.log.Info("reminder sent", "id", e.ID, "title", e.Title)
	}
	return delivered, nil
}

// Notified returns the ids that have already been announced, sorted.
func (n *Notifier) Notified() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.notifiedIDs()
}

func (n *Notifier) notifiedIDs() []string {
	ids := make([]string, 0, len(n.notified))
	for id := range n.notified {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Run ticks once immediately and then on the cron schedule spec until ctx is
// done. Tick errors are logged and do not stop the loop.
func (n *Notifier) Run(ctx context.Context, spec string) error {
	clog := cronLogger{log: n.log}
	c := cron.New(
		cron.WithLogger(clog),
		cron.WithChain(cron.Recover(clog), cron.SkipIfStillRunning(clog)),
	)

	tick := func() {
		if _, err := n.Tick(ctx); err != nil {
			n.log.Error("notification tick failed", "err", err)
		}
	}
	if _, err := c.AddFunc(spec, tick); err != nil {
		return fmt.Errorf("scheduling notifications %q: %w", spec, err)
	}

	tick()
	c.Start()
	n.log.Info("notifier started", "schedule", spec)

	<-ctx.Done()
	<-c.Stop().Done()
	n.log.Info("notifier stopped")
	return nil
}

// cronLogger routes cron's own logging through our logger.
type cronLogger struct {
	log *logging.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error("cron: "+msg, append([]any{"err", err}, keysAndValues...)...)
}
