package update

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/looplab/fsm"
	"go.uber.org/zap"

	"github.com/insushim/neis-helper/internal/model"
)

// Check state machine events
const (
	eventRequest = "request"
	eventParse   = "parse"
	eventFail    = "fail"
)

// DefaultConnectTimeout bounds connection setup only; the body read is
// not limited.
const DefaultConnectTimeout = 5 * time.Second

const dialKeepAlive = 30 * time.Second

// ErrAlreadyChecked is returned when Check runs on a checker that left idle
var ErrAlreadyChecked = errors.New("update check already ran")

// Config configures a Checker
type Config struct {
	Endpoint         string
	Accept           string
	ConnectTimeout   time.Duration
	InstalledVersion string
}

// Checker fetches the latest release descriptor and compares versions
type Checker struct {
	cfg     Config
	client  *resty.Client
	machine *fsm.FSM
	logger  *zap.Logger

	mu      sync.Mutex
	started bool
	done    chan struct{}
}

// NewChecker creates a checker. The logger gets a per-launch check_id.
func NewChecker(cfg Config, logger *zap.Logger) *Checker {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = DefaultConnectTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Checker{
		cfg:    cfg,
		client: newClient(cfg),
		logger: logger.With(zap.String("check_id", uuid.NewString())),
		done:   make(chan struct{}),
	}

	c.machine = fsm.NewFSM(
		string(model.CheckStateIdle),
		fsm.Events{
			{Name: eventRequest, Src: []string{string(model.CheckStateIdle)}, Dst: string(model.CheckStateRequesting)},
			{Name: eventParse, Src: []string{string(model.CheckStateRequesting)}, Dst: string(model.CheckStateParsed)},
			{Name: eventFail, Src: []string{string(model.CheckStateRequesting)}, Dst: string(model.CheckStateFailed)},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				c.logger.Debug("update check state changed",
					zap.String("from", e.Src),
					zap.String("to", e.Dst))
			},
		},
	)

	return c
}

// newClient builds the resty client over a pooled transport whose dialer
// carries the connect timeout.
func newClient(cfg Config) *resty.Client {
	transport := cleanhttp.DefaultPooledTransport()
	transport.DialContext = (&net.Dialer{
		Timeout:   cfg.ConnectTimeout,
		KeepAlive: dialKeepAlive,
	}).DialContext

	client := resty.New().
		SetTransport(transport).
		SetHeader("User-Agent", "neis-helper-shell")
	if cfg.Accept != "" {
		client.SetHeader("Accept", cfg.Accept)
	}
	return client
}

// HTTPClient exposes the underlying client
func (c *Checker) HTTPClient() *http.Client {
	return c.client.GetClient()
}

// State returns the current check state
func (c *Checker) State() model.CheckState {
	return model.CheckState(c.machine.Current())
}

// Done is closed when the goroutine started by Start returns. It never
// closes if Start was not called.
func (c *Checker) Done() <-chan struct{} {
	return c.done
}

// Check performs the request synchronously. It returns nil, nil when the
// published version equals the installed one.
func (c *Checker) Check(ctx context.Context) (*model.UpdateOffer, error) {
	if state := c.State(); state.IsFinished() {
		return nil, fmt.Errorf("%w: state %s", ErrAlreadyChecked, state)
	}
	if err := c.machine.Event(context.Background(), eventRequest); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlreadyChecked, err)
	}

	offer, err := c.fetch(ctx)
	if err != nil {
		_ = c.machine.Event(context.Background(), eventFail)
		return nil, err
	}

	_ = c.machine.Event(context.Background(), eventParse)
	return offer, nil
}

func (c *Checker) fetch(ctx context.Context) (*model.UpdateOffer, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(c.cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("request release: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("release endpoint returned %s", resp.Status())
	}

	release, err := ParseRelease(resp.Body())
	if err != nil {
		return nil, err
	}

	return Compare(release, c.cfg.InstalledVersion)
}

// Start runs Check once in a background goroutine. Every error and panic
// is discarded; onOffer runs only for a real offer while ctx is live.
func (c *Checker) Start(ctx context.Context, onOffer func(model.UpdateOffer)) {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.mu.Unlock()

	go func() {
		defer close(c.done)
		defer func() {
			if r := recover(); r != nil {
				c.logger.Debug("update check panicked", zap.Any("panic", r))
			}
		}()

		offer, err := c.Check(ctx)
		if err != nil {
			c.logger.Debug("update check failed", zap.Error(err))
			return
		}
		if offer == nil {
			c.logger.Debug("app is up to date", zap.String("version", c.cfg.InstalledVersion))
			return
		}
		if ctx.Err() != nil || onOffer == nil {
			return
		}

		c.logger.Info("update available",
			zap.String("installed", c.cfg.InstalledVersion),
			zap.String("latest", offer.Version))
		onOffer(*offer)
	}()
}
