package entry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ytget/juice-tracker/internal/model"
	"github.com/ytget/juice-tracker/internal/store"
)

var (
	// ErrNotSubmittable is returned by Save while name or description is blank.
	ErrNotSubmittable = errors.New("name and description are required")
	// ErrSessionClosed is returned by Save after the session was saved or cancelled.
	ErrSessionClosed = errors.New("entry session is closed")
	// ErrSaveInProgress is returned by Save while a previous save has not returned.
	ErrSaveInProgress = errors.New("save already in progress")
)

// Store is the part of the record store the controller talks to.
type Store interface {
	FetchByID(ctx context.Context, id int64) (*model.Juice, error)
	Persist(ctx context.Context, juice model.Juice) (model.Juice, error)
}

// Change describes the session after a transition.
type Change struct {
	Juice       model.Juice
	State       State
	Submittable bool
	// FromLoad is set when the change was applied by an asynchronous load
	// and therefore arrives off the caller's goroutine.
	FromLoad bool
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the base logger; the session id is added to it.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// Controller is the state machine of one add/edit session.
// Field setters are expected on a single goroutine; loads complete on their own.
type Controller struct {
	store     Store
	sessionID string
	logger    zerolog.Logger

	mu         sync.Mutex
	juice      model.Juice
	state      State
	edited     bool
	saving     bool
	loadGen    uint64
	loadCancel context.CancelFunc
	onChange   func(Change)
}

// NewController starts an empty session backed by s
func NewController(s Store, opts ...Option) *Controller {
	c := &Controller{
		store:     s,
		sessionID: uuid.NewString(),
		logger:    log.Logger,
		juice:     model.NewJuice(),
		state:     StateEmpty,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With().Str("session", c.sessionID).Logger()
	return c
}

// SessionID returns the unique id of this session
func (c *Controller) SessionID() string {
	return c.sessionID
}

// OnChange sets the callback invoked after every transition
func (c *Controller) OnChange(fn func(Change)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Snapshot returns the current field values
func (c *Controller) Snapshot() model.Juice {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.juice
}

// State returns the current phase of the session
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Current returns the session as one consistent Change
func (c *Controller) Current() Change {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch, _ := c.changeLocked(false)
	return ch
}

// Submittable reports whether Save is currently allowed.
func (c *Controller) Submittable() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submittableLocked()
}

func (c *Controller) submittableLocked() bool {
	if c.state.IsTerminal() {
		return false
	}
	return !model.IsBlank(c.juice.Name) && !model.IsBlank(c.juice.Description)
}

// changeLocked captures the session for listeners; c.mu must be held.
func (c *Controller) changeLocked(fromLoad bool) (Change, func(Change)) {
	return Change{
		Juice:       c.juice,
		State:       c.state,
		Submittable: c.submittableLocked(),
		FromLoad:    fromLoad,
	}, c.onChange
}

func emit(ch Change, fn func(Change)) {
	if fn != nil {
		fn(ch)
	}
}

// Load fetches the record with the given id in the background. A non-positive
// id starts a new entry. The returned channel is closed once the result has
// been applied or dropped. The result is dropped when the user edited any
// field first, when the session ended, or when a later Load superseded it.
func (c *Controller) Load(ctx context.Context, id int64) <-chan struct{} {
	done := make(chan struct{})

	c.mu.Lock()
	if id <= 0 || c.state.IsTerminal() {
		c.mu.Unlock()
		close(done)
		return done
	}

	if c.loadCancel != nil {
		c.loadCancel()
	}
	c.loadGen++
	gen := c.loadGen
	loadCtx, cancel := context.WithCancel(ctx)
	c.loadCancel = cancel
	c.juice.ID = id
	c.mu.Unlock()

	c.logger.Debug().Int64("id", id).Msg("loading juice")

	go func() {
		defer close(done)
		defer cancel()

		j, err := c.store.FetchByID(loadCtx, id)
		c.applyLoad(gen, id, j, err)
	}()

	return done
}

func (c *Controller) applyLoad(gen uint64, id int64, j *model.Juice, err error) {
	c.mu.Lock()
	if gen != c.loadGen || c.state.IsTerminal() {
		c.mu.Unlock()
		c.logger.Debug().Int64("id", id).Msg("dropping load result of a finished session")
		return
	}
	c.loadCancel = nil

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.mu.Unlock()
		c.logger.Debug().Int64("id", id).Err(err).Msg("load aborted")
		return

	case errors.Is(err, store.ErrNotFound), err == nil && j == nil:
		// Nothing to edit; the session continues as a new entry.
		if c.juice.ID == id {
			c.juice.ID = 0
		}
		c.logger.Info().Int64("id", id).Msg("juice not found, starting a new entry")

	case err != nil:
		// Keep the id so a save still targets the requested record.
		c.logger.Warn().Int64("id", id).Err(err).Msg("failed to load juice")

	case c.edited:
		c.logger.Debug().Int64("id", id).Msg("discarding load result, fields were edited")

	default:
		loaded := *j
		if !loaded.Color.IsValid() {
			loaded.Color = model.DefaultColor()
		}
		loaded.Rating = model.ClampRating(loaded.Rating)
		c.juice = loaded
		c.state = StateLoaded
	}

	ch, fn := c.changeLocked(true)
	c.mu.Unlock()
	emit(ch, fn)
}

// edit applies a user change to a live session
func (c *Controller) edit(apply func(j *model.Juice)) {
	c.mu.Lock()
	if c.state.IsTerminal() {
		c.mu.Unlock()
		return
	}
	if c.saving {
		c.mu.Unlock()
		c.logger.Debug().Msg("ignoring edit while save is in flight")
		return
	}
	apply(&c.juice)
	c.edited = true
	c.state = StateEditing
	ch, fn := c.changeLocked(false)
	c.mu.Unlock()
	emit(ch, fn)
}

// SetName sets the raw name text
func (c *Controller) SetName(name string) {
	c.edit(func(j *model.Juice) { j.Name = name })
}

// SetDescription sets the raw description text
func (c *Controller) SetDescription(description string) {
	c.edit(func(j *model.Juice) { j.Description = description })
}

// SetRating sets the star count, clamped to the valid range
func (c *Controller) SetRating(rating int) {
	c.edit(func(j *model.Juice) { j.Rating = model.ClampRating(rating) })
}

// SetColor selects a color; values outside the enumeration select the first member
func (c *Controller) SetColor(color model.Color) {
	if !color.IsValid() {
		color = model.DefaultColor()
	}
	c.edit(func(j *model.Juice) { j.Color = color })
}

// SelectColorIndex selects the color at a selection-control index
func (c *Controller) SelectColorIndex(index int) {
	c.SetColor(model.ColorAt(index))
}

// SelectColorName selects a color by member name
func (c *Controller) SelectColorName(name string) {
	color, _ := model.ParseColor(name)
	c.SetColor(color)
}

// ClearColorSelection handles a selection control losing its selection
func (c *Controller) ClearColorSelection() {
	c.SetColor(model.DefaultColor())
}

// Save hands the finalized record to the store. It is only allowed while
// Submittable; the store is called exactly once per successful session.
// Field edits and Cancel are ignored until the store call returns.
// On a store error the session stays open so the user can retry.
func (c *Controller) Save(ctx context.Context) error {
	c.mu.Lock()
	switch {
	case c.state.IsTerminal():
		c.mu.Unlock()
		return ErrSessionClosed
	case c.saving:
		c.mu.Unlock()
		return ErrSaveInProgress
	case !c.submittableLocked():
		c.mu.Unlock()
		return ErrNotSubmittable
	}
	c.saving = true
	record := c.juice
	record.Name = strings.TrimSpace(record.Name)
	record.Description = strings.TrimSpace(record.Description)
	c.mu.Unlock()

	saved, err := c.store.Persist(ctx, record)

	c.mu.Lock()
	c.saving = false
	if c.state.IsTerminal() {
		c.mu.Unlock()
		return ErrSessionClosed
	}
	if err != nil {
		c.mu.Unlock()
		c.logger.Error().Err(err).Int64("id", record.ID).Msg("failed to save juice")
		return fmt.Errorf("save juice: %w", err)
	}

	if c.loadCancel != nil {
		c.loadCancel()
		c.loadCancel = nil
	}
	c.loadGen++
	c.juice = saved
	c.state = StateSaved
	ch, fn := c.changeLocked(false)
	c.mu.Unlock()

	c.logger.Info().Int64("id", saved.ID).Bool("created", record.IsNew()).Msg("juice saved")
	emit(ch, fn)
	return nil
}

// Cancel ends the session without saving and discards all field changes.
// It is ignored while a save is in flight; that save decides the outcome.
func (c *Controller) Cancel() {
	c.mu.Lock()
	if c.state.IsTerminal() {
		c.mu.Unlock()
		return
	}
	if c.saving {
		c.mu.Unlock()
		c.logger.Debug().Msg("ignoring cancel while save is in flight")
		return
	}

	if c.loadCancel != nil {
		c.loadCancel()
		c.loadCancel = nil
	}
	c.loadGen++
	c.juice = model.NewJuice()
	c.edited = false
	c.state = StateCancelled
	ch, fn := c.changeLocked(false)
	c.mu.Unlock()

	c.logger.Debug().Msg("entry session cancelled")
	emit(ch, fn)
}
