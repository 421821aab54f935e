package plan

import (
	"context"
	"strings"
	"sync"
	"time"

	"mom-planner/internal/intake"
	"mom-planner/internal/model"
	"mom-planner/internal/reminder"
)

// Generation identifies one plan request of a session. Only the most recent
// generation may write its result.
type Generation uint64

// Session is the per-client state: input form, current plan and reminder watch.
// All methods are safe for concurrent use.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	form       intake.Form
	board      *Board
	errMsg     string
	generation Generation
	cancel     context.CancelFunc
	watch      bool
	schedule   *reminder.Schedule
}

// NewSession creates an empty session.
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		board:     NewBoard(nil),
		schedule:  reminder.NewSchedule(),
	}
}

// SessionView is a consistent snapshot of a session.
type SessionView struct {
	ID         string
	CreatedAt  time.Time
	Form       intake.Form
	Items      []model.PlanItem
	Error      string
	Generation Generation
	Watch      bool
}

// View returns a snapshot.
func (s *Session) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() SessionView {
	return SessionView{
		ID:         s.ID,
		CreatedAt:  s.CreatedAt,
		Form:       s.form,
		Items:      s.board.Items(),
		Error:      s.errMsg,
		Generation: s.generation,
		Watch:      s.watch,
	}
}

// SetText replaces the input text.
func (s *Session) SetText(text string) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.form.SetText(text); err != nil {
		return s.viewLocked(), err
	}
	return s.viewLocked(), nil
}

// BeginParse locks the form while filename is being read.
func (s *Session) BeginParse(filename string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.BeginParse(filename)
}

// FinishParse stores the extraction result, or the fallback text on error.
func (s *Session) FinishParse(text string, err error) SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.FinishParse(text, err)
	return s.viewLocked()
}

// Begin starts a generation. It clears the previous plan and error, locks the
// form and returns the input text together with a context that Cancel aborts.
func (s *Session) Begin(parent context.Context) (Generation, context.Context, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.form.Busy() {
		return 0, nil, "", intake.ErrFormBusy
	}
	if strings.TrimSpace(s.form.Text) == "" {
		s.errMsg = EmptyInputMessage
		return 0, nil, "", ErrEmptyInput
	}

	s.generation++
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	s.form.Loading = true
	s.errMsg = ""
	s.board.Clear()
	s.schedule.Reset()

	return s.generation, ctx, s.form.Text, nil
}

// Complete installs items if g is still the current generation.
func (s *Session) Complete(g Generation, items []model.PlanItem) (SessionView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g != s.generation || !s.form.Loading {
		return s.viewLocked(), false
	}
	s.board.Replace(items)
	s.finishLocked()
	return s.viewLocked(), true
}

// Fail records msg if g is still the current generation.
func (s *Session) Fail(g Generation, msg string) (SessionView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g != s.generation || !s.form.Loading {
		return s.viewLocked(), false
	}
	s.errMsg = msg
	s.finishLocked()
	return s.viewLocked(), true
}

// Cancel aborts the running generation, if any. A late result is dropped.
func (s *Session) Cancel() (SessionView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.form.Loading {
		return s.viewLocked(), false
	}
	s.generation++
	s.finishLocked()
	return s.viewLocked(), true
}

func (s *Session) finishLocked() {
	s.form.Loading = false
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// SetDueDate edits the due date at index.
func (s *Session) SetDueDate(index int, dueDate string) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.board.SetDueDate(index, dueDate); err != nil {
		return s.viewLocked(), err
	}
	return s.viewLocked(), nil
}

// SetStatus edits the status at index.
func (s *Session) SetStatus(index int, status model.Status) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.board.SetStatus(index, status); err != nil {
		return s.viewLocked(), err
	}
	return s.viewLocked(), nil
}

// Item returns the item at index.
func (s *Session) Item(index int) (model.PlanItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Item(index)
}

// SetWatch turns the reminder watch on or off.
func (s *Session) SetWatch(on bool) SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watch = on
	if !on {
		s.schedule.Reset()
	}
	return s.viewLocked()
}

// Watching reports whether reminders are enabled.
func (s *Session) Watching() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.watch
}

// DueReminders syncs the schedule with the current plan and returns the items
// that should fire at now.
func (s *Session) DueReminders(now time.Time, tolerance time.Duration) []reminder.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.watch || s.board.Len() == 0 {
		return nil
	}
	s.schedule.Sync(s.board.Items(), now)
	return s.schedule.Due(now, tolerance)
}
