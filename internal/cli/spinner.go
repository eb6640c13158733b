package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/matzehuels/tsets/pkg/observability"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// stageLabels name the pipeline stages in spinner messages.
var stageLabels = map[string]string{
	observability.StageIndependentSets: "enumerating independent sets",
	observability.StageMatchings:       "enumerating matchings",
	observability.StageCompose:         "composing T-sets",
	observability.StageFilter:          "filtering T-sets",
}

// stageSpinner animates a status line while the pipeline runs. It is
// registered as the pipeline hooks for the duration of a run, so its message
// follows the stage being computed. Events are forwarded to next.
type stageSpinner struct {
	w       io.Writer
	subject string
	next    observability.PipelineHooks

	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}

	mu      sync.Mutex
	message string
	frame   int
	width   int // widest line drawn, for clearing
	started bool
	done    bool
}

// newStageSpinner creates a spinner for a run over subject (usually the
// graph). It stops on its own when ctx is cancelled.
func newStageSpinner(ctx context.Context, w io.Writer, subject string, next observability.PipelineHooks) *stageSpinner {
	if next == nil {
		next = observability.NoopPipelineHooks{}
	}
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &stageSpinner{
		w:       w,
		subject: subject,
		next:    next,
		ctx:     spinnerCtx,
		cancel:  cancel,
		stopped: make(chan struct{}),
		message: fmt.Sprintf("Enumerating %s...", subject),
	}
}

// Start draws the first frame and begins the animation.
func (s *stageSpinner) Start() {
	s.mu.Lock()
	s.started = true
	s.drawLocked()
	s.mu.Unlock()

	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.mu.Lock()
				s.frame++
				s.drawLocked()
				s.mu.Unlock()
			}
		}
	}()
}

// Stop ends the animation and clears the line. It may be called more than once.
func (s *stageSpinner) Stop() {
	s.cancel()
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if started {
		<-s.stopped
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return
	}
	s.done = true
	if started {
		fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width))
	}
}

// Message returns the current status text.
func (s *stageSpinner) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// SetMessage replaces the status text and redraws immediately.
func (s *stageSpinner) SetMessage(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = msg
	s.drawLocked()
}

func (s *stageSpinner) drawLocked() {
	if !s.started || s.done {
		return
	}
	frame := spinnerFrames[s.frame%len(spinnerFrames)]
	line := frame + " " + s.message
	if n := len([]rune(line)); n > s.width {
		s.width = n
	}
	fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
}

func (s *stageSpinner) OnStageStart(ctx context.Context, stage string, inputSize int) {
	label, ok := stageLabels[stage]
	if !ok {
		label = stage
	}
	s.SetMessage(fmt.Sprintf("%s: %s (%d in)...", s.subject, label, inputSize))
	s.next.OnStageStart(ctx, stage, inputSize)
}

func (s *stageSpinner) OnStageComplete(ctx context.Context, stage string, count int, d time.Duration, err error) {
	s.next.OnStageComplete(ctx, stage, count, d, err)
}

// withStageSpinner runs fn with a stage spinner drawn on w, then restores the
// previously registered pipeline hooks.
func withStageSpinner(ctx context.Context, w io.Writer, subject string, fn func() error) error {
	prev := observability.Pipeline()
	s := newStageSpinner(ctx, w, subject, prev)
	observability.SetPipelineHooks(s)
	s.Start()
	defer func() {
		s.Stop()
		observability.SetPipelineHooks(prev)
	}()
	return fn()
}
