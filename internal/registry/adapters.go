package registry

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/harborwind/clientstate/internal/logger"
)

// defaultRefreshDebounce is the quiet window for coalescing refresh triggers.
const defaultRefreshDebounce = 500 * time.Millisecond

// autopilotStatusAdapter supplies the verbosity argument the trigger never
// carries: terse by default, overridable by an explicit boolean argument.
func autopilotStatusAdapter(ap Autopilot) Handler {
	return func(ctx context.Context, args ...string) (string, error) {
		verbose := false
		if len(args) > 0 {
			v, err := strconv.ParseBool(args[0])
			if err != nil {
				return "", err
			}
			verbose = v
		}
		return ap.Status(ctx, verbose)
	}
}

// debounceAdapter coalesces rapid triggers into a single deferred version
// check. Each trigger restarts the quiet window; only the last one fires.
func debounceAdapter(check VersionCheck, window time.Duration, log *logger.Logger) Handler {
	if window <= 0 {
		window = defaultRefreshDebounce
	}

	var mu sync.Mutex
	var timer *time.Timer

	return func(ctx context.Context, args ...string) (string, error) {
		mu.Lock()
		defer mu.Unlock()

		if timer != nil {
			timer.Stop()
		}
		// The check outlives the triggering call, so detach it from the
		// caller's cancellation.
		callCtx := context.WithoutCancel(ctx)
		timer = time.AfterFunc(window, func() {
			if _, err := check.Check(callCtx); err != nil {
				log.Error("deferred version check failed", "error", err)
			}
		})
		return "", nil
	}
}

// logbookAdapter forwards an entry only when the messaging module actually
// keeps a logbook; other modules ignore the trigger silently.
func logbookAdapter(msg Messaging) Handler {
	return func(ctx context.Context, args ...string) (string, error) {
		lp, ok := msg.(LogbookPrepender)
		if !ok {
			return "", nil
		}
		return "", lp.PrependLogbook(ctx, strings.Join(args, " "))
	}
}
