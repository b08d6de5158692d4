package registry

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// Dialogs renders modal dialogs in the client UI.
type Dialogs interface {
	Open(ctx context.Context, name string) error
	CloseAll(ctx context.Context) error
}

// Messaging handles chat channels.
type Messaging interface {
	Send(ctx context.Context, channel string, text string) error
}

// LogbookPrepender is optionally implemented by Messaging modules that also
// maintain a logbook pane.
type LogbookPrepender interface {
	PrependLogbook(ctx context.Context, entry string) error
}

// Fleet manages the player's vessels.
type Fleet interface {
	SelectVessel(ctx context.Context, id string) error
	RenameVessel(ctx context.Context, id string, name string) error
}

// Settings persists player preferences.
type Settings interface {
	Save(ctx context.Context) error
	Toggle(ctx context.Context, option string) error
}

// Autopilot controls course holding.
type Autopilot interface {
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
	Status(ctx context.Context, verbose bool) (string, error)
}

// VersionCheck compares the running client against the published release.
type VersionCheck interface {
	Check(ctx context.Context) (string, error)
}

// StateAccess is the slice of the storage gateway exposed to bound commands.
type StateAccess interface {
	SetActiveUser(id string)
	ActiveUser() (string, bool)
	DeriveKey(logicalKey string) string
	Get(ctx context.Context, logicalKey string) (string, error)
	Set(ctx context.Context, logicalKey string, value string) error
	Remove(ctx context.Context, logicalKey string) error
	ClearForActiveUser(ctx context.Context) (int, error)
}

// Modules enumerates the collaborators whose functions get bound. Fields may
// be nil; Bind does not check them, and a command backed by a nil module
// fails when first invoked.
type Modules struct {
	Dialogs   Dialogs
	Messaging Messaging
	Fleet     Fleet
	Settings  Settings
	Autopilot Autopilot
	Version   VersionCheck
	State     StateAccess

	// RefreshDebounce overrides the scheduleRefresh coalescing window.
	RefreshDebounce time.Duration
}

// Bind installs the fixed command set onto r. It may be re-run with a
// different Modules value; later bindings replace earlier ones.
func Bind(r *Registry, m Modules) {
	r.Register("openDialog", func(ctx context.Context, args ...string) (string, error) {
		return "", m.Dialogs.Open(ctx, arg(args, 0))
	})
	r.Register("closeDialogs", func(ctx context.Context, args ...string) (string, error) {
		return "", m.Dialogs.CloseAll(ctx)
	})

	r.Register("sendMessage", func(ctx context.Context, args ...string) (string, error) {
		return "", m.Messaging.Send(ctx, arg(args, 0), strings.Join(rest(args, 1), " "))
	})
	r.Register("logbookPrepend", logbookAdapter(m.Messaging))

	r.Register("selectVessel", func(ctx context.Context, args ...string) (string, error) {
		return "", m.Fleet.SelectVessel(ctx, arg(args, 0))
	})
	r.Register("renameVessel", func(ctx context.Context, args ...string) (string, error) {
		return "", m.Fleet.RenameVessel(ctx, arg(args, 0), strings.Join(rest(args, 1), " "))
	})

	r.Register("saveSettings", func(ctx context.Context, args ...string) (string, error) {
		return "", m.Settings.Save(ctx)
	})
	r.Register("toggleSetting", func(ctx context.Context, args ...string) (string, error) {
		return "", m.Settings.Toggle(ctx, arg(args, 0))
	})

	r.Register("pauseAutopilot", func(ctx context.Context, args ...string) (string, error) {
		return "", m.Autopilot.Pause(ctx)
	})
	r.Register("resumeAutopilot", func(ctx context.Context, args ...string) (string, error) {
		return "", m.Autopilot.Resume(ctx)
	})
	r.Register("autopilotStatus", autopilotStatusAdapter(m.Autopilot))

	r.Register("checkVersion", func(ctx context.Context, args ...string) (string, error) {
		return m.Version.Check(ctx)
	})
	r.Register("scheduleRefresh", debounceAdapter(m.Version, m.RefreshDebounce, r.logger))

	r.Register("login", func(ctx context.Context, args ...string) (string, error) {
		m.State.SetActiveUser(arg(args, 0))
		return "", nil
	})
	r.Register("whoami", func(ctx context.Context, args ...string) (string, error) {
		id, ok := m.State.ActiveUser()
		if !ok {
			return "", nil
		}
		return id, nil
	})
	r.Register("deriveKey", func(ctx context.Context, args ...string) (string, error) {
		return m.State.DeriveKey(arg(args, 0)), nil
	})
	r.Register("storageGet", func(ctx context.Context, args ...string) (string, error) {
		return m.State.Get(ctx, arg(args, 0))
	})
	r.Register("storageSet", func(ctx context.Context, args ...string) (string, error) {
		return "", m.State.Set(ctx, arg(args, 0), arg(args, 1))
	})
	r.Register("storageRemove", func(ctx context.Context, args ...string) (string, error) {
		return "", m.State.Remove(ctx, arg(args, 0))
	})
	r.Register("clearUserStorage", func(ctx context.Context, args ...string) (string, error) {
		deleted, err := m.State.ClearForActiveUser(ctx)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(deleted), nil
	})

	r.Register("debugMode", func(ctx context.Context, args ...string) (string, error) {
		if len(args) > 0 {
			v, err := strconv.ParseBool(args[0])
			if err != nil {
				return "", err
			}
			r.SetDebug(v)
		}
		return strconv.FormatBool(r.Debug()), nil
	})
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func rest(args []string, i int) []string {
	if i < len(args) {
		return args[i:]
	}
	return nil
}
