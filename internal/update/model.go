package update

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/google/uuid"

	"github.com/sandeepkv93/clockd/internal/clock"
	"github.com/sandeepkv93/clockd/internal/config"
	"github.com/sandeepkv93/clockd/internal/dispatch"
	"github.com/sandeepkv93/clockd/internal/fullscreen"
	"github.com/sandeepkv93/clockd/internal/model"
	"github.com/sandeepkv93/clockd/internal/mqtt"
	"github.com/sandeepkv93/clockd/internal/storage"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Clock      string
	Stopwatch  string
	Countdown  string
	CycleMode  string
	Start      string
	Stop       string
	Fullscreen string
	Format     string
	History    string
	Help       string
	Quit       string
}

type StopwatchState struct {
	ElapsedSec int
	Running    bool
	// segment bookkeeping for the stop event
	SegmentStart    time.Time
	SegmentStartSec int
}

type CountdownState struct {
	Config    model.CountdownConfig
	Focus     model.Field
	Remaining int
	Total     int
	Running   bool
	StartedAt time.Time
	Finished  int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type HistoryState struct {
	Runs    []storage.RunRecord
	Summary storage.RunSummary
	Loaded  bool
	Err     string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

// Deps are the collaborators wired in by the entrypoint. Every field is
// optional; a zero Deps gives a self-contained model.
type Deps struct {
	Clock      clock.Clock
	Fullscreen *fullscreen.Capability
	Dispatch   *dispatch.Engine
	History    storage.Repository
	Broker     mqtt.ConnectionStatus
	NewID      func() string
}

type Model struct {
	Mode        model.Mode
	Mounted     bool
	Width       int
	Height      int
	Now         time.Time
	ClockFormat model.ClockFormat
	ClampFields bool

	Stopwatch  StopwatchState
	Countdown  CountdownState
	Fullscreen bool

	Palette        CommandPaletteState
	HelpVisible    bool
	HistoryVisible bool
	History        HistoryState

	Notifications    []Notification
	DeliveryFailures int
	Status           StatusBar
	Keys             GlobalKeyMap
	Quitting         bool
	LastError        error

	tickGen   int
	tickGuard tickGuard

	clock           clock.Clock
	capability      *fullscreen.Capability
	fsSub           *fullscreen.Subscription
	dispatcher      *dispatch.Engine
	history         storage.Repository
	broker          mqtt.ConnectionStatus
	newID           func() string
	startFullscreen bool

	// Bubble components used for rich TUI controls
	fieldInputs       [3]textinput.Model
	commandInput      textinput.Model
	countdownProgress progress.Model
	loadingSpinner    spinner.Model
	helpModel         help.Model
	guideViewport     viewport.Model
	historyTable      table.Model
}

type SetModeMsg struct {
	Name string
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// TickMsg is one periodic tick. Ticks from an older generation are stale.
type TickMsg struct {
	Gen int
	At  time.Time
}

type FullscreenChangedMsg struct {
	Notification fullscreen.Notification
}

type DeliveryResultMsg struct {
	Result dispatch.Result
}

type HistoryLoadedMsg struct {
	Runs    []storage.RunRecord
	Summary storage.RunSummary
	Err     error
}

func NewModel() Model {
	return NewModelWithConfig(config.Default(), Deps{})
}

func NewModelWithConfig(cfg config.Config, deps Deps) Model {
	cfg = config.Normalize(cfg)
	m := Model{
		Mode:        cfg.Mode(),
		ClockFormat: cfg.ClockFormat(),
		ClampFields: cfg.Countdown.ClampFields,
		Countdown: CountdownState{
			Config: cfg.InitialCountdown(),
			Focus:  model.FieldHours,
		},
		Keys: GlobalKeyMap{
			Clock:      "c",
			Stopwatch:  "w",
			Countdown:  "d",
			CycleMode:  "m",
			Start:      "s",
			Stop:       "x",
			Fullscreen: "f",
			Format:     "t",
			History:    "h",
			Help:       "?",
			Quit:       "q",
		},
		clock:           deps.Clock,
		capability:      deps.Fullscreen,
		dispatcher:      deps.Dispatch,
		history:         deps.History,
		broker:          deps.Broker,
		newID:           deps.NewID,
		startFullscreen: cfg.UI.StartFullscreen,
	}
	if m.clock == nil {
		m.clock = clock.Real{}
	}
	if m.newID == nil {
		m.newID = uuid.NewString
	}
	if m.capability != nil && m.capability.Hub() != nil {
		m.fsSub = m.capability.Hub().Subscribe(4)
	}
	m.initBubbleComponents()
	for _, f := range model.Fields {
		if v := m.Countdown.Config.Get(f); v > 0 {
			m.fieldInputs[f].SetValue(strconv.Itoa(v))
		}
	}
	m.syncBubbleData()
	return m
}
