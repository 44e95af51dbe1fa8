// Package app is the root Bubble Tea model of folio: a tab per portfolio
// collection, one infinite gallery for the active tab, and an optional
// detail pane for the focused entry.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/miosa/folio/client"
	"github.com/miosa/folio/config"
	"github.com/miosa/folio/msg"
	"github.com/miosa/folio/portfolio"
	"github.com/miosa/folio/style"
	"github.com/miosa/folio/ui/anim"
	"github.com/miosa/folio/ui/card"
	"github.com/miosa/folio/ui/clipboard"
	"github.com/miosa/folio/ui/common"
	"github.com/miosa/folio/ui/gallery"
	"github.com/miosa/folio/ui/header"
	"github.com/miosa/folio/ui/logo"
	"github.com/miosa/folio/ui/status"
	"github.com/miosa/folio/ui/toast"
)

// Options wires the model to its collaborators.
type Options struct {
	Config  *config.Config
	Client  *client.Client
	Log     *zap.Logger
	Version string
}

// copiedMsg reports the result of a clipboard copy.
type copiedMsg struct {
	text string
	err  error
}

// Model is the root Bubble Tea model.
type Model struct {
	cfg     *config.Config
	client  *client.Client
	log     *zap.Logger
	now     func() time.Time
	copy    func(string) error
	version string

	state State
	err   error

	tabs    []portfolio.Kind
	active  int
	entries map[portfolio.Kind][]portfolio.Entry
	shown   []portfolio.Entry
	query   string
	sortBy  portfolio.SortBy

	gallery    gallery.Model
	hasGallery bool

	header  header.Model
	status  status.Model
	toasts  toast.Model
	spinner anim.Model
	filter  textinput.Model
	help    help.Model
	keys    KeyMap

	showDetail bool
	layout     Layout
	width      int
	height     int
}

// New constructs the root Model and applies the configured theme.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.UI.Theme != "" && !style.SetTheme(cfg.UI.Theme) {
		log.Warn("unknown theme", zap.String("theme", cfg.UI.Theme))
	}

	tabs := portfolio.Kinds()
	hdr := header.New("folio", opts.Version)
	ht := make([]header.Tab, len(tabs))
	for i, k := range tabs {
		ht[i] = header.Tab{Label: k.Label()}
	}
	hdr.SetTabs(ht)

	ti := textinput.New()
	ti.Placeholder = "title, venue or tag"
	ti.Prompt = "/ "
	s := ti.Styles()
	s.Focused.Prompt = lipgloss.NewStyle().Foreground(style.Primary)
	ti.SetStyles(s)

	sp := anim.New(anim.Opts{Label: "Loading portfolio", Static: cfg.UI.ReduceMotion})
	sp.Start()

	m := Model{
		cfg:     cfg,
		client:  opts.Client,
		log:     log,
		now:     time.Now,
		copy:    clipboard.Copy,
		version: opts.Version,
		state:   StateLoading,
		tabs:    tabs,
		entries: map[portfolio.Kind][]portfolio.Entry{},
		sortBy:  portfolio.SortYear,
		header:  hdr,
		status:  status.New(),
		toasts:  toast.New(),
		spinner: sp,
		filter:  ti,
		help:    help.New(),
		keys:    DefaultKeyMap(),
		width:   80,
		height:  24,
	}
	m.relayout()
	return m
}

// -- Init ---------------------------------------------------------------------

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick(), m.fetch(), func() tea.Msg { return tea.RequestWindowSize() })
}

// fetch loads every collection in the background.
func (m Model) fetch() tea.Cmd {
	c := m.client
	if c == nil {
		return nil
	}
	timeout := m.cfg.Timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		cols, err := c.FetchAll(ctx)
		return msg.CollectionsLoaded{Cols: cols, Err: err}
	}
}

// -- Update -------------------------------------------------------------------

func (m Model) Update(rawMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := rawMsg.(type) {

	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		return m, m.resize()

	case msg.CollectionsLoaded:
		return m.handleLoaded(v)

	case msg.ConfigReloaded:
		return m.handleConfig(v)

	case anim.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(v)
		return m, cmd

	case copiedMsg:
		if v.err != nil {
			m.log.Warn("copy failed", zap.Error(v.err))
			return m, m.toasts.Add("copy failed", toast.Error, m.now())
		}
		return m, m.toasts.Add("copied "+common.Truncate(v.text, 40), toast.Info, m.now())

	case toast.TickMsg:
		m.toasts.Prune(v.At)
		return m, nil

	case gallery.FrameMsg, gallery.ScrollTickMsg, gallery.SettleMsg,
		tea.MouseWheelMsg, tea.MouseMotionMsg, tea.MouseClickMsg:
		if !m.hasGallery {
			return m, nil
		}
		var cmd tea.Cmd
		m.gallery, cmd = m.gallery.Update(v)
		return m, cmd

	case tea.KeyPressMsg:
		return m.handleKey(v)
	}
	return m, nil
}

func (m Model) handleLoaded(v msg.CollectionsLoaded) (tea.Model, tea.Cmd) {
	m.spinner.Stop()
	if v.Cols == nil || len(v.Cols.Errs) == len(m.tabs) {
		m.state = StateError
		m.err = v.Err
		if m.err == nil {
			m.err = errors.New("no collections loaded")
		}
		m.log.Error("load failed", zap.Error(m.err))
		return m, nil
	}

	m.state = StateBrowsing
	m.err = nil
	m.entries = portfolio.FromCollections(v.Cols)
	for i, k := range m.tabs {
		m.header.SetCount(i, len(m.entries[k]))
	}

	var cmds []tea.Cmd
	for _, k := range m.tabs {
		if err, ok := v.Cols.Errs[string(k)]; ok {
			m.log.Warn("collection failed", zap.String("collection", string(k)), zap.Error(err))
			cmds = append(cmds, m.toasts.Add(k.Label()+" unavailable", toast.Warning, m.now()))
		}
	}
	cmds = append(cmds, m.openGallery())
	return m, tea.Batch(cmds...)
}

func (m Model) handleConfig(v msg.ConfigReloaded) (tea.Model, tea.Cmd) {
	if v.Err != nil {
		m.log.Warn("config reload failed", zap.Error(v.Err))
		return m, m.toasts.Add("config: "+v.Err.Error(), toast.Error, m.now())
	}
	prevWidth := m.layout.CardWidth
	if v.Config.Logging.File == "" {
		v.Config.Logging.File = m.cfg.Logging.File
	}
	m.cfg = v.Config
	style.SetTheme(m.cfg.UI.Theme)
	m.relayout()

	cmds := []tea.Cmd{m.toasts.Add("config reloaded", toast.Info, m.now())}
	if m.hasGallery {
		gcfg := m.cfg.GalleryFor(m.kind().Label())
		switch {
		case m.layout.CardWidth != prevWidth:
			cmds = append(cmds, m.openGallery())
		case gcfg == m.gallery.Config():
			// Only the look changed: re-render cards in place.
			cmds = append(cmds, m.gallery.Refresh())
		default:
			cmds = append(cmds, m.gallery.Reconfigure(gcfg))
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(k tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateFiltering:
		return m.handleFilterKey(k)
	case StateLoading:
		if key.Matches(k, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	case StateError:
		switch {
		case key.Matches(k, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(k, m.keys.Reload):
			return m, m.reload()
		}
		return m, nil
	}

	switch {
	case key.Matches(k, m.keys.Quit):
		m.closeGallery()
		return m, tea.Quit

	case key.Matches(k, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		return m, nil

	case key.Matches(k, m.keys.NextTab):
		return m, m.selectTab(m.active + 1)

	case key.Matches(k, m.keys.PrevTab):
		return m, m.selectTab(m.active - 1)

	case key.Matches(k, m.keys.PagePrev):
		if !m.hasGallery {
			return m, nil
		}
		return m, m.gallery.PageScroll(-1)

	case key.Matches(k, m.keys.PageNext):
		if !m.hasGallery {
			return m, nil
		}
		return m, m.gallery.PageScroll(1)

	case key.Matches(k, m.keys.TogglePause):
		if m.hasGallery {
			m.gallery.TogglePause()
		}
		return m, nil

	case key.Matches(k, m.keys.Detail):
		m.showDetail = !m.showDetail
		m.relayout()
		return m, nil

	case key.Matches(k, m.keys.CopyLink):
		return m, m.copyLink()

	case key.Matches(k, m.keys.Filter):
		m.state = StateFiltering
		m.filter.SetValue(m.query)
		m.filter.SetWidth(max(m.width-4, 10))
		m.relayout()
		return m, m.filter.Focus()

	case key.Matches(k, m.keys.Sort):
		m.sortBy = m.sortBy.Next()
		return m, m.refreshItems()

	case key.Matches(k, m.keys.Escape):
		if m.query == "" {
			return m, nil
		}
		m.query = ""
		return m, m.refreshItems()

	case key.Matches(k, m.keys.Reload):
		return m, m.reload()
	}
	return m, nil
}

func (m Model) handleFilterKey(k tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case k.String() == "ctrl+c":
		m.closeGallery()
		return m, tea.Quit

	case key.Matches(k, m.keys.Submit):
		m.state = StateBrowsing
		m.filter.Blur()
		m.relayout()
		return m, nil

	case key.Matches(k, m.keys.Escape):
		m.state = StateBrowsing
		m.filter.Blur()
		m.filter.SetValue("")
		m.relayout()
		if m.query == "" {
			return m, nil
		}
		m.query = ""
		return m, m.refreshItems()
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(k)
	if q := m.filter.Value(); q != m.query {
		m.query = q
		return m, tea.Batch(cmd, m.refreshItems())
	}
	return m, cmd
}

// -- Gallery lifecycle ---------------------------------------------------------

func (m Model) kind() portfolio.Kind { return m.tabs[m.active] }

// visible applies the filter and sort to the active collection.
func (m Model) visible() []portfolio.Entry {
	return portfolio.Sort(portfolio.Filter(m.entries[m.kind()], m.query), m.sortBy)
}

func toItems(entries []portfolio.Entry) []gallery.Item {
	items := make([]gallery.Item, len(entries))
	for i, e := range entries {
		items[i] = e
	}
	return items
}

// openGallery replaces the gallery with a fresh one for the active tab. The
// old gallery is closed first so none of its timers land on the new one.
func (m *Model) openGallery() tea.Cmd {
	m.closeGallery()
	m.shown = m.visible()

	cw := m.layout.CardWidth
	render := func(it gallery.Item) string {
		return card.Render(it.(portfolio.Entry), cw)
	}
	m.gallery = gallery.New(toItems(m.shown), render,
		gallery.WithConfig(m.cfg.GalleryFor(m.kind().Label())),
		gallery.WithSize(m.width, m.layout.GalleryHeight),
		gallery.WithOrigin(0, m.layout.GalleryY),
		gallery.WithLogger(m.log.Named("gallery").With(zap.String("collection", string(m.kind())))),
	)
	m.hasGallery = true
	return m.gallery.Init()
}

func (m *Model) closeGallery() {
	if m.hasGallery {
		m.gallery.Close()
		m.hasGallery = false
	}
}

// refreshItems re-applies filter and sort to the open gallery.
func (m *Model) refreshItems() tea.Cmd {
	if !m.hasGallery {
		return nil
	}
	m.shown = m.visible()
	return m.gallery.SetItems(toItems(m.shown))
}

func (m *Model) selectTab(i int) tea.Cmd {
	n := len(m.tabs)
	m.active = ((i % n) + n) % n
	m.header.SetActive(m.active)
	return m.openGallery()
}

func (m *Model) reload() tea.Cmd {
	m.closeGallery()
	m.state = StateLoading
	m.err = nil
	return tea.Batch(m.spinner.Start(), m.fetch())
}

// resize recomputes the layout. A new card width needs a new render
// function, so the gallery is rebuilt; otherwise it is only resized.
func (m *Model) resize() tea.Cmd {
	prevWidth := m.layout.CardWidth
	m.relayout()
	if !m.hasGallery {
		return nil
	}
	if m.layout.CardWidth != prevWidth {
		return m.openGallery()
	}
	return m.gallery.SetSize(m.width, m.layout.GalleryHeight)
}

func (m *Model) relayout() {
	m.layout = ComputeLayout(m.width, m.height, m.cfg.Gallery.CardWidth, m.showDetail, m.state == StateFiltering)
	m.header.SetWidth(m.width)
}

// copyLink copies the focused entry's URL, or its title when it has none.
func (m Model) copyLink() tea.Cmd {
	if !m.hasGallery {
		return nil
	}
	it, ok := m.gallery.Focused()
	if !ok {
		return nil
	}
	e := it.(portfolio.Entry)
	text := e.URL
	if text == "" {
		text = e.Title
	}
	copyFn := m.copy
	return func() tea.Msg {
		return copiedMsg{text: text, err: copyFn(text)}
	}
}

// -- View ---------------------------------------------------------------------

// View renders the full frame. AltScreen and cell-motion mouse reporting are
// set on every frame; the gallery needs motion events for pause-on-hover.
func (m Model) View() tea.View {
	v := tea.NewView(m.renderView())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

func (m Model) renderView() string {
	sections := []string{m.header.HeaderView()}

	switch m.state {
	case StateLoading:
		sections = append(sections, "", logo.Banner(m.width, m.version), "", "  "+m.spinner.View())
		return strings.Join(sections, "\n")

	case StateError:
		sections = append(sections, "", logo.Banner(m.width, m.version), "",
			"  "+style.ErrorText.Render("Could not load the portfolio"),
			"  "+style.Faint.Render(common.Truncate(fmt.Sprint(m.err), max(m.width-4, 10))),
			"",
			"  "+style.Hint.Render("r retry · q quit"))
		return strings.Join(sections, "\n")
	}

	sections = append(sections, m.galleryView())
	if m.layout.DetailHeight > 0 {
		sections = append(sections, m.detailView())
	}
	if t := m.toasts.View(m.width); t != "" {
		sections = append(sections, t)
	}
	if m.state == StateFiltering {
		sections = append(sections, m.filter.View())
	}
	sections = append(sections, m.statusView(), clip(m.help.View(m.keys), m.width))
	return strings.Join(sections, "\n")
}

// clip truncates every line of s to width cells.
func clip(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "")
	}
	return strings.Join(lines, "\n")
}

// galleryView always fills GalleryHeight rows so the gallery origin used for
// mouse hit-testing stays put.
func (m Model) galleryView() string {
	var lines []string
	if m.hasGallery && len(m.shown) > 0 {
		lines = strings.Split(m.gallery.View(), "\n")
	} else {
		text := "No entries"
		if m.query != "" {
			text = fmt.Sprintf("No entries match %q", m.query)
		}
		lines = []string{"", "  " + style.Faint.Render(text)}
	}
	for len(lines) < m.layout.GalleryHeight {
		lines = append(lines, "")
	}
	return strings.Join(lines[:m.layout.GalleryHeight], "\n")
}

func (m Model) detailView() string {
	if !m.hasGallery {
		return ""
	}
	it, ok := m.gallery.Focused()
	if !ok {
		return ""
	}
	e := it.(portfolio.Entry)
	lines := strings.Split(card.Detail(e, max(m.width-2, 20)), "\n")
	// One row goes to the pane's top border.
	if rows := max(m.layout.DetailHeight-1, 0); len(lines) > rows {
		lines = lines[:rows]
	}
	return style.DetailPane.Width(m.width).Render(strings.Join(lines, "\n"))
}

func (m Model) statusView() string {
	st := m.status
	st.SetCounts(len(m.shown), len(m.entries[m.kind()]))
	st.SetSort(string(m.sortBy))
	st.SetFilter(m.query)
	if m.hasGallery {
		eng := m.gallery.Engine()
		if eng.EffectiveLoop() {
			st.SetLoop(eng.Mode().String())
		}
		switch {
		case !eng.AutoplayEnabled():
		case eng.Paused():
			st.SetAutoplay("paused")
		default:
			st.SetAutoplay("auto")
		}
	}
	return st.View(m.width)
}

// -- Accessors used by main and tests ----------------------------------------

// State returns the current application state.
func (m Model) State() State { return m.state }

// Gallery returns the active gallery and whether one is open.
func (m Model) Gallery() (gallery.Model, bool) { return m.gallery, m.hasGallery }

// Shown returns the entries in the active gallery, in input order.
func (m Model) Shown() []portfolio.Entry { return m.shown }
