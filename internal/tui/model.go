// Package tui is the terminal reader: a word cursor over an analyzed text,
// with dictionary lookups and a vocabulary list behind single keys.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/clicktionary-backend/internal/domain"
	"github.com/heartmarshall/clicktionary-backend/internal/service/lookup"
	"github.com/heartmarshall/clicktionary-backend/internal/service/vocabulary"
)

type lookuper interface {
	Lookup(ctx context.Context, input lookup.LookupInput) (*lookup.LookupResult, error)
}

type vocabularyStore interface {
	Save(ctx context.Context, input vocabulary.SaveInput) (*domain.VocabularyEntry, error)
	List(ctx context.Context, input vocabulary.ListInput) (*vocabulary.ListResult, error)
}

// Options configures the reader screen.
type Options struct {
	Title  string
	Source string
	Target string
}

type mode int

const (
	modeRead mode = iota
	modeEntry
	modeVocabulary
)

const (
	headerHeight = 1
	footerHeight = 2
	vocabPage    = 100
)

type lookupMsg struct {
	key    string
	result *lookup.LookupResult
	err    error
	save   bool
}

type savedMsg struct {
	entry *domain.VocabularyEntry
	err   error
}

type vocabularyMsg struct {
	result *vocabulary.ListResult
	err    error
}

// Model is the bubbletea model of the reader.
type Model struct {
	ctx   context.Context
	words lookuper
	vocab vocabularyStore
	opts  Options

	segments []domain.Segment
	wordIdx  []int // segment indices of word segments
	cursor   int   // position in wordIdx
	lineOf   []int

	viewport viewport.Model
	help     help.Model
	keys     keyMap

	mode          mode
	width, height int
	ready         bool

	entry   *lookup.LookupResult
	loading bool
	status  string
	err     error

	saved []domain.VocabularyEntry
	total int
}

// New creates a reader over segments. ctx scopes every lookup and
// vocabulary call and carries the reader's user.
func New(ctx context.Context, segments []domain.Segment, words lookuper, vocab vocabularyStore, opts Options) Model {
	m := Model{
		ctx:      ctx,
		words:    words,
		vocab:    vocab,
		opts:     opts,
		segments: segments,
		help:     help.New(),
		keys:     defaultKeyMap(),
	}
	for i, seg := range segments {
		if seg.IsWord() {
			m.wordIdx = append(m.wordIdx, i)
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.viewport = viewport.New(msg.Width, 1)
			m.ready = true
		}
		m.resize()
		m.refresh()
		return m, nil

	case lookupMsg:
		return m.handleLookup(msg)

	case savedMsg:
		m.loading = false
		switch {
		case errors.Is(msg.err, domain.ErrAlreadyExists):
			m.status, m.err = "already in your vocabulary", nil
		case msg.err != nil:
			m.err = msg.err
		default:
			m.status, m.err = fmt.Sprintf("saved %q", msg.entry.Word), nil
		}
		return m, nil

	case vocabularyMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.saved, m.total = msg.result.Entries, msg.result.Total
		m.mode = modeVocabulary
		m.resize()
		m.viewport.SetContent(renderVocabulary(m.saved, m.total))
		m.viewport.GotoTop()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	case key.Matches(msg, m.keys.Back):
		if m.mode != modeRead {
			m.mode = modeRead
			m.resize()
			m.refresh()
		}
		return m, nil
	case key.Matches(msg, m.keys.Vocabulary):
		m.loading, m.err = true, nil
		return m, m.listCmd()
	}

	if m.mode == modeVocabulary {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	if len(m.wordIdx) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		m.move(m.cursor + 1)
	case key.Matches(msg, m.keys.Prev):
		m.move(m.cursor - 1)
	case key.Matches(msg, m.keys.LineDown):
		m.move(m.wordOnLine(+1))
	case key.Matches(msg, m.keys.LineUp):
		m.move(m.wordOnLine(-1))
	case key.Matches(msg, m.keys.Lookup):
		m.loading, m.err, m.status = true, nil, ""
		return m, m.lookupCmd(false)
	case key.Matches(msg, m.keys.Save):
		m.err, m.status = nil, ""
		if m.entry != nil && m.entry.Key == m.current().Key {
			m.loading = true
			return m, m.saveCmd(m.entry)
		}
		m.loading = true
		return m, m.lookupCmd(true)
	}
	return m, nil
}

func (m Model) handleLookup(msg lookupMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		var nf *domain.WordNotFoundError
		if errors.As(msg.err, &nf) {
			m.status, m.err = fmt.Sprintf("no dictionary entry for %q", nf.Word), nil
		} else {
			m.err = msg.err
		}
		return m, nil
	}
	// The cursor may have moved while the lookup was in flight.
	if len(m.wordIdx) == 0 || msg.key != m.current().Key {
		return m, nil
	}

	m.entry = msg.result
	m.mode = modeEntry
	m.resize()
	m.refresh()
	if msg.save {
		m.loading = true
		return m, m.saveCmd(msg.result)
	}
	return m, nil
}

func (m Model) lookupCmd(save bool) tea.Cmd {
	seg := m.current()
	ctx, words := m.ctx, m.words
	input := lookup.LookupInput{Word: seg.Text, Source: m.opts.Source, Target: m.opts.Target}
	return func() tea.Msg {
		res, err := words.Lookup(ctx, input)
		return lookupMsg{key: seg.Key, result: res, err: err, save: save}
	}
}

func (m Model) saveCmd(res *lookup.LookupResult) tea.Cmd {
	ctx, vocab := m.ctx, m.vocab
	entry := *res.Entry
	if res.Translation != nil && !res.Translation.Placeholder {
		entry.Translations = map[string]string{res.Translation.Language: res.Translation.Text}
	}
	return func() tea.Msg {
		saved, err := vocab.Save(ctx, vocabulary.SaveInput{Entry: entry})
		return savedMsg{entry: saved, err: err}
	}
}

func (m Model) listCmd() tea.Cmd {
	ctx, vocab := m.ctx, m.vocab
	return func() tea.Msg {
		res, err := vocab.List(ctx, vocabulary.ListInput{SortBy: domain.SortByWord, SortOrder: "ASC", Limit: vocabPage})
		return vocabularyMsg{result: res, err: err}
	}
}

func (m Model) current() domain.Segment {
	return m.segments[m.wordIdx[m.cursor]]
}

func (m *Model) move(to int) {
	to = max(0, min(to, len(m.wordIdx)-1))
	if to == m.cursor {
		return
	}
	m.cursor = to
	if m.mode == modeEntry {
		m.mode = modeRead
		m.resize()
	}
	m.refresh()
}

// wordOnLine returns the first word on the nearest line in direction dir
// that holds a word, or the cursor itself when there is none.
func (m Model) wordOnLine(dir int) int {
	if len(m.lineOf) == 0 {
		return m.cursor
	}
	current := m.lineOf[m.wordIdx[m.cursor]]

	if dir > 0 {
		for i := m.cursor + 1; i < len(m.wordIdx); i++ {
			if m.lineOf[m.wordIdx[i]] > current {
				return i
			}
		}
		return m.cursor
	}

	found, line := -1, -1
	for i := m.cursor - 1; i >= 0; i-- {
		l := m.lineOf[m.wordIdx[i]]
		switch {
		case l >= current:
			continue
		case found < 0:
			found, line = i, l
		case l == line:
			found = i
		default:
			return found
		}
	}
	if found < 0 {
		return m.cursor
	}
	return found
}

// resize fits the viewport between the header, the entry panel and the footer.
func (m *Model) resize() {
	if !m.ready {
		return
	}
	h := m.height - headerHeight - footerHeight
	if m.help.ShowAll {
		h -= len(m.keys.FullHelp()[0]) - 1
	}
	if m.mode == modeEntry && m.entry != nil {
		h -= lipgloss.Height(renderEntry(m.entry, m.width))
	}
	m.viewport.Width = m.width
	m.viewport.Height = max(h, 1)
}

// refresh re-renders the text and keeps the cursor line visible.
func (m *Model) refresh() {
	if !m.ready || m.mode == modeVocabulary {
		return
	}
	cursor := -1
	if len(m.wordIdx) > 0 {
		cursor = m.wordIdx[m.cursor]
	}
	l := renderText(m.segments, cursor, m.width)
	m.lineOf = l.lineOf
	m.viewport.SetContent(strings.Join(l.lines, "\n"))

	if cursor < 0 {
		return
	}
	line := l.lineOf[cursor]
	switch {
	case line < m.viewport.YOffset:
		m.viewport.SetYOffset(line)
	case line >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading…"
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.mode == modeEntry && m.entry != nil {
		b.WriteString(renderEntry(m.entry, m.width))
		b.WriteString("\n")
	}
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) header() string {
	title := m.opts.Title
	if title == "" {
		title = "clicktionary"
	}
	pos := "no words"
	if len(m.wordIdx) > 0 {
		pos = fmt.Sprintf("word %d/%d", m.cursor+1, len(m.wordIdx))
	}
	return titleStyle.Render(title) + statusStyle.Render(pos)
}

func (m Model) statusLine() string {
	switch {
	case m.err != nil:
		return errorStyle.Render(m.err.Error())
	case m.loading:
		return statusStyle.Render("…")
	default:
		return statusStyle.Render(m.status)
	}
}
