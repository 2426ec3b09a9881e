package viz

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/dynarray/internal/dynarray"
	"github.com/san-kum/dynarray/internal/metrics"
	"github.com/san-kum/dynarray/internal/quicksort"
)

type model struct {
	arr         *dynarray.Array[int]
	cursor      int
	editing     bool
	editBuf     string
	status      string
	failed      bool
	rnd         *rand.Rand
	growth      *metrics.Growth
	comparisons *metrics.Comparisons[int]
	width       int
}

func newModel(capacity int, seed int64) (model, error) {
	a, err := dynarray.New[int](capacity)
	if err != nil {
		return model{}, err
	}
	m := model{
		arr:         a,
		rnd:         rand.New(rand.NewSource(seed)),
		growth:      metrics.NewGrowth(),
		comparisons: metrics.NewComparisons[int](),
		width:       80,
		status:      "ready",
	}
	m.growth.Observe(a.Len(), a.Cap())
	return m, nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.editKey(msg)
		}
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < m.arr.Len()-1 {
			m.cursor++
		}
	case "a":
		v := m.rnd.Intn(100)
		m.report(m.arr.Append(v), fmt.Sprintf("appended %d", v))
		m.cursor = m.arr.Len() - 1
	case "i":
		v := m.rnd.Intn(100)
		m.report(m.arr.Insert(m.cursor, v), fmt.Sprintf("inserted %d at %d", v, m.cursor))
	case "x":
		v, err := m.arr.Remove(m.cursor)
		m.report(err, fmt.Sprintf("removed %d from %d", v, m.cursor))
	case "e":
		if _, err := m.arr.Get(m.cursor); err != nil {
			m.report(err, "")
			break
		}
		m.editing, m.editBuf = true, ""
		m.status, m.failed = fmt.Sprintf("new value for [%d]", m.cursor), false
	case "s":
		m.sort(quicksort.Ascending[int], "ascending")
	case "S":
		m.sort(quicksort.Descending[int], "descending")
	case "g":
		m.report(m.arr.Grow(), "grew capacity")
	case "c":
		m.arr.Clear()
		m.report(nil, "cleared")
	}
	m.growth.Observe(m.arr.Len(), m.arr.Cap())
	m.clampCursor()
	return m, nil
}

func (m model) editKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.editing = false
		v, err := strconv.Atoi(m.editBuf)
		if err != nil {
			m.report(fmt.Errorf("not a number: %q", m.editBuf), "")
			break
		}
		m.report(m.arr.Set(m.cursor, v), fmt.Sprintf("set [%d] = %d", m.cursor, v))
	case tea.KeyEsc:
		m.editing = false
		m.status, m.failed = "edit canceled", false
	case tea.KeyBackspace:
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if (r >= '0' && r <= '9') || (r == '-' && m.editBuf == "") {
				m.editBuf += string(r)
			}
		}
	}
	return m, nil
}

func (m *model) sort(compare func(a, b int) int, name string) {
	m.comparisons.Reset()
	quicksort.Sort[int](m.arr, m.comparisons.Wrap(compare))
	m.report(nil, fmt.Sprintf("sorted %s in %d comparisons", name, m.comparisons.Count()))
}

func (m *model) report(err error, ok string) {
	if err != nil {
		m.status, m.failed = err.Error(), true
		return
	}
	m.status, m.failed = ok, false
}

func (m *model) clampCursor() {
	if m.cursor >= m.arr.Len() {
		m.cursor = m.arr.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString("\n  " + Title.Render("DYNARRAY") + "  " + Subtle.Render(m.arr.String()) + "\n")
	b.WriteString("  " + Separator(min(m.width-4, 60)) + "\n\n")

	for _, line := range strings.Split(RenderArray(m.arr, m.cursor), "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString(fmt.Sprintf("\n  %s %s\n", MetricLabel.Render("regrowths"), MetricValue.Render(fmt.Sprint(m.growth.Value()))))

	status := StatusOK.Render(m.status)
	if m.failed {
		status = StatusError.Render(m.status)
	}
	if m.editing {
		status += " " + MetricValue.Render(m.editBuf+"_")
	}
	b.WriteString("\n  " + status + "\n\n")
	b.WriteString("  " + KeyHint.Render("a append  i insert  x remove  e edit  s/S sort  g grow  c clear  h/l move  q quit") + "\n")
	return b.String()
}

// RunInteractive opens the playground on an empty array.
func RunInteractive(capacity int, seed int64) error {
	m, err := newModel(capacity, seed)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
