package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/forcegraph/forcegraph/pkg/graph"
	"github.com/forcegraph/forcegraph/pkg/pipeline"
	"github.com/forcegraph/forcegraph/pkg/sim"
)

// watchCommand creates the watch command for animating the simulation.
func (c *CLI) watchCommand() *cobra.Command {
	var opts pipeline.Options

	cmd := &cobra.Command{
		Use:   "watch [graph.json]",
		Short: "Animate the simulation tick by tick in the terminal",
		Long: `Animate the simulation tick by tick in the terminal.

Watch runs the same force simulation as 'layout', but renders every tick
as an ASCII projection so you can see the graph untangle itself. Useful
for picking iteration budgets and link lengths.

Press q to stop early.`,
		Args: cobra.ExactArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			bindLayoutDefaults(cmd, &opts, c)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graph.ReadGraphFile(args[0])
			if err != nil {
				return fmt.Errorf("load graph %s: %w", args[0], err)
			}

			s, err := sim.New(g, opts.SimOptions())
			if err != nil {
				return fmt.Errorf("initialize simulation: %w", err)
			}

			model := newWatchModel(s)
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().Float64Var(&opts.Width, "width", 0, "viewport width")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "viewport height")
	cmd.Flags().Float64VarP(&opts.LinkLength, "link-length", "l", 0, "target link length")
	cmd.Flags().IntVarP(&opts.Iterations, "iterations", "n", 0, "simulation iteration budget")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed for jiggle determinism")

	return cmd
}

// =============================================================================
// WatchModel - Tick-by-Tick Simulation Animation
// =============================================================================

// watchFrameInterval controls animation speed.
const watchFrameInterval = 50 * time.Millisecond

// tickMsg advances the simulation by one frame.
type tickMsg time.Time

var (
	watchNodeStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	watchGridStyle = lipgloss.NewStyle().Foreground(colorDim)
	watchDoneStyle = lipgloss.NewStyle().Foreground(colorGreen)
)

// WatchModel is the bubbletea model replaying the simulation.
type WatchModel struct {
	sim    *sim.Simulation
	width  int
	height int
	done   bool
}

// newWatchModel creates a watch model around a fresh simulation.
func newWatchModel(s *sim.Simulation) WatchModel {
	return WatchModel{
		sim:    s,
		width:  80,
		height: 24,
	}
}

func watchTick() tea.Cmd {
	return tea.Tick(watchFrameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m WatchModel) Init() tea.Cmd {
	return watchTick()
}

func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		if m.sim.Remaining() == 0 {
			m.done = true
			return m, nil
		}
		m.sim.Tick()
		return m, watchTick()
	}
	return m, nil
}

func (m WatchModel) View() string {
	gridW := m.width
	gridH := m.height - 3
	if gridW < 20 {
		gridW = 20
	}
	if gridH < 10 {
		gridH = 10
	}

	var b strings.Builder
	b.WriteString(m.renderGrid(gridW, gridH))
	b.WriteString("\n")

	status := fmt.Sprintf("tick %d/%d  alpha %.4f", m.sim.Ticks(), m.sim.Ticks()+m.sim.Remaining(), m.sim.Alpha())
	if m.done {
		b.WriteString(watchDoneStyle.Render("stable") + "  " + watchGridStyle.Render(status))
		b.WriteString("\n" + watchGridStyle.Render("q quit"))
	} else {
		b.WriteString(watchGridStyle.Render(status))
		b.WriteString("\n" + watchGridStyle.Render("q quit"))
	}
	return b.String()
}

// renderGrid projects particle positions onto a character grid.
func (m WatchModel) renderGrid(w, h int) string {
	particles := m.sim.Particles()

	opts := m.sim.Options()
	scaleX := float64(w-1) / opts.Width
	scaleY := float64(h-1) / opts.Height

	grid := make([][]rune, h)
	for y := range grid {
		grid[y] = make([]rune, w)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	for _, p := range particles {
		x := int(p.X * scaleX)
		y := int(p.Y * scaleY)
		if x < 0 || x >= w || y < 0 || y >= h {
			continue
		}
		grid[y][x] = '●'
	}

	var b strings.Builder
	for _, row := range grid {
		line := string(row)
		if strings.ContainsRune(line, '●') {
			line = strings.ReplaceAll(line, "●", watchNodeStyle.Render("●"))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
