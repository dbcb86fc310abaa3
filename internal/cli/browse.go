package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/tmaxen/fpgrow/pkg/fptree"
	"github.com/tmaxen/fpgrow/pkg/pipeline"
	"github.com/tmaxen/fpgrow/pkg/report"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseOpts holds the command-line flags for the browse command.
type browseOpts struct {
	minSupport int
	minRatio   float64
	noCache    bool
	refresh    bool
}

// browseCommand creates the browse command for interactive pattern exploration.
func (c *CLI) browseCommand() *cobra.Command {
	opts := browseOpts{minSupport: pipeline.DefaultMinSupport}

	cmd := &cobra.Command{
		Use:   "browse [dataset]",
		Short: "Explore mined patterns in an interactive terminal UI",
		Long: `Explore mined patterns in an interactive terminal UI.

The browse command mines the dataset and opens a scrollable pattern table.
Patterns can be reordered by support or by itemset size to spot the
strongest associations quickly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBrowse(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.minSupport, "min-support", "s", opts.minSupport, "minimum support as an absolute transaction count")
	cmd.Flags().Float64VarP(&opts.minRatio, "min-ratio", "r", 0, "minimum support as a fraction of transactions")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cache")

	return cmd
}

// runBrowse mines the dataset and starts the interactive browser.
func (c *CLI) runBrowse(ctx context.Context, input string, opts *browseOpts) error {
	runner, err := c.newRunner(ctx, opts.noCache, "")
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	pipeOpts := pipeline.Options{
		Input:      input,
		MinSupport: opts.minSupport,
		MinRatio:   opts.minRatio,
		Refresh:    opts.refresh,
		Logger:     c.Logger,
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Mining %s...", input))
	spinner.Start()

	ds, err := runner.Load(ctx, pipeOpts)
	if err != nil {
		spinner.StopWithError("Load failed")
		return err
	}
	patterns, err := runner.Mine(ctx, ds, pipeOpts)
	if err != nil {
		spinner.StopWithError("Mining failed")
		return err
	}
	spinner.Stop()

	if len(patterns) == 0 {
		printWarning("No patterns at this support threshold")
		printNextStep("Try a lower threshold", fmt.Sprintf("fpgrow browse %s --min-support %d", input, pipeOpts.EffectiveMinSupport(len(ds.Transactions))-1))
		return nil
	}

	minSupport := pipeOpts.EffectiveMinSupport(len(ds.Transactions))
	summary := report.Build(ds.Name, ds.Transactions, minSupport, patterns)

	model := NewPatternListModel(patterns, summary)
	_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
	return err
}

// =============================================================================
// PatternListModel - Interactive pattern browsing
// =============================================================================

// Sort orders for the pattern list.
const (
	sortBySupport = iota
	sortBySize
)

// PatternListModel is the bubbletea model for pattern browsing.
type PatternListModel struct {
	Patterns fptree.Patterns
	Summary  report.Summary
	Cursor   int
	Height   int
	Offset   int
	SortMode int
}

// NewPatternListModel creates a pattern list sorted by support.
func NewPatternListModel(patterns fptree.Patterns, summary report.Summary) PatternListModel {
	m := PatternListModel{
		Patterns: make(fptree.Patterns, len(patterns)),
		Summary:  summary,
		Height:   15,
	}
	copy(m.Patterns, patterns)
	m.sortPatterns()
	return m
}

func (m *PatternListModel) sortPatterns() {
	switch m.SortMode {
	case sortBySize:
		sort.SliceStable(m.Patterns, func(i, j int) bool {
			if len(m.Patterns[i].Items) != len(m.Patterns[j].Items) {
				return len(m.Patterns[i].Items) > len(m.Patterns[j].Items)
			}
			return m.Patterns[i].Support > m.Patterns[j].Support
		})
	default:
		sort.SliceStable(m.Patterns, func(i, j int) bool {
			if m.Patterns[i].Support != m.Patterns[j].Support {
				return m.Patterns[i].Support > m.Patterns[j].Support
			}
			return len(m.Patterns[i].Items) < len(m.Patterns[j].Items)
		})
	}
}

func (m PatternListModel) Init() tea.Cmd {
	return nil
}

func (m PatternListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Patterns)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "g":
			m.Cursor = 0
			m.Offset = 0
		case "G":
			m.Cursor = len(m.Patterns) - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		case "o":
			m.SortMode = (m.SortMode + 1) % 2
			m.sortPatterns()
			m.Cursor = 0
			m.Offset = 0
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m PatternListModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("%s — %d patterns (min support %d)",
		m.Summary.Dataset, m.Summary.PatternCount, m.Summary.MinSupport)
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  o reorder  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Patterns) {
		end = len(m.Patterns)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		p := m.Patterns[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		items := make([]string, len(p.Items))
		copy(items, p.Items)
		sort.Strings(items)

		rows = append(rows, []string{
			cursor,
			strings.Join(items, " + "),
			fmt.Sprintf("%d", len(p.Items)),
			fmt.Sprintf("%d", p.Support),
			fmt.Sprintf("%.1f%%", m.Summary.SupportPercent(p)),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Itemset", "Size", "Support", "Share").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Patterns))))

	return b.String()
}
