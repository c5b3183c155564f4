package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/guiscale/pkg/metadata"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the browse command.
func (c *CLI) browseCommand() *cobra.Command {
	var opts analyzeOpts

	cmd := &cobra.Command{
		Use:   "browse [dir]",
		Short: "Pick a metadata file interactively and analyze it",
		Long: `Discover metadata files under a directory (default: current directory),
choose one from an interactive list and print its analysis.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()
			opts, err := c.resolveOpts(cmd, opts)
			if err != nil {
				return err
			}

			files, err := metadata.Discover(dir)
			if err != nil {
				return err
			}
			logger.Debug("discovered metadata files", "dir", dir, "count", len(files))
			if len(files) == 0 {
				printInfo(out, "No metadata files found in %s", dir)
				return nil
			}

			final, err := tea.NewProgram(NewFileListModel(dir, files)).Run()
			if err != nil {
				return fmt.Errorf("run file picker: %w", err)
			}
			m, ok := final.(FileListModel)
			if !ok || m.Selected == "" {
				printWarning(out, "No file selected")
				return nil
			}

			r := c.analyzeFile(cmd.Context(), m.Selected, opts)
			return writeReports(out, []report{r}, opts.json)
		},
	}

	cmd.Flags().StringVarP(&opts.section, "section", "s", "", "dotted path to the section containing scaling (env "+envPrefix+"_SECTION)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")

	return cmd
}

// =============================================================================
// FileListModel - Interactive metadata file selection
// =============================================================================

// FileListModel is the bubbletea model for interactive metadata file selection.
type FileListModel struct {
	Root     string
	Files    []string
	Cursor   int
	Offset   int
	Height   int
	Selected string
}

// NewFileListModel creates a new file list model over files found under root.
func NewFileListModel(root string, files []string) FileListModel {
	return FileListModel{
		Root:   root,
		Files:  files,
		Height: 15,
	}
}

func (m FileListModel) Init() tea.Cmd {
	return nil
}

func (m FileListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Files)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Files) == 0 {
				return m, nil
			}
			m.Selected = m.Files[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m FileListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Metadata File"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Files) {
		end = len(m.Files)
	}

	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		name := m.Files[i]
		if rel, err := filepath.Rel(m.Root, name); err == nil {
			name = rel
		}
		format := ""
		if d, err := metadata.DetectDecoder(name); err == nil {
			format = d.Type()
		}

		line := fmt.Sprintf("%s%-40s  %s", cursor, name, listDimStyle.Render(format))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Files))))

	return b.String()
}
