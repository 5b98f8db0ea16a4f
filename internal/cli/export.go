package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/runoshun/duke/internal/app"
	"github.com/runoshun/duke/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Export formats.
const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// exportedTask is the serialized form of a task in export output.
// Dates use the same layout as command input.
type exportedTask struct {
	Type        string `yaml:"type" json:"type"`
	Description string `yaml:"description" json:"description"`
	Due         string `yaml:"due,omitempty" json:"due,omitempty"`
	Start       string `yaml:"start,omitempty" json:"start,omitempty"`
	End         string `yaml:"end,omitempty" json:"end,omitempty"`
	Index       int    `yaml:"index" json:"index"`
	Done        bool   `yaml:"done" json:"done"`
}

// newExportCommand creates the export command.
func newExportCommand(s *rootState) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print all tasks as YAML or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != formatYAML && format != formatJSON {
				return fmt.Errorf("unsupported format %q (use %s or %s)", format, formatYAML, formatJSON)
			}
			return s.withContainer(cmd, func(c *app.Container) error {
				return writeExport(cmd.OutOrStdout(), c.Tasks.All(), format)
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatYAML, "Output format: yaml or json")
	return cmd
}

func toExported(tasks []domain.Task) []exportedTask {
	out := make([]exportedTask, 0, len(tasks))
	for i, task := range tasks {
		e := exportedTask{
			Index:       i + 1,
			Description: task.Description(),
			Done:        task.IsDone(),
		}
		switch t := task.(type) {
		case *domain.ToDo:
			e.Type = string(domain.KindToDo)
		case *domain.Deadline:
			e.Type = string(domain.KindDeadline)
			e.Due = domain.FormatDateTime(t.Due)
		case *domain.Event:
			e.Type = string(domain.KindEvent)
			e.Start = domain.FormatDateTime(t.Start)
			e.End = domain.FormatDateTime(t.End)
		}
		out = append(out, e)
	}
	return out
}

func writeExport(w io.Writer, tasks []domain.Task, format string) error {
	records := toExported(tasks)

	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
