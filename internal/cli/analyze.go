package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/guiscale/pkg/errors"
	"github.com/matzehuels/guiscale/pkg/metadata"
	"github.com/matzehuels/guiscale/pkg/observability"
	"github.com/matzehuels/guiscale/pkg/scaling"
)

// analyzeOpts holds the command-line flags for the analyze command.
type analyzeOpts struct {
	section     string // dotted path to the plugin's section ("" = root)
	imageWidth  int    // passed through to the analyzer
	imageHeight int    // passed through to the analyzer
	json        bool   // emit JSON instead of styled text
}

// report is the outcome of analyzing one metadata file.
type report struct {
	Path   string
	Result scaling.Analyzed
	Err    error
}

type jsonReport struct {
	Path   string            `json:"path"`
	Result *scaling.Analyzed `json:"result,omitempty"`
	Error  *jsonError        `json:"error,omitempty"`
}

type jsonError struct {
	Code    errors.Code `json:"code,omitempty"`
	Message string      `json:"message"`
}

// analyzeCommand creates the analyze command.
func (c *CLI) analyzeCommand() *cobra.Command {
	var opts analyzeOpts

	cmd := &cobra.Command{
		Use:   "analyze <file>...",
		Short: "Validate scaling metadata and print the result",
		Long: `Validate the scaling section of one or more metadata files.

Files are decoded by extension (.json, .mcmeta, .moremcmeta, .yaml, .yml, .toml).
Use --section to point at the section holding "scaling" when it is nested,
e.g. --section gui for {"gui": {"scaling": {...}}}. Defaults for --section,
--image-width and --image-height come from the config file or GUISCALE_*
environment variables.

Examples:
  guiscale analyze textures/gui/button.png.moremcmeta
  guiscale analyze --section gui --json widgets/*.mcmeta`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.resolveOpts(cmd, opts)
			if err != nil {
				return err
			}
			reports := c.analyzeFiles(cmd.Context(), args, opts)
			return writeReports(cmd.OutOrStdout(), reports, opts.json)
		},
	}

	cmd.Flags().StringVarP(&opts.section, "section", "s", "", "dotted path to the section containing scaling (env "+envPrefix+"_SECTION)")
	cmd.Flags().IntVar(&opts.imageWidth, "image-width", 0, "pixel width of the associated image (env "+envPrefix+"_IMAGE_WIDTH)")
	cmd.Flags().IntVar(&opts.imageHeight, "image-height", 0, "pixel height of the associated image (env "+envPrefix+"_IMAGE_HEIGHT)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print results as JSON")

	return cmd
}

// analyzeFiles analyzes every path, continuing past failures.
func (c *CLI) analyzeFiles(ctx context.Context, paths []string, opts analyzeOpts) []report {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	reports := make([]report, 0, len(paths))
	for _, path := range paths {
		r := c.analyzeFile(ctx, path, opts)
		if r.Err != nil {
			logger.Debug("analysis failed", "path", path, "code", errors.GetCode(r.Err), "err", r.Err)
		} else {
			logger.Debug("analysis succeeded", "path", path, "scaling", r.Result.Scaling())
		}
		reports = append(reports, r)
	}

	prog.done(fmt.Sprintf("Analyzed %d metadata files", len(paths)))
	return reports
}

// analyzeFile loads one metadata file and runs the analyzer on it.
func (c *CLI) analyzeFile(ctx context.Context, path string, opts analyzeOpts) report {
	logger := loggerFromContext(ctx)
	hooks := observability.Analysis()

	start := time.Now()
	root, err := metadata.Load(path)
	hooks.OnLoadComplete(ctx, path, time.Since(start), err)
	if err != nil {
		return report{Path: path, Err: err}
	}
	logger.Debug("loaded metadata", "path", path)

	start = time.Now()
	result, err := c.analyzeView(root, opts)
	kind := ""
	if err == nil {
		kind = string(result.Scaling().Kind())
	}
	hooks.OnAnalyzeComplete(ctx, path, kind, time.Since(start), err)
	return report{Path: path, Result: result, Err: err}
}

func (c *CLI) analyzeView(root metadata.View, opts analyzeOpts) (scaling.Analyzed, error) {
	view, err := metadata.Section(root, opts.section)
	if err != nil {
		return scaling.Analyzed{}, err
	}
	return c.Analyzer.Analyze(view, opts.imageWidth, opts.imageHeight)
}

// writeReports renders reports as JSON or styled text. It returns an error
// when at least one report failed.
func writeReports(w io.Writer, reports []report, asJSON bool) error {
	failed := 0
	for _, r := range reports {
		if r.Err != nil {
			failed++
		}
	}

	if asJSON {
		if err := writeJSONReports(w, reports); err != nil {
			return err
		}
	} else {
		for _, r := range reports {
			if r.Err != nil {
				printFailed(w, r.Path, string(errors.GetCode(r.Err)), errors.UserMessage(r.Err))
				continue
			}
			printAnalyzed(w, r.Path, r.Result)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d metadata files invalid", failed, len(reports))
	}
	return nil
}

func writeJSONReports(w io.Writer, reports []report) error {
	out := make([]jsonReport, 0, len(reports))
	for _, r := range reports {
		jr := jsonReport{Path: r.Path}
		if r.Err != nil {
			jr.Error = &jsonError{Code: errors.GetCode(r.Err), Message: errors.UserMessage(r.Err)}
		} else {
			result := r.Result
			jr.Result = &result
		}
		out = append(out, jr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
