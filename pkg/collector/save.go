package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/pipeline-params/pkg/collector/model"
)

const (
	filePerm    = 0o644
	jsonIndent  = "    "
	bannerWidth = 60
)

var banner = strings.Repeat("=", bannerWidth)

// DisplaySummary prints every field of both documents.
func DisplaySummary(w io.Writer, params model.PipelineParams, opts model.ExecutionOptions) {
	fmt.Fprintf(w, "\n%s\nParameter Summary\n%s\n", banner, banner)

	fmt.Fprintln(w, "\n>> Pipeline Parameters:")
	printFields(w, params.Fields())

	fmt.Fprintln(w, "\n>> Execution Options:")
	printFields(w, opts.Fields())

	fmt.Fprintf(w, "%s\n\n", banner)
}

func printFields(w io.Writer, fields []model.Field) {
	for _, field := range fields {
		fmt.Fprintf(w, "  %-25s: %v\n", field.Key, field.Value)
	}
}

// Save writes params to paramsPath and opts to optionsPath, overwriting existing files.
// The files are written one after the other: a failure on the second leaves the first written.
// Nothing is written once ctx is done.
func Save(ctx context.Context, w io.Writer, params model.PipelineParams, opts model.ExecutionOptions, paramsPath, optionsPath string) error {
	err := params.Validate()
	if err != nil {
		return errors.Wrap(err, "unable to save pipeline parameters")
	}

	err = ctx.Err()
	if err != nil {
		return errors.Wrap(err, "unable to save pipeline parameters")
	}

	err = writeJSON(paramsPath, params)
	if err != nil {
		return errors.Wrap(err, "unable to save pipeline parameters")
	}
	fmt.Fprintf(w, "\n✓ Pipeline parameters saved to %s\n", paramsPath)

	err = writeJSON(optionsPath, opts)
	if err != nil {
		return errors.Wrap(err, "unable to save execution options")
	}
	fmt.Fprintf(w, "✓ Execution options saved to %s\n", optionsPath)

	return nil
}

func writeJSON(path string, v any) error {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetIndent("", jsonIndent)
	enc.SetEscapeHTML(false)

	err := enc.Encode(v)
	if err != nil {
		return errors.Wrap(err, "unable to encode json")
	}

	err = os.WriteFile(path, []byte(b.String()), filePerm)
	if err != nil {
		return errors.Wrapf(err, "unable to write %s", path)
	}

	return nil
}
