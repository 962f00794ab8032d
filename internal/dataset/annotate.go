package dataset

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"gopkg.in/yaml.v2"

	"github.com/b3by/pymudata/internal/activity"
	apperrors "github.com/b3by/pymudata/internal/errors"
	"github.com/b3by/pymudata/internal/infrastructure"
)

// AnnotationFiles names the annotation tables. Only Coordinates is read;
// Deviations and Labels are reserved and ignored.
type AnnotationFiles struct {
	Coordinates string
	Deviations  string
	Labels      string
}

// Annotate assigns ground coordinates from the coordinates table. Every row
// names a data file and holds a literal integer sequence such as
// "[10, 20, 40, 50]". The sequence goes to every activity with that file
// name, masked or not. Rows that match no activity are skipped.
func (d *Dataset) Annotate(ctx context.Context, af AnnotationFiles) (err error) {
	ctx = infrastructure.EnsureTraceID(ctx)
	ctx, span := infrastructure.Tracer().Start(ctx, "dataset.annotate")
	span.SetAttributes(infrastructure.PathAttributes("coordinates", af.Coordinates)...)
	defer func() { infrastructure.EndSpan(span, err) }()

	if !d.Synthesized() {
		return errNotSynthesized()
	}

	t, err := d.loader.Load(af.Coordinates)
	if err != nil {
		return err
	}
	names, err := t.Column(d.cfg.FilenameColumn)
	if err != nil {
		return err
	}
	cells, err := t.Column(d.cfg.CoordinatesColumn)
	if err != nil {
		return err
	}

	byName := make(map[string][]*activity.Activity)
	for _, exercise := range d.order {
		for _, a := range d.activities[exercise] {
			byName[a.FileName()] = append(byName[a.FileName()], a)
		}
	}

	assigned := 0
	for row, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}

		name = strings.TrimSpace(name)
		matches := byName[name]
		if len(matches) == 0 {
			d.logger.DebugContext(ctx, "No activity for annotation row", "row", row, "filename", name)
			continue
		}

		coords, err := parseCoordinates(cells[row])
		if err != nil {
			return apperrors.NewParsingError(fmt.Sprintf("bad coordinates in row %d", row), err).
				WithContext("file_path", af.Coordinates).
				WithContext("filename", name)
		}

		for _, a := range matches {
			if err := a.SetGroundCoordinates(coords); err != nil {
				return err
			}
			assigned++
		}
	}

	span.SetAttributes(attribute.Int("pymu.annotated", assigned))
	d.logger.InfoContext(ctx, "Coordinates annotated", "rows", len(names), "activities", assigned)
	return nil
}

// parseCoordinates reads a literal integer sequence. Brackets or
// parentheses both delimit the sequence; an empty cell is no coordinates.
// Elements must be plain decimal integers; 010 or 0x10 are rejected.
func parseCoordinates(cell string) ([]int, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil, nil
	}
	cell = strings.NewReplacer("(", "[", ")", "]").Replace(cell)

	var tokens []string
	if err := yaml.Unmarshal([]byte(cell), &tokens); err != nil {
		return nil, err
	}

	coords := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		v, err := parseDecimal(tok)
		if err != nil {
			return nil, err
		}
		coords = append(coords, v)
	}
	return coords, nil
}

func parseDecimal(tok string) (int, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(tok, "-"), "+")
	if len(digits) > 1 && digits[0] == '0' {
		return 0, fmt.Errorf("leading zero in %q", tok)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("not a decimal integer: %q", tok)
	}
	return v, nil
}
