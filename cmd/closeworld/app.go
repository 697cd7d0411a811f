package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/katalvlaran/closeworld/axiom"
	"github.com/katalvlaran/closeworld/bundle"
	"github.com/katalvlaran/closeworld/closure"
	"github.com/katalvlaran/closeworld/expr"
	"github.com/katalvlaran/closeworld/internal/config"
	"github.com/katalvlaran/closeworld/owl"
)

// errNoSources is returned when neither arguments nor closure.sources name
// any bundle file.
var errNoSources = errors.New("no bundle files given (pass patterns or set closure.sources)")

// App runs closure generations for one command invocation.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	runID  string
}

// NewApp creates a new application instance.
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	runID := uuid.NewString()
	return &App{cfg: cfg, logger: logger.With("run_id", runID), runID: runID}
}

// Report is the outcome of one generation.
type Report struct {
	RunID       string
	Name        string
	OntologyIRI string
	Type        axiom.Type
	Paths       []string
	Fingerprint string
	Classes     int
	Axioms      []axiom.Axiom
	Degraded    []expr.Expression
	Elapsed     time.Duration
}

// Generate loads the bundle named by patterns (or closure.sources) and
// derives its closure axioms.
func (a *App) Generate(patterns []string) (*Report, error) {
	start := time.Now()
	if len(patterns) == 0 {
		patterns = a.cfg.Closure.Sources
	}
	if len(patterns) == 0 {
		return nil, errNoSources
	}
	typ, err := a.cfg.AxiomType()
	if err != nil {
		return nil, err
	}

	doc, paths, err := bundle.Load(patterns...)
	if err != nil {
		return nil, err
	}
	fp, err := bundle.Fingerprint(paths)
	if err != nil {
		return nil, err
	}
	tx, err := doc.Taxonomy()
	if err != nil {
		return nil, err
	}

	opts := []closure.Option{closure.WithType(typ)}
	if a.cfg.Closure.TreeAxioms {
		opts = append(opts, closure.WithTreeAxioms())
	}
	res, err := closure.Generate(tx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", doc.Name, err)
	}

	rep := &Report{
		RunID:       a.runID,
		Name:        doc.Name,
		OntologyIRI: a.cfg.Closure.OntologyIRI,
		Type:        typ,
		Paths:       paths,
		Fingerprint: fp,
		Classes:     tx.Len(),
		Axioms:      res.Axioms.Axioms(),
		Degraded:    res.Degraded,
		Elapsed:     time.Since(start),
	}
	if rep.OntologyIRI == "" && doc.IRI != "" {
		rep.OntologyIRI = doc.IRI + "/closure"
	}
	a.logReport(rep)

	return rep, nil
}

func (a *App) logReport(rep *Report) {
	if rep.Type == axiom.TypeEquivalentClasses {
		a.logger.Warn("equivalent-classes produces no closure axioms", "bundle", rep.Name)
	}
	for _, d := range rep.Degraded {
		a.logger.Warn("disjoint union weakened to disjoint classes",
			"bundle", rep.Name, "parent", d.String())
	}
	a.logger.Info("closure generated",
		"bundle", rep.Name,
		"files", len(rep.Paths),
		"classes", humanize.Comma(int64(rep.Classes)),
		"axioms", humanize.Comma(int64(len(rep.Axioms))),
		"type", rep.Type.String(),
		"elapsed", rep.Elapsed.String())
}

// Emit writes rep to the configured output path, or to stdout when the path
// is empty or "-".
func (a *App) Emit(stdout io.Writer, rep *Report) error {
	path := a.cfg.Output.Path
	if path == "" || path == "-" {
		return a.write(stdout, rep)
	}

	if err := writeFile(path, func(w io.Writer) error { return a.write(w, rep) }); err != nil {
		return err
	}
	a.logger.Debug("Wrote output", "path", path)

	return nil
}

// writeFile fills a temporary file next to path and renames it into place,
// so path holds either its previous content or the complete new one.
func writeFile(path string, fill func(io.Writer) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err = fill(f); err != nil {
		return err
	}
	if err = f.Chmod(0o644); err != nil {
		return fmt.Errorf("chmod output: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	if err = os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("rename output: %w", err)
	}

	return nil
}

func (a *App) write(w io.Writer, rep *Report) error {
	tr := owl.NewTranslator(owl.WithBase(a.cfg.Output.Prefix))

	switch a.cfg.Output.Format {
	case config.FormatText:
		for _, ax := range rep.Axioms {
			if _, err := fmt.Fprintln(w, ax.String()); err != nil {
				return err
			}
		}
		return nil
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonReport(rep, tr))
	default:
		return tr.Write(w, owl.Document{
			IRI:     rep.OntologyIRI,
			Axioms:  rep.Axioms,
			Declare: a.cfg.Output.Declare,
		})
	}
}

type jsonAxiom struct {
	Kind       string `json:"kind"`
	Text       string `json:"text"`
	Functional string `json:"functional"`
}

type jsonOutput struct {
	RunID       string      `json:"run_id"`
	Bundle      string      `json:"bundle"`
	OntologyIRI string      `json:"ontology_iri,omitempty"`
	Type        string      `json:"type"`
	Files       []string    `json:"files"`
	Fingerprint string      `json:"fingerprint"`
	Classes     int         `json:"classes"`
	Axioms      []jsonAxiom `json:"axioms"`
	Degraded    []string    `json:"degraded,omitempty"`
}

func jsonReport(rep *Report, tr *owl.Translator) jsonOutput {
	out := jsonOutput{
		RunID:       rep.RunID,
		Bundle:      rep.Name,
		OntologyIRI: rep.OntologyIRI,
		Type:        rep.Type.String(),
		Files:       rep.Paths,
		Fingerprint: rep.Fingerprint,
		Classes:     rep.Classes,
		Axioms:      make([]jsonAxiom, len(rep.Axioms)),
	}
	for i, ax := range rep.Axioms {
		out.Axioms[i] = jsonAxiom{Kind: ax.Kind().String(), Text: ax.String(), Functional: tr.Axiom(ax)}
	}
	for _, d := range rep.Degraded {
		out.Degraded = append(out.Degraded, d.String())
	}

	return out
}
