package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"resume-matcher/internal/analyses"
	"resume-matcher/internal/extract"
	"resume-matcher/internal/matching"
	"resume-matcher/internal/samples"
	"resume-matcher/internal/shared/telemetry"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	jdPath       string
	resumePath   string
	sampleJob    string
	sampleResume string
	listSamples  bool
	outPath      string
	pretty       bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.jdPath, "jd", "", "Path to job description file (txt, pdf or docx)")
	fs.StringVar(&opts.resumePath, "resume", "", "Path to resume file (txt, pdf or docx)")
	fs.StringVar(&opts.sampleJob, "sample-job", "", "Built-in sample job id")
	fs.StringVar(&opts.sampleResume, "sample-resume", "", "Built-in sample resume id")
	fs.BoolVar(&opts.listSamples, "list-samples", false, "List built-in samples and exit")
	fs.StringVar(&opts.outPath, "out", "", "Path to write JSON output (optional)")
	fs.BoolVar(&opts.pretty, "pretty", false, "Indent JSON output")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.listSamples {
		return opts, nil
	}
	if (opts.jdPath == "") == (opts.sampleJob == "") {
		return options{}, errors.New("exactly one of -jd or -sample-job is required")
	}
	if (opts.resumePath == "") == (opts.sampleResume == "") {
		return options{}, errors.New("exactly one of -resume or -sample-resume is required")
	}
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	// keep stdout clean for the JSON document
	restore := telemetry.SetLogger(telemetryToStderr(stderr))
	defer restore()

	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	catalog, err := samples.Default()
	if err != nil {
		fmt.Fprintf(stderr, "load samples: %v\n", err)
		return 1
	}

	var payload any
	if opts.listSamples {
		payload = map[string]any{"jobs": catalog.Jobs(), "resumes": catalog.Resumes()}
	} else {
		payload, err = analyze(context.Background(), opts, catalog)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	if err := writeJSON(payload, opts, stdout); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func analyze(ctx context.Context, opts options, catalog *samples.Catalog) (analyses.Analysis, error) {
	jobDescription, err := loadText(ctx, opts.jdPath, func() (string, error) {
		job, err := catalog.Job(opts.sampleJob)
		return job.Description, err
	})
	if err != nil {
		return analyses.Analysis{}, fmt.Errorf("job description: %w", err)
	}
	resumeText, err := loadText(ctx, opts.resumePath, func() (string, error) {
		resume, err := catalog.Resume(opts.sampleResume)
		return resume.Text, err
	})
	if err != nil {
		return analyses.Analysis{}, fmt.Errorf("resume: %w", err)
	}

	svc := analyses.NewService(matching.New(), nil, 0)
	return svc.Analyze(ctx, jobDescription, resumeText)
}

func loadText(ctx context.Context, path string, sample func() (string, error)) (string, error) {
	if strings.TrimSpace(path) == "" {
		return sample()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := extract.Extract(ctx, data, filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", path, err)
	}
	return doc.Text, nil
}

func writeJSON(payload any, opts options, stdout io.Writer) error {
	var (
		raw []byte
		err error
	)
	if opts.pretty {
		raw, err = json.MarshalIndent(payload, "", "  ")
	} else {
		raw, err = json.Marshal(payload)
	}
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	raw = append(raw, '\n')

	if strings.TrimSpace(opts.outPath) != "" {
		if err := os.WriteFile(opts.outPath, raw, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
	_, err = stdout.Write(raw)
	return err
}
