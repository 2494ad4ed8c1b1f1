package commands

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/metricpush/internal/config"
	"git.home.luguber.info/inful/metricpush/internal/errors"
	"git.home.luguber.info/inful/metricpush/internal/logfields"
	"git.home.luguber.info/inful/metricpush/internal/otlp"
	"git.home.luguber.info/inful/metricpush/internal/reporter"
)

// PushCmd implements the 'push' command: build one gauge payload and submit it.
type PushCmd struct {
	Name  string  `arg:"" help:"Metric name"`
	Value float64 `arg:"" help:"Metric value (must be representable as a double)"`

	Endpoint string `help:"Override the metrics gateway URL"`
	DryRun   bool   `name:"dry-run" help:"Print the payload to stdout instead of sending it"`

	out io.Writer // dry-run destination, settable for tests
}

func (p *PushCmd) Run(g *Global, root *CLI) error {
	log := g.logger()

	if strings.TrimSpace(p.Name) == "" {
		return errors.ValidationError("metric name must not be empty").Build()
	}

	cfg, err := config.Load(root.Config, root.ConfigExplicit())
	if err != nil {
		return err
	}
	if p.Endpoint != "" {
		cfg.Endpoint = p.Endpoint
	}
	if err := cfg.Validate(); err != nil {
		return errors.ConfigError("invalid configuration").WithCause(err).Build()
	}

	// Missing variables are substituted as empty strings and the push still
	// happens; the gateway's verdict is the pipeline's signal, not ours.
	if !cfg.HasCredentials() {
		log.Warn("Credentials incomplete, the gateway will likely reject the push",
			"missing", cfg.MissingEnv())
	} else if cfg.PipelineID == "" {
		log.Warn("PIPELINE_ID unset, instance attribute will be empty")
	}

	extra := make([]otlp.KeyValue, 0, len(cfg.Attributes))
	for _, a := range cfg.SortedAttributes() {
		extra = append(extra, otlp.StringAttr(a.Key, a.Value))
	}
	payload := otlp.NewGaugeRequest(p.Name, p.Value, time.Now(), cfg.Job, cfg.PipelineID, extra...)

	var rep reporter.Reporter = reporter.NewHTTPReporter(nil, cfg.Endpoint, cfg.User, cfg.Key)
	if p.DryRun {
		rep = &reporter.DryRunReporter{Out: p.output()}
	}

	reportID := uuid.NewString()
	start := time.Now()
	if err := rep.Push(context.Background(), payload); err != nil {
		log.Error("Metric push failed",
			logfields.Metric(p.Name),
			logfields.Endpoint(cfg.Endpoint),
			logfields.ReportID(reportID),
			logfields.Error(err))
		return err
	}

	log.Info("Metric pushed",
		logfields.Metric(p.Name),
		logfields.Value(p.Value),
		logfields.PipelineID(cfg.PipelineID),
		logfields.ReportID(reportID),
		logfields.Status(statusFor(p.DryRun)),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000.0))
	return nil
}

func (p *PushCmd) output() io.Writer {
	if p.out != nil {
		return p.out
	}
	return os.Stdout
}

func statusFor(dryRun bool) string {
	if dryRun {
		return "dry-run"
	}
	return "sent"
}
