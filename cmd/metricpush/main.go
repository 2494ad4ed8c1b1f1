package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/metricpush/cmd/metricpush/commands"
	"git.home.luguber.info/inful/metricpush/internal/errors"
	"git.home.luguber.info/inful/metricpush/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser, err := newParser(cli)
	if err != nil {
		errors.NewCLIErrorAdapter(false, nil).HandleError(
			errors.InternalError("failed to build command line parser").WithCause(err).Build())
	}

	ctx, err := parser.Parse(os.Args[1:])
	adapter := errors.NewCLIErrorAdapter(cli.Verbose, nil)
	if err != nil {
		// Bad invocations exit with the invalid-usage code, not kong's
		// default fatal code.
		adapter.HandleError(usageError(err))
	}

	adapter.HandleError(ctx.Run(&commands.Global{Logger: slog.Default()}, cli))
}

func newParser(cli *commands.CLI) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("metricpush"),
		kong.Description("Push a CI pipeline metric to an OpenTelemetry-compatible metrics gateway."),
		kong.Vars{"version": version.Version},
	)
}

// usageError classifies a command-line parse failure as invalid usage.
func usageError(err error) error {
	return errors.ValidationError(err.Error()).Build()
}
