package commands

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teranos/idlgen/config"
	"github.com/teranos/idlgen/errors"
	"github.com/teranos/idlgen/logger"
	"github.com/teranos/idlgen/model"
	"github.com/teranos/idlgen/plan"
	"github.com/teranos/idlgen/resolver"
	"github.com/teranos/idlgen/validate"
)

// Run is one pass over a model file
type Run struct {
	ID       string
	Snapshot *model.Snapshot
	Lint     *validate.Report
	Result   *resolver.Result
	Plan     *plan.Plan
}

// resolveModel loads the model at path, resolves it, writes the derived
// facts onto its nodes and builds the emission plan
func resolveModel(path string, cfg *config.Config) (*Run, error) {
	run := &Run{ID: uuid.NewString()}
	log := logger.Named("resolve").With(logger.FieldRunID, run.ID, logger.FieldModel, path)

	snapshot, err := model.LoadFile(path, cfg.LoadOptions())
	if err != nil {
		return nil, err
	}
	run.Snapshot = snapshot
	nodes := snapshot.Nodes()
	log.Infow("Model loaded", logger.FieldNodes, len(nodes), "format", snapshot.Format)

	if cfg.Lint.Enabled {
		run.Lint = validate.Run(snapshot, cfg.RuleOptions())
		logFindings(log, run.Lint)
		if err := run.Lint.Err(); err != nil {
			return nil, errors.Wrapf(err, "model %s failed lint", path)
		}
	}

	result, err := resolver.Resolve(nodes, resolver.Options{Logger: log})
	if err != nil {
		logFailure(log, err)
		return nil, errors.Wrapf(err, "failed to resolve %s", path)
	}
	run.Result = result

	if err := result.Apply(nodes); err != nil {
		return nil, errors.Wrap(err, "failed to apply declaration order")
	}

	p, err := plan.Build(nodes, result)
	if err != nil {
		return nil, err
	}
	run.Plan = p

	log.Infow("Plan built",
		"blocks", len(p.Blocks),
		"modules", len(plan.ModuleOrder(nodes, result)),
		"forward_declarations", len(result.Forward()))
	return run, nil
}

// logFindings logs warnings at warn level and the rest at info; error
// findings are reported through the returned error instead
func logFindings(log *zap.SugaredLogger, report *validate.Report) {
	for _, f := range report.Findings {
		fields := []interface{}{"rule", f.Rule, "subject", f.Subject}
		switch f.Severity {
		case validate.SeverityWarning:
			log.Warnw(f.Message, fields...)
		case validate.SeverityInfo:
			log.Infow(f.Message, fields...)
		}
	}
}

func logFailure(log *zap.SugaredLogger, err error) {
	kind := resolver.KindOf(err)
	if kind == resolver.ErrorKindInternalInvariant {
		log.Errorw("Resolver invariant violated", "kind", kind.String(), logger.FieldError, err)
		return
	}
	log.Debugw("Model rejected", "kind", kind.String(), logger.FieldError, err)
}

// modelPath picks the model file from the argument or the configuration
func modelPath(cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Model.Path != "" {
		return cfg.Model.Path, nil
	}
	return "", errors.WithHint(
		errors.New("no model file given"),
		"pass the model file as an argument or set model.path in "+config.FileName)
}
