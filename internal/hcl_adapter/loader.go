package hcl_adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/pathtree/internal/config"
	"github.com/specialistvlad/pathtree/internal/ctxlog"
	"github.com/specialistvlad/pathtree/internal/fsutil"
	"github.com/specialistvlad/pathtree/internal/nodemeta"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	env map[string]string
}

// NewLoader creates a new HCL configuration loader. env is exposed to
// expressions as the `env` object.
func NewLoader(env map[string]string) *Loader {
	return &Loader{env: env}
}

// Load parses every .hcl file found under paths and collects their meta
// blocks in file order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	hclFiles, err := fsutil.FindFiles(".hcl", paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to discover HCL files: %w", err)
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()
	evalCtx := newEvalContext(l.env)
	model := &config.Model{}

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Metas {
			rule, err := l.translateMeta(ctx, block, evalCtx)
			if err != nil {
				return nil, err
			}
			model.Rules = append(model.Rules, rule)
		}
	}

	logger.Debug("HCL loading complete.", "rules", len(model.Rules))
	return model, nil
}

// translateMeta turns a meta block into a rule. A block must set either
// `descriptor` or `type`, but not both.
func (l *Loader) translateMeta(ctx context.Context, b *metaBlock, evalCtx *hcl.EvalContext) (config.MetaRule, error) {
	logger := ctxlog.FromContext(ctx).With("meta_path", b.Path)
	ctx = ctxlog.WithLogger(ctx, logger)

	rule := config.MetaRule{Path: b.Path, Source: b.Body.MissingItemRange().String()}

	hasDescriptor := isExprDefined(ctx, b.Descriptor, "descriptor")
	hasType := isExprDefined(ctx, b.Type, "type")

	switch {
	case hasDescriptor && hasType:
		return rule, fmt.Errorf("%s: meta %q sets both descriptor and type", rule.Source, b.Path)
	case hasDescriptor:
		s, err := evalString(b.Descriptor, evalCtx)
		if err != nil {
			return rule, err
		}
		rule.Descriptor = s
	case hasType:
		fields := make([]string, 0, 4)
		for _, expr := range []hcl.Expression{b.Type, b.Flag, b.Format, b.Mandatory} {
			s, err := evalOptionalString(ctx, expr, evalCtx)
			if err != nil {
				return rule, err
			}
			fields = append(fields, s)
		}
		rule.Descriptor = strings.Join(fields, nodemeta.Delimiter)
	default:
		return rule, fmt.Errorf("%s: meta %q needs a descriptor or a type", rule.Source, b.Path)
	}

	logger.Debug("Translated meta block.", "descriptor", rule.Descriptor)
	return rule, nil
}
