package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all top-level blocks from any file.
type fileRoot struct {
	Metas  []*metaBlock `hcl:"meta,block"`
	Remain hcl.Body     `hcl:",remain"`
}

// metaBlock is a `meta "<path>" { ... }` block. The metadata is either given
// whole as `descriptor`, or field by field.
type metaBlock struct {
	Path       string         `hcl:"path,label"`
	Descriptor hcl.Expression `hcl:"descriptor,optional"`
	Type       hcl.Expression `hcl:"type,optional"`
	Flag       hcl.Expression `hcl:"flag,optional"`
	Format     hcl.Expression `hcl:"format,optional"`
	Mandatory  hcl.Expression `hcl:"mandatory,optional"`
	Body       hcl.Body       `hcl:",body"`
}
