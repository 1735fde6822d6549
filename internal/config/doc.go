// Package config defines the format-agnostic configuration model for node
// metadata rules, along with the Loader interface that concrete formats
// implement.
//
// A rule binds a node path to a metadata descriptor. Rules are applied to the
// imported tree after each input; the descriptor itself is classified by the
// nodemeta package, not by the loader. The HCL implementation lives in the
// hcl_adapter package.
package config
