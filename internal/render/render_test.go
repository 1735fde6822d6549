package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/pathtree/internal/importer"
	"github.com/specialistvlad/pathtree/internal/nodemeta"
	"github.com/specialistvlad/pathtree/internal/segment"
	"github.com/specialistvlad/pathtree/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func sampleTree(t *testing.T) *tree.Node {
	t.Helper()
	root, err := importer.ImportLines(tree.NewRoot(), importer.Strings([]string{
		"/Request/Date",
		"/Request/Time",
		"/Request#id",
		"/Response",
	}))
	require.NoError(t, err)

	meta, err := nodemeta.Parse("NC||12|M")
	require.NoError(t, err)
	root, ok := tree.Decorate(root, segment.ParseLine("/Request"), meta)
	require.True(t, ok)
	return root
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"text", "YAML", " hcl "} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseFormat("json")
	assert.Error(t, err)
}

func TestToDoc(t *testing.T) {
	expected := Doc{
		Name: "/",
		Children: []Doc{
			{
				Name:       "Request",
				Meta:       &MetaDoc{Type: "string", Format: "12", Mandatory: "M"},
				Attributes: []string{"id"},
				Children:   []Doc{{Name: "Date"}, {Name: "Time"}},
			},
			{Name: "Response"},
		},
	}

	if diff := cmp.Diff(expected, ToDoc(sampleTree(t))); diff != "" {
		t.Errorf("doc mismatch (-want +got):\n%s", diff)
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, sampleTree(t), false))

	expected := strings.Join([]string{
		"/",
		"├── Request #id [string(12) mandatory=M]",
		"│   ├── Date",
		"│   └── Time",
		"└── Response",
		"",
	}, "\n")
	assert.Equal(t, expected, buf.String())
}

func TestText_Color(t *testing.T) {
	var plain, colored bytes.Buffer
	require.NoError(t, Text(&plain, sampleTree(t), false))
	require.NoError(t, Text(&colored, sampleTree(t), true))

	assert.NotContains(t, plain.String(), "\x1b[")
	assert.Contains(t, colored.String(), "\x1b[")
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, sampleTree(t), Options{}))
	out := buf.String()

	for _, want := range []string{"name: Request", "type: string", "mandatory: M", "- id", "name: Date"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "name: Date"), strings.Index(out, "name: Time"))
	assert.Less(t, strings.Index(out, "name: Time"), strings.Index(out, "name: Response"))
}

func TestHCL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatHCL, sampleTree(t), Options{}))

	file, diags := hclparse.NewParser().ParseHCL(buf.Bytes(), "out.hcl")
	require.False(t, diags.HasErrors(), diags.Error())

	body, ok := file.Body.(*hclsyntax.Body)
	require.True(t, ok)
	require.Len(t, body.Blocks, 1)
	root := body.Blocks[0]
	assert.Equal(t, "node", root.Type)
	assert.Equal(t, []string{"/"}, root.Labels)

	require.Len(t, root.Body.Blocks, 2)
	request := root.Body.Blocks[0]
	assert.Equal(t, []string{"Request"}, request.Labels)
	assert.Equal(t, []string{"Response"}, root.Body.Blocks[1].Labels)

	attrValue := func(name string) cty.Value {
		t.Helper()
		attr, ok := request.Body.Attributes[name]
		require.True(t, ok, name)
		v, diags := attr.Expr.Value(nil)
		require.False(t, diags.HasErrors(), diags.Error())
		return v
	}
	assert.Equal(t, "string", attrValue("type").AsString())
	assert.Equal(t, "12", attrValue("format").AsString())
	assert.Equal(t, "M", attrValue("mandatory").AsString())

	attrs := attrValue("attributes")
	require.True(t, attrs.CanIterateElements())
	require.Equal(t, 1, attrs.LengthInt())
	assert.Equal(t, "id", attrs.Index(cty.NumberIntVal(0)).AsString())

	var children []string
	for _, b := range request.Body.Blocks {
		children = append(children, b.Labels[0])
	}
	assert.Equal(t, []string{"Date", "Time"}, children)
}

func TestDiff(t *testing.T) {
	before, err := importer.ImportLines(tree.NewRoot(), importer.Strings([]string{"/a"}))
	require.NoError(t, err)
	after := tree.Merge(before, segment.ParseLine("/b"))

	var buf bytes.Buffer
	changed, err := Diff(&buf, before, after)
	require.NoError(t, err)
	assert.True(t, changed)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Contains(t, lines, "  /")
	assert.Contains(t, lines, "- └── a")
	assert.Contains(t, lines, "+ ├── a")
	assert.Contains(t, lines, "+ └── b")
}

func TestDiff_Unchanged(t *testing.T) {
	root := sampleTree(t)

	var buf bytes.Buffer
	changed, err := Diff(&buf, root, root)
	require.NoError(t, err)
	assert.False(t, changed)
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.True(t, strings.HasPrefix(line, "  "), line)
	}
}
