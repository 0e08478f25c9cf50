package document

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/namekit/bridge"
	"github.com/erraggy/namekit/element"
	"github.com/erraggy/namekit/nkerrors"
	"github.com/erraggy/namekit/preview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `name: Design System
currentPage: Buttons
pages:
  - id: "0:1"
    name: Buttons
    components:
      - id: "1:1"
        name: button/primary
        type: COMPONENT
      - id: "1:2"
        name: Icon Button
        type: COMPONENT_SET
        children:
          - {id: "1:3", name: "size=small", type: COMPONENT}
      - id: "1:4"
        name: Layout
        type: FRAME
        children:
          - {id: "1:5", name: nested card}
  - id: "0:2"
    name: Forms
    components:
      - {id: "2:1", name: text field, type: COMPONENT}
styles:
  color:
    - {id: "S:1", name: brand primary}
  text:
    - {id: "S:2", name: Heading Large}
  grid:
    - {id: "S:3", name: twelve col}
variables:
  - {id: "V:1", name: spacing-md, type: FLOAT, collection: Tokens}
  - {id: "V:2", name: isDark, type: BOOLEAN}
  - {id: "V:3", name: label, type: STRING}
  - {id: "V:4", name: bg, type: COLOR}
`

func ids(items []element.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func mustParse(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse([]byte(sampleYAML), SourceFormatUnknown)
	require.NoError(t, err)
	return doc
}

func TestParse(t *testing.T) {
	doc := mustParse(t)
	assert.Equal(t, SourceFormatYAML, doc.Format())
	assert.Equal(t, "Design System", doc.Name)
	require.Len(t, doc.Pages, 2)
	assert.Len(t, doc.Styles.Color, 1)
	assert.Len(t, doc.Variables, 4)

	jsonDoc, err := Parse([]byte(`{"pages":[{"id":"0:1","name":"P","components":[{"id":"1","name":"a"}]}]}`), SourceFormatUnknown)
	require.NoError(t, err)
	assert.Equal(t, SourceFormatJSON, jsonDoc.Format())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format SourceFormat
	}{
		{name: "empty", data: "  \n", format: SourceFormatUnknown},
		{name: "bad yaml", data: "pages: [\n", format: SourceFormatYAML},
		{name: "bad json", data: `{"pages": }`, format: SourceFormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			require.Error(t, err)
			assert.ErrorIs(t, err, nkerrors.ErrParse)
		})
	}
}

func TestItems_Components(t *testing.T) {
	doc := mustParse(t)
	ctx := context.Background()

	items, err := doc.Items(ctx, element.Component, element.CurrentPage)
	require.NoError(t, err)
	assert.Equal(t, []string{"1:1", "1:2", "1:3", "1:5"}, ids(items), "frames are searched but not listed")
	assert.Equal(t, element.SubtypeComponentSet, items[1].Subtype)
	assert.Equal(t, element.SubtypeComponent, items[3].Subtype, "untyped nodes are components")
	assert.Equal(t, "Buttons", items[0].Location)

	items, err = doc.Items(ctx, element.Component, element.AllPages)
	require.NoError(t, err)
	assert.Equal(t, []string{"1:1", "1:2", "1:3", "1:5", "2:1"}, ids(items))
	assert.Equal(t, "Forms", items[4].Location)

	doc.CurrentPage = "0:2"
	items, err = doc.Items(ctx, element.Component, element.CurrentPage)
	require.NoError(t, err)
	assert.Equal(t, []string{"2:1"}, ids(items))

	doc.CurrentPage = ""
	items, err = doc.Items(ctx, element.Component, element.CurrentPage)
	require.NoError(t, err)
	assert.Len(t, items, 4, "first page when no current page is set")

	doc.CurrentPage = "Archive"
	_, err = doc.Items(ctx, element.Component, element.CurrentPage)
	assert.ErrorIs(t, err, nkerrors.ErrNotFound)
}

func TestItems_StylesAndVariables(t *testing.T) {
	doc := mustParse(t)
	ctx := context.Background()

	styles, err := doc.Items(ctx, element.Style, element.CurrentPage)
	require.NoError(t, err)
	require.Len(t, styles, 3)
	assert.Equal(t, element.Item{ID: "S:1", Name: "brand primary", Category: element.Style, Subtype: element.SubtypeColor, Location: "Styles"}, styles[0])
	assert.Equal(t, "Typography", styles[1].Location)
	assert.Equal(t, element.SubtypeGrid, styles[2].Subtype)

	vars, err := doc.Items(ctx, element.Variable, element.AllPages)
	require.NoError(t, err)
	var subtypes []string
	for _, v := range vars {
		subtypes = append(subtypes, v.Subtype)
	}
	assert.Equal(t, []string{element.SubtypeNumber, element.SubtypeBool, element.SubtypeString, element.SubtypeColor}, subtypes)
	assert.Equal(t, "Tokens", vars[0].Location)
	assert.Equal(t, "Variables", vars[1].Location)

	_, err = doc.Items(ctx, element.Category(0), element.CurrentPage)
	assert.ErrorIs(t, err, nkerrors.ErrConfig)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = doc.Items(cancelled, element.Style, element.CurrentPage)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRename(t *testing.T) {
	doc := mustParse(t)
	ctx := context.Background()

	res, err := doc.Rename(ctx, element.Component, element.CurrentPage, []preview.Change{
		{ID: "1:3", Name: "sizeSmall"},
		{ID: "2:1", Name: "textField"},
		{ID: "S:1", Name: "nope"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Renamed, "components on other pages are still renamed")
	require.Len(t, res.Failures, 1)
	assert.Equal(t, bridge.Failure{ID: "S:1", Reason: "element not found in COMP: S:1"}, res.Failures[0])
	assert.Equal(t, "sizeSmall", doc.Pages[0].Components[1].Children[0].Name)
	assert.Equal(t, "textField", doc.Pages[1].Components[0].Name)

	res, err = doc.Rename(ctx, element.Style, element.CurrentPage, []preview.Change{{ID: "S:3", Name: "twelveCol"}})
	require.NoError(t, err)
	assert.Equal(t, bridge.Result{Renamed: 1}, res)
	assert.Equal(t, "twelveCol", doc.Styles.Grid[0].Name)

	res, err = doc.Rename(ctx, element.Variable, element.CurrentPage, []preview.Change{{ID: "V:2", Name: "is_dark"}})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Renamed)
	assert.Equal(t, "is_dark", doc.Variables[1].Name)
}

func TestSession_AgainstDocument(t *testing.T) {
	doc := mustParse(t)
	ctx := context.Background()

	s := bridge.NewSession(doc, element.Style)
	require.NoError(t, s.Load(ctx))
	res, err := s.ApplyAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Renamed, "only the color style target is selected by default")
	assert.Equal(t, "brandPrimary", doc.Styles.Color[0].Name)
	assert.Equal(t, "Heading Large", doc.Styles.Text[0].Name)
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	doc := mustParse(t)
	_, err := doc.Rename(context.Background(), element.Variable, element.AllPages, []preview.Change{{ID: "V:1", Name: "spacingMd"}})
	require.NoError(t, err)

	yamlPath := filepath.Join(dir, "design.yaml")
	require.NoError(t, doc.Save(yamlPath))
	loaded, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "spacingMd", loaded.Variables[0].Name)
	assert.Equal(t, "Tokens", loaded.Variables[0].Collection)
	assert.Equal(t, SourceFormatYAML, loaded.Format())

	jsonPath := filepath.Join(dir, "design.json")
	require.NoError(t, loaded.Save(jsonPath))
	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "spacingMd"`)

	fromJSON, err := Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, SourceFormatJSON, fromJSON.Format())
	assert.Equal(t, loaded.Pages, fromJSON.Pages)

	// Unknown extension keeps the parsed format.
	plainPath := filepath.Join(dir, "design.txt")
	require.NoError(t, fromJSON.Save(plainPath))
	data, err = os.ReadFile(plainPath)
	require.NoError(t, err)
	assert.Equal(t, SourceFormatJSON, detectFormatFromContent(data))

	badPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badPath, []byte("pages: [\n"), 0o600))
	_, err = Load(badPath)
	var pe *nkerrors.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, badPath, pe.Path)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestSave_RejectsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.yaml")
	require.NoError(t, os.WriteFile(target, []byte(sampleYAML), 0o600))
	link := filepath.Join(dir, "link.yaml")
	require.NoError(t, os.Symlink(target, link))

	err := mustParse(t).Save(link)
	assert.ErrorContains(t, err, "refusing to write to symlink")
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, SourceFormatJSON, detectFormatFromPath("a/b.JSON"))
	assert.Equal(t, SourceFormatYAML, detectFormatFromPath("b.yml"))
	assert.Equal(t, SourceFormatUnknown, detectFormatFromPath("b"))
	assert.Equal(t, SourceFormatJSON, detectFormatFromContent([]byte("\n {}")))
	assert.Equal(t, SourceFormatYAML, detectFormatFromContent([]byte("pages: []")))
	assert.Equal(t, SourceFormatUnknown, detectFormatFromContent(nil))
}
