package lsp

import (
	"os"
	"testing"

	"github.com/dhamidi/wls/ejbjar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const duplicateBeans = `<weblogic-ejb-jar>
  <weblogic-enterprise-bean>
    <ejb-name>A</ejb-name>
  </weblogic-enterprise-bean>
  <weblogic-enterprise-bean>
    <ejb-name>A</ejb-name>
  </weblogic-enterprise-bean>
</weblogic-ejb-jar>
`

func TestDiagnose_Findings(t *testing.T) {
	diags := diagnose([]byte(duplicateBeans), ejbjar.Namespace, nil)
	require.Len(t, diags, 1)

	d := diags[0]
	assert.Equal(t, protocol.UInteger(5), d.Range.Start.Line)
	assert.Equal(t, protocol.UInteger(0), d.Range.Start.Character)
	assert.Equal(t, protocol.UInteger(5), d.Range.End.Line)
	require.NotNil(t, d.Severity)
	assert.Equal(t, protocol.DiagnosticSeverityWarning, *d.Severity)
	require.NotNil(t, d.Code)
	assert.Equal(t, ejbjar.RuleDuplicateEJBName, d.Code.Value)
	require.NotNil(t, d.Source)
	assert.Equal(t, "wls", *d.Source)
	assert.Contains(t, d.Message, `"A"`)
}

func TestDiagnose_CleanDocument(t *testing.T) {
	data, err := os.ReadFile("../ejbjar/testdata/weblogic-ejb-jar-90.xml")
	require.NoError(t, err)

	diags := diagnose(data, ejbjar.Namespace, nil)
	assert.NotNil(t, diags)
	assert.Empty(t, diags)
}

func TestDiagnose_Ignored(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"other vocabulary", "<project><modelVersion>4.0.0</modelVersion></project>"},
		{"fragment", "<pool><max-beans-in-free-pool>5</max-beans-in-free-pool></pool>"},
		{"no element", "just text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := diagnose([]byte(tt.text), ejbjar.Namespace, nil)
			assert.NotNil(t, diags)
			assert.Empty(t, diags)
		})
	}
}

func TestDiagnose_DecodeError(t *testing.T) {
	text := "<weblogic-ejb-jar>\n  <weblogic-enterprise-bean>\n  </oops>\n</weblogic-ejb-jar>\n"
	diags := diagnose([]byte(text), ejbjar.Namespace, nil)
	require.Len(t, diags, 1)
	require.NotNil(t, diags[0].Severity)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diags[0].Severity)
	assert.Nil(t, diags[0].Code)
}

func TestLineIndex(t *testing.T) {
	idx := elementLines([]byte(duplicateBeans))

	tests := []struct {
		path string
		want int
	}{
		{"weblogic-ejb-jar", 1},
		{"weblogic-ejb-jar/weblogic-enterprise-bean", 2},
		{"weblogic-ejb-jar/weblogic-enterprise-bean[2]", 5},
		{"weblogic-ejb-jar/weblogic-enterprise-bean[2]/ejb-name", 6},
		{"weblogic-ejb-jar/weblogic-enterprise-bean[2]/pool", 5},
		{"weblogic-ejb-jar/security-role-assignment[3]/role-name", 1},
		{"elsewhere", 1},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, idx.find(tt.path))
		})
	}
}

func labels(items []protocol.CompletionItem) []string {
	var out []string
	for _, item := range items {
		out = append(out, item.Label)
	}
	return out
}

func TestCompletions(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		line      int
		character int
		want      []string
	}{
		{
			name:      "roots",
			text:      "<",
			character: 1,
			want:      []string{"weblogic-ejb-jar", "weblogic-rdbms-jar"},
		},
		{
			name:      "children",
			text:      "<weblogic-ejb-jar>\n  <weblogic-enterprise-bean>\n    <pool>\n      <",
			line:      3,
			character: 7,
			want:      []string{"initial-beans-in-free-pool", "max-beans-in-free-pool", "idle-timeout-seconds"},
		},
		{
			name:      "closed siblings are skipped",
			text:      "<weblogic-ejb-jar><weblogic-enterprise-bean><pool></pool></weblogic-enterprise-bean><",
			character: 85,
			want:      ejbjar.ChildElements("weblogic-ejb-jar"),
		},
		{
			name:      "close tag",
			text:      "<weblogic-ejb-jar>\n  <pool>\n  </",
			line:      2,
			character: 4,
			want:      []string{"pool"},
		},
		{
			name:      "no trigger",
			text:      "<weblogic-ejb-jar>x",
			character: 19,
		},
		{
			name:      "close tag without open element",
			text:      "</",
			character: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := completions(tt.text, tt.line, tt.character)
			assert.Equal(t, tt.want, labels(got))
		})
	}
}

func TestCompletions_CloseTagInsertsBracket(t *testing.T) {
	items := completions("<pool></", 0, 8)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].InsertText)
	assert.Equal(t, "pool>", *items[0].InsertText)
	require.NotNil(t, items[0].Kind)
	assert.Equal(t, protocol.CompletionItemKindProperty, *items[0].Kind)
}

func TestCompletions_UnknownParent(t *testing.T) {
	items := completions("<weblogic-ejb-jar><ejb-name><", 0, 29)
	assert.Equal(t, ejbjar.ElementNames(), labels(items))
}

func TestURIToPath(t *testing.T) {
	assert.Equal(t, "/tmp/a b/weblogic-ejb-jar.xml", uriToPath("file:///tmp/a%20b/weblogic-ejb-jar.xml"))
	assert.Equal(t, "untitled:1", uriToPath("untitled:1"))
}
