package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dhamidi/wls/ejbjar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testdata = "../../ejbjar/testdata"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func copyTestdata(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(testdata, name))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestElementsCmd(t *testing.T) {
	out, err := run(t, "elements", "--roots")
	require.NoError(t, err)
	assert.Equal(t, "weblogic-ejb-jar\nweblogic-rdbms-jar\n", out)

	out, err = run(t, "elements", "--children", "pool")
	require.NoError(t, err)
	assert.Equal(t, "initial-beans-in-free-pool\nmax-beans-in-free-pool\nidle-timeout-seconds\n", out)

	_, err = run(t, "elements", "--children", "nope")
	assert.ErrorIs(t, err, ejbjar.ErrUnknownElement)
}

func TestParseCmd(t *testing.T) {
	out, err := run(t, "parse", "-f", "yaml", filepath.Join(testdata, "weblogic-ejb-jar-81.xml"))
	require.NoError(t, err)
	assert.Contains(t, out, "root: weblogic-ejb-jar")
	assert.Contains(t, out, "-//BEA Systems, Inc.//DTD WebLogic 8.1.0 EJB//EN")
	assert.Contains(t, out, "TraderEJB")

	_, err = run(t, "parse", "-f", "toml", filepath.Join(testdata, "weblogic-ejb-jar-81.xml"))
	assert.Error(t, err)
}

func TestFmtCmd_Write(t *testing.T) {
	path := copyTestdata(t, "weblogic-ejb-jar-81.xml")

	_, err := run(t, "fmt", "-w", path)
	require.NoError(t, err)

	formatted, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(formatted), "DOCTYPE")
	assert.Contains(t, string(formatted), `xmlns="`+ejbjar.Namespace+`"`)
	assert.Contains(t, string(formatted), "<allow-concurrent-calls>false</allow-concurrent-calls>")

	out, err := run(t, "fmt", path)
	require.NoError(t, err)
	assert.Equal(t, string(formatted), out)
}

func TestFmtCmd_NamespaceFromConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "wls.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("namespace: urn:example\n"), 0o644))

	out, err := run(t, "--config", cfg, "fmt", filepath.Join(testdata, "weblogic-ejb-jar-90.xml"))
	require.NoError(t, err)
	assert.Contains(t, out, `xmlns="urn:example"`)

	out, err = run(t, "--config", cfg, "fmt", "--namespace", "urn:flag", filepath.Join(testdata, "weblogic-ejb-jar-90.xml"))
	require.NoError(t, err)
	assert.Contains(t, out, `xmlns="urn:flag"`)
}

func TestValidateCmd(t *testing.T) {
	path := filepath.Join(testdata, "weblogic-ejb-jar-90.xml")
	out, err := run(t, "validate", path)
	require.NoError(t, err)
	assert.Equal(t, path+": ok\n", out)

	bad := filepath.Join(t.TempDir(), "bad.xml")
	require.NoError(t, os.WriteFile(bad, []byte(
		"<weblogic-ejb-jar>\n  <weblogic-enterprise-bean>\n    <no-such-element/>\n  </weblogic-enterprise-bean>\n</weblogic-ejb-jar>\n"), 0o644))

	out, err = run(t, "validate", bad)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, bad+":"), out)

	_, err = run(t, "validate", "--strict", bad)
	assert.Error(t, err)
}

func TestCheckCmd(t *testing.T) {
	out, err := run(t, "check", filepath.Join(testdata, "weblogic-ejb-jar-90.xml"))
	require.NoError(t, err)
	assert.Empty(t, out)

	path := filepath.Join(t.TempDir(), "dup.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<weblogic-ejb-jar>
  <weblogic-enterprise-bean><ejb-name>A</ejb-name></weblogic-enterprise-bean>
  <weblogic-enterprise-bean><ejb-name>A</ejb-name></weblogic-enterprise-bean>
</weblogic-ejb-jar>`), 0o644))

	out, err = run(t, "check", path)
	assert.Error(t, err)
	assert.Contains(t, out, ejbjar.RuleDuplicateEJBName)
}

func TestConfigErrors(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "elements")
	assert.Error(t, err)
}
