package ejbjar

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCheck_CleanDocuments(t *testing.T) {
	tests := []struct {
		file string
		v    any
	}{
		{"weblogic-ejb-jar-90.xml", new(WeblogicEjbJar)},
		{"weblogic-ejb-jar-81.xml", new(WeblogicEjbJar)},
		{"weblogic-rdbms-jar.xml", new(WeblogicRdbmsJar)},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			if err := Unmarshal(readTestdata(t, tt.file), tt.v); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			for _, f := range Check(tt.v) {
				t.Errorf("unexpected finding: %s", f)
			}
		})
	}
}

func TestCheck_EjbJar(t *testing.T) {
	doc := `<weblogic-ejb-jar>
  <weblogic-enterprise-bean id="x">
    <ejb-name>A</ejb-name>
    <entity-descriptor>
      <invalidation-target><ejb-name>Missing</ejb-name></invalidation-target>
    </entity-descriptor>
    <resource-description id="x">
      <res-ref-name>jdbc/a</res-ref-name>
      <jndi-name>A</jndi-name>
      <resource-link>B</resource-link>
    </resource-description>
  </weblogic-enterprise-bean>
  <weblogic-enterprise-bean>
    <ejb-name>A</ejb-name>
    <message-driven-descriptor>
      <resource-adapter-jndi-name>ra</resource-adapter-jndi-name>
      <destination-jndi-name>q</destination-jndi-name>
    </message-driven-descriptor>
  </weblogic-enterprise-bean>
  <security-role-assignment>
    <role-name></role-name>
    <principal-name>p</principal-name>
    <externally-defined/>
  </security-role-assignment>
  <transaction-isolation>
    <isolation-level>TransactionSerializable</isolation-level>
    <method><ejb-name>Ghost</ejb-name><method-name>*</method-name></method>
  </transaction-isolation>
</weblogic-ejb-jar>`

	var jar WeblogicEjbJar
	if err := Unmarshal([]byte(doc), &jar); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	got := Check(&jar)
	want := []Finding{
		{Path: "weblogic-ejb-jar/weblogic-enterprise-bean[2]/ejb-name", Rule: RuleDuplicateEJBName},
		{Path: "weblogic-ejb-jar/weblogic-enterprise-bean[1]/entity-descriptor/invalidation-target/ejb-name", Rule: RuleUnknownEJBName},
		{Path: "weblogic-ejb-jar/weblogic-enterprise-bean[1]/resource-description[1]", Rule: RuleExclusive},
		{Path: "weblogic-ejb-jar/weblogic-enterprise-bean[2]/message-driven-descriptor", Rule: RuleExclusive},
		{Path: "weblogic-ejb-jar/security-role-assignment[1]/role-name", Rule: RuleMissingValue},
		{Path: "weblogic-ejb-jar/security-role-assignment[1]", Rule: RuleExclusive},
		{Path: "weblogic-ejb-jar/transaction-isolation[1]/method[1]/ejb-name", Rule: RuleUnknownEJBName},
		{Path: "weblogic-ejb-jar/weblogic-enterprise-bean[1]/resource-description[1]", Rule: RuleDuplicateID},
	}
	ignoreMessage := cmp.FilterPath(func(p cmp.Path) bool {
		return p.Last().String() == ".Message"
	}, cmp.Ignore())
	if diff := cmp.Diff(want, got, ignoreMessage); diff != "" {
		t.Errorf("Check() mismatch (-want +got):\n%s", diff)
	}
	for _, f := range got {
		if f.Message == "" {
			t.Errorf("finding %s has no message", f.Path)
		}
	}
}

func TestCheck_RdbmsJar(t *testing.T) {
	jar := &WeblogicRdbmsJar{
		WeblogicRdbmsBean: []WeblogicRdbmsBean{
			{EJBName: "A", DataSourceJNDIName: "ds", TableMap: []TableMap{{TableName: "T"}}},
			{EJBName: "", DataSourceJNDIName: " ", TableMap: []TableMap{{}}},
		},
	}

	var rules []string
	for _, f := range Check(jar) {
		rules = append(rules, f.Rule+" "+f.Path)
	}
	want := []string{
		"missing-value weblogic-rdbms-jar/weblogic-rdbms-bean[2]/ejb-name",
		"missing-value weblogic-rdbms-jar/weblogic-rdbms-bean[2]/data-source-jndi-name",
		"missing-value weblogic-rdbms-jar/weblogic-rdbms-bean[2]/table-map[1]/table-name",
	}
	if diff := cmp.Diff(want, rules); diff != "" {
		t.Errorf("Check() mismatch (-want +got):\n%s", diff)
	}
}

func TestCheck_ValueRoot(t *testing.T) {
	jar := WeblogicEjbJar{
		WeblogicEnterpriseBean: []WeblogicEnterpriseBean{{EJBName: "A"}, {EJBName: "A"}},
	}
	got := Check(jar)
	if len(got) != 1 || got[0].Rule != RuleDuplicateEJBName {
		t.Errorf("Check() = %v, want one %s finding", got, RuleDuplicateEJBName)
	}
	if !strings.Contains(got[0].Message, `"A"`) {
		t.Errorf("Message = %q, want it to name the bean", got[0].Message)
	}
}

func TestCheck_NonModel(t *testing.T) {
	if got := Check("weblogic-ejb-jar"); got != nil {
		t.Errorf("Check(string) = %v, want nil", got)
	}
}
