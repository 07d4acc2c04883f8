package ejbjar

import (
	"fmt"
	"reflect"
	"strings"
)

// Rules reported by Check.
const (
	RuleDuplicateEJBName = "duplicate-ejb-name"
	RuleDuplicateID      = "duplicate-id"
	RuleUnknownEJBName   = "unknown-ejb-name"
	RuleExclusive        = "exclusive-elements"
	RuleMissingValue     = "missing-value"
)

// Finding is a consistency problem the schema cannot express.
type Finding struct {
	Path    string `json:"path" yaml:"path"`
	Rule    string `json:"rule" yaml:"rule"`
	Message string `json:"message" yaml:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s (%s)", f.Path, f.Message, f.Rule)
}

// Check inspects a decoded document root and returns its findings in
// document order. Values other than the two roots yield no findings beyond
// duplicate ids.
func Check(doc any) []Finding {
	name, ok := ElementName(doc)
	if !ok {
		return nil
	}
	c := &checker{ids: make(map[string]string)}

	switch d := doc.(type) {
	case *WeblogicEjbJar:
		c.ejbJar(name, d)
	case WeblogicEjbJar:
		c.ejbJar(name, &d)
	case *WeblogicRdbmsJar:
		c.rdbmsJar(name, d)
	case WeblogicRdbmsJar:
		c.rdbmsJar(name, &d)
	}
	c.walk(reflect.ValueOf(doc), name)
	return c.findings
}

type checker struct {
	findings []Finding
	ids      map[string]string
}

func (c *checker) report(path, rule, format string, args ...any) {
	c.findings = append(c.findings, Finding{
		Path:    path,
		Rule:    rule,
		Message: fmt.Sprintf(format, args...),
	})
}

func (c *checker) required(path, element, value string) {
	if strings.TrimSpace(value) == "" {
		c.report(path+"/"+element, RuleMissingValue, "<%s> is empty", element)
	}
}

func (c *checker) exclusive(path, a, b string, aSet, bSet bool) {
	if aSet && bSet {
		c.report(path, RuleExclusive, "<%s> and <%s> are both set", a, b)
	}
}

// names checks a list of ejb-name values for blanks and duplicates and
// returns the set of names declared.
func (c *checker) names(paths, names []string) map[string]bool {
	declared := make(map[string]bool, len(names))
	for i, name := range names {
		c.required(paths[i], "ejb-name", name)
		if name == "" {
			continue
		}
		if declared[name] {
			c.report(paths[i]+"/ejb-name", RuleDuplicateEJBName, "ejb-name %q is declared more than once", name)
		}
		declared[name] = true
	}
	return declared
}

func (c *checker) reference(path, name string, declared map[string]bool) {
	if name == "" || name == "*" || declared[name] {
		return
	}
	c.report(path+"/ejb-name", RuleUnknownEJBName, "no enterprise bean named %q", name)
}

func (c *checker) methods(path string, methods []Method, declared map[string]bool) {
	for i, m := range methods {
		p := fmt.Sprintf("%s/method[%d]", path, i+1)
		c.required(p, "ejb-name", m.EJBName)
		c.reference(p, m.EJBName, declared)
	}
}

func (c *checker) ejbJar(root string, jar *WeblogicEjbJar) {
	paths := make([]string, len(jar.WeblogicEnterpriseBean))
	names := make([]string, len(jar.WeblogicEnterpriseBean))
	for i, b := range jar.WeblogicEnterpriseBean {
		paths[i] = fmt.Sprintf("%s/weblogic-enterprise-bean[%d]", root, i+1)
		names[i] = b.EJBName
	}
	declared := c.names(paths, names)

	for i, b := range jar.WeblogicEnterpriseBean {
		p := paths[i]
		switch d := b.Descriptor.(type) {
		case *EntityDescriptor:
			if d.InvalidationTarget != nil {
				c.reference(p+"/entity-descriptor/invalidation-target", d.InvalidationTarget.EJBName, declared)
			}
		case *MessageDrivenDescriptor:
			c.exclusive(p+"/message-driven-descriptor", "resource-adapter-jndi-name", "destination-jndi-name",
				d.ResourceAdapterJNDIName != "", d.DestinationJNDIName != "")
		}
		for j, r := range b.ResourceDescription {
			c.exclusive(fmt.Sprintf("%s/resource-description[%d]", p, j+1), "jndi-name", "resource-link",
				r.JNDIName != "", r.ResourceLink != "")
		}
		for j, r := range b.ResourceEnvDescription {
			c.exclusive(fmt.Sprintf("%s/resource-env-description[%d]", p, j+1), "jndi-name", "resource-link",
				r.JNDIName != "", r.ResourceLink != "")
		}
	}

	for i, a := range jar.SecurityRoleAssignment {
		p := fmt.Sprintf("%s/security-role-assignment[%d]", root, i+1)
		c.required(p, "role-name", a.RoleName)
		c.exclusive(p, "principal-name", "externally-defined", len(a.PrincipalName) > 0, a.ExternallyDefined != nil)
	}
	for i, a := range jar.RunAsRoleAssignment {
		c.required(fmt.Sprintf("%s/run-as-role-assignment[%d]", root, i+1), "role-name", a.RoleName)
	}
	for i, t := range jar.TransactionIsolation {
		c.methods(fmt.Sprintf("%s/transaction-isolation[%d]", root, i+1), t.Method, declared)
	}
	if jar.IdempotentMethods != nil {
		c.methods(root+"/idempotent-methods", jar.IdempotentMethods.Method, declared)
	}
	for i, r := range jar.RetryMethodsOnRollback {
		c.methods(fmt.Sprintf("%s/retry-methods-on-rollback[%d]", root, i+1), r.Method, declared)
	}
	for i, m := range jar.MessageDestinationDescriptor {
		c.exclusive(fmt.Sprintf("%s/message-destination-descriptor[%d]", root, i+1),
			"destination-jndi-name", "destination-resource-link",
			m.DestinationJNDIName != "", m.DestinationResourceLink != "")
	}
}

func (c *checker) rdbmsJar(root string, jar *WeblogicRdbmsJar) {
	paths := make([]string, len(jar.WeblogicRdbmsBean))
	names := make([]string, len(jar.WeblogicRdbmsBean))
	for i, b := range jar.WeblogicRdbmsBean {
		paths[i] = fmt.Sprintf("%s/weblogic-rdbms-bean[%d]", root, i+1)
		names[i] = b.EJBName
	}
	c.names(paths, names)

	for i, b := range jar.WeblogicRdbmsBean {
		c.required(paths[i], "data-source-jndi-name", b.DataSourceJNDIName)
		for j, t := range b.TableMap {
			c.required(fmt.Sprintf("%s/table-map[%d]", paths[i], j+1), "table-name", t.TableName)
		}
	}
}

// walk visits every model struct below v and records its id attribute.
func (c *checker) walk(v reflect.Value, path string) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}
	if _, ok := canonicalNames[v.Type()]; !ok {
		return
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := v.Field(i)
		if f.Name == "ID" {
			c.id(path, fv.String())
			continue
		}
		if f.Type.Kind() == reflect.Interface {
			if fv.IsNil() {
				continue
			}
			if name, ok := ElementName(fv.Interface()); ok {
				c.walk(fv, path+"/"+name)
			}
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("xml"), ",")
		if name == "" || name == "-" || f.Name == "XMLName" {
			continue
		}
		if fv.Kind() == reflect.Slice {
			for j := 0; j < fv.Len(); j++ {
				c.walk(fv.Index(j), fmt.Sprintf("%s/%s[%d]", path, name, j+1))
			}
			continue
		}
		c.walk(fv, path+"/"+name)
	}
}

func (c *checker) id(path, id string) {
	if id == "" {
		return
	}
	if first, ok := c.ids[id]; ok {
		c.report(path, RuleDuplicateID, "id %q is already used by %s", id, first)
		return
	}
	c.ids[id] = path
}
