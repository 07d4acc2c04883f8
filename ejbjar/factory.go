package ejbjar

import (
	"reflect"
	"slices"
	"sort"
	"strings"
)

// elements maps every element name the model binds to a constructor for its
// type. Several names may share a type (call-property and stub-property).
var elements = map[string]func() any{
	"automatic-key-generation":         func() any { return new(AutomaticKeyGeneration) },
	"business-interface-jndi-name-map": func() any { return new(BusinessInterfaceJndiNameMap) },
	"caching-element":                  func() any { return new(CachingElement) },
	"call-property":                    func() any { return new(PropertyNamevalue) },
	"column-map":                       func() any { return new(ColumnMap) },
	"compatibility":                    func() any { return new(Compatibility) },
	"database-specific-sql":            func() any { return new(DatabaseSpecificSql) },
	"ejb-ql-query":                     func() any { return new(EjbQlQuery) },
	"ejb-reference-description":        func() any { return new(EjbReferenceDescription) },
	"entity-cache":                     func() any { return new(EntityCache) },
	"entity-cache-ref":                 func() any { return new(EntityCacheRef) },
	"entity-clustering":                func() any { return new(EntityClustering) },
	"entity-descriptor":                func() any { return new(EntityDescriptor) },
	"field-group":                      func() any { return new(FieldGroup) },
	"field-map":                        func() any { return new(FieldMap) },
	"idempotent-methods":               func() any { return new(IdempotentMethods) },
	"iiop-security-descriptor":         func() any { return new(IiopSecurityDescriptor) },
	"invalidation-target":              func() any { return new(InvalidationTarget) },
	"message-destination-descriptor":   func() any { return new(MessageDestinationDescriptor) },
	"message-driven-descriptor":        func() any { return new(MessageDrivenDescriptor) },
	"method":                           func() any { return new(Method) },
	"method-params":                    func() any { return new(MethodParams) },
	"persistence":                      func() any { return new(Persistence) },
	"persistence-use":                  func() any { return new(PersistenceUse) },
	"pool":                             func() any { return new(Pool) },
	"port-info":                        func() any { return new(PortInfo) },
	"query-method":                     func() any { return new(QueryMethod) },
	"relationship-caching":             func() any { return new(RelationshipCaching) },
	"relationship-role-map":            func() any { return new(RelationshipRoleMap) },
	"resource-description":             func() any { return new(ResourceDescription) },
	"resource-env-description":         func() any { return new(ResourceEnvDescription) },
	"retry-methods-on-rollback":        func() any { return new(RetryMethodsOnRollback) },
	"run-as-role-assignment":           func() any { return new(RunAsRoleAssignment) },
	"security-permission":              func() any { return new(SecurityPermission) },
	"security-plugin":                  func() any { return new(SecurityPlugin) },
	"security-role-assignment":         func() any { return new(SecurityRoleAssignment) },
	"service-reference-description":    func() any { return new(ServiceReferenceDescription) },
	"sql-query":                        func() any { return new(SqlQuery) },
	"sql-shape":                        func() any { return new(SqlShape) },
	"stateful-session-cache":           func() any { return new(StatefulSessionCache) },
	"stateful-session-clustering":      func() any { return new(StatefulSessionClustering) },
	"stateful-session-descriptor":      func() any { return new(StatefulSessionDescriptor) },
	"stateless-clustering":             func() any { return new(StatelessClustering) },
	"stateless-session-descriptor":     func() any { return new(StatelessSessionDescriptor) },
	"stub-property":                    func() any { return new(PropertyNamevalue) },
	"table":                            func() any { return new(Table) },
	"table-map":                        func() any { return new(TableMap) },
	"timer-descriptor":                 func() any { return new(TimerDescriptor) },
	"transaction-descriptor":           func() any { return new(TransactionDescriptor) },
	"transaction-isolation":            func() any { return new(TransactionIsolation) },
	"transport-requirements":           func() any { return new(TransportRequirements) },
	"weblogic-compatibility":           func() any { return new(WeblogicCompatibility) },
	"weblogic-ejb-jar":                 func() any { return new(WeblogicEjbJar) },
	"weblogic-enterprise-bean":         func() any { return new(WeblogicEnterpriseBean) },
	"weblogic-query":                   func() any { return new(WeblogicQuery) },
	"weblogic-rdbms-bean":              func() any { return new(WeblogicRdbmsBean) },
	"weblogic-rdbms-jar":               func() any { return new(WeblogicRdbmsJar) },
	"weblogic-rdbms-relation":          func() any { return new(WeblogicRdbmsRelation) },
	"weblogic-relationship-role":       func() any { return new(WeblogicRelationshipRole) },
	"work-manager":                     func() any { return new(WorkManager) },
}

var roots = []string{"weblogic-ejb-jar", "weblogic-rdbms-jar"}

var (
	canonicalNames map[reflect.Type]string
	childNames     map[string][]string
)

// wireTypes stands in for model types whose XML shape differs from their Go
// shape because of a tagged choice.
var wireTypes = map[reflect.Type]reflect.Type{
	reflect.TypeOf(WeblogicEnterpriseBean{}): reflect.TypeOf(enterpriseBeanXML{}),
	reflect.TypeOf(EntityDescriptor{}):       reflect.TypeOf(entityDescriptorXML{}),
	reflect.TypeOf(WeblogicQuery{}):          reflect.TypeOf(weblogicQueryXML{}),
}

func init() {
	canonicalNames = make(map[reflect.Type]string)
	childNames = make(map[string][]string)
	for _, name := range ElementNames() {
		t := reflect.TypeOf(elements[name]()).Elem()
		if _, ok := canonicalNames[t]; !ok {
			canonicalNames[t] = name
		}
		childNames[name] = xmlChildren(t)
	}
}

// NewElement returns a pointer to a fresh value of the type bound to the
// named element.
func NewElement(name string) (any, bool) {
	ctor, ok := elements[name]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// ElementNames returns the registered element names in sorted order.
func ElementNames() []string {
	names := make([]string, 0, len(elements))
	for name := range elements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RootElements returns the names of the document roots.
func RootElements() []string {
	return slices.Clone(roots)
}

// IsRoot reports whether name is a document root.
func IsRoot(name string) bool {
	return slices.Contains(roots, name)
}

// ElementName returns the element name a model value marshals under. For
// types bound to several names the alphabetically first one is returned.
func ElementName(v any) (string, bool) {
	t := reflect.TypeOf(v)
	if t == nil {
		return "", false
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name, ok := canonicalNames[t]
	return name, ok
}

// ChildElements lists, in document order, the child element names allowed
// under the named element. Leaf elements have none.
func ChildElements(name string) []string {
	return slices.Clone(childNames[name])
}

func xmlChildren(t reflect.Type) []string {
	if w, ok := wireTypes[t]; ok {
		t = w
	}
	var names []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("xml")
		if tag == "" || tag == "-" || f.Name == "XMLName" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if strings.Contains(opts, "attr") || name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}
