package ejbjar

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var integerComparer = cmp.Comparer(func(a, b *Integer) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(&b.Int) == 0
})

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return data
}

func TestUnmarshal_Namespaced(t *testing.T) {
	var jar WeblogicEjbJar
	if err := UnmarshalFile(filepath.Join("testdata", "weblogic-ejb-jar-90.xml"), &jar); err != nil {
		t.Fatalf("UnmarshalFile() error = %v", err)
	}

	if jar.Description != "Order processing" {
		t.Errorf("Description = %q, want %q", jar.Description, "Order processing")
	}
	if len(jar.WeblogicEnterpriseBean) != 2 {
		t.Fatalf("len(WeblogicEnterpriseBean) = %d, want 2", len(jar.WeblogicEnterpriseBean))
	}

	order := jar.WeblogicEnterpriseBean[0]
	if order.ID != "OrderBean" {
		t.Errorf("bean ID = %q, want %q", order.ID, "OrderBean")
	}
	entity, ok := order.Descriptor.(*EntityDescriptor)
	if !ok {
		t.Fatalf("Descriptor = %T, want *EntityDescriptor", order.Descriptor)
	}
	cache, ok := entity.Cache.(*EntityCache)
	if !ok {
		t.Fatalf("Cache = %T, want *EntityCache", entity.Cache)
	}
	if cache.MaxBeansInCache == nil || cache.MaxBeansInCache.Int64() != 500 {
		t.Errorf("MaxBeansInCache = %v, want 500", cache.MaxBeansInCache)
	}
	if !cache.CacheBetweenTransactions.Value() {
		t.Errorf("CacheBetweenTransactions = %v, want true", cache.CacheBetweenTransactions)
	}
	if !entity.Persistence.DelayUpdatesUntilEndOfTx.Value() {
		t.Errorf("DelayUpdatesUntilEndOfTx = false, want true")
	}
	if !order.EnableCallByReference.Value() {
		t.Errorf("EnableCallByReference = false, want true")
	}

	pricing, ok := jar.WeblogicEnterpriseBean[1].Descriptor.(*StatelessSessionDescriptor)
	if !ok {
		t.Fatalf("Descriptor = %T, want *StatelessSessionDescriptor", jar.WeblogicEnterpriseBean[1].Descriptor)
	}
	if pricing.StatelessClustering.StatelessBeanIsClusterable.Value() {
		t.Errorf("StatelessBeanIsClusterable = true, want false")
	}

	roles := jar.SecurityRoleAssignment
	if diff := cmp.Diff([]string{"alice", "bob"}, roles[0].PrincipalName); diff != "" {
		t.Errorf("PrincipalName mismatch (-want +got):\n%s", diff)
	}
	if roles[1].ExternallyDefined == nil {
		t.Errorf("ExternallyDefined = nil, want marker")
	}

	retry := jar.RetryMethodsOnRollback[0]
	if retry.RetryCount.Int64() != 3 {
		t.Errorf("RetryCount = %v, want 3", retry.RetryCount)
	}
	if diff := cmp.Diff([]string{"java.lang.String", "int"}, retry.Method[0].MethodParams.MethodParam); diff != "" {
		t.Errorf("MethodParam mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"BEA-010001", "BEA-010054"}, jar.DisableWarning); diff != "" {
		t.Errorf("DisableWarning mismatch (-want +got):\n%s", diff)
	}
}

func TestDecoder_PublicIDs(t *testing.T) {
	dec := NewDecoder(bytes.NewReader(readTestdata(t, "weblogic-ejb-jar-81.xml")))
	var jar WeblogicEjbJar
	if err := dec.Decode(&jar); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := []string{"-//BEA Systems, Inc.//DTD WebLogic 8.1.0 EJB//EN"}
	if diff := cmp.Diff(want, dec.PublicIDs()); diff != "" {
		t.Errorf("PublicIDs() mismatch (-want +got):\n%s", diff)
	}

	stateful, ok := jar.WeblogicEnterpriseBean[0].Descriptor.(*StatefulSessionDescriptor)
	if !ok {
		t.Fatalf("Descriptor = %T, want *StatefulSessionDescriptor", jar.WeblogicEnterpriseBean[0].Descriptor)
	}
	if stateful.AllowConcurrentCalls == nil || stateful.AllowConcurrentCalls.Value() {
		t.Errorf("AllowConcurrentCalls = %v, want false", stateful.AllowConcurrentCalls)
	}
	mdb, ok := jar.WeblogicEnterpriseBean[1].Descriptor.(*MessageDrivenDescriptor)
	if !ok {
		t.Fatalf("Descriptor = %T, want *MessageDrivenDescriptor", jar.WeblogicEnterpriseBean[1].Descriptor)
	}
	if mdb.DestinationJNDIName != "jms/Quotes" {
		t.Errorf("DestinationJNDIName = %q, want %q", mdb.DestinationJNDIName, "jms/Quotes")
	}
}

func TestDecoder_NoPublicIDsForSchemaDocuments(t *testing.T) {
	dec := NewDecoder(bytes.NewReader(readTestdata(t, "weblogic-ejb-jar-90.xml")))
	if _, err := dec.DecodeElement(); err != nil {
		t.Fatalf("DecodeElement() error = %v", err)
	}
	if ids := dec.PublicIDs(); len(ids) != 0 {
		t.Errorf("PublicIDs() = %v, want none", ids)
	}
}

func TestUnmarshal_OracleNamespace(t *testing.T) {
	var jar WeblogicEjbJar
	if err := Unmarshal(readTestdata(t, "weblogic-ejb-jar-oracle.xml"), &jar); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if jar.XMLName.Space != Namespace {
		t.Errorf("XMLName.Space = %q, want %q", jar.XMLName.Space, Namespace)
	}
	bean := jar.WeblogicEnterpriseBean[0]
	if bean.EJBName != "InventoryEJB" {
		t.Errorf("EJBName = %q, want %q", bean.EJBName, "InventoryEJB")
	}
	ssd := bean.Descriptor.(*StatelessSessionDescriptor)
	if got := ssd.BusinessInterfaceJNDINameMap[0].JNDIName; got != "ejb/Inventory" {
		t.Errorf("JNDIName = %q, want %q", got, "ejb/Inventory")
	}
	if !jar.WorkManager[0].IgnoreStuckThreads.Value() {
		t.Errorf("IgnoreStuckThreads = false, want true")
	}
}

func TestUnmarshal_Rdbms(t *testing.T) {
	var jar WeblogicRdbmsJar
	if err := Unmarshal(readTestdata(t, "weblogic-rdbms-jar.xml"), &jar); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	bean := jar.WeblogicRdbmsBean[0]
	if len(bean.TableMap[0].FieldMap) != 2 {
		t.Errorf("len(FieldMap) = %d, want 2", len(bean.TableMap[0].FieldMap))
	}
	if diff := cmp.Diff([]string{"id", "total"}, bean.FieldGroup[0].CMPFields); diff != "" {
		t.Errorf("CMPFields mismatch (-want +got):\n%s", diff)
	}

	ql, ok := bean.WeblogicQuery[0].Query.(*EjbQlQuery)
	if !ok {
		t.Fatalf("Query = %T, want *EjbQlQuery", bean.WeblogicQuery[0].Query)
	}
	if want := "SELECT OBJECT(o) FROM OrderEJB o WHERE o.total > ?1"; ql.WeblogicQL != want {
		t.Errorf("WeblogicQL = %q, want %q", ql.WeblogicQL, want)
	}
	sql, ok := bean.WeblogicQuery[1].Query.(*SqlQuery)
	if !ok {
		t.Fatalf("Query = %T, want *SqlQuery", bean.WeblogicQuery[1].Query)
	}
	if sql.DatabaseSpecificSQL[0].DatabaseType != "ORACLE" {
		t.Errorf("DatabaseType = %q, want ORACLE", sql.DatabaseSpecificSQL[0].DatabaseType)
	}
	if jar.WeblogicRdbmsRelation[0].WeblogicRelationshipRole[0].DBCascadeDelete == nil {
		t.Errorf("DBCascadeDelete = nil, want marker")
	}
}

func TestMarshal_Canonical(t *testing.T) {
	jar := &WeblogicEjbJar{
		WeblogicEnterpriseBean: []WeblogicEnterpriseBean{{
			EJBName:               "A",
			Descriptor:            &StatelessSessionDescriptor{},
			EnableCallByReference: BoolOf(true),
		}},
		EnableBeanClassRedeploy: BoolOf(false),
	}

	got, err := Marshal(jar)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `<?xml version="1.0" encoding="UTF-8"?>
<weblogic-ejb-jar xmlns="http://www.bea.com/ns/weblogic/90">
  <weblogic-enterprise-bean>
    <ejb-name>A</ejb-name>
    <stateless-session-descriptor></stateless-session-descriptor>
    <enable-call-by-reference>true</enable-call-by-reference>
  </weblogic-enterprise-bean>
  <enable-bean-class-redeploy>false</enable-bean-class-redeploy>
</weblogic-ejb-jar>
`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("Marshal() mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	tests := []struct {
		file string
		new  func() any
	}{
		{"weblogic-ejb-jar-81.xml", func() any { return new(WeblogicEjbJar) }},
		{"weblogic-ejb-jar-90.xml", func() any { return new(WeblogicEjbJar) }},
		{"weblogic-ejb-jar-oracle.xml", func() any { return new(WeblogicEjbJar) }},
		{"weblogic-rdbms-jar.xml", func() any { return new(WeblogicRdbmsJar) }},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			first := tt.new()
			if err := Unmarshal(readTestdata(t, tt.file), first); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			out, err := Marshal(first)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if bytes.Contains(out, []byte("DOCTYPE")) {
				t.Errorf("Marshal() output keeps the DOCTYPE:\n%s", out)
			}
			if !bytes.Contains(out, []byte(`xmlns="`+Namespace+`"`)) {
				t.Errorf("Marshal() output lacks the namespace declaration:\n%s", out)
			}

			second := tt.new()
			if err := Unmarshal(out, second); err != nil {
				t.Fatalf("Unmarshal(Marshal()) error = %v", err)
			}
			if diff := cmp.Diff(first, second, integerComparer); diff != "" {
				t.Errorf("round trip mismatch (-first +second):\n%s", diff)
			}
		})
	}
}

func TestMarshal_BooleansAreCanonical(t *testing.T) {
	var jar WeblogicEjbJar
	if err := Unmarshal(readTestdata(t, "weblogic-ejb-jar-90.xml"), &jar); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	out, err := Marshal(&jar)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, want := range []string{
		"<cache-between-transactions>true</cache-between-transactions>",
		"<delay-updates-until-end-of-tx>true</delay-updates-until-end-of-tx>",
		"<enable-call-by-reference>true</enable-call-by-reference>",
		"<stateless-bean-is-clusterable>false</stateless-bean-is-clusterable>",
	} {
		if !bytes.Contains(out, []byte(want)) {
			t.Errorf("Marshal() output lacks %s", want)
		}
	}
}

func TestDecodeElement_Fragment(t *testing.T) {
	doc := `<pool><max-beans-in-free-pool>3</max-beans-in-free-pool></pool>`
	v, err := NewDecoder(strings.NewReader(doc)).DecodeElement()
	if err != nil {
		t.Fatalf("DecodeElement() error = %v", err)
	}
	pool, ok := v.(*Pool)
	if !ok {
		t.Fatalf("DecodeElement() = %T, want *Pool", v)
	}
	if pool.MaxBeansInFreePool.Int64() != 3 {
		t.Errorf("MaxBeansInFreePool = %v, want 3", pool.MaxBeansInFreePool)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "", ErrEmptyDocument},
		{"blank", " \n\t", ErrEmptyDocument},
		{"unknown root", "<ejb-jar/>", ErrUnknownElement},
		{
			"two bean descriptors",
			`<weblogic-enterprise-bean>
  <ejb-name>A</ejb-name>
  <entity-descriptor/>
  <stateless-session-descriptor/>
</weblogic-enterprise-bean>`,
			ErrChoiceConflict,
		},
		{
			"two caches",
			`<entity-descriptor><entity-cache/><entity-cache-ref><entity-cache-name>c</entity-cache-name></entity-cache-ref></entity-descriptor>`,
			ErrChoiceConflict,
		},
		{
			"two queries",
			`<weblogic-query><query-method><method-name>f</method-name></query-method><ejb-ql-query><weblogic-ql>q</weblogic-ql></ejb-ql-query><sql-query/></weblogic-query>`,
			ErrChoiceConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDecoder(strings.NewReader(tt.doc)).DecodeElement()
			if !errors.Is(err, tt.want) {
				t.Errorf("DecodeElement() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEncode_UnknownType(t *testing.T) {
	_, err := Marshal(struct{ X int }{1})
	if !errors.Is(err, ErrUnknownElement) {
		t.Errorf("Marshal() error = %v, want %v", err, ErrUnknownElement)
	}
}

func TestDecoder_Validation(t *testing.T) {
	v := NewValidator()

	var seen []Event
	dec := NewDecoder(bytes.NewReader(readTestdata(t, "weblogic-ejb-jar-90.xml")),
		WithValidation(v),
		WithEventHandler(func(e Event) { seen = append(seen, e) }),
	)
	doc, err := dec.DecodeDocument()
	if err != nil {
		t.Fatalf("DecodeDocument() error = %v", err)
	}
	if !doc.Valid() {
		t.Errorf("Events = %v, want none", doc.Events)
	}
	if len(seen) != 0 {
		t.Errorf("handler saw %d events, want 0", len(seen))
	}

	invalid := `<weblogic-ejb-jar>
  <weblogic-enterprise-bean>
    <ejb-name>A</ejb-name>
    <enable-call-by-reference>maybe</enable-call-by-reference>
  </weblogic-enterprise-bean>
</weblogic-ejb-jar>`
	dec = NewDecoder(strings.NewReader(invalid), WithValidation(v),
		WithEventHandler(func(e Event) { seen = append(seen, e) }))
	doc, err = dec.DecodeDocument()
	if err != nil {
		t.Fatalf("DecodeDocument() error = %v, want events only", err)
	}
	if doc.Valid() {
		t.Fatalf("Valid() = true, want validation events")
	}
	if len(seen) != len(doc.Events) {
		t.Errorf("handler saw %d events, want %d", len(seen), len(doc.Events))
	}
	jar := doc.Value.(*WeblogicEjbJar)
	if jar.WeblogicEnterpriseBean[0].EnableCallByReference.Value() {
		t.Errorf("EnableCallByReference = true, want false for an unrecognized literal")
	}
}
