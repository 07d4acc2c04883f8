package ejbjar

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// BeanDescriptor is the kind-specific part of a WeblogicEnterpriseBean: one of
// *EntityDescriptor, *StatelessSessionDescriptor, *StatefulSessionDescriptor
// or *MessageDrivenDescriptor.
type BeanDescriptor interface {
	beanDescriptor()
}

func (*EntityDescriptor) beanDescriptor()           {}
func (*StatelessSessionDescriptor) beanDescriptor() {}
func (*StatefulSessionDescriptor) beanDescriptor()  {}
func (*MessageDrivenDescriptor) beanDescriptor()    {}

// EntityCacheChoice is either an *EntityCache or an *EntityCacheRef.
type EntityCacheChoice interface {
	entityCache()
}

func (*EntityCache) entityCache()    {}
func (*EntityCacheRef) entityCache() {}

// QueryChoice is either an *EjbQlQuery or an *SqlQuery.
type QueryChoice interface {
	query()
}

func (*EjbQlQuery) query() {}
func (*SqlQuery) query()   {}

type branch struct {
	name string
	set  bool
}

func exclusive(parent string, branches ...branch) error {
	var present []string
	for _, b := range branches {
		if b.set {
			present = append(present, "<"+b.name+">")
		}
	}
	if len(present) > 1 {
		return fmt.Errorf("%w: <%s> has %s", ErrChoiceConflict, parent, strings.Join(present, " and "))
	}
	return nil
}

type enterpriseBeanXML struct {
	ID                          string                        `xml:"id,attr,omitempty"`
	EJBName                     string                        `xml:"ejb-name"`
	EntityDescriptor            *EntityDescriptor             `xml:"entity-descriptor,omitempty"`
	StatelessSessionDescriptor  *StatelessSessionDescriptor   `xml:"stateless-session-descriptor,omitempty"`
	StatefulSessionDescriptor   *StatefulSessionDescriptor    `xml:"stateful-session-descriptor,omitempty"`
	MessageDrivenDescriptor     *MessageDrivenDescriptor      `xml:"message-driven-descriptor,omitempty"`
	TransactionDescriptor       *TransactionDescriptor        `xml:"transaction-descriptor,omitempty"`
	IIOPSecurityDescriptor      *IiopSecurityDescriptor       `xml:"iiop-security-descriptor,omitempty"`
	ResourceDescription         []ResourceDescription         `xml:"resource-description"`
	ResourceEnvDescription      []ResourceEnvDescription      `xml:"resource-env-description"`
	EJBReferenceDescription     []EjbReferenceDescription     `xml:"ejb-reference-description"`
	ServiceReferenceDescription []ServiceReferenceDescription `xml:"service-reference-description"`
	EnableCallByReference       *Bool                         `xml:"enable-call-by-reference,omitempty"`
	NetworkAccessPoint          string                        `xml:"network-access-point,omitempty"`
	ClientsOnSameServer         *Bool                         `xml:"clients-on-same-server,omitempty"`
	RunAsPrincipalName          string                        `xml:"run-as-principal-name,omitempty"`
	CreateAsPrincipalName       string                        `xml:"create-as-principal-name,omitempty"`
	RemoveAsPrincipalName       string                        `xml:"remove-as-principal-name,omitempty"`
	PassivateAsPrincipalName    string                        `xml:"passivate-as-principal-name,omitempty"`
	JNDIName                    string                        `xml:"jndi-name,omitempty"`
	LocalJNDIName               string                        `xml:"local-jndi-name,omitempty"`
	DispatchPolicy              string                        `xml:"dispatch-policy,omitempty"`
	RemoteClientTimeout         *Integer                      `xml:"remote-client-timeout,omitempty"`
	StickToFirstServer          *Bool                         `xml:"stick-to-first-server,omitempty"`
}

func (b *WeblogicEnterpriseBean) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var w enterpriseBeanXML
	if err := d.DecodeElement(&w, &start); err != nil {
		return err
	}
	err := exclusive(start.Name.Local,
		branch{"entity-descriptor", w.EntityDescriptor != nil},
		branch{"stateless-session-descriptor", w.StatelessSessionDescriptor != nil},
		branch{"stateful-session-descriptor", w.StatefulSessionDescriptor != nil},
		branch{"message-driven-descriptor", w.MessageDrivenDescriptor != nil},
	)
	if err != nil {
		return err
	}

	*b = WeblogicEnterpriseBean{
		ID:                          w.ID,
		EJBName:                     w.EJBName,
		TransactionDescriptor:       w.TransactionDescriptor,
		IIOPSecurityDescriptor:      w.IIOPSecurityDescriptor,
		ResourceDescription:         w.ResourceDescription,
		ResourceEnvDescription:      w.ResourceEnvDescription,
		EJBReferenceDescription:     w.EJBReferenceDescription,
		ServiceReferenceDescription: w.ServiceReferenceDescription,
		EnableCallByReference:       w.EnableCallByReference,
		NetworkAccessPoint:          w.NetworkAccessPoint,
		ClientsOnSameServer:         w.ClientsOnSameServer,
		RunAsPrincipalName:          w.RunAsPrincipalName,
		CreateAsPrincipalName:       w.CreateAsPrincipalName,
		RemoveAsPrincipalName:       w.RemoveAsPrincipalName,
		PassivateAsPrincipalName:    w.PassivateAsPrincipalName,
		JNDIName:                    w.JNDIName,
		LocalJNDIName:               w.LocalJNDIName,
		DispatchPolicy:              w.DispatchPolicy,
		RemoteClientTimeout:         w.RemoteClientTimeout,
		StickToFirstServer:          w.StickToFirstServer,
	}
	switch {
	case w.EntityDescriptor != nil:
		b.Descriptor = w.EntityDescriptor
	case w.StatelessSessionDescriptor != nil:
		b.Descriptor = w.StatelessSessionDescriptor
	case w.StatefulSessionDescriptor != nil:
		b.Descriptor = w.StatefulSessionDescriptor
	case w.MessageDrivenDescriptor != nil:
		b.Descriptor = w.MessageDrivenDescriptor
	}
	return nil
}

func (b WeblogicEnterpriseBean) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	w := enterpriseBeanXML{
		ID:                          b.ID,
		EJBName:                     b.EJBName,
		TransactionDescriptor:       b.TransactionDescriptor,
		IIOPSecurityDescriptor:      b.IIOPSecurityDescriptor,
		ResourceDescription:         b.ResourceDescription,
		ResourceEnvDescription:      b.ResourceEnvDescription,
		EJBReferenceDescription:     b.EJBReferenceDescription,
		ServiceReferenceDescription: b.ServiceReferenceDescription,
		EnableCallByReference:       b.EnableCallByReference,
		NetworkAccessPoint:          b.NetworkAccessPoint,
		ClientsOnSameServer:         b.ClientsOnSameServer,
		RunAsPrincipalName:          b.RunAsPrincipalName,
		CreateAsPrincipalName:       b.CreateAsPrincipalName,
		RemoveAsPrincipalName:       b.RemoveAsPrincipalName,
		PassivateAsPrincipalName:    b.PassivateAsPrincipalName,
		JNDIName:                    b.JNDIName,
		LocalJNDIName:               b.LocalJNDIName,
		DispatchPolicy:              b.DispatchPolicy,
		RemoteClientTimeout:         b.RemoteClientTimeout,
		StickToFirstServer:          b.StickToFirstServer,
	}
	switch d := b.Descriptor.(type) {
	case *EntityDescriptor:
		w.EntityDescriptor = d
	case *StatelessSessionDescriptor:
		w.StatelessSessionDescriptor = d
	case *StatefulSessionDescriptor:
		w.StatefulSessionDescriptor = d
	case *MessageDrivenDescriptor:
		w.MessageDrivenDescriptor = d
	}
	return e.EncodeElement(w, start)
}

type entityDescriptorXML struct {
	ID                   string              `xml:"id,attr,omitempty"`
	Pool                 *Pool               `xml:"pool,omitempty"`
	TimerDescriptor      *TimerDescriptor    `xml:"timer-descriptor,omitempty"`
	EntityCache          *EntityCache        `xml:"entity-cache,omitempty"`
	EntityCacheRef       *EntityCacheRef     `xml:"entity-cache-ref,omitempty"`
	Persistence          *Persistence        `xml:"persistence,omitempty"`
	EntityClustering     *EntityClustering   `xml:"entity-clustering,omitempty"`
	InvalidationTarget   *InvalidationTarget `xml:"invalidation-target,omitempty"`
	EnableDynamicQueries *Bool               `xml:"enable-dynamic-queries,omitempty"`
}

func (ed *EntityDescriptor) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var w entityDescriptorXML
	if err := d.DecodeElement(&w, &start); err != nil {
		return err
	}
	err := exclusive(start.Name.Local,
		branch{"entity-cache", w.EntityCache != nil},
		branch{"entity-cache-ref", w.EntityCacheRef != nil},
	)
	if err != nil {
		return err
	}

	*ed = EntityDescriptor{
		ID:                   w.ID,
		Pool:                 w.Pool,
		TimerDescriptor:      w.TimerDescriptor,
		Persistence:          w.Persistence,
		EntityClustering:     w.EntityClustering,
		InvalidationTarget:   w.InvalidationTarget,
		EnableDynamicQueries: w.EnableDynamicQueries,
	}
	if w.EntityCache != nil {
		ed.Cache = w.EntityCache
	} else if w.EntityCacheRef != nil {
		ed.Cache = w.EntityCacheRef
	}
	return nil
}

func (ed EntityDescriptor) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	w := entityDescriptorXML{
		ID:                   ed.ID,
		Pool:                 ed.Pool,
		TimerDescriptor:      ed.TimerDescriptor,
		Persistence:          ed.Persistence,
		EntityClustering:     ed.EntityClustering,
		InvalidationTarget:   ed.InvalidationTarget,
		EnableDynamicQueries: ed.EnableDynamicQueries,
	}
	switch c := ed.Cache.(type) {
	case *EntityCache:
		w.EntityCache = c
	case *EntityCacheRef:
		w.EntityCacheRef = c
	}
	return e.EncodeElement(w, start)
}

type weblogicQueryXML struct {
	ID                 string       `xml:"id,attr,omitempty"`
	Description        string       `xml:"description,omitempty"`
	QueryMethod        *QueryMethod `xml:"query-method,omitempty"`
	EjbQlQuery         *EjbQlQuery  `xml:"ejb-ql-query,omitempty"`
	SqlQuery           *SqlQuery    `xml:"sql-query,omitempty"`
	MaxElements        *Integer     `xml:"max-elements,omitempty"`
	IncludeUpdates     *Bool        `xml:"include-updates,omitempty"`
	SQLSelectDistinct  *Bool        `xml:"sql-select-distinct,omitempty"`
	EnableQueryCaching *Bool        `xml:"enable-query-caching,omitempty"`
}

func (q *WeblogicQuery) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var w weblogicQueryXML
	if err := d.DecodeElement(&w, &start); err != nil {
		return err
	}
	err := exclusive(start.Name.Local,
		branch{"ejb-ql-query", w.EjbQlQuery != nil},
		branch{"sql-query", w.SqlQuery != nil},
	)
	if err != nil {
		return err
	}

	*q = WeblogicQuery{
		ID:                 w.ID,
		Description:        w.Description,
		QueryMethod:        w.QueryMethod,
		MaxElements:        w.MaxElements,
		IncludeUpdates:     w.IncludeUpdates,
		SQLSelectDistinct:  w.SQLSelectDistinct,
		EnableQueryCaching: w.EnableQueryCaching,
	}
	if w.EjbQlQuery != nil {
		q.Query = w.EjbQlQuery
	} else if w.SqlQuery != nil {
		q.Query = w.SqlQuery
	}
	return nil
}

func (q WeblogicQuery) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	w := weblogicQueryXML{
		ID:                 q.ID,
		Description:        q.Description,
		QueryMethod:        q.QueryMethod,
		MaxElements:        q.MaxElements,
		IncludeUpdates:     q.IncludeUpdates,
		SQLSelectDistinct:  q.SQLSelectDistinct,
		EnableQueryCaching: q.EnableQueryCaching,
	}
	switch c := q.Query.(type) {
	case *EjbQlQuery:
		w.EjbQlQuery = c
	case *SqlQuery:
		w.SqlQuery = c
	}
	return e.EncodeElement(w, start)
}
