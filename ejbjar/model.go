package ejbjar

import (
	"encoding/xml"
)

// Pool sizes the free pool of bean instances.
type Pool struct {
	ID                     string   `xml:"id,attr,omitempty"`
	InitialBeansInFreePool *Integer `xml:"initial-beans-in-free-pool,omitempty"`
	MaxBeansInFreePool     *Integer `xml:"max-beans-in-free-pool,omitempty"`
	IdleTimeoutSeconds     *Integer `xml:"idle-timeout-seconds,omitempty"`
}

type TimerDescriptor struct {
	ID                         string `xml:"id,attr,omitempty"`
	PersistentStoreLogicalName string `xml:"persistent-store-logical-name,omitempty"`
}

type EntityCache struct {
	ID                       string   `xml:"id,attr,omitempty"`
	MaxBeansInCache          *Integer `xml:"max-beans-in-cache,omitempty"`
	MaxQueriesInCache        *Integer `xml:"max-queries-in-cache,omitempty"`
	IdleTimeoutSeconds       *Integer `xml:"idle-timeout-seconds,omitempty"`
	ReadTimeoutSeconds       *Integer `xml:"read-timeout-seconds,omitempty"`
	ConcurrencyStrategy      string   `xml:"concurrency-strategy,omitempty"`
	CacheBetweenTransactions *Bool    `xml:"cache-between-transactions,omitempty"`
	DisableReadyInstances    *Bool    `xml:"disable-ready-instances,omitempty"`
}

// EntityCacheRef points an entity bean at an application-level cache
// declared in weblogic-application.xml.
type EntityCacheRef struct {
	ID                       string   `xml:"id,attr,omitempty"`
	EntityCacheName          string   `xml:"entity-cache-name"`
	IdleTimeoutSeconds       *Integer `xml:"idle-timeout-seconds,omitempty"`
	ReadTimeoutSeconds       *Integer `xml:"read-timeout-seconds,omitempty"`
	ConcurrencyStrategy      string   `xml:"concurrency-strategy,omitempty"`
	CacheBetweenTransactions *Bool    `xml:"cache-between-transactions,omitempty"`
	EstimatedBeanSize        *Integer `xml:"estimated-bean-size,omitempty"`
}

type PersistenceUse struct {
	ID             string `xml:"id,attr,omitempty"`
	TypeIdentifier string `xml:"type-identifier"`
	TypeVersion    string `xml:"type-version"`
	TypeStorage    string `xml:"type-storage"`
}

type Persistence struct {
	ID                       string          `xml:"id,attr,omitempty"`
	IsModifiedMethodName     string          `xml:"is-modified-method-name,omitempty"`
	DelayUpdatesUntilEndOfTx *Bool           `xml:"delay-updates-until-end-of-tx,omitempty"`
	FindersLoadBean          *Bool           `xml:"finders-load-bean,omitempty"`
	PersistenceUse           *PersistenceUse `xml:"persistence-use,omitempty"`
}

type EntityClustering struct {
	ID                      string `xml:"id,attr,omitempty"`
	HomeIsClusterable       *Bool  `xml:"home-is-clusterable,omitempty"`
	HomeLoadAlgorithm       string `xml:"home-load-algorithm,omitempty"`
	HomeCallRouterClassName string `xml:"home-call-router-class-name,omitempty"`
	UseServersideStubs      *Bool  `xml:"use-serverside-stubs,omitempty"`
}

type InvalidationTarget struct {
	ID      string `xml:"id,attr,omitempty"`
	EJBName string `xml:"ejb-name"`
}

// EntityDescriptor configures an entity bean. Cache holds either an
// *EntityCache or an *EntityCacheRef.
type EntityDescriptor struct {
	ID                   string              `xml:"id,attr,omitempty"`
	Pool                 *Pool               `xml:"pool,omitempty"`
	TimerDescriptor      *TimerDescriptor    `xml:"timer-descriptor,omitempty"`
	Cache                EntityCacheChoice   `xml:"-"`
	Persistence          *Persistence        `xml:"persistence,omitempty"`
	EntityClustering     *EntityClustering   `xml:"entity-clustering,omitempty"`
	InvalidationTarget   *InvalidationTarget `xml:"invalidation-target,omitempty"`
	EnableDynamicQueries *Bool               `xml:"enable-dynamic-queries,omitempty"`
}

type StatelessClustering struct {
	ID                               string `xml:"id,attr,omitempty"`
	HomeIsClusterable                *Bool  `xml:"home-is-clusterable,omitempty"`
	HomeLoadAlgorithm                string `xml:"home-load-algorithm,omitempty"`
	HomeCallRouterClassName          string `xml:"home-call-router-class-name,omitempty"`
	UseServersideStubs               *Bool  `xml:"use-serverside-stubs,omitempty"`
	StatelessBeanIsClusterable       *Bool  `xml:"stateless-bean-is-clusterable,omitempty"`
	StatelessBeanLoadAlgorithm       string `xml:"stateless-bean-load-algorithm,omitempty"`
	StatelessBeanCallRouterClassName string `xml:"stateless-bean-call-router-class-name,omitempty"`
}

type BusinessInterfaceJndiNameMap struct {
	ID             string `xml:"id,attr,omitempty"`
	BusinessRemote string `xml:"business-remote"`
	JNDIName       string `xml:"jndi-name"`
}

type StatelessSessionDescriptor struct {
	ID                           string                         `xml:"id,attr,omitempty"`
	Pool                         *Pool                          `xml:"pool,omitempty"`
	TimerDescriptor              *TimerDescriptor               `xml:"timer-descriptor,omitempty"`
	StatelessClustering          *StatelessClustering           `xml:"stateless-clustering,omitempty"`
	BusinessInterfaceJNDINameMap []BusinessInterfaceJndiNameMap `xml:"business-interface-jndi-name-map"`
}

type StatefulSessionCache struct {
	ID                    string   `xml:"id,attr,omitempty"`
	MaxBeansInCache       *Integer `xml:"max-beans-in-cache,omitempty"`
	IdleTimeoutSeconds    *Integer `xml:"idle-timeout-seconds,omitempty"`
	SessionTimeoutSeconds *Integer `xml:"session-timeout-seconds,omitempty"`
	CacheType             string   `xml:"cache-type,omitempty"`
}

type StatefulSessionClustering struct {
	ID                            string `xml:"id,attr,omitempty"`
	HomeIsClusterable             *Bool  `xml:"home-is-clusterable,omitempty"`
	HomeLoadAlgorithm             string `xml:"home-load-algorithm,omitempty"`
	HomeCallRouterClassName       string `xml:"home-call-router-class-name,omitempty"`
	UseServersideStubs            *Bool  `xml:"use-serverside-stubs,omitempty"`
	ReplicationType               string `xml:"replication-type,omitempty"`
	PassivateDuringReplication    *Bool  `xml:"passivate-during-replication,omitempty"`
	CalculateDeltaUsingReflection *Bool  `xml:"calculate-delta-using-reflection,omitempty"`
}

type StatefulSessionDescriptor struct {
	ID                           string                         `xml:"id,attr,omitempty"`
	StatefulSessionCache         *StatefulSessionCache          `xml:"stateful-session-cache,omitempty"`
	PersistentStoreDir           string                         `xml:"persistent-store-dir,omitempty"`
	StatefulSessionClustering    *StatefulSessionClustering     `xml:"stateful-session-clustering,omitempty"`
	AllowConcurrentCalls         *Bool                          `xml:"allow-concurrent-calls,omitempty"`
	AllowRemoveDuringTransaction *Bool                          `xml:"allow-remove-during-transaction,omitempty"`
	BusinessInterfaceJNDINameMap []BusinessInterfaceJndiNameMap `xml:"business-interface-jndi-name-map"`
}

type SecurityPlugin struct {
	ID              string `xml:"id,attr,omitempty"`
	PluginClassName string `xml:"plugin-class-name"`
	Key             string `xml:"key"`
}

// MessageDrivenDescriptor binds a message-driven bean either to a resource
// adapter (ResourceAdapterJNDIName) or to a JMS destination
// (DestinationJNDIName and the connection settings that follow it).
type MessageDrivenDescriptor struct {
	ID                               string           `xml:"id,attr,omitempty"`
	Pool                             *Pool            `xml:"pool,omitempty"`
	TimerDescriptor                  *TimerDescriptor `xml:"timer-descriptor,omitempty"`
	ResourceAdapterJNDIName          string           `xml:"resource-adapter-jndi-name,omitempty"`
	DestinationJNDIName              string           `xml:"destination-jndi-name,omitempty"`
	InitialContextFactory            string           `xml:"initial-context-factory,omitempty"`
	ProviderURL                      string           `xml:"provider-url,omitempty"`
	ConnectionFactoryJNDIName        string           `xml:"connection-factory-jndi-name,omitempty"`
	JMSPollingIntervalSeconds        *Integer         `xml:"jms-polling-interval-seconds,omitempty"`
	JMSClientID                      string           `xml:"jms-client-id,omitempty"`
	GenerateUniqueJMSClientID        *Bool            `xml:"generate-unique-jms-client-id,omitempty"`
	DurableSubscriptionDeletion      *Bool            `xml:"durable-subscription-deletion,omitempty"`
	MaxMessagesInTransaction         *Integer         `xml:"max-messages-in-transaction,omitempty"`
	DistributedDestinationConnection string           `xml:"distributed-destination-connection,omitempty"`
	Use81StylePolling                *Bool            `xml:"use81-style-polling,omitempty"`
	InitSuspendSeconds               *Integer         `xml:"init-suspend-seconds,omitempty"`
	MaxSuspendSeconds                *Integer         `xml:"max-suspend-seconds,omitempty"`
	SecurityPlugin                   *SecurityPlugin  `xml:"security-plugin,omitempty"`
}

type TransactionDescriptor struct {
	ID                  string   `xml:"id,attr,omitempty"`
	TransTimeoutSeconds *Integer `xml:"trans-timeout-seconds,omitempty"`
}

type TransportRequirements struct {
	ID                       string `xml:"id,attr,omitempty"`
	Integrity                string `xml:"integrity,omitempty"`
	Confidentiality          string `xml:"confidentiality,omitempty"`
	ClientCertAuthentication string `xml:"client-cert-authentication,omitempty"`
}

type IiopSecurityDescriptor struct {
	ID                    string                 `xml:"id,attr,omitempty"`
	TransportRequirements *TransportRequirements `xml:"transport-requirements,omitempty"`
	ClientAuthentication  string                 `xml:"client-authentication,omitempty"`
	IdentityAssertion     string                 `xml:"identity-assertion,omitempty"`
}

// ResourceDescription maps a resource reference to a JNDI name or to a
// resource link, never both.
type ResourceDescription struct {
	ID           string `xml:"id,attr,omitempty"`
	ResRefName   string `xml:"res-ref-name"`
	JNDIName     string `xml:"jndi-name,omitempty"`
	ResourceLink string `xml:"resource-link,omitempty"`
}

type ResourceEnvDescription struct {
	ID                 string `xml:"id,attr,omitempty"`
	ResourceEnvRefName string `xml:"resource-env-ref-name"`
	JNDIName           string `xml:"jndi-name,omitempty"`
	ResourceLink       string `xml:"resource-link,omitempty"`
}

type EjbReferenceDescription struct {
	ID         string `xml:"id,attr,omitempty"`
	EJBRefName string `xml:"ejb-ref-name"`
	JNDIName   string `xml:"jndi-name"`
}

type PropertyNamevalue struct {
	ID    string `xml:"id,attr,omitempty"`
	Name  string `xml:"name"`
	Value string `xml:"value"`
}

type PortInfo struct {
	ID           string              `xml:"id,attr,omitempty"`
	PortName     string              `xml:"port-name"`
	StubProperty []PropertyNamevalue `xml:"stub-property"`
	CallProperty []PropertyNamevalue `xml:"call-property"`
}

type ServiceReferenceDescription struct {
	ID             string              `xml:"id,attr,omitempty"`
	ServiceRefName string              `xml:"service-ref-name"`
	WSDLURL        string              `xml:"wsdl-url,omitempty"`
	CallProperty   []PropertyNamevalue `xml:"call-property"`
	PortInfo       []PortInfo          `xml:"port-info"`
}

// WeblogicEnterpriseBean holds the WebLogic-specific settings of one bean
// declared in ejb-jar.xml, matched by EJBName.
type WeblogicEnterpriseBean struct {
	ID                          string                        `xml:"id,attr,omitempty"`
	EJBName                     string                        `xml:"ejb-name"`
	Descriptor                  BeanDescriptor                `xml:"-"`
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

// SecurityRoleAssignment maps a role to principals, or marks it as defined
// in the security realm.
type SecurityRoleAssignment struct {
	ID                string   `xml:"id,attr,omitempty"`
	RoleName          string   `xml:"role-name"`
	PrincipalName     []string `xml:"principal-name"`
	ExternallyDefined *Empty   `xml:"externally-defined"`
}

type RunAsRoleAssignment struct {
	ID                 string `xml:"id,attr,omitempty"`
	RoleName           string `xml:"role-name"`
	RunAsPrincipalName string `xml:"run-as-principal-name"`
}

type SecurityPermission struct {
	ID                     string `xml:"id,attr,omitempty"`
	Description            string `xml:"description,omitempty"`
	SecurityPermissionSpec string `xml:"security-permission-spec"`
}

type MethodParams struct {
	ID          string   `xml:"id,attr,omitempty"`
	MethodParam []string `xml:"method-param"`
}

// Method selects bean methods by name and, optionally, by interface and
// parameter types. A MethodName of "*" selects every method.
type Method struct {
	ID           string        `xml:"id,attr,omitempty"`
	Description  string        `xml:"description,omitempty"`
	EJBName      string        `xml:"ejb-name"`
	MethodIntf   string        `xml:"method-intf,omitempty"`
	MethodName   string        `xml:"method-name"`
	MethodParams *MethodParams `xml:"method-params,omitempty"`
}

type TransactionIsolation struct {
	ID             string   `xml:"id,attr,omitempty"`
	IsolationLevel string   `xml:"isolation-level"`
	Method         []Method `xml:"method"`
}

type MessageDestinationDescriptor struct {
	ID                      string `xml:"id,attr,omitempty"`
	MessageDestinationName  string `xml:"message-destination-name"`
	DestinationJNDIName     string `xml:"destination-jndi-name,omitempty"`
	InitialContextFactory   string `xml:"initial-context-factory,omitempty"`
	ProviderURL             string `xml:"provider-url,omitempty"`
	DestinationResourceLink string `xml:"destination-resource-link,omitempty"`
}

type IdempotentMethods struct {
	ID     string   `xml:"id,attr,omitempty"`
	Method []Method `xml:"method"`
}

type RetryMethodsOnRollback struct {
	ID          string   `xml:"id,attr,omitempty"`
	Description string   `xml:"description,omitempty"`
	RetryCount  *Integer `xml:"retry-count,omitempty"`
	Method      []Method `xml:"method"`
}

type WorkManager struct {
	ID                       string `xml:"id,attr,omitempty"`
	Name                     string `xml:"name"`
	RequestClassName         string `xml:"request-class-name,omitempty"`
	MinThreadsConstraintName string `xml:"min-threads-constraint-name,omitempty"`
	MaxThreadsConstraintName string `xml:"max-threads-constraint-name,omitempty"`
	CapacityName             string `xml:"capacity-name,omitempty"`
	IgnoreStuckThreads       *Bool  `xml:"ignore-stuck-threads,omitempty"`
}

type WeblogicCompatibility struct {
	ID                          string `xml:"id,attr,omitempty"`
	EntityAlwaysUsesTransaction *Bool  `xml:"entity-always-uses-transaction,omitempty"`
}

// WeblogicEjbJar is the root of weblogic-ejb-jar.xml.
type WeblogicEjbJar struct {
	XMLName                      xml.Name                       `xml:"weblogic-ejb-jar"`
	ID                           string                         `xml:"id,attr,omitempty"`
	Version                      string                         `xml:"version,attr,omitempty"`
	Description                  string                         `xml:"description,omitempty"`
	WeblogicVersion              string                         `xml:"weblogic-version,omitempty"`
	WeblogicEnterpriseBean       []WeblogicEnterpriseBean       `xml:"weblogic-enterprise-bean"`
	SecurityRoleAssignment       []SecurityRoleAssignment       `xml:"security-role-assignment"`
	RunAsRoleAssignment          []RunAsRoleAssignment          `xml:"run-as-role-assignment"`
	SecurityPermission           *SecurityPermission            `xml:"security-permission,omitempty"`
	TransactionIsolation         []TransactionIsolation         `xml:"transaction-isolation"`
	MessageDestinationDescriptor []MessageDestinationDescriptor `xml:"message-destination-descriptor"`
	IdempotentMethods            *IdempotentMethods             `xml:"idempotent-methods,omitempty"`
	RetryMethodsOnRollback       []RetryMethodsOnRollback       `xml:"retry-methods-on-rollback"`
	EnableBeanClassRedeploy      *Bool                          `xml:"enable-bean-class-redeploy,omitempty"`
	TimerImplementation          string                         `xml:"timer-implementation,omitempty"`
	DisableWarning               []string                       `xml:"disable-warning"`
	WorkManager                  []WorkManager                  `xml:"work-manager"`
	ComponentFactoryClassName    string                         `xml:"component-factory-class-name,omitempty"`
	WeblogicCompatibility        *WeblogicCompatibility         `xml:"weblogic-compatibility,omitempty"`
}
