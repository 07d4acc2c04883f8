package ejbjar

import (
	"encoding/xml"
)

type FieldMap struct {
	ID             string `xml:"id,attr,omitempty"`
	CMPField       string `xml:"cmp-field"`
	DBMSColumn     string `xml:"dbms-column"`
	DBMSColumnType string `xml:"dbms-column-type,omitempty"`
	GroupName      string `xml:"group-name,omitempty"`
}

type TableMap struct {
	ID                             string     `xml:"id,attr,omitempty"`
	TableName                      string     `xml:"table-name"`
	FieldMap                       []FieldMap `xml:"field-map"`
	VerifyRows                     string     `xml:"verify-rows,omitempty"`
	VerifyColumns                  string     `xml:"verify-columns,omitempty"`
	OptimisticColumn               string     `xml:"optimistic-column,omitempty"`
	TriggerUpdatesOptimisticColumn *Bool      `xml:"trigger-updates-optimistic-column,omitempty"`
	VersionColumnInitialValue      *Integer   `xml:"version-column-initial-value,omitempty"`
}

// FieldGroup names a set of CMP and CMR fields that load together.
type FieldGroup struct {
	ID        string   `xml:"id,attr,omitempty"`
	GroupName string   `xml:"group-name"`
	CMPFields []string `xml:"cmp-field"`
	CMRFields []string `xml:"cmr-field"`
}

type CachingElement struct {
	ID             string           `xml:"id,attr,omitempty"`
	CMRField       string           `xml:"cmr-field"`
	GroupName      string           `xml:"group-name,omitempty"`
	CachingElement []CachingElement `xml:"caching-element"`
}

type RelationshipCaching struct {
	ID             string           `xml:"id,attr,omitempty"`
	CachingName    string           `xml:"caching-name"`
	CachingElement []CachingElement `xml:"caching-element"`
}

// Table is a table referenced from an SQL shape.
type Table struct {
	ID                      string   `xml:"id,attr,omitempty"`
	TableName               string   `xml:"table-name"`
	DBMSColumn              []string `xml:"dbms-column"`
	EJBRelationshipRoleName []string `xml:"ejb-relationship-role-name"`
}

type SqlShape struct {
	ID                 string   `xml:"id,attr,omitempty"`
	Description        string   `xml:"description,omitempty"`
	SQLShapeName       string   `xml:"sql-shape-name"`
	Table              []Table  `xml:"table"`
	PassThroughColumns *Integer `xml:"pass-through-columns,omitempty"`
	EJBRelationName    []string `xml:"ejb-relation-name"`
}

type QueryMethod struct {
	ID           string       `xml:"id,attr,omitempty"`
	MethodName   string       `xml:"method-name"`
	MethodParams MethodParams `xml:"method-params"`
}

type EjbQlQuery struct {
	ID          string `xml:"id,attr,omitempty"`
	WeblogicQL  string `xml:"weblogic-ql"`
	GroupName   string `xml:"group-name,omitempty"`
	CachingName string `xml:"caching-name,omitempty"`
}

type DatabaseSpecificSql struct {
	ID           string `xml:"id,attr,omitempty"`
	DatabaseType string `xml:"database-type"`
	SQL          string `xml:"sql"`
}

type SqlQuery struct {
	ID                  string                `xml:"id,attr,omitempty"`
	SQLShapeName        string                `xml:"sql-shape-name,omitempty"`
	DatabaseSpecificSQL []DatabaseSpecificSql `xml:"database-specific-sql"`
	SQL                 string                `xml:"sql,omitempty"`
}

// WeblogicQuery overrides the finder or select query of a CMP bean. Query
// holds either an *EjbQlQuery or an *SqlQuery.
type WeblogicQuery struct {
	ID                 string       `xml:"id,attr,omitempty"`
	Description        string       `xml:"description,omitempty"`
	QueryMethod        *QueryMethod `xml:"query-method,omitempty"`
	Query              QueryChoice  `xml:"-"`
	MaxElements        *Integer     `xml:"max-elements,omitempty"`
	IncludeUpdates     *Bool        `xml:"include-updates,omitempty"`
	SQLSelectDistinct  *Bool        `xml:"sql-select-distinct,omitempty"`
	EnableQueryCaching *Bool        `xml:"enable-query-caching,omitempty"`
}

type AutomaticKeyGeneration struct {
	ID                                 string   `xml:"id,attr,omitempty"`
	GeneratorType                      string   `xml:"generator-type"`
	GeneratorName                      string   `xml:"generator-name,omitempty"`
	KeyCacheSize                       *Integer `xml:"key-cache-size,omitempty"`
	SelectFirstSequenceKeyBeforeUpdate *Bool    `xml:"select-first-sequence-key-before-update,omitempty"`
}

// WeblogicRdbmsBean maps one CMP entity bean onto its tables.
type WeblogicRdbmsBean struct {
	ID                          string                  `xml:"id,attr,omitempty"`
	EJBName                     string                  `xml:"ejb-name"`
	DataSourceJNDIName          string                  `xml:"data-source-jndi-name"`
	TableMap                    []TableMap              `xml:"table-map"`
	FieldGroup                  []FieldGroup            `xml:"field-group"`
	RelationshipCaching         []RelationshipCaching   `xml:"relationship-caching"`
	SQLShape                    []SqlShape              `xml:"sql-shape"`
	WeblogicQuery               []WeblogicQuery         `xml:"weblogic-query"`
	DelayDatabaseInsertUntil    string                  `xml:"delay-database-insert-until,omitempty"`
	UseSelectForUpdate          *Bool                   `xml:"use-select-for-update,omitempty"`
	LockOrder                   *Integer                `xml:"lock-order,omitempty"`
	InstanceLockOrder           string                  `xml:"instance-lock-order,omitempty"`
	AutomaticKeyGeneration      *AutomaticKeyGeneration `xml:"automatic-key-generation,omitempty"`
	CheckExistsOnMethod         *Bool                   `xml:"check-exists-on-method,omitempty"`
	ClusterInvalidationDisabled *Bool                   `xml:"cluster-invalidation-disabled,omitempty"`
}

type ColumnMap struct {
	ID               string `xml:"id,attr,omitempty"`
	ForeignKeyColumn string `xml:"foreign-key-column"`
	KeyColumn        string `xml:"key-column"`
}

type RelationshipRoleMap struct {
	ID              string      `xml:"id,attr,omitempty"`
	ForeignKeyTable string      `xml:"foreign-key-table,omitempty"`
	PrimaryKeyTable string      `xml:"primary-key-table,omitempty"`
	ColumnMap       []ColumnMap `xml:"column-map"`
}

type WeblogicRelationshipRole struct {
	ID                   string               `xml:"id,attr,omitempty"`
	RelationshipRoleName string               `xml:"relationship-role-name"`
	GroupName            string               `xml:"group-name,omitempty"`
	RelationshipRoleMap  *RelationshipRoleMap `xml:"relationship-role-map,omitempty"`
	DBCascadeDelete      *Empty               `xml:"db-cascade-delete"`
}

type WeblogicRdbmsRelation struct {
	ID                       string                     `xml:"id,attr,omitempty"`
	RelationName             string                     `xml:"relation-name"`
	TableName                string                     `xml:"table-name,omitempty"`
	WeblogicRelationshipRole []WeblogicRelationshipRole `xml:"weblogic-relationship-role"`
}

type Compatibility struct {
	ID                             string `xml:"id,attr,omitempty"`
	SerializeByteArrayToOracleBlob *Bool  `xml:"serialize-byte-array-to-oracle-blob,omitempty"`
	SerializeCharArrayToBytes      *Bool  `xml:"serialize-char-array-to-bytes,omitempty"`
	AllowReadonlyCreateAndRemove   *Bool  `xml:"allow-readonly-create-and-remove,omitempty"`
	DisableStringTrimming          *Bool  `xml:"disable-string-trimming,omitempty"`
}

// WeblogicRdbmsJar is the root of weblogic-cmp-rdbms-jar.xml.
type WeblogicRdbmsJar struct {
	XMLName                 xml.Name                `xml:"weblogic-rdbms-jar"`
	ID                      string                  `xml:"id,attr,omitempty"`
	WeblogicRdbmsBean       []WeblogicRdbmsBean     `xml:"weblogic-rdbms-bean"`
	WeblogicRdbmsRelation   []WeblogicRdbmsRelation `xml:"weblogic-rdbms-relation"`
	OrderDatabaseOperations *Bool                   `xml:"order-database-operations,omitempty"`
	EnableBatchOperations   *Bool                   `xml:"enable-batch-operations,omitempty"`
	CreateDefaultDBMSTables string                  `xml:"create-default-dbms-tables,omitempty"`
	ValidateDBSchemaWith    string                  `xml:"validate-db-schema-with,omitempty"`
	DatabaseType            string                  `xml:"database-type,omitempty"`
	DefaultDBMSTablesDDL    string                  `xml:"default-dbms-tables-ddl,omitempty"`
	Compatibility           *Compatibility          `xml:"compatibility,omitempty"`
}
