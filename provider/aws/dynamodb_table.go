package aws

import (
	"github.com/pkg/errors"
)

// DynamoDBAttribute declares an attribute used in a key schema.
type DynamoDBAttribute struct {
	// The name of the attribute.
	Name string `validate:"required,max=255"`

	// The attribute type: S (string), N (number) or B (binary).
	Type string `validate:"required,oneof=S N B"`
}

// DynamoDBGlobalSecondaryIndex declares a global secondary index on a
// table.
type DynamoDBGlobalSecondaryIndex struct {
	// The name of the index.
	Name string `validate:"required"`

	// The attribute to use as the index hash key.
	HashKey string `validate:"required"`

	// The attribute to use as the index range key.
	RangeKey *string

	// Read capacity units for the index. Required in PROVISIONED billing
	// mode.
	ReadCapacity *int `validate:"min=1"`

	// Write capacity units for the index. Required in PROVISIONED billing
	// mode.
	WriteCapacity *int `validate:"min=1"`

	// Which attributes are projected into the index: ALL, KEYS_ONLY or
	// INCLUDE.
	ProjectionType string `validate:"required,oneof=ALL KEYS_ONLY INCLUDE"`

	// Attributes projected when the projection type is INCLUDE.
	NonKeyAttributes []string
}

// DynamoDBTable manages a DynamoDB table.
//
// Every attribute referenced by a key or an index must be declared in the
// attribute list; non-key attributes are schemaless and must not be.
type DynamoDBTable struct {
	// The attributes referenced by the table and index key schemas.
	Attributes []DynamoDBAttribute `func:"input,required" name:"attribute" validate:"min=1"`

	// How read and write capacity is billed. Defaults to PROVISIONED.
	BillingMode *string `func:"input" default:"PROVISIONED" validate:"oneof=PROVISIONED PAY_PER_REQUEST"`

	// Global secondary indexes on the table.
	GlobalSecondaryIndexes []DynamoDBGlobalSecondaryIndex `func:"input" name:"global_secondary_index"`

	// The attribute to use as the table hash key.
	HashKey string `func:"input,required"`

	// The name of the table.
	Name string `func:"input,required" validate:"min=3,max=255"`

	// The attribute to use as the table range key.
	RangeKey *string `func:"input"`

	// Read capacity units for the table. Required in PROVISIONED billing
	// mode.
	ReadCapacity *int `func:"input" validate:"min=1"`

	// Server side encryption settings.
	ServerSideEncryption *struct {
		Enabled bool
	} `func:"input"`

	// Enables DynamoDB streams on the table.
	StreamEnabled *bool `func:"input"`

	// What is written to the stream: KEYS_ONLY, NEW_IMAGE, OLD_IMAGE or
	// NEW_AND_OLD_IMAGES.
	StreamViewType *string `func:"input" validate:"oneof=KEYS_ONLY NEW_IMAGE OLD_IMAGE NEW_AND_OLD_IMAGES"`

	// Time to live settings for the table.
	TTL *struct {
		AttributeName string `validate:"required"`
		Enabled       bool
	} `func:"input" name:"ttl"`

	// Write capacity units for the table. Required in PROVISIONED billing
	// mode.
	WriteCapacity *int `func:"input" validate:"min=1"`

	// Key-value tags for the table.
	Tags map[string]string `func:"input"`

	// Outputs

	// The Amazon Resource Name of the table.
	ARN *string `func:"output"`

	// The ARN of the table stream, when streams are enabled.
	StreamARN *string `func:"output"`
}

// Type returns the resource type name.
func (t *DynamoDBTable) Type() string { return "aws_dynamodb_table" }

// Validate checks invariants between the billing mode, capacities and key
// schema.
func (t *DynamoDBTable) Validate() error {
	declared := make(map[string]bool, len(t.Attributes))
	for _, a := range t.Attributes {
		declared[a.Name] = true
	}
	if !declared[t.HashKey] {
		return errors.Errorf("hash_key: attribute %q is not declared", t.HashKey)
	}
	if t.RangeKey != nil && !declared[*t.RangeKey] {
		return errors.Errorf("range_key: attribute %q is not declared", *t.RangeKey)
	}

	provisioned := t.BillingMode == nil || *t.BillingMode == "PROVISIONED"
	if provisioned && (t.ReadCapacity == nil || t.WriteCapacity == nil) {
		return errors.New("read_capacity and write_capacity are required with PROVISIONED billing")
	}
	if !provisioned && (t.ReadCapacity != nil || t.WriteCapacity != nil) {
		return errors.New("capacity cannot be set with PAY_PER_REQUEST billing")
	}

	for _, idx := range t.GlobalSecondaryIndexes {
		if !declared[idx.HashKey] {
			return errors.Errorf("global_secondary_index %s: hash_key attribute %q is not declared", idx.Name, idx.HashKey)
		}
		if idx.RangeKey != nil && !declared[*idx.RangeKey] {
			return errors.Errorf("global_secondary_index %s: range_key attribute %q is not declared", idx.Name, *idx.RangeKey)
		}
		if idx.ProjectionType == "INCLUDE" && len(idx.NonKeyAttributes) == 0 {
			return errors.Errorf("global_secondary_index %s: INCLUDE projection requires non_key_attributes", idx.Name)
		}
	}
	return nil
}
