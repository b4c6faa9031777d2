// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/windlassio/windlass/ent/cascadesession"
	"github.com/windlassio/windlass/ent/checkpoint"
	"github.com/windlassio/windlass/ent/logrow"
	"github.com/windlassio/windlass/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cascadesessionFields := schema.CascadeSession{}.Fields()
	_ = cascadesessionFields
	// cascadesessionDescDepth is the schema descriptor for depth field.
	cascadesessionDescDepth := cascadesessionFields[3].Descriptor()
	// cascadesession.DefaultDepth holds the default value on creation for the depth field.
	cascadesession.DefaultDepth = cascadesessionDescDepth.Default.(int)
	// cascadesessionDescCancelRequested is the schema descriptor for cancel_requested field.
	cascadesessionDescCancelRequested := cascadesessionFields[7].Descriptor()
	// cascadesession.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	cascadesession.DefaultCancelRequested = cascadesessionDescCancelRequested.Default.(bool)
	// cascadesessionDescCreatedAt is the schema descriptor for created_at field.
	cascadesessionDescCreatedAt := cascadesessionFields[13].Descriptor()
	// cascadesession.DefaultCreatedAt holds the default value on creation for the created_at field.
	cascadesession.DefaultCreatedAt = cascadesessionDescCreatedAt.Default.(func() time.Time)
	// cascadesessionDescUpdatedAt is the schema descriptor for updated_at field.
	cascadesessionDescUpdatedAt := cascadesessionFields[14].Descriptor()
	// cascadesession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	cascadesession.DefaultUpdatedAt = cascadesessionDescUpdatedAt.Default.(func() time.Time)
	// cascadesession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	cascadesession.UpdateDefaultUpdatedAt = cascadesessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescCreatedAt is the schema descriptor for created_at field.
	checkpointDescCreatedAt := checkpointFields[13].Descriptor()
	// checkpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkpoint.DefaultCreatedAt = checkpointDescCreatedAt.Default.(func() time.Time)
	logrowFields := schema.LogRow{}.Fields()
	_ = logrowFields
	// logrowDescTimestamp is the schema descriptor for timestamp field.
	logrowDescTimestamp := logrowFields[1].Descriptor()
	// logrow.DefaultTimestamp holds the default value on creation for the timestamp field.
	logrow.DefaultTimestamp = logrowDescTimestamp.Default.(func() time.Time)
	// logrowDescDepth is the schema descriptor for depth field.
	logrowDescDepth := logrowFields[7].Descriptor()
	// logrow.DefaultDepth holds the default value on creation for the depth field.
	logrow.DefaultDepth = logrowDescDepth.Default.(int)
	// logrowDescHasImages is the schema descriptor for has_images field.
	logrowDescHasImages := logrowFields[37].Descriptor()
	// logrow.DefaultHasImages holds the default value on creation for the has_images field.
	logrow.DefaultHasImages = logrowDescHasImages.Default.(bool)
	// logrowDescHasBase64 is the schema descriptor for has_base64 field.
	logrowDescHasBase64 := logrowFields[38].Descriptor()
	// logrow.DefaultHasBase64 holds the default value on creation for the has_base64 field.
	logrow.DefaultHasBase64 = logrowDescHasBase64.Default.(bool)
	// logrowDescIsCallout is the schema descriptor for is_callout field.
	logrowDescIsCallout := logrowFields[41].Descriptor()
	// logrow.DefaultIsCallout holds the default value on creation for the is_callout field.
	logrow.DefaultIsCallout = logrowDescIsCallout.Default.(bool)
}
