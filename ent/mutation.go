// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/windlassio/windlass/ent/cascadesession"
	"github.com/windlassio/windlass/ent/checkpoint"
	"github.com/windlassio/windlass/ent/logrow"
	"github.com/windlassio/windlass/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCascadeSession = "CascadeSession"
	TypeCheckpoint     = "Checkpoint"
	TypeLogRow         = "LogRow"
)

// CascadeSessionMutation represents an operation that mutates the CascadeSession nodes in the graph.
type CascadeSessionMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	cascade_id         *string
	depth              *int
	adddepth           *int
	status             *cascadesession.Status
	current_phase      *string
	error_message      *string
	cancel_requested   *bool
	cancel_reason      *string
	input              *string
	session_metadata   *map[string]interface{}
	pod_id             *string
	heartbeat_at       *time.Time
	created_at         *time.Time
	updated_at         *time.Time
	started_at         *time.Time
	completed_at       *time.Time
	clearedFields      map[string]struct{}
	parent             *string
	clearedparent      bool
	children           map[string]struct{}
	removedchildren    map[string]struct{}
	clearedchildren    bool
	log_rows           map[string]struct{}
	removedlog_rows    map[string]struct{}
	clearedlog_rows    bool
	checkpoints        map[string]struct{}
	removedcheckpoints map[string]struct{}
	clearedcheckpoints bool
	done               bool
	oldValue           func(context.Context) (*CascadeSession, error)
	predicates         []predicate.CascadeSession
}

var _ ent.Mutation = (*CascadeSessionMutation)(nil)

// cascadesessionOption allows management of the mutation configuration using functional options.
type cascadesessionOption func(*CascadeSessionMutation)

// newCascadeSessionMutation creates new mutation for the CascadeSession entity.
func newCascadeSessionMutation(c config, op Op, opts ...cascadesessionOption) *CascadeSessionMutation {
	m := &CascadeSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeCascadeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCascadeSessionID sets the ID field of the mutation.
func withCascadeSessionID(id string) cascadesessionOption {
	return func(m *CascadeSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *CascadeSession
		)
		m.oldValue = func(ctx context.Context) (*CascadeSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CascadeSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCascadeSession sets the old CascadeSession of the mutation.
func withCascadeSession(node *CascadeSession) cascadesessionOption {
	return func(m *CascadeSessionMutation) {
		m.oldValue = func(context.Context) (*CascadeSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CascadeSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CascadeSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CascadeSession entities.
func (m *CascadeSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CascadeSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CascadeSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CascadeSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCascadeID sets the "cascade_id" field.
func (m *CascadeSessionMutation) SetCascadeID(s string) {
	m.cascade_id = &s
}

// CascadeID returns the value of the "cascade_id" field in the mutation.
func (m *CascadeSessionMutation) CascadeID() (r string, exists bool) {
	v := m.cascade_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCascadeID returns the old "cascade_id" field's value of the CascadeSession entity.
// If the CascadeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CascadeSessionMutation) OldCascadeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCascadeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCascadeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCascadeID: %w", err)
	}
	return oldValue.CascadeID, nil
}

// ResetCascadeID resets all changes to the "cascade_id" field.
func (m *CascadeSessionMutation) ResetCascadeID() {
	m.cascade_id = nil
}

// SetParentSessionID sets the "parent_session_id" field.
func (m *CascadeSessionMutation) SetParentSessionID(s string) {
	m.parent = &s
}

// ParentSessionID returns the value of the "parent_session_id" field in the mutation.
func (m *CascadeSessionMutation) ParentSessionID() (r string, exists bool) {
	v := m.parent
	if v == nil {
		return
	}
	return *v, true
}

// OldParentSessionID returns the old "parent_session_id" field's value of the CascadeSession entity.
// If the CascadeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CascadeSessionMutation) OldParentSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentSessionID: %w", err)
	}
	return oldValue.ParentSessionID, nil
}

// ClearParentSessionID clears the value of the "parent_session_id" field.
func (m *CascadeSessionMutation) ClearParentSessionID() {
	m.parent = nil
	m.clearedFields[cascadesession.FieldParentSessionID] = struct{}{}
}

// ParentSessionIDCleared returns if the "parent_session_id" field was cleared in this mutation.
func (m *CascadeSessionMutation) ParentSessionIDCleared() bool {
	_, ok := m.clearedFields[cascadesession.FieldParentSessionID]
	return ok
}

// ResetParentSessionID resets all changes to the "parent_session_id" field.
func (m *CascadeSessionMutation) ResetParentSessionID() {
	m.parent = nil
	delete(m.clearedFields, cascadesession.FieldParentSessionID)
}

// SetDepth sets the "depth" field.
func (m *CascadeSessionMutation) SetDepth(i int) {
	m.depth = &i
	m.adddepth = nil
}

// Depth returns the value of the "depth" field in the mutation.
func (m *CascadeSessionMutation) Depth() (r int, exists bool) {
	v := m.depth
	if v == nil {
		return
	}
	return *v, true
}

// OldDepth returns the old "depth" field's value of the CascadeSession entity.
// If the CascadeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CascadeSessionMutation) OldDepth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepth: %w", err)
	}
	return oldValue.Depth, nil
}

// AddDepth adds i to the "depth" field.
func (m *CascadeSessionMutation) AddDepth(i int) {
	if m.adddepth != nil {
		*m.adddepth += i
	} else {
		m.adddepth = &i
	}
}

// AddedDepth returns the value that was added to the "depth" field in this mutation.
func (m *CascadeSessionMutation) AddedDepth() (r int, exists bool) {
	v := m.adddepth
	if v == nil {
		return
	}
	return *v, true
}

// ResetDepth resets all changes to the "depth" field.
func (m *CascadeSessionMutation) ResetDepth() {
	m.depth = nil
	m.adddepth = nil
}

// SetStatus sets the "status" field.
func (m *CascadeSessionMutation) SetStatus(c cascadesession.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CascadeSessionMutation) Status() (r cascadesession.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CascadeSession entity.
// If the CascadeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CascadeSessionMutation) OldStatus(ctx context.Context) (v cascadesession.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CascadeSessionMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentPhase sets the "current_phase" field.
func (m *CascadeSessionMutation) SetCurrentPhase(s string) {
	m.current_phase = &s
}

// CurrentPhase returns the value of the "current_phase" field in the mutation.
func (m *CascadeSessionMutation) CurrentPhase() (r string, exists bool) {
	v := m.current_phase
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPhase returns the old "current_phase" field's value of the CascadeSession entity.
// If the CascadeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CascadeSessionMutation) OldCurrentPhase(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPhase: %w", err)
	}
	return oldValue.CurrentPhase, nil
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (m *CascadeSessionMutation) ClearCurrentPhase() {
	m.current_phase = nil
	m.clearedFields[cascadesession.FieldCurrentPhase] = struct{}{}
}

// CurrentPhaseCleared returns if the "current_phase" field was cleared in this mutation.
func (m *CascadeSessionMutation) CurrentPhaseCleared() bool {
	_, ok := m.clearedFields[cascadesession.FieldCurrentPhase]
	return ok
}

// ResetCurrentPhase resets all changes to the "current_phase" field.
func (m *CascadeSessionMutation) ResetCurrentPhase() {
	m.current_phase = nil
	delete(m.clearedFields, cascadesession.FieldCurrentPhase)
}

// SetErrorMessage sets the "error_message" field.
func (m *CascadeSessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *CascadeSessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the CascadeSession entity.
// If the CascadeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CascadeSessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *CascadeSessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[cascadesession.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *CascadeSessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[cascadesession.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *CascadeSessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, cascadesession.FieldErrorMessage)
}

// SetCancelRequested sets the "cancel_requested" field.
func (m *CascadeSessionMutation) SetCancelRequested(b bool) {
	m.cancel_requested = &b
}

// CancelRequested returns the value of the "cancel_requested" field in the mutation.
func (m *CascadeSessionMutation) CancelRequested() (r bool, exists bool) {
	v := m.cancel_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequested returns the old "cancel_requested" field's value of the CascadeSession entity.
// If the CascadeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CascadeSessionMutation) OldCancelRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequested: %w", err)
	}
	return oldValue.CancelRequested, nil
}

// ResetCancelRequested resets all changes to the "cancel_requested" field.
func (m *CascadeSessionMutation) ResetCancelRequested() {
	m.cancel_requested = nil
}

// SetCancelReason sets the "cancel_reason" field.
func (m *CascadeSessionMutation) SetCancelReason(s string) {
	m.cancel_reason = &s
}

// CancelReason returns the value of the "cancel_reason" field in the mutation.
func (m *CascadeSessionMutation) CancelReason() (r string, exists bool) {
	v := m.cancel_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelReason returns the old "cancel_reason" field's value of the CascadeSession entity.
// If the CascadeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CascadeSessionMutation) OldCancelReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelReason: %w", err)
	}
	return oldValue.CancelReason, nil
}

// ClearCancelReason clears the value of the "cancel_reason" field.
func (m *CascadeSessionMutation) ClearCancelReason() {
	m.cancel_reason = nil
	m.clearedFields[cascadesession.FieldCancelReason] = struct{}{}
}

// CancelReasonCleared returns if the "cancel_reason" field was cleared in this mutation.
func (m *CascadeSessionMutation) CancelReasonCleared() bool {
	_, ok := m.clearedFields[cascadesession.FieldCancelReason]
	return ok
}

// ResetCancelReason resets all changes to the "cancel_reason" field.
func (m *CascadeSessionMutation) ResetCancelReason() {
	m.cancel_reason = nil
	delete(m.clearedFields, cascadesession.FieldCancelReason)
}

// SetInput sets the "input" field.
func (m *CascadeSessionMutation) SetInput(s string) {
	m.input = &s
}

// Input returns the value of the "input" field in the mutation.
func (m *CascadeSessionMutation) Input() (r string, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the CascadeSession entity.
// If the CascadeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CascadeSessionMutation) OldInput(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// ClearInput clears the value of the "input" field.
func (m *CascadeSessionMutation) ClearInput() {
	m.input = nil
	m.clearedFields[cascadesession.FieldInput] = struct{}{}
}

// InputCleared returns if the "input" field was cleared in this mutation.
func (m *CascadeSessionMutation) InputCleared() bool {
	_, ok := m.clearedFields[cascadesession.FieldInput]
	return ok
}

// ResetInput resets all changes to the "input" field.
func (m *CascadeSessionMutation) ResetInput() {
	m.input = nil
	delete(m.clearedFields, cascadesession.FieldInput)
}

// SetSessionMetadata sets the "session_metadata" field.
func (m *CascadeSessionMutation) SetSessionMetadata(value map[string]interface{}) {
	m.session_metadata = &value
}

// SessionMetadata returns the value of the "session_metadata" field in the mutation.
func (m *CascadeSessionMutation) SessionMetadata() (r map[string]interface{}, exists bool) {
	v := m.session_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionMetadata returns the old "session_metadata" field's value of the CascadeSession entity.
// If the CascadeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CascadeSessionMutation) OldSessionMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionMetadata: %w", err)
	}
	return oldValue.SessionMetadata, nil
}

// ClearSessionMetadata clears the value of the "session_metadata" field.
func (m *CascadeSessionMutation) ClearSessionMetadata() {
	m.session_metadata = nil
	m.clearedFields[cascadesession.FieldSessionMetadata] = struct{}{}
}

// SessionMetadataCleared returns if the "session_metadata" field was cleared in this mutation.
func (m *CascadeSessionMutation) SessionMetadataCleared() bool {
	_, ok := m.clearedFields[cascadesession.FieldSessionMetadata]
	return ok
}

// ResetSessionMetadata resets all changes to the "session_metadata" field.
func (m *CascadeSessionMutation) ResetSessionMetadata() {
	m.session_metadata = nil
	delete(m.clearedFields, cascadesession.FieldSessionMetadata)
}

// SetPodID sets the "pod_id" field.
func (m *CascadeSessionMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *CascadeSessionMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the CascadeSession entity.
// If the CascadeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CascadeSessionMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *CascadeSessionMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[cascadesession.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *CascadeSessionMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[cascadesession.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *CascadeSessionMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, cascadesession.FieldPodID)
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (m *CascadeSessionMutation) SetHeartbeatAt(t time.Time) {
	m.heartbeat_at = &t
}

// HeartbeatAt returns the value of the "heartbeat_at" field in the mutation.
func (m *CascadeSessionMutation) HeartbeatAt() (r time.Time, exists bool) {
	v := m.heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHeartbeatAt returns the old "heartbeat_at" field's value of the CascadeSession entity.
// If the CascadeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CascadeSessionMutation) OldHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeartbeatAt: %w", err)
	}
	return oldValue.HeartbeatAt, nil
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (m *CascadeSessionMutation) ClearHeartbeatAt() {
	m.heartbeat_at = nil
	m.clearedFields[cascadesession.FieldHeartbeatAt] = struct{}{}
}

// HeartbeatAtCleared returns if the "heartbeat_at" field was cleared in this mutation.
func (m *CascadeSessionMutation) HeartbeatAtCleared() bool {
	_, ok := m.clearedFields[cascadesession.FieldHeartbeatAt]
	return ok
}

// ResetHeartbeatAt resets all changes to the "heartbeat_at" field.
func (m *CascadeSessionMutation) ResetHeartbeatAt() {
	m.heartbeat_at = nil
	delete(m.clearedFields, cascadesession.FieldHeartbeatAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *CascadeSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CascadeSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CascadeSession entity.
// If the CascadeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CascadeSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CascadeSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CascadeSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CascadeSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CascadeSession entity.
// If the CascadeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CascadeSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CascadeSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *CascadeSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *CascadeSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the CascadeSession entity.
// If the CascadeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CascadeSessionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *CascadeSessionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[cascadesession.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *CascadeSessionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[cascadesession.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *CascadeSessionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, cascadesession.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *CascadeSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *CascadeSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the CascadeSession entity.
// If the CascadeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CascadeSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *CascadeSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[cascadesession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *CascadeSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[cascadesession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *CascadeSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, cascadesession.FieldCompletedAt)
}

// SetParentID sets the "parent" edge to the CascadeSession entity by id.
func (m *CascadeSessionMutation) SetParentID(id string) {
	m.parent = &id
}

// ClearParent clears the "parent" edge to the CascadeSession entity.
func (m *CascadeSessionMutation) ClearParent() {
	m.clearedparent = true
	m.clearedFields[cascadesession.FieldParentSessionID] = struct{}{}
}

// ParentCleared reports if the "parent" edge to the CascadeSession entity was cleared.
func (m *CascadeSessionMutation) ParentCleared() bool {
	return m.ParentSessionIDCleared() || m.clearedparent
}

// ParentID returns the "parent" edge ID in the mutation.
func (m *CascadeSessionMutation) ParentID() (id string, exists bool) {
	if m.parent != nil {
		return *m.parent, true
	}
	return
}

// ParentIDs returns the "parent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParentID instead. It exists only for internal usage by the builders.
func (m *CascadeSessionMutation) ParentIDs() (ids []string) {
	if id := m.parent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParent resets all changes to the "parent" edge.
func (m *CascadeSessionMutation) ResetParent() {
	m.parent = nil
	m.clearedparent = false
}

// AddChildIDs adds the "children" edge to the CascadeSession entity by ids.
func (m *CascadeSessionMutation) AddChildIDs(ids ...string) {
	if m.children == nil {
		m.children = make(map[string]struct{})
	}
	for i := range ids {
		m.children[ids[i]] = struct{}{}
	}
}

// ClearChildren clears the "children" edge to the CascadeSession entity.
func (m *CascadeSessionMutation) ClearChildren() {
	m.clearedchildren = true
}

// ChildrenCleared reports if the "children" edge to the CascadeSession entity was cleared.
func (m *CascadeSessionMutation) ChildrenCleared() bool {
	return m.clearedchildren
}

// RemoveChildIDs removes the "children" edge to the CascadeSession entity by IDs.
func (m *CascadeSessionMutation) RemoveChildIDs(ids ...string) {
	if m.removedchildren == nil {
		m.removedchildren = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.children, ids[i])
		m.removedchildren[ids[i]] = struct{}{}
	}
}

// RemovedChildren returns the removed IDs of the "children" edge to the CascadeSession entity.
func (m *CascadeSessionMutation) RemovedChildrenIDs() (ids []string) {
	for id := range m.removedchildren {
		ids = append(ids, id)
	}
	return
}

// ChildrenIDs returns the "children" edge IDs in the mutation.
func (m *CascadeSessionMutation) ChildrenIDs() (ids []string) {
	for id := range m.children {
		ids = append(ids, id)
	}
	return
}

// ResetChildren resets all changes to the "children" edge.
func (m *CascadeSessionMutation) ResetChildren() {
	m.children = nil
	m.clearedchildren = false
	m.removedchildren = nil
}

// AddLogRowIDs adds the "log_rows" edge to the LogRow entity by ids.
func (m *CascadeSessionMutation) AddLogRowIDs(ids ...string) {
	if m.log_rows == nil {
		m.log_rows = make(map[string]struct{})
	}
	for i := range ids {
		m.log_rows[ids[i]] = struct{}{}
	}
}

// ClearLogRows clears the "log_rows" edge to the LogRow entity.
func (m *CascadeSessionMutation) ClearLogRows() {
	m.clearedlog_rows = true
}

// LogRowsCleared reports if the "log_rows" edge to the LogRow entity was cleared.
func (m *CascadeSessionMutation) LogRowsCleared() bool {
	return m.clearedlog_rows
}

// RemoveLogRowIDs removes the "log_rows" edge to the LogRow entity by IDs.
func (m *CascadeSessionMutation) RemoveLogRowIDs(ids ...string) {
	if m.removedlog_rows == nil {
		m.removedlog_rows = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.log_rows, ids[i])
		m.removedlog_rows[ids[i]] = struct{}{}
	}
}

// RemovedLogRows returns the removed IDs of the "log_rows" edge to the LogRow entity.
func (m *CascadeSessionMutation) RemovedLogRowsIDs() (ids []string) {
	for id := range m.removedlog_rows {
		ids = append(ids, id)
	}
	return
}

// LogRowsIDs returns the "log_rows" edge IDs in the mutation.
func (m *CascadeSessionMutation) LogRowsIDs() (ids []string) {
	for id := range m.log_rows {
		ids = append(ids, id)
	}
	return
}

// ResetLogRows resets all changes to the "log_rows" edge.
func (m *CascadeSessionMutation) ResetLogRows() {
	m.log_rows = nil
	m.clearedlog_rows = false
	m.removedlog_rows = nil
}

// AddCheckpointIDs adds the "checkpoints" edge to the Checkpoint entity by ids.
func (m *CascadeSessionMutation) AddCheckpointIDs(ids ...string) {
	if m.checkpoints == nil {
		m.checkpoints = make(map[string]struct{})
	}
	for i := range ids {
		m.checkpoints[ids[i]] = struct{}{}
	}
}

// ClearCheckpoints clears the "checkpoints" edge to the Checkpoint entity.
func (m *CascadeSessionMutation) ClearCheckpoints() {
	m.clearedcheckpoints = true
}

// CheckpointsCleared reports if the "checkpoints" edge to the Checkpoint entity was cleared.
func (m *CascadeSessionMutation) CheckpointsCleared() bool {
	return m.clearedcheckpoints
}

// RemoveCheckpointIDs removes the "checkpoints" edge to the Checkpoint entity by IDs.
func (m *CascadeSessionMutation) RemoveCheckpointIDs(ids ...string) {
	if m.removedcheckpoints == nil {
		m.removedcheckpoints = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.checkpoints, ids[i])
		m.removedcheckpoints[ids[i]] = struct{}{}
	}
}

// RemovedCheckpoints returns the removed IDs of the "checkpoints" edge to the Checkpoint entity.
func (m *CascadeSessionMutation) RemovedCheckpointsIDs() (ids []string) {
	for id := range m.removedcheckpoints {
		ids = append(ids, id)
	}
	return
}

// CheckpointsIDs returns the "checkpoints" edge IDs in the mutation.
func (m *CascadeSessionMutation) CheckpointsIDs() (ids []string) {
	for id := range m.checkpoints {
		ids = append(ids, id)
	}
	return
}

// ResetCheckpoints resets all changes to the "checkpoints" edge.
func (m *CascadeSessionMutation) ResetCheckpoints() {
	m.checkpoints = nil
	m.clearedcheckpoints = false
	m.removedcheckpoints = nil
}

// Where appends a list predicates to the CascadeSessionMutation builder.
func (m *CascadeSessionMutation) Where(ps ...predicate.CascadeSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CascadeSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CascadeSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CascadeSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CascadeSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CascadeSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CascadeSession).
func (m *CascadeSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CascadeSessionMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.cascade_id != nil {
		fields = append(fields, cascadesession.FieldCascadeID)
	}
	if m.parent != nil {
		fields = append(fields, cascadesession.FieldParentSessionID)
	}
	if m.depth != nil {
		fields = append(fields, cascadesession.FieldDepth)
	}
	if m.status != nil {
		fields = append(fields, cascadesession.FieldStatus)
	}
	if m.current_phase != nil {
		fields = append(fields, cascadesession.FieldCurrentPhase)
	}
	if m.error_message != nil {
		fields = append(fields, cascadesession.FieldErrorMessage)
	}
	if m.cancel_requested != nil {
		fields = append(fields, cascadesession.FieldCancelRequested)
	}
	if m.cancel_reason != nil {
		fields = append(fields, cascadesession.FieldCancelReason)
	}
	if m.input != nil {
		fields = append(fields, cascadesession.FieldInput)
	}
	if m.session_metadata != nil {
		fields = append(fields, cascadesession.FieldSessionMetadata)
	}
	if m.pod_id != nil {
		fields = append(fields, cascadesession.FieldPodID)
	}
	if m.heartbeat_at != nil {
		fields = append(fields, cascadesession.FieldHeartbeatAt)
	}
	if m.created_at != nil {
		fields = append(fields, cascadesession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, cascadesession.FieldUpdatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, cascadesession.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, cascadesession.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CascadeSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cascadesession.FieldCascadeID:
		return m.CascadeID()
	case cascadesession.FieldParentSessionID:
		return m.ParentSessionID()
	case cascadesession.FieldDepth:
		return m.Depth()
	case cascadesession.FieldStatus:
		return m.Status()
	case cascadesession.FieldCurrentPhase:
		return m.CurrentPhase()
	case cascadesession.FieldErrorMessage:
		return m.ErrorMessage()
	case cascadesession.FieldCancelRequested:
		return m.CancelRequested()
	case cascadesession.FieldCancelReason:
		return m.CancelReason()
	case cascadesession.FieldInput:
		return m.Input()
	case cascadesession.FieldSessionMetadata:
		return m.SessionMetadata()
	case cascadesession.FieldPodID:
		return m.PodID()
	case cascadesession.FieldHeartbeatAt:
		return m.HeartbeatAt()
	case cascadesession.FieldCreatedAt:
		return m.CreatedAt()
	case cascadesession.FieldUpdatedAt:
		return m.UpdatedAt()
	case cascadesession.FieldStartedAt:
		return m.StartedAt()
	case cascadesession.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CascadeSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cascadesession.FieldCascadeID:
		return m.OldCascadeID(ctx)
	case cascadesession.FieldParentSessionID:
		return m.OldParentSessionID(ctx)
	case cascadesession.FieldDepth:
		return m.OldDepth(ctx)
	case cascadesession.FieldStatus:
		return m.OldStatus(ctx)
	case cascadesession.FieldCurrentPhase:
		return m.OldCurrentPhase(ctx)
	case cascadesession.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case cascadesession.FieldCancelRequested:
		return m.OldCancelRequested(ctx)
	case cascadesession.FieldCancelReason:
		return m.OldCancelReason(ctx)
	case cascadesession.FieldInput:
		return m.OldInput(ctx)
	case cascadesession.FieldSessionMetadata:
		return m.OldSessionMetadata(ctx)
	case cascadesession.FieldPodID:
		return m.OldPodID(ctx)
	case cascadesession.FieldHeartbeatAt:
		return m.OldHeartbeatAt(ctx)
	case cascadesession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case cascadesession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case cascadesession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case cascadesession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CascadeSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CascadeSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cascadesession.FieldCascadeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCascadeID(v)
		return nil
	case cascadesession.FieldParentSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentSessionID(v)
		return nil
	case cascadesession.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepth(v)
		return nil
	case cascadesession.FieldStatus:
		v, ok := value.(cascadesession.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case cascadesession.FieldCurrentPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPhase(v)
		return nil
	case cascadesession.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case cascadesession.FieldCancelRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequested(v)
		return nil
	case cascadesession.FieldCancelReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelReason(v)
		return nil
	case cascadesession.FieldInput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case cascadesession.FieldSessionMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionMetadata(v)
		return nil
	case cascadesession.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case cascadesession.FieldHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeartbeatAt(v)
		return nil
	case cascadesession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case cascadesession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case cascadesession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case cascadesession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CascadeSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CascadeSessionMutation) AddedFields() []string {
	var fields []string
	if m.adddepth != nil {
		fields = append(fields, cascadesession.FieldDepth)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CascadeSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cascadesession.FieldDepth:
		return m.AddedDepth()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CascadeSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cascadesession.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDepth(v)
		return nil
	}
	return fmt.Errorf("unknown CascadeSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CascadeSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(cascadesession.FieldParentSessionID) {
		fields = append(fields, cascadesession.FieldParentSessionID)
	}
	if m.FieldCleared(cascadesession.FieldCurrentPhase) {
		fields = append(fields, cascadesession.FieldCurrentPhase)
	}
	if m.FieldCleared(cascadesession.FieldErrorMessage) {
		fields = append(fields, cascadesession.FieldErrorMessage)
	}
	if m.FieldCleared(cascadesession.FieldCancelReason) {
		fields = append(fields, cascadesession.FieldCancelReason)
	}
	if m.FieldCleared(cascadesession.FieldInput) {
		fields = append(fields, cascadesession.FieldInput)
	}
	if m.FieldCleared(cascadesession.FieldSessionMetadata) {
		fields = append(fields, cascadesession.FieldSessionMetadata)
	}
	if m.FieldCleared(cascadesession.FieldPodID) {
		fields = append(fields, cascadesession.FieldPodID)
	}
	if m.FieldCleared(cascadesession.FieldHeartbeatAt) {
		fields = append(fields, cascadesession.FieldHeartbeatAt)
	}
	if m.FieldCleared(cascadesession.FieldStartedAt) {
		fields = append(fields, cascadesession.FieldStartedAt)
	}
	if m.FieldCleared(cascadesession.FieldCompletedAt) {
		fields = append(fields, cascadesession.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CascadeSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CascadeSessionMutation) ClearField(name string) error {
	switch name {
	case cascadesession.FieldParentSessionID:
		m.ClearParentSessionID()
		return nil
	case cascadesession.FieldCurrentPhase:
		m.ClearCurrentPhase()
		return nil
	case cascadesession.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case cascadesession.FieldCancelReason:
		m.ClearCancelReason()
		return nil
	case cascadesession.FieldInput:
		m.ClearInput()
		return nil
	case cascadesession.FieldSessionMetadata:
		m.ClearSessionMetadata()
		return nil
	case cascadesession.FieldPodID:
		m.ClearPodID()
		return nil
	case cascadesession.FieldHeartbeatAt:
		m.ClearHeartbeatAt()
		return nil
	case cascadesession.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case cascadesession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown CascadeSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CascadeSessionMutation) ResetField(name string) error {
	switch name {
	case cascadesession.FieldCascadeID:
		m.ResetCascadeID()
		return nil
	case cascadesession.FieldParentSessionID:
		m.ResetParentSessionID()
		return nil
	case cascadesession.FieldDepth:
		m.ResetDepth()
		return nil
	case cascadesession.FieldStatus:
		m.ResetStatus()
		return nil
	case cascadesession.FieldCurrentPhase:
		m.ResetCurrentPhase()
		return nil
	case cascadesession.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case cascadesession.FieldCancelRequested:
		m.ResetCancelRequested()
		return nil
	case cascadesession.FieldCancelReason:
		m.ResetCancelReason()
		return nil
	case cascadesession.FieldInput:
		m.ResetInput()
		return nil
	case cascadesession.FieldSessionMetadata:
		m.ResetSessionMetadata()
		return nil
	case cascadesession.FieldPodID:
		m.ResetPodID()
		return nil
	case cascadesession.FieldHeartbeatAt:
		m.ResetHeartbeatAt()
		return nil
	case cascadesession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case cascadesession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case cascadesession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case cascadesession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown CascadeSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CascadeSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.parent != nil {
		edges = append(edges, cascadesession.EdgeParent)
	}
	if m.children != nil {
		edges = append(edges, cascadesession.EdgeChildren)
	}
	if m.log_rows != nil {
		edges = append(edges, cascadesession.EdgeLogRows)
	}
	if m.checkpoints != nil {
		edges = append(edges, cascadesession.EdgeCheckpoints)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CascadeSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case cascadesession.EdgeParent:
		if id := m.parent; id != nil {
			return []ent.Value{*id}
		}
	case cascadesession.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.children))
		for id := range m.children {
			ids = append(ids, id)
		}
		return ids
	case cascadesession.EdgeLogRows:
		ids := make([]ent.Value, 0, len(m.log_rows))
		for id := range m.log_rows {
			ids = append(ids, id)
		}
		return ids
	case cascadesession.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.checkpoints))
		for id := range m.checkpoints {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CascadeSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedchildren != nil {
		edges = append(edges, cascadesession.EdgeChildren)
	}
	if m.removedlog_rows != nil {
		edges = append(edges, cascadesession.EdgeLogRows)
	}
	if m.removedcheckpoints != nil {
		edges = append(edges, cascadesession.EdgeCheckpoints)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CascadeSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case cascadesession.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.removedchildren))
		for id := range m.removedchildren {
			ids = append(ids, id)
		}
		return ids
	case cascadesession.EdgeLogRows:
		ids := make([]ent.Value, 0, len(m.removedlog_rows))
		for id := range m.removedlog_rows {
			ids = append(ids, id)
		}
		return ids
	case cascadesession.EdgeCheckpoints:
		ids := make([]ent.Value, 0, len(m.removedcheckpoints))
		for id := range m.removedcheckpoints {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CascadeSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedparent {
		edges = append(edges, cascadesession.EdgeParent)
	}
	if m.clearedchildren {
		edges = append(edges, cascadesession.EdgeChildren)
	}
	if m.clearedlog_rows {
		edges = append(edges, cascadesession.EdgeLogRows)
	}
	if m.clearedcheckpoints {
		edges = append(edges, cascadesession.EdgeCheckpoints)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CascadeSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case cascadesession.EdgeParent:
		return m.clearedparent
	case cascadesession.EdgeChildren:
		return m.clearedchildren
	case cascadesession.EdgeLogRows:
		return m.clearedlog_rows
	case cascadesession.EdgeCheckpoints:
		return m.clearedcheckpoints
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CascadeSessionMutation) ClearEdge(name string) error {
	switch name {
	case cascadesession.EdgeParent:
		m.ClearParent()
		return nil
	}
	return fmt.Errorf("unknown CascadeSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CascadeSessionMutation) ResetEdge(name string) error {
	switch name {
	case cascadesession.EdgeParent:
		m.ResetParent()
		return nil
	case cascadesession.EdgeChildren:
		m.ResetChildren()
		return nil
	case cascadesession.EdgeLogRows:
		m.ResetLogRows()
		return nil
	case cascadesession.EdgeCheckpoints:
		m.ResetCheckpoints()
		return nil
	}
	return fmt.Errorf("unknown CascadeSession edge %s", name)
}

// CheckpointMutation represents an operation that mutates the Checkpoint nodes in the graph.
type CheckpointMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	cascade_id             *string
	phase_name             *string
	_type                  *checkpoint.Type
	status                 *checkpoint.Status
	ui_spec                *map[string]interface{}
	phase_output           *string
	sounding_outputs_json  *string
	sounding_metadata_json *string
	timeout_seconds        *int
	addtimeout_seconds     *int
	trace_context          *map[string]interface{}
	response               *map[string]interface{}
	created_at             *time.Time
	responded_at           *time.Time
	clearedFields          map[string]struct{}
	session                *string
	clearedsession         bool
	done                   bool
	oldValue               func(context.Context) (*Checkpoint, error)
	predicates             []predicate.Checkpoint
}

var _ ent.Mutation = (*CheckpointMutation)(nil)

// checkpointOption allows management of the mutation configuration using functional options.
type checkpointOption func(*CheckpointMutation)

// newCheckpointMutation creates new mutation for the Checkpoint entity.
func newCheckpointMutation(c config, op Op, opts ...checkpointOption) *CheckpointMutation {
	m := &CheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCheckpointID sets the ID field of the mutation.
func withCheckpointID(id string) checkpointOption {
	return func(m *CheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *Checkpoint
		)
		m.oldValue = func(ctx context.Context) (*Checkpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Checkpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCheckpoint sets the old Checkpoint of the mutation.
func withCheckpoint(node *Checkpoint) checkpointOption {
	return func(m *CheckpointMutation) {
		m.oldValue = func(context.Context) (*Checkpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Checkpoint entities.
func (m *CheckpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CheckpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CheckpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Checkpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *CheckpointMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *CheckpointMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *CheckpointMutation) ResetSessionID() {
	m.session = nil
}

// SetCascadeID sets the "cascade_id" field.
func (m *CheckpointMutation) SetCascadeID(s string) {
	m.cascade_id = &s
}

// CascadeID returns the value of the "cascade_id" field in the mutation.
func (m *CheckpointMutation) CascadeID() (r string, exists bool) {
	v := m.cascade_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCascadeID returns the old "cascade_id" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCascadeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCascadeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCascadeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCascadeID: %w", err)
	}
	return oldValue.CascadeID, nil
}

// ResetCascadeID resets all changes to the "cascade_id" field.
func (m *CheckpointMutation) ResetCascadeID() {
	m.cascade_id = nil
}

// SetPhaseName sets the "phase_name" field.
func (m *CheckpointMutation) SetPhaseName(s string) {
	m.phase_name = &s
}

// PhaseName returns the value of the "phase_name" field in the mutation.
func (m *CheckpointMutation) PhaseName() (r string, exists bool) {
	v := m.phase_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseName returns the old "phase_name" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldPhaseName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseName: %w", err)
	}
	return oldValue.PhaseName, nil
}

// ResetPhaseName resets all changes to the "phase_name" field.
func (m *CheckpointMutation) ResetPhaseName() {
	m.phase_name = nil
}

// SetType sets the "type" field.
func (m *CheckpointMutation) SetType(c checkpoint.Type) {
	m._type = &c
}

// GetType returns the value of the "type" field in the mutation.
func (m *CheckpointMutation) GetType() (r checkpoint.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldType(ctx context.Context) (v checkpoint.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *CheckpointMutation) ResetType() {
	m._type = nil
}

// SetStatus sets the "status" field.
func (m *CheckpointMutation) SetStatus(c checkpoint.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CheckpointMutation) Status() (r checkpoint.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldStatus(ctx context.Context) (v checkpoint.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CheckpointMutation) ResetStatus() {
	m.status = nil
}

// SetUISpec sets the "ui_spec" field.
func (m *CheckpointMutation) SetUISpec(value map[string]interface{}) {
	m.ui_spec = &value
}

// UISpec returns the value of the "ui_spec" field in the mutation.
func (m *CheckpointMutation) UISpec() (r map[string]interface{}, exists bool) {
	v := m.ui_spec
	if v == nil {
		return
	}
	return *v, true
}

// OldUISpec returns the old "ui_spec" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldUISpec(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUISpec is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUISpec requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUISpec: %w", err)
	}
	return oldValue.UISpec, nil
}

// ResetUISpec resets all changes to the "ui_spec" field.
func (m *CheckpointMutation) ResetUISpec() {
	m.ui_spec = nil
}

// SetPhaseOutput sets the "phase_output" field.
func (m *CheckpointMutation) SetPhaseOutput(s string) {
	m.phase_output = &s
}

// PhaseOutput returns the value of the "phase_output" field in the mutation.
func (m *CheckpointMutation) PhaseOutput() (r string, exists bool) {
	v := m.phase_output
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseOutput returns the old "phase_output" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldPhaseOutput(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseOutput: %w", err)
	}
	return oldValue.PhaseOutput, nil
}

// ClearPhaseOutput clears the value of the "phase_output" field.
func (m *CheckpointMutation) ClearPhaseOutput() {
	m.phase_output = nil
	m.clearedFields[checkpoint.FieldPhaseOutput] = struct{}{}
}

// PhaseOutputCleared returns if the "phase_output" field was cleared in this mutation.
func (m *CheckpointMutation) PhaseOutputCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldPhaseOutput]
	return ok
}

// ResetPhaseOutput resets all changes to the "phase_output" field.
func (m *CheckpointMutation) ResetPhaseOutput() {
	m.phase_output = nil
	delete(m.clearedFields, checkpoint.FieldPhaseOutput)
}

// SetSoundingOutputsJSON sets the "sounding_outputs_json" field.
func (m *CheckpointMutation) SetSoundingOutputsJSON(s string) {
	m.sounding_outputs_json = &s
}

// SoundingOutputsJSON returns the value of the "sounding_outputs_json" field in the mutation.
func (m *CheckpointMutation) SoundingOutputsJSON() (r string, exists bool) {
	v := m.sounding_outputs_json
	if v == nil {
		return
	}
	return *v, true
}

// OldSoundingOutputsJSON returns the old "sounding_outputs_json" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldSoundingOutputsJSON(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSoundingOutputsJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSoundingOutputsJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSoundingOutputsJSON: %w", err)
	}
	return oldValue.SoundingOutputsJSON, nil
}

// ClearSoundingOutputsJSON clears the value of the "sounding_outputs_json" field.
func (m *CheckpointMutation) ClearSoundingOutputsJSON() {
	m.sounding_outputs_json = nil
	m.clearedFields[checkpoint.FieldSoundingOutputsJSON] = struct{}{}
}

// SoundingOutputsJSONCleared returns if the "sounding_outputs_json" field was cleared in this mutation.
func (m *CheckpointMutation) SoundingOutputsJSONCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldSoundingOutputsJSON]
	return ok
}

// ResetSoundingOutputsJSON resets all changes to the "sounding_outputs_json" field.
func (m *CheckpointMutation) ResetSoundingOutputsJSON() {
	m.sounding_outputs_json = nil
	delete(m.clearedFields, checkpoint.FieldSoundingOutputsJSON)
}

// SetSoundingMetadataJSON sets the "sounding_metadata_json" field.
func (m *CheckpointMutation) SetSoundingMetadataJSON(s string) {
	m.sounding_metadata_json = &s
}

// SoundingMetadataJSON returns the value of the "sounding_metadata_json" field in the mutation.
func (m *CheckpointMutation) SoundingMetadataJSON() (r string, exists bool) {
	v := m.sounding_metadata_json
	if v == nil {
		return
	}
	return *v, true
}

// OldSoundingMetadataJSON returns the old "sounding_metadata_json" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldSoundingMetadataJSON(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSoundingMetadataJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSoundingMetadataJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSoundingMetadataJSON: %w", err)
	}
	return oldValue.SoundingMetadataJSON, nil
}

// ClearSoundingMetadataJSON clears the value of the "sounding_metadata_json" field.
func (m *CheckpointMutation) ClearSoundingMetadataJSON() {
	m.sounding_metadata_json = nil
	m.clearedFields[checkpoint.FieldSoundingMetadataJSON] = struct{}{}
}

// SoundingMetadataJSONCleared returns if the "sounding_metadata_json" field was cleared in this mutation.
func (m *CheckpointMutation) SoundingMetadataJSONCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldSoundingMetadataJSON]
	return ok
}

// ResetSoundingMetadataJSON resets all changes to the "sounding_metadata_json" field.
func (m *CheckpointMutation) ResetSoundingMetadataJSON() {
	m.sounding_metadata_json = nil
	delete(m.clearedFields, checkpoint.FieldSoundingMetadataJSON)
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (m *CheckpointMutation) SetTimeoutSeconds(i int) {
	m.timeout_seconds = &i
	m.addtimeout_seconds = nil
}

// TimeoutSeconds returns the value of the "timeout_seconds" field in the mutation.
func (m *CheckpointMutation) TimeoutSeconds() (r int, exists bool) {
	v := m.timeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutSeconds returns the old "timeout_seconds" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldTimeoutSeconds(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutSeconds: %w", err)
	}
	return oldValue.TimeoutSeconds, nil
}

// AddTimeoutSeconds adds i to the "timeout_seconds" field.
func (m *CheckpointMutation) AddTimeoutSeconds(i int) {
	if m.addtimeout_seconds != nil {
		*m.addtimeout_seconds += i
	} else {
		m.addtimeout_seconds = &i
	}
}

// AddedTimeoutSeconds returns the value that was added to the "timeout_seconds" field in this mutation.
func (m *CheckpointMutation) AddedTimeoutSeconds() (r int, exists bool) {
	v := m.addtimeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearTimeoutSeconds clears the value of the "timeout_seconds" field.
func (m *CheckpointMutation) ClearTimeoutSeconds() {
	m.timeout_seconds = nil
	m.addtimeout_seconds = nil
	m.clearedFields[checkpoint.FieldTimeoutSeconds] = struct{}{}
}

// TimeoutSecondsCleared returns if the "timeout_seconds" field was cleared in this mutation.
func (m *CheckpointMutation) TimeoutSecondsCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldTimeoutSeconds]
	return ok
}

// ResetTimeoutSeconds resets all changes to the "timeout_seconds" field.
func (m *CheckpointMutation) ResetTimeoutSeconds() {
	m.timeout_seconds = nil
	m.addtimeout_seconds = nil
	delete(m.clearedFields, checkpoint.FieldTimeoutSeconds)
}

// SetTraceContext sets the "trace_context" field.
func (m *CheckpointMutation) SetTraceContext(value map[string]interface{}) {
	m.trace_context = &value
}

// TraceContext returns the value of the "trace_context" field in the mutation.
func (m *CheckpointMutation) TraceContext() (r map[string]interface{}, exists bool) {
	v := m.trace_context
	if v == nil {
		return
	}
	return *v, true
}

// OldTraceContext returns the old "trace_context" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldTraceContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTraceContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTraceContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTraceContext: %w", err)
	}
	return oldValue.TraceContext, nil
}

// ClearTraceContext clears the value of the "trace_context" field.
func (m *CheckpointMutation) ClearTraceContext() {
	m.trace_context = nil
	m.clearedFields[checkpoint.FieldTraceContext] = struct{}{}
}

// TraceContextCleared returns if the "trace_context" field was cleared in this mutation.
func (m *CheckpointMutation) TraceContextCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldTraceContext]
	return ok
}

// ResetTraceContext resets all changes to the "trace_context" field.
func (m *CheckpointMutation) ResetTraceContext() {
	m.trace_context = nil
	delete(m.clearedFields, checkpoint.FieldTraceContext)
}

// SetResponse sets the "response" field.
func (m *CheckpointMutation) SetResponse(value map[string]interface{}) {
	m.response = &value
}

// Response returns the value of the "response" field in the mutation.
func (m *CheckpointMutation) Response() (r map[string]interface{}, exists bool) {
	v := m.response
	if v == nil {
		return
	}
	return *v, true
}

// OldResponse returns the old "response" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldResponse(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponse: %w", err)
	}
	return oldValue.Response, nil
}

// ClearResponse clears the value of the "response" field.
func (m *CheckpointMutation) ClearResponse() {
	m.response = nil
	m.clearedFields[checkpoint.FieldResponse] = struct{}{}
}

// ResponseCleared returns if the "response" field was cleared in this mutation.
func (m *CheckpointMutation) ResponseCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldResponse]
	return ok
}

// ResetResponse resets all changes to the "response" field.
func (m *CheckpointMutation) ResetResponse() {
	m.response = nil
	delete(m.clearedFields, checkpoint.FieldResponse)
}

// SetCreatedAt sets the "created_at" field.
func (m *CheckpointMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CheckpointMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CheckpointMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetRespondedAt sets the "responded_at" field.
func (m *CheckpointMutation) SetRespondedAt(t time.Time) {
	m.responded_at = &t
}

// RespondedAt returns the value of the "responded_at" field in the mutation.
func (m *CheckpointMutation) RespondedAt() (r time.Time, exists bool) {
	v := m.responded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRespondedAt returns the old "responded_at" field's value of the Checkpoint entity.
// If the Checkpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CheckpointMutation) OldRespondedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRespondedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRespondedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRespondedAt: %w", err)
	}
	return oldValue.RespondedAt, nil
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (m *CheckpointMutation) ClearRespondedAt() {
	m.responded_at = nil
	m.clearedFields[checkpoint.FieldRespondedAt] = struct{}{}
}

// RespondedAtCleared returns if the "responded_at" field was cleared in this mutation.
func (m *CheckpointMutation) RespondedAtCleared() bool {
	_, ok := m.clearedFields[checkpoint.FieldRespondedAt]
	return ok
}

// ResetRespondedAt resets all changes to the "responded_at" field.
func (m *CheckpointMutation) ResetRespondedAt() {
	m.responded_at = nil
	delete(m.clearedFields, checkpoint.FieldRespondedAt)
}

// ClearSession clears the "session" edge to the CascadeSession entity.
func (m *CheckpointMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[checkpoint.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the CascadeSession entity was cleared.
func (m *CheckpointMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *CheckpointMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *CheckpointMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the CheckpointMutation builder.
func (m *CheckpointMutation) Where(ps ...predicate.Checkpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Checkpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Checkpoint).
func (m *CheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CheckpointMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.session != nil {
		fields = append(fields, checkpoint.FieldSessionID)
	}
	if m.cascade_id != nil {
		fields = append(fields, checkpoint.FieldCascadeID)
	}
	if m.phase_name != nil {
		fields = append(fields, checkpoint.FieldPhaseName)
	}
	if m._type != nil {
		fields = append(fields, checkpoint.FieldType)
	}
	if m.status != nil {
		fields = append(fields, checkpoint.FieldStatus)
	}
	if m.ui_spec != nil {
		fields = append(fields, checkpoint.FieldUISpec)
	}
	if m.phase_output != nil {
		fields = append(fields, checkpoint.FieldPhaseOutput)
	}
	if m.sounding_outputs_json != nil {
		fields = append(fields, checkpoint.FieldSoundingOutputsJSON)
	}
	if m.sounding_metadata_json != nil {
		fields = append(fields, checkpoint.FieldSoundingMetadataJSON)
	}
	if m.timeout_seconds != nil {
		fields = append(fields, checkpoint.FieldTimeoutSeconds)
	}
	if m.trace_context != nil {
		fields = append(fields, checkpoint.FieldTraceContext)
	}
	if m.response != nil {
		fields = append(fields, checkpoint.FieldResponse)
	}
	if m.created_at != nil {
		fields = append(fields, checkpoint.FieldCreatedAt)
	}
	if m.responded_at != nil {
		fields = append(fields, checkpoint.FieldRespondedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldSessionID:
		return m.SessionID()
	case checkpoint.FieldCascadeID:
		return m.CascadeID()
	case checkpoint.FieldPhaseName:
		return m.PhaseName()
	case checkpoint.FieldType:
		return m.GetType()
	case checkpoint.FieldStatus:
		return m.Status()
	case checkpoint.FieldUISpec:
		return m.UISpec()
	case checkpoint.FieldPhaseOutput:
		return m.PhaseOutput()
	case checkpoint.FieldSoundingOutputsJSON:
		return m.SoundingOutputsJSON()
	case checkpoint.FieldSoundingMetadataJSON:
		return m.SoundingMetadataJSON()
	case checkpoint.FieldTimeoutSeconds:
		return m.TimeoutSeconds()
	case checkpoint.FieldTraceContext:
		return m.TraceContext()
	case checkpoint.FieldResponse:
		return m.Response()
	case checkpoint.FieldCreatedAt:
		return m.CreatedAt()
	case checkpoint.FieldRespondedAt:
		return m.RespondedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case checkpoint.FieldSessionID:
		return m.OldSessionID(ctx)
	case checkpoint.FieldCascadeID:
		return m.OldCascadeID(ctx)
	case checkpoint.FieldPhaseName:
		return m.OldPhaseName(ctx)
	case checkpoint.FieldType:
		return m.OldType(ctx)
	case checkpoint.FieldStatus:
		return m.OldStatus(ctx)
	case checkpoint.FieldUISpec:
		return m.OldUISpec(ctx)
	case checkpoint.FieldPhaseOutput:
		return m.OldPhaseOutput(ctx)
	case checkpoint.FieldSoundingOutputsJSON:
		return m.OldSoundingOutputsJSON(ctx)
	case checkpoint.FieldSoundingMetadataJSON:
		return m.OldSoundingMetadataJSON(ctx)
	case checkpoint.FieldTimeoutSeconds:
		return m.OldTimeoutSeconds(ctx)
	case checkpoint.FieldTraceContext:
		return m.OldTraceContext(ctx)
	case checkpoint.FieldResponse:
		return m.OldResponse(ctx)
	case checkpoint.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case checkpoint.FieldRespondedAt:
		return m.OldRespondedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Checkpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case checkpoint.FieldCascadeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCascadeID(v)
		return nil
	case checkpoint.FieldPhaseName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseName(v)
		return nil
	case checkpoint.FieldType:
		v, ok := value.(checkpoint.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case checkpoint.FieldStatus:
		v, ok := value.(checkpoint.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case checkpoint.FieldUISpec:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUISpec(v)
		return nil
	case checkpoint.FieldPhaseOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseOutput(v)
		return nil
	case checkpoint.FieldSoundingOutputsJSON:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSoundingOutputsJSON(v)
		return nil
	case checkpoint.FieldSoundingMetadataJSON:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSoundingMetadataJSON(v)
		return nil
	case checkpoint.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutSeconds(v)
		return nil
	case checkpoint.FieldTraceContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTraceContext(v)
		return nil
	case checkpoint.FieldResponse:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponse(v)
		return nil
	case checkpoint.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case checkpoint.FieldRespondedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRespondedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CheckpointMutation) AddedFields() []string {
	var fields []string
	if m.addtimeout_seconds != nil {
		fields = append(fields, checkpoint.FieldTimeoutSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CheckpointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case checkpoint.FieldTimeoutSeconds:
		return m.AddedTimeoutSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case checkpoint.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown Checkpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CheckpointMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(checkpoint.FieldPhaseOutput) {
		fields = append(fields, checkpoint.FieldPhaseOutput)
	}
	if m.FieldCleared(checkpoint.FieldSoundingOutputsJSON) {
		fields = append(fields, checkpoint.FieldSoundingOutputsJSON)
	}
	if m.FieldCleared(checkpoint.FieldSoundingMetadataJSON) {
		fields = append(fields, checkpoint.FieldSoundingMetadataJSON)
	}
	if m.FieldCleared(checkpoint.FieldTimeoutSeconds) {
		fields = append(fields, checkpoint.FieldTimeoutSeconds)
	}
	if m.FieldCleared(checkpoint.FieldTraceContext) {
		fields = append(fields, checkpoint.FieldTraceContext)
	}
	if m.FieldCleared(checkpoint.FieldResponse) {
		fields = append(fields, checkpoint.FieldResponse)
	}
	if m.FieldCleared(checkpoint.FieldRespondedAt) {
		fields = append(fields, checkpoint.FieldRespondedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CheckpointMutation) ClearField(name string) error {
	switch name {
	case checkpoint.FieldPhaseOutput:
		m.ClearPhaseOutput()
		return nil
	case checkpoint.FieldSoundingOutputsJSON:
		m.ClearSoundingOutputsJSON()
		return nil
	case checkpoint.FieldSoundingMetadataJSON:
		m.ClearSoundingMetadataJSON()
		return nil
	case checkpoint.FieldTimeoutSeconds:
		m.ClearTimeoutSeconds()
		return nil
	case checkpoint.FieldTraceContext:
		m.ClearTraceContext()
		return nil
	case checkpoint.FieldResponse:
		m.ClearResponse()
		return nil
	case checkpoint.FieldRespondedAt:
		m.ClearRespondedAt()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CheckpointMutation) ResetField(name string) error {
	switch name {
	case checkpoint.FieldSessionID:
		m.ResetSessionID()
		return nil
	case checkpoint.FieldCascadeID:
		m.ResetCascadeID()
		return nil
	case checkpoint.FieldPhaseName:
		m.ResetPhaseName()
		return nil
	case checkpoint.FieldType:
		m.ResetType()
		return nil
	case checkpoint.FieldStatus:
		m.ResetStatus()
		return nil
	case checkpoint.FieldUISpec:
		m.ResetUISpec()
		return nil
	case checkpoint.FieldPhaseOutput:
		m.ResetPhaseOutput()
		return nil
	case checkpoint.FieldSoundingOutputsJSON:
		m.ResetSoundingOutputsJSON()
		return nil
	case checkpoint.FieldSoundingMetadataJSON:
		m.ResetSoundingMetadataJSON()
		return nil
	case checkpoint.FieldTimeoutSeconds:
		m.ResetTimeoutSeconds()
		return nil
	case checkpoint.FieldTraceContext:
		m.ResetTraceContext()
		return nil
	case checkpoint.FieldResponse:
		m.ResetResponse()
		return nil
	case checkpoint.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case checkpoint.FieldRespondedAt:
		m.ResetRespondedAt()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, checkpoint.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CheckpointMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case checkpoint.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, checkpoint.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CheckpointMutation) EdgeCleared(name string) bool {
	switch name {
	case checkpoint.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CheckpointMutation) ClearEdge(name string) error {
	switch name {
	case checkpoint.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CheckpointMutation) ResetEdge(name string) error {
	switch name {
	case checkpoint.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Checkpoint edge %s", name)
}

// LogRowMutation represents an operation that mutates the LogRow nodes in the graph.
type LogRowMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	timestamp          *time.Time
	trace_id           *string
	parent_id          *string
	parent_session_id  *string
	parent_message_id  *string
	depth              *int
	adddepth           *int
	node_type          *string
	role               *string
	sounding_index     *int
	addsounding_index  *int
	is_winner          *bool
	reforge_step       *int
	addreforge_step    *int
	attempt_number     *int
	addattempt_number  *int
	turn_number        *int
	addturn_number     *int
	mutation_applied   *bool
	mutation_type      *string
	mutation_template  *string
	species_hash       *string
	cascade_id         *string
	cascade_file       *string
	cascade_json       *string
	phase_name         *string
	phase_json         *string
	model              *string
	model_requested    *string
	request_id         *string
	provider           *string
	duration_ms        *int
	addduration_ms     *int
	tokens_in          *int
	addtokens_in       *int
	tokens_out         *int
	addtokens_out      *int
	cost               *float64
	addcost            *float64
	content_json       *string
	full_request_json  *string
	full_response_json *string
	tool_calls_json    *string
	images_json        *string
	has_images         *bool
	has_base64         *bool
	semantic_actor     *logrow.SemanticActor
	semantic_purpose   *logrow.SemanticPurpose
	is_callout         *bool
	callout_name       *string
	row_metadata       *map[string]interface{}
	clearedFields      map[string]struct{}
	session            *string
	clearedsession     bool
	done               bool
	oldValue           func(context.Context) (*LogRow, error)
	predicates         []predicate.LogRow
}

var _ ent.Mutation = (*LogRowMutation)(nil)

// logrowOption allows management of the mutation configuration using functional options.
type logrowOption func(*LogRowMutation)

// newLogRowMutation creates new mutation for the LogRow entity.
func newLogRowMutation(c config, op Op, opts ...logrowOption) *LogRowMutation {
	m := &LogRowMutation{
		config:        c,
		op:            op,
		typ:           TypeLogRow,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLogRowID sets the ID field of the mutation.
func withLogRowID(id string) logrowOption {
	return func(m *LogRowMutation) {
		var (
			err   error
			once  sync.Once
			value *LogRow
		)
		m.oldValue = func(ctx context.Context) (*LogRow, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LogRow.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLogRow sets the old LogRow of the mutation.
func withLogRow(node *LogRow) logrowOption {
	return func(m *LogRowMutation) {
		m.oldValue = func(context.Context) (*LogRow, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LogRowMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LogRowMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LogRow entities.
func (m *LogRowMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LogRowMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LogRowMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LogRow.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTimestamp sets the "timestamp" field.
func (m *LogRowMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LogRowMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LogRowMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *LogRowMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *LogRowMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *LogRowMutation) ResetSessionID() {
	m.session = nil
}

// SetTraceID sets the "trace_id" field.
func (m *LogRowMutation) SetTraceID(s string) {
	m.trace_id = &s
}

// TraceID returns the value of the "trace_id" field in the mutation.
func (m *LogRowMutation) TraceID() (r string, exists bool) {
	v := m.trace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTraceID returns the old "trace_id" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldTraceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTraceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTraceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTraceID: %w", err)
	}
	return oldValue.TraceID, nil
}

// ResetTraceID resets all changes to the "trace_id" field.
func (m *LogRowMutation) ResetTraceID() {
	m.trace_id = nil
}

// SetParentID sets the "parent_id" field.
func (m *LogRowMutation) SetParentID(s string) {
	m.parent_id = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *LogRowMutation) ParentID() (r string, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldParentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *LogRowMutation) ClearParentID() {
	m.parent_id = nil
	m.clearedFields[logrow.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *LogRowMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[logrow.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *LogRowMutation) ResetParentID() {
	m.parent_id = nil
	delete(m.clearedFields, logrow.FieldParentID)
}

// SetParentSessionID sets the "parent_session_id" field.
func (m *LogRowMutation) SetParentSessionID(s string) {
	m.parent_session_id = &s
}

// ParentSessionID returns the value of the "parent_session_id" field in the mutation.
func (m *LogRowMutation) ParentSessionID() (r string, exists bool) {
	v := m.parent_session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentSessionID returns the old "parent_session_id" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldParentSessionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentSessionID: %w", err)
	}
	return oldValue.ParentSessionID, nil
}

// ClearParentSessionID clears the value of the "parent_session_id" field.
func (m *LogRowMutation) ClearParentSessionID() {
	m.parent_session_id = nil
	m.clearedFields[logrow.FieldParentSessionID] = struct{}{}
}

// ParentSessionIDCleared returns if the "parent_session_id" field was cleared in this mutation.
func (m *LogRowMutation) ParentSessionIDCleared() bool {
	_, ok := m.clearedFields[logrow.FieldParentSessionID]
	return ok
}

// ResetParentSessionID resets all changes to the "parent_session_id" field.
func (m *LogRowMutation) ResetParentSessionID() {
	m.parent_session_id = nil
	delete(m.clearedFields, logrow.FieldParentSessionID)
}

// SetParentMessageID sets the "parent_message_id" field.
func (m *LogRowMutation) SetParentMessageID(s string) {
	m.parent_message_id = &s
}

// ParentMessageID returns the value of the "parent_message_id" field in the mutation.
func (m *LogRowMutation) ParentMessageID() (r string, exists bool) {
	v := m.parent_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentMessageID returns the old "parent_message_id" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldParentMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentMessageID: %w", err)
	}
	return oldValue.ParentMessageID, nil
}

// ClearParentMessageID clears the value of the "parent_message_id" field.
func (m *LogRowMutation) ClearParentMessageID() {
	m.parent_message_id = nil
	m.clearedFields[logrow.FieldParentMessageID] = struct{}{}
}

// ParentMessageIDCleared returns if the "parent_message_id" field was cleared in this mutation.
func (m *LogRowMutation) ParentMessageIDCleared() bool {
	_, ok := m.clearedFields[logrow.FieldParentMessageID]
	return ok
}

// ResetParentMessageID resets all changes to the "parent_message_id" field.
func (m *LogRowMutation) ResetParentMessageID() {
	m.parent_message_id = nil
	delete(m.clearedFields, logrow.FieldParentMessageID)
}

// SetDepth sets the "depth" field.
func (m *LogRowMutation) SetDepth(i int) {
	m.depth = &i
	m.adddepth = nil
}

// Depth returns the value of the "depth" field in the mutation.
func (m *LogRowMutation) Depth() (r int, exists bool) {
	v := m.depth
	if v == nil {
		return
	}
	return *v, true
}

// OldDepth returns the old "depth" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldDepth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepth: %w", err)
	}
	return oldValue.Depth, nil
}

// AddDepth adds i to the "depth" field.
func (m *LogRowMutation) AddDepth(i int) {
	if m.adddepth != nil {
		*m.adddepth += i
	} else {
		m.adddepth = &i
	}
}

// AddedDepth returns the value that was added to the "depth" field in this mutation.
func (m *LogRowMutation) AddedDepth() (r int, exists bool) {
	v := m.adddepth
	if v == nil {
		return
	}
	return *v, true
}

// ResetDepth resets all changes to the "depth" field.
func (m *LogRowMutation) ResetDepth() {
	m.depth = nil
	m.adddepth = nil
}

// SetNodeType sets the "node_type" field.
func (m *LogRowMutation) SetNodeType(s string) {
	m.node_type = &s
}

// NodeType returns the value of the "node_type" field in the mutation.
func (m *LogRowMutation) NodeType() (r string, exists bool) {
	v := m.node_type
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeType returns the old "node_type" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldNodeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeType: %w", err)
	}
	return oldValue.NodeType, nil
}

// ResetNodeType resets all changes to the "node_type" field.
func (m *LogRowMutation) ResetNodeType() {
	m.node_type = nil
}

// SetRole sets the "role" field.
func (m *LogRowMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *LogRowMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ClearRole clears the value of the "role" field.
func (m *LogRowMutation) ClearRole() {
	m.role = nil
	m.clearedFields[logrow.FieldRole] = struct{}{}
}

// RoleCleared returns if the "role" field was cleared in this mutation.
func (m *LogRowMutation) RoleCleared() bool {
	_, ok := m.clearedFields[logrow.FieldRole]
	return ok
}

// ResetRole resets all changes to the "role" field.
func (m *LogRowMutation) ResetRole() {
	m.role = nil
	delete(m.clearedFields, logrow.FieldRole)
}

// SetSoundingIndex sets the "sounding_index" field.
func (m *LogRowMutation) SetSoundingIndex(i int) {
	m.sounding_index = &i
	m.addsounding_index = nil
}

// SoundingIndex returns the value of the "sounding_index" field in the mutation.
func (m *LogRowMutation) SoundingIndex() (r int, exists bool) {
	v := m.sounding_index
	if v == nil {
		return
	}
	return *v, true
}

// OldSoundingIndex returns the old "sounding_index" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldSoundingIndex(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSoundingIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSoundingIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSoundingIndex: %w", err)
	}
	return oldValue.SoundingIndex, nil
}

// AddSoundingIndex adds i to the "sounding_index" field.
func (m *LogRowMutation) AddSoundingIndex(i int) {
	if m.addsounding_index != nil {
		*m.addsounding_index += i
	} else {
		m.addsounding_index = &i
	}
}

// AddedSoundingIndex returns the value that was added to the "sounding_index" field in this mutation.
func (m *LogRowMutation) AddedSoundingIndex() (r int, exists bool) {
	v := m.addsounding_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearSoundingIndex clears the value of the "sounding_index" field.
func (m *LogRowMutation) ClearSoundingIndex() {
	m.sounding_index = nil
	m.addsounding_index = nil
	m.clearedFields[logrow.FieldSoundingIndex] = struct{}{}
}

// SoundingIndexCleared returns if the "sounding_index" field was cleared in this mutation.
func (m *LogRowMutation) SoundingIndexCleared() bool {
	_, ok := m.clearedFields[logrow.FieldSoundingIndex]
	return ok
}

// ResetSoundingIndex resets all changes to the "sounding_index" field.
func (m *LogRowMutation) ResetSoundingIndex() {
	m.sounding_index = nil
	m.addsounding_index = nil
	delete(m.clearedFields, logrow.FieldSoundingIndex)
}

// SetIsWinner sets the "is_winner" field.
func (m *LogRowMutation) SetIsWinner(b bool) {
	m.is_winner = &b
}

// IsWinner returns the value of the "is_winner" field in the mutation.
func (m *LogRowMutation) IsWinner() (r bool, exists bool) {
	v := m.is_winner
	if v == nil {
		return
	}
	return *v, true
}

// OldIsWinner returns the old "is_winner" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldIsWinner(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsWinner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsWinner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsWinner: %w", err)
	}
	return oldValue.IsWinner, nil
}

// ClearIsWinner clears the value of the "is_winner" field.
func (m *LogRowMutation) ClearIsWinner() {
	m.is_winner = nil
	m.clearedFields[logrow.FieldIsWinner] = struct{}{}
}

// IsWinnerCleared returns if the "is_winner" field was cleared in this mutation.
func (m *LogRowMutation) IsWinnerCleared() bool {
	_, ok := m.clearedFields[logrow.FieldIsWinner]
	return ok
}

// ResetIsWinner resets all changes to the "is_winner" field.
func (m *LogRowMutation) ResetIsWinner() {
	m.is_winner = nil
	delete(m.clearedFields, logrow.FieldIsWinner)
}

// SetReforgeStep sets the "reforge_step" field.
func (m *LogRowMutation) SetReforgeStep(i int) {
	m.reforge_step = &i
	m.addreforge_step = nil
}

// ReforgeStep returns the value of the "reforge_step" field in the mutation.
func (m *LogRowMutation) ReforgeStep() (r int, exists bool) {
	v := m.reforge_step
	if v == nil {
		return
	}
	return *v, true
}

// OldReforgeStep returns the old "reforge_step" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldReforgeStep(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReforgeStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReforgeStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReforgeStep: %w", err)
	}
	return oldValue.ReforgeStep, nil
}

// AddReforgeStep adds i to the "reforge_step" field.
func (m *LogRowMutation) AddReforgeStep(i int) {
	if m.addreforge_step != nil {
		*m.addreforge_step += i
	} else {
		m.addreforge_step = &i
	}
}

// AddedReforgeStep returns the value that was added to the "reforge_step" field in this mutation.
func (m *LogRowMutation) AddedReforgeStep() (r int, exists bool) {
	v := m.addreforge_step
	if v == nil {
		return
	}
	return *v, true
}

// ClearReforgeStep clears the value of the "reforge_step" field.
func (m *LogRowMutation) ClearReforgeStep() {
	m.reforge_step = nil
	m.addreforge_step = nil
	m.clearedFields[logrow.FieldReforgeStep] = struct{}{}
}

// ReforgeStepCleared returns if the "reforge_step" field was cleared in this mutation.
func (m *LogRowMutation) ReforgeStepCleared() bool {
	_, ok := m.clearedFields[logrow.FieldReforgeStep]
	return ok
}

// ResetReforgeStep resets all changes to the "reforge_step" field.
func (m *LogRowMutation) ResetReforgeStep() {
	m.reforge_step = nil
	m.addreforge_step = nil
	delete(m.clearedFields, logrow.FieldReforgeStep)
}

// SetAttemptNumber sets the "attempt_number" field.
func (m *LogRowMutation) SetAttemptNumber(i int) {
	m.attempt_number = &i
	m.addattempt_number = nil
}

// AttemptNumber returns the value of the "attempt_number" field in the mutation.
func (m *LogRowMutation) AttemptNumber() (r int, exists bool) {
	v := m.attempt_number
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptNumber returns the old "attempt_number" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldAttemptNumber(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptNumber: %w", err)
	}
	return oldValue.AttemptNumber, nil
}

// AddAttemptNumber adds i to the "attempt_number" field.
func (m *LogRowMutation) AddAttemptNumber(i int) {
	if m.addattempt_number != nil {
		*m.addattempt_number += i
	} else {
		m.addattempt_number = &i
	}
}

// AddedAttemptNumber returns the value that was added to the "attempt_number" field in this mutation.
func (m *LogRowMutation) AddedAttemptNumber() (r int, exists bool) {
	v := m.addattempt_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearAttemptNumber clears the value of the "attempt_number" field.
func (m *LogRowMutation) ClearAttemptNumber() {
	m.attempt_number = nil
	m.addattempt_number = nil
	m.clearedFields[logrow.FieldAttemptNumber] = struct{}{}
}

// AttemptNumberCleared returns if the "attempt_number" field was cleared in this mutation.
func (m *LogRowMutation) AttemptNumberCleared() bool {
	_, ok := m.clearedFields[logrow.FieldAttemptNumber]
	return ok
}

// ResetAttemptNumber resets all changes to the "attempt_number" field.
func (m *LogRowMutation) ResetAttemptNumber() {
	m.attempt_number = nil
	m.addattempt_number = nil
	delete(m.clearedFields, logrow.FieldAttemptNumber)
}

// SetTurnNumber sets the "turn_number" field.
func (m *LogRowMutation) SetTurnNumber(i int) {
	m.turn_number = &i
	m.addturn_number = nil
}

// TurnNumber returns the value of the "turn_number" field in the mutation.
func (m *LogRowMutation) TurnNumber() (r int, exists bool) {
	v := m.turn_number
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnNumber returns the old "turn_number" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldTurnNumber(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnNumber: %w", err)
	}
	return oldValue.TurnNumber, nil
}

// AddTurnNumber adds i to the "turn_number" field.
func (m *LogRowMutation) AddTurnNumber(i int) {
	if m.addturn_number != nil {
		*m.addturn_number += i
	} else {
		m.addturn_number = &i
	}
}

// AddedTurnNumber returns the value that was added to the "turn_number" field in this mutation.
func (m *LogRowMutation) AddedTurnNumber() (r int, exists bool) {
	v := m.addturn_number
	if v == nil {
		return
	}
	return *v, true
}

// ClearTurnNumber clears the value of the "turn_number" field.
func (m *LogRowMutation) ClearTurnNumber() {
	m.turn_number = nil
	m.addturn_number = nil
	m.clearedFields[logrow.FieldTurnNumber] = struct{}{}
}

// TurnNumberCleared returns if the "turn_number" field was cleared in this mutation.
func (m *LogRowMutation) TurnNumberCleared() bool {
	_, ok := m.clearedFields[logrow.FieldTurnNumber]
	return ok
}

// ResetTurnNumber resets all changes to the "turn_number" field.
func (m *LogRowMutation) ResetTurnNumber() {
	m.turn_number = nil
	m.addturn_number = nil
	delete(m.clearedFields, logrow.FieldTurnNumber)
}

// SetMutationApplied sets the "mutation_applied" field.
func (m *LogRowMutation) SetMutationApplied(b bool) {
	m.mutation_applied = &b
}

// MutationApplied returns the value of the "mutation_applied" field in the mutation.
func (m *LogRowMutation) MutationApplied() (r bool, exists bool) {
	v := m.mutation_applied
	if v == nil {
		return
	}
	return *v, true
}

// OldMutationApplied returns the old "mutation_applied" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldMutationApplied(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMutationApplied is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMutationApplied requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMutationApplied: %w", err)
	}
	return oldValue.MutationApplied, nil
}

// ClearMutationApplied clears the value of the "mutation_applied" field.
func (m *LogRowMutation) ClearMutationApplied() {
	m.mutation_applied = nil
	m.clearedFields[logrow.FieldMutationApplied] = struct{}{}
}

// MutationAppliedCleared returns if the "mutation_applied" field was cleared in this mutation.
func (m *LogRowMutation) MutationAppliedCleared() bool {
	_, ok := m.clearedFields[logrow.FieldMutationApplied]
	return ok
}

// ResetMutationApplied resets all changes to the "mutation_applied" field.
func (m *LogRowMutation) ResetMutationApplied() {
	m.mutation_applied = nil
	delete(m.clearedFields, logrow.FieldMutationApplied)
}

// SetMutationType sets the "mutation_type" field.
func (m *LogRowMutation) SetMutationType(s string) {
	m.mutation_type = &s
}

// MutationType returns the value of the "mutation_type" field in the mutation.
func (m *LogRowMutation) MutationType() (r string, exists bool) {
	v := m.mutation_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMutationType returns the old "mutation_type" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldMutationType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMutationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMutationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMutationType: %w", err)
	}
	return oldValue.MutationType, nil
}

// ClearMutationType clears the value of the "mutation_type" field.
func (m *LogRowMutation) ClearMutationType() {
	m.mutation_type = nil
	m.clearedFields[logrow.FieldMutationType] = struct{}{}
}

// MutationTypeCleared returns if the "mutation_type" field was cleared in this mutation.
func (m *LogRowMutation) MutationTypeCleared() bool {
	_, ok := m.clearedFields[logrow.FieldMutationType]
	return ok
}

// ResetMutationType resets all changes to the "mutation_type" field.
func (m *LogRowMutation) ResetMutationType() {
	m.mutation_type = nil
	delete(m.clearedFields, logrow.FieldMutationType)
}

// SetMutationTemplate sets the "mutation_template" field.
func (m *LogRowMutation) SetMutationTemplate(s string) {
	m.mutation_template = &s
}

// MutationTemplate returns the value of the "mutation_template" field in the mutation.
func (m *LogRowMutation) MutationTemplate() (r string, exists bool) {
	v := m.mutation_template
	if v == nil {
		return
	}
	return *v, true
}

// OldMutationTemplate returns the old "mutation_template" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldMutationTemplate(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMutationTemplate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMutationTemplate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMutationTemplate: %w", err)
	}
	return oldValue.MutationTemplate, nil
}

// ClearMutationTemplate clears the value of the "mutation_template" field.
func (m *LogRowMutation) ClearMutationTemplate() {
	m.mutation_template = nil
	m.clearedFields[logrow.FieldMutationTemplate] = struct{}{}
}

// MutationTemplateCleared returns if the "mutation_template" field was cleared in this mutation.
func (m *LogRowMutation) MutationTemplateCleared() bool {
	_, ok := m.clearedFields[logrow.FieldMutationTemplate]
	return ok
}

// ResetMutationTemplate resets all changes to the "mutation_template" field.
func (m *LogRowMutation) ResetMutationTemplate() {
	m.mutation_template = nil
	delete(m.clearedFields, logrow.FieldMutationTemplate)
}

// SetSpeciesHash sets the "species_hash" field.
func (m *LogRowMutation) SetSpeciesHash(s string) {
	m.species_hash = &s
}

// SpeciesHash returns the value of the "species_hash" field in the mutation.
func (m *LogRowMutation) SpeciesHash() (r string, exists bool) {
	v := m.species_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldSpeciesHash returns the old "species_hash" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldSpeciesHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpeciesHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpeciesHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpeciesHash: %w", err)
	}
	return oldValue.SpeciesHash, nil
}

// ClearSpeciesHash clears the value of the "species_hash" field.
func (m *LogRowMutation) ClearSpeciesHash() {
	m.species_hash = nil
	m.clearedFields[logrow.FieldSpeciesHash] = struct{}{}
}

// SpeciesHashCleared returns if the "species_hash" field was cleared in this mutation.
func (m *LogRowMutation) SpeciesHashCleared() bool {
	_, ok := m.clearedFields[logrow.FieldSpeciesHash]
	return ok
}

// ResetSpeciesHash resets all changes to the "species_hash" field.
func (m *LogRowMutation) ResetSpeciesHash() {
	m.species_hash = nil
	delete(m.clearedFields, logrow.FieldSpeciesHash)
}

// SetCascadeID sets the "cascade_id" field.
func (m *LogRowMutation) SetCascadeID(s string) {
	m.cascade_id = &s
}

// CascadeID returns the value of the "cascade_id" field in the mutation.
func (m *LogRowMutation) CascadeID() (r string, exists bool) {
	v := m.cascade_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCascadeID returns the old "cascade_id" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldCascadeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCascadeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCascadeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCascadeID: %w", err)
	}
	return oldValue.CascadeID, nil
}

// ResetCascadeID resets all changes to the "cascade_id" field.
func (m *LogRowMutation) ResetCascadeID() {
	m.cascade_id = nil
}

// SetCascadeFile sets the "cascade_file" field.
func (m *LogRowMutation) SetCascadeFile(s string) {
	m.cascade_file = &s
}

// CascadeFile returns the value of the "cascade_file" field in the mutation.
func (m *LogRowMutation) CascadeFile() (r string, exists bool) {
	v := m.cascade_file
	if v == nil {
		return
	}
	return *v, true
}

// OldCascadeFile returns the old "cascade_file" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldCascadeFile(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCascadeFile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCascadeFile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCascadeFile: %w", err)
	}
	return oldValue.CascadeFile, nil
}

// ClearCascadeFile clears the value of the "cascade_file" field.
func (m *LogRowMutation) ClearCascadeFile() {
	m.cascade_file = nil
	m.clearedFields[logrow.FieldCascadeFile] = struct{}{}
}

// CascadeFileCleared returns if the "cascade_file" field was cleared in this mutation.
func (m *LogRowMutation) CascadeFileCleared() bool {
	_, ok := m.clearedFields[logrow.FieldCascadeFile]
	return ok
}

// ResetCascadeFile resets all changes to the "cascade_file" field.
func (m *LogRowMutation) ResetCascadeFile() {
	m.cascade_file = nil
	delete(m.clearedFields, logrow.FieldCascadeFile)
}

// SetCascadeJSON sets the "cascade_json" field.
func (m *LogRowMutation) SetCascadeJSON(s string) {
	m.cascade_json = &s
}

// CascadeJSON returns the value of the "cascade_json" field in the mutation.
func (m *LogRowMutation) CascadeJSON() (r string, exists bool) {
	v := m.cascade_json
	if v == nil {
		return
	}
	return *v, true
}

// OldCascadeJSON returns the old "cascade_json" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldCascadeJSON(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCascadeJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCascadeJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCascadeJSON: %w", err)
	}
	return oldValue.CascadeJSON, nil
}

// ClearCascadeJSON clears the value of the "cascade_json" field.
func (m *LogRowMutation) ClearCascadeJSON() {
	m.cascade_json = nil
	m.clearedFields[logrow.FieldCascadeJSON] = struct{}{}
}

// CascadeJSONCleared returns if the "cascade_json" field was cleared in this mutation.
func (m *LogRowMutation) CascadeJSONCleared() bool {
	_, ok := m.clearedFields[logrow.FieldCascadeJSON]
	return ok
}

// ResetCascadeJSON resets all changes to the "cascade_json" field.
func (m *LogRowMutation) ResetCascadeJSON() {
	m.cascade_json = nil
	delete(m.clearedFields, logrow.FieldCascadeJSON)
}

// SetPhaseName sets the "phase_name" field.
func (m *LogRowMutation) SetPhaseName(s string) {
	m.phase_name = &s
}

// PhaseName returns the value of the "phase_name" field in the mutation.
func (m *LogRowMutation) PhaseName() (r string, exists bool) {
	v := m.phase_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseName returns the old "phase_name" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldPhaseName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseName: %w", err)
	}
	return oldValue.PhaseName, nil
}

// ClearPhaseName clears the value of the "phase_name" field.
func (m *LogRowMutation) ClearPhaseName() {
	m.phase_name = nil
	m.clearedFields[logrow.FieldPhaseName] = struct{}{}
}

// PhaseNameCleared returns if the "phase_name" field was cleared in this mutation.
func (m *LogRowMutation) PhaseNameCleared() bool {
	_, ok := m.clearedFields[logrow.FieldPhaseName]
	return ok
}

// ResetPhaseName resets all changes to the "phase_name" field.
func (m *LogRowMutation) ResetPhaseName() {
	m.phase_name = nil
	delete(m.clearedFields, logrow.FieldPhaseName)
}

// SetPhaseJSON sets the "phase_json" field.
func (m *LogRowMutation) SetPhaseJSON(s string) {
	m.phase_json = &s
}

// PhaseJSON returns the value of the "phase_json" field in the mutation.
func (m *LogRowMutation) PhaseJSON() (r string, exists bool) {
	v := m.phase_json
	if v == nil {
		return
	}
	return *v, true
}

// OldPhaseJSON returns the old "phase_json" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldPhaseJSON(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhaseJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhaseJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhaseJSON: %w", err)
	}
	return oldValue.PhaseJSON, nil
}

// ClearPhaseJSON clears the value of the "phase_json" field.
func (m *LogRowMutation) ClearPhaseJSON() {
	m.phase_json = nil
	m.clearedFields[logrow.FieldPhaseJSON] = struct{}{}
}

// PhaseJSONCleared returns if the "phase_json" field was cleared in this mutation.
func (m *LogRowMutation) PhaseJSONCleared() bool {
	_, ok := m.clearedFields[logrow.FieldPhaseJSON]
	return ok
}

// ResetPhaseJSON resets all changes to the "phase_json" field.
func (m *LogRowMutation) ResetPhaseJSON() {
	m.phase_json = nil
	delete(m.clearedFields, logrow.FieldPhaseJSON)
}

// SetModel sets the "model" field.
func (m *LogRowMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LogRowMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldModel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *LogRowMutation) ClearModel() {
	m.model = nil
	m.clearedFields[logrow.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *LogRowMutation) ModelCleared() bool {
	_, ok := m.clearedFields[logrow.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *LogRowMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, logrow.FieldModel)
}

// SetModelRequested sets the "model_requested" field.
func (m *LogRowMutation) SetModelRequested(s string) {
	m.model_requested = &s
}

// ModelRequested returns the value of the "model_requested" field in the mutation.
func (m *LogRowMutation) ModelRequested() (r string, exists bool) {
	v := m.model_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldModelRequested returns the old "model_requested" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldModelRequested(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelRequested: %w", err)
	}
	return oldValue.ModelRequested, nil
}

// ClearModelRequested clears the value of the "model_requested" field.
func (m *LogRowMutation) ClearModelRequested() {
	m.model_requested = nil
	m.clearedFields[logrow.FieldModelRequested] = struct{}{}
}

// ModelRequestedCleared returns if the "model_requested" field was cleared in this mutation.
func (m *LogRowMutation) ModelRequestedCleared() bool {
	_, ok := m.clearedFields[logrow.FieldModelRequested]
	return ok
}

// ResetModelRequested resets all changes to the "model_requested" field.
func (m *LogRowMutation) ResetModelRequested() {
	m.model_requested = nil
	delete(m.clearedFields, logrow.FieldModelRequested)
}

// SetRequestID sets the "request_id" field.
func (m *LogRowMutation) SetRequestID(s string) {
	m.request_id = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *LogRowMutation) RequestID() (r string, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldRequestID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ClearRequestID clears the value of the "request_id" field.
func (m *LogRowMutation) ClearRequestID() {
	m.request_id = nil
	m.clearedFields[logrow.FieldRequestID] = struct{}{}
}

// RequestIDCleared returns if the "request_id" field was cleared in this mutation.
func (m *LogRowMutation) RequestIDCleared() bool {
	_, ok := m.clearedFields[logrow.FieldRequestID]
	return ok
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *LogRowMutation) ResetRequestID() {
	m.request_id = nil
	delete(m.clearedFields, logrow.FieldRequestID)
}

// SetProvider sets the "provider" field.
func (m *LogRowMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LogRowMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldProvider(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ClearProvider clears the value of the "provider" field.
func (m *LogRowMutation) ClearProvider() {
	m.provider = nil
	m.clearedFields[logrow.FieldProvider] = struct{}{}
}

// ProviderCleared returns if the "provider" field was cleared in this mutation.
func (m *LogRowMutation) ProviderCleared() bool {
	_, ok := m.clearedFields[logrow.FieldProvider]
	return ok
}

// ResetProvider resets all changes to the "provider" field.
func (m *LogRowMutation) ResetProvider() {
	m.provider = nil
	delete(m.clearedFields, logrow.FieldProvider)
}

// SetDurationMs sets the "duration_ms" field.
func (m *LogRowMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *LogRowMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *LogRowMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *LogRowMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *LogRowMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[logrow.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *LogRowMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[logrow.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *LogRowMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, logrow.FieldDurationMs)
}

// SetTokensIn sets the "tokens_in" field.
func (m *LogRowMutation) SetTokensIn(i int) {
	m.tokens_in = &i
	m.addtokens_in = nil
}

// TokensIn returns the value of the "tokens_in" field in the mutation.
func (m *LogRowMutation) TokensIn() (r int, exists bool) {
	v := m.tokens_in
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensIn returns the old "tokens_in" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldTokensIn(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensIn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensIn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensIn: %w", err)
	}
	return oldValue.TokensIn, nil
}

// AddTokensIn adds i to the "tokens_in" field.
func (m *LogRowMutation) AddTokensIn(i int) {
	if m.addtokens_in != nil {
		*m.addtokens_in += i
	} else {
		m.addtokens_in = &i
	}
}

// AddedTokensIn returns the value that was added to the "tokens_in" field in this mutation.
func (m *LogRowMutation) AddedTokensIn() (r int, exists bool) {
	v := m.addtokens_in
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokensIn clears the value of the "tokens_in" field.
func (m *LogRowMutation) ClearTokensIn() {
	m.tokens_in = nil
	m.addtokens_in = nil
	m.clearedFields[logrow.FieldTokensIn] = struct{}{}
}

// TokensInCleared returns if the "tokens_in" field was cleared in this mutation.
func (m *LogRowMutation) TokensInCleared() bool {
	_, ok := m.clearedFields[logrow.FieldTokensIn]
	return ok
}

// ResetTokensIn resets all changes to the "tokens_in" field.
func (m *LogRowMutation) ResetTokensIn() {
	m.tokens_in = nil
	m.addtokens_in = nil
	delete(m.clearedFields, logrow.FieldTokensIn)
}

// SetTokensOut sets the "tokens_out" field.
func (m *LogRowMutation) SetTokensOut(i int) {
	m.tokens_out = &i
	m.addtokens_out = nil
}

// TokensOut returns the value of the "tokens_out" field in the mutation.
func (m *LogRowMutation) TokensOut() (r int, exists bool) {
	v := m.tokens_out
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensOut returns the old "tokens_out" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldTokensOut(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensOut is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensOut requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensOut: %w", err)
	}
	return oldValue.TokensOut, nil
}

// AddTokensOut adds i to the "tokens_out" field.
func (m *LogRowMutation) AddTokensOut(i int) {
	if m.addtokens_out != nil {
		*m.addtokens_out += i
	} else {
		m.addtokens_out = &i
	}
}

// AddedTokensOut returns the value that was added to the "tokens_out" field in this mutation.
func (m *LogRowMutation) AddedTokensOut() (r int, exists bool) {
	v := m.addtokens_out
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokensOut clears the value of the "tokens_out" field.
func (m *LogRowMutation) ClearTokensOut() {
	m.tokens_out = nil
	m.addtokens_out = nil
	m.clearedFields[logrow.FieldTokensOut] = struct{}{}
}

// TokensOutCleared returns if the "tokens_out" field was cleared in this mutation.
func (m *LogRowMutation) TokensOutCleared() bool {
	_, ok := m.clearedFields[logrow.FieldTokensOut]
	return ok
}

// ResetTokensOut resets all changes to the "tokens_out" field.
func (m *LogRowMutation) ResetTokensOut() {
	m.tokens_out = nil
	m.addtokens_out = nil
	delete(m.clearedFields, logrow.FieldTokensOut)
}

// SetCost sets the "cost" field.
func (m *LogRowMutation) SetCost(f float64) {
	m.cost = &f
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *LogRowMutation) Cost() (r float64, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldCost(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds f to the "cost" field.
func (m *LogRowMutation) AddCost(f float64) {
	if m.addcost != nil {
		*m.addcost += f
	} else {
		m.addcost = &f
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *LogRowMutation) AddedCost() (r float64, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ClearCost clears the value of the "cost" field.
func (m *LogRowMutation) ClearCost() {
	m.cost = nil
	m.addcost = nil
	m.clearedFields[logrow.FieldCost] = struct{}{}
}

// CostCleared returns if the "cost" field was cleared in this mutation.
func (m *LogRowMutation) CostCleared() bool {
	_, ok := m.clearedFields[logrow.FieldCost]
	return ok
}

// ResetCost resets all changes to the "cost" field.
func (m *LogRowMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
	delete(m.clearedFields, logrow.FieldCost)
}

// SetContentJSON sets the "content_json" field.
func (m *LogRowMutation) SetContentJSON(s string) {
	m.content_json = &s
}

// ContentJSON returns the value of the "content_json" field in the mutation.
func (m *LogRowMutation) ContentJSON() (r string, exists bool) {
	v := m.content_json
	if v == nil {
		return
	}
	return *v, true
}

// OldContentJSON returns the old "content_json" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldContentJSON(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentJSON: %w", err)
	}
	return oldValue.ContentJSON, nil
}

// ClearContentJSON clears the value of the "content_json" field.
func (m *LogRowMutation) ClearContentJSON() {
	m.content_json = nil
	m.clearedFields[logrow.FieldContentJSON] = struct{}{}
}

// ContentJSONCleared returns if the "content_json" field was cleared in this mutation.
func (m *LogRowMutation) ContentJSONCleared() bool {
	_, ok := m.clearedFields[logrow.FieldContentJSON]
	return ok
}

// ResetContentJSON resets all changes to the "content_json" field.
func (m *LogRowMutation) ResetContentJSON() {
	m.content_json = nil
	delete(m.clearedFields, logrow.FieldContentJSON)
}

// SetFullRequestJSON sets the "full_request_json" field.
func (m *LogRowMutation) SetFullRequestJSON(s string) {
	m.full_request_json = &s
}

// FullRequestJSON returns the value of the "full_request_json" field in the mutation.
func (m *LogRowMutation) FullRequestJSON() (r string, exists bool) {
	v := m.full_request_json
	if v == nil {
		return
	}
	return *v, true
}

// OldFullRequestJSON returns the old "full_request_json" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldFullRequestJSON(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullRequestJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullRequestJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullRequestJSON: %w", err)
	}
	return oldValue.FullRequestJSON, nil
}

// ClearFullRequestJSON clears the value of the "full_request_json" field.
func (m *LogRowMutation) ClearFullRequestJSON() {
	m.full_request_json = nil
	m.clearedFields[logrow.FieldFullRequestJSON] = struct{}{}
}

// FullRequestJSONCleared returns if the "full_request_json" field was cleared in this mutation.
func (m *LogRowMutation) FullRequestJSONCleared() bool {
	_, ok := m.clearedFields[logrow.FieldFullRequestJSON]
	return ok
}

// ResetFullRequestJSON resets all changes to the "full_request_json" field.
func (m *LogRowMutation) ResetFullRequestJSON() {
	m.full_request_json = nil
	delete(m.clearedFields, logrow.FieldFullRequestJSON)
}

// SetFullResponseJSON sets the "full_response_json" field.
func (m *LogRowMutation) SetFullResponseJSON(s string) {
	m.full_response_json = &s
}

// FullResponseJSON returns the value of the "full_response_json" field in the mutation.
func (m *LogRowMutation) FullResponseJSON() (r string, exists bool) {
	v := m.full_response_json
	if v == nil {
		return
	}
	return *v, true
}

// OldFullResponseJSON returns the old "full_response_json" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldFullResponseJSON(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullResponseJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullResponseJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullResponseJSON: %w", err)
	}
	return oldValue.FullResponseJSON, nil
}

// ClearFullResponseJSON clears the value of the "full_response_json" field.
func (m *LogRowMutation) ClearFullResponseJSON() {
	m.full_response_json = nil
	m.clearedFields[logrow.FieldFullResponseJSON] = struct{}{}
}

// FullResponseJSONCleared returns if the "full_response_json" field was cleared in this mutation.
func (m *LogRowMutation) FullResponseJSONCleared() bool {
	_, ok := m.clearedFields[logrow.FieldFullResponseJSON]
	return ok
}

// ResetFullResponseJSON resets all changes to the "full_response_json" field.
func (m *LogRowMutation) ResetFullResponseJSON() {
	m.full_response_json = nil
	delete(m.clearedFields, logrow.FieldFullResponseJSON)
}

// SetToolCallsJSON sets the "tool_calls_json" field.
func (m *LogRowMutation) SetToolCallsJSON(s string) {
	m.tool_calls_json = &s
}

// ToolCallsJSON returns the value of the "tool_calls_json" field in the mutation.
func (m *LogRowMutation) ToolCallsJSON() (r string, exists bool) {
	v := m.tool_calls_json
	if v == nil {
		return
	}
	return *v, true
}

// OldToolCallsJSON returns the old "tool_calls_json" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldToolCallsJSON(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolCallsJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolCallsJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolCallsJSON: %w", err)
	}
	return oldValue.ToolCallsJSON, nil
}

// ClearToolCallsJSON clears the value of the "tool_calls_json" field.
func (m *LogRowMutation) ClearToolCallsJSON() {
	m.tool_calls_json = nil
	m.clearedFields[logrow.FieldToolCallsJSON] = struct{}{}
}

// ToolCallsJSONCleared returns if the "tool_calls_json" field was cleared in this mutation.
func (m *LogRowMutation) ToolCallsJSONCleared() bool {
	_, ok := m.clearedFields[logrow.FieldToolCallsJSON]
	return ok
}

// ResetToolCallsJSON resets all changes to the "tool_calls_json" field.
func (m *LogRowMutation) ResetToolCallsJSON() {
	m.tool_calls_json = nil
	delete(m.clearedFields, logrow.FieldToolCallsJSON)
}

// SetImagesJSON sets the "images_json" field.
func (m *LogRowMutation) SetImagesJSON(s string) {
	m.images_json = &s
}

// ImagesJSON returns the value of the "images_json" field in the mutation.
func (m *LogRowMutation) ImagesJSON() (r string, exists bool) {
	v := m.images_json
	if v == nil {
		return
	}
	return *v, true
}

// OldImagesJSON returns the old "images_json" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldImagesJSON(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImagesJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImagesJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImagesJSON: %w", err)
	}
	return oldValue.ImagesJSON, nil
}

// ClearImagesJSON clears the value of the "images_json" field.
func (m *LogRowMutation) ClearImagesJSON() {
	m.images_json = nil
	m.clearedFields[logrow.FieldImagesJSON] = struct{}{}
}

// ImagesJSONCleared returns if the "images_json" field was cleared in this mutation.
func (m *LogRowMutation) ImagesJSONCleared() bool {
	_, ok := m.clearedFields[logrow.FieldImagesJSON]
	return ok
}

// ResetImagesJSON resets all changes to the "images_json" field.
func (m *LogRowMutation) ResetImagesJSON() {
	m.images_json = nil
	delete(m.clearedFields, logrow.FieldImagesJSON)
}

// SetHasImages sets the "has_images" field.
func (m *LogRowMutation) SetHasImages(b bool) {
	m.has_images = &b
}

// HasImages returns the value of the "has_images" field in the mutation.
func (m *LogRowMutation) HasImages() (r bool, exists bool) {
	v := m.has_images
	if v == nil {
		return
	}
	return *v, true
}

// OldHasImages returns the old "has_images" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldHasImages(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasImages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasImages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasImages: %w", err)
	}
	return oldValue.HasImages, nil
}

// ResetHasImages resets all changes to the "has_images" field.
func (m *LogRowMutation) ResetHasImages() {
	m.has_images = nil
}

// SetHasBase64 sets the "has_base64" field.
func (m *LogRowMutation) SetHasBase64(b bool) {
	m.has_base64 = &b
}

// HasBase64 returns the value of the "has_base64" field in the mutation.
func (m *LogRowMutation) HasBase64() (r bool, exists bool) {
	v := m.has_base64
	if v == nil {
		return
	}
	return *v, true
}

// OldHasBase64 returns the old "has_base64" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldHasBase64(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasBase64 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasBase64 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasBase64: %w", err)
	}
	return oldValue.HasBase64, nil
}

// ResetHasBase64 resets all changes to the "has_base64" field.
func (m *LogRowMutation) ResetHasBase64() {
	m.has_base64 = nil
}

// SetSemanticActor sets the "semantic_actor" field.
func (m *LogRowMutation) SetSemanticActor(la logrow.SemanticActor) {
	m.semantic_actor = &la
}

// SemanticActor returns the value of the "semantic_actor" field in the mutation.
func (m *LogRowMutation) SemanticActor() (r logrow.SemanticActor, exists bool) {
	v := m.semantic_actor
	if v == nil {
		return
	}
	return *v, true
}

// OldSemanticActor returns the old "semantic_actor" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldSemanticActor(ctx context.Context) (v logrow.SemanticActor, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSemanticActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSemanticActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSemanticActor: %w", err)
	}
	return oldValue.SemanticActor, nil
}

// ResetSemanticActor resets all changes to the "semantic_actor" field.
func (m *LogRowMutation) ResetSemanticActor() {
	m.semantic_actor = nil
}

// SetSemanticPurpose sets the "semantic_purpose" field.
func (m *LogRowMutation) SetSemanticPurpose(lp logrow.SemanticPurpose) {
	m.semantic_purpose = &lp
}

// SemanticPurpose returns the value of the "semantic_purpose" field in the mutation.
func (m *LogRowMutation) SemanticPurpose() (r logrow.SemanticPurpose, exists bool) {
	v := m.semantic_purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldSemanticPurpose returns the old "semantic_purpose" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldSemanticPurpose(ctx context.Context) (v logrow.SemanticPurpose, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSemanticPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSemanticPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSemanticPurpose: %w", err)
	}
	return oldValue.SemanticPurpose, nil
}

// ResetSemanticPurpose resets all changes to the "semantic_purpose" field.
func (m *LogRowMutation) ResetSemanticPurpose() {
	m.semantic_purpose = nil
}

// SetIsCallout sets the "is_callout" field.
func (m *LogRowMutation) SetIsCallout(b bool) {
	m.is_callout = &b
}

// IsCallout returns the value of the "is_callout" field in the mutation.
func (m *LogRowMutation) IsCallout() (r bool, exists bool) {
	v := m.is_callout
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCallout returns the old "is_callout" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldIsCallout(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCallout is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCallout requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCallout: %w", err)
	}
	return oldValue.IsCallout, nil
}

// ResetIsCallout resets all changes to the "is_callout" field.
func (m *LogRowMutation) ResetIsCallout() {
	m.is_callout = nil
}

// SetCalloutName sets the "callout_name" field.
func (m *LogRowMutation) SetCalloutName(s string) {
	m.callout_name = &s
}

// CalloutName returns the value of the "callout_name" field in the mutation.
func (m *LogRowMutation) CalloutName() (r string, exists bool) {
	v := m.callout_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCalloutName returns the old "callout_name" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldCalloutName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCalloutName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCalloutName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCalloutName: %w", err)
	}
	return oldValue.CalloutName, nil
}

// ClearCalloutName clears the value of the "callout_name" field.
func (m *LogRowMutation) ClearCalloutName() {
	m.callout_name = nil
	m.clearedFields[logrow.FieldCalloutName] = struct{}{}
}

// CalloutNameCleared returns if the "callout_name" field was cleared in this mutation.
func (m *LogRowMutation) CalloutNameCleared() bool {
	_, ok := m.clearedFields[logrow.FieldCalloutName]
	return ok
}

// ResetCalloutName resets all changes to the "callout_name" field.
func (m *LogRowMutation) ResetCalloutName() {
	m.callout_name = nil
	delete(m.clearedFields, logrow.FieldCalloutName)
}

// SetRowMetadata sets the "row_metadata" field.
func (m *LogRowMutation) SetRowMetadata(value map[string]interface{}) {
	m.row_metadata = &value
}

// RowMetadata returns the value of the "row_metadata" field in the mutation.
func (m *LogRowMutation) RowMetadata() (r map[string]interface{}, exists bool) {
	v := m.row_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldRowMetadata returns the old "row_metadata" field's value of the LogRow entity.
// If the LogRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogRowMutation) OldRowMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowMetadata: %w", err)
	}
	return oldValue.RowMetadata, nil
}

// ClearRowMetadata clears the value of the "row_metadata" field.
func (m *LogRowMutation) ClearRowMetadata() {
	m.row_metadata = nil
	m.clearedFields[logrow.FieldRowMetadata] = struct{}{}
}

// RowMetadataCleared returns if the "row_metadata" field was cleared in this mutation.
func (m *LogRowMutation) RowMetadataCleared() bool {
	_, ok := m.clearedFields[logrow.FieldRowMetadata]
	return ok
}

// ResetRowMetadata resets all changes to the "row_metadata" field.
func (m *LogRowMutation) ResetRowMetadata() {
	m.row_metadata = nil
	delete(m.clearedFields, logrow.FieldRowMetadata)
}

// ClearSession clears the "session" edge to the CascadeSession entity.
func (m *LogRowMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[logrow.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the CascadeSession entity was cleared.
func (m *LogRowMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *LogRowMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *LogRowMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the LogRowMutation builder.
func (m *LogRowMutation) Where(ps ...predicate.LogRow) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LogRowMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LogRowMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LogRow, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LogRowMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LogRowMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LogRow).
func (m *LogRowMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LogRowMutation) Fields() []string {
	fields := make([]string, 0, 43)
	if m.timestamp != nil {
		fields = append(fields, logrow.FieldTimestamp)
	}
	if m.session != nil {
		fields = append(fields, logrow.FieldSessionID)
	}
	if m.trace_id != nil {
		fields = append(fields, logrow.FieldTraceID)
	}
	if m.parent_id != nil {
		fields = append(fields, logrow.FieldParentID)
	}
	if m.parent_session_id != nil {
		fields = append(fields, logrow.FieldParentSessionID)
	}
	if m.parent_message_id != nil {
		fields = append(fields, logrow.FieldParentMessageID)
	}
	if m.depth != nil {
		fields = append(fields, logrow.FieldDepth)
	}
	if m.node_type != nil {
		fields = append(fields, logrow.FieldNodeType)
	}
	if m.role != nil {
		fields = append(fields, logrow.FieldRole)
	}
	if m.sounding_index != nil {
		fields = append(fields, logrow.FieldSoundingIndex)
	}
	if m.is_winner != nil {
		fields = append(fields, logrow.FieldIsWinner)
	}
	if m.reforge_step != nil {
		fields = append(fields, logrow.FieldReforgeStep)
	}
	if m.attempt_number != nil {
		fields = append(fields, logrow.FieldAttemptNumber)
	}
	if m.turn_number != nil {
		fields = append(fields, logrow.FieldTurnNumber)
	}
	if m.mutation_applied != nil {
		fields = append(fields, logrow.FieldMutationApplied)
	}
	if m.mutation_type != nil {
		fields = append(fields, logrow.FieldMutationType)
	}
	if m.mutation_template != nil {
		fields = append(fields, logrow.FieldMutationTemplate)
	}
	if m.species_hash != nil {
		fields = append(fields, logrow.FieldSpeciesHash)
	}
	if m.cascade_id != nil {
		fields = append(fields, logrow.FieldCascadeID)
	}
	if m.cascade_file != nil {
		fields = append(fields, logrow.FieldCascadeFile)
	}
	if m.cascade_json != nil {
		fields = append(fields, logrow.FieldCascadeJSON)
	}
	if m.phase_name != nil {
		fields = append(fields, logrow.FieldPhaseName)
	}
	if m.phase_json != nil {
		fields = append(fields, logrow.FieldPhaseJSON)
	}
	if m.model != nil {
		fields = append(fields, logrow.FieldModel)
	}
	if m.model_requested != nil {
		fields = append(fields, logrow.FieldModelRequested)
	}
	if m.request_id != nil {
		fields = append(fields, logrow.FieldRequestID)
	}
	if m.provider != nil {
		fields = append(fields, logrow.FieldProvider)
	}
	if m.duration_ms != nil {
		fields = append(fields, logrow.FieldDurationMs)
	}
	if m.tokens_in != nil {
		fields = append(fields, logrow.FieldTokensIn)
	}
	if m.tokens_out != nil {
		fields = append(fields, logrow.FieldTokensOut)
	}
	if m.cost != nil {
		fields = append(fields, logrow.FieldCost)
	}
	if m.content_json != nil {
		fields = append(fields, logrow.FieldContentJSON)
	}
	if m.full_request_json != nil {
		fields = append(fields, logrow.FieldFullRequestJSON)
	}
	if m.full_response_json != nil {
		fields = append(fields, logrow.FieldFullResponseJSON)
	}
	if m.tool_calls_json != nil {
		fields = append(fields, logrow.FieldToolCallsJSON)
	}
	if m.images_json != nil {
		fields = append(fields, logrow.FieldImagesJSON)
	}
	if m.has_images != nil {
		fields = append(fields, logrow.FieldHasImages)
	}
	if m.has_base64 != nil {
		fields = append(fields, logrow.FieldHasBase64)
	}
	if m.semantic_actor != nil {
		fields = append(fields, logrow.FieldSemanticActor)
	}
	if m.semantic_purpose != nil {
		fields = append(fields, logrow.FieldSemanticPurpose)
	}
	if m.is_callout != nil {
		fields = append(fields, logrow.FieldIsCallout)
	}
	if m.callout_name != nil {
		fields = append(fields, logrow.FieldCalloutName)
	}
	if m.row_metadata != nil {
		fields = append(fields, logrow.FieldRowMetadata)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LogRowMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case logrow.FieldTimestamp:
		return m.Timestamp()
	case logrow.FieldSessionID:
		return m.SessionID()
	case logrow.FieldTraceID:
		return m.TraceID()
	case logrow.FieldParentID:
		return m.ParentID()
	case logrow.FieldParentSessionID:
		return m.ParentSessionID()
	case logrow.FieldParentMessageID:
		return m.ParentMessageID()
	case logrow.FieldDepth:
		return m.Depth()
	case logrow.FieldNodeType:
		return m.NodeType()
	case logrow.FieldRole:
		return m.Role()
	case logrow.FieldSoundingIndex:
		return m.SoundingIndex()
	case logrow.FieldIsWinner:
		return m.IsWinner()
	case logrow.FieldReforgeStep:
		return m.ReforgeStep()
	case logrow.FieldAttemptNumber:
		return m.AttemptNumber()
	case logrow.FieldTurnNumber:
		return m.TurnNumber()
	case logrow.FieldMutationApplied:
		return m.MutationApplied()
	case logrow.FieldMutationType:
		return m.MutationType()
	case logrow.FieldMutationTemplate:
		return m.MutationTemplate()
	case logrow.FieldSpeciesHash:
		return m.SpeciesHash()
	case logrow.FieldCascadeID:
		return m.CascadeID()
	case logrow.FieldCascadeFile:
		return m.CascadeFile()
	case logrow.FieldCascadeJSON:
		return m.CascadeJSON()
	case logrow.FieldPhaseName:
		return m.PhaseName()
	case logrow.FieldPhaseJSON:
		return m.PhaseJSON()
	case logrow.FieldModel:
		return m.Model()
	case logrow.FieldModelRequested:
		return m.ModelRequested()
	case logrow.FieldRequestID:
		return m.RequestID()
	case logrow.FieldProvider:
		return m.Provider()
	case logrow.FieldDurationMs:
		return m.DurationMs()
	case logrow.FieldTokensIn:
		return m.TokensIn()
	case logrow.FieldTokensOut:
		return m.TokensOut()
	case logrow.FieldCost:
		return m.Cost()
	case logrow.FieldContentJSON:
		return m.ContentJSON()
	case logrow.FieldFullRequestJSON:
		return m.FullRequestJSON()
	case logrow.FieldFullResponseJSON:
		return m.FullResponseJSON()
	case logrow.FieldToolCallsJSON:
		return m.ToolCallsJSON()
	case logrow.FieldImagesJSON:
		return m.ImagesJSON()
	case logrow.FieldHasImages:
		return m.HasImages()
	case logrow.FieldHasBase64:
		return m.HasBase64()
	case logrow.FieldSemanticActor:
		return m.SemanticActor()
	case logrow.FieldSemanticPurpose:
		return m.SemanticPurpose()
	case logrow.FieldIsCallout:
		return m.IsCallout()
	case logrow.FieldCalloutName:
		return m.CalloutName()
	case logrow.FieldRowMetadata:
		return m.RowMetadata()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LogRowMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case logrow.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case logrow.FieldSessionID:
		return m.OldSessionID(ctx)
	case logrow.FieldTraceID:
		return m.OldTraceID(ctx)
	case logrow.FieldParentID:
		return m.OldParentID(ctx)
	case logrow.FieldParentSessionID:
		return m.OldParentSessionID(ctx)
	case logrow.FieldParentMessageID:
		return m.OldParentMessageID(ctx)
	case logrow.FieldDepth:
		return m.OldDepth(ctx)
	case logrow.FieldNodeType:
		return m.OldNodeType(ctx)
	case logrow.FieldRole:
		return m.OldRole(ctx)
	case logrow.FieldSoundingIndex:
		return m.OldSoundingIndex(ctx)
	case logrow.FieldIsWinner:
		return m.OldIsWinner(ctx)
	case logrow.FieldReforgeStep:
		return m.OldReforgeStep(ctx)
	case logrow.FieldAttemptNumber:
		return m.OldAttemptNumber(ctx)
	case logrow.FieldTurnNumber:
		return m.OldTurnNumber(ctx)
	case logrow.FieldMutationApplied:
		return m.OldMutationApplied(ctx)
	case logrow.FieldMutationType:
		return m.OldMutationType(ctx)
	case logrow.FieldMutationTemplate:
		return m.OldMutationTemplate(ctx)
	case logrow.FieldSpeciesHash:
		return m.OldSpeciesHash(ctx)
	case logrow.FieldCascadeID:
		return m.OldCascadeID(ctx)
	case logrow.FieldCascadeFile:
		return m.OldCascadeFile(ctx)
	case logrow.FieldCascadeJSON:
		return m.OldCascadeJSON(ctx)
	case logrow.FieldPhaseName:
		return m.OldPhaseName(ctx)
	case logrow.FieldPhaseJSON:
		return m.OldPhaseJSON(ctx)
	case logrow.FieldModel:
		return m.OldModel(ctx)
	case logrow.FieldModelRequested:
		return m.OldModelRequested(ctx)
	case logrow.FieldRequestID:
		return m.OldRequestID(ctx)
	case logrow.FieldProvider:
		return m.OldProvider(ctx)
	case logrow.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case logrow.FieldTokensIn:
		return m.OldTokensIn(ctx)
	case logrow.FieldTokensOut:
		return m.OldTokensOut(ctx)
	case logrow.FieldCost:
		return m.OldCost(ctx)
	case logrow.FieldContentJSON:
		return m.OldContentJSON(ctx)
	case logrow.FieldFullRequestJSON:
		return m.OldFullRequestJSON(ctx)
	case logrow.FieldFullResponseJSON:
		return m.OldFullResponseJSON(ctx)
	case logrow.FieldToolCallsJSON:
		return m.OldToolCallsJSON(ctx)
	case logrow.FieldImagesJSON:
		return m.OldImagesJSON(ctx)
	case logrow.FieldHasImages:
		return m.OldHasImages(ctx)
	case logrow.FieldHasBase64:
		return m.OldHasBase64(ctx)
	case logrow.FieldSemanticActor:
		return m.OldSemanticActor(ctx)
	case logrow.FieldSemanticPurpose:
		return m.OldSemanticPurpose(ctx)
	case logrow.FieldIsCallout:
		return m.OldIsCallout(ctx)
	case logrow.FieldCalloutName:
		return m.OldCalloutName(ctx)
	case logrow.FieldRowMetadata:
		return m.OldRowMetadata(ctx)
	}
	return nil, fmt.Errorf("unknown LogRow field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LogRowMutation) SetField(name string, value ent.Value) error {
	switch name {
	case logrow.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case logrow.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case logrow.FieldTraceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTraceID(v)
		return nil
	case logrow.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case logrow.FieldParentSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentSessionID(v)
		return nil
	case logrow.FieldParentMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentMessageID(v)
		return nil
	case logrow.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepth(v)
		return nil
	case logrow.FieldNodeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeType(v)
		return nil
	case logrow.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case logrow.FieldSoundingIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSoundingIndex(v)
		return nil
	case logrow.FieldIsWinner:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsWinner(v)
		return nil
	case logrow.FieldReforgeStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReforgeStep(v)
		return nil
	case logrow.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptNumber(v)
		return nil
	case logrow.FieldTurnNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnNumber(v)
		return nil
	case logrow.FieldMutationApplied:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMutationApplied(v)
		return nil
	case logrow.FieldMutationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMutationType(v)
		return nil
	case logrow.FieldMutationTemplate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMutationTemplate(v)
		return nil
	case logrow.FieldSpeciesHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpeciesHash(v)
		return nil
	case logrow.FieldCascadeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCascadeID(v)
		return nil
	case logrow.FieldCascadeFile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCascadeFile(v)
		return nil
	case logrow.FieldCascadeJSON:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCascadeJSON(v)
		return nil
	case logrow.FieldPhaseName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseName(v)
		return nil
	case logrow.FieldPhaseJSON:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhaseJSON(v)
		return nil
	case logrow.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case logrow.FieldModelRequested:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelRequested(v)
		return nil
	case logrow.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case logrow.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case logrow.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case logrow.FieldTokensIn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensIn(v)
		return nil
	case logrow.FieldTokensOut:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensOut(v)
		return nil
	case logrow.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case logrow.FieldContentJSON:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentJSON(v)
		return nil
	case logrow.FieldFullRequestJSON:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullRequestJSON(v)
		return nil
	case logrow.FieldFullResponseJSON:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullResponseJSON(v)
		return nil
	case logrow.FieldToolCallsJSON:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolCallsJSON(v)
		return nil
	case logrow.FieldImagesJSON:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImagesJSON(v)
		return nil
	case logrow.FieldHasImages:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasImages(v)
		return nil
	case logrow.FieldHasBase64:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasBase64(v)
		return nil
	case logrow.FieldSemanticActor:
		v, ok := value.(logrow.SemanticActor)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSemanticActor(v)
		return nil
	case logrow.FieldSemanticPurpose:
		v, ok := value.(logrow.SemanticPurpose)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSemanticPurpose(v)
		return nil
	case logrow.FieldIsCallout:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCallout(v)
		return nil
	case logrow.FieldCalloutName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCalloutName(v)
		return nil
	case logrow.FieldRowMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowMetadata(v)
		return nil
	}
	return fmt.Errorf("unknown LogRow field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LogRowMutation) AddedFields() []string {
	var fields []string
	if m.adddepth != nil {
		fields = append(fields, logrow.FieldDepth)
	}
	if m.addsounding_index != nil {
		fields = append(fields, logrow.FieldSoundingIndex)
	}
	if m.addreforge_step != nil {
		fields = append(fields, logrow.FieldReforgeStep)
	}
	if m.addattempt_number != nil {
		fields = append(fields, logrow.FieldAttemptNumber)
	}
	if m.addturn_number != nil {
		fields = append(fields, logrow.FieldTurnNumber)
	}
	if m.addduration_ms != nil {
		fields = append(fields, logrow.FieldDurationMs)
	}
	if m.addtokens_in != nil {
		fields = append(fields, logrow.FieldTokensIn)
	}
	if m.addtokens_out != nil {
		fields = append(fields, logrow.FieldTokensOut)
	}
	if m.addcost != nil {
		fields = append(fields, logrow.FieldCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LogRowMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case logrow.FieldDepth:
		return m.AddedDepth()
	case logrow.FieldSoundingIndex:
		return m.AddedSoundingIndex()
	case logrow.FieldReforgeStep:
		return m.AddedReforgeStep()
	case logrow.FieldAttemptNumber:
		return m.AddedAttemptNumber()
	case logrow.FieldTurnNumber:
		return m.AddedTurnNumber()
	case logrow.FieldDurationMs:
		return m.AddedDurationMs()
	case logrow.FieldTokensIn:
		return m.AddedTokensIn()
	case logrow.FieldTokensOut:
		return m.AddedTokensOut()
	case logrow.FieldCost:
		return m.AddedCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LogRowMutation) AddField(name string, value ent.Value) error {
	switch name {
	case logrow.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDepth(v)
		return nil
	case logrow.FieldSoundingIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSoundingIndex(v)
		return nil
	case logrow.FieldReforgeStep:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReforgeStep(v)
		return nil
	case logrow.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptNumber(v)
		return nil
	case logrow.FieldTurnNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTurnNumber(v)
		return nil
	case logrow.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case logrow.FieldTokensIn:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensIn(v)
		return nil
	case logrow.FieldTokensOut:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensOut(v)
		return nil
	case logrow.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	}
	return fmt.Errorf("unknown LogRow numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LogRowMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(logrow.FieldParentID) {
		fields = append(fields, logrow.FieldParentID)
	}
	if m.FieldCleared(logrow.FieldParentSessionID) {
		fields = append(fields, logrow.FieldParentSessionID)
	}
	if m.FieldCleared(logrow.FieldParentMessageID) {
		fields = append(fields, logrow.FieldParentMessageID)
	}
	if m.FieldCleared(logrow.FieldRole) {
		fields = append(fields, logrow.FieldRole)
	}
	if m.FieldCleared(logrow.FieldSoundingIndex) {
		fields = append(fields, logrow.FieldSoundingIndex)
	}
	if m.FieldCleared(logrow.FieldIsWinner) {
		fields = append(fields, logrow.FieldIsWinner)
	}
	if m.FieldCleared(logrow.FieldReforgeStep) {
		fields = append(fields, logrow.FieldReforgeStep)
	}
	if m.FieldCleared(logrow.FieldAttemptNumber) {
		fields = append(fields, logrow.FieldAttemptNumber)
	}
	if m.FieldCleared(logrow.FieldTurnNumber) {
		fields = append(fields, logrow.FieldTurnNumber)
	}
	if m.FieldCleared(logrow.FieldMutationApplied) {
		fields = append(fields, logrow.FieldMutationApplied)
	}
	if m.FieldCleared(logrow.FieldMutationType) {
		fields = append(fields, logrow.FieldMutationType)
	}
	if m.FieldCleared(logrow.FieldMutationTemplate) {
		fields = append(fields, logrow.FieldMutationTemplate)
	}
	if m.FieldCleared(logrow.FieldSpeciesHash) {
		fields = append(fields, logrow.FieldSpeciesHash)
	}
	if m.FieldCleared(logrow.FieldCascadeFile) {
		fields = append(fields, logrow.FieldCascadeFile)
	}
	if m.FieldCleared(logrow.FieldCascadeJSON) {
		fields = append(fields, logrow.FieldCascadeJSON)
	}
	if m.FieldCleared(logrow.FieldPhaseName) {
		fields = append(fields, logrow.FieldPhaseName)
	}
	if m.FieldCleared(logrow.FieldPhaseJSON) {
		fields = append(fields, logrow.FieldPhaseJSON)
	}
	if m.FieldCleared(logrow.FieldModel) {
		fields = append(fields, logrow.FieldModel)
	}
	if m.FieldCleared(logrow.FieldModelRequested) {
		fields = append(fields, logrow.FieldModelRequested)
	}
	if m.FieldCleared(logrow.FieldRequestID) {
		fields = append(fields, logrow.FieldRequestID)
	}
	if m.FieldCleared(logrow.FieldProvider) {
		fields = append(fields, logrow.FieldProvider)
	}
	if m.FieldCleared(logrow.FieldDurationMs) {
		fields = append(fields, logrow.FieldDurationMs)
	}
	if m.FieldCleared(logrow.FieldTokensIn) {
		fields = append(fields, logrow.FieldTokensIn)
	}
	if m.FieldCleared(logrow.FieldTokensOut) {
		fields = append(fields, logrow.FieldTokensOut)
	}
	if m.FieldCleared(logrow.FieldCost) {
		fields = append(fields, logrow.FieldCost)
	}
	if m.FieldCleared(logrow.FieldContentJSON) {
		fields = append(fields, logrow.FieldContentJSON)
	}
	if m.FieldCleared(logrow.FieldFullRequestJSON) {
		fields = append(fields, logrow.FieldFullRequestJSON)
	}
	if m.FieldCleared(logrow.FieldFullResponseJSON) {
		fields = append(fields, logrow.FieldFullResponseJSON)
	}
	if m.FieldCleared(logrow.FieldToolCallsJSON) {
		fields = append(fields, logrow.FieldToolCallsJSON)
	}
	if m.FieldCleared(logrow.FieldImagesJSON) {
		fields = append(fields, logrow.FieldImagesJSON)
	}
	if m.FieldCleared(logrow.FieldCalloutName) {
		fields = append(fields, logrow.FieldCalloutName)
	}
	if m.FieldCleared(logrow.FieldRowMetadata) {
		fields = append(fields, logrow.FieldRowMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LogRowMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LogRowMutation) ClearField(name string) error {
	switch name {
	case logrow.FieldParentID:
		m.ClearParentID()
		return nil
	case logrow.FieldParentSessionID:
		m.ClearParentSessionID()
		return nil
	case logrow.FieldParentMessageID:
		m.ClearParentMessageID()
		return nil
	case logrow.FieldRole:
		m.ClearRole()
		return nil
	case logrow.FieldSoundingIndex:
		m.ClearSoundingIndex()
		return nil
	case logrow.FieldIsWinner:
		m.ClearIsWinner()
		return nil
	case logrow.FieldReforgeStep:
		m.ClearReforgeStep()
		return nil
	case logrow.FieldAttemptNumber:
		m.ClearAttemptNumber()
		return nil
	case logrow.FieldTurnNumber:
		m.ClearTurnNumber()
		return nil
	case logrow.FieldMutationApplied:
		m.ClearMutationApplied()
		return nil
	case logrow.FieldMutationType:
		m.ClearMutationType()
		return nil
	case logrow.FieldMutationTemplate:
		m.ClearMutationTemplate()
		return nil
	case logrow.FieldSpeciesHash:
		m.ClearSpeciesHash()
		return nil
	case logrow.FieldCascadeFile:
		m.ClearCascadeFile()
		return nil
	case logrow.FieldCascadeJSON:
		m.ClearCascadeJSON()
		return nil
	case logrow.FieldPhaseName:
		m.ClearPhaseName()
		return nil
	case logrow.FieldPhaseJSON:
		m.ClearPhaseJSON()
		return nil
	case logrow.FieldModel:
		m.ClearModel()
		return nil
	case logrow.FieldModelRequested:
		m.ClearModelRequested()
		return nil
	case logrow.FieldRequestID:
		m.ClearRequestID()
		return nil
	case logrow.FieldProvider:
		m.ClearProvider()
		return nil
	case logrow.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case logrow.FieldTokensIn:
		m.ClearTokensIn()
		return nil
	case logrow.FieldTokensOut:
		m.ClearTokensOut()
		return nil
	case logrow.FieldCost:
		m.ClearCost()
		return nil
	case logrow.FieldContentJSON:
		m.ClearContentJSON()
		return nil
	case logrow.FieldFullRequestJSON:
		m.ClearFullRequestJSON()
		return nil
	case logrow.FieldFullResponseJSON:
		m.ClearFullResponseJSON()
		return nil
	case logrow.FieldToolCallsJSON:
		m.ClearToolCallsJSON()
		return nil
	case logrow.FieldImagesJSON:
		m.ClearImagesJSON()
		return nil
	case logrow.FieldCalloutName:
		m.ClearCalloutName()
		return nil
	case logrow.FieldRowMetadata:
		m.ClearRowMetadata()
		return nil
	}
	return fmt.Errorf("unknown LogRow nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LogRowMutation) ResetField(name string) error {
	switch name {
	case logrow.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case logrow.FieldSessionID:
		m.ResetSessionID()
		return nil
	case logrow.FieldTraceID:
		m.ResetTraceID()
		return nil
	case logrow.FieldParentID:
		m.ResetParentID()
		return nil
	case logrow.FieldParentSessionID:
		m.ResetParentSessionID()
		return nil
	case logrow.FieldParentMessageID:
		m.ResetParentMessageID()
		return nil
	case logrow.FieldDepth:
		m.ResetDepth()
		return nil
	case logrow.FieldNodeType:
		m.ResetNodeType()
		return nil
	case logrow.FieldRole:
		m.ResetRole()
		return nil
	case logrow.FieldSoundingIndex:
		m.ResetSoundingIndex()
		return nil
	case logrow.FieldIsWinner:
		m.ResetIsWinner()
		return nil
	case logrow.FieldReforgeStep:
		m.ResetReforgeStep()
		return nil
	case logrow.FieldAttemptNumber:
		m.ResetAttemptNumber()
		return nil
	case logrow.FieldTurnNumber:
		m.ResetTurnNumber()
		return nil
	case logrow.FieldMutationApplied:
		m.ResetMutationApplied()
		return nil
	case logrow.FieldMutationType:
		m.ResetMutationType()
		return nil
	case logrow.FieldMutationTemplate:
		m.ResetMutationTemplate()
		return nil
	case logrow.FieldSpeciesHash:
		m.ResetSpeciesHash()
		return nil
	case logrow.FieldCascadeID:
		m.ResetCascadeID()
		return nil
	case logrow.FieldCascadeFile:
		m.ResetCascadeFile()
		return nil
	case logrow.FieldCascadeJSON:
		m.ResetCascadeJSON()
		return nil
	case logrow.FieldPhaseName:
		m.ResetPhaseName()
		return nil
	case logrow.FieldPhaseJSON:
		m.ResetPhaseJSON()
		return nil
	case logrow.FieldModel:
		m.ResetModel()
		return nil
	case logrow.FieldModelRequested:
		m.ResetModelRequested()
		return nil
	case logrow.FieldRequestID:
		m.ResetRequestID()
		return nil
	case logrow.FieldProvider:
		m.ResetProvider()
		return nil
	case logrow.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case logrow.FieldTokensIn:
		m.ResetTokensIn()
		return nil
	case logrow.FieldTokensOut:
		m.ResetTokensOut()
		return nil
	case logrow.FieldCost:
		m.ResetCost()
		return nil
	case logrow.FieldContentJSON:
		m.ResetContentJSON()
		return nil
	case logrow.FieldFullRequestJSON:
		m.ResetFullRequestJSON()
		return nil
	case logrow.FieldFullResponseJSON:
		m.ResetFullResponseJSON()
		return nil
	case logrow.FieldToolCallsJSON:
		m.ResetToolCallsJSON()
		return nil
	case logrow.FieldImagesJSON:
		m.ResetImagesJSON()
		return nil
	case logrow.FieldHasImages:
		m.ResetHasImages()
		return nil
	case logrow.FieldHasBase64:
		m.ResetHasBase64()
		return nil
	case logrow.FieldSemanticActor:
		m.ResetSemanticActor()
		return nil
	case logrow.FieldSemanticPurpose:
		m.ResetSemanticPurpose()
		return nil
	case logrow.FieldIsCallout:
		m.ResetIsCallout()
		return nil
	case logrow.FieldCalloutName:
		m.ResetCalloutName()
		return nil
	case logrow.FieldRowMetadata:
		m.ResetRowMetadata()
		return nil
	}
	return fmt.Errorf("unknown LogRow field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LogRowMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, logrow.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LogRowMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case logrow.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LogRowMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LogRowMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LogRowMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, logrow.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LogRowMutation) EdgeCleared(name string) bool {
	switch name {
	case logrow.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LogRowMutation) ClearEdge(name string) error {
	switch name {
	case logrow.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown LogRow unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LogRowMutation) ResetEdge(name string) error {
	switch name {
	case logrow.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown LogRow edge %s", name)
}
