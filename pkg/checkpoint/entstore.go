package checkpoint

import (
	"context"
	"time"

	"github.com/windlassio/windlass/ent"
	entcheckpoint "github.com/windlassio/windlass/ent/checkpoint"
)

// EntStore persists checkpoints in Postgres through ent.
type EntStore struct {
	client *ent.Client
}

// NewEntStore wraps an ent client.
func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

func (s *EntStore) Create(ctx context.Context, cp *Checkpoint) error {
	create := s.client.Checkpoint.Create().
		SetID(cp.ID).
		SetSessionID(cp.SessionID).
		SetCascadeID(cp.CascadeID).
		SetPhaseName(cp.PhaseName).
		SetType(entcheckpoint.Type(cp.Type)).
		SetStatus(entcheckpoint.Status(StatusPending)).
		SetUISpec(cp.UISpec).
		SetNillablePhaseOutput(cp.PhaseOutput).
		SetNillableSoundingOutputsJSON(cp.SoundingOutputsJSON).
		SetNillableSoundingMetadataJSON(cp.SoundingMetadataJSON).
		SetNillableTimeoutSeconds(cp.TimeoutSeconds).
		SetCreatedAt(cp.CreatedAt)
	if cp.TraceContext != nil {
		create.SetTraceContext(cp.TraceContext)
	}
	_, err := create.Save(ctx)
	return err
}

func (s *EntStore) Get(ctx context.Context, id string) (*Checkpoint, error) {
	ec, err := s.client.Checkpoint.Query().
		Where(entcheckpoint.IDEQ(id)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return fromEnt(ec), nil
}

func (s *EntStore) List(ctx context.Context, filter Filter) ([]*Checkpoint, error) {
	q := s.client.Checkpoint.Query()
	if filter.SessionID != "" {
		q = q.Where(entcheckpoint.SessionIDEQ(filter.SessionID))
	}
	if filter.Status != "" {
		q = q.Where(entcheckpoint.StatusEQ(entcheckpoint.Status(filter.Status)))
	}
	q = q.Order(ent.Asc(entcheckpoint.FieldCreatedAt))
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Checkpoint, len(rows))
	for i, ec := range rows {
		out[i] = fromEnt(ec)
	}
	return out, nil
}

func (s *EntStore) SetResponse(ctx context.Context, id string, response map[string]any) (bool, error) {
	n, err := s.client.Checkpoint.Update().
		Where(
			entcheckpoint.IDEQ(id),
			entcheckpoint.StatusEQ(entcheckpoint.Status(StatusPending)),
		).
		SetStatus(entcheckpoint.Status(StatusResponded)).
		SetResponse(response).
		SetRespondedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *EntStore) SetStatus(ctx context.Context, id string, status Status) error {
	_, err := s.client.Checkpoint.Update().
		Where(
			entcheckpoint.IDEQ(id),
			entcheckpoint.StatusEQ(entcheckpoint.Status(StatusPending)),
		).
		SetStatus(entcheckpoint.Status(status)).
		Save(ctx)
	return err
}

func fromEnt(ec *ent.Checkpoint) *Checkpoint {
	return &Checkpoint{
		ID:                   ec.ID,
		SessionID:            ec.SessionID,
		CascadeID:            ec.CascadeID,
		PhaseName:            ec.PhaseName,
		Type:                 Type(ec.Type),
		Status:               Status(ec.Status),
		UISpec:               ec.UISpec,
		PhaseOutput:          ec.PhaseOutput,
		SoundingOutputsJSON:  ec.SoundingOutputsJSON,
		SoundingMetadataJSON: ec.SoundingMetadataJSON,
		TimeoutSeconds:       ec.TimeoutSeconds,
		TraceContext:         ec.TraceContext,
		Response:             ec.Response,
		CreatedAt:            ec.CreatedAt,
		RespondedAt:          ec.RespondedAt,
	}
}
