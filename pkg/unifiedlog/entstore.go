package unifiedlog

import (
	"context"
	"fmt"

	"github.com/windlassio/windlass/ent"
	"github.com/windlassio/windlass/ent/logrow"
)

// EntStore persists rows to Postgres through the ent client.
type EntStore struct {
	client *ent.Client
}

// NewEntStore creates a Store backed by the given ent client.
func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

func (s *EntStore) WriteRows(ctx context.Context, rows []*Row) error {
	if len(rows) == 0 {
		return nil
	}
	builders := make([]*ent.LogRowCreate, len(rows))
	for i, r := range rows {
		builders[i] = s.client.LogRow.Create().
			SetID(r.RowID).
			SetTimestamp(r.Timestamp).
			SetSessionID(r.SessionID).
			SetTraceID(r.TraceID).
			SetNillableParentID(r.ParentID).
			SetNillableParentSessionID(r.ParentSessionID).
			SetNillableParentMessageID(r.ParentMessageID).
			SetDepth(r.Depth).
			SetNodeType(r.NodeType).
			SetRole(r.Role).
			SetNillableSoundingIndex(r.SoundingIndex).
			SetNillableIsWinner(r.IsWinner).
			SetNillableReforgeStep(r.ReforgeStep).
			SetNillableAttemptNumber(r.AttemptNumber).
			SetNillableTurnNumber(r.TurnNumber).
			SetNillableMutationApplied(r.MutationApplied).
			SetNillableMutationType(r.MutationType).
			SetNillableMutationTemplate(r.MutationTemplate).
			SetNillableSpeciesHash(r.SpeciesHash).
			SetCascadeID(r.CascadeID).
			SetNillableCascadeFile(r.CascadeFile).
			SetNillableCascadeJSON(r.CascadeJSON).
			SetNillablePhaseName(r.PhaseName).
			SetNillablePhaseJSON(r.PhaseJSON).
			SetNillableModel(r.Model).
			SetNillableModelRequested(r.ModelRequested).
			SetNillableRequestID(r.RequestID).
			SetNillableProvider(r.Provider).
			SetNillableDurationMs(r.DurationMs).
			SetNillableTokensIn(r.TokensIn).
			SetNillableTokensOut(r.TokensOut).
			SetNillableCost(r.Cost).
			SetNillableContentJSON(r.ContentJSON).
			SetNillableFullRequestJSON(r.FullRequestJSON).
			SetNillableFullResponseJSON(r.FullResponseJSON).
			SetNillableToolCallsJSON(r.ToolCallsJSON).
			SetNillableImagesJSON(r.ImagesJSON).
			SetHasImages(r.HasImages).
			SetHasBase64(r.HasBase64).
			SetSemanticActor(logrow.SemanticActor(r.SemanticActor)).
			SetSemanticPurpose(logrow.SemanticPurpose(r.SemanticPurpose)).
			SetIsCallout(r.IsCallout).
			SetNillableCalloutName(r.CalloutName).
			SetRowMetadata(r.Metadata)
	}
	if err := s.client.LogRow.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("failed to write log rows: %w", err)
	}
	return nil
}

func (s *EntStore) Query(ctx context.Context, f Filter) ([]*Row, error) {
	q := s.client.LogRow.Query()

	if f.SessionID != "" {
		q = q.Where(logrow.SessionIDEQ(f.SessionID))
	}
	if f.TraceID != "" {
		q = q.Where(logrow.TraceIDEQ(f.TraceID))
	}
	if f.PhaseName != "" {
		q = q.Where(logrow.PhaseNameEQ(f.PhaseName))
	}
	if f.NodeType != "" {
		q = q.Where(logrow.NodeTypeEQ(f.NodeType))
	}
	if f.Role != "" {
		q = q.Where(logrow.RoleEQ(f.Role))
	}
	if f.SoundingIndex != nil {
		q = q.Where(logrow.SoundingIndexEQ(*f.SoundingIndex))
	}
	if f.IsWinner != nil {
		q = q.Where(logrow.IsWinnerEQ(*f.IsWinner))
	}
	if f.SpeciesHash != "" {
		q = q.Where(logrow.SpeciesHashEQ(f.SpeciesHash))
	}
	if !f.Since.IsZero() {
		q = q.Where(logrow.TimestampGTE(f.Since))
	}
	if !f.Until.IsZero() {
		q = q.Where(logrow.TimestampLTE(f.Until))
	}

	q = q.Order(ent.Asc(logrow.FieldTimestamp))
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	entRows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query log rows: %w", err)
	}

	rows := make([]*Row, len(entRows))
	for i, er := range entRows {
		rows[i] = fromEnt(er)
	}
	return rows, nil
}

func (s *EntStore) MarkWinners(ctx context.Context, sessionID, phaseName string, soundingIndex int) (int, error) {
	n, err := s.client.LogRow.Update().
		Where(
			logrow.SessionIDEQ(sessionID),
			logrow.PhaseNameEQ(phaseName),
			logrow.SoundingIndexEQ(soundingIndex),
		).
		SetIsWinner(true).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to mark winner rows: %w", err)
	}
	return n, nil
}

func (s *EntStore) PriorWinningRewrites(ctx context.Context, speciesHash string, limit int) ([]*Row, error) {
	entRows, err := s.client.LogRow.Query().
		Where(
			logrow.NodeTypeEQ(NodeTypeMutation),
			logrow.SpeciesHashEQ(speciesHash),
			logrow.IsWinnerEQ(true),
		).
		Order(ent.Desc(logrow.FieldTimestamp)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query prior winning rewrites: %w", err)
	}

	rows := make([]*Row, len(entRows))
	for i, er := range entRows {
		rows[i] = fromEnt(er)
	}
	return rows, nil
}

func fromEnt(er *ent.LogRow) *Row {
	return &Row{
		RowID:            er.ID,
		Timestamp:        er.Timestamp,
		SessionID:        er.SessionID,
		TraceID:          er.TraceID,
		ParentID:         er.ParentID,
		ParentSessionID:  er.ParentSessionID,
		ParentMessageID:  er.ParentMessageID,
		Depth:            er.Depth,
		NodeType:         er.NodeType,
		Role:             er.Role,
		SoundingIndex:    er.SoundingIndex,
		IsWinner:         er.IsWinner,
		ReforgeStep:      er.ReforgeStep,
		AttemptNumber:    er.AttemptNumber,
		TurnNumber:       er.TurnNumber,
		MutationApplied:  er.MutationApplied,
		MutationType:     er.MutationType,
		MutationTemplate: er.MutationTemplate,
		SpeciesHash:      er.SpeciesHash,
		CascadeID:        er.CascadeID,
		CascadeFile:      er.CascadeFile,
		CascadeJSON:      er.CascadeJSON,
		PhaseName:        er.PhaseName,
		PhaseJSON:        er.PhaseJSON,
		Model:            er.Model,
		ModelRequested:   er.ModelRequested,
		RequestID:        er.RequestID,
		Provider:         er.Provider,
		DurationMs:       er.DurationMs,
		TokensIn:         er.TokensIn,
		TokensOut:        er.TokensOut,
		Cost:             er.Cost,
		ContentJSON:      er.ContentJSON,
		FullRequestJSON:  er.FullRequestJSON,
		FullResponseJSON: er.FullResponseJSON,
		ToolCallsJSON:    er.ToolCallsJSON,
		ImagesJSON:       er.ImagesJSON,
		HasImages:        er.HasImages,
		HasBase64:        er.HasBase64,
		SemanticActor:    string(er.SemanticActor),
		SemanticPurpose:  string(er.SemanticPurpose),
		IsCallout:        er.IsCallout,
		CalloutName:      er.CalloutName,
		Metadata:         er.RowMetadata,
	}
}
