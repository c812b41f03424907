package store

import (
	"context"
	"fmt"

	"github.com/abhisek/calibra/ent"
	"github.com/abhisek/calibra/ent/poolsnapshot"
)

type poolSnapshotRepo struct {
	client *ent.Client
	seq    *sequencer
}

func (r *poolSnapshotRepo) Save(ctx context.Context, snap *PoolSnapshot) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	create := r.client.PoolSnapshot.Create().
		SetSequence(seq).
		SetFormatVersion(snap.Version).
		SetMembers(snap.Members).
		SetPayload(snap.Payload)
	if !snap.TakenAt.IsZero() {
		create.SetTakenAt(snap.TakenAt)
	}
	row, err := create.Save(ctx)
	if err != nil {
		return fmt.Errorf("save pool snapshot: %w", err)
	}
	snap.ID, snap.Sequence, snap.TakenAt = row.ID, row.Sequence, row.TakenAt
	return nil
}

func (r *poolSnapshotRepo) Latest(ctx context.Context) (*PoolSnapshot, error) {
	row, err := r.client.PoolSnapshot.Query().
		Order(ent.Desc(poolsnapshot.FieldTakenAt), ent.Desc(poolsnapshot.FieldSequence)).
		First(ctx)
	switch {
	case ent.IsNotFound(err):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("latest pool snapshot: %w", err)
	}
	return &PoolSnapshot{
		ID:       row.ID,
		Sequence: row.Sequence,
		TakenAt:  row.TakenAt,
		Version:  row.FormatVersion,
		Members:  row.Members,
		Payload:  row.Payload,
	}, nil
}

func (r *poolSnapshotRepo) Prune(ctx context.Context, keep int) error {
	if keep < 0 {
		keep = 0
	}
	kept, err := r.client.PoolSnapshot.Query().
		Order(ent.Desc(poolsnapshot.FieldTakenAt), ent.Desc(poolsnapshot.FieldSequence)).
		Limit(keep).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("list pool snapshots: %w", err)
	}
	if _, err := r.client.PoolSnapshot.Delete().
		Where(poolsnapshot.IDNotIn(kept...)).
		Exec(ctx); err != nil {
		return fmt.Errorf("prune pool snapshots: %w", err)
	}
	return nil
}
