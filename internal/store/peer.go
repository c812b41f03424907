package store

import (
	"context"
	"fmt"

	"github.com/abhisek/calibra/ent"
	"github.com/abhisek/calibra/ent/peeroptin"
)

// peerRepo implements PeerRepo using the ent client.
type peerRepo struct {
	client *ent.Client
}

func (r *peerRepo) SetOptIn(ctx context.Context, userID string, optedIn bool) error {
	existing, err := r.client.PeerOptIn.Query().
		Where(peeroptin.UserID(userID)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.PeerOptIn.Create().
			SetUserID(userID).
			SetOptedIn(optedIn).
			Save(ctx)
	case err == nil:
		_, err = existing.Update().
			SetOptedIn(optedIn).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save peer opt-in: %w", err)
	}
	return nil
}

func (r *peerRepo) IsOptedIn(ctx context.Context, userID string) (bool, error) {
	row, err := r.client.PeerOptIn.Query().
		Where(peeroptin.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("query peer opt-in: %w", err)
	}
	return row.OptedIn, nil
}

func (r *peerRepo) OptedInUsers(ctx context.Context) ([]string, error) {
	ids, err := r.client.PeerOptIn.Query().
		Where(peeroptin.OptedIn(true)).
		Order(ent.Asc(peeroptin.FieldUserID)).
		Select(peeroptin.FieldUserID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query opted-in users: %w", err)
	}
	return ids, nil
}
