package store

import (
	"context"
	"fmt"

	"github.com/abhisek/bloomtutor/ent"
	"github.com/abhisek/bloomtutor/ent/learnerprofile"
	entschema "github.com/abhisek/bloomtutor/ent/schema"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) GetOrCreate(ctx context.Context, learnerID string) (*LearnerProfile, error) {
	// Conflict-ignore insert makes lazy creation race-safe: two
	// concurrent first turns both end up reading the same row.
	err := r.client.LearnerProfile.Create().
		SetLearnerID(learnerID).
		OnConflictColumns(learnerprofile.FieldLearnerID).
		Ignore().
		Exec(ctx)
	if err != nil && !ent.IsConstraintError(err) {
		return nil, fmt.Errorf("ensure profile: %w", err)
	}

	p, err := r.client.LearnerProfile.Query().
		Where(learnerprofile.LearnerID(learnerID)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return entProfileToProfile(p), nil
}

func (r *profileRepo) Update(ctx context.Context, p *LearnerProfile) error {
	tracked := make([]entschema.TrackedError, 0, len(p.TrackedErrors))
	for _, e := range p.TrackedErrors {
		tracked = append(tracked, entschema.TrackedError{
			Type:      e.Type,
			Context:   e.Context,
			Timestamp: e.Timestamp,
		})
	}

	_, err := r.client.LearnerProfile.Update().
		Where(learnerprofile.LearnerID(p.LearnerID)).
		SetPreferredMode(p.PreferredMode).
		SetLearningStyle(p.LearningStyle).
		SetTrackedErrors(tracked).
		SetSessionCount(p.SessionCount).
		SetTotalTimeMins(p.TotalTimeMins).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

func entProfileToProfile(p *ent.LearnerProfile) *LearnerProfile {
	out := &LearnerProfile{
		LearnerID:     p.LearnerID,
		PreferredMode: p.PreferredMode,
		LearningStyle: p.LearningStyle,
		SessionCount:  p.SessionCount,
		TotalTimeMins: p.TotalTimeMins,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	for _, e := range p.TrackedErrors {
		out.TrackedErrors = append(out.TrackedErrors, TrackedError{
			Type:      e.Type,
			Context:   e.Context,
			Timestamp: e.Timestamp,
		})
	}
	return out
}
