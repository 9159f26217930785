package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/abhisek/bloomtutor/ent"
	"github.com/abhisek/bloomtutor/ent/lessonplan"
	entschema "github.com/abhisek/bloomtutor/ent/schema"
	"github.com/abhisek/bloomtutor/internal/bloom"
)

// planRepo implements PlanRepo using the ent client.
type planRepo struct {
	client *ent.Client
}

func (r *planRepo) Get(ctx context.Context, sessionID string) (*LessonPlan, error) {
	p, err := r.client.LessonPlan.Query().
		Where(lessonplan.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query lesson plan: %w", err)
	}
	return entPlanToPlan(p), nil
}

func (r *planRepo) CreateIfAbsent(ctx context.Context, plan *LessonPlan) (*LessonPlan, error) {
	steps := make([]entschema.LessonStepData, 0, len(plan.Steps))
	for _, s := range plan.Steps {
		steps = append(steps, entschema.LessonStepData{
			Type:             s.Type,
			Content:          s.Content,
			BloomLevel:       string(s.BloomLevel),
			Checkpoints:      s.Checkpoints,
			EstimatedMinutes: s.EstimatedMinutes,
		})
	}

	// The unique session_id constraint plus a conflict-ignore upsert
	// closes the check-then-create race: whichever turn inserts first
	// wins, and every caller reads back the stored plan.
	err := r.client.LessonPlan.Create().
		SetSessionID(plan.SessionID).
		SetLearnerID(plan.LearnerID).
		SetSubject(plan.Subject).
		SetTopic(plan.Topic).
		SetGradeLevel(plan.GradeLevel).
		SetGoals(plan.Goals).
		SetPriorCheck(plan.PriorCheck).
		SetSteps(steps).
		SetResources(plan.Resources).
		SetTotalMinutes(plan.TotalMinutes).
		OnConflictColumns(lessonplan.FieldSessionID).
		Ignore().
		Exec(ctx)
	// SQLite reports no affected rows when the insert is ignored.
	if err != nil && !errors.Is(err, sql.ErrNoRows) && !ent.IsConstraintError(err) {
		return nil, fmt.Errorf("upsert lesson plan: %w", err)
	}

	stored, err := r.Get(ctx, plan.SessionID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("lesson plan for session %s missing after upsert", plan.SessionID)
	}
	return stored, nil
}

func entPlanToPlan(p *ent.LessonPlan) *LessonPlan {
	out := &LessonPlan{
		SessionID:    p.SessionID,
		LearnerID:    p.LearnerID,
		Subject:      p.Subject,
		Topic:        p.Topic,
		GradeLevel:   p.GradeLevel,
		Goals:        p.Goals,
		PriorCheck:   p.PriorCheck,
		Resources:    p.Resources,
		TotalMinutes: p.TotalMinutes,
		CreatedAt:    p.CreatedAt,
	}
	for _, s := range p.Steps {
		out.Steps = append(out.Steps, LessonStep{
			Type:             s.Type,
			Content:          s.Content,
			BloomLevel:       bloom.Parse(s.BloomLevel),
			Checkpoints:      s.Checkpoints,
			EstimatedMinutes: s.EstimatedMinutes,
		})
	}
	return out
}
