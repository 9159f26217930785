package store

import (
	"context"
	"fmt"

	"github.com/abhisek/bloomtutor/ent"
	"github.com/abhisek/bloomtutor/ent/masteryrecord"
	"github.com/abhisek/bloomtutor/internal/bloom"
)

// masteryRepo implements MasteryRepo using the ent client.
type masteryRepo struct {
	client *ent.Client
}

func (r *masteryRepo) Get(ctx context.Context, learnerID, subject, topic string, lvl bloom.Level) (*MasteryRecord, error) {
	rec, err := r.client.MasteryRecord.Query().
		Where(
			masteryrecord.LearnerID(learnerID),
			masteryrecord.Subject(subject),
			masteryrecord.Topic(topic),
			masteryrecord.BloomLevel(string(lvl)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query mastery record: %w", err)
	}
	return entMasteryToMastery(rec), nil
}

func (r *masteryRepo) List(ctx context.Context, learnerID, subject, topic string) ([]*MasteryRecord, error) {
	recs, err := r.client.MasteryRecord.Query().
		Where(
			masteryrecord.LearnerID(learnerID),
			masteryrecord.Subject(subject),
			masteryrecord.Topic(topic),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list mastery records: %w", err)
	}

	out := make([]*MasteryRecord, 0, len(recs))
	for _, rec := range recs {
		out = append(out, entMasteryToMastery(rec))
	}
	return out, nil
}

func (r *masteryRepo) Create(ctx context.Context, rec *MasteryRecord) error {
	_, err := r.client.MasteryRecord.Create().
		SetLearnerID(rec.LearnerID).
		SetSubject(rec.Subject).
		SetTopic(rec.Topic).
		SetBloomLevel(string(rec.BloomLevel)).
		SetScore(rec.Score).
		SetAttempts(rec.Attempts).
		SetCorrectCount(rec.CorrectCount).
		SetIncorrectCount(rec.IncorrectCount).
		SetLastPracticedAt(rec.LastPracticedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create mastery record: %w", err)
	}
	return nil
}

func (r *masteryRepo) Update(ctx context.Context, rec *MasteryRecord) error {
	_, err := r.client.MasteryRecord.Update().
		Where(
			masteryrecord.LearnerID(rec.LearnerID),
			masteryrecord.Subject(rec.Subject),
			masteryrecord.Topic(rec.Topic),
			masteryrecord.BloomLevel(string(rec.BloomLevel)),
		).
		SetScore(rec.Score).
		SetAttempts(rec.Attempts).
		SetCorrectCount(rec.CorrectCount).
		SetIncorrectCount(rec.IncorrectCount).
		SetLastPracticedAt(rec.LastPracticedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update mastery record: %w", err)
	}
	return nil
}

func entMasteryToMastery(rec *ent.MasteryRecord) *MasteryRecord {
	return &MasteryRecord{
		LearnerID:       rec.LearnerID,
		Subject:         rec.Subject,
		Topic:           rec.Topic,
		BloomLevel:      bloom.Parse(rec.BloomLevel),
		Score:           rec.Score,
		Attempts:        rec.Attempts,
		CorrectCount:    rec.CorrectCount,
		IncorrectCount:  rec.IncorrectCount,
		LastPracticedAt: rec.LastPracticedAt,
	}
}
