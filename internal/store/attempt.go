package store

import (
	"context"
	"fmt"

	"github.com/abhisek/bloomtutor/ent"
	"github.com/abhisek/bloomtutor/ent/tutorattempt"
	"github.com/abhisek/bloomtutor/internal/bloom"
)

// attemptRepo implements AttemptRepo backed by ent and the global
// sequence counter.
type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *attemptRepo) Append(ctx context.Context, a *TutorAttempt) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TutorAttempt.Create().
		SetSequence(seqNum).
		SetSessionID(a.SessionID).
		SetLearnerID(a.LearnerID).
		SetSubject(a.Subject).
		SetTopic(a.Topic).
		SetBloomLevel(string(a.BloomLevel)).
		SetQuestion(a.Question).
		SetAnswer(a.Answer).
		SetCorrect(a.Correct).
		SetConfidence(a.Confidence).
		SetFeedback(a.Feedback).
		SetTimeSpentMs(a.TimeSpentMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save tutor attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) Stats(ctx context.Context, learnerID, subject, topic string, lastN int) (AttemptStats, error) {
	q := r.client.TutorAttempt.Query().
		Where(
			tutorattempt.LearnerID(learnerID),
			tutorattempt.Subject(subject),
			tutorattempt.Topic(topic),
		).
		Order(ent.Desc(tutorattempt.FieldSequence))
	if lastN > 0 {
		q = q.Limit(lastN)
	}

	attempts, err := q.All(ctx)
	if err != nil {
		return AttemptStats{}, fmt.Errorf("query attempts: %w", err)
	}

	stats := AttemptStats{Total: len(attempts)}
	if stats.Total == 0 {
		return stats, nil
	}

	confSum := 0.0
	for _, a := range attempts {
		if a.Correct {
			stats.Correct++
		}
		confSum += a.Confidence
	}
	stats.AvgConfidence = confSum / float64(stats.Total)
	return stats, nil
}

func (r *attemptRepo) ListRecent(ctx context.Context, learnerID, subject, topic string, n int) ([]*TutorAttempt, error) {
	q := r.client.TutorAttempt.Query().
		Where(
			tutorattempt.LearnerID(learnerID),
			tutorattempt.Subject(subject),
			tutorattempt.Topic(topic),
		).
		Order(ent.Desc(tutorattempt.FieldSequence))
	if n > 0 {
		q = q.Limit(n)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	out := make([]*TutorAttempt, 0, len(rows))
	for _, row := range rows {
		out = append(out, &TutorAttempt{
			SessionID:   row.SessionID,
			LearnerID:   row.LearnerID,
			Subject:     row.Subject,
			Topic:       row.Topic,
			BloomLevel:  bloom.Level(row.BloomLevel),
			Question:    row.Question,
			Answer:      row.Answer,
			Correct:     row.Correct,
			Confidence:  row.Confidence,
			Feedback:    row.Feedback,
			TimeSpentMs: row.TimeSpentMs,
		})
	}
	return out, nil
}
