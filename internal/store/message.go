package store

import (
	"context"
	"fmt"

	"github.com/abhisek/bloomtutor/ent"
	"github.com/abhisek/bloomtutor/ent/message"
)

// messageRepo implements MessageRepo backed by ent and the global
// sequence counter.
type messageRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *messageRepo) Append(ctx context.Context, m *Message) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	saved, err := r.client.Message.Create().
		SetSequence(seqNum).
		SetSessionID(m.SessionID).
		SetRole(m.Role).
		SetContent(m.Content).
		SetMessageType(m.MessageType).
		SetAwaitingAnswer(m.AwaitingAnswer).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save message: %w", err)
	}

	m.Sequence = saved.Sequence
	m.Timestamp = saved.Timestamp
	return nil
}

func (r *messageRepo) LastN(ctx context.Context, sessionID string, n int) ([]*Message, error) {
	msgs, err := r.client.Message.Query().
		Where(message.SessionID(sessionID)).
		Order(ent.Desc(message.FieldSequence)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}

	// Reverse to oldest-first for prompt building.
	out := make([]*Message, len(msgs))
	for i, m := range msgs {
		out[len(msgs)-1-i] = entMessageToMessage(m)
	}
	return out, nil
}

func (r *messageRepo) Last(ctx context.Context, sessionID string) (*Message, error) {
	m, err := r.client.Message.Query().
		Where(message.SessionID(sessionID)).
		Order(ent.Desc(message.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query last message: %w", err)
	}
	return entMessageToMessage(m), nil
}

func (r *messageRepo) LastTutorMessage(ctx context.Context, sessionID string) (*Message, error) {
	m, err := r.client.Message.Query().
		Where(
			message.SessionID(sessionID),
			message.Role(RoleTutor),
		).
		Order(ent.Desc(message.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query last tutor message: %w", err)
	}
	return entMessageToMessage(m), nil
}

func (r *messageRepo) ResolveAwaiting(ctx context.Context, sessionID string) error {
	_, err := r.client.Message.Update().
		Where(
			message.SessionID(sessionID),
			message.Role(RoleTutor),
			message.AwaitingAnswer(true),
		).
		SetAwaitingAnswer(false).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("resolve awaiting messages: %w", err)
	}
	return nil
}

func entMessageToMessage(m *ent.Message) *Message {
	return &Message{
		Sequence:       m.Sequence,
		SessionID:      m.SessionID,
		Role:           m.Role,
		Content:        m.Content,
		MessageType:    m.MessageType,
		AwaitingAnswer: m.AwaitingAnswer,
		Timestamp:      m.Timestamp,
	}
}
