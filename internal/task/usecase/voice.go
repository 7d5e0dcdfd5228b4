package usecase

import (
	"context"
	"errors"
	"strings"

	"task-master/internal/task"
	"task-master/internal/voice"
)

// ApplyTranscript interprets input.Transcript against the session's draft.
// A submitting transcript turns the draft into a stored task and resets the
// session; a draft without a title is kept and ErrEmptyTitle returned.
func (uc *implUseCase) ApplyTranscript(ctx context.Context, input task.TranscriptInput) (task.TranscriptOutput, error) {
	session := strings.TrimSpace(input.Session)
	if session == "" {
		return task.TranscriptOutput{}, task.ErrEmptySession
	}

	current, ok := uc.sessions.Get(session)
	if !ok {
		current = voice.DefaultFields(uc.today())
	}

	draft, submit := uc.interpreter.Interpret(input.Transcript, current)
	uc.sessions.Add(session, draft)
	if !submit {
		return task.TranscriptOutput{Draft: draft}, nil
	}

	out, err := uc.Create(ctx, task.CreateInput{
		Title:       draft.Title,
		Description: draft.Description,
		Category:    draft.Category,
		Tags:        draft.Tags,
		Priority:    draft.Priority,
		Date:        draft.Date,
		Time:        draft.Time,
	})
	if err != nil {
		if !errors.Is(err, task.ErrEmptyTitle) {
			uc.l.Errorf(ctx, "uc.ApplyTranscript Create: session=%s: %v", session, err)
		}
		return task.TranscriptOutput{Draft: draft}, err
	}

	uc.sessions.Remove(session)
	created := out.Task
	return task.TranscriptOutput{
		Draft:     voice.DefaultFields(uc.today()),
		Submitted: true,
		Task:      &created,
		Tasks:     out.Tasks,
	}, nil
}

// Draft returns the session's draft, or a fresh one if the session has none.
func (uc *implUseCase) Draft(ctx context.Context, session string) (voice.Fields, error) {
	session = strings.TrimSpace(session)
	if session == "" {
		return voice.Fields{}, task.ErrEmptySession
	}
	if draft, ok := uc.sessions.Get(session); ok {
		return draft, nil
	}
	return voice.DefaultFields(uc.today()), nil
}

// DiscardDraft drops the session's draft.
func (uc *implUseCase) DiscardDraft(ctx context.Context, session string) error {
	session = strings.TrimSpace(session)
	if session == "" {
		return task.ErrEmptySession
	}
	uc.sessions.Remove(session)
	return nil
}
