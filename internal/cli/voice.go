package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"task-master/internal/task"
)

const defaultVoiceSession = "cli"

type voiceView struct {
	Created []taskView `json:"created" yaml:"created"`
	Draft   draftView  `json:"draft" yaml:"draft"`
}

func (a *app) voiceCmd() *cobra.Command {
	var session string
	cmd := &cobra.Command{
		Use:   "voice [transcript]",
		Short: "Build tasks from spoken-style commands",
		Long: `voice applies transcripts to a task draft, one per line of stdin or the
arguments as a single transcript. Recognised keywords: title, description,
date, time, category, tags, priority and "submit" or "add task" to store the
draft as a task. A keyword takes the rest of its transcript as its value, so
give one keyword per line.`,
		Example: `  printf 'title call mom\ndate tomorrow\ntime 6 pm\nsubmit\n' | taskmaster voice
  taskmaster voice -o json title water plants`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, uc task.UseCase) error {
				var transcripts []string
				if len(args) > 0 {
					transcripts = []string{strings.Join(args, " ")}
				} else {
					sc := bufio.NewScanner(cmd.InOrStdin())
					for sc.Scan() {
						if line := strings.TrimSpace(sc.Text()); line != "" {
							transcripts = append(transcripts, line)
						}
					}
					if err := sc.Err(); err != nil {
						return fmt.Errorf("read transcripts: %w", err)
					}
				}
				return a.applyTranscripts(ctx, cmd, uc, session, transcripts)
			})
		},
	}
	cmd.Flags().StringVarP(&session, "session", "s", defaultVoiceSession, "Draft session name")
	return cmd
}

func (a *app) applyTranscripts(ctx context.Context, cmd *cobra.Command, uc task.UseCase, session string, transcripts []string) error {
	p := a.printer(cmd.OutOrStdout())
	view := voiceView{Created: []taskView{}}

	for _, transcript := range transcripts {
		out, err := uc.ApplyTranscript(ctx, task.TranscriptInput{Session: session, Transcript: transcript})
		switch {
		case errors.Is(err, task.ErrEmptyTitle):
			fmt.Fprintf(cmd.ErrOrStderr(), "%q: a task needs a title before it can be added\n", transcript)
			continue
		case err != nil:
			return err
		}
		if out.Submitted && out.Task != nil {
			created := p.taskView(*out.Task)
			view.Created = append(view.Created, created)
			if p.format == outputTable {
				fmt.Fprintf(p.w, "Added %s  %s  (due %s)\n", created.ID, created.Title, created.Due)
			}
		}
	}

	draft, err := uc.Draft(ctx, session)
	if err != nil {
		return err
	}
	view.Draft = p.draftView(draft)
	if done, err := p.structured(view); done {
		return err
	}
	if draft.Title == "" && len(view.Created) > 0 {
		return nil
	}
	fmt.Fprintln(p.w, "Draft:")
	return p.draft(draft)
}
