package cli

import (
	"fmt"
	"io"
	"strings"

	"aoop-portal/internal/content"
	"aoop-portal/internal/domain"
	"aoop-portal/internal/quiz"
	"github.com/spf13/cobra"
)

// NewGradeCmd scores answers against the built-in quiz offline.
func NewGradeCmd() *cobra.Command {
	var answers string
	cmd := &cobra.Command{
		Use:   "grade",
		Short: "Score a set of answers against the built-in quiz",
		Example: `  aoop-portal grade --answers q1=a,q2=b,q3=c
  aoop-portal grade --answers q1=a`,
		RunE: func(cmd *cobra.Command, args []string) error {
			responses, err := parseAnswers(answers)
			if err != nil {
				return err
			}
			return runGrade(cmd.OutOrStdout(), responses)
		},
	}
	cmd.Flags().StringVar(&answers, "answers", "", "comma separated question=choice pairs")
	_ = cmd.MarkFlagRequired("answers")
	return cmd
}

func runGrade(w io.Writer, responses domain.ResponseSet) error {
	q := content.AOOPBasics()
	key, err := q.AnswerKey()
	if err != nil {
		return err
	}

	engine := quiz.NewEngine(key)
	for questionID, choiceID := range responses {
		engine.RecordAnswer(questionID, choiceID)
	}
	if !engine.IsComplete() {
		fmt.Fprintf(w, "warning: %d of %d questions answered, the rest count as wrong\n", engine.Answered(), key.Len())
	}
	outcome := quiz.Outcome(q.ID, engine.Submit())

	fmt.Fprintf(w, "%s\n", outcome.Summary)
	fmt.Fprintf(w, "%d%% (%s)\n", outcome.Rounded, outcome.Tier)
	fmt.Fprintf(w, "%s\n", outcome.Message)
	return nil
}

// parseAnswers reads "q1=a,q2=b". A repeated question keeps its last choice.
func parseAnswers(raw string) (domain.ResponseSet, error) {
	responses := make(domain.ResponseSet)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		questionID, choiceID, ok := strings.Cut(pair, "=")
		questionID, choiceID = strings.TrimSpace(questionID), strings.TrimSpace(choiceID)
		if !ok || questionID == "" || choiceID == "" {
			return nil, fmt.Errorf("invalid answer %q, want question=choice", pair)
		}
		responses[questionID] = choiceID
	}
	return responses, nil
}
