package content

import "testing"

func TestBuiltinAnswerKey(t *testing.T) {
	key, err := AOOPBasics().AnswerKey()
	if err != nil {
		t.Fatalf("answer key: %v", err)
	}
	want := map[string]string{"q1": "a", "q2": "b", "q3": "c"}
	if key.Len() != len(want) {
		t.Fatalf("expected %d questions, got %d", len(want), key.Len())
	}
	for q, c := range want {
		if got, _ := key.Correct(q); got != c {
			t.Fatalf("question %s: expected %s, got %s", q, c, got)
		}
	}
}

func TestQuizzesReturnsCopies(t *testing.T) {
	a := Quizzes()
	a[DefaultQuizID].Questions[0].Choices[0].Correct = false
	if !Quizzes()[DefaultQuizID].Questions[0].Choices[0].Correct {
		t.Fatalf("expected built-in content to be unaffected by caller mutation")
	}
}
