package session

// Progress counts answered scoring questions.
type Progress struct {
	Answered int
	Total    int
}

// Fraction returns the answered share in [0, 1].
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Answered) / float64(p.Total)
}

// Complete reports whether every scoring question has an answer.
func (p Progress) Complete() bool {
	return p.Total > 0 && p.Answered >= p.Total
}

// Progress reports how many likert questions have an answer the quiz's
// scoring type can score.
func (s *Session) Progress() Progress {
	p := Progress{Total: s.quiz.LikertCount()}
	mode := s.quiz.Mode()
	for _, a := range s.answers {
		if qn, ok := s.quiz.Question(a.QuestionID); ok && qn.IsLikert() && scorable(mode, a.Value) {
			p.Answered++
		}
	}
	return p
}
