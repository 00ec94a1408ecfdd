package quiz

// ScoringType selects how answers are aggregated into trait scores.
type ScoringType string

const (
	ScoringStandard ScoringType = "standard"
	ScoringLadder   ScoringType = "ladder"
)

// QuestionType is the input style of a question. Only likert questions
// contribute to scores.
type QuestionType string

const (
	TypeLikert       QuestionType = "likert"
	TypeSingleChoice QuestionType = "single-choice"
	TypeMultiChoice  QuestionType = "multi-choice"
	TypeOpen         QuestionType = "open"
)

// Default scale bounds used when a quiz does not declare its own scale.
const (
	DefaultScaleMin = 1
	DefaultScaleMax = 5
)

// DefaultLadderLabels are shown for the two halves of a ladder answer.
var DefaultLadderLabels = [2]string{"Current", "Future"}

// Scale is an ordinal answer range. Labels, when present, has one entry
// per integer step starting at Min.
type Scale struct {
	Min    float64  `json:"min"`
	Max    float64  `json:"max"`
	Labels []string `json:"labels,omitempty"`
}

// DefaultScale returns the 1..5 scale.
func DefaultScale() Scale {
	return Scale{Min: DefaultScaleMin, Max: DefaultScaleMax}
}

// Mid returns the midpoint of the scale.
func (s Scale) Mid() float64 {
	return (s.Min + s.Max) / 2
}

// Label returns the label for raw value v, if one is defined.
func (s Scale) Label(v float64) (string, bool) {
	i := int(v - s.Min)
	if float64(i) != v-s.Min || i < 0 || i >= len(s.Labels) {
		return "", false
	}
	return s.Labels[i], true
}

// TraitWeight links a question to a trait. Weight is 1 unless the quiz
// document sets it explicitly; the loader fills the default in.
type TraitWeight struct {
	TraitID string  `json:"traitId"`
	Weight  float64 `json:"weight"`
	Reverse bool    `json:"reverse,omitempty"`
}

// Question is a single prompt in a quiz.
type Question struct {
	ID           string        `json:"id"`
	Text         string        `json:"text"`
	Type         QuestionType  `json:"type"`
	Scale        *Scale        `json:"scale,omitempty"`
	TraitWeights []TraitWeight `json:"trait_weights,omitempty"`
}

// EffectiveScale returns the question's own scale, or fallback when the
// question does not override it.
func (q *Question) EffectiveScale(fallback Scale) Scale {
	if q.Scale != nil {
		return *q.Scale
	}
	return fallback
}

// IsLikert reports whether the question participates in scoring.
func (q *Question) IsLikert() bool {
	return q.Type == TypeLikert
}

// Thresholds bound the medium band of a trait on the normalized [-1, 1]
// range.
type Thresholds struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Trait is a latent dimension scored from weighted question contributions.
type Trait struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Thresholds  *Thresholds `json:"thresholds,omitempty"`
}

// Quiz is a complete quiz definition as loaded from a document.
type Quiz struct {
	ID                  string      `json:"id"`
	Title               string      `json:"title"`
	Description         string      `json:"description,omitempty"`
	Version             string      `json:"version,omitempty"`
	Scale               *Scale      `json:"scale,omitempty"`
	Questions           []Question  `json:"questions"`
	Traits              []Trait     `json:"traits,omitempty"`
	ScoringType         ScoringType `json:"scoringType,omitempty"`
	LadderLabels        []string    `json:"ladderLabels,omitempty"`
	DisplayAsPercentage bool        `json:"displayAsPercentage,omitempty"`
}

// EffectiveScale returns the quiz scale, defaulting to 1..5.
func (q *Quiz) EffectiveScale() Scale {
	if q.Scale != nil {
		return *q.Scale
	}
	return DefaultScale()
}

// Mode returns the scoring type, defaulting to standard.
func (q *Quiz) Mode() ScoringType {
	if q.ScoringType == "" {
		return ScoringStandard
	}
	return q.ScoringType
}

// Labels returns the ladder labels, defaulting to Current/Future.
func (q *Quiz) Labels() [2]string {
	if len(q.LadderLabels) != 2 {
		return DefaultLadderLabels
	}
	return [2]string{q.LadderLabels[0], q.LadderLabels[1]}
}

// Question returns the question with the given id.
func (q *Quiz) Question(id string) (*Question, bool) {
	for i := range q.Questions {
		if q.Questions[i].ID == id {
			return &q.Questions[i], true
		}
	}
	return nil, false
}

// LikertCount returns the number of scoring questions.
func (q *Quiz) LikertCount() int {
	n := 0
	for i := range q.Questions {
		if q.Questions[i].IsLikert() {
			n++
		}
	}
	return n
}
