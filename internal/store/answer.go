package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/traitquiz/internal/quiz"
)

// answerRepo implements AnswerRepo on the answers table.
type answerRepo struct {
	db *sql.DB
}

func (r *answerRepo) Save(ctx context.Context, quizID string, answers []quiz.Answer) error {
	return opError("save answers", quizID, r.save(ctx, quizID, answers))
}

func (r *answerRepo) save(ctx context.Context, quizID string, answers []quiz.Answer) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	del, args := entsql.Dialect(dialect.SQLite).
		Delete(answersTable).
		Where(entsql.EQ(colQuizID, quizID)).
		Query()
	if _, err := tx.ExecContext(ctx, del, args...); err != nil {
		return fmt.Errorf("delete old answers: %w", err)
	}

	answers = quiz.Dedupe(answers)
	if len(answers) > 0 {
		ins := entsql.Dialect(dialect.SQLite).
			Insert(answersTable).
			Columns(colQuizID, colQuestionID, colPosition, colValue)
		for i, a := range answers {
			v, err := json.Marshal(a.Value)
			if err != nil {
				return fmt.Errorf("marshal answer %q: %w", a.QuestionID, err)
			}
			ins.Values(quizID, a.QuestionID, i, string(v))
		}
		query, args := ins.Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert answers: %w", err)
		}
	}
	return tx.Commit()
}

func (r *answerRepo) Load(ctx context.Context, quizID string) ([]quiz.Answer, error) {
	answers, err := r.load(ctx, quizID)
	return answers, opError("load answers", quizID, err)
}

func (r *answerRepo) load(ctx context.Context, quizID string) ([]quiz.Answer, error) {
	t := entsql.Table(answersTable)
	query, args := entsql.Dialect(dialect.SQLite).
		Select(t.C(colQuestionID), t.C(colValue)).
		From(t).
		Where(entsql.EQ(t.C(colQuizID), quizID)).
		OrderBy(t.C(colPosition)).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	var answers []quiz.Answer
	for rows.Next() {
		var (
			a   quiz.Answer
			raw string
		)
		if err := rows.Scan(&a.QuestionID, &raw); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		if err := json.Unmarshal([]byte(raw), &a.Value); err != nil {
			return nil, fmt.Errorf("decode answer %q: %w", a.QuestionID, err)
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

func (r *answerRepo) Clear(ctx context.Context, quizID string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(answersTable).
		Where(entsql.EQ(colQuizID, quizID)).
		Query()
	_, err := r.db.ExecContext(ctx, query, args...)
	return opError("clear answers", quizID, err)
}
