package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/abhisek/traitquiz/internal/scoring"
)

// resultRepo implements ResultRepo on the results and result_history
// tables.
type resultRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *resultRepo) Save(ctx context.Context, res *Result) error {
	return opError("save result", res.QuizID, r.save(ctx, res))
}

func (r *resultRepo) save(ctx context.Context, res *Result) error {
	if res.Summary == nil {
		return errors.New("result has no summary")
	}
	summary, err := json.Marshal(res.Summary)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}

	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("history id: %w", err)
	}
	if res.ComputedAt.IsZero() {
		res.ComputedAt = time.Now()
	}
	computedAt := res.ComputedAt.UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(historyTable).
		Columns(colID, colSequence, colQuizID, colQuizVersion, colSessionID, colComputedAt, colSummary).
		Values(id.String(), seq, res.QuizID, res.QuizVersion, res.SessionID, computedAt, string(summary)).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("append history: %w", err)
	}

	query, args = entsql.Dialect(dialect.SQLite).
		Insert(resultsTable).
		Columns(colQuizID, colHistoryID, colSequence, colQuizVersion, colSessionID, colComputedAt, colSummary).
		Values(res.QuizID, id.String(), seq, res.QuizVersion, res.SessionID, computedAt, string(summary)).
		OnConflict(entsql.ConflictColumns(colQuizID), entsql.ResolveWithNewValues()).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert latest: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	res.ID = id.String()
	res.Sequence = seq
	res.ComputedAt = computedAt
	return nil
}

func (r *resultRepo) Latest(ctx context.Context, quizID string) (*Result, error) {
	res, err := r.latest(ctx, quizID)
	return res, opError("latest result", quizID, err)
}

func (r *resultRepo) latest(ctx context.Context, quizID string) (*Result, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(colHistoryID, colSequence, colQuizVersion, colSessionID, colComputedAt, colSummary).
		From(entsql.Table(resultsTable)).
		Where(entsql.EQ(colQuizID, quizID)).
		Query()

	res, err := scanResult(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest result: %w", err)
	}
	res.QuizID = quizID
	return res, nil
}

func (r *resultRepo) History(ctx context.Context, quizID string, limit int) ([]Result, error) {
	results, err := r.history(ctx, quizID, limit)
	return results, opError("result history", quizID, err)
}

func (r *resultRepo) history(ctx context.Context, quizID string, limit int) ([]Result, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(colID, colSequence, colQuizVersion, colSessionID, colComputedAt, colSummary).
		From(entsql.Table(historyTable)).
		Where(entsql.EQ(colQuizID, quizID)).
		OrderBy(entsql.Desc(colSequence))
	if limit > 0 {
		sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		res.QuizID = quizID
		results = append(results, *res)
	}
	return results, rows.Err()
}

func (r *resultRepo) Prune(ctx context.Context, quizID string, keep int) error {
	return opError("prune history", quizID, r.prune(ctx, quizID, keep))
}

func (r *resultRepo) prune(ctx context.Context, quizID string, keep int) error {
	if keep < 0 {
		return nil
	}

	// Find the sequence threshold: the first entry past the newest keep.
	query, args := entsql.Dialect(dialect.SQLite).
		Select(colSequence).
		From(entsql.Table(historyTable)).
		Where(entsql.EQ(colQuizID, quizID)).
		OrderBy(entsql.Desc(colSequence)).
		Offset(keep).
		Limit(1).
		Query()

	var threshold int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&threshold)
	if errors.Is(err, sql.ErrNoRows) {
		return nil // fewer than keep entries exist
	}
	if err != nil {
		return fmt.Errorf("query history for prune: %w", err)
	}

	query, args = entsql.Dialect(dialect.SQLite).
		Delete(historyTable).
		Where(entsql.And(
			entsql.EQ(colQuizID, quizID),
			entsql.LTE(colSequence, threshold),
		)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete history: %w", err)
	}
	return nil
}

func (r *resultRepo) Clear(ctx context.Context, quizID string) error {
	return opError("clear results", quizID, r.clear(ctx, quizID))
}

func (r *resultRepo) clear(ctx context.Context, quizID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{resultsTable, historyTable} {
		query, args := entsql.Dialect(dialect.SQLite).
			Delete(table).
			Where(entsql.EQ(colQuizID, quizID)).
			Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("delete %s: %w", table, err)
		}
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanResult reads the id, sequence, version, session, time and summary
// columns, in that order.
func scanResult(row rowScanner) (*Result, error) {
	var (
		res     Result
		summary string
	)
	if err := row.Scan(&res.ID, &res.Sequence, &res.QuizVersion, &res.SessionID, &res.ComputedAt, &summary); err != nil {
		return nil, err
	}
	res.Summary = new(scoring.Summary)
	if err := json.Unmarshal([]byte(summary), res.Summary); err != nil {
		return nil, fmt.Errorf("decode summary: %w", err)
	}
	return &res, nil
}
