package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table and column names.
const (
	answersTable  = "answers"
	resultsTable  = "results"
	historyTable  = "result_history"
	sequenceTable = "history_sequence"

	colID          = "id"
	colQuizID      = "quiz_id"
	colQuestionID  = "question_id"
	colPosition    = "position"
	colValue       = "value"
	colHistoryID   = "history_id"
	colQuizVersion = "quiz_version"
	colSessionID   = "session_id"
	colComputedAt  = "computed_at"
	colSummary     = "summary"
	colSequence    = "sequence"
	colNextVal     = "next_val"
)

var (
	// AnswersColumns holds the columns for the "answers" table.
	AnswersColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colQuizID, Type: field.TypeString},
		{Name: colQuestionID, Type: field.TypeString},
		{Name: colPosition, Type: field.TypeInt},
		{Name: colValue, Type: field.TypeString},
	}
	// AnswersTable holds the schema information for the "answers" table.
	AnswersTable = &schema.Table{
		Name:       answersTable,
		Columns:    AnswersColumns,
		PrimaryKey: []*schema.Column{AnswersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answer_quiz_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{AnswersColumns[1], AnswersColumns[2]},
			},
		},
	}

	// ResultsColumns holds the columns for the "results" table.
	ResultsColumns = []*schema.Column{
		{Name: colQuizID, Type: field.TypeString},
		{Name: colHistoryID, Type: field.TypeString},
		{Name: colSequence, Type: field.TypeInt64},
		{Name: colQuizVersion, Type: field.TypeString, Default: ""},
		{Name: colSessionID, Type: field.TypeString, Default: ""},
		{Name: colComputedAt, Type: field.TypeTime},
		{Name: colSummary, Type: field.TypeString},
	}
	// ResultsTable holds the latest result per quiz.
	ResultsTable = &schema.Table{
		Name:       resultsTable,
		Columns:    ResultsColumns,
		PrimaryKey: []*schema.Column{ResultsColumns[0]},
	}

	// HistoryColumns holds the columns for the "result_history" table.
	HistoryColumns = []*schema.Column{
		{Name: colID, Type: field.TypeString},
		{Name: colSequence, Type: field.TypeInt64},
		{Name: colQuizID, Type: field.TypeString},
		{Name: colQuizVersion, Type: field.TypeString, Default: ""},
		{Name: colSessionID, Type: field.TypeString, Default: ""},
		{Name: colComputedAt, Type: field.TypeTime},
		{Name: colSummary, Type: field.TypeString},
	}
	// HistoryTable is the append-only log of computed results.
	HistoryTable = &schema.Table{
		Name:       historyTable,
		Columns:    HistoryColumns,
		PrimaryKey: []*schema.Column{HistoryColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "resulthistory_quiz_id_sequence",
				Unique:  false,
				Columns: []*schema.Column{HistoryColumns[2], HistoryColumns[1]},
			},
		},
	}

	// SequenceColumns holds the columns for the "history_sequence" table.
	SequenceColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt},
		{Name: colNextVal, Type: field.TypeInt64, Default: 1},
	}
	// SequenceTable holds the single-row history sequence counter.
	SequenceTable = &schema.Table{
		Name:       sequenceTable,
		Columns:    SequenceColumns,
		PrimaryKey: []*schema.Column{SequenceColumns[0]},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswersTable,
		ResultsTable,
		HistoryTable,
		SequenceTable,
	}
)
