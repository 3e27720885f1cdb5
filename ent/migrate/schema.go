// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "text", Type: field.TypeString},
		{Name: "options", Type: field.TypeJSON},
		{Name: "answer", Type: field.TypeString},
		{Name: "explanation", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_topic",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1]},
			},
			{
				Name:    "question_created_at",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		QuestionsTable,
	}
)

func init() {
}
