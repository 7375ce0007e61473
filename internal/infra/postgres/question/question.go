package infra_postgres_question

import (
	"context"
	"fmt"

	"github.com/gibberish-game/core/internal/model"
	"github.com/jmoiron/sqlx"
)

// Driver serves question sets from a curated postgres table, for
// deployments where the embedded bank is too small or needs editing
// without a redeploy.
type Driver struct {
	db *sqlx.DB
}

func New(
	db *sqlx.DB,
) *Driver {
	return &Driver{db: db}
}

type qnaDTO struct {
	Question string `db:"question"`
	Answer   string `db:"answer"`
}

func (d *Driver) Draw(ctx context.Context, n int) ([]model.QnA, error) {
	var rows []qnaDTO

	query := `
		SELECT question, answer
		FROM questions
		ORDER BY random()
		LIMIT $1
	`

	if err := d.db.SelectContext(ctx, &rows, query, n); err != nil {
		return nil, err
	}

	if len(rows) < n {
		return nil, fmt.Errorf("questions table holds %d rows, need %d", len(rows), n)
	}

	qna := make([]model.QnA, 0, n)
	for _, row := range rows {
		qna = append(qna, model.QnA{
			Question: row.Question,
			Answer:   row.Answer,
		})
	}
	return qna, nil
}
