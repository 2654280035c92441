package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/claude/fit365/internal/models"
)

// ListTodos returns all todo items for the user, oldest first.
func (db *DB) ListTodos(ctx context.Context) ([]models.TodoItem, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, text, category, completed, recurring, COALESCE(reminder_time, '')
		 FROM todos
		 WHERE user_id = $1
		 ORDER BY created_at ASC`,
		defaultUserID)
	if err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}
	defer rows.Close()

	var items []models.TodoItem
	for rows.Next() {
		var t models.TodoItem
		if err := rows.Scan(&t.ID, &t.Text, &t.Category, &t.Completed,
			&t.Recurring, &t.ReminderTime); err != nil {
			return nil, fmt.Errorf("scanning todo: %w", err)
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

// UpsertTodo inserts a todo item or updates it in place by id.
func (db *DB) UpsertTodo(ctx context.Context, t models.TodoItem) error {
	var reminder *string
	if t.ReminderTime != "" {
		reminder = &t.ReminderTime
	}
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO todos (id, user_id, text, category, completed, recurring, reminder_time, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		 ON CONFLICT (id) DO UPDATE SET
		   text=excluded.text, category=excluded.category, completed=excluded.completed,
		   recurring=excluded.recurring, reminder_time=excluded.reminder_time`,
		t.ID, defaultUserID, t.Text, t.Category, t.Completed, t.Recurring,
		reminder, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upserting todo: %w", err)
	}
	return nil
}

// DeleteTodo removes a todo item by id. Deleting an unknown id is not an error.
func (db *DB) DeleteTodo(ctx context.Context, id string) error {
	_, err := db.conn.ExecContext(ctx,
		`DELETE FROM todos WHERE id = $1 AND user_id = $2`, id, defaultUserID)
	if err != nil {
		return fmt.Errorf("deleting todo: %w", err)
	}
	return nil
}

// ResetRecurringTodos clears the completed flag on every recurring item.
// Called at the start of a new day.
func (db *DB) ResetRecurringTodos(ctx context.Context) error {
	_, err := db.conn.ExecContext(ctx,
		`UPDATE todos SET completed = FALSE WHERE user_id = $1 AND recurring = TRUE`,
		defaultUserID)
	if err != nil {
		return fmt.Errorf("resetting recurring todos: %w", err)
	}
	return nil
}
