// SPDX-License-Identifier: Apache-2.0

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `
		INSERT INTO users (email, phone_number, first_name, last_name, date_of_birth, password)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, email, phone_number, first_name, last_name, date_of_birth, password, created_at, updated_at;`

	createSalary = `
		INSERT INTO salary (user_id, next_raise_date)
		VALUES ($1, $2)
		RETURNING id, amount, next_raise_date, user_id, created_at, updated_at;`

	findUserByID = `
		SELECT id, email, phone_number, first_name, last_name, date_of_birth, password, created_at, updated_at
		FROM users
		WHERE id = $1;`

	findSalaryByUserID = `
		SELECT id, amount, next_raise_date, user_id, created_at, updated_at
		FROM salary
		WHERE user_id = $1;`

	deleteSalaryByUserID = `
		DELETE FROM salary
		WHERE user_id = $1;`

	deleteUserByID = `
		DELETE FROM users
		WHERE id = $1;`
)

// userColumns is the canonical column list scanned into [models.User].
var userColumns = []string{
	"id", "email", "phone_number", "first_name", "last_name",
	"date_of_birth", "password", "created_at", "updated_at",
}

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildFindUserBy produces a SELECT for an exact-match lookup over the given
// filters (column name → value).
func buildFindUserBy(filters map[string]any) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From("users").
		Where(sq.Eq(filters)).
		Limit(1).
		ToSql()
}

// buildUpdateUser produces a partial UPDATE over the given fields
// (column name → value) for a single user, bumping updated_at.
func buildUpdateUser(userID int64, fields map[string]any) (string, []any, error) {
	return psql.
		Update("users").
		SetMap(fields).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": userID}).
		ToSql()
}
