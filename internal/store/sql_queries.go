// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const sessionValuesTable = "session_values"

func buildGetSessionValueQuery(key string) (string, []any, error) {
	return sq.Select("value").
		From(sessionValuesTable).
		Where(sq.Eq{"key": key}).
		Limit(1).
		ToSql()
}

func buildUpsertSessionValueQuery(key, value string, now time.Time) (string, []any, error) {
	return sq.Insert(sessionValuesTable).
		Columns("key", "value", "updated_at").
		Values(key, value, now.UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteSessionValueQuery(key string) (string, []any, error) {
	return sq.Delete(sessionValuesTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
