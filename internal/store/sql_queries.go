// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Balakin

package store

const (
	getValue = `
		SELECT value
		FROM keyspace
		WHERE key = $1;`

	upsertValue = `
		INSERT INTO keyspace (key, value, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value      = excluded.value,
			updated_at = CURRENT_TIMESTAMP;`

	deleteValue = `
		DELETE FROM keyspace
		WHERE key = $1;`
)
