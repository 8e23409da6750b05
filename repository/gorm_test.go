package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"rooms-api/models"
)

// dryRunDB builds SQL without ever contacting a server.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "rooms:rooms@tcp(127.0.0.1:3306)/rooms",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func TestRoomFilterScope(t *testing.T) {
	db := dryRunDB(t)

	var rooms []models.Room
	stmt := db.Scopes(roomFilterScope(RoomFilter{
		Search:   str("de"),
		RoomType: str("rt"),
		MinPrice: num(10),
		MaxPrice: num(20),
	})).Find(&rooms).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "FROM `rooms`")
	assert.Contains(t, sql, "REGEXP_LIKE(name, ?, 'i')")
	assert.Contains(t, sql, "room_type = ?")
	assert.Contains(t, sql, "price >= ?")
	assert.Contains(t, sql, "price <= ?")
	assert.Equal(t, []interface{}{"de", "rt", 10.0, 20.0}, stmt.Vars)
}

func TestRoomFilterScopeEmpty(t *testing.T) {
	var rooms []models.Room
	stmt := dryRunDB(t).Scopes(roomFilterScope(RoomFilter{})).Find(&rooms).Statement
	assert.NotContains(t, stmt.SQL.String(), "WHERE")
}

func TestGormReplaceWritesNulls(t *testing.T) {
	db := dryRunDB(t)

	var stmt *gorm.Statement
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("test:capture", func(tx *gorm.DB) {
		stmt = tx.Statement
	}))

	// A dry run affects no rows, which the store reports as a missing room.
	_, err := NewGormStore(db).Rooms().Replace(context.Background(), "abc", models.RoomFields{Price: num(50)})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NotNil(t, stmt)
	sql := stmt.SQL.String()
	assert.Contains(t, sql, "UPDATE `rooms` SET")
	assert.Contains(t, sql, "`name`=?")
	assert.Contains(t, sql, "`room_type`=?")
	assert.Contains(t, sql, "`price`=?")
	assert.Contains(t, sql, "WHERE id = ?")

	require.Len(t, stmt.Vars, 4)
	nulls := 0
	for _, v := range stmt.Vars[:3] {
		if assert.ObjectsAreEqual((*string)(nil), v) {
			nulls++
		}
	}
	assert.Equal(t, 2, nulls)
	assert.Contains(t, stmt.Vars, num(50))
	assert.Equal(t, "abc", stmt.Vars[3])
}
