package querybuilder

import (
	"reflect"
	"testing"
)

type insertModelFixture struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	Ignored  string `db:"-"`
	NoTag    string
}

func TestInsertModel_UsesDBTags(t *testing.T) {
	t.Parallel()

	sql, args, err := InsertModel("users", insertModelFixture{ID: 7, Username: "andi", Ignored: "x", NoTag: "y"}, "")
	if err != nil {
		t.Fatalf("insert model failed: %v", err)
	}

	if sql != "INSERT INTO users (id, username) VALUES ($1, $2)" {
		t.Fatalf("unexpected sql: %s", sql)
	}
	if !reflect.DeepEqual(args, []any{int64(7), "andi"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsertModel_AcceptsPointer(t *testing.T) {
	t.Parallel()

	model := &insertModelFixture{ID: 1, Username: "budi"}
	sql, _, err := InsertModel("users", model, "RETURNING id")
	if err != nil {
		t.Fatalf("insert model failed: %v", err)
	}
	if sql != "INSERT INTO users (id, username) VALUES ($1, $2) RETURNING id" {
		t.Fatalf("unexpected sql: %s", sql)
	}
}

func TestInsertModels_BatchesRowsIntoOneStatement(t *testing.T) {
	t.Parallel()

	models := []insertModelFixture{
		{ID: 1, Username: "andi"},
		{ID: 2, Username: "budi"},
		{ID: 3, Username: "cici"},
	}

	sql, args, err := InsertModels("users", models, "")
	if err != nil {
		t.Fatalf("insert models failed: %v", err)
	}

	if sql != "INSERT INTO users (id, username) VALUES ($1, $2), ($3, $4), ($5, $6)" {
		t.Fatalf("unexpected sql: %s", sql)
	}
	if len(args) != 6 {
		t.Fatalf("expected 6 args, got %d", len(args))
	}
}

func TestInsertModels_RejectsEmptySlice(t *testing.T) {
	t.Parallel()

	if _, _, err := InsertModels[insertModelFixture]("users", nil, ""); err == nil {
		t.Fatalf("expected error for empty model slice")
	}
}

func TestInsertModel_RejectsNonStruct(t *testing.T) {
	t.Parallel()

	if _, _, err := InsertModel("users", 42, ""); err == nil {
		t.Fatalf("expected error for non-struct model")
	}
	var nilModel *insertModelFixture
	if _, _, err := InsertModel("users", nilModel, ""); err == nil {
		t.Fatalf("expected error for nil pointer model")
	}
}
