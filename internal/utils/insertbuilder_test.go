package querybuilder

import (
	"reflect"
	"testing"
)

func TestInsertBuilder_MultiRow(t *testing.T) {
	query, args := NewInsertBuilder("public").
		Into("judge_report_results").
		Insert("submission_id", "position", "passed").
		Values("s1", 0, true).
		Values("s1", 1, false).
		OnConflictDoNothing("submission_id", "position").
		Build()

	want := "INSERT INTO public.judge_report_results (submission_id, position, passed) " +
		"VALUES ($1, $2, $3), ($4, $5, $6) " +
		"ON CONFLICT (submission_id, position) DO NOTHING"
	if query != want {
		t.Errorf("query = %q, want %q", query, want)
	}

	wantArgs := []interface{}{"s1", 0, true, "s1", 1, false}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("args = %v, want %v", args, wantArgs)
	}
}

func TestInsertBuilder_NoSchemaNoConflict(t *testing.T) {
	query, args := NewInsertBuilder("").
		Into("problems").
		Insert("id", "slug").
		Values(1, "two-sum").
		Build()

	want := "INSERT INTO problems (id, slug) VALUES ($1, $2)"
	if query != want {
		t.Errorf("query = %q, want %q", query, want)
	}
	if len(args) != 2 {
		t.Errorf("args = %v, want 2 values", args)
	}
}
