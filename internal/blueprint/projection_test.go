package blueprint

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/satellite-games/new-horizons-database/internal/gameobject"
)

type ship struct {
	gameobject.GameObject
	Hull    int
	Cargo   []string
	OnDock  func(port string)
	Captain *string
}

func (ship) Describe() string { return "ship" }

type shipBlueprint struct {
	Name    string
	Hull    int
	Cargo   []string
	Captain *string
}

func TestProjection_DropsIdentityAndBehaviour(t *testing.T) {
	got := ProjectionOf[ship]().Keys()
	want := []string{"captain", "cargo", "hull", "name"}
	if !slices.Equal(got, want) {
		t.Fatalf("got=%v want=%v", got, want)
	}
}

func TestProjection_PointerAndNonStruct(t *testing.T) {
	if got := Projection(reflect.TypeFor[*ship]()).Keys(); len(got) != 4 {
		t.Fatalf("expected pointer to be dereferenced, got=%v", got)
	}
	if got := Projection(reflect.TypeFor[int]()); len(got) != 0 {
		t.Fatalf("expected empty shape for non-struct, got=%v", got)
	}
}

func TestShapeOf_KeepsEverything(t *testing.T) {
	s := ShapeOf[ship]()
	if !s.Has("id") || !s.Has("onDock") || !s.Has("name") {
		t.Fatalf("expected raw shape to keep id, behaviour and name, got=%v", s.Keys())
	}
	if s["name"] != reflect.TypeFor[string]() {
		t.Fatalf("expected name to be a string, got=%v", s["name"])
	}
}

func TestProjection_OuterFieldShadowsEmbedded(t *testing.T) {
	type inner struct {
		Level int
	}
	type outer struct {
		inner
		Level string
	}
	if got := ProjectionOf[outer]()["level"]; got != reflect.TypeFor[string]() {
		t.Fatalf("expected outer field to win, got=%v", got)
	}
}

func TestFieldKey(t *testing.T) {
	cases := map[string]string{
		"Name":            "name",
		"AttributePoints": "attributePoints",
		"ID":              "id",
		"URLPath":         "urlPath",
		"id":              "id",
	}
	for in, want := range cases {
		if got := fieldKey(in); got != want {
			t.Fatalf("fieldKey(%q)=%q want %q", in, got, want)
		}
	}
}

func TestVerify_MatchingBlueprint(t *testing.T) {
	if err := Verify[ship, shipBlueprint](); err != nil {
		t.Fatalf("err=%v", err)
	}
}

func TestVerify_RejectsIdentityField(t *testing.T) {
	type withID struct {
		shipBlueprint
		ID string
	}
	err := Verify[ship, withID]()
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected shape mismatch, got=%v", err)
	}
	var e *Error
	if !errors.As(err, &e) || e.Data()["identity_field"] != "id" {
		t.Fatalf("expected identity_field in data, got=%v", err)
	}
}

func TestVerify_RejectsBehaviourField(t *testing.T) {
	type withFunc struct {
		shipBlueprint
		OnDock func(port string)
	}
	err := Verify[ship, withFunc]()
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected coded error, got=%v", err)
	}
	if got := e.Data()["behaviour_fields"]; !reflect.DeepEqual(got, []string{"onDock"}) {
		t.Fatalf("unexpected behaviour_fields %v", got)
	}
}

func TestVerify_ReportsMissingUnexpectedAndTypes(t *testing.T) {
	type drifted struct {
		Name   string
		Hull   int64
		Cargo  []string
		Engine string
	}
	err := Verify[ship, drifted]()
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected coded error, got=%v", err)
	}
	data := e.Data()
	if !reflect.DeepEqual(data["missing"], []string{"captain"}) {
		t.Fatalf("missing=%v", data["missing"])
	}
	if !reflect.DeepEqual(data["unexpected"], []string{"engine"}) {
		t.Fatalf("unexpected=%v", data["unexpected"])
	}
	if mm, _ := data["type_mismatch"].([]string); len(mm) != 1 {
		t.Fatalf("type_mismatch=%v", data["type_mismatch"])
	}
}
