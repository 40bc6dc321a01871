package grpc

import (
	pb "github.com/dmitrijs2005/todosync/internal/proto"
	"github.com/dmitrijs2005/todosync/internal/server/models"
	"github.com/dmitrijs2005/todosync/internal/server/schema"
)

// Client field names of the entity-specific columns.
const (
	fieldName        = "name"
	fieldColor       = "color"
	fieldTitle       = "title"
	fieldDescription = "description"
	fieldIsCompleted = "is_completed"
	fieldCategoryID  = "category_id"
)

func categoryToRaw(c *pb.Category) models.Raw {
	if c == nil {
		return nil
	}
	raw := models.Raw{
		schema.FieldID:        c.GetId(),
		fieldName:             c.GetName(),
		fieldColor:            optString(c.Color),
		schema.FieldUpdatedAt: c.GetUpdatedAt(),
	}
	if c.CreatedAt != nil {
		raw[schema.FieldCreatedAt] = c.GetCreatedAt()
	}
	return raw
}

func todoToRaw(t *pb.Todo) models.Raw {
	if t == nil {
		return nil
	}
	raw := models.Raw{
		schema.FieldID:        t.GetId(),
		fieldTitle:            t.GetTitle(),
		fieldDescription:      t.GetDescription(),
		fieldIsCompleted:      t.GetIsCompleted(),
		fieldCategoryID:       optString(t.CategoryId),
		schema.FieldUpdatedAt: t.GetUpdatedAt(),
	}
	if t.CreatedAt != nil {
		raw[schema.FieldCreatedAt] = t.GetCreatedAt()
	}
	return raw
}

func categoryFromRaw(raw models.Raw) *pb.Category {
	return &pb.Category{
		Id:        asString(raw[schema.FieldID]),
		Name:      asString(raw[fieldName]),
		Color:     asOptString(raw[fieldColor]),
		CreatedAt: asOptInt64(raw[schema.FieldCreatedAt]),
		UpdatedAt: asInt64(raw[schema.FieldUpdatedAt]),
	}
}

func todoFromRaw(raw models.Raw) *pb.Todo {
	done, _ := raw[fieldIsCompleted].(bool)
	return &pb.Todo{
		Id:          asString(raw[schema.FieldID]),
		Title:       asString(raw[fieldTitle]),
		Description: asString(raw[fieldDescription]),
		IsCompleted: done,
		CategoryId:  asOptString(raw[fieldCategoryID]),
		CreatedAt:   asOptInt64(raw[schema.FieldCreatedAt]),
		UpdatedAt:   asInt64(raw[schema.FieldUpdatedAt]),
	}
}

// changesToPB renders a pull snapshot. Collections the engine left out come
// back as empty change sets.
func changesToPB(changes map[string]models.ChangeSet) *pb.Changes {
	cats := changes[models.CollectionCategories]
	todos := changes[models.CollectionTodos]

	out := &pb.Changes{
		Categories: &pb.CategoryChanges{
			Created: make([]*pb.Category, 0, len(cats.Created)),
			Updated: make([]*pb.Category, 0, len(cats.Updated)),
			Deleted: nonNil(cats.Deleted),
		},
		Todos: &pb.TodoChanges{
			Created: make([]*pb.Todo, 0, len(todos.Created)),
			Updated: make([]*pb.Todo, 0, len(todos.Updated)),
			Deleted: nonNil(todos.Deleted),
		},
	}
	for _, r := range cats.Created {
		out.Categories.Created = append(out.Categories.Created, categoryFromRaw(r))
	}
	for _, r := range cats.Updated {
		out.Categories.Updated = append(out.Categories.Updated, categoryFromRaw(r))
	}
	for _, r := range todos.Created {
		out.Todos.Created = append(out.Todos.Created, todoFromRaw(r))
	}
	for _, r := range todos.Updated {
		out.Todos.Updated = append(out.Todos.Updated, todoFromRaw(r))
	}
	return out
}

// pushFromPB keeps an absent change set as a missing key so the engine can
// reject it.
func pushFromPB(req *pb.PushRequest) *models.PushRequest {
	if req == nil {
		return nil
	}
	out := &models.PushRequest{LastPulledAt: req.LastPulledAt}
	if req.Changes == nil {
		return out
	}
	out.Changes = make(map[string]*models.ChangeSet, 2)
	if cs := req.Changes.Categories; cs != nil {
		m := &models.ChangeSet{Deleted: cs.Deleted}
		for _, c := range cs.Created {
			m.Created = append(m.Created, categoryToRaw(c))
		}
		for _, c := range cs.Updated {
			m.Updated = append(m.Updated, categoryToRaw(c))
		}
		out.Changes[models.CollectionCategories] = m
	}
	if cs := req.Changes.Todos; cs != nil {
		m := &models.ChangeSet{Deleted: cs.Deleted}
		for _, t := range cs.Created {
			m.Created = append(m.Created, todoToRaw(t))
		}
		for _, t := range cs.Updated {
			m.Updated = append(m.Updated, todoToRaw(t))
		}
		out.Changes[models.CollectionTodos] = m
	}
	return out
}

func optString(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asOptString(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

func asInt64(v any) int64 {
	n, _ := v.(int64)
	return n
}

func asOptInt64(v any) *int64 {
	n, ok := v.(int64)
	if !ok {
		return nil
	}
	return &n
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
