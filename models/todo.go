package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ToDo is a single item on the canvas. Every field except ID is optional and
// is left out of storage and responses when it was never set.
type ToDo struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       *string            `json:"title,omitempty" bson:"title,omitempty" form:"title"`
	Description *string            `json:"description,omitempty" bson:"description,omitempty" form:"description"`
	IsDone      *bool              `json:"isDone,omitempty" bson:"isDone,omitempty" form:"isDone"`
	X           *float64           `json:"x,omitempty" bson:"x,omitempty" form:"x"`
	Y           *float64           `json:"y,omitempty" bson:"y,omitempty" form:"y"`
}

// ContentUpdate is the body of /update/:id.
type ContentUpdate struct {
	Title       *string `json:"title,omitempty" form:"title"`
	Description *string `json:"description,omitempty" form:"description"`
	IsDone      *bool   `json:"isDone,omitempty" form:"isDone"`
}

// PositionUpdate is the body of /updatePosition/:id.
type PositionUpdate struct {
	X *float64 `json:"x,omitempty" form:"x"`
	Y *float64 `json:"y,omitempty" form:"y"`
}

func (t *ToDo) GetID() *primitive.ObjectID {
	if t == nil {
		return nil
	}
	if t.ID == primitive.NilObjectID {
		return nil
	}
	return &t.ID
}

// Done reports the completion flag, treating an absent value as false.
func (t *ToDo) Done() bool {
	return t != nil && t.IsDone != nil && *t.IsDone
}

// Apply copies the set fields of u onto t.
func (u ContentUpdate) Apply(t *ToDo) {
	if u.Title != nil {
		t.Title = u.Title
	}
	if u.Description != nil {
		t.Description = u.Description
	}
	if u.IsDone != nil {
		t.IsDone = u.IsDone
	}
}

func (u ContentUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.IsDone == nil
}

// Apply copies the set coordinates of u onto t.
func (u PositionUpdate) Apply(t *ToDo) {
	if u.X != nil {
		t.X = u.X
	}
	if u.Y != nil {
		t.Y = u.Y
	}
}

func (u PositionUpdate) IsEmpty() bool {
	return u.X == nil && u.Y == nil
}

// Clone returns a copy of t that shares no pointers with it.
func (t *ToDo) Clone() ToDo {
	c := ToDo{ID: t.ID}
	if t.Title != nil {
		v := *t.Title
		c.Title = &v
	}
	if t.Description != nil {
		v := *t.Description
		c.Description = &v
	}
	if t.IsDone != nil {
		v := *t.IsDone
		c.IsDone = &v
	}
	if t.X != nil {
		v := *t.X
		c.X = &v
	}
	if t.Y != nil {
		v := *t.Y
		c.Y = &v
	}
	return c
}
