package models

import "go.mongodb.org/mongo-driver/v2/bson"

type Country struct {
	Id   bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Code string        `bson:"code" json:"code"` // ISO 3166-1 alpha-2, stored upper-case
	Name string        `bson:"name" json:"name"`
}

type Category struct {
	Id          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Slug        string        `bson:"slug" json:"slug"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	IsActive    bool          `bson:"isActive" json:"isActive"`
}

type Brand struct {
	Id       bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string        `bson:"name" json:"name"`
	Slug     string        `bson:"slug" json:"slug"`
	IsActive bool          `bson:"isActive" json:"isActive"`
}

// AttributeValue is one selectable option of a category attribute.
type AttributeValue struct {
	Id    bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Label string        `bson:"label" json:"label"`
}

// CategoryAttribute describes a selectable property of items in a category,
// e.g. "Material" with values "Leather"/"Canvas".
type CategoryAttribute struct {
	Id         bson.ObjectID    `bson:"_id,omitempty" json:"id"`
	CategoryId bson.ObjectID    `bson:"categoryId" json:"categoryId"`
	Name       string           `bson:"name" json:"name"`
	Values     []AttributeValue `bson:"values" json:"values"`
}
