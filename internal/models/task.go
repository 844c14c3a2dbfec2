package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task is a single planned item on a user's schedule. Date is a
// zero-padded ISO "YYYY-MM-DD" string, Time is free-form and may be
// empty. UserID is stored as an opaque string.
type Task struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Date      string             `bson:"date" json:"date"`
	Time      string             `bson:"time" json:"time"`
	Pomodoros int                `bson:"pomodoros" json:"pomodoros"`
	UserID    string             `bson:"userId" json:"userId"`
	Completed bool               `bson:"completed" json:"completed"`
}
