// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Ability is the predicate function for ability builders.
type Ability func(*sql.Selector)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// Item is the predicate function for item builders.
type Item func(*sql.Selector)

// LearningRate is the predicate function for learningrate builders.
type LearningRate func(*sql.Selector)

// MasteryRecord is the predicate function for masteryrecord builders.
type MasteryRecord func(*sql.Selector)

// Subtopic is the predicate function for subtopic builders.
type Subtopic func(*sql.Selector)

// Topic is the predicate function for topic builders.
type Topic func(*sql.Selector)

// TopicProficiency is the predicate function for topicproficiency builders.
type TopicProficiency func(*sql.Selector)

// Zone is the predicate function for zone builders.
type Zone func(*sql.Selector)

// ZoneProgress is the predicate function for zoneprogress builders.
type ZoneProgress func(*sql.Selector)
