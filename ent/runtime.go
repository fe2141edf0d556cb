// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/pygrounds/adaptive/ent/ability"
	"github.com/pygrounds/adaptive/ent/attemptevent"
	"github.com/pygrounds/adaptive/ent/item"
	"github.com/pygrounds/adaptive/ent/learningrate"
	"github.com/pygrounds/adaptive/ent/masteryrecord"
	"github.com/pygrounds/adaptive/ent/schema"
	"github.com/pygrounds/adaptive/ent/subtopic"
	"github.com/pygrounds/adaptive/ent/topic"
	"github.com/pygrounds/adaptive/ent/topicproficiency"
	"github.com/pygrounds/adaptive/ent/zone"
	"github.com/pygrounds/adaptive/ent/zoneprogress"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	abilityFields := schema.Ability{}.Fields()
	_ = abilityFields
	// abilityDescLearner is the schema descriptor for learner field.
	abilityDescLearner := abilityFields[0].Descriptor()
	// ability.LearnerValidator is a validator for the "learner" field. It is called by the builders before save.
	ability.LearnerValidator = abilityDescLearner.Validators[0].(func(string) error)
	// abilityDescScore is the schema descriptor for score field.
	abilityDescScore := abilityFields[1].Descriptor()
	// ability.DefaultScore holds the default value on creation for the score field.
	ability.DefaultScore = abilityDescScore.Default.(float64)
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescLearner is the schema descriptor for learner field.
	attempteventDescLearner := attempteventFields[0].Descriptor()
	// attemptevent.LearnerValidator is a validator for the "learner" field. It is called by the builders before save.
	attemptevent.LearnerValidator = attempteventDescLearner.Validators[0].(func(string) error)
	// attempteventDescBatchID is the schema descriptor for batch_id field.
	attempteventDescBatchID := attempteventFields[1].Descriptor()
	// attemptevent.BatchIDValidator is a validator for the "batch_id" field. It is called by the builders before save.
	attemptevent.BatchIDValidator = attempteventDescBatchID.Validators[0].(func(string) error)
	itemFields := schema.Item{}.Fields()
	_ = itemFields
	// itemDescGameType is the schema descriptor for game_type field.
	itemDescGameType := itemFields[2].Descriptor()
	// item.GameTypeValidator is a validator for the "game_type" field. It is called by the builders before save.
	item.GameTypeValidator = itemDescGameType.Validators[0].(func(string) error)
	// itemDescDifficulty is the schema descriptor for difficulty field.
	itemDescDifficulty := itemFields[3].Descriptor()
	// item.DefaultDifficulty holds the default value on creation for the difficulty field.
	item.DefaultDifficulty = itemDescDifficulty.Default.(string)
	// itemDescAnswer is the schema descriptor for answer field.
	itemDescAnswer := itemFields[4].Descriptor()
	// item.DefaultAnswer holds the default value on creation for the answer field.
	item.DefaultAnswer = itemDescAnswer.Default.(string)
	learningrateFields := schema.LearningRate{}.Fields()
	_ = learningrateFields
	// learningrateDescLearner is the schema descriptor for learner field.
	learningrateDescLearner := learningrateFields[0].Descriptor()
	// learningrate.LearnerValidator is a validator for the "learner" field. It is called by the builders before save.
	learningrate.LearnerValidator = learningrateDescLearner.Validators[0].(func(string) error)
	// learningrateDescScale is the schema descriptor for scale field.
	learningrateDescScale := learningrateFields[2].Descriptor()
	// learningrate.DefaultScale holds the default value on creation for the scale field.
	learningrate.DefaultScale = learningrateDescScale.Default.(float64)
	// learningrateDescCount is the schema descriptor for count field.
	learningrateDescCount := learningrateFields[3].Descriptor()
	// learningrate.DefaultCount holds the default value on creation for the count field.
	learningrate.DefaultCount = learningrateDescCount.Default.(int)
	masteryrecordFields := schema.MasteryRecord{}.Fields()
	_ = masteryrecordFields
	// masteryrecordDescLearner is the schema descriptor for learner field.
	masteryrecordDescLearner := masteryrecordFields[0].Descriptor()
	// masteryrecord.LearnerValidator is a validator for the "learner" field. It is called by the builders before save.
	masteryrecord.LearnerValidator = masteryrecordDescLearner.Validators[0].(func(string) error)
	// masteryrecordDescUpdatedAt is the schema descriptor for updated_at field.
	masteryrecordDescUpdatedAt := masteryrecordFields[3].Descriptor()
	// masteryrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	masteryrecord.DefaultUpdatedAt = masteryrecordDescUpdatedAt.Default.(func() time.Time)
	// masteryrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	masteryrecord.UpdateDefaultUpdatedAt = masteryrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	subtopicFields := schema.Subtopic{}.Fields()
	_ = subtopicFields
	// subtopicDescName is the schema descriptor for name field.
	subtopicDescName := subtopicFields[1].Descriptor()
	// subtopic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	subtopic.NameValidator = subtopicDescName.Validators[0].(func(string) error)
	topicFields := schema.Topic{}.Fields()
	_ = topicFields
	// topicDescName is the schema descriptor for name field.
	topicDescName := topicFields[1].Descriptor()
	// topic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	topic.NameValidator = topicDescName.Validators[0].(func(string) error)
	topicproficiencyFields := schema.TopicProficiency{}.Fields()
	_ = topicproficiencyFields
	// topicproficiencyDescLearner is the schema descriptor for learner field.
	topicproficiencyDescLearner := topicproficiencyFields[0].Descriptor()
	// topicproficiency.LearnerValidator is a validator for the "learner" field. It is called by the builders before save.
	topicproficiency.LearnerValidator = topicproficiencyDescLearner.Validators[0].(func(string) error)
	zoneFields := schema.Zone{}.Fields()
	_ = zoneFields
	// zoneDescName is the schema descriptor for name field.
	zoneDescName := zoneFields[1].Descriptor()
	// zone.NameValidator is a validator for the "name" field. It is called by the builders before save.
	zone.NameValidator = zoneDescName.Validators[0].(func(string) error)
	zoneprogressFields := schema.ZoneProgress{}.Fields()
	_ = zoneprogressFields
	// zoneprogressDescLearner is the schema descriptor for learner field.
	zoneprogressDescLearner := zoneprogressFields[0].Descriptor()
	// zoneprogress.LearnerValidator is a validator for the "learner" field. It is called by the builders before save.
	zoneprogress.LearnerValidator = zoneprogressDescLearner.Validators[0].(func(string) error)
}
