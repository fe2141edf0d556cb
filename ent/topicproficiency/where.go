// Code generated by ent, DO NOT EDIT.

package topicproficiency

import (
	"entgo.io/ent/dialect/sql"
	"github.com/pygrounds/adaptive/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldLTE(FieldID, id))
}

// Learner applies equality check predicate on the "learner" field. It's identical to LearnerEQ.
func Learner(v string) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldEQ(FieldLearner, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v int) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldEQ(FieldTopicID, v))
}

// Pct applies equality check predicate on the "pct" field. It's identical to PctEQ.
func Pct(v float64) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldEQ(FieldPct, v))
}

// LearnerEQ applies the EQ predicate on the "learner" field.
func LearnerEQ(v string) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldEQ(FieldLearner, v))
}

// LearnerNEQ applies the NEQ predicate on the "learner" field.
func LearnerNEQ(v string) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldNEQ(FieldLearner, v))
}

// LearnerIn applies the In predicate on the "learner" field.
func LearnerIn(vs ...string) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldIn(FieldLearner, vs...))
}

// LearnerNotIn applies the NotIn predicate on the "learner" field.
func LearnerNotIn(vs ...string) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldNotIn(FieldLearner, vs...))
}

// LearnerGT applies the GT predicate on the "learner" field.
func LearnerGT(v string) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldGT(FieldLearner, v))
}

// LearnerGTE applies the GTE predicate on the "learner" field.
func LearnerGTE(v string) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldGTE(FieldLearner, v))
}

// LearnerLT applies the LT predicate on the "learner" field.
func LearnerLT(v string) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldLT(FieldLearner, v))
}

// LearnerLTE applies the LTE predicate on the "learner" field.
func LearnerLTE(v string) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldLTE(FieldLearner, v))
}

// LearnerContains applies the Contains predicate on the "learner" field.
func LearnerContains(v string) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldContains(FieldLearner, v))
}

// LearnerHasPrefix applies the HasPrefix predicate on the "learner" field.
func LearnerHasPrefix(v string) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldHasPrefix(FieldLearner, v))
}

// LearnerHasSuffix applies the HasSuffix predicate on the "learner" field.
func LearnerHasSuffix(v string) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldHasSuffix(FieldLearner, v))
}

// LearnerEqualFold applies the EqualFold predicate on the "learner" field.
func LearnerEqualFold(v string) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldEqualFold(FieldLearner, v))
}

// LearnerContainsFold applies the ContainsFold predicate on the "learner" field.
func LearnerContainsFold(v string) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldContainsFold(FieldLearner, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v int) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v int) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...int) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...int) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v int) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v int) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v int) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v int) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldLTE(FieldTopicID, v))
}

// PctEQ applies the EQ predicate on the "pct" field.
func PctEQ(v float64) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldEQ(FieldPct, v))
}

// PctNEQ applies the NEQ predicate on the "pct" field.
func PctNEQ(v float64) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldNEQ(FieldPct, v))
}

// PctIn applies the In predicate on the "pct" field.
func PctIn(vs ...float64) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldIn(FieldPct, vs...))
}

// PctNotIn applies the NotIn predicate on the "pct" field.
func PctNotIn(vs ...float64) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldNotIn(FieldPct, vs...))
}

// PctGT applies the GT predicate on the "pct" field.
func PctGT(v float64) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldGT(FieldPct, v))
}

// PctGTE applies the GTE predicate on the "pct" field.
func PctGTE(v float64) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldGTE(FieldPct, v))
}

// PctLT applies the LT predicate on the "pct" field.
func PctLT(v float64) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldLT(FieldPct, v))
}

// PctLTE applies the LTE predicate on the "pct" field.
func PctLTE(v float64) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.FieldLTE(FieldPct, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TopicProficiency) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TopicProficiency) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TopicProficiency) predicate.TopicProficiency {
	return predicate.TopicProficiency(sql.NotPredicates(p))
}
