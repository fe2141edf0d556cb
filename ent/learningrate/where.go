// Code generated by ent, DO NOT EDIT.

package learningrate

import (
	"entgo.io/ent/dialect/sql"
	"github.com/pygrounds/adaptive/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldLTE(FieldID, id))
}

// Learner applies equality check predicate on the "learner" field. It's identical to LearnerEQ.
func Learner(v string) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldEQ(FieldLearner, v))
}

// SubtopicID applies equality check predicate on the "subtopic_id" field. It's identical to SubtopicIDEQ.
func SubtopicID(v int) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldEQ(FieldSubtopicID, v))
}

// Scale applies equality check predicate on the "scale" field. It's identical to ScaleEQ.
func Scale(v float64) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldEQ(FieldScale, v))
}

// Count applies equality check predicate on the "count" field. It's identical to CountEQ.
func Count(v int) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldEQ(FieldCount, v))
}

// LearnerEQ applies the EQ predicate on the "learner" field.
func LearnerEQ(v string) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldEQ(FieldLearner, v))
}

// LearnerNEQ applies the NEQ predicate on the "learner" field.
func LearnerNEQ(v string) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldNEQ(FieldLearner, v))
}

// LearnerIn applies the In predicate on the "learner" field.
func LearnerIn(vs ...string) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldIn(FieldLearner, vs...))
}

// LearnerNotIn applies the NotIn predicate on the "learner" field.
func LearnerNotIn(vs ...string) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldNotIn(FieldLearner, vs...))
}

// LearnerGT applies the GT predicate on the "learner" field.
func LearnerGT(v string) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldGT(FieldLearner, v))
}

// LearnerGTE applies the GTE predicate on the "learner" field.
func LearnerGTE(v string) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldGTE(FieldLearner, v))
}

// LearnerLT applies the LT predicate on the "learner" field.
func LearnerLT(v string) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldLT(FieldLearner, v))
}

// LearnerLTE applies the LTE predicate on the "learner" field.
func LearnerLTE(v string) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldLTE(FieldLearner, v))
}

// LearnerContains applies the Contains predicate on the "learner" field.
func LearnerContains(v string) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldContains(FieldLearner, v))
}

// LearnerHasPrefix applies the HasPrefix predicate on the "learner" field.
func LearnerHasPrefix(v string) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldHasPrefix(FieldLearner, v))
}

// LearnerHasSuffix applies the HasSuffix predicate on the "learner" field.
func LearnerHasSuffix(v string) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldHasSuffix(FieldLearner, v))
}

// LearnerEqualFold applies the EqualFold predicate on the "learner" field.
func LearnerEqualFold(v string) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldEqualFold(FieldLearner, v))
}

// LearnerContainsFold applies the ContainsFold predicate on the "learner" field.
func LearnerContainsFold(v string) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldContainsFold(FieldLearner, v))
}

// SubtopicIDEQ applies the EQ predicate on the "subtopic_id" field.
func SubtopicIDEQ(v int) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldEQ(FieldSubtopicID, v))
}

// SubtopicIDNEQ applies the NEQ predicate on the "subtopic_id" field.
func SubtopicIDNEQ(v int) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldNEQ(FieldSubtopicID, v))
}

// SubtopicIDIn applies the In predicate on the "subtopic_id" field.
func SubtopicIDIn(vs ...int) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldIn(FieldSubtopicID, vs...))
}

// SubtopicIDNotIn applies the NotIn predicate on the "subtopic_id" field.
func SubtopicIDNotIn(vs ...int) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldNotIn(FieldSubtopicID, vs...))
}

// SubtopicIDGT applies the GT predicate on the "subtopic_id" field.
func SubtopicIDGT(v int) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldGT(FieldSubtopicID, v))
}

// SubtopicIDGTE applies the GTE predicate on the "subtopic_id" field.
func SubtopicIDGTE(v int) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldGTE(FieldSubtopicID, v))
}

// SubtopicIDLT applies the LT predicate on the "subtopic_id" field.
func SubtopicIDLT(v int) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldLT(FieldSubtopicID, v))
}

// SubtopicIDLTE applies the LTE predicate on the "subtopic_id" field.
func SubtopicIDLTE(v int) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldLTE(FieldSubtopicID, v))
}

// ScaleEQ applies the EQ predicate on the "scale" field.
func ScaleEQ(v float64) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldEQ(FieldScale, v))
}

// ScaleNEQ applies the NEQ predicate on the "scale" field.
func ScaleNEQ(v float64) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldNEQ(FieldScale, v))
}

// ScaleIn applies the In predicate on the "scale" field.
func ScaleIn(vs ...float64) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldIn(FieldScale, vs...))
}

// ScaleNotIn applies the NotIn predicate on the "scale" field.
func ScaleNotIn(vs ...float64) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldNotIn(FieldScale, vs...))
}

// ScaleGT applies the GT predicate on the "scale" field.
func ScaleGT(v float64) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldGT(FieldScale, v))
}

// ScaleGTE applies the GTE predicate on the "scale" field.
func ScaleGTE(v float64) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldGTE(FieldScale, v))
}

// ScaleLT applies the LT predicate on the "scale" field.
func ScaleLT(v float64) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldLT(FieldScale, v))
}

// ScaleLTE applies the LTE predicate on the "scale" field.
func ScaleLTE(v float64) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldLTE(FieldScale, v))
}

// CountEQ applies the EQ predicate on the "count" field.
func CountEQ(v int) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldEQ(FieldCount, v))
}

// CountNEQ applies the NEQ predicate on the "count" field.
func CountNEQ(v int) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldNEQ(FieldCount, v))
}

// CountIn applies the In predicate on the "count" field.
func CountIn(vs ...int) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldIn(FieldCount, vs...))
}

// CountNotIn applies the NotIn predicate on the "count" field.
func CountNotIn(vs ...int) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldNotIn(FieldCount, vs...))
}

// CountGT applies the GT predicate on the "count" field.
func CountGT(v int) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldGT(FieldCount, v))
}

// CountGTE applies the GTE predicate on the "count" field.
func CountGTE(v int) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldGTE(FieldCount, v))
}

// CountLT applies the LT predicate on the "count" field.
func CountLT(v int) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldLT(FieldCount, v))
}

// CountLTE applies the LTE predicate on the "count" field.
func CountLTE(v int) predicate.LearningRate {
	return predicate.LearningRate(sql.FieldLTE(FieldCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearningRate) predicate.LearningRate {
	return predicate.LearningRate(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearningRate) predicate.LearningRate {
	return predicate.LearningRate(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearningRate) predicate.LearningRate {
	return predicate.LearningRate(sql.NotPredicates(p))
}
