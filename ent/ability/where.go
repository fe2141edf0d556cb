// Code generated by ent, DO NOT EDIT.

package ability

import (
	"entgo.io/ent/dialect/sql"
	"github.com/pygrounds/adaptive/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Ability {
	return predicate.Ability(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Ability {
	return predicate.Ability(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Ability {
	return predicate.Ability(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Ability {
	return predicate.Ability(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Ability {
	return predicate.Ability(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Ability {
	return predicate.Ability(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Ability {
	return predicate.Ability(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Ability {
	return predicate.Ability(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Ability {
	return predicate.Ability(sql.FieldLTE(FieldID, id))
}

// Learner applies equality check predicate on the "learner" field. It's identical to LearnerEQ.
func Learner(v string) predicate.Ability {
	return predicate.Ability(sql.FieldEQ(FieldLearner, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.Ability {
	return predicate.Ability(sql.FieldEQ(FieldScore, v))
}

// LearnerEQ applies the EQ predicate on the "learner" field.
func LearnerEQ(v string) predicate.Ability {
	return predicate.Ability(sql.FieldEQ(FieldLearner, v))
}

// LearnerNEQ applies the NEQ predicate on the "learner" field.
func LearnerNEQ(v string) predicate.Ability {
	return predicate.Ability(sql.FieldNEQ(FieldLearner, v))
}

// LearnerIn applies the In predicate on the "learner" field.
func LearnerIn(vs ...string) predicate.Ability {
	return predicate.Ability(sql.FieldIn(FieldLearner, vs...))
}

// LearnerNotIn applies the NotIn predicate on the "learner" field.
func LearnerNotIn(vs ...string) predicate.Ability {
	return predicate.Ability(sql.FieldNotIn(FieldLearner, vs...))
}

// LearnerGT applies the GT predicate on the "learner" field.
func LearnerGT(v string) predicate.Ability {
	return predicate.Ability(sql.FieldGT(FieldLearner, v))
}

// LearnerGTE applies the GTE predicate on the "learner" field.
func LearnerGTE(v string) predicate.Ability {
	return predicate.Ability(sql.FieldGTE(FieldLearner, v))
}

// LearnerLT applies the LT predicate on the "learner" field.
func LearnerLT(v string) predicate.Ability {
	return predicate.Ability(sql.FieldLT(FieldLearner, v))
}

// LearnerLTE applies the LTE predicate on the "learner" field.
func LearnerLTE(v string) predicate.Ability {
	return predicate.Ability(sql.FieldLTE(FieldLearner, v))
}

// LearnerContains applies the Contains predicate on the "learner" field.
func LearnerContains(v string) predicate.Ability {
	return predicate.Ability(sql.FieldContains(FieldLearner, v))
}

// LearnerHasPrefix applies the HasPrefix predicate on the "learner" field.
func LearnerHasPrefix(v string) predicate.Ability {
	return predicate.Ability(sql.FieldHasPrefix(FieldLearner, v))
}

// LearnerHasSuffix applies the HasSuffix predicate on the "learner" field.
func LearnerHasSuffix(v string) predicate.Ability {
	return predicate.Ability(sql.FieldHasSuffix(FieldLearner, v))
}

// LearnerEqualFold applies the EqualFold predicate on the "learner" field.
func LearnerEqualFold(v string) predicate.Ability {
	return predicate.Ability(sql.FieldEqualFold(FieldLearner, v))
}

// LearnerContainsFold applies the ContainsFold predicate on the "learner" field.
func LearnerContainsFold(v string) predicate.Ability {
	return predicate.Ability(sql.FieldContainsFold(FieldLearner, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.Ability {
	return predicate.Ability(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.Ability {
	return predicate.Ability(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.Ability {
	return predicate.Ability(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.Ability {
	return predicate.Ability(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.Ability {
	return predicate.Ability(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.Ability {
	return predicate.Ability(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.Ability {
	return predicate.Ability(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.Ability {
	return predicate.Ability(sql.FieldLTE(FieldScore, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Ability) predicate.Ability {
	return predicate.Ability(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Ability) predicate.Ability {
	return predicate.Ability(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Ability) predicate.Ability {
	return predicate.Ability(sql.NotPredicates(p))
}
