// Code generated by ent, DO NOT EDIT.

package zoneprogress

import (
	"entgo.io/ent/dialect/sql"
	"github.com/pygrounds/adaptive/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldLTE(FieldID, id))
}

// Learner applies equality check predicate on the "learner" field. It's identical to LearnerEQ.
func Learner(v string) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldEQ(FieldLearner, v))
}

// ZoneID applies equality check predicate on the "zone_id" field. It's identical to ZoneIDEQ.
func ZoneID(v int) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldEQ(FieldZoneID, v))
}

// Pct applies equality check predicate on the "pct" field. It's identical to PctEQ.
func Pct(v float64) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldEQ(FieldPct, v))
}

// LearnerEQ applies the EQ predicate on the "learner" field.
func LearnerEQ(v string) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldEQ(FieldLearner, v))
}

// LearnerNEQ applies the NEQ predicate on the "learner" field.
func LearnerNEQ(v string) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldNEQ(FieldLearner, v))
}

// LearnerIn applies the In predicate on the "learner" field.
func LearnerIn(vs ...string) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldIn(FieldLearner, vs...))
}

// LearnerNotIn applies the NotIn predicate on the "learner" field.
func LearnerNotIn(vs ...string) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldNotIn(FieldLearner, vs...))
}

// LearnerGT applies the GT predicate on the "learner" field.
func LearnerGT(v string) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldGT(FieldLearner, v))
}

// LearnerGTE applies the GTE predicate on the "learner" field.
func LearnerGTE(v string) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldGTE(FieldLearner, v))
}

// LearnerLT applies the LT predicate on the "learner" field.
func LearnerLT(v string) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldLT(FieldLearner, v))
}

// LearnerLTE applies the LTE predicate on the "learner" field.
func LearnerLTE(v string) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldLTE(FieldLearner, v))
}

// LearnerContains applies the Contains predicate on the "learner" field.
func LearnerContains(v string) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldContains(FieldLearner, v))
}

// LearnerHasPrefix applies the HasPrefix predicate on the "learner" field.
func LearnerHasPrefix(v string) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldHasPrefix(FieldLearner, v))
}

// LearnerHasSuffix applies the HasSuffix predicate on the "learner" field.
func LearnerHasSuffix(v string) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldHasSuffix(FieldLearner, v))
}

// LearnerEqualFold applies the EqualFold predicate on the "learner" field.
func LearnerEqualFold(v string) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldEqualFold(FieldLearner, v))
}

// LearnerContainsFold applies the ContainsFold predicate on the "learner" field.
func LearnerContainsFold(v string) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldContainsFold(FieldLearner, v))
}

// ZoneIDEQ applies the EQ predicate on the "zone_id" field.
func ZoneIDEQ(v int) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldEQ(FieldZoneID, v))
}

// ZoneIDNEQ applies the NEQ predicate on the "zone_id" field.
func ZoneIDNEQ(v int) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldNEQ(FieldZoneID, v))
}

// ZoneIDIn applies the In predicate on the "zone_id" field.
func ZoneIDIn(vs ...int) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldIn(FieldZoneID, vs...))
}

// ZoneIDNotIn applies the NotIn predicate on the "zone_id" field.
func ZoneIDNotIn(vs ...int) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldNotIn(FieldZoneID, vs...))
}

// ZoneIDGT applies the GT predicate on the "zone_id" field.
func ZoneIDGT(v int) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldGT(FieldZoneID, v))
}

// ZoneIDGTE applies the GTE predicate on the "zone_id" field.
func ZoneIDGTE(v int) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldGTE(FieldZoneID, v))
}

// ZoneIDLT applies the LT predicate on the "zone_id" field.
func ZoneIDLT(v int) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldLT(FieldZoneID, v))
}

// ZoneIDLTE applies the LTE predicate on the "zone_id" field.
func ZoneIDLTE(v int) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldLTE(FieldZoneID, v))
}

// PctEQ applies the EQ predicate on the "pct" field.
func PctEQ(v float64) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldEQ(FieldPct, v))
}

// PctNEQ applies the NEQ predicate on the "pct" field.
func PctNEQ(v float64) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldNEQ(FieldPct, v))
}

// PctIn applies the In predicate on the "pct" field.
func PctIn(vs ...float64) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldIn(FieldPct, vs...))
}

// PctNotIn applies the NotIn predicate on the "pct" field.
func PctNotIn(vs ...float64) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldNotIn(FieldPct, vs...))
}

// PctGT applies the GT predicate on the "pct" field.
func PctGT(v float64) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldGT(FieldPct, v))
}

// PctGTE applies the GTE predicate on the "pct" field.
func PctGTE(v float64) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldGTE(FieldPct, v))
}

// PctLT applies the LT predicate on the "pct" field.
func PctLT(v float64) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldLT(FieldPct, v))
}

// PctLTE applies the LTE predicate on the "pct" field.
func PctLTE(v float64) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.FieldLTE(FieldPct, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ZoneProgress) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ZoneProgress) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ZoneProgress) predicate.ZoneProgress {
	return predicate.ZoneProgress(sql.NotPredicates(p))
}
