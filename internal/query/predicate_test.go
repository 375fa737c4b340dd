package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicate_Empty(t *testing.T) {
	p := &Predicate{}
	assert.True(t, p.Empty())

	clause, args := p.Clause()
	assert.Equal(t, "", clause)
	assert.Nil(t, args)
}

func TestPredicate_In(t *testing.T) {
	p := (&Predicate{}).In("Location", []any{"Springfield", "Riverton"})

	clause, args := p.Clause()
	assert.Equal(t, "WHERE Location IN (?,?)", clause)
	assert.Equal(t, []any{"Springfield", "Riverton"}, args)
}

func TestPredicate_In_SkipsEmptyValues(t *testing.T) {
	p := (&Predicate{}).
		In("Location", nil).
		In("Food_Type", []any{}).
		In("Meal_Type", []any{"Lunch"})

	clause, args := p.Clause()
	assert.Equal(t, "WHERE Meal_Type IN (?)", clause)
	assert.Equal(t, []any{"Lunch"}, args)
}

func TestPredicate_CombinesFragmentsWithAnd(t *testing.T) {
	p := (&Predicate{}).
		In("Location", []any{"Springfield"}).
		In("Provider_ID", []any{int64(3), int64(7)}).
		Cond("julianday(Expiry_Date) - julianday(date('now')) <= ?", 3)

	clause, args := p.Clause()
	assert.Equal(t,
		"WHERE Location IN (?) AND Provider_ID IN (?,?) AND julianday(Expiry_Date) - julianday(date('now')) <= ?",
		clause)
	assert.Equal(t, []any{"Springfield", int64(3), int64(7), 3}, args)
}

func TestPredicate_CondOnlyStartsWithWhere(t *testing.T) {
	p := (&Predicate{}).Cond("Quantity > ?", 10)

	clause, args := p.Clause()
	assert.Equal(t, "WHERE Quantity > ?", clause)
	assert.Equal(t, []any{10}, args)
	assert.False(t, p.Empty())
}
