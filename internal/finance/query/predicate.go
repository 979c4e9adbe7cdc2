// Package query builds composable filter predicates for paginated list
// endpoints. A predicate is a conjunction of column conditions rendered
// into a Postgres WHERE clause at execution time.
package query

import (
	"fmt"
	"strings"
)

type Operator string

const (
	OpEqual          Operator = "="
	OpGreaterOrEqual Operator = ">="
	OpLessOrEqual    Operator = "<="
	// OpContainsFold renders as ILIKE with the value wrapped in wildcards.
	OpContainsFold Operator = "ILIKE"
)

type Condition struct {
	Column   string
	Operator Operator
	Value    interface{}
}

type Predicate struct {
	conditions []Condition
}

// OwnedBy seeds a predicate with the ownership condition every user-scoped
// query carries. All further conditions are ANDed onto it.
func OwnedBy(userID string) *Predicate {
	p := &Predicate{}
	return p.Eq("user_id", userID)
}

func New() *Predicate {
	return &Predicate{}
}

func (p *Predicate) Eq(column string, value interface{}) *Predicate {
	p.conditions = append(p.conditions, Condition{Column: column, Operator: OpEqual, Value: value})
	return p
}

func (p *Predicate) Gte(column string, value interface{}) *Predicate {
	p.conditions = append(p.conditions, Condition{Column: column, Operator: OpGreaterOrEqual, Value: value})
	return p
}

func (p *Predicate) Lte(column string, value interface{}) *Predicate {
	p.conditions = append(p.conditions, Condition{Column: column, Operator: OpLessOrEqual, Value: value})
	return p
}

// ContainsFold adds a case-insensitive substring match on a text column.
func (p *Predicate) ContainsFold(column, value string) *Predicate {
	p.conditions = append(p.conditions, Condition{Column: column, Operator: OpContainsFold, Value: "%" + value + "%"})
	return p
}

func (p *Predicate) Conditions() []Condition {
	return p.conditions
}

// ToSQL renders the conjunction with positional placeholders starting at
// startArg. An empty predicate renders to "TRUE" so callers can always
// interpolate it after WHERE.
func (p *Predicate) ToSQL(startArg int) (string, []interface{}) {
	if len(p.conditions) == 0 {
		return "TRUE", nil
	}
	clauses := make([]string, 0, len(p.conditions))
	args := make([]interface{}, 0, len(p.conditions))
	for i, c := range p.conditions {
		clauses = append(clauses, fmt.Sprintf("%s %s $%d", c.Column, c.Operator, startArg+i))
		args = append(args, c.Value)
	}
	return strings.Join(clauses, " AND "), args
}
