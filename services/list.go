package services

import (
	"fmt"
	"reflect"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultLimit = 50
	MaxLimit     = 10000
)

type filterOp int

const (
	opEq filterOp = iota
	opIn
	opGte
)

// Filter is a single column condition. Filters built from empty values are
// ignored, so an unset form filter means "all rows".
type Filter struct {
	Column string
	op     filterOp
	value  interface{}
	values []interface{}
}

// Eq matches rows whose column equals value.
func Eq(column string, value interface{}) Filter {
	return Filter{Column: column, op: opEq, value: value}
}

// In matches rows whose column is one of values.
func In[T any](column string, values ...T) Filter {
	vs := make([]interface{}, len(values))
	for i, v := range values {
		vs[i] = v
	}
	return Filter{Column: column, op: opIn, values: vs}
}

// Gte matches rows whose column is greater than or equal to value.
func Gte(column string, value interface{}) Filter {
	return Filter{Column: column, op: opGte, value: value}
}

func (f Filter) empty() bool {
	if f.op == opIn {
		return len(f.values) == 0
	}
	v := reflect.ValueOf(f.value)
	switch v.Kind() {
	case reflect.Invalid:
		return true
	case reflect.String:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

func (f Filter) expression() clause.Expression {
	col := clause.Column{Name: f.Column}
	switch f.op {
	case opIn:
		return clause.IN{Column: col, Values: f.values}
	case opGte:
		return clause.Gte{Column: col, Value: f.value}
	default:
		return clause.Eq{Column: col, Value: f.value}
	}
}

// NullPlacement controls where NULLs sort relative to other values.
type NullPlacement int

const (
	NullsDefault NullPlacement = iota
	NullsFirst
	NullsLast
)

// Order is one sort key.
type Order struct {
	Column string
	Desc   bool
	Nulls  NullPlacement
	expr   string
}

func Asc(column string) Order  { return Order{Column: column} }
func Desc(column string) Order { return Order{Column: column, Desc: true} }

// WithNulls returns a copy of o with the given null placement.
func (o Order) WithNulls(n NullPlacement) Order {
	o.Nulls = n
	return o
}

// orderByExpr sorts by a fixed SQL expression built inside this package.
func orderByExpr(expr string, desc bool) Order {
	return Order{expr: expr, Desc: desc}
}

// ListOptions describes a filtered, ordered and limited read.
type ListOptions struct {
	Filters []Filter
	Order   []Order
	Limit   int
}

// EffectiveLimit applies the default and the hard cap.
func (o ListOptions) EffectiveLimit() int {
	switch {
	case o.Limit <= 0:
		return DefaultLimit
	case o.Limit > MaxLimit:
		return MaxLimit
	default:
		return o.Limit
	}
}

type columnSet map[string]struct{}

func newColumnSet(columns ...string) columnSet {
	set := make(columnSet, len(columns))
	for _, c := range columns {
		set[c] = struct{}{}
	}
	return set
}

func (s columnSet) check(column string) error {
	if _, ok := s[column]; !ok {
		return fmt.Errorf("%w: %s", ErrInvalidColumn, column)
	}
	return nil
}

// whereScope applies the non-empty filters.
func whereScope(allowed columnSet, filters []Filter) (func(*gorm.DB) *gorm.DB, error) {
	exprs := make([]clause.Expression, 0, len(filters))
	for _, f := range filters {
		if err := allowed.check(f.Column); err != nil {
			return nil, err
		}
		if f.empty() {
			continue
		}
		exprs = append(exprs, f.expression())
	}
	return func(db *gorm.DB) *gorm.DB {
		if len(exprs) == 0 {
			return db
		}
		return db.Clauses(clause.Where{Exprs: exprs})
	}, nil
}

// scope renders the options against a table's column allow-list.
func (o ListOptions) scope(allowed columnSet) (func(*gorm.DB) *gorm.DB, error) {
	where, err := whereScope(allowed, o.Filters)
	if err != nil {
		return nil, err
	}

	columns := make([]clause.OrderByColumn, 0, len(o.Order)*2)
	for _, ord := range o.Order {
		if ord.expr != "" {
			columns = append(columns, clause.OrderByColumn{
				Column: clause.Column{Name: ord.expr, Raw: true},
				Desc:   ord.Desc,
			})
			continue
		}
		if err := allowed.check(ord.Column); err != nil {
			return nil, err
		}
		// "col IS NULL" sorts false before true on every supported dialect.
		switch ord.Nulls {
		case NullsLast:
			columns = append(columns, clause.OrderByColumn{Column: clause.Column{Name: ord.Column + " IS NULL", Raw: true}})
		case NullsFirst:
			columns = append(columns, clause.OrderByColumn{Column: clause.Column{Name: ord.Column + " IS NULL", Raw: true}, Desc: true})
		}
		columns = append(columns, clause.OrderByColumn{Column: clause.Column{Name: ord.Column}, Desc: ord.Desc})
	}

	limit := o.EffectiveLimit()
	return func(db *gorm.DB) *gorm.DB {
		db = where(db)
		if len(columns) > 0 {
			db = db.Order(clause.OrderBy{Columns: columns})
		}
		return db.Limit(limit)
	}, nil
}
