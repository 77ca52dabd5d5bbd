package postgres

import (
	"encoding/json"

	"gorm.io/gorm/clause"

	"crm/internal/domain/filter"
)

// columnFor maps a filter field to its database column. The bool reports
// whether the field is known.
func columnFor(field filter.Field) (string, bool) {
	switch field {
	case filter.FieldID:
		return "id", true
	case filter.FieldVersion:
		return "version", true
	case filter.FieldLastName:
		return "last_name", true
	case filter.FieldFirstName:
		return "first_name", true
	case filter.FieldEmail:
		return "email", true
	case filter.FieldUsername:
		return "username", true
	case filter.FieldPhoneNumber:
		return "phone_number", true
	case filter.FieldTierLevel:
		return "tier", true
	case filter.FieldSubscribed:
		return "is_subscribed", true
	case filter.FieldBirthdate:
		return "birthdate", true
	case filter.FieldGender:
		return "gender", true
	case filter.FieldMaritalStatus:
		return "marital_status", true
	case filter.FieldCustomerState:
		return "customer_state", true
	case filter.FieldStreet:
		return "address_street", true
	case filter.FieldHouseNumber:
		return "address_house_no", true
	case filter.FieldZipCode:
		return "address_zip_code", true
	case filter.FieldCity:
		return "address_city", true
	case filter.FieldState:
		return "address_state", true
	case filter.FieldCountry:
		return "address_country", true
	case filter.FieldInterests:
		return "interests", true
	case filter.FieldContactOptions:
		return "contact_options", true
	default:
		return "", false
	}
}

// isArrayField reports whether the field is stored as a JSONB array.
func isArrayField(field filter.Field) bool {
	return field == filter.FieldInterests || field == filter.FieldContactOptions
}

// compileFilter turns a filter tree into a GORM clause expression. A nil tree
// compiles to nil, meaning no WHERE clause at all. Incomplete leaves and
// empty composites contribute nothing.
func compileFilter(expr *filter.Expr) clause.Expression {
	if expr == nil {
		return nil
	}

	var conditions []clause.Expression
	if leaf := compileLeaf(expr); leaf != nil {
		conditions = append(conditions, leaf)
	}

	if children := compileAll(expr.And); len(children) > 0 {
		conditions = append(conditions, clause.And(children...))
	}
	if children := compileAll(expr.Or); len(children) > 0 {
		conditions = append(conditions, clause.Or(children...))
	}
	if children := compileAll(expr.Nor); len(children) > 0 {
		conditions = append(conditions, clause.Not(clause.Or(children...)))
	}

	switch len(conditions) {
	case 0:
		return nil
	case 1:
		return conditions[0]
	default:
		return clause.And(conditions...)
	}
}

func compileAll(exprs []*filter.Expr) []clause.Expression {
	compiled := make([]clause.Expression, 0, len(exprs))
	for _, e := range exprs {
		if c := compileFilter(e); c != nil {
			compiled = append(compiled, c)
		}
	}

	return compiled
}

// compileLeaf builds the condition of a single comparison. Values are coerced
// before the operator is bound so numeric strings compare numerically.
func compileLeaf(expr *filter.Expr) clause.Expression {
	if !expr.IsLeaf() {
		return nil
	}

	column, ok := columnFor(expr.Field)
	if !ok {
		return nil
	}

	if isArrayField(expr.Field) {
		return compileArrayLeaf(column, expr)
	}

	col := clause.Column{Name: column}
	switch expr.Operator {
	case filter.OpEQ:
		return clause.Eq{Column: col, Value: filter.Coerce(expr.Value)}
	case filter.OpIn:
		return clause.IN{Column: col, Values: filter.SplitList(expr.Value)}
	case filter.OpGTE:
		return clause.Gte{Column: col, Value: filter.Coerce(expr.Value)}
	case filter.OpLTE:
		return clause.Lte{Column: col, Value: filter.Coerce(expr.Value)}
	case filter.OpLike:
		return clause.Expr{SQL: "? ILIKE ?", Vars: []any{col, "%" + expr.Value + "%"}}
	case filter.OpPrefix:
		return clause.Expr{SQL: "? ILIKE ?", Vars: []any{col, expr.Value + "%"}}
	default:
		return nil
	}
}

// compileArrayLeaf handles the JSONB array columns. EQ tests containment of a
// single element, IN containment of any listed element. The range and pattern
// operators have no meaning on arrays and produce no condition.
func compileArrayLeaf(column string, expr *filter.Expr) clause.Expression {
	switch expr.Operator {
	case filter.OpEQ:
		return jsonContains(column, expr.Value)
	case filter.OpIn:
		values := filter.SplitList(expr.Value)
		conditions := make([]clause.Expression, 0, len(values))
		for _, v := range values {
			s, ok := v.(string)
			if !ok {
				continue
			}
			conditions = append(conditions, jsonContains(column, s))
		}
		if len(conditions) == 0 {
			return nil
		}
		if len(conditions) == 1 {
			return conditions[0]
		}

		return clause.Or(conditions...)
	default:
		return nil
	}
}

func jsonContains(column, value string) clause.Expression {
	payload, err := json.Marshal([]string{value})
	if err != nil {
		return nil
	}

	return clause.Expr{
		SQL:  "? @> ?",
		Vars: []any{clause.Column{Name: column}, string(payload)},
	}
}
