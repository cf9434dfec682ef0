package repository

import (
	sq "github.com/Masterminds/squirrel"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
)

// listWhere builds the WHERE fragment for appointment listings. It returns
// an empty string when the filter is empty. Placeholders are "?" so the
// fragment can go straight into gorm's Where.
func listWhere(f domain.ListFilter) (string, []any, error) {
	conds := sq.And{}

	if f.Status != "" {
		conds = append(conds, sq.Eq{"appointments.status": string(f.Status)})
	}
	if !f.From.IsZero() {
		conds = append(conds, sq.GtOrEq{"appointments.start_time": f.From})
	}
	if !f.To.IsZero() {
		conds = append(conds, sq.Lt{"appointments.start_time": f.To})
	}
	if f.BarberID != 0 {
		conds = append(conds, sq.Eq{"appointments.barber_id": f.BarberID})
	}
	if f.ClientID != 0 {
		conds = append(conds, sq.Eq{"appointments.client_id": f.ClientID})
	}

	if len(conds) == 0 {
		return "", nil, nil
	}
	return conds.ToSql()
}

func activeStatusValues() []string {
	active := domain.ActiveStatuses()
	out := make([]string, 0, len(active))
	for _, s := range active {
		out = append(out, string(s))
	}
	return out
}
