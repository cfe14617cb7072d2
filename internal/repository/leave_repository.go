package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mkarimi-dev/employee-leave-api/internal/model"
)

// `from` and `to` are reserved words in MySQL, hence the backticks.
const leaveCols = "leaveId, `from`, `to`, type, reason, emergencyContact, userId"

// LeaveRepo persists leave requests in the `leaves` table. leaveId is
// auto-generated; userId is stored by value with no foreign key.
type LeaveRepo struct{ DB *sql.DB }

func NewLeaveRepo(db *sql.DB) *LeaveRepo { return &LeaveRepo{DB: db} }

// List returns every leave request in insertion order.
func (r *LeaveRepo) List(ctx context.Context) ([]model.Leave, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+leaveCols+" FROM leaves ORDER BY leaveId")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leaves := make([]model.Leave, 0)
	for rows.Next() {
		var l model.Leave
		if err := rows.Scan(&l.LeaveID, &l.From, &l.To, &l.Type,
			&l.Reason, &l.EmergencyContact, &l.UserID); err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}

// Get fetches one leave request by id.
func (r *LeaveRepo) Get(ctx context.Context, leaveID int64) (model.Leave, error) {
	var l model.Leave
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+leaveCols+" FROM leaves WHERE leaveId=? LIMIT 1",
		leaveID).Scan(&l.LeaveID, &l.From, &l.To, &l.Type,
		&l.Reason, &l.EmergencyContact, &l.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Leave{}, ErrNotFound
	}
	return l, err
}

// Create inserts a leave request and returns it with the generated id.
func (r *LeaveRepo) Create(ctx context.Context, l model.Leave) (model.Leave, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO leaves (`from`, `to`, type, reason, emergencyContact, userId) VALUES (?,?,?,?,?,?)",
		l.From, l.To, l.Type, l.Reason, l.EmergencyContact, l.UserID)
	if err != nil {
		return model.Leave{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Leave{}, err
	}
	l.LeaveID = id
	return l, nil
}

// Update rewrites every mutable field of a leave request. Returns
// ErrNotFound when no row matches.
func (r *LeaveRepo) Update(ctx context.Context, l model.Leave) (model.Leave, error) {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE leaves SET `from`=?, `to`=?, type=?, reason=?, emergencyContact=?, userId=? WHERE leaveId=?",
		l.From, l.To, l.Type, l.Reason, l.EmergencyContact, l.UserID, l.LeaveID)
	if err != nil {
		return model.Leave{}, err
	}
	return r.Get(ctx, l.LeaveID)
}

// Delete removes a leave request and returns the removed row.
func (r *LeaveRepo) Delete(ctx context.Context, leaveID int64) (model.Leave, error) {
	l, err := r.Get(ctx, leaveID)
	if err != nil {
		return model.Leave{}, err
	}
	if _, err := r.DB.ExecContext(ctx,
		"DELETE FROM leaves WHERE leaveId=?", leaveID); err != nil {
		return model.Leave{}, err
	}
	return l, nil
}
